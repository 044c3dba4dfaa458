package domain

import (
	"context"
	"math"
	"time"
)

// Допустимый диапазон оценки.
const (
	MinRating = 1
	MaxRating = 5
)

// RecentFeedbackLimit - количество последних отзывов в сводке.
const RecentFeedbackLimit = 5

// Feedback - отзыв одного пользователя о другом, обычно по завершенному обмену.
type Feedback struct {
	ID              string
	SwapID          string // пусто для общего отзыва
	GiverID         string
	ReceiverID      string
	Rating          int
	Comment         string
	IsPublic        bool
	IsHidden        bool
	Response        string
	ResponseDate    *time.Time
	HelpfulVotes    int
	NotHelpfulVotes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FeedbackInput - данные для создания отзыва.
type FeedbackInput struct {
	SwapID     string
	ReceiverID string
	Rating     int
	Comment    string
	IsPublic   bool
}

// FeedbackPatch - частичное обновление отзыва автором. nil-поле не меняется.
type FeedbackPatch struct {
	Rating   *int
	Comment  *string
	IsPublic *bool
}

// Empty сообщает, что патч ничего не меняет.
func (p FeedbackPatch) Empty() bool {
	return p.Rating == nil && p.Comment == nil && p.IsPublic == nil
}

// Apply применяет патч и сообщает, изменилась ли оценка.
func (f *Feedback) Apply(patch FeedbackPatch, now time.Time) (ratingChanged bool) {
	if patch.Rating != nil && *patch.Rating != f.Rating {
		f.Rating = *patch.Rating
		ratingChanged = true
	}
	if patch.Comment != nil {
		f.Comment = *patch.Comment
	}
	if patch.IsPublic != nil {
		f.IsPublic = *patch.IsPublic
	}
	f.UpdatedAt = now
	return ratingChanged
}

// VisibleTo сообщает, может ли userID читать отзыв: стороны видят его всегда,
// остальные - только публичный и не скрытый.
func (f *Feedback) VisibleTo(userID string) bool {
	if userID != "" && (f.GiverID == userID || f.ReceiverID == userID) {
		return true
	}
	return f.IsPublic && !f.IsHidden
}

// FeedbackMutator применяет изменение к заблокированной строке отзыва.
// changed=false означает, что сохранять нечего.
type FeedbackMutator func(feedback *Feedback) (changed bool, err error)

// ValidRating проверяет диапазон оценки.
func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}

// RatingAggregate - агрегированный рейтинг пользователя.
type RatingAggregate struct {
	Average float64
	Count   int
}

// AggregateRating полностью пересчитывает рейтинг по списку оценок. Пустой список дает 0/0.
func AggregateRating(ratings []int) RatingAggregate {
	if len(ratings) == 0 {
		return RatingAggregate{}
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return RatingAggregate{
		Average: float64(sum) / float64(len(ratings)),
		Count:   len(ratings),
	}
}

// FeedbackSummary - сводка публичных отзывов пользователя.
type FeedbackSummary struct {
	UserID        string
	TotalFeedback int
	AverageRating float64
	Distribution  map[int]int
	Recent        []*Feedback
}

// Summarize строит сводку. feedback должен быть отсортирован от новых к старым.
func Summarize(userID string, feedback []*Feedback) *FeedbackSummary {
	summary := &FeedbackSummary{
		UserID:       userID,
		Distribution: make(map[int]int, MaxRating),
		Recent:       []*Feedback{},
	}
	if len(feedback) == 0 {
		return summary
	}

	for r := MinRating; r <= MaxRating; r++ {
		summary.Distribution[r] = 0
	}

	ratings := make([]int, 0, len(feedback))
	for _, f := range feedback {
		ratings = append(ratings, f.Rating)
		summary.Distribution[f.Rating]++
	}

	agg := AggregateRating(ratings)
	summary.TotalFeedback = agg.Count
	summary.AverageRating = math.Round(agg.Average*100) / 100

	recent := len(feedback)
	if recent > RecentFeedbackLimit {
		recent = RecentFeedbackLimit
	}
	summary.Recent = feedback[:recent]

	return summary
}

// FeedbackFilter задает выборку полученных отзывов. Limit 0 - без ограничения.
type FeedbackFilter struct {
	ReceiverID string
	ViewerID   string // непубличные отзывы видит только сам получатель
	PublicOnly bool
	Skip       int
	Limit      int
}

// FeedbackRepository определяет контракт для работы с хранилищем отзывов.
type FeedbackRepository interface {
	// Create сохраняет отзыв; ErrDuplicateFeedback при повторном отзыве на тот же обмен.
	Create(ctx context.Context, feedback *Feedback) error
	GetByID(ctx context.Context, feedbackID string) (*Feedback, error)
	ExistsForSwap(ctx context.Context, swapID, giverID string) (bool, error)
	// Mutate выполняет fn над строкой отзыва, заблокированной до конца транзакции.
	Mutate(ctx context.Context, feedbackID string, fn FeedbackMutator) (*Feedback, error)
	Delete(ctx context.Context, feedbackID string) error
	IncrementVotes(ctx context.Context, feedbackID string, helpful bool) (*Feedback, error)
	ListReceived(ctx context.Context, filter FeedbackFilter) ([]*Feedback, error)
	// ListGiven возвращает все отзывы автора, включая скрытые, новые первыми.
	ListGiven(ctx context.Context, giverID string, skip, limit int) ([]*Feedback, error)
	// RecomputeRating блокирует строку пользователя, перечитывает все видимые оценки
	// и сохраняет результат aggregate.
	RecomputeRating(ctx context.Context, userID string, aggregate func(ratings []int) RatingAggregate) (*User, error)
}
