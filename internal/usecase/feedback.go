package usecase

import (
	"context"
	"strings"

	"skill-swap-service/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// FeedbackUseCase реализует отзывы и пересчет агрегированного рейтинга.
type FeedbackUseCase struct {
	feedbackRepo domain.FeedbackRepository
	swapRepo     domain.SwapRepository
	userRepo     domain.UserRepository
	policy       domain.MatchPolicy
	clock        Clock
	logger       *logrus.Logger
}

var (
	_ domain.FeedbackUseCase = (*FeedbackUseCase)(nil)
	_ domain.SwapObserver    = (*FeedbackUseCase)(nil)
)

// NewFeedbackUseCase создает новый экземпляр FeedbackUseCase.
func NewFeedbackUseCase(
	feedbackRepo domain.FeedbackRepository,
	swapRepo domain.SwapRepository,
	userRepo domain.UserRepository,
	policy domain.MatchPolicy,
	clock Clock,
	logger *logrus.Logger,
) *FeedbackUseCase {
	if policy.MaxLimit <= 0 {
		policy = domain.DefaultMatchPolicy()
	}
	return &FeedbackUseCase{
		feedbackRepo: feedbackRepo,
		swapRepo:     swapRepo,
		userRepo:     userRepo,
		policy:       policy,
		clock:        clock,
		logger:       logger,
	}
}

// CreateFeedback создает отзыв и пересчитывает рейтинг получателя.
func (uc *FeedbackUseCase) CreateFeedback(ctx context.Context, actorID string, input domain.FeedbackInput) (*domain.Feedback, error) {
	// Валидация входных данных
	if actorID == "" {
		return nil, domain.ErrUnauthorized
	}
	if input.ReceiverID == "" {
		return nil, domain.ErrInvalidUserID
	}
	if !domain.ValidRating(input.Rating) {
		return nil, domain.ErrInvalidRating
	}
	if input.ReceiverID == actorID {
		return nil, domain.ErrSelfFeedback
	}

	// 1. Получатель должен существовать и быть активным
	receiver, err := uc.userRepo.GetByID(ctx, input.ReceiverID)
	if err != nil {
		return nil, err
	}
	if !receiver.IsActive {
		return nil, domain.ErrUserNotFound
	}

	// 2. Отзыв по обмену допустим только от его стороны и только после завершения
	if input.SwapID != "" {
		swap, err := uc.swapRepo.GetByID(ctx, input.SwapID)
		if err != nil {
			return nil, err
		}
		if !swap.IsParty(actorID) {
			return nil, domain.ErrForbidden
		}
		if swap.Counterpart(actorID) != input.ReceiverID {
			return nil, domain.ErrInvalidParticipant
		}
		if swap.Status != domain.SwapCompleted {
			return nil, domain.ErrInvalidState
		}

		exists, err := uc.feedbackRepo.ExistsForSwap(ctx, input.SwapID, actorID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDuplicateFeedback
		}
	}

	now := uc.clock.now()
	feedback := &domain.Feedback{
		ID:         uuid.NewString(),
		SwapID:     input.SwapID,
		GiverID:    actorID,
		ReceiverID: input.ReceiverID,
		Rating:     input.Rating,
		Comment:    input.Comment,
		IsPublic:   input.IsPublic,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, err
	}

	// 3. Пересчитываем рейтинг получателя
	if _, err := uc.RecomputeRating(ctx, feedback.ReceiverID); err != nil {
		return nil, err
	}

	return feedback, nil
}

// UpdateFeedback обновляет отзыв его автором. Рейтинг пересчитывается только при смене оценки.
func (uc *FeedbackUseCase) UpdateFeedback(ctx context.Context, actorID, feedbackID string, patch domain.FeedbackPatch) (*domain.Feedback, error) {
	if actorID == "" {
		return nil, domain.ErrUnauthorized
	}
	if patch.Empty() {
		return nil, domain.ErrEmptyPatch
	}
	if patch.Rating != nil && !domain.ValidRating(*patch.Rating) {
		return nil, domain.ErrInvalidRating
	}

	now := uc.clock.now()
	ratingChanged := false
	feedback, err := uc.feedbackRepo.Mutate(ctx, feedbackID, func(f *domain.Feedback) (bool, error) {
		if f.GiverID != actorID {
			return false, domain.ErrForbidden
		}
		ratingChanged = f.Apply(patch, now)
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	if ratingChanged {
		if _, err := uc.RecomputeRating(ctx, feedback.ReceiverID); err != nil {
			return nil, err
		}
	}

	return feedback, nil
}

// DeleteFeedback удаляет отзыв его автором и пересчитывает рейтинг получателя.
func (uc *FeedbackUseCase) DeleteFeedback(ctx context.Context, actorID, feedbackID string) error {
	feedback, err := uc.ownedByGiver(ctx, actorID, feedbackID)
	if err != nil {
		return err
	}

	if err := uc.feedbackRepo.Delete(ctx, feedback.ID); err != nil {
		return err
	}

	_, err = uc.RecomputeRating(ctx, feedback.ReceiverID)
	return err
}

// RespondToFeedback сохраняет ответ получателя на отзыв.
func (uc *FeedbackUseCase) RespondToFeedback(ctx context.Context, actorID, feedbackID, response string) (*domain.Feedback, error) {
	if actorID == "" {
		return nil, domain.ErrUnauthorized
	}
	response = strings.TrimSpace(response)
	if response == "" {
		return nil, domain.ErrEmptyResponse
	}

	now := uc.clock.now()
	return uc.feedbackRepo.Mutate(ctx, feedbackID, func(f *domain.Feedback) (bool, error) {
		if f.ReceiverID != actorID {
			return false, domain.ErrForbidden
		}
		f.Response = response
		f.ResponseDate = &now
		f.UpdatedAt = now
		return true, nil
	})
}

// VoteFeedback учитывает голос "полезно/бесполезно" от стороннего пользователя.
func (uc *FeedbackUseCase) VoteFeedback(ctx context.Context, actorID, feedbackID string, helpful bool) (*domain.Feedback, error) {
	if actorID == "" {
		return nil, domain.ErrUnauthorized
	}

	feedback, err := uc.feedbackRepo.GetByID(ctx, feedbackID)
	if err != nil {
		return nil, err
	}
	if feedback.GiverID == actorID || feedback.ReceiverID == actorID {
		return nil, domain.ErrForbidden
	}

	return uc.feedbackRepo.IncrementVotes(ctx, feedbackID, helpful)
}

// SetFeedbackHidden скрывает или возвращает отзыв (решение модерации) и пересчитывает рейтинг.
func (uc *FeedbackUseCase) SetFeedbackHidden(ctx context.Context, feedbackID string, hidden bool) (*domain.Feedback, error) {
	now := uc.clock.now()
	changed := false
	feedback, err := uc.feedbackRepo.Mutate(ctx, feedbackID, func(f *domain.Feedback) (bool, error) {
		if f.IsHidden == hidden {
			return false, nil
		}
		f.IsHidden = hidden
		f.UpdatedAt = now
		changed = true
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		if _, err := uc.RecomputeRating(ctx, feedback.ReceiverID); err != nil {
			return nil, err
		}
	}
	return feedback, nil
}

// GetFeedback возвращает отзыв, если актор - его сторона или отзыв публичный и не скрыт.
func (uc *FeedbackUseCase) GetFeedback(ctx context.Context, actorID, feedbackID string) (*domain.Feedback, error) {
	feedback, err := uc.feedbackRepo.GetByID(ctx, feedbackID)
	if err != nil {
		return nil, err
	}
	if !feedback.VisibleTo(actorID) {
		return nil, domain.ErrForbidden
	}
	return feedback, nil
}

// ListGiven возвращает отзывы, оставленные актором, включая скрытые модерацией.
func (uc *FeedbackUseCase) ListGiven(ctx context.Context, actorID string, skip, limit int) ([]*domain.Feedback, error) {
	if actorID == "" {
		return nil, domain.ErrUnauthorized
	}
	limit, err := normalizePage(skip, limit, uc.policy.DefaultLimit, uc.policy.MaxLimit)
	if err != nil {
		return nil, err
	}
	return uc.feedbackRepo.ListGiven(ctx, actorID, skip, limit)
}

// ListBadges выводит значки пользователя из его завершенных обменов и видимых отзывов о нем.
func (uc *FeedbackUseCase) ListBadges(ctx context.Context, userID string) ([]*domain.Badge, error) {
	if _, err := uc.activeUser(ctx, userID); err != nil {
		return nil, err
	}

	swaps, err := uc.swapRepo.List(ctx, domain.SwapFilter{
		UserID:    userID,
		Direction: domain.DirectionAll,
		Status:    domain.SwapCompleted,
	})
	if err != nil {
		return nil, err
	}

	received, err := uc.feedbackRepo.ListReceived(ctx, domain.FeedbackFilter{ReceiverID: userID})
	if err != nil {
		return nil, err
	}

	return domain.DeriveBadges(userID, swaps, received), nil
}

// ListReceived возвращает видимые отзывы, полученные пользователем.
func (uc *FeedbackUseCase) ListReceived(ctx context.Context, filter domain.FeedbackFilter) ([]*domain.Feedback, error) {
	limit, err := normalizePage(filter.Skip, filter.Limit, uc.policy.DefaultLimit, uc.policy.MaxLimit)
	if err != nil {
		return nil, err
	}
	filter.Limit = limit
	if filter.ViewerID != filter.ReceiverID {
		filter.PublicOnly = true
	}

	if _, err := uc.activeUser(ctx, filter.ReceiverID); err != nil {
		return nil, err
	}

	return uc.feedbackRepo.ListReceived(ctx, filter)
}

// GetSummary возвращает сводку публичных отзывов пользователя.
func (uc *FeedbackUseCase) GetSummary(ctx context.Context, userID string) (*domain.FeedbackSummary, error) {
	if _, err := uc.activeUser(ctx, userID); err != nil {
		return nil, err
	}

	feedback, err := uc.feedbackRepo.ListReceived(ctx, domain.FeedbackFilter{
		ReceiverID: userID,
		PublicOnly: true,
	})
	if err != nil {
		return nil, err
	}

	return domain.Summarize(userID, feedback), nil
}

// RecomputeRating полностью пересчитывает средний рейтинг пользователя по всем видимым отзывам.
func (uc *FeedbackUseCase) RecomputeRating(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}

	user, err := uc.feedbackRepo.RecomputeRating(ctx, userID, domain.AggregateRating)
	if err != nil {
		return nil, err
	}

	uc.logger.WithFields(logrus.Fields{
		"user_id":        user.ID,
		"average_rating": user.AverageRating,
		"rating_count":   user.RatingCount,
	}).Debug("Rating recomputed")

	return user, nil
}

// SwapCompleted отмечает, что стороны завершенного обмена могут оставить отзывы друг о друге.
func (uc *FeedbackUseCase) SwapCompleted(ctx context.Context, swap *domain.Swap) {
	uc.logger.WithFields(logrus.Fields{
		"swap_id":           swap.ID,
		"requester_id":      swap.RequesterID,
		"requested_user_id": swap.RequestedUserID,
		"completed_at":      swap.CompletionDate,
	}).Info("Swap eligible for feedback")
}

func (uc *FeedbackUseCase) ownedByGiver(ctx context.Context, actorID, feedbackID string) (*domain.Feedback, error) {
	if actorID == "" {
		return nil, domain.ErrUnauthorized
	}
	feedback, err := uc.feedbackRepo.GetByID(ctx, feedbackID)
	if err != nil {
		return nil, err
	}
	if feedback.GiverID != actorID {
		return nil, domain.ErrForbidden
	}
	return feedback, nil
}

func (uc *FeedbackUseCase) activeUser(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
