package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"skill-swap-service/internal/database"
	"skill-swap-service/internal/domain"
)

const swapFeedbackIndex = "feedback_swap_giver_idx"

// FeedbackRepository реализует хранение отзывов и пересчет рейтинга пользователей.
type FeedbackRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewFeedbackRepository создает новый экземпляр FeedbackRepository.
func NewFeedbackRepository(db *sql.DB, queries *database.Queries) domain.FeedbackRepository {
	return &FeedbackRepository{
		db:      db,
		queries: queries,
	}
}

func toDomainFeedback(f database.Feedback) *domain.Feedback {
	return &domain.Feedback{
		ID:              f.FeedbackID,
		SwapID:          f.SwapID.String,
		GiverID:         f.GiverID,
		ReceiverID:      f.ReceiverID,
		Rating:          int(f.Rating),
		Comment:         f.Comment,
		IsPublic:        f.IsPublic,
		IsHidden:        f.IsHidden,
		Response:        f.Response,
		ResponseDate:    fromNullTime(f.ResponseDate),
		HelpfulVotes:    int(f.HelpfulVotes),
		NotHelpfulVotes: int(f.NotHelpfulVotes),
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}
}

// Create сохраняет новый отзыв.
func (r *FeedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	err := r.queries.CreateFeedback(ctx, database.CreateFeedbackParams{
		FeedbackID: feedback.ID,
		SwapID:     sql.NullString{String: feedback.SwapID, Valid: feedback.SwapID != ""},
		GiverID:    feedback.GiverID,
		ReceiverID: feedback.ReceiverID,
		Rating:     int32(feedback.Rating),
		Comment:    feedback.Comment,
		IsPublic:   feedback.IsPublic,
		CreatedAt:  feedback.CreatedAt,
		UpdatedAt:  feedback.UpdatedAt,
	})
	if err != nil {
		if isUniqueViolation(err, swapFeedbackIndex) {
			return domain.ErrDuplicateFeedback
		}
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

// GetByID возвращает отзыв по ID.
func (r *FeedbackRepository) GetByID(ctx context.Context, feedbackID string) (*domain.Feedback, error) {
	dbFeedback, err := r.queries.GetFeedbackByID(ctx, feedbackID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}
	return toDomainFeedback(dbFeedback), nil
}

// ExistsForSwap проверяет, оставлял ли giverID отзыв по обмену.
func (r *FeedbackRepository) ExistsForSwap(ctx context.Context, swapID, giverID string) (bool, error) {
	count, err := r.queries.CountSwapFeedbackByGiver(ctx, database.CountSwapFeedbackByGiverParams{
		SwapID:  swapID,
		GiverID: giverID,
	})
	if err != nil {
		return false, fmt.Errorf("failed to check feedback exists: %w", err)
	}
	return count > 0, nil
}

// Mutate блокирует строку отзыва, применяет fn и сохраняет результат, если fn сообщил об изменении.
// Параллельные правки автора, ответ получателя и скрытие модератором не затирают друг друга.
func (r *FeedbackRepository) Mutate(ctx context.Context, feedbackID string, fn domain.FeedbackMutator) (*domain.Feedback, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	txQueries := r.queries.WithTx(tx)

	// 1. Блокируем строку
	dbFeedback, err := txQueries.GetFeedbackForUpdate(ctx, feedbackID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = domain.ErrFeedbackNotFound
			return nil, err
		}
		err = fmt.Errorf("failed to lock feedback: %w", err)
		return nil, err
	}

	// 2. Применяем изменение
	feedback := toDomainFeedback(dbFeedback)
	changed, err := fn(feedback)
	if err != nil {
		return nil, err
	}
	if !changed {
		_ = tx.Rollback()
		return feedback, nil
	}

	// 3. Сохраняем
	if _, err = txQueries.UpdateFeedback(ctx, database.UpdateFeedbackParams{
		FeedbackID:   feedback.ID,
		Rating:       int32(feedback.Rating),
		Comment:      feedback.Comment,
		IsPublic:     feedback.IsPublic,
		IsHidden:     feedback.IsHidden,
		Response:     feedback.Response,
		ResponseDate: toNullTime(feedback.ResponseDate),
		UpdatedAt:    feedback.UpdatedAt,
	}); err != nil {
		err = fmt.Errorf("failed to update feedback: %w", err)
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return feedback, nil
}

// Delete удаляет отзыв.
func (r *FeedbackRepository) Delete(ctx context.Context, feedbackID string) error {
	affected, err := r.queries.DeleteFeedback(ctx, feedbackID)
	if err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}
	if affected == 0 {
		return domain.ErrFeedbackNotFound
	}
	return nil
}

// IncrementVotes атомарно увеличивает счетчик полезных или бесполезных голосов.
func (r *FeedbackRepository) IncrementVotes(ctx context.Context, feedbackID string, helpful bool) (*domain.Feedback, error) {
	dbFeedback, err := r.queries.IncrementFeedbackVotes(ctx, database.IncrementFeedbackVotesParams{
		FeedbackID: feedbackID,
		Helpful:    helpful,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("failed to vote feedback: %w", err)
	}
	return toDomainFeedback(dbFeedback), nil
}

// ListReceived возвращает видимые отзывы о пользователе, новые первыми.
func (r *FeedbackRepository) ListReceived(ctx context.Context, filter domain.FeedbackFilter) ([]*domain.Feedback, error) {
	rows, err := r.queries.ListReceivedFeedback(ctx, database.ListReceivedFeedbackParams{
		ReceiverID: filter.ReceiverID,
		PublicOnly: filter.PublicOnly,
		Limit:      int32(filter.Limit),
		Offset:     int32(filter.Skip),
	})
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	result := make([]*domain.Feedback, 0, len(rows))
	for _, row := range rows {
		result = append(result, toDomainFeedback(row))
	}
	return result, nil
}

// ListGiven возвращает отзывы, оставленные пользователем, новые первыми.
func (r *FeedbackRepository) ListGiven(ctx context.Context, giverID string, skip, limit int) ([]*domain.Feedback, error) {
	rows, err := r.queries.ListGivenFeedback(ctx, database.ListGivenFeedbackParams{
		GiverID: giverID,
		Limit:   int32(limit),
		Offset:  int32(skip),
	})
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to list given feedback: %w", err)
	}

	result := make([]*domain.Feedback, 0, len(rows))
	for _, row := range rows {
		result = append(result, toDomainFeedback(row))
	}
	return result, nil
}

// RecomputeRating пересчитывает рейтинг пользователя по всем видимым отзывам.
// Строка пользователя блокируется, поэтому параллельные пересчеты не теряют отзывы.
func (r *FeedbackRepository) RecomputeRating(ctx context.Context, userID string, aggregate func(ratings []int) domain.RatingAggregate) (*domain.User, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	txQueries := r.queries.WithTx(tx)

	// 1. Блокируем пользователя
	if _, err = txQueries.GetUserForUpdate(ctx, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = domain.ErrUserNotFound
			return nil, err
		}
		err = fmt.Errorf("failed to lock user: %w", err)
		return nil, err
	}

	// 2. Перечитываем оценки
	ratings, err := txQueries.ListVisibleRatings(ctx, userID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		err = fmt.Errorf("failed to list ratings: %w", err)
		return nil, err
	}

	values := make([]int, len(ratings))
	for i, rating := range ratings {
		values[i] = int(rating)
	}
	result := aggregate(values)

	// 3. Сохраняем агрегат
	dbUser, err := txQueries.UpdateUserRating(ctx, database.UpdateUserRatingParams{
		UserID:        userID,
		AverageRating: result.Average,
		RatingCount:   int32(result.Count),
	})
	if err != nil {
		err = fmt.Errorf("failed to update user rating: %w", err)
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return toDomainUser(dbUser), nil
}
