package repository

import (
	"context"
	"fmt"

	"skill-swap-service/internal/database"
	"skill-swap-service/internal/domain"
)

// StatsRepository реализует domain.StatsRepository для работы со статистикой.
type StatsRepository struct {
	queries *database.Queries
}

// NewStatsRepository создает новый экземпляр StatsRepository.
func NewStatsRepository(queries *database.Queries) domain.StatsRepository {
	return &StatsRepository{
		queries: queries,
	}
}

// GetSwapStatusStats возвращает количество обменов в каждом состоянии.
func (r *StatsRepository) GetSwapStatusStats(ctx context.Context) ([]*domain.SwapStatusStat, error) {
	stats, err := r.queries.GetSwapStatusStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get swap stats: %w", err)
	}

	result := make([]*domain.SwapStatusStat, len(stats))
	for i, stat := range stats {
		result[i] = &domain.SwapStatusStat{
			Status: domain.SwapStatus(stat.Status),
			Count:  stat.SwapCount,
		}
	}

	return result, nil
}

// GetTopRatedUsers возвращает публичных пользователей с наивысшим рейтингом.
func (r *StatsRepository) GetTopRatedUsers(ctx context.Context, limit int) ([]*domain.TopRatedUser, error) {
	stats, err := r.queries.GetTopRatedUsers(ctx, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to get top rated users: %w", err)
	}

	result := make([]*domain.TopRatedUser, len(stats))
	for i, stat := range stats {
		result[i] = &domain.TopRatedUser{
			UserID:        stat.UserID,
			Username:      stat.Username,
			AverageRating: stat.AverageRating,
			RatingCount:   int(stat.RatingCount),
		}
	}

	return result, nil
}
