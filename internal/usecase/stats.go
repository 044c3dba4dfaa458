package usecase

import (
	"context"

	"skill-swap-service/internal/domain"
)

const (
	defaultTopRatedLimit = 10
	maxTopRatedLimit     = 100
)

// StatsUseCase реализует бизнес-логику для работы со статистикой.
type StatsUseCase struct {
	statsRepo domain.StatsRepository
}

// NewStatsUseCase создает новый экземпляр StatsUseCase.
func NewStatsUseCase(statsRepo domain.StatsRepository) domain.StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
	}
}

// GetSwapStatusStats возвращает количество обменов в каждом состоянии.
func (uc *StatsUseCase) GetSwapStatusStats(ctx context.Context) ([]*domain.SwapStatusStat, error) {
	return uc.statsRepo.GetSwapStatusStats(ctx)
}

// GetTopRatedUsers возвращает пользователей с наивысшим рейтингом.
func (uc *StatsUseCase) GetTopRatedUsers(ctx context.Context, limit int) ([]*domain.TopRatedUser, error) {
	limit, err := normalizePage(0, limit, defaultTopRatedLimit, maxTopRatedLimit)
	if err != nil {
		return nil, err
	}
	return uc.statsRepo.GetTopRatedUsers(ctx, limit)
}
