package domain

import "context"

// SwapStatusStat - количество обменов в одном состоянии.
type SwapStatusStat struct {
	Status SwapStatus
	Count  int64
}

// TopRatedUser - пользователь из рейтинга лучших преподавателей.
type TopRatedUser struct {
	UserID        string
	Username      string
	AverageRating float64
	RatingCount   int
}

// StatsRepository определяет контракт для работы со статистическими данными.
type StatsRepository interface {
	GetSwapStatusStats(ctx context.Context) ([]*SwapStatusStat, error)
	GetTopRatedUsers(ctx context.Context, limit int) ([]*TopRatedUser, error)
}
