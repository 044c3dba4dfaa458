package handler

import (
	"net/http"

	"skill-swap-service/api"
	"skill-swap-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// StatsHandler обрабатывает HTTP-запросы, связанные со статистикой.
type StatsHandler struct {
	*BaseHandler
	statsUseCase domain.StatsUseCase
}

// NewStatsHandler создает новый экземпляр StatsHandler.
func NewStatsHandler(statsUseCase domain.StatsUseCase, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{
		BaseHandler:  NewBaseHandler(logger),
		statsUseCase: statsUseCase,
	}
}

// GetStatsSwaps обрабатывает GET запрос для получения количества обменов по состояниям.
func (h *StatsHandler) GetStatsSwaps(c echo.Context) error {
	logEntry := h.logRequest(c, "get_swap_stats")
	logEntry.Info("Getting swap statistics")

	stats, err := h.statsUseCase.GetSwapStatusStats(c.Request().Context())
	if err != nil {
		logEntry.WithError(err).Error("Failed to get swap stats")
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	result := make([]api.SwapStatusStat, len(stats))
	for i, stat := range stats {
		result[i] = api.SwapStatusStat{
			Status: api.SwapStatus(stat.Status),
			Count:  stat.Count,
		}
	}

	logEntry.WithField("stats_count", len(stats)).Info("Swap stats retrieved")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"stats": result,
	})
}

// GetStatsTopRated обрабатывает GET запрос для получения пользователей с лучшим рейтингом.
func (h *StatsHandler) GetStatsTopRated(c echo.Context, params api.GetStatsTopRatedParams) error {
	logEntry := h.logRequest(c, "get_top_rated")

	users, err := h.statsUseCase.GetTopRatedUsers(c.Request().Context(), intValue(params.Limit))
	if err != nil {
		logEntry.WithError(err).Error("Failed to get top rated users")
		return h.respondError(c, err)
	}

	result := make([]api.TopRatedUser, len(users))
	for i, user := range users {
		result[i] = api.TopRatedUser{
			UserId:        user.UserID,
			Username:      user.Username,
			AverageRating: user.AverageRating,
			RatingCount:   user.RatingCount,
		}
	}

	logEntry.WithFields(logrus.Fields{"users_count": len(result)}).Info("Top rated users retrieved")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"users": result,
	})
}
