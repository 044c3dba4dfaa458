package handler

import (
	"net/http"
	"strings"

	"skill-swap-service/api"
	"skill-swap-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// MatchHandler обрабатывает поиск партнеров и рекомендации.
type MatchHandler struct {
	*BaseHandler
	matchUseCase domain.MatchUseCase
}

// NewMatchHandler создает новый экземпляр MatchHandler.
func NewMatchHandler(matchUseCase domain.MatchUseCase, logger *logrus.Logger) *MatchHandler {
	return &MatchHandler{
		BaseHandler:  NewBaseHandler(logger),
		matchUseCase: matchUseCase,
	}
}

// GetMatches подбирает пользователей, которые могут научить текущего пользователя.
func (h *MatchHandler) GetMatches(c echo.Context, params api.GetMatchesParams) error {
	query := domain.MatchQuery{
		SkillID:    stringValue(params.SkillId),
		Level:      strings.ToLower(stringValue(params.Level)),
		RemoteOnly: boolValue(params.RemoteOnly, false),
		Skip:       intValue(params.Skip),
		Limit:      intValue(params.Limit),
	}

	logEntry := h.logRequest(c, "find_matches").WithFields(logrus.Fields{
		"skill_id":    query.SkillID,
		"level":       query.Level,
		"remote_only": query.RemoteOnly,
	})

	matches, err := h.matchUseCase.FindMatches(c.Request().Context(), actorID(c), query)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to find matches")
		return h.respondError(c, err)
	}

	logEntry.WithField("matches_count", len(matches)).Info("Matches found")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"matches": toAPIMatches(matches),
	})
}

// GetMatchesRecommended возвращает рекомендации по активным запросам текущего пользователя.
func (h *MatchHandler) GetMatchesRecommended(c echo.Context, params api.GetMatchesRecommendedParams) error {
	logEntry := h.logRequest(c, "recommended_matches")

	recommendations, err := h.matchUseCase.RecommendedFor(c.Request().Context(), actorID(c), intValue(params.Limit))
	if err != nil {
		logEntry.WithError(err).Warn("Failed to build recommendations")
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"recommendations": toAPIRecommendations(recommendations),
	})
}
