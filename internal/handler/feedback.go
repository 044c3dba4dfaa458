package handler

import (
	"net/http"

	"skill-swap-service/api"
	"skill-swap-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// FeedbackHandler обрабатывает отзывы и рейтинг пользователей.
type FeedbackHandler struct {
	*BaseHandler
	feedbackUseCase domain.FeedbackUseCase
}

// NewFeedbackHandler создает новый экземпляр FeedbackHandler.
func NewFeedbackHandler(feedbackUseCase domain.FeedbackUseCase, logger *logrus.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		BaseHandler:     NewBaseHandler(logger),
		feedbackUseCase: feedbackUseCase,
	}
}

func (h *FeedbackHandler) feedbackResponse(c echo.Context, status int, feedback *domain.Feedback) error {
	return c.JSON(status, map[string]interface{}{
		"feedback": toAPIFeedback(feedback),
	})
}

// PostFeedback оставляет отзыв от текущего пользователя.
func (h *FeedbackHandler) PostFeedback(c echo.Context) error {
	var req api.PostFeedbackJSONBody
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, err, "create_feedback")
	}

	logEntry := h.logRequest(c, "create_feedback").WithFields(logrus.Fields{
		"receiver_id": req.ReceiverId,
		"swap_id":     stringValue(req.SwapId),
		"rating":      req.Rating,
	})
	logEntry.Info("Creating feedback")

	feedback, err := h.feedbackUseCase.CreateFeedback(c.Request().Context(), actorID(c), domain.FeedbackInput{
		SwapID:     stringValue(req.SwapId),
		ReceiverID: req.ReceiverId,
		Rating:     req.Rating,
		Comment:    stringValue(req.Comment),
		IsPublic:   boolValue(req.IsPublic, true),
	})
	if err != nil {
		logEntry.WithError(err).Error("Failed to create feedback")
		return h.respondError(c, err)
	}

	logEntry.WithField("feedback_id", feedback.ID).Info("Feedback created")
	return h.feedbackResponse(c, http.StatusCreated, feedback)
}

// GetFeedbackFeedbackId возвращает отзыв, если он виден текущему пользователю.
func (h *FeedbackHandler) GetFeedbackFeedbackId(c echo.Context, feedbackId string) error {
	logEntry := h.logRequest(c, "get_feedback").WithField("feedback_id", feedbackId)

	feedback, err := h.feedbackUseCase.GetFeedback(c.Request().Context(), actorID(c), feedbackId)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to get feedback")
		return h.respondError(c, err)
	}

	return h.feedbackResponse(c, http.StatusOK, feedback)
}

// GetFeedbackMyGiven возвращает отзывы, оставленные текущим пользователем.
func (h *FeedbackHandler) GetFeedbackMyGiven(c echo.Context, params api.GetFeedbackMyGivenParams) error {
	logEntry := h.logRequest(c, "list_given_feedback")

	feedback, err := h.feedbackUseCase.ListGiven(c.Request().Context(), actorID(c), intValue(params.Skip), intValue(params.Limit))
	if err != nil {
		logEntry.WithError(err).Warn("Failed to list given feedback")
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"feedback": toAPIFeedbackList(feedback),
	})
}

// PatchFeedbackFeedbackId меняет отзыв автором.
func (h *FeedbackHandler) PatchFeedbackFeedbackId(c echo.Context, feedbackId string) error {
	var req api.PatchFeedbackFeedbackIdJSONBody
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, err, "update_feedback")
	}

	logEntry := h.logRequest(c, "update_feedback").WithField("feedback_id", feedbackId)

	feedback, err := h.feedbackUseCase.UpdateFeedback(c.Request().Context(), actorID(c), feedbackId, domain.FeedbackPatch{
		Rating:   req.Rating,
		Comment:  req.Comment,
		IsPublic: req.IsPublic,
	})
	if err != nil {
		logEntry.WithError(err).Error("Failed to update feedback")
		return h.respondError(c, err)
	}

	logEntry.Info("Feedback updated")
	return h.feedbackResponse(c, http.StatusOK, feedback)
}

// DeleteFeedbackFeedbackId удаляет отзыв автором.
func (h *FeedbackHandler) DeleteFeedbackFeedbackId(c echo.Context, feedbackId string) error {
	logEntry := h.logRequest(c, "delete_feedback").WithField("feedback_id", feedbackId)

	if err := h.feedbackUseCase.DeleteFeedback(c.Request().Context(), actorID(c), feedbackId); err != nil {
		logEntry.WithError(err).Error("Failed to delete feedback")
		return h.respondError(c, err)
	}

	logEntry.Info("Feedback deleted")
	return c.NoContent(http.StatusNoContent)
}

// PostFeedbackFeedbackIdRespond сохраняет ответ получателя на отзыв.
func (h *FeedbackHandler) PostFeedbackFeedbackIdRespond(c echo.Context, feedbackId string) error {
	var req api.PostFeedbackFeedbackIdRespondJSONBody
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, err, "respond_feedback")
	}

	logEntry := h.logRequest(c, "respond_feedback").WithField("feedback_id", feedbackId)

	feedback, err := h.feedbackUseCase.RespondToFeedback(c.Request().Context(), actorID(c), feedbackId, req.Response)
	if err != nil {
		logEntry.WithError(err).Error("Failed to respond to feedback")
		return h.respondError(c, err)
	}

	return h.feedbackResponse(c, http.StatusOK, feedback)
}

// PostFeedbackFeedbackIdHelpful учитывает голос за полезность отзыва.
func (h *FeedbackHandler) PostFeedbackFeedbackIdHelpful(c echo.Context, feedbackId string) error {
	var req api.PostFeedbackFeedbackIdHelpfulJSONBody
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, err, "vote_feedback")
	}

	logEntry := h.logRequest(c, "vote_feedback").WithFields(logrus.Fields{
		"feedback_id": feedbackId,
		"helpful":     req.Helpful,
	})

	feedback, err := h.feedbackUseCase.VoteFeedback(c.Request().Context(), actorID(c), feedbackId, req.Helpful)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to vote feedback")
		return h.respondError(c, err)
	}

	return h.feedbackResponse(c, http.StatusOK, feedback)
}

// PostFeedbackFeedbackIdHide скрывает отзыв из выдачи и рейтинга или возвращает его.
func (h *FeedbackHandler) PostFeedbackFeedbackIdHide(c echo.Context, feedbackId string) error {
	if err := requireAdmin(c); err != nil {
		h.logRequest(c, "hide_feedback").WithError(err).Warn("Moderation request denied")
		return h.respondError(c, err)
	}

	var req api.PostFeedbackFeedbackIdHideJSONBody
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, err, "hide_feedback")
	}

	logEntry := h.logRequest(c, "hide_feedback").WithFields(logrus.Fields{
		"feedback_id": feedbackId,
		"is_hidden":   req.IsHidden,
	})
	logEntry.Info("Changing feedback visibility")

	feedback, err := h.feedbackUseCase.SetFeedbackHidden(c.Request().Context(), feedbackId, req.IsHidden)
	if err != nil {
		logEntry.WithError(err).Error("Failed to change feedback visibility")
		return h.respondError(c, err)
	}

	return h.feedbackResponse(c, http.StatusOK, feedback)
}

// GetUsersUserIdFeedback возвращает отзывы о пользователе.
func (h *FeedbackHandler) GetUsersUserIdFeedback(c echo.Context, userId string, params api.GetUsersUserIdFeedbackParams) error {
	logEntry := h.logRequest(c, "list_feedback").WithField("user_id", userId)

	feedback, err := h.feedbackUseCase.ListReceived(c.Request().Context(), domain.FeedbackFilter{
		ReceiverID: userId,
		ViewerID:   actorID(c),
		PublicOnly: boolValue(params.PublicOnly, true),
		Skip:       intValue(params.Skip),
		Limit:      intValue(params.Limit),
	})
	if err != nil {
		logEntry.WithError(err).Warn("Failed to list feedback")
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"feedback": toAPIFeedbackList(feedback),
	})
}

// GetUsersUserIdFeedbackSummary возвращает сводку отзывов о пользователе.
func (h *FeedbackHandler) GetUsersUserIdFeedbackSummary(c echo.Context, userId string) error {
	logEntry := h.logRequest(c, "feedback_summary").WithField("user_id", userId)

	summary, err := h.feedbackUseCase.GetSummary(c.Request().Context(), userId)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to build feedback summary")
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"summary": toAPIFeedbackSummary(summary),
	})
}

// GetUsersUserIdBadges возвращает значки пользователя за завершенные обмены.
func (h *FeedbackHandler) GetUsersUserIdBadges(c echo.Context, userId string) error {
	logEntry := h.logRequest(c, "list_badges").WithField("user_id", userId)

	badges, err := h.feedbackUseCase.ListBadges(c.Request().Context(), userId)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to list badges")
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"badges": toAPIBadges(badges),
	})
}

// PostUsersUserIdRatingRecompute пересчитывает рейтинг пользователя по видимым отзывам.
func (h *FeedbackHandler) PostUsersUserIdRatingRecompute(c echo.Context, userId string) error {
	logEntry := h.logRequest(c, "recompute_rating").WithField("user_id", userId)
	logEntry.Info("Recomputing rating")

	user, err := h.feedbackUseCase.RecomputeRating(c.Request().Context(), userId)
	if err != nil {
		logEntry.WithError(err).Error("Failed to recompute rating")
		return h.respondError(c, err)
	}

	logEntry.WithFields(logrus.Fields{
		"average_rating": user.AverageRating,
		"rating_count":   user.RatingCount,
	}).Info("Rating recomputed")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"user": toAPIUser(user),
	})
}
