package handler

import (
	"net/http"
	"strings"

	"skill-swap-service/api"
	"skill-swap-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// SkillHandler обрабатывает каталог навыков, предложения и запросы.
type SkillHandler struct {
	*BaseHandler
	skillUseCase domain.SkillUseCase
}

// NewSkillHandler создает новый экземпляр SkillHandler.
func NewSkillHandler(skillUseCase domain.SkillUseCase, logger *logrus.Logger) *SkillHandler {
	return &SkillHandler{
		BaseHandler:  NewBaseHandler(logger),
		skillUseCase: skillUseCase,
	}
}

// PostSkills добавляет навык в каталог.
func (h *SkillHandler) PostSkills(c echo.Context) error {
	var req api.PostSkillsJSONBody
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, err, "create_skill")
	}

	logEntry := h.logRequest(c, "create_skill").WithField("name", req.Name)
	logEntry.Info("Creating skill")

	skill, err := h.skillUseCase.CreateSkill(c.Request().Context(), req.Name, stringValue(req.Category))
	if err != nil {
		logEntry.WithError(err).Error("Failed to create skill")
		return h.respondError(c, err)
	}

	logEntry.WithField("skill_id", skill.ID).Info("Skill created")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"skill": toAPISkill(skill),
	})
}

// PostSkillsOffersSetIsApproved меняет статус модерации предложения.
func (h *SkillHandler) PostSkillsOffersSetIsApproved(c echo.Context) error {
	if err := requireAdmin(c); err != nil {
		h.logRequest(c, "set_offer_approved").WithError(err).Warn("Moderation request denied")
		return h.respondError(c, err)
	}

	var req api.PostSkillsOffersSetIsApprovedJSONBody
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, err, "set_offer_approved")
	}

	logEntry := h.logRequest(c, "set_offer_approved").WithFields(logrus.Fields{
		"offer_id":    req.OfferId,
		"is_approved": req.IsApproved,
	})

	offer, err := h.skillUseCase.SetOfferApproved(c.Request().Context(), req.OfferId, req.IsApproved)
	if err != nil {
		logEntry.WithError(err).Error("Failed to update offer approval")
		return h.respondError(c, err)
	}

	logEntry.Info("Offer approval updated")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"offer": toAPISkillOffer(offer),
	})
}

// PostMeOffers публикует предложение навыка текущим пользователем.
func (h *SkillHandler) PostMeOffers(c echo.Context) error {
	var req api.PostMeOffersJSONBody
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, err, "offer_skill")
	}

	logEntry := h.logRequest(c, "offer_skill").WithField("skill_id", req.SkillId)

	offer, err := h.skillUseCase.OfferSkill(c.Request().Context(), actorID(c), &domain.SkillOffer{
		SkillID:          req.SkillId,
		ProficiencyLevel: strings.ToLower(stringValue(req.ProficiencyLevel)),
		CanTeachRemotely: boolValue(req.CanTeachRemotely, false),
		CanTeachInPerson: boolValue(req.CanTeachInPerson, true),
	})
	if err != nil {
		logEntry.WithError(err).Error("Failed to offer skill")
		return h.respondError(c, err)
	}

	logEntry.WithField("offer_id", offer.ID).Info("Skill offered")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"offer": toAPISkillOffer(offer),
	})
}

// DeleteMeOffersOfferId отзывает предложение текущего пользователя.
func (h *SkillHandler) DeleteMeOffersOfferId(c echo.Context, offerId string) error {
	logEntry := h.logRequest(c, "withdraw_offer").WithField("offer_id", offerId)

	if err := h.skillUseCase.WithdrawOffer(c.Request().Context(), actorID(c), offerId); err != nil {
		logEntry.WithError(err).Error("Failed to withdraw offer")
		return h.respondError(c, err)
	}

	logEntry.Info("Offer withdrawn")
	return c.NoContent(http.StatusNoContent)
}

// PostMeRequests публикует запрос на изучение навыка.
func (h *SkillHandler) PostMeRequests(c echo.Context) error {
	var req api.PostMeRequestsJSONBody
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, err, "request_skill")
	}

	logEntry := h.logRequest(c, "request_skill").WithField("skill_id", req.SkillId)

	request, err := h.skillUseCase.RequestSkill(c.Request().Context(), actorID(c), &domain.SkillRequest{
		SkillID:      req.SkillId,
		DesiredLevel: strings.ToLower(stringValue(req.DesiredLevel)),
		Urgency:      strings.ToLower(stringValue(req.Urgency)),
		Message:      stringValue(req.Message),
	})
	if err != nil {
		logEntry.WithError(err).Error("Failed to request skill")
		return h.respondError(c, err)
	}

	logEntry.WithField("request_id", request.ID).Info("Skill requested")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"request": toAPISkillRequest(request),
	})
}

// DeleteMeRequestsRequestId закрывает запрос текущего пользователя.
func (h *SkillHandler) DeleteMeRequestsRequestId(c echo.Context, requestId string) error {
	logEntry := h.logRequest(c, "close_request").WithField("request_id", requestId)

	if err := h.skillUseCase.CloseRequest(c.Request().Context(), actorID(c), requestId); err != nil {
		logEntry.WithError(err).Error("Failed to close request")
		return h.respondError(c, err)
	}

	logEntry.Info("Request closed")
	return c.NoContent(http.StatusNoContent)
}

// GetUsersUserIdSkills возвращает предложения и активные запросы пользователя.
func (h *SkillHandler) GetUsersUserIdSkills(c echo.Context, userId string) error {
	logEntry := h.logRequest(c, "get_user_skills").WithField("user_id", userId)

	skills, err := h.skillUseCase.GetUserSkills(c.Request().Context(), userId)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to get user skills")
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"skills": toAPIUserSkills(skills),
	})
}
