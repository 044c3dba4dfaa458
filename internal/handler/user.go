package handler

import (
	"net/http"

	"skill-swap-service/api"
	"skill-swap-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// UserHandler обрабатывает HTTP-запросы, связанные с пользователями.
type UserHandler struct {
	*BaseHandler
	userUseCase domain.UserUseCase
}

// NewUserHandler создает новый экземпляр UserHandler.
func NewUserHandler(userUseCase domain.UserUseCase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		userUseCase: userUseCase,
	}
}

// PostUsersMe регистрирует профиль текущего пользователя или обновляет его.
func (h *UserHandler) PostUsersMe(c echo.Context) error {
	var req api.PostUsersMeJSONBody
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, err, "register_profile")
	}

	logEntry := h.logRequest(c, "register_profile")
	logEntry.Info("Registering profile")

	user, err := h.userUseCase.RegisterProfile(c.Request().Context(), actorID(c), stringValue(req.Username), boolValue(req.IsPublic, true))
	if err != nil {
		logEntry.WithError(err).Error("Failed to register profile")
		return h.respondError(c, err)
	}

	logEntry.Info("Profile registered")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"user": toAPIUser(user),
	})
}

// GetUsersPublic возвращает каталог публичных профилей с фильтрами по имени, навыку и категории.
func (h *UserHandler) GetUsersPublic(c echo.Context, params api.GetUsersPublicParams) error {
	logEntry := h.logRequest(c, "list_public_users").WithFields(logrus.Fields{
		"search":   stringValue(params.Search),
		"skill_id": stringValue(params.SkillId),
		"category": stringValue(params.Category),
	})

	users, err := h.userUseCase.ListPublicProfiles(c.Request().Context(), domain.UserDirectoryFilter{
		Search:   stringValue(params.Search),
		SkillID:  stringValue(params.SkillId),
		Category: stringValue(params.Category),
		Skip:     intValue(params.Skip),
		Limit:    intValue(params.Limit),
	})
	if err != nil {
		logEntry.WithError(err).Warn("Failed to list public users")
		return h.respondError(c, err)
	}

	result := make([]api.User, len(users))
	for i, user := range users {
		result[i] = toAPIUser(user)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"users": result,
	})
}

// GetUsersUserId возвращает профиль пользователя.
func (h *UserHandler) GetUsersUserId(c echo.Context, userId string) error {
	logEntry := h.logRequest(c, "get_user").WithField("user_id", userId)

	user, err := h.userUseCase.GetUser(c.Request().Context(), userId)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to get user")
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user": toAPIUser(user),
	})
}

// PostUsersSetIsActive обрабатывает запрос для установки статуса активности пользователя.
func (h *UserHandler) PostUsersSetIsActive(c echo.Context) error {
	if err := requireAdmin(c); err != nil {
		h.logRequest(c, "set_user_active").WithError(err).Warn("Moderation request denied")
		return h.respondError(c, err)
	}

	var req api.PostUsersSetIsActiveJSONBody
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, err, "set_user_active")
	}

	logEntry := h.logRequest(c, "set_user_active").WithFields(logrus.Fields{
		"user_id":   req.UserId,
		"is_active": req.IsActive,
	})
	logEntry.Info("Setting user active status")

	user, err := h.userUseCase.SetUserActive(c.Request().Context(), req.UserId, req.IsActive)
	if err != nil {
		logEntry.WithError(err).Error("Failed to set user active status")
		return h.respondError(c, err)
	}

	logEntry.Info("User active status updated successfully")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"user": toAPIUser(user),
	})
}

// PostUsersSetIsBanned блокирует или разблокирует пользователя.
func (h *UserHandler) PostUsersSetIsBanned(c echo.Context) error {
	if err := requireAdmin(c); err != nil {
		h.logRequest(c, "set_user_banned").WithError(err).Warn("Moderation request denied")
		return h.respondError(c, err)
	}

	var req api.PostUsersSetIsBannedJSONBody
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, err, "set_user_banned")
	}

	logEntry := h.logRequest(c, "set_user_banned").WithFields(logrus.Fields{
		"user_id":   req.UserId,
		"is_banned": req.IsBanned,
	})
	logEntry.Info("Setting user ban status")

	user, err := h.userUseCase.SetUserBanned(c.Request().Context(), req.UserId, req.IsBanned)
	if err != nil {
		logEntry.WithError(err).Error("Failed to set user ban status")
		return h.respondError(c, err)
	}

	logEntry.Info("User ban status updated successfully")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"user": toAPIUser(user),
	})
}
