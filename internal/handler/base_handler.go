package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"skill-swap-service/internal/domain"
)

type BaseHandler struct {
	logger *logrus.Logger
}

func NewBaseHandler(logger *logrus.Logger) *BaseHandler {
	return &BaseHandler{
		logger: logger,
	}
}

func (h *BaseHandler) logRequest(c echo.Context, operation string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"operation":  operation,
		"method":     c.Request().Method,
		"path":       c.Request().URL.Path,
		"ip":         c.RealIP(),
		"user_agent": c.Request().UserAgent(),
		"actor_id":   actorID(c),
	})
}

// respondError отвечает доменной ошибкой с соответствующим HTTP-кодом.
func (h *BaseHandler) respondError(c echo.Context, err error) error {
	if httpErr, exists := domain.ToHTTPError(err); exists {
		return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
	}
	return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
}

// bindError отвечает на тело запроса, которое не удалось разобрать.
func (h *BaseHandler) bindError(c echo.Context, err error, operation string) error {
	h.logger.WithError(err).WithField("operation", operation).Warn("Failed to bind request")
	return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
}
