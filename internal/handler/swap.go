package handler

import (
	"errors"
	"net/http"
	"time"

	"skill-swap-service/api"
	"skill-swap-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// SwapHandler обрабатывает HTTP-запросы жизненного цикла обменов.
type SwapHandler struct {
	*BaseHandler
	swapUseCase domain.SwapUseCase
}

// NewSwapHandler создает новый экземпляр SwapHandler.
func NewSwapHandler(swapUseCase domain.SwapUseCase, logger *logrus.Logger) *SwapHandler {
	return &SwapHandler{
		BaseHandler: NewBaseHandler(logger),
		swapUseCase: swapUseCase,
	}
}

func (h *SwapHandler) swapResponse(c echo.Context, status int, swap *domain.Swap) error {
	return c.JSON(status, map[string]interface{}{
		"swap": toAPISwap(domain.ViewSwap(swap, time.Now().UTC())),
	})
}

// transitionResult отвечает на результат перехода. Отказ по истечении срока
// возвращается вместе с сохраненным отклоненным обменом.
func (h *SwapHandler) transitionResult(c echo.Context, logEntry *logrus.Entry, swap *domain.Swap, err error) error {
	if err != nil {
		if errors.Is(err, domain.ErrDeadlineExpired) && swap != nil {
			logEntry.Warn("Swap rejected: response deadline expired")
			httpErr, _ := domain.ToHTTPError(err)
			return c.JSON(http.StatusConflict, map[string]interface{}{
				"error": toAPIErrorResponse(httpErr).Error,
				"swap":  toAPISwap(domain.ViewSwap(swap, time.Now().UTC())),
			})
		}
		logEntry.WithError(err).Error("Swap transition failed")
		return h.respondError(c, err)
	}

	logEntry.WithField("status", swap.Status).Info("Swap transition applied")
	return h.swapResponse(c, http.StatusOK, swap)
}

// PostSwaps создает предложение обмена от текущего пользователя.
func (h *SwapHandler) PostSwaps(c echo.Context) error {
	var req api.PostSwapsJSONBody
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, err, "create_swap")
	}

	logEntry := h.logRequest(c, "create_swap").WithFields(logrus.Fields{
		"requested_user":  req.RequestedUserId,
		"offered_skill":   req.OfferedSkillId,
		"requested_skill": req.RequestedSkillId,
	})
	logEntry.Info("Creating swap")

	swap, err := h.swapUseCase.CreateSwap(c.Request().Context(), actorID(c), domain.CreateSwapInput{
		RequestedUserID:  req.RequestedUserId,
		OfferedSkillID:   req.OfferedSkillId,
		RequestedSkillID: req.RequestedSkillId,
		Details: domain.SwapDetails{
			Message:           stringValue(req.Message),
			ProposedStartDate: req.ProposedStartDate,
			Location:          stringValue(req.Location),
		},
	})
	if err != nil {
		logEntry.WithError(err).Error("Failed to create swap")
		return h.respondError(c, err)
	}

	logEntry.WithField("swap_id", swap.ID).Info("Swap created successfully")
	return h.swapResponse(c, http.StatusCreated, swap)
}

// GetSwaps возвращает обмены текущего пользователя.
func (h *SwapHandler) GetSwaps(c echo.Context, params api.GetSwapsParams) error {
	logEntry := h.logRequest(c, "list_swaps")

	filter := domain.SwapFilter{
		Direction: stringValue(params.Direction),
		Skip:      intValue(params.Skip),
		Limit:     intValue(params.Limit),
	}
	if params.Status != nil {
		filter.Status = domain.SwapStatus(*params.Status)
	}

	swaps, err := h.swapUseCase.ListSwaps(c.Request().Context(), actorID(c), filter)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to list swaps")
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"swaps": toAPISwaps(swaps),
	})
}

// GetSwapsSwapId возвращает обмен стороне обмена.
func (h *SwapHandler) GetSwapsSwapId(c echo.Context, swapId string) error {
	logEntry := h.logRequest(c, "get_swap").WithField("swap_id", swapId)

	view, err := h.swapUseCase.GetSwap(c.Request().Context(), actorID(c), swapId)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to get swap")
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"swap": toAPISwap(view),
	})
}

// PatchSwapsSwapId меняет детали ожидающего обмена.
func (h *SwapHandler) PatchSwapsSwapId(c echo.Context, swapId string) error {
	var req api.PatchSwapsSwapIdJSONBody
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, err, "update_swap")
	}

	logEntry := h.logRequest(c, "update_swap").WithField("swap_id", swapId)

	swap, err := h.swapUseCase.UpdateSwapDetails(c.Request().Context(), actorID(c), swapId, domain.SwapDetailsPatch{
		Message:           req.Message,
		ProposedStartDate: req.ProposedStartDate,
		Location:          req.Location,
	})
	return h.transitionResult(c, logEntry, swap, err)
}

// DeleteSwapsSwapId удаляет ожидающий обмен.
func (h *SwapHandler) DeleteSwapsSwapId(c echo.Context, swapId string) error {
	logEntry := h.logRequest(c, "delete_swap").WithField("swap_id", swapId)

	if err := h.swapUseCase.DeleteSwap(c.Request().Context(), actorID(c), swapId); err != nil {
		logEntry.WithError(err).Error("Failed to delete swap")
		return h.respondError(c, err)
	}

	logEntry.Info("Swap deleted")
	return c.NoContent(http.StatusNoContent)
}

// PostSwapsSwapIdAccept принимает обмен.
func (h *SwapHandler) PostSwapsSwapIdAccept(c echo.Context, swapId string) error {
	var req api.PostSwapsSwapIdAcceptJSONBody
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, err, "accept_swap")
	}

	logEntry := h.logRequest(c, "accept_swap").WithField("swap_id", swapId)

	swap, err := h.swapUseCase.AcceptSwap(c.Request().Context(), actorID(c), swapId, req.StartDate, stringValue(req.Location))
	return h.transitionResult(c, logEntry, swap, err)
}

// PostSwapsSwapIdReject отклоняет обмен.
func (h *SwapHandler) PostSwapsSwapIdReject(c echo.Context, swapId string) error {
	var req api.PostSwapsSwapIdRejectJSONBody
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, err, "reject_swap")
	}

	logEntry := h.logRequest(c, "reject_swap").WithField("swap_id", swapId)

	swap, err := h.swapUseCase.RejectSwap(c.Request().Context(), actorID(c), swapId, stringValue(req.Reason))
	return h.transitionResult(c, logEntry, swap, err)
}

// PostSwapsSwapIdStart переводит обмен в IN_PROGRESS.
func (h *SwapHandler) PostSwapsSwapIdStart(c echo.Context, swapId string) error {
	logEntry := h.logRequest(c, "start_swap").WithField("swap_id", swapId)

	swap, err := h.swapUseCase.StartSwap(c.Request().Context(), actorID(c), swapId)
	return h.transitionResult(c, logEntry, swap, err)
}

// PostSwapsSwapIdProgress обновляет прогресс стороны обмена.
func (h *SwapHandler) PostSwapsSwapIdProgress(c echo.Context, swapId string) error {
	var req api.PostSwapsSwapIdProgressJSONBody
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, err, "update_progress")
	}

	logEntry := h.logRequest(c, "update_progress").WithField("swap_id", swapId)

	// Без поля percent прогресс не сбрасывается в 0
	if req.Percent == nil {
		logEntry.Warn("Progress update without percent")
		return h.respondError(c, domain.ErrInvalidProgress)
	}
	logEntry = logEntry.WithField("percent", *req.Percent)

	swap, err := h.swapUseCase.UpdateProgress(c.Request().Context(), actorID(c), swapId, *req.Percent)
	return h.transitionResult(c, logEntry, swap, err)
}

// PostSwapsSwapIdComplete завершает обмен.
func (h *SwapHandler) PostSwapsSwapIdComplete(c echo.Context, swapId string) error {
	logEntry := h.logRequest(c, "complete_swap").WithField("swap_id", swapId)

	swap, err := h.swapUseCase.CompleteSwap(c.Request().Context(), actorID(c), swapId)
	return h.transitionResult(c, logEntry, swap, err)
}

// PostSwapsSwapIdCancel отменяет обмен.
func (h *SwapHandler) PostSwapsSwapIdCancel(c echo.Context, swapId string) error {
	var req api.PostSwapsSwapIdCancelJSONBody
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, err, "cancel_swap")
	}

	logEntry := h.logRequest(c, "cancel_swap").WithField("swap_id", swapId)

	swap, err := h.swapUseCase.CancelSwap(c.Request().Context(), actorID(c), swapId, stringValue(req.Reason))
	return h.transitionResult(c, logEntry, swap, err)
}
