package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// PostUsersMe регистрирует или обновляет профиль текущего пользователя
	// (POST /users/me)
	PostUsersMe(ctx echo.Context) error
	// GetUsersPublic возвращает каталог публичных профилей
	// (GET /users/public)
	GetUsersPublic(ctx echo.Context, params GetUsersPublicParams) error
	// GetUsersUserId возвращает профиль пользователя
	// (GET /users/{userId})
	GetUsersUserId(ctx echo.Context, userId string) error
	// PostUsersSetIsActive меняет активность пользователя
	// (POST /users/setIsActive)
	PostUsersSetIsActive(ctx echo.Context) error
	// PostUsersSetIsBanned блокирует или разблокирует пользователя
	// (POST /users/setIsBanned)
	PostUsersSetIsBanned(ctx echo.Context) error
	// GetUsersUserIdSkills возвращает предложения и активные запросы пользователя
	// (GET /users/{userId}/skills)
	GetUsersUserIdSkills(ctx echo.Context, userId string) error
	// GetUsersUserIdFeedback возвращает отзывы о пользователе
	// (GET /users/{userId}/feedback)
	GetUsersUserIdFeedback(ctx echo.Context, userId string, params GetUsersUserIdFeedbackParams) error
	// GetUsersUserIdFeedbackSummary возвращает сводку отзывов о пользователе
	// (GET /users/{userId}/feedback/summary)
	GetUsersUserIdFeedbackSummary(ctx echo.Context, userId string) error
	// GetUsersUserIdBadges возвращает значки пользователя
	// (GET /users/{userId}/badges)
	GetUsersUserIdBadges(ctx echo.Context, userId string) error
	// PostUsersUserIdRatingRecompute пересчитывает рейтинг пользователя
	// (POST /users/{userId}/rating/recompute)
	PostUsersUserIdRatingRecompute(ctx echo.Context, userId string) error
	// PostSkills добавляет навык в каталог
	// (POST /skills)
	PostSkills(ctx echo.Context) error
	// PostSkillsOffersSetIsApproved меняет статус модерации предложения
	// (POST /skills/offers/setIsApproved)
	PostSkillsOffersSetIsApproved(ctx echo.Context) error
	// PostMeOffers публикует предложение навыка
	// (POST /me/offers)
	PostMeOffers(ctx echo.Context) error
	// DeleteMeOffersOfferId отзывает предложение навыка
	// (DELETE /me/offers/{offerId})
	DeleteMeOffersOfferId(ctx echo.Context, offerId string) error
	// PostMeRequests публикует запрос на изучение навыка
	// (POST /me/requests)
	PostMeRequests(ctx echo.Context) error
	// DeleteMeRequestsRequestId закрывает запрос на изучение навыка
	// (DELETE /me/requests/{requestId})
	DeleteMeRequestsRequestId(ctx echo.Context, requestId string) error
	// PostSwaps предлагает обмен
	// (POST /swaps)
	PostSwaps(ctx echo.Context) error
	// GetSwaps возвращает обмены текущего пользователя
	// (GET /swaps)
	GetSwaps(ctx echo.Context, params GetSwapsParams) error
	// GetSwapsSwapId возвращает обмен
	// (GET /swaps/{swapId})
	GetSwapsSwapId(ctx echo.Context, swapId string) error
	// PatchSwapsSwapId меняет детали ожидающего обмена
	// (PATCH /swaps/{swapId})
	PatchSwapsSwapId(ctx echo.Context, swapId string) error
	// DeleteSwapsSwapId удаляет ожидающий обмен
	// (DELETE /swaps/{swapId})
	DeleteSwapsSwapId(ctx echo.Context, swapId string) error
	// PostSwapsSwapIdAccept принимает обмен
	// (POST /swaps/{swapId}/accept)
	PostSwapsSwapIdAccept(ctx echo.Context, swapId string) error
	// PostSwapsSwapIdReject отклоняет обмен
	// (POST /swaps/{swapId}/reject)
	PostSwapsSwapIdReject(ctx echo.Context, swapId string) error
	// PostSwapsSwapIdStart начинает обмен
	// (POST /swaps/{swapId}/start)
	PostSwapsSwapIdStart(ctx echo.Context, swapId string) error
	// PostSwapsSwapIdProgress обновляет прогресс стороны
	// (POST /swaps/{swapId}/progress)
	PostSwapsSwapIdProgress(ctx echo.Context, swapId string) error
	// PostSwapsSwapIdComplete завершает обмен
	// (POST /swaps/{swapId}/complete)
	PostSwapsSwapIdComplete(ctx echo.Context, swapId string) error
	// PostSwapsSwapIdCancel отменяет обмен
	// (POST /swaps/{swapId}/cancel)
	PostSwapsSwapIdCancel(ctx echo.Context, swapId string) error
	// GetMatches подбирает партнеров
	// (GET /matches)
	GetMatches(ctx echo.Context, params GetMatchesParams) error
	// GetMatchesRecommended возвращает рекомендации по активным запросам
	// (GET /matches/recommended)
	GetMatchesRecommended(ctx echo.Context, params GetMatchesRecommendedParams) error
	// PostFeedback оставляет отзыв
	// (POST /feedback)
	PostFeedback(ctx echo.Context) error
	// GetFeedbackMyGiven возвращает отзывы, оставленные текущим пользователем
	// (GET /feedback/my-given)
	GetFeedbackMyGiven(ctx echo.Context, params GetFeedbackMyGivenParams) error
	// GetFeedbackFeedbackId возвращает отзыв
	// (GET /feedback/{feedbackId})
	GetFeedbackFeedbackId(ctx echo.Context, feedbackId string) error
	// PatchFeedbackFeedbackId меняет отзыв
	// (PATCH /feedback/{feedbackId})
	PatchFeedbackFeedbackId(ctx echo.Context, feedbackId string) error
	// DeleteFeedbackFeedbackId удаляет отзыв
	// (DELETE /feedback/{feedbackId})
	DeleteFeedbackFeedbackId(ctx echo.Context, feedbackId string) error
	// PostFeedbackFeedbackIdRespond отвечает на отзыв
	// (POST /feedback/{feedbackId}/respond)
	PostFeedbackFeedbackIdRespond(ctx echo.Context, feedbackId string) error
	// PostFeedbackFeedbackIdHelpful голосует за полезность отзыва
	// (POST /feedback/{feedbackId}/helpful)
	PostFeedbackFeedbackIdHelpful(ctx echo.Context, feedbackId string) error
	// PostFeedbackFeedbackIdHide скрывает или показывает отзыв
	// (POST /feedback/{feedbackId}/hide)
	PostFeedbackFeedbackIdHide(ctx echo.Context, feedbackId string) error
	// GetStatsSwaps возвращает количество обменов по состояниям
	// (GET /stats/swaps)
	GetStatsSwaps(ctx echo.Context) error
	// GetStatsTopRated возвращает пользователей с лучшим рейтингом
	// (GET /stats/topRated)
	GetStatsTopRated(ctx echo.Context, params GetStatsTopRatedParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// PostUsersMe converts echo context to params.
func (w *ServerInterfaceWrapper) PostUsersMe(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PostUsersMe(ctx)
	return err
}

// GetUsersUserId converts echo context to params.
func (w *ServerInterfaceWrapper) GetUsersUserId(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "userId" -------------
	var userId string

	err = runtime.BindStyledParameterWithOptions("simple", "userId", ctx.Param("userId"), &userId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter userId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetUsersUserId(ctx, userId)
	return err
}

// PostUsersSetIsActive converts echo context to params.
func (w *ServerInterfaceWrapper) PostUsersSetIsActive(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PostUsersSetIsActive(ctx)
	return err
}

// PostUsersSetIsBanned converts echo context to params.
func (w *ServerInterfaceWrapper) PostUsersSetIsBanned(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PostUsersSetIsBanned(ctx)
	return err
}

// GetUsersUserIdSkills converts echo context to params.
func (w *ServerInterfaceWrapper) GetUsersUserIdSkills(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "userId" -------------
	var userId string

	err = runtime.BindStyledParameterWithOptions("simple", "userId", ctx.Param("userId"), &userId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter userId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetUsersUserIdSkills(ctx, userId)
	return err
}

// GetUsersUserIdFeedback converts echo context to params.
func (w *ServerInterfaceWrapper) GetUsersUserIdFeedback(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "userId" -------------
	var userId string

	err = runtime.BindStyledParameterWithOptions("simple", "userId", ctx.Param("userId"), &userId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter userId: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params GetUsersUserIdFeedbackParams
	// ------------- Optional query parameter "public_only" -------------

	err = runtime.BindQueryParameter("form", true, false, "public_only", ctx.QueryParams(), &params.PublicOnly)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter public_only: %s", err))
	}

	// ------------- Optional query parameter "skip" -------------

	err = runtime.BindQueryParameter("form", true, false, "skip", ctx.QueryParams(), &params.Skip)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter skip: %s", err))
	}

	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetUsersUserIdFeedback(ctx, userId, params)
	return err
}

// GetUsersUserIdFeedbackSummary converts echo context to params.
func (w *ServerInterfaceWrapper) GetUsersUserIdFeedbackSummary(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "userId" -------------
	var userId string

	err = runtime.BindStyledParameterWithOptions("simple", "userId", ctx.Param("userId"), &userId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter userId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetUsersUserIdFeedbackSummary(ctx, userId)
	return err
}

// PostUsersUserIdRatingRecompute converts echo context to params.
func (w *ServerInterfaceWrapper) PostUsersUserIdRatingRecompute(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "userId" -------------
	var userId string

	err = runtime.BindStyledParameterWithOptions("simple", "userId", ctx.Param("userId"), &userId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter userId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PostUsersUserIdRatingRecompute(ctx, userId)
	return err
}

// PostSkills converts echo context to params.
func (w *ServerInterfaceWrapper) PostSkills(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PostSkills(ctx)
	return err
}

// PostSkillsOffersSetIsApproved converts echo context to params.
func (w *ServerInterfaceWrapper) PostSkillsOffersSetIsApproved(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PostSkillsOffersSetIsApproved(ctx)
	return err
}

// PostMeOffers converts echo context to params.
func (w *ServerInterfaceWrapper) PostMeOffers(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PostMeOffers(ctx)
	return err
}

// DeleteMeOffersOfferId converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteMeOffersOfferId(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "offerId" -------------
	var offerId string

	err = runtime.BindStyledParameterWithOptions("simple", "offerId", ctx.Param("offerId"), &offerId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter offerId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteMeOffersOfferId(ctx, offerId)
	return err
}

// PostMeRequests converts echo context to params.
func (w *ServerInterfaceWrapper) PostMeRequests(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PostMeRequests(ctx)
	return err
}

// DeleteMeRequestsRequestId converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteMeRequestsRequestId(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "requestId" -------------
	var requestId string

	err = runtime.BindStyledParameterWithOptions("simple", "requestId", ctx.Param("requestId"), &requestId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter requestId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteMeRequestsRequestId(ctx, requestId)
	return err
}

// PostSwaps converts echo context to params.
func (w *ServerInterfaceWrapper) PostSwaps(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PostSwaps(ctx)
	return err
}

// GetSwaps converts echo context to params.
func (w *ServerInterfaceWrapper) GetSwaps(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params GetSwapsParams
	// ------------- Optional query parameter "direction" -------------

	err = runtime.BindQueryParameter("form", true, false, "direction", ctx.QueryParams(), &params.Direction)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter direction: %s", err))
	}

	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// ------------- Optional query parameter "skip" -------------

	err = runtime.BindQueryParameter("form", true, false, "skip", ctx.QueryParams(), &params.Skip)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter skip: %s", err))
	}

	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetSwaps(ctx, params)
	return err
}

// GetSwapsSwapId converts echo context to params.
func (w *ServerInterfaceWrapper) GetSwapsSwapId(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "swapId" -------------
	var swapId string

	err = runtime.BindStyledParameterWithOptions("simple", "swapId", ctx.Param("swapId"), &swapId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter swapId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetSwapsSwapId(ctx, swapId)
	return err
}

// PatchSwapsSwapId converts echo context to params.
func (w *ServerInterfaceWrapper) PatchSwapsSwapId(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "swapId" -------------
	var swapId string

	err = runtime.BindStyledParameterWithOptions("simple", "swapId", ctx.Param("swapId"), &swapId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter swapId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PatchSwapsSwapId(ctx, swapId)
	return err
}

// DeleteSwapsSwapId converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteSwapsSwapId(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "swapId" -------------
	var swapId string

	err = runtime.BindStyledParameterWithOptions("simple", "swapId", ctx.Param("swapId"), &swapId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter swapId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteSwapsSwapId(ctx, swapId)
	return err
}

// PostSwapsSwapIdAccept converts echo context to params.
func (w *ServerInterfaceWrapper) PostSwapsSwapIdAccept(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "swapId" -------------
	var swapId string

	err = runtime.BindStyledParameterWithOptions("simple", "swapId", ctx.Param("swapId"), &swapId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter swapId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PostSwapsSwapIdAccept(ctx, swapId)
	return err
}

// PostSwapsSwapIdReject converts echo context to params.
func (w *ServerInterfaceWrapper) PostSwapsSwapIdReject(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "swapId" -------------
	var swapId string

	err = runtime.BindStyledParameterWithOptions("simple", "swapId", ctx.Param("swapId"), &swapId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter swapId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PostSwapsSwapIdReject(ctx, swapId)
	return err
}

// PostSwapsSwapIdStart converts echo context to params.
func (w *ServerInterfaceWrapper) PostSwapsSwapIdStart(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "swapId" -------------
	var swapId string

	err = runtime.BindStyledParameterWithOptions("simple", "swapId", ctx.Param("swapId"), &swapId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter swapId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PostSwapsSwapIdStart(ctx, swapId)
	return err
}

// PostSwapsSwapIdProgress converts echo context to params.
func (w *ServerInterfaceWrapper) PostSwapsSwapIdProgress(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "swapId" -------------
	var swapId string

	err = runtime.BindStyledParameterWithOptions("simple", "swapId", ctx.Param("swapId"), &swapId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter swapId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PostSwapsSwapIdProgress(ctx, swapId)
	return err
}

// PostSwapsSwapIdComplete converts echo context to params.
func (w *ServerInterfaceWrapper) PostSwapsSwapIdComplete(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "swapId" -------------
	var swapId string

	err = runtime.BindStyledParameterWithOptions("simple", "swapId", ctx.Param("swapId"), &swapId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter swapId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PostSwapsSwapIdComplete(ctx, swapId)
	return err
}

// PostSwapsSwapIdCancel converts echo context to params.
func (w *ServerInterfaceWrapper) PostSwapsSwapIdCancel(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "swapId" -------------
	var swapId string

	err = runtime.BindStyledParameterWithOptions("simple", "swapId", ctx.Param("swapId"), &swapId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter swapId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PostSwapsSwapIdCancel(ctx, swapId)
	return err
}

// GetMatches converts echo context to params.
func (w *ServerInterfaceWrapper) GetMatches(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params GetMatchesParams
	// ------------- Optional query parameter "skill_id" -------------

	err = runtime.BindQueryParameter("form", true, false, "skill_id", ctx.QueryParams(), &params.SkillId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter skill_id: %s", err))
	}

	// ------------- Optional query parameter "level" -------------

	err = runtime.BindQueryParameter("form", true, false, "level", ctx.QueryParams(), &params.Level)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter level: %s", err))
	}

	// ------------- Optional query parameter "remote_only" -------------

	err = runtime.BindQueryParameter("form", true, false, "remote_only", ctx.QueryParams(), &params.RemoteOnly)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter remote_only: %s", err))
	}

	// ------------- Optional query parameter "skip" -------------

	err = runtime.BindQueryParameter("form", true, false, "skip", ctx.QueryParams(), &params.Skip)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter skip: %s", err))
	}

	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetMatches(ctx, params)
	return err
}

// GetMatchesRecommended converts echo context to params.
func (w *ServerInterfaceWrapper) GetMatchesRecommended(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params GetMatchesRecommendedParams
	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetMatchesRecommended(ctx, params)
	return err
}

// PostFeedback converts echo context to params.
func (w *ServerInterfaceWrapper) PostFeedback(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PostFeedback(ctx)
	return err
}

// PatchFeedbackFeedbackId converts echo context to params.
func (w *ServerInterfaceWrapper) PatchFeedbackFeedbackId(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "feedbackId" -------------
	var feedbackId string

	err = runtime.BindStyledParameterWithOptions("simple", "feedbackId", ctx.Param("feedbackId"), &feedbackId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter feedbackId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PatchFeedbackFeedbackId(ctx, feedbackId)
	return err
}

// DeleteFeedbackFeedbackId converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteFeedbackFeedbackId(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "feedbackId" -------------
	var feedbackId string

	err = runtime.BindStyledParameterWithOptions("simple", "feedbackId", ctx.Param("feedbackId"), &feedbackId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter feedbackId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteFeedbackFeedbackId(ctx, feedbackId)
	return err
}

// PostFeedbackFeedbackIdRespond converts echo context to params.
func (w *ServerInterfaceWrapper) PostFeedbackFeedbackIdRespond(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "feedbackId" -------------
	var feedbackId string

	err = runtime.BindStyledParameterWithOptions("simple", "feedbackId", ctx.Param("feedbackId"), &feedbackId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter feedbackId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PostFeedbackFeedbackIdRespond(ctx, feedbackId)
	return err
}

// PostFeedbackFeedbackIdHelpful converts echo context to params.
func (w *ServerInterfaceWrapper) PostFeedbackFeedbackIdHelpful(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "feedbackId" -------------
	var feedbackId string

	err = runtime.BindStyledParameterWithOptions("simple", "feedbackId", ctx.Param("feedbackId"), &feedbackId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter feedbackId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PostFeedbackFeedbackIdHelpful(ctx, feedbackId)
	return err
}

// PostFeedbackFeedbackIdHide converts echo context to params.
func (w *ServerInterfaceWrapper) PostFeedbackFeedbackIdHide(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "feedbackId" -------------
	var feedbackId string

	err = runtime.BindStyledParameterWithOptions("simple", "feedbackId", ctx.Param("feedbackId"), &feedbackId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter feedbackId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PostFeedbackFeedbackIdHide(ctx, feedbackId)
	return err
}

// GetStatsSwaps converts echo context to params.
func (w *ServerInterfaceWrapper) GetStatsSwaps(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetStatsSwaps(ctx)
	return err
}

// GetStatsTopRated converts echo context to params.
func (w *ServerInterfaceWrapper) GetStatsTopRated(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params GetStatsTopRatedParams
	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetStatsTopRated(ctx, params)
	return err
}

// GetUsersPublic converts echo context to params.
func (w *ServerInterfaceWrapper) GetUsersPublic(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params GetUsersPublicParams
	// ------------- Optional query parameter "search" -------------

	err = runtime.BindQueryParameter("form", true, false, "search", ctx.QueryParams(), &params.Search)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter search: %s", err))
	}

	// ------------- Optional query parameter "skill_id" -------------

	err = runtime.BindQueryParameter("form", true, false, "skill_id", ctx.QueryParams(), &params.SkillId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter skill_id: %s", err))
	}

	// ------------- Optional query parameter "category" -------------

	err = runtime.BindQueryParameter("form", true, false, "category", ctx.QueryParams(), &params.Category)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter category: %s", err))
	}

	// ------------- Optional query parameter "skip" -------------

	err = runtime.BindQueryParameter("form", true, false, "skip", ctx.QueryParams(), &params.Skip)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter skip: %s", err))
	}

	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetUsersPublic(ctx, params)
	return err
}

// GetUsersUserIdBadges converts echo context to params.
func (w *ServerInterfaceWrapper) GetUsersUserIdBadges(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "userId" -------------
	var userId string

	err = runtime.BindStyledParameterWithOptions("simple", "userId", ctx.Param("userId"), &userId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter userId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetUsersUserIdBadges(ctx, userId)
	return err
}

// GetFeedbackMyGiven converts echo context to params.
func (w *ServerInterfaceWrapper) GetFeedbackMyGiven(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params GetFeedbackMyGivenParams
	// ------------- Optional query parameter "skip" -------------

	err = runtime.BindQueryParameter("form", true, false, "skip", ctx.QueryParams(), &params.Skip)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter skip: %s", err))
	}

	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetFeedbackMyGiven(ctx, params)
	return err
}

// GetFeedbackFeedbackId converts echo context to params.
func (w *ServerInterfaceWrapper) GetFeedbackFeedbackId(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "feedbackId" -------------
	var feedbackId string

	err = runtime.BindStyledParameterWithOptions("simple", "feedbackId", ctx.Param("feedbackId"), &feedbackId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter feedbackId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetFeedbackFeedbackId(ctx, feedbackId)
	return err
}

// EchoRouter is an interface that wraps the methods of echo.Echo and echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/users/me", wrapper.PostUsersMe)
	router.GET(baseURL+"/users/public", wrapper.GetUsersPublic)
	router.GET(baseURL+"/users/:userId", wrapper.GetUsersUserId)
	router.POST(baseURL+"/users/setIsActive", wrapper.PostUsersSetIsActive)
	router.POST(baseURL+"/users/setIsBanned", wrapper.PostUsersSetIsBanned)
	router.GET(baseURL+"/users/:userId/skills", wrapper.GetUsersUserIdSkills)
	router.GET(baseURL+"/users/:userId/feedback", wrapper.GetUsersUserIdFeedback)
	router.GET(baseURL+"/users/:userId/feedback/summary", wrapper.GetUsersUserIdFeedbackSummary)
	router.GET(baseURL+"/users/:userId/badges", wrapper.GetUsersUserIdBadges)
	router.POST(baseURL+"/users/:userId/rating/recompute", wrapper.PostUsersUserIdRatingRecompute)
	router.POST(baseURL+"/skills", wrapper.PostSkills)
	router.POST(baseURL+"/skills/offers/setIsApproved", wrapper.PostSkillsOffersSetIsApproved)
	router.POST(baseURL+"/me/offers", wrapper.PostMeOffers)
	router.DELETE(baseURL+"/me/offers/:offerId", wrapper.DeleteMeOffersOfferId)
	router.POST(baseURL+"/me/requests", wrapper.PostMeRequests)
	router.DELETE(baseURL+"/me/requests/:requestId", wrapper.DeleteMeRequestsRequestId)
	router.POST(baseURL+"/swaps", wrapper.PostSwaps)
	router.GET(baseURL+"/swaps", wrapper.GetSwaps)
	router.GET(baseURL+"/swaps/:swapId", wrapper.GetSwapsSwapId)
	router.PATCH(baseURL+"/swaps/:swapId", wrapper.PatchSwapsSwapId)
	router.DELETE(baseURL+"/swaps/:swapId", wrapper.DeleteSwapsSwapId)
	router.POST(baseURL+"/swaps/:swapId/accept", wrapper.PostSwapsSwapIdAccept)
	router.POST(baseURL+"/swaps/:swapId/reject", wrapper.PostSwapsSwapIdReject)
	router.POST(baseURL+"/swaps/:swapId/start", wrapper.PostSwapsSwapIdStart)
	router.POST(baseURL+"/swaps/:swapId/progress", wrapper.PostSwapsSwapIdProgress)
	router.POST(baseURL+"/swaps/:swapId/complete", wrapper.PostSwapsSwapIdComplete)
	router.POST(baseURL+"/swaps/:swapId/cancel", wrapper.PostSwapsSwapIdCancel)
	router.GET(baseURL+"/matches", wrapper.GetMatches)
	router.GET(baseURL+"/matches/recommended", wrapper.GetMatchesRecommended)
	router.POST(baseURL+"/feedback", wrapper.PostFeedback)
	router.GET(baseURL+"/feedback/my-given", wrapper.GetFeedbackMyGiven)
	router.GET(baseURL+"/feedback/:feedbackId", wrapper.GetFeedbackFeedbackId)
	router.PATCH(baseURL+"/feedback/:feedbackId", wrapper.PatchFeedbackFeedbackId)
	router.DELETE(baseURL+"/feedback/:feedbackId", wrapper.DeleteFeedbackFeedbackId)
	router.POST(baseURL+"/feedback/:feedbackId/respond", wrapper.PostFeedbackFeedbackIdRespond)
	router.POST(baseURL+"/feedback/:feedbackId/helpful", wrapper.PostFeedbackFeedbackIdHelpful)
	router.POST(baseURL+"/feedback/:feedbackId/hide", wrapper.PostFeedbackFeedbackIdHide)
	router.GET(baseURL+"/stats/swaps", wrapper.GetStatsSwaps)
	router.GET(baseURL+"/stats/topRated", wrapper.GetStatsTopRated)

}
