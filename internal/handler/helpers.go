package handler

import (
	"errors"
	"net/http"
	"strconv"

	"skill-swap-service/api"
	"skill-swap-service/internal/domain"
)

// Вспомогательные функции преобразования доменных моделей в API модели

func toAPIUser(user *domain.User) api.User {
	return api.User{
		UserId:        user.ID,
		Username:      user.Username,
		IsActive:      user.IsActive,
		IsBanned:      user.IsBanned,
		IsPublic:      user.IsPublic,
		AverageRating: user.AverageRating,
		RatingCount:   user.RatingCount,
	}
}

func toAPISkill(skill *domain.Skill) api.Skill {
	return api.Skill{
		SkillId:  skill.ID,
		Name:     skill.Name,
		Category: skill.Category,
	}
}

func toAPISkillOffer(offer *domain.SkillOffer) api.SkillOffer {
	return api.SkillOffer{
		OfferId:          offer.ID,
		UserId:           offer.UserID,
		SkillId:          offer.SkillID,
		ProficiencyLevel: offer.ProficiencyLevel,
		IsApproved:       offer.IsApproved,
		CanTeachRemotely: offer.CanTeachRemotely,
		CanTeachInPerson: offer.CanTeachInPerson,
		CreatedAt:        offer.CreatedAt,
	}
}

func toAPISkillRequest(request *domain.SkillRequest) api.SkillRequest {
	return api.SkillRequest{
		RequestId:    request.ID,
		UserId:       request.UserID,
		SkillId:      request.SkillID,
		DesiredLevel: request.DesiredLevel,
		Urgency:      request.Urgency,
		Message:      request.Message,
		IsActive:     request.IsActive,
		CreatedAt:    request.CreatedAt,
	}
}

func toAPIUserSkills(skills *domain.UserSkills) api.UserSkills {
	offers := make([]api.SkillOffer, len(skills.Offers))
	for i, offer := range skills.Offers {
		offers[i] = toAPISkillOffer(offer)
	}
	requests := make([]api.SkillRequest, len(skills.Requests))
	for i, request := range skills.Requests {
		requests[i] = toAPISkillRequest(request)
	}
	return api.UserSkills{
		UserId:   skills.UserID,
		Offers:   offers,
		Requests: requests,
	}
}

func toAPISwap(view *domain.SwapView) api.Swap {
	swap := view.Swap
	return api.Swap{
		SwapId:                swap.ID,
		RequesterId:           swap.RequesterID,
		RequestedUserId:       swap.RequestedUserID,
		OfferedSkillId:        swap.OfferedSkillID,
		RequestedSkillId:      swap.RequestedSkillID,
		Status:                api.SwapStatus(swap.Status),
		Message:               swap.Message,
		Location:              swap.Location,
		ResponseDeadline:      swap.ResponseDeadline,
		ProposedStartDate:     swap.ProposedStartDate,
		ActualStartDate:       swap.ActualStartDate,
		CompletionDate:        swap.CompletionDate,
		RespondedAt:           swap.RespondedAt,
		RequesterProgress:     swap.RequesterProgress,
		RequestedUserProgress: swap.RequestedUserProgress,
		CloseReason:           swap.CloseReason,
		ClosedBy:              swap.ClosedBy,
		CreatedAt:             swap.CreatedAt,
		UpdatedAt:             swap.UpdatedAt,
		IsExpired:             view.IsExpired,
	}
}

func toAPISwaps(views []*domain.SwapView) []api.Swap {
	result := make([]api.Swap, len(views))
	for i, view := range views {
		result[i] = toAPISwap(view)
	}
	return result
}

func toAPIMatch(match *domain.Match) api.Match {
	return api.Match{
		UserId:           match.UserID,
		Username:         match.Username,
		SkillId:          match.SkillID,
		OfferId:          match.OfferID,
		ProficiencyLevel: match.ProficiencyLevel,
		CanTeachRemotely: match.CanTeachRemotely,
		CanTeachInPerson: match.CanTeachInPerson,
		AverageRating:    match.AverageRating,
		RatingCount:      match.RatingCount,
		MutualInterest:   match.MutualInterest,
		Score:            match.Score,
	}
}

func toAPIMatches(matches []*domain.Match) []api.Match {
	result := make([]api.Match, len(matches))
	for i, match := range matches {
		result[i] = toAPIMatch(match)
	}
	return result
}

func toAPIRecommendations(recommendations []*domain.Recommendation) []api.Recommendation {
	result := make([]api.Recommendation, len(recommendations))
	for i, rec := range recommendations {
		result[i] = api.Recommendation{
			Request:  toAPISkillRequest(rec.Request),
			Offerers: toAPIMatches(rec.Offerers),
		}
	}
	return result
}

func toAPIFeedback(feedback *domain.Feedback) api.Feedback {
	var swapID *string
	if feedback.SwapID != "" {
		id := feedback.SwapID
		swapID = &id
	}
	return api.Feedback{
		FeedbackId:      feedback.ID,
		SwapId:          swapID,
		GiverId:         feedback.GiverID,
		ReceiverId:      feedback.ReceiverID,
		Rating:          feedback.Rating,
		Comment:         feedback.Comment,
		IsPublic:        feedback.IsPublic,
		IsHidden:        feedback.IsHidden,
		Response:        feedback.Response,
		ResponseDate:    feedback.ResponseDate,
		HelpfulVotes:    feedback.HelpfulVotes,
		NotHelpfulVotes: feedback.NotHelpfulVotes,
		CreatedAt:       feedback.CreatedAt,
		UpdatedAt:       feedback.UpdatedAt,
	}
}

func toAPIFeedbackList(feedback []*domain.Feedback) []api.Feedback {
	result := make([]api.Feedback, len(feedback))
	for i, f := range feedback {
		result[i] = toAPIFeedback(f)
	}
	return result
}

func toAPIFeedbackSummary(summary *domain.FeedbackSummary) api.FeedbackSummary {
	distribution := make(map[string]int, len(summary.Distribution))
	for rating, count := range summary.Distribution {
		distribution[strconv.Itoa(rating)] = count
	}
	return api.FeedbackSummary{
		UserId:        summary.UserID,
		TotalFeedback: summary.TotalFeedback,
		AverageRating: summary.AverageRating,
		Distribution:  distribution,
		Recent:        toAPIFeedbackList(summary.Recent),
	}
}

func toAPIBadges(badges []*domain.Badge) []api.Badge {
	result := make([]api.Badge, len(badges))
	for i, badge := range badges {
		result[i] = api.Badge{
			UserId:    badge.UserID,
			SkillId:   badge.SkillID,
			Kind:      string(badge.Kind),
			Count:     badge.Count,
			AwardedAt: badge.AwardedAt,
		}
	}
	return result
}

func toErrorResponse(code, message string) api.ErrorResponse {
	var resp api.ErrorResponse
	resp.Error.Code = api.ErrorResponseErrorCode(code)
	resp.Error.Message = message
	return resp
}

func toAPIErrorResponse(httpErr domain.HTTPError) api.ErrorResponse {
	return toErrorResponse(httpErr.Code, httpErr.Message)
}

func getHTTPStatusCode(err error) int {
	switch {
	// Conflict errors (409)
	case errors.Is(err, domain.ErrSkillAlreadyExists), errors.Is(err, domain.ErrOfferAlreadyExists),
		errors.Is(err, domain.ErrDuplicateActiveRequest), errors.Is(err, domain.ErrDuplicatePendingSwap),
		errors.Is(err, domain.ErrDuplicateFeedback), errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrNotCancellable), errors.Is(err, domain.ErrDeadlineExpired):
		return http.StatusConflict

	// Not Found errors (404)
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrSkillNotFound),
		errors.Is(err, domain.ErrOfferNotFound), errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrSwapNotFound), errors.Is(err, domain.ErrFeedbackNotFound):
		return http.StatusNotFound

	// Access errors (401, 403)
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden

	// Unprocessable (422) - запрос корректен, но нарушает правила обмена
	case errors.Is(err, domain.ErrInvalidParticipant), errors.Is(err, domain.ErrSkillNotOwned):
		return http.StatusUnprocessableEntity

	// Bad Request errors (400) - валидация
	case errors.Is(err, domain.ErrInvalidUserID), errors.Is(err, domain.ErrInvalidSwapID),
		errors.Is(err, domain.ErrInvalidSkillID), errors.Is(err, domain.ErrInvalidSkillName),
		errors.Is(err, domain.ErrInvalidLevel), errors.Is(err, domain.ErrInvalidUrgency),
		errors.Is(err, domain.ErrInvalidProgress), errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrInvalidPagination), errors.Is(err, domain.ErrInvalidDirection),
		errors.Is(err, domain.ErrInvalidStatus), errors.Is(err, domain.ErrEmptyPatch),
		errors.Is(err, domain.ErrEmptyResponse), errors.Is(err, domain.ErrSelfFeedback):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// intValue разыменовывает необязательный числовой параметр.
func intValue(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func stringValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func boolValue(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
