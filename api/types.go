// Package api описывает HTTP-контракт сервиса: модели запросов и ответов,
// интерфейс сервера и регистрацию маршрутов в echo.
package api

import (
	"time"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Defines values for ErrorResponseErrorCode.
const (
	DEADLINEEXPIRED      ErrorResponseErrorCode = "DEADLINE_EXPIRED"
	DUPLICATEPENDINGSWAP ErrorResponseErrorCode = "DUPLICATE_PENDING_SWAP"
	FEEDBACKEXISTS       ErrorResponseErrorCode = "FEEDBACK_EXISTS"
	FORBIDDEN            ErrorResponseErrorCode = "FORBIDDEN"
	INTERNALERROR        ErrorResponseErrorCode = "INTERNAL_ERROR"
	INVALIDPARTICIPANT   ErrorResponseErrorCode = "INVALID_PARTICIPANT"
	INVALIDREQUEST       ErrorResponseErrorCode = "INVALID_REQUEST"
	INVALIDSTATE         ErrorResponseErrorCode = "INVALID_STATE"
	NOTCANCELLABLE       ErrorResponseErrorCode = "NOT_CANCELLABLE"
	NOTFOUND             ErrorResponseErrorCode = "NOT_FOUND"
	OFFEREXISTS          ErrorResponseErrorCode = "OFFER_EXISTS"
	REQUESTEXISTS        ErrorResponseErrorCode = "REQUEST_EXISTS"
	SKILLEXISTS          ErrorResponseErrorCode = "SKILL_EXISTS"
	SKILLNOTOWNED        ErrorResponseErrorCode = "SKILL_NOT_OWNED"
	UNAUTHORIZED         ErrorResponseErrorCode = "UNAUTHORIZED"
	VALIDATIONERROR      ErrorResponseErrorCode = "VALIDATION_ERROR"
)

// Defines values for SwapStatus.
const (
	ACCEPTED   SwapStatus = "ACCEPTED"
	CANCELLED  SwapStatus = "CANCELLED"
	COMPLETED  SwapStatus = "COMPLETED"
	INPROGRESS SwapStatus = "IN_PROGRESS"
	PENDING    SwapStatus = "PENDING"
	REJECTED   SwapStatus = "REJECTED"
)

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Error struct {
		Code    ErrorResponseErrorCode `json:"code"`
		Message string                 `json:"message"`
	} `json:"error"`
}

// ErrorResponseErrorCode defines model for ErrorResponse.Error.Code.
type ErrorResponseErrorCode string

// User defines model for User.
type User struct {
	AverageRating float64 `json:"average_rating"`
	IsActive      bool    `json:"is_active"`
	IsBanned      bool    `json:"is_banned"`
	IsPublic      bool    `json:"is_public"`
	RatingCount   int     `json:"rating_count"`
	UserId        string  `json:"user_id"`
	Username      string  `json:"username"`
}

// Skill defines model for Skill.
type Skill struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	SkillId  string `json:"skill_id"`
}

// SkillOffer defines model for SkillOffer.
type SkillOffer struct {
	CanTeachInPerson bool      `json:"can_teach_in_person"`
	CanTeachRemotely bool      `json:"can_teach_remotely"`
	CreatedAt        time.Time `json:"created_at"`
	IsApproved       bool      `json:"is_approved"`
	OfferId          string    `json:"offer_id"`
	ProficiencyLevel string    `json:"proficiency_level"`
	SkillId          string    `json:"skill_id"`
	UserId           string    `json:"user_id"`
}

// SkillRequest defines model for SkillRequest.
type SkillRequest struct {
	CreatedAt    time.Time `json:"created_at"`
	DesiredLevel string    `json:"desired_level"`
	IsActive     bool      `json:"is_active"`
	Message      string    `json:"message,omitempty"`
	RequestId    string    `json:"request_id"`
	SkillId      string    `json:"skill_id"`
	Urgency      string    `json:"urgency,omitempty"`
	UserId       string    `json:"user_id"`
}

// UserSkills defines model for UserSkills.
type UserSkills struct {
	Offers   []SkillOffer   `json:"offers"`
	Requests []SkillRequest `json:"requests"`
	UserId   string         `json:"user_id"`
}

// SwapStatus defines model for SwapStatus.
type SwapStatus string

// Swap defines model for Swap.
type Swap struct {
	ActualStartDate       *time.Time `json:"actual_start_date,omitempty"`
	CloseReason           string     `json:"close_reason,omitempty"`
	ClosedBy              string     `json:"closed_by,omitempty"`
	CompletionDate        *time.Time `json:"completion_date,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	IsExpired             bool       `json:"is_expired"`
	Location              string     `json:"location,omitempty"`
	Message               string     `json:"message,omitempty"`
	OfferedSkillId        string     `json:"offered_skill_id"`
	ProposedStartDate     *time.Time `json:"proposed_start_date,omitempty"`
	RequestedSkillId      string     `json:"requested_skill_id"`
	RequestedUserId       string     `json:"requested_user_id"`
	RequestedUserProgress int        `json:"requested_user_progress"`
	RequesterId           string     `json:"requester_id"`
	RequesterProgress     int        `json:"requester_progress"`
	RespondedAt           *time.Time `json:"responded_at,omitempty"`
	ResponseDeadline      time.Time  `json:"response_deadline"`
	Status                SwapStatus `json:"status"`
	SwapId                string     `json:"swap_id"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// Match defines model for Match.
type Match struct {
	AverageRating    float64 `json:"average_rating"`
	CanTeachInPerson bool    `json:"can_teach_in_person"`
	CanTeachRemotely bool    `json:"can_teach_remotely"`
	MutualInterest   bool    `json:"mutual_interest"`
	OfferId          string  `json:"offer_id"`
	ProficiencyLevel string  `json:"proficiency_level"`
	RatingCount      int     `json:"rating_count"`
	Score            int     `json:"score"`
	SkillId          string  `json:"skill_id"`
	UserId           string  `json:"user_id"`
	Username         string  `json:"username"`
}

// Recommendation defines model for Recommendation.
type Recommendation struct {
	Offerers []Match     `json:"offerers"`
	Request  SkillRequest `json:"request"`
}

// Feedback defines model for Feedback.
type Feedback struct {
	Comment         string     `json:"comment,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	FeedbackId      string     `json:"feedback_id"`
	GiverId         string     `json:"giver_id"`
	HelpfulVotes    int        `json:"helpful_votes"`
	IsHidden        bool       `json:"is_hidden"`
	IsPublic        bool       `json:"is_public"`
	NotHelpfulVotes int        `json:"not_helpful_votes"`
	Rating          int        `json:"rating"`
	ReceiverId      string     `json:"receiver_id"`
	Response        string     `json:"response,omitempty"`
	ResponseDate    *time.Time `json:"response_date,omitempty"`
	SwapId          *string    `json:"swap_id,omitempty"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// FeedbackSummary defines model for FeedbackSummary.
type FeedbackSummary struct {
	AverageRating float64        `json:"average_rating"`
	Distribution  map[string]int `json:"distribution"`
	Recent        []Feedback     `json:"recent"`
	TotalFeedback int            `json:"total_feedback"`
	UserId        string         `json:"user_id"`
}

// Badge defines model for Badge.
type Badge struct {
	AwardedAt time.Time `json:"awarded_at"`
	Count     int       `json:"count"`
	Kind      string    `json:"kind"`
	SkillId   string    `json:"skill_id"`
	UserId    string    `json:"user_id"`
}

// SwapStatusStat defines model for SwapStatusStat.
type SwapStatusStat struct {
	Count  int64      `json:"count"`
	Status SwapStatus `json:"status"`
}

// TopRatedUser defines model for TopRatedUser.
type TopRatedUser struct {
	AverageRating float64 `json:"average_rating"`
	RatingCount   int     `json:"rating_count"`
	UserId        string  `json:"user_id"`
	Username      string  `json:"username"`
}

// PostUsersMeJSONBody defines parameters for PostUsersMe.
type PostUsersMeJSONBody struct {
	IsPublic *bool   `json:"is_public,omitempty"`
	Username *string `json:"username,omitempty"`
}

// PostUsersSetIsActiveJSONBody defines parameters for PostUsersSetIsActive.
type PostUsersSetIsActiveJSONBody struct {
	IsActive bool   `json:"is_active"`
	UserId   string `json:"user_id"`
}

// PostUsersSetIsBannedJSONBody defines parameters for PostUsersSetIsBanned.
type PostUsersSetIsBannedJSONBody struct {
	IsBanned bool   `json:"is_banned"`
	UserId   string `json:"user_id"`
}

// PostSkillsJSONBody defines parameters for PostSkills.
type PostSkillsJSONBody struct {
	Category *string `json:"category,omitempty"`
	Name     string  `json:"name"`
}

// PostSkillsOffersSetIsApprovedJSONBody defines parameters for PostSkillsOffersSetIsApproved.
type PostSkillsOffersSetIsApprovedJSONBody struct {
	IsApproved bool   `json:"is_approved"`
	OfferId    string `json:"offer_id"`
}

// PostMeOffersJSONBody defines parameters for PostMeOffers.
type PostMeOffersJSONBody struct {
	CanTeachInPerson *bool   `json:"can_teach_in_person,omitempty"`
	CanTeachRemotely *bool   `json:"can_teach_remotely,omitempty"`
	ProficiencyLevel *string `json:"proficiency_level,omitempty"`
	SkillId          string  `json:"skill_id"`
}

// PostMeRequestsJSONBody defines parameters for PostMeRequests.
type PostMeRequestsJSONBody struct {
	DesiredLevel *string `json:"desired_level,omitempty"`
	Message      *string `json:"message,omitempty"`
	SkillId      string  `json:"skill_id"`
	Urgency      *string `json:"urgency,omitempty"`
}

// PostSwapsJSONBody defines parameters for PostSwaps.
type PostSwapsJSONBody struct {
	Location          *string    `json:"location,omitempty"`
	Message           *string    `json:"message,omitempty"`
	OfferedSkillId    string     `json:"offered_skill_id"`
	ProposedStartDate *time.Time `json:"proposed_start_date,omitempty"`
	RequestedSkillId  string     `json:"requested_skill_id"`
	RequestedUserId   string     `json:"requested_user_id"`
}

// PatchSwapsSwapIdJSONBody defines parameters for PatchSwapsSwapId.
type PatchSwapsSwapIdJSONBody struct {
	Location          *string    `json:"location,omitempty"`
	Message           *string    `json:"message,omitempty"`
	ProposedStartDate *time.Time `json:"proposed_start_date,omitempty"`
}

// PostSwapsSwapIdAcceptJSONBody defines parameters for PostSwapsSwapIdAccept.
type PostSwapsSwapIdAcceptJSONBody struct {
	Location  *string    `json:"location,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
}

// PostSwapsSwapIdRejectJSONBody defines parameters for PostSwapsSwapIdReject.
type PostSwapsSwapIdRejectJSONBody struct {
	Reason *string `json:"reason,omitempty"`
}

// PostSwapsSwapIdProgressJSONBody defines parameters for PostSwapsSwapIdProgress.
type PostSwapsSwapIdProgressJSONBody struct {
	Percent *int `json:"percent"`
}

// PostSwapsSwapIdCancelJSONBody defines parameters for PostSwapsSwapIdCancel.
type PostSwapsSwapIdCancelJSONBody struct {
	Reason *string `json:"reason,omitempty"`
}

// PostFeedbackJSONBody defines parameters for PostFeedback.
type PostFeedbackJSONBody struct {
	Comment    *string `json:"comment,omitempty"`
	IsPublic   *bool   `json:"is_public,omitempty"`
	Rating     int     `json:"rating"`
	ReceiverId string  `json:"receiver_id"`
	SwapId     *string `json:"swap_id,omitempty"`
}

// PatchFeedbackFeedbackIdJSONBody defines parameters for PatchFeedbackFeedbackId.
type PatchFeedbackFeedbackIdJSONBody struct {
	Comment  *string `json:"comment,omitempty"`
	IsPublic *bool   `json:"is_public,omitempty"`
	Rating   *int    `json:"rating,omitempty"`
}

// PostFeedbackFeedbackIdRespondJSONBody defines parameters for PostFeedbackFeedbackIdRespond.
type PostFeedbackFeedbackIdRespondJSONBody struct {
	Response string `json:"response"`
}

// PostFeedbackFeedbackIdHelpfulJSONBody defines parameters for PostFeedbackFeedbackIdHelpful.
type PostFeedbackFeedbackIdHelpfulJSONBody struct {
	Helpful bool `json:"helpful"`
}

// PostFeedbackFeedbackIdHideJSONBody defines parameters for PostFeedbackFeedbackIdHide.
type PostFeedbackFeedbackIdHideJSONBody struct {
	IsHidden bool `json:"is_hidden"`
}

// GetSwapsParams defines parameters for GetSwaps.
type GetSwapsParams struct {
	Direction *string     `form:"direction,omitempty" json:"direction,omitempty"`
	Status    *SwapStatus `form:"status,omitempty" json:"status,omitempty"`
	Skip      *int        `form:"skip,omitempty" json:"skip,omitempty"`
	Limit     *int        `form:"limit,omitempty" json:"limit,omitempty"`
}

// GetMatchesParams defines parameters for GetMatches.
type GetMatchesParams struct {
	SkillId    *string `form:"skill_id,omitempty" json:"skill_id,omitempty"`
	Level      *string `form:"level,omitempty" json:"level,omitempty"`
	RemoteOnly *bool   `form:"remote_only,omitempty" json:"remote_only,omitempty"`
	Skip       *int    `form:"skip,omitempty" json:"skip,omitempty"`
	Limit      *int    `form:"limit,omitempty" json:"limit,omitempty"`
}

// GetMatchesRecommendedParams defines parameters for GetMatchesRecommended.
type GetMatchesRecommendedParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// GetUsersUserIdFeedbackParams defines parameters for GetUsersUserIdFeedback.
type GetUsersUserIdFeedbackParams struct {
	PublicOnly *bool `form:"public_only,omitempty" json:"public_only,omitempty"`
	Skip       *int  `form:"skip,omitempty" json:"skip,omitempty"`
	Limit      *int  `form:"limit,omitempty" json:"limit,omitempty"`
}

// GetUsersPublicParams defines parameters for GetUsersPublic.
type GetUsersPublicParams struct {
	Search   *string `form:"search,omitempty" json:"search,omitempty"`
	SkillId  *string `form:"skill_id,omitempty" json:"skill_id,omitempty"`
	Category *string `form:"category,omitempty" json:"category,omitempty"`
	Skip     *int    `form:"skip,omitempty" json:"skip,omitempty"`
	Limit    *int    `form:"limit,omitempty" json:"limit,omitempty"`
}

// GetFeedbackMyGivenParams defines parameters for GetFeedbackMyGiven.
type GetFeedbackMyGivenParams struct {
	Skip  *int `form:"skip,omitempty" json:"skip,omitempty"`
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// GetStatsTopRatedParams defines parameters for GetStatsTopRated.
type GetStatsTopRatedParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}
