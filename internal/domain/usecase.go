package domain

import (
	"context"
	"time"
)

// CreateSwapInput - параметры нового предложения обмена.
type CreateSwapInput struct {
	RequestedUserID  string
	OfferedSkillID   string
	RequestedSkillID string
	Details          SwapDetails
}

// SwapUseCase определяет машину состояний обмена.
type SwapUseCase interface {
	CreateSwap(ctx context.Context, actorID string, input CreateSwapInput) (*Swap, error)
	AcceptSwap(ctx context.Context, actorID, swapID string, startDate *time.Time, location string) (*Swap, error)
	RejectSwap(ctx context.Context, actorID, swapID, reason string) (*Swap, error)
	StartSwap(ctx context.Context, actorID, swapID string) (*Swap, error)
	UpdateProgress(ctx context.Context, actorID, swapID string, percent int) (*Swap, error)
	CompleteSwap(ctx context.Context, actorID, swapID string) (*Swap, error)
	CancelSwap(ctx context.Context, actorID, swapID, reason string) (*Swap, error)
	DeleteSwap(ctx context.Context, actorID, swapID string) error
	UpdateSwapDetails(ctx context.Context, actorID, swapID string, patch SwapDetailsPatch) (*Swap, error)
	GetSwap(ctx context.Context, actorID, swapID string) (*SwapView, error)
	ListSwaps(ctx context.Context, actorID string, filter SwapFilter) ([]*SwapView, error)
}

// MatchUseCase определяет поиск совпадений и рекомендации.
type MatchUseCase interface {
	FindMatches(ctx context.Context, userID string, query MatchQuery) ([]*Match, error)
	RecommendedFor(ctx context.Context, userID string, limit int) ([]*Recommendation, error)
}

// FeedbackUseCase определяет работу с отзывами и агрегированным рейтингом.
type FeedbackUseCase interface {
	CreateFeedback(ctx context.Context, actorID string, input FeedbackInput) (*Feedback, error)
	UpdateFeedback(ctx context.Context, actorID, feedbackID string, patch FeedbackPatch) (*Feedback, error)
	DeleteFeedback(ctx context.Context, actorID, feedbackID string) error
	RespondToFeedback(ctx context.Context, actorID, feedbackID, response string) (*Feedback, error)
	VoteFeedback(ctx context.Context, actorID, feedbackID string, helpful bool) (*Feedback, error)
	SetFeedbackHidden(ctx context.Context, feedbackID string, hidden bool) (*Feedback, error)
	GetFeedback(ctx context.Context, actorID, feedbackID string) (*Feedback, error)
	ListReceived(ctx context.Context, filter FeedbackFilter) ([]*Feedback, error)
	ListGiven(ctx context.Context, actorID string, skip, limit int) ([]*Feedback, error)
	ListBadges(ctx context.Context, userID string) ([]*Badge, error)
	GetSummary(ctx context.Context, userID string) (*FeedbackSummary, error)
	RecomputeRating(ctx context.Context, userID string) (*User, error)
}

// SkillUseCase определяет работу с каталогом, предложениями и запросами навыков.
type SkillUseCase interface {
	CreateSkill(ctx context.Context, name, category string) (*Skill, error)
	OfferSkill(ctx context.Context, actorID string, offer *SkillOffer) (*SkillOffer, error)
	WithdrawOffer(ctx context.Context, actorID, offerID string) error
	SetOfferApproved(ctx context.Context, offerID string, approved bool) (*SkillOffer, error)
	RequestSkill(ctx context.Context, actorID string, request *SkillRequest) (*SkillRequest, error)
	CloseRequest(ctx context.Context, actorID, requestID string) error
	GetUserSkills(ctx context.Context, userID string) (*UserSkills, error)
}

// UserUseCase определяет бизнес-логику для работы с пользователями.
type UserUseCase interface {
	RegisterProfile(ctx context.Context, actorID, username string, isPublic bool) (*User, error)
	GetUser(ctx context.Context, userID string) (*User, error)
	ListPublicProfiles(ctx context.Context, filter UserDirectoryFilter) ([]*User, error)
	SetUserActive(ctx context.Context, userID string, isActive bool) (*User, error)
	SetUserBanned(ctx context.Context, userID string, isBanned bool) (*User, error)
}

// StatsUseCase определяет бизнес-логику для работы со статистикой.
type StatsUseCase interface {
	GetSwapStatusStats(ctx context.Context) ([]*SwapStatusStat, error)
	GetTopRatedUsers(ctx context.Context, limit int) ([]*TopRatedUser, error)
}
