package mocks

import (
	"context"
	"time"

	"skill-swap-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

// SwapUseCase - мок domain.SwapUseCase.
type SwapUseCase struct {
	mock.Mock
}

func (m *SwapUseCase) swapResult(ret mock.Arguments) (*domain.Swap, error) {
	swap, _ := ret.Get(0).(*domain.Swap)
	return swap, ret.Error(1)
}

func (m *SwapUseCase) CreateSwap(ctx context.Context, actorID string, input domain.CreateSwapInput) (*domain.Swap, error) {
	return m.swapResult(m.Called(ctx, actorID, input))
}

func (m *SwapUseCase) AcceptSwap(ctx context.Context, actorID, swapID string, startDate *time.Time, location string) (*domain.Swap, error) {
	return m.swapResult(m.Called(ctx, actorID, swapID, startDate, location))
}

func (m *SwapUseCase) RejectSwap(ctx context.Context, actorID, swapID, reason string) (*domain.Swap, error) {
	return m.swapResult(m.Called(ctx, actorID, swapID, reason))
}

func (m *SwapUseCase) StartSwap(ctx context.Context, actorID, swapID string) (*domain.Swap, error) {
	return m.swapResult(m.Called(ctx, actorID, swapID))
}

func (m *SwapUseCase) UpdateProgress(ctx context.Context, actorID, swapID string, percent int) (*domain.Swap, error) {
	return m.swapResult(m.Called(ctx, actorID, swapID, percent))
}

func (m *SwapUseCase) CompleteSwap(ctx context.Context, actorID, swapID string) (*domain.Swap, error) {
	return m.swapResult(m.Called(ctx, actorID, swapID))
}

func (m *SwapUseCase) CancelSwap(ctx context.Context, actorID, swapID, reason string) (*domain.Swap, error) {
	return m.swapResult(m.Called(ctx, actorID, swapID, reason))
}

func (m *SwapUseCase) DeleteSwap(ctx context.Context, actorID, swapID string) error {
	return m.Called(ctx, actorID, swapID).Error(0)
}

func (m *SwapUseCase) UpdateSwapDetails(ctx context.Context, actorID, swapID string, patch domain.SwapDetailsPatch) (*domain.Swap, error) {
	return m.swapResult(m.Called(ctx, actorID, swapID, patch))
}

func (m *SwapUseCase) GetSwap(ctx context.Context, actorID, swapID string) (*domain.SwapView, error) {
	ret := m.Called(ctx, actorID, swapID)
	view, _ := ret.Get(0).(*domain.SwapView)
	return view, ret.Error(1)
}

func (m *SwapUseCase) ListSwaps(ctx context.Context, actorID string, filter domain.SwapFilter) ([]*domain.SwapView, error) {
	ret := m.Called(ctx, actorID, filter)
	views, _ := ret.Get(0).([]*domain.SwapView)
	return views, ret.Error(1)
}

// MatchUseCase - мок domain.MatchUseCase.
type MatchUseCase struct {
	mock.Mock
}

func (m *MatchUseCase) FindMatches(ctx context.Context, userID string, query domain.MatchQuery) ([]*domain.Match, error) {
	ret := m.Called(ctx, userID, query)
	matches, _ := ret.Get(0).([]*domain.Match)
	return matches, ret.Error(1)
}

func (m *MatchUseCase) RecommendedFor(ctx context.Context, userID string, limit int) ([]*domain.Recommendation, error) {
	ret := m.Called(ctx, userID, limit)
	recommendations, _ := ret.Get(0).([]*domain.Recommendation)
	return recommendations, ret.Error(1)
}

// FeedbackUseCase - мок domain.FeedbackUseCase.
type FeedbackUseCase struct {
	mock.Mock
}

func (m *FeedbackUseCase) feedbackResult(ret mock.Arguments) (*domain.Feedback, error) {
	feedback, _ := ret.Get(0).(*domain.Feedback)
	return feedback, ret.Error(1)
}

func (m *FeedbackUseCase) CreateFeedback(ctx context.Context, actorID string, input domain.FeedbackInput) (*domain.Feedback, error) {
	return m.feedbackResult(m.Called(ctx, actorID, input))
}

func (m *FeedbackUseCase) UpdateFeedback(ctx context.Context, actorID, feedbackID string, patch domain.FeedbackPatch) (*domain.Feedback, error) {
	return m.feedbackResult(m.Called(ctx, actorID, feedbackID, patch))
}

func (m *FeedbackUseCase) DeleteFeedback(ctx context.Context, actorID, feedbackID string) error {
	return m.Called(ctx, actorID, feedbackID).Error(0)
}

func (m *FeedbackUseCase) RespondToFeedback(ctx context.Context, actorID, feedbackID, response string) (*domain.Feedback, error) {
	return m.feedbackResult(m.Called(ctx, actorID, feedbackID, response))
}

func (m *FeedbackUseCase) VoteFeedback(ctx context.Context, actorID, feedbackID string, helpful bool) (*domain.Feedback, error) {
	return m.feedbackResult(m.Called(ctx, actorID, feedbackID, helpful))
}

func (m *FeedbackUseCase) SetFeedbackHidden(ctx context.Context, feedbackID string, hidden bool) (*domain.Feedback, error) {
	return m.feedbackResult(m.Called(ctx, feedbackID, hidden))
}

func (m *FeedbackUseCase) ListReceived(ctx context.Context, filter domain.FeedbackFilter) ([]*domain.Feedback, error) {
	ret := m.Called(ctx, filter)
	feedback, _ := ret.Get(0).([]*domain.Feedback)
	return feedback, ret.Error(1)
}

func (m *FeedbackUseCase) GetFeedback(ctx context.Context, actorID, feedbackID string) (*domain.Feedback, error) {
	return m.feedbackResult(m.Called(ctx, actorID, feedbackID))
}

func (m *FeedbackUseCase) ListGiven(ctx context.Context, actorID string, skip, limit int) ([]*domain.Feedback, error) {
	ret := m.Called(ctx, actorID, skip, limit)
	feedback, _ := ret.Get(0).([]*domain.Feedback)
	return feedback, ret.Error(1)
}

func (m *FeedbackUseCase) ListBadges(ctx context.Context, userID string) ([]*domain.Badge, error) {
	ret := m.Called(ctx, userID)
	badges, _ := ret.Get(0).([]*domain.Badge)
	return badges, ret.Error(1)
}

func (m *FeedbackUseCase) GetSummary(ctx context.Context, userID string) (*domain.FeedbackSummary, error) {
	ret := m.Called(ctx, userID)
	summary, _ := ret.Get(0).(*domain.FeedbackSummary)
	return summary, ret.Error(1)
}

func (m *FeedbackUseCase) RecomputeRating(ctx context.Context, userID string) (*domain.User, error) {
	ret := m.Called(ctx, userID)
	user, _ := ret.Get(0).(*domain.User)
	return user, ret.Error(1)
}

// UserUseCase - мок domain.UserUseCase.
type UserUseCase struct {
	mock.Mock
}

func (m *UserUseCase) RegisterProfile(ctx context.Context, actorID, username string, isPublic bool) (*domain.User, error) {
	ret := m.Called(ctx, actorID, username, isPublic)
	user, _ := ret.Get(0).(*domain.User)
	return user, ret.Error(1)
}

func (m *UserUseCase) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	ret := m.Called(ctx, userID)
	user, _ := ret.Get(0).(*domain.User)
	return user, ret.Error(1)
}

func (m *UserUseCase) ListPublicProfiles(ctx context.Context, filter domain.UserDirectoryFilter) ([]*domain.User, error) {
	ret := m.Called(ctx, filter)
	users, _ := ret.Get(0).([]*domain.User)
	return users, ret.Error(1)
}

func (m *UserUseCase) SetUserActive(ctx context.Context, userID string, isActive bool) (*domain.User, error) {
	ret := m.Called(ctx, userID, isActive)
	user, _ := ret.Get(0).(*domain.User)
	return user, ret.Error(1)
}

func (m *UserUseCase) SetUserBanned(ctx context.Context, userID string, isBanned bool) (*domain.User, error) {
	ret := m.Called(ctx, userID, isBanned)
	user, _ := ret.Get(0).(*domain.User)
	return user, ret.Error(1)
}

// SkillUseCase - мок domain.SkillUseCase.
type SkillUseCase struct {
	mock.Mock
}

func (m *SkillUseCase) CreateSkill(ctx context.Context, name, category string) (*domain.Skill, error) {
	ret := m.Called(ctx, name, category)
	skill, _ := ret.Get(0).(*domain.Skill)
	return skill, ret.Error(1)
}

func (m *SkillUseCase) OfferSkill(ctx context.Context, actorID string, offer *domain.SkillOffer) (*domain.SkillOffer, error) {
	ret := m.Called(ctx, actorID, offer)
	result, _ := ret.Get(0).(*domain.SkillOffer)
	return result, ret.Error(1)
}

func (m *SkillUseCase) WithdrawOffer(ctx context.Context, actorID, offerID string) error {
	return m.Called(ctx, actorID, offerID).Error(0)
}

func (m *SkillUseCase) SetOfferApproved(ctx context.Context, offerID string, approved bool) (*domain.SkillOffer, error) {
	ret := m.Called(ctx, offerID, approved)
	offer, _ := ret.Get(0).(*domain.SkillOffer)
	return offer, ret.Error(1)
}

func (m *SkillUseCase) RequestSkill(ctx context.Context, actorID string, request *domain.SkillRequest) (*domain.SkillRequest, error) {
	ret := m.Called(ctx, actorID, request)
	result, _ := ret.Get(0).(*domain.SkillRequest)
	return result, ret.Error(1)
}

func (m *SkillUseCase) CloseRequest(ctx context.Context, actorID, requestID string) error {
	return m.Called(ctx, actorID, requestID).Error(0)
}

func (m *SkillUseCase) GetUserSkills(ctx context.Context, userID string) (*domain.UserSkills, error) {
	ret := m.Called(ctx, userID)
	skills, _ := ret.Get(0).(*domain.UserSkills)
	return skills, ret.Error(1)
}
