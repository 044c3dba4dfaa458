// Package mocks содержит testify-моки репозиториев и use case'ов.
package mocks

import (
	"context"

	"skill-swap-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

// UserRepository - мок domain.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	ret := m.Called(ctx, userID)
	user, _ := ret.Get(0).(*domain.User)
	return user, ret.Error(1)
}

func (m *UserRepository) Upsert(ctx context.Context, user *domain.User) (*domain.User, error) {
	ret := m.Called(ctx, user)
	result, _ := ret.Get(0).(*domain.User)
	return result, ret.Error(1)
}

func (m *UserRepository) UpdateActiveStatus(ctx context.Context, userID string, isActive bool) (*domain.User, error) {
	ret := m.Called(ctx, userID, isActive)
	user, _ := ret.Get(0).(*domain.User)
	return user, ret.Error(1)
}

func (m *UserRepository) UpdateBannedStatus(ctx context.Context, userID string, isBanned bool) (*domain.User, error) {
	ret := m.Called(ctx, userID, isBanned)
	user, _ := ret.Get(0).(*domain.User)
	return user, ret.Error(1)
}

func (m *UserRepository) GetByIDs(ctx context.Context, userIDs []string) (map[string]*domain.User, error) {
	ret := m.Called(ctx, userIDs)
	users, _ := ret.Get(0).(map[string]*domain.User)
	return users, ret.Error(1)
}

func (m *UserRepository) ListPublic(ctx context.Context, filter domain.UserDirectoryFilter) ([]*domain.User, error) {
	ret := m.Called(ctx, filter)
	users, _ := ret.Get(0).([]*domain.User)
	return users, ret.Error(1)
}

// SkillRepository - мок domain.SkillRepository.
type SkillRepository struct {
	mock.Mock
}

func (m *SkillRepository) CreateSkill(ctx context.Context, skill *domain.Skill) error {
	return m.Called(ctx, skill).Error(0)
}

func (m *SkillRepository) GetSkill(ctx context.Context, skillID string) (*domain.Skill, error) {
	ret := m.Called(ctx, skillID)
	skill, _ := ret.Get(0).(*domain.Skill)
	return skill, ret.Error(1)
}

func (m *SkillRepository) ExistsSkillName(ctx context.Context, name string) (bool, error) {
	ret := m.Called(ctx, name)
	return ret.Bool(0), ret.Error(1)
}

func (m *SkillRepository) CreateOffer(ctx context.Context, offer *domain.SkillOffer) error {
	return m.Called(ctx, offer).Error(0)
}

func (m *SkillRepository) GetOffer(ctx context.Context, offerID string) (*domain.SkillOffer, error) {
	ret := m.Called(ctx, offerID)
	offer, _ := ret.Get(0).(*domain.SkillOffer)
	return offer, ret.Error(1)
}

func (m *SkillRepository) GetUserOffer(ctx context.Context, userID, skillID string) (*domain.SkillOffer, error) {
	ret := m.Called(ctx, userID, skillID)
	offer, _ := ret.Get(0).(*domain.SkillOffer)
	return offer, ret.Error(1)
}

func (m *SkillRepository) DeleteOffer(ctx context.Context, offerID string) error {
	return m.Called(ctx, offerID).Error(0)
}

func (m *SkillRepository) SetOfferApproved(ctx context.Context, offerID string, approved bool) (*domain.SkillOffer, error) {
	ret := m.Called(ctx, offerID, approved)
	offer, _ := ret.Get(0).(*domain.SkillOffer)
	return offer, ret.Error(1)
}

func (m *SkillRepository) GetUserOffers(ctx context.Context, userID string) ([]*domain.SkillOffer, error) {
	ret := m.Called(ctx, userID)
	offers, _ := ret.Get(0).([]*domain.SkillOffer)
	return offers, ret.Error(1)
}

func (m *SkillRepository) GetOffersBySkills(ctx context.Context, skillIDs []string, excludeUserID string) ([]*domain.SkillOffer, error) {
	ret := m.Called(ctx, skillIDs, excludeUserID)
	offers, _ := ret.Get(0).([]*domain.SkillOffer)
	return offers, ret.Error(1)
}

func (m *SkillRepository) CreateRequest(ctx context.Context, request *domain.SkillRequest) error {
	return m.Called(ctx, request).Error(0)
}

func (m *SkillRepository) GetRequest(ctx context.Context, requestID string) (*domain.SkillRequest, error) {
	ret := m.Called(ctx, requestID)
	request, _ := ret.Get(0).(*domain.SkillRequest)
	return request, ret.Error(1)
}

func (m *SkillRepository) DeactivateRequest(ctx context.Context, requestID string) error {
	return m.Called(ctx, requestID).Error(0)
}

func (m *SkillRepository) HasActiveRequest(ctx context.Context, userID, skillID string) (bool, error) {
	ret := m.Called(ctx, userID, skillID)
	return ret.Bool(0), ret.Error(1)
}

func (m *SkillRepository) GetUserRequests(ctx context.Context, userID string, activeOnly bool) ([]*domain.SkillRequest, error) {
	ret := m.Called(ctx, userID, activeOnly)
	requests, _ := ret.Get(0).([]*domain.SkillRequest)
	return requests, ret.Error(1)
}

func (m *SkillRepository) GetActiveRequestsBySkills(ctx context.Context, skillIDs []string, userIDs []string) ([]*domain.SkillRequest, error) {
	ret := m.Called(ctx, skillIDs, userIDs)
	requests, _ := ret.Get(0).([]*domain.SkillRequest)
	return requests, ret.Error(1)
}

// SwapRepository - мок domain.SwapRepository.
// Mutate и Delete ожидают вызов с (ctx, swapID) и возвращают из Return
// сохраненный обмен, над копией которого выполняется переданная функция.
type SwapRepository struct {
	mock.Mock
}

func (m *SwapRepository) Create(ctx context.Context, swap *domain.Swap) error {
	return m.Called(ctx, swap).Error(0)
}

func (m *SwapRepository) GetByID(ctx context.Context, swapID string) (*domain.Swap, error) {
	ret := m.Called(ctx, swapID)
	swap, _ := ret.Get(0).(*domain.Swap)
	return swap, ret.Error(1)
}

func (m *SwapRepository) Mutate(ctx context.Context, swapID string, fn domain.SwapMutator) (*domain.Swap, error) {
	ret := m.Called(ctx, swapID)
	stored, _ := ret.Get(0).(*domain.Swap)
	if err := ret.Error(1); err != nil {
		return nil, err
	}

	swap := *stored
	changed, err := fn(&swap)
	if !changed {
		if err != nil {
			return nil, err
		}
		return &swap, nil
	}

	swap.Version++
	*stored = swap
	result := swap
	return &result, err
}

func (m *SwapRepository) Delete(ctx context.Context, swapID string, check func(swap *domain.Swap) error) error {
	ret := m.Called(ctx, swapID)
	stored, _ := ret.Get(0).(*domain.Swap)
	if err := ret.Error(1); err != nil {
		return err
	}
	swap := *stored
	return check(&swap)
}

func (m *SwapRepository) List(ctx context.Context, filter domain.SwapFilter) ([]*domain.Swap, error) {
	ret := m.Called(ctx, filter)
	swaps, _ := ret.Get(0).([]*domain.Swap)
	return swaps, ret.Error(1)
}

func (m *SwapRepository) ExistsPending(ctx context.Context, key domain.SwapKey) (bool, error) {
	ret := m.Called(ctx, key)
	return ret.Bool(0), ret.Error(1)
}

// FeedbackRepository - мок domain.FeedbackRepository.
// Mutate ожидает вызов с (ctx, feedbackID) и выполняет функцию над копией
// отзыва из Return; измененная копия записывается обратно.
// RecomputeRating ожидает вызов с (ctx, userID) и возвращает из Return
// список оценок и пользователя, к которому применяется агрегат.
type FeedbackRepository struct {
	mock.Mock
}

func (m *FeedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	return m.Called(ctx, feedback).Error(0)
}

func (m *FeedbackRepository) GetByID(ctx context.Context, feedbackID string) (*domain.Feedback, error) {
	ret := m.Called(ctx, feedbackID)
	feedback, _ := ret.Get(0).(*domain.Feedback)
	return feedback, ret.Error(1)
}

func (m *FeedbackRepository) ExistsForSwap(ctx context.Context, swapID, giverID string) (bool, error) {
	ret := m.Called(ctx, swapID, giverID)
	return ret.Bool(0), ret.Error(1)
}

func (m *FeedbackRepository) Mutate(ctx context.Context, feedbackID string, fn domain.FeedbackMutator) (*domain.Feedback, error) {
	ret := m.Called(ctx, feedbackID)
	stored, _ := ret.Get(0).(*domain.Feedback)
	if err := ret.Error(1); err != nil {
		return nil, err
	}

	feedback := *stored
	changed, err := fn(&feedback)
	if err != nil {
		return nil, err
	}
	if changed {
		*stored = feedback
	}
	result := feedback
	return &result, nil
}

func (m *FeedbackRepository) Delete(ctx context.Context, feedbackID string) error {
	return m.Called(ctx, feedbackID).Error(0)
}

func (m *FeedbackRepository) IncrementVotes(ctx context.Context, feedbackID string, helpful bool) (*domain.Feedback, error) {
	ret := m.Called(ctx, feedbackID, helpful)
	feedback, _ := ret.Get(0).(*domain.Feedback)
	return feedback, ret.Error(1)
}

func (m *FeedbackRepository) ListReceived(ctx context.Context, filter domain.FeedbackFilter) ([]*domain.Feedback, error) {
	ret := m.Called(ctx, filter)
	feedback, _ := ret.Get(0).([]*domain.Feedback)
	return feedback, ret.Error(1)
}

func (m *FeedbackRepository) ListGiven(ctx context.Context, giverID string, skip, limit int) ([]*domain.Feedback, error) {
	ret := m.Called(ctx, giverID, skip, limit)
	feedback, _ := ret.Get(0).([]*domain.Feedback)
	return feedback, ret.Error(1)
}

func (m *FeedbackRepository) RecomputeRating(ctx context.Context, userID string, aggregate func(ratings []int) domain.RatingAggregate) (*domain.User, error) {
	ret := m.Called(ctx, userID)
	ratings, _ := ret.Get(0).([]int)
	user, _ := ret.Get(1).(*domain.User)
	if err := ret.Error(2); err != nil {
		return nil, err
	}

	result := aggregate(ratings)
	updated := *user
	updated.AverageRating = result.Average
	updated.RatingCount = result.Count
	return &updated, nil
}

// StatsRepository - мок domain.StatsRepository.
type StatsRepository struct {
	mock.Mock
}

func (m *StatsRepository) GetSwapStatusStats(ctx context.Context) ([]*domain.SwapStatusStat, error) {
	ret := m.Called(ctx)
	stats, _ := ret.Get(0).([]*domain.SwapStatusStat)
	return stats, ret.Error(1)
}

func (m *StatsRepository) GetTopRatedUsers(ctx context.Context, limit int) ([]*domain.TopRatedUser, error) {
	ret := m.Called(ctx, limit)
	users, _ := ret.Get(0).([]*domain.TopRatedUser)
	return users, ret.Error(1)
}

// SwapObserver - мок domain.SwapObserver.
type SwapObserver struct {
	mock.Mock
}

func (m *SwapObserver) SwapCompleted(ctx context.Context, swap *domain.Swap) {
	m.Called(ctx, swap)
}
