package usecase_test

import (
	"context"
	"testing"

	"skill-swap-service/internal/domain"
	"skill-swap-service/internal/mocks"
	"skill-swap-service/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSkillUseCase() (*mocks.SkillRepository, *mocks.UserRepository, domain.SkillUseCase) {
	skillRepo := &mocks.SkillRepository{}
	userRepo := &mocks.UserRepository{}
	now := testNow
	return skillRepo, userRepo, usecase.NewSkillUseCase(skillRepo, userRepo, fixedClock(&now))
}

func TestSkillUseCase_CreateSkill(t *testing.T) {
	ctx := context.Background()
	skillRepo, _, uc := newSkillUseCase()
	skillRepo.On("ExistsSkillName", ctx, "Python").Return(false, nil)
	skillRepo.On("CreateSkill", ctx, mock.AnythingOfType("*domain.Skill")).Return(nil)

	skill, err := uc.CreateSkill(ctx, "  Python ", " programming ")

	require.NoError(t, err)
	assert.NotEmpty(t, skill.ID)
	assert.Equal(t, "Python", skill.Name)
	assert.Equal(t, "programming", skill.Category)
}

func TestSkillUseCase_CreateSkill_Errors(t *testing.T) {
	ctx := context.Background()
	skillRepo, _, uc := newSkillUseCase()
	skillRepo.On("ExistsSkillName", ctx, "python").Return(true, nil)

	_, err := uc.CreateSkill(ctx, "   ", "")
	assert.ErrorIs(t, err, domain.ErrInvalidSkillName)

	_, err = uc.CreateSkill(ctx, "python", "")
	assert.ErrorIs(t, err, domain.ErrSkillAlreadyExists)
}

func TestSkillUseCase_OfferSkill(t *testing.T) {
	ctx := context.Background()
	skillRepo, userRepo, uc := newSkillUseCase()
	userRepo.On("GetByID", ctx, "alice").Return(activeUser("alice"), nil)
	skillRepo.On("GetSkill", ctx, "go").Return(&domain.Skill{ID: "go", Name: "Go"}, nil)
	skillRepo.On("GetUserOffer", ctx, "alice", "go").Return(nil, domain.ErrOfferNotFound)
	skillRepo.On("CreateOffer", ctx, mock.AnythingOfType("*domain.SkillOffer")).Return(nil)

	offer, err := uc.OfferSkill(ctx, "alice", &domain.SkillOffer{SkillID: "go"})

	require.NoError(t, err)
	assert.Equal(t, "alice", offer.UserID)
	assert.Equal(t, domain.LevelBeginner, offer.ProficiencyLevel)
	assert.True(t, offer.IsApproved)
	assert.Equal(t, testNow, offer.CreatedAt)
}

func TestSkillUseCase_OfferSkill_Duplicate(t *testing.T) {
	ctx := context.Background()
	skillRepo, userRepo, uc := newSkillUseCase()
	userRepo.On("GetByID", ctx, "alice").Return(activeUser("alice"), nil)
	skillRepo.On("GetSkill", ctx, "go").Return(&domain.Skill{ID: "go"}, nil)
	skillRepo.On("GetUserOffer", ctx, "alice", "go").Return(&domain.SkillOffer{ID: "o1"}, nil)

	_, err := uc.OfferSkill(ctx, "alice", &domain.SkillOffer{SkillID: "go", ProficiencyLevel: domain.LevelExpert})

	assert.ErrorIs(t, err, domain.ErrOfferAlreadyExists)
	skillRepo.AssertNotCalled(t, "CreateOffer", mock.Anything, mock.Anything)
}

func TestSkillUseCase_OfferSkill_InvalidLevel(t *testing.T) {
	_, _, uc := newSkillUseCase()

	_, err := uc.OfferSkill(context.Background(), "alice", &domain.SkillOffer{SkillID: "go", ProficiencyLevel: "guru"})

	assert.ErrorIs(t, err, domain.ErrInvalidLevel)
}

func TestSkillUseCase_WithdrawOffer(t *testing.T) {
	ctx := context.Background()
	skillRepo, _, uc := newSkillUseCase()
	skillRepo.On("GetOffer", ctx, "o1").Return(&domain.SkillOffer{ID: "o1", UserID: "alice"}, nil)
	skillRepo.On("DeleteOffer", ctx, "o1").Return(nil)

	assert.ErrorIs(t, uc.WithdrawOffer(ctx, "bob", "o1"), domain.ErrForbidden)
	assert.NoError(t, uc.WithdrawOffer(ctx, "alice", "o1"))
	skillRepo.AssertNumberOfCalls(t, "DeleteOffer", 1)
}

func TestSkillUseCase_SetOfferApproved(t *testing.T) {
	ctx := context.Background()
	skillRepo, _, uc := newSkillUseCase()
	skillRepo.On("GetOffer", ctx, "o1").Return(&domain.SkillOffer{ID: "o1", IsApproved: true}, nil)
	skillRepo.On("SetOfferApproved", ctx, "o1", false).Return(&domain.SkillOffer{ID: "o1", IsApproved: false}, nil)
	skillRepo.On("GetOffer", ctx, "missing").Return(nil, domain.ErrOfferNotFound)

	offer, err := uc.SetOfferApproved(ctx, "o1", false)
	require.NoError(t, err)
	assert.False(t, offer.IsApproved)

	_, err = uc.SetOfferApproved(ctx, "missing", true)
	assert.ErrorIs(t, err, domain.ErrOfferNotFound)
}

func TestSkillUseCase_RequestSkill(t *testing.T) {
	ctx := context.Background()
	skillRepo, userRepo, uc := newSkillUseCase()
	userRepo.On("GetByID", ctx, "alice").Return(activeUser("alice"), nil)
	skillRepo.On("GetSkill", ctx, "go").Return(&domain.Skill{ID: "go"}, nil)
	skillRepo.On("HasActiveRequest", ctx, "alice", "go").Return(false, nil).Once()
	skillRepo.On("HasActiveRequest", ctx, "alice", "go").Return(true, nil)
	skillRepo.On("CreateRequest", ctx, mock.AnythingOfType("*domain.SkillRequest")).Return(nil)

	request, err := uc.RequestSkill(ctx, "alice", &domain.SkillRequest{SkillID: "go", Urgency: domain.UrgencyHigh})
	require.NoError(t, err)
	assert.True(t, request.IsActive)
	assert.Equal(t, domain.LevelBeginner, request.DesiredLevel)

	_, err = uc.RequestSkill(ctx, "alice", &domain.SkillRequest{SkillID: "go"})
	assert.ErrorIs(t, err, domain.ErrDuplicateActiveRequest)

	_, err = uc.RequestSkill(ctx, "alice", &domain.SkillRequest{SkillID: "go", Urgency: "yesterday"})
	assert.ErrorIs(t, err, domain.ErrInvalidUrgency)
}

func TestSkillUseCase_CloseRequest(t *testing.T) {
	ctx := context.Background()
	skillRepo, _, uc := newSkillUseCase()
	skillRepo.On("GetRequest", ctx, "r1").Return(&domain.SkillRequest{ID: "r1", UserID: "alice", IsActive: true}, nil)
	skillRepo.On("GetRequest", ctx, "r2").Return(&domain.SkillRequest{ID: "r2", UserID: "alice", IsActive: false}, nil)
	skillRepo.On("DeactivateRequest", ctx, "r1").Return(nil)

	assert.ErrorIs(t, uc.CloseRequest(ctx, "bob", "r1"), domain.ErrForbidden)
	assert.NoError(t, uc.CloseRequest(ctx, "alice", "r1"))
	assert.NoError(t, uc.CloseRequest(ctx, "alice", "r2"))
	skillRepo.AssertNotCalled(t, "DeactivateRequest", ctx, "r2")
}

func TestSkillUseCase_GetUserSkills(t *testing.T) {
	ctx := context.Background()
	skillRepo, userRepo, uc := newSkillUseCase()
	userRepo.On("GetByID", ctx, "alice").Return(activeUser("alice"), nil)
	userRepo.On("GetByID", ctx, "ghost").Return(nil, domain.ErrUserNotFound)
	skillRepo.On("GetUserOffers", ctx, "alice").Return([]*domain.SkillOffer{{ID: "o1"}}, nil)
	skillRepo.On("GetUserRequests", ctx, "alice", true).Return([]*domain.SkillRequest{{ID: "r1"}}, nil)

	skills, err := uc.GetUserSkills(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, skills.Offers, 1)
	assert.Len(t, skills.Requests, 1)

	_, err = uc.GetUserSkills(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
