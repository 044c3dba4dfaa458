package usecase_test

import (
	"context"
	"testing"
	"time"

	"skill-swap-service/internal/domain"
	"skill-swap-service/internal/mocks"
	"skill-swap-service/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMatchUseCase() (*mocks.SkillRepository, *mocks.UserRepository, domain.MatchUseCase) {
	skillRepo := &mocks.SkillRepository{}
	userRepo := &mocks.UserRepository{}
	return skillRepo, userRepo, usecase.NewMatchUseCase(skillRepo, userRepo, domain.DefaultMatchPolicy())
}

func offer(id, userID, skillID string) *domain.SkillOffer {
	return &domain.SkillOffer{
		ID:               id,
		UserID:           userID,
		SkillID:          skillID,
		ProficiencyLevel: domain.LevelIntermediate,
		IsApproved:       true,
		CanTeachRemotely: true,
	}
}

func request(id, userID, skillID string, createdAt time.Time) *domain.SkillRequest {
	return &domain.SkillRequest{ID: id, UserID: userID, SkillID: skillID, IsActive: true, CreatedAt: createdAt}
}

func TestMatchUseCase_FindMatches_NoActiveRequests(t *testing.T) {
	ctx := context.Background()
	skillRepo, userRepo, uc := newMatchUseCase()
	skillRepo.On("GetUserRequests", ctx, "alice", true).Return([]*domain.SkillRequest{}, nil)

	matches, err := uc.FindMatches(ctx, "alice", domain.MatchQuery{})

	require.NoError(t, err)
	assert.Empty(t, matches)
	assert.NotNil(t, matches)
	skillRepo.AssertNotCalled(t, "GetOffersBySkills", mock.Anything, mock.Anything, mock.Anything)
	userRepo.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}

func TestMatchUseCase_FindMatches_MutualInterestRanksFirst(t *testing.T) {
	ctx := context.Background()
	skillRepo, userRepo, uc := newMatchUseCase()
	banned := activeUser("dave")
	banned.IsBanned = true
	unapproved := offer("o4", "erin", "go")
	unapproved.IsApproved = false

	skillRepo.On("GetUserRequests", ctx, "alice", true).
		Return([]*domain.SkillRequest{request("r1", "alice", "go", testNow)}, nil)
	skillRepo.On("GetOffersBySkills", ctx, []string{"go"}, "alice").
		Return([]*domain.SkillOffer{offer("o1", "carol", "go"), offer("o2", "bob", "go"), offer("o3", "dave", "go"), unapproved}, nil)
	userRepo.On("GetByIDs", ctx, []string{"carol", "bob", "dave"}).
		Return(map[string]*domain.User{"carol": activeUser("carol"), "bob": activeUser("bob"), "dave": banned}, nil)
	skillRepo.On("GetUserOffers", ctx, "alice").
		Return([]*domain.SkillOffer{offer("o9", "alice", "sql")}, nil)
	skillRepo.On("GetActiveRequestsBySkills", ctx, []string{"sql"}, []string{"carol", "bob", "dave"}).
		Return([]*domain.SkillRequest{request("r7", "bob", "sql", testNow)}, nil)

	matches, err := uc.FindMatches(ctx, "alice", domain.MatchQuery{})

	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "bob", matches[0].UserID)
	assert.True(t, matches[0].MutualInterest)
	assert.Equal(t, 85, matches[0].Score)
	assert.Equal(t, "carol", matches[1].UserID)
	assert.False(t, matches[1].MutualInterest)
	assert.Equal(t, 60, matches[1].Score)
}

func TestMatchUseCase_FindMatches_TieBrokenByUserID(t *testing.T) {
	ctx := context.Background()
	skillRepo, userRepo, uc := newMatchUseCase()

	skillRepo.On("GetOffersBySkills", ctx, []string{"go"}, "alice").
		Return([]*domain.SkillOffer{offer("o1", "zed", "go"), offer("o2", "amy", "go")}, nil)
	userRepo.On("GetByIDs", ctx, []string{"zed", "amy"}).
		Return(map[string]*domain.User{"zed": activeUser("zed"), "amy": activeUser("amy")}, nil)
	skillRepo.On("GetUserOffers", ctx, "alice").Return([]*domain.SkillOffer{}, nil)

	matches, err := uc.FindMatches(ctx, "alice", domain.MatchQuery{SkillID: "go"})

	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, matches[0].Score, matches[1].Score)
	assert.Equal(t, "amy", matches[0].UserID)
	assert.Equal(t, "zed", matches[1].UserID)
	skillRepo.AssertNotCalled(t, "GetUserRequests", mock.Anything, mock.Anything, mock.Anything)
	skillRepo.AssertNotCalled(t, "GetActiveRequestsBySkills", mock.Anything, mock.Anything, mock.Anything)
}

func TestMatchUseCase_FindMatches_FiltersAndPagination(t *testing.T) {
	ctx := context.Background()
	skillRepo, userRepo, uc := newMatchUseCase()
	inPerson := offer("o2", "bob", "go")
	inPerson.CanTeachRemotely = false

	skillRepo.On("GetOffersBySkills", ctx, []string{"go"}, "alice").
		Return([]*domain.SkillOffer{offer("o1", "amy", "go"), inPerson, offer("o3", "carl", "go")}, nil)
	userRepo.On("GetByIDs", ctx, []string{"amy", "carl"}).
		Return(map[string]*domain.User{"amy": activeUser("amy"), "carl": activeUser("carl")}, nil)
	skillRepo.On("GetUserOffers", ctx, "alice").Return([]*domain.SkillOffer{}, nil)

	matches, err := uc.FindMatches(ctx, "alice", domain.MatchQuery{SkillID: "go", RemoteOnly: true, Skip: 1, Limit: 1})

	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "carl", matches[0].UserID)
}

func TestMatchUseCase_FindMatches_Validation(t *testing.T) {
	ctx := context.Background()
	_, _, uc := newMatchUseCase()

	_, err := uc.FindMatches(ctx, "", domain.MatchQuery{})
	assert.ErrorIs(t, err, domain.ErrInvalidUserID)

	_, err = uc.FindMatches(ctx, "alice", domain.MatchQuery{Level: "guru"})
	assert.ErrorIs(t, err, domain.ErrInvalidLevel)

	_, err = uc.FindMatches(ctx, "alice", domain.MatchQuery{Limit: 500})
	assert.ErrorIs(t, err, domain.ErrInvalidPagination)
}

func TestMatchUseCase_RecommendedFor(t *testing.T) {
	ctx := context.Background()
	skillRepo, userRepo, uc := newMatchUseCase()
	bob := activeUser("bob")
	bob.AverageRating = 4
	carol := activeUser("carol")
	carol.AverageRating = 5

	skillRepo.On("GetUserRequests", ctx, "alice", true).Return([]*domain.SkillRequest{
		request("r2", "alice", "piano", testNow),
		request("r1", "alice", "go", testNow.Add(-time.Hour)),
	}, nil)
	skillRepo.On("GetOffersBySkills", ctx, []string{"go", "piano"}, "alice").Return([]*domain.SkillOffer{
		offer("o1", "bob", "go"),
		offer("o2", "carol", "go"),
		offer("o3", "dave", "piano"),
	}, nil)
	userRepo.On("GetByIDs", ctx, []string{"bob", "carol", "dave"}).
		Return(map[string]*domain.User{"bob": bob, "carol": carol, "dave": activeUser("dave")}, nil)
	skillRepo.On("GetUserOffers", ctx, "alice").Return([]*domain.SkillOffer{}, nil)

	recommendations, err := uc.RecommendedFor(ctx, "alice", 0)

	require.NoError(t, err)
	require.Len(t, recommendations, 2)
	assert.Equal(t, "r1", recommendations[0].Request.ID)
	require.Len(t, recommendations[0].Offerers, 2)
	assert.Equal(t, "carol", recommendations[0].Offerers[0].UserID)
	assert.Equal(t, "bob", recommendations[0].Offerers[1].UserID)
	assert.Equal(t, "r2", recommendations[1].Request.ID)
	require.Len(t, recommendations[1].Offerers, 1)
	assert.Equal(t, "dave", recommendations[1].Offerers[0].UserID)
}

func TestMatchUseCase_RecommendedFor_NoRequests(t *testing.T) {
	ctx := context.Background()
	skillRepo, _, uc := newMatchUseCase()
	skillRepo.On("GetUserRequests", ctx, "alice", true).Return([]*domain.SkillRequest{}, nil)

	recommendations, err := uc.RecommendedFor(ctx, "alice", 5)

	require.NoError(t, err)
	assert.Empty(t, recommendations)
}
