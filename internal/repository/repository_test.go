package repository_test

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"skill-swap-service/internal/database"
	"skill-swap-service/internal/domain"
	"skill-swap-service/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RepositoryTestSuite struct {
	suite.Suite
	db       *sql.DB
	queries  *database.Queries
	users    domain.UserRepository
	skills   domain.SkillRepository
	swaps    domain.SwapRepository
	feedback domain.FeedbackRepository
	stats    domain.StatsRepository
	ctx      context.Context
	now      time.Time
}

func (suite *RepositoryTestSuite) SetupSuite() {
	suite.ctx = context.Background()

	var err error
	suite.db, err = database.Open(os.Getenv("TEST_DATABASE_DSN"))
	if err != nil {
		log.Fatalf("Failed to connect to test database: %v", err)
	}

	suite.queries = database.New(suite.db)
	suite.users = repository.NewUserRepository(suite.db, suite.queries)
	suite.skills = repository.NewSkillRepository(suite.queries)
	suite.swaps = repository.NewSwapRepository(suite.db, suite.queries)
	suite.feedback = repository.NewFeedbackRepository(suite.db, suite.queries)
	suite.stats = repository.NewStatsRepository(suite.queries)

	suite.cleanDatabase()
}

func (suite *RepositoryTestSuite) SetupTest() {
	suite.now = time.Now().UTC().Truncate(time.Millisecond)
	suite.setupTestData()
}

func (suite *RepositoryTestSuite) TearDownTest() {
	suite.cleanDatabase()
}

func (suite *RepositoryTestSuite) TearDownSuite() {
	if suite.db != nil {
		suite.db.Close()
	}
}

func (suite *RepositoryTestSuite) cleanDatabase() {
	tables := []string{"feedback", "swaps", "skill_requests", "skill_offers", "skills", "users"}
	for _, table := range tables {
		_, err := suite.db.ExecContext(suite.ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			log.Printf("Failed to clean table %s: %v", table, err)
		}
	}
}

func (suite *RepositoryTestSuite) setupTestData() {
	t := suite.T()

	// Пользователи
	for _, id := range []string{"alice", "bob", "carol"} {
		_, err := suite.users.Upsert(suite.ctx, &domain.User{ID: id, Username: id, IsActive: true, IsPublic: true})
		require.NoError(t, err)
	}

	// Навыки и предложения
	require.NoError(t, suite.skills.CreateSkill(suite.ctx, &domain.Skill{ID: "python", Name: "Python"}))
	require.NoError(t, suite.skills.CreateSkill(suite.ctx, &domain.Skill{ID: "guitar", Name: "Guitar"}))
	require.NoError(t, suite.skills.CreateOffer(suite.ctx, &domain.SkillOffer{
		ID: "o-alice", UserID: "alice", SkillID: "python", ProficiencyLevel: domain.LevelExpert,
		IsApproved: true, CanTeachRemotely: true, CreatedAt: suite.now,
	}))
	require.NoError(t, suite.skills.CreateOffer(suite.ctx, &domain.SkillOffer{
		ID: "o-bob", UserID: "bob", SkillID: "guitar", ProficiencyLevel: domain.LevelAdvanced,
		IsApproved: true, CreatedAt: suite.now,
	}))
}

func (suite *RepositoryTestSuite) newSwap(id string) *domain.Swap {
	swap := domain.NewSwap(id, "alice", "bob", "python", "guitar", domain.SwapDetails{Message: "trade?"}, suite.now, 0)
	require.NoError(suite.T(), suite.swaps.Create(suite.ctx, swap))
	return swap
}

func (suite *RepositoryTestSuite) TestSkills_DuplicateNameIsCaseInsensitive() {
	err := suite.skills.CreateSkill(suite.ctx, &domain.Skill{ID: "python-2", Name: "PYTHON"})
	assert.ErrorIs(suite.T(), err, domain.ErrSkillAlreadyExists)

	exists, err := suite.skills.ExistsSkillName(suite.ctx, "python")
	require.NoError(suite.T(), err)
	assert.True(suite.T(), exists)
}

func (suite *RepositoryTestSuite) TestSkills_DuplicateOffer() {
	err := suite.skills.CreateOffer(suite.ctx, &domain.SkillOffer{
		ID: "o-alice-2", UserID: "alice", SkillID: "python", ProficiencyLevel: domain.LevelBeginner, CreatedAt: suite.now,
	})
	assert.ErrorIs(suite.T(), err, domain.ErrOfferAlreadyExists)
}

func (suite *RepositoryTestSuite) TestSkills_SingleActiveRequest() {
	t := suite.T()
	request := &domain.SkillRequest{ID: "r1", UserID: "carol", SkillID: "python", DesiredLevel: domain.LevelBeginner, IsActive: true, CreatedAt: suite.now}
	require.NoError(t, suite.skills.CreateRequest(suite.ctx, request))

	duplicate := *request
	duplicate.ID = "r2"
	assert.ErrorIs(t, suite.skills.CreateRequest(suite.ctx, &duplicate), domain.ErrDuplicateActiveRequest)

	require.NoError(t, suite.skills.DeactivateRequest(suite.ctx, "r1"))
	assert.NoError(t, suite.skills.CreateRequest(suite.ctx, &duplicate))
}

func (suite *RepositoryTestSuite) TestSkills_OffersBySkillsExcludesSeeker() {
	offers, err := suite.skills.GetOffersBySkills(suite.ctx, []string{"python", "guitar"}, "alice")

	require.NoError(suite.T(), err)
	require.Len(suite.T(), offers, 1)
	assert.Equal(suite.T(), "bob", offers[0].UserID)
}

func (suite *RepositoryTestSuite) TestSwaps_CreateAndGet() {
	t := suite.T()
	created := suite.newSwap("s1")

	swap, err := suite.swaps.GetByID(suite.ctx, "s1")

	require.NoError(t, err)
	assert.Equal(t, domain.SwapPending, swap.Status)
	assert.Equal(t, "trade?", swap.Message)
	assert.True(t, created.ResponseDeadline.Equal(swap.ResponseDeadline))
	assert.EqualValues(t, 1, swap.Version)

	_, err = suite.swaps.GetByID(suite.ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSwapNotFound)
}

func (suite *RepositoryTestSuite) TestSwaps_DuplicatePendingRejected() {
	t := suite.T()
	suite.newSwap("s1")

	exists, err := suite.swaps.ExistsPending(suite.ctx, domain.SwapKey{
		RequesterID: "alice", RequestedUserID: "bob", OfferedSkillID: "python", RequestedSkillID: "guitar",
	})
	require.NoError(t, err)
	assert.True(t, exists)

	duplicate := domain.NewSwap("s2", "alice", "bob", "python", "guitar", domain.SwapDetails{}, suite.now, 0)
	assert.ErrorIs(t, suite.swaps.Create(suite.ctx, duplicate), domain.ErrDuplicatePendingSwap)
}

func (suite *RepositoryTestSuite) TestSwaps_MutatePersistsChange() {
	t := suite.T()
	suite.newSwap("s1")

	swap, err := suite.swaps.Mutate(suite.ctx, "s1", func(s *domain.Swap) (bool, error) {
		return true, s.Accept("bob", suite.now, nil, "library")
	})

	require.NoError(t, err)
	assert.Equal(t, domain.SwapAccepted, swap.Status)
	assert.EqualValues(t, 2, swap.Version)

	stored, err := suite.swaps.GetByID(suite.ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "library", stored.Location)
	assert.NotNil(t, stored.RespondedAt)
}

func (suite *RepositoryTestSuite) TestSwaps_MutatePersistsExpiredRejection() {
	t := suite.T()
	suite.newSwap("s1")
	late := suite.now.Add(domain.DefaultResponseWindow + time.Minute)

	swap, err := suite.swaps.Mutate(suite.ctx, "s1", func(s *domain.Swap) (bool, error) {
		return true, s.Accept("bob", late, nil, "")
	})

	assert.ErrorIs(t, err, domain.ErrDeadlineExpired)
	require.NotNil(t, swap)

	stored, err := suite.swaps.GetByID(suite.ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.SwapRejected, stored.Status)
	assert.Equal(t, domain.DeadlineExpiredReason, stored.CloseReason)
}

func (suite *RepositoryTestSuite) TestSwaps_MutateWithoutChangeKeepsRow() {
	t := suite.T()
	suite.newSwap("s1")

	_, err := suite.swaps.Mutate(suite.ctx, "s1", func(s *domain.Swap) (bool, error) {
		return false, s.Accept("alice", suite.now, nil, "")
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	stored, err := suite.swaps.GetByID(suite.ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.SwapPending, stored.Status)
	assert.EqualValues(t, 1, stored.Version)
}

func (suite *RepositoryTestSuite) TestSwaps_ConcurrentFullProgressCompletes() {
	t := suite.T()
	suite.newSwap("s1")
	_, err := suite.db.ExecContext(suite.ctx,
		"UPDATE swaps SET status = 'IN_PROGRESS', actual_start_date = $2 WHERE swap_id = $1", "s1", suite.now)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for _, actor := range []string{"alice", "bob"} {
		wg.Add(1)
		go func(actor string) {
			defer wg.Done()
			_, err := suite.swaps.Mutate(suite.ctx, "s1", func(s *domain.Swap) (bool, error) {
				return true, s.UpdateProgress(actor, domain.MaxProgress, suite.now)
			})
			errs <- err
		}(actor)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	stored, err := suite.swaps.GetByID(suite.ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.SwapCompleted, stored.Status)
	assert.NotNil(t, stored.CompletionDate)
	assert.Equal(t, domain.MaxProgress, stored.RequesterProgress)
	assert.Equal(t, domain.MaxProgress, stored.RequestedUserProgress)
	assert.EqualValues(t, 3, stored.Version)
}

func (suite *RepositoryTestSuite) TestSwaps_DeleteChecksLockedRow() {
	t := suite.T()
	suite.newSwap("s1")

	err := suite.swaps.Delete(suite.ctx, "s1", func(s *domain.Swap) error { return s.CheckDelete("bob") })
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, suite.swaps.Delete(suite.ctx, "s1", func(s *domain.Swap) error { return s.CheckDelete("alice") }))
	_, err = suite.swaps.GetByID(suite.ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrSwapNotFound)
}

func (suite *RepositoryTestSuite) TestSwaps_ListByDirection() {
	t := suite.T()
	suite.newSwap("s1")

	incoming, err := suite.swaps.List(suite.ctx, domain.SwapFilter{UserID: "bob", Direction: domain.DirectionIncoming, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, incoming, 1)

	outgoing, err := suite.swaps.List(suite.ctx, domain.SwapFilter{UserID: "bob", Direction: domain.DirectionOutgoing, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, outgoing)

	accepted, err := suite.swaps.List(suite.ctx, domain.SwapFilter{UserID: "alice", Direction: domain.DirectionAll, Status: domain.SwapAccepted, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, accepted)
}

func (suite *RepositoryTestSuite) TestFeedback_RatingLifecycle() {
	t := suite.T()
	swap := suite.newSwap("s1")
	_, err := suite.db.ExecContext(suite.ctx, "UPDATE swaps SET status = 'COMPLETED' WHERE swap_id = $1", swap.ID)
	require.NoError(t, err)

	feedback := &domain.Feedback{
		ID: "f1", SwapID: "s1", GiverID: "bob", ReceiverID: "alice", Rating: 5, IsPublic: true,
		CreatedAt: suite.now, UpdatedAt: suite.now,
	}
	require.NoError(t, suite.feedback.Create(suite.ctx, feedback))

	duplicate := *feedback
	duplicate.ID = "f2"
	assert.ErrorIs(t, suite.feedback.Create(suite.ctx, &duplicate), domain.ErrDuplicateFeedback)

	user, err := suite.feedback.RecomputeRating(suite.ctx, "alice", domain.AggregateRating)
	require.NoError(t, err)
	assert.Equal(t, 5.0, user.AverageRating)
	assert.Equal(t, 1, user.RatingCount)

	require.NoError(t, suite.feedback.Delete(suite.ctx, "f1"))
	user, err = suite.feedback.RecomputeRating(suite.ctx, "alice", domain.AggregateRating)
	require.NoError(t, err)
	assert.Zero(t, user.AverageRating)
	assert.Zero(t, user.RatingCount)
}

func (suite *RepositoryTestSuite) TestFeedback_HiddenExcludedFromRating() {
	t := suite.T()
	for i, rating := range []int{5, 1} {
		require.NoError(t, suite.feedback.Create(suite.ctx, &domain.Feedback{
			ID: fmt.Sprintf("f%d", i), GiverID: "bob", ReceiverID: "carol", Rating: rating, IsPublic: true,
			CreatedAt: suite.now.Add(time.Duration(i) * time.Second), UpdatedAt: suite.now,
		}))
	}

	hidden, err := suite.feedback.Mutate(suite.ctx, "f1", func(f *domain.Feedback) (bool, error) {
		f.IsHidden = true
		return true, nil
	})
	require.NoError(t, err)
	assert.True(t, hidden.IsHidden)

	user, err := suite.feedback.RecomputeRating(suite.ctx, "carol", domain.AggregateRating)
	require.NoError(t, err)
	assert.Equal(t, 5.0, user.AverageRating)
	assert.Equal(t, 1, user.RatingCount)

	visible, err := suite.feedback.ListReceived(suite.ctx, domain.FeedbackFilter{ReceiverID: "carol", PublicOnly: true})
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "f0", visible[0].ID)
}

func (suite *RepositoryTestSuite) TestFeedback_ConcurrentEditAndHideKeepBoth() {
	t := suite.T()
	require.NoError(t, suite.feedback.Create(suite.ctx, &domain.Feedback{
		ID: "f1", GiverID: "bob", ReceiverID: "alice", Rating: 2, IsPublic: true, CreatedAt: suite.now, UpdatedAt: suite.now,
	}))

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	mutators := []domain.FeedbackMutator{
		func(f *domain.Feedback) (bool, error) {
			f.Comment = "edited"
			return true, nil
		},
		func(f *domain.Feedback) (bool, error) {
			f.IsHidden = true
			return true, nil
		},
	}
	for _, fn := range mutators {
		wg.Add(1)
		go func(fn domain.FeedbackMutator) {
			defer wg.Done()
			_, err := suite.feedback.Mutate(suite.ctx, "f1", fn)
			errs <- err
		}(fn)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	stored, err := suite.feedback.GetByID(suite.ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, "edited", stored.Comment)
	assert.True(t, stored.IsHidden)
}

func (suite *RepositoryTestSuite) TestFeedback_MutateErrorKeepsRow() {
	t := suite.T()
	require.NoError(t, suite.feedback.Create(suite.ctx, &domain.Feedback{
		ID: "f1", GiverID: "bob", ReceiverID: "alice", Rating: 4, IsPublic: true, CreatedAt: suite.now, UpdatedAt: suite.now,
	}))

	_, err := suite.feedback.Mutate(suite.ctx, "f1", func(f *domain.Feedback) (bool, error) {
		f.Rating = 1
		return true, domain.ErrForbidden
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = suite.feedback.Mutate(suite.ctx, "missing", func(f *domain.Feedback) (bool, error) { return true, nil })
	assert.ErrorIs(t, err, domain.ErrFeedbackNotFound)

	stored, err := suite.feedback.GetByID(suite.ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, 4, stored.Rating)
}

func (suite *RepositoryTestSuite) TestFeedback_ListGiven() {
	t := suite.T()
	for i, receiver := range []string{"alice", "carol"} {
		require.NoError(t, suite.feedback.Create(suite.ctx, &domain.Feedback{
			ID: fmt.Sprintf("f%d", i), GiverID: "bob", ReceiverID: receiver, Rating: 4, IsPublic: true,
			CreatedAt: suite.now.Add(time.Duration(i) * time.Second), UpdatedAt: suite.now,
		}))
	}

	given, err := suite.feedback.ListGiven(suite.ctx, "bob", 0, 10)
	require.NoError(t, err)
	require.Len(t, given, 2)
	assert.Equal(t, "f1", given[0].ID)

	given, err = suite.feedback.ListGiven(suite.ctx, "alice", 0, 10)
	require.NoError(t, err)
	assert.Empty(t, given)
}

func (suite *RepositoryTestSuite) TestUsers_ListPublic() {
	t := suite.T()
	_, err := suite.db.ExecContext(suite.ctx, "UPDATE skills SET category = 'Music' WHERE skill_id = 'guitar'")
	require.NoError(t, err)
	_, err = suite.db.ExecContext(suite.ctx, "UPDATE users SET is_public = FALSE WHERE user_id = 'carol'")
	require.NoError(t, err)

	ids := func(filter domain.UserDirectoryFilter) []string {
		filter.Limit = 10
		users, err := suite.users.ListPublic(suite.ctx, filter)
		require.NoError(t, err)
		result := make([]string, len(users))
		for i, user := range users {
			result[i] = user.ID
		}
		return result
	}

	assert.Equal(t, []string{"alice", "bob"}, ids(domain.UserDirectoryFilter{}))
	assert.Equal(t, []string{"alice"}, ids(domain.UserDirectoryFilter{Search: "LIC"}))
	assert.Equal(t, []string{"bob"}, ids(domain.UserDirectoryFilter{SkillID: "guitar"}))
	assert.Equal(t, []string{"bob"}, ids(domain.UserDirectoryFilter{Category: "music"}))
	assert.Equal(t, []string{"bob"}, ids(domain.UserDirectoryFilter{Skip: 1}))
}

func (suite *RepositoryTestSuite) TestFeedback_IncrementVotes() {
	t := suite.T()
	require.NoError(t, suite.feedback.Create(suite.ctx, &domain.Feedback{
		ID: "f1", GiverID: "bob", ReceiverID: "alice", Rating: 4, IsPublic: true, CreatedAt: suite.now, UpdatedAt: suite.now,
	}))

	_, err := suite.feedback.IncrementVotes(suite.ctx, "f1", true)
	require.NoError(t, err)
	feedback, err := suite.feedback.IncrementVotes(suite.ctx, "f1", false)
	require.NoError(t, err)

	assert.Equal(t, 1, feedback.HelpfulVotes)
	assert.Equal(t, 1, feedback.NotHelpfulVotes)
}

func (suite *RepositoryTestSuite) TestStats() {
	t := suite.T()
	suite.newSwap("s1")
	_, err := suite.db.ExecContext(suite.ctx, "UPDATE users SET average_rating = 4.5, rating_count = 2 WHERE user_id = 'bob'")
	require.NoError(t, err)

	stats, err := suite.stats.GetSwapStatusStats(suite.ctx)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, domain.SwapPending, stats[0].Status)
	assert.EqualValues(t, 1, stats[0].Count)

	top, err := suite.stats.GetTopRatedUsers(suite.ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "bob", top[0].UserID)
}

func TestRepositoryTestSuite(t *testing.T) {
	if os.Getenv("TEST_DATABASE_DSN") == "" {
		t.Skip("Skipping integration test. Set TEST_DATABASE_DSN to run.")
	}
	suite.Run(t, new(RepositoryTestSuite))
}
