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

// Полный цикл: предложение, принятие, обучение до 100% с обеих сторон и отзыв.
func TestScenario_SwapLifecycleEndsWithRating(t *testing.T) {
	ctx := context.Background()
	now := testNow
	clock := fixedClock(&now)
	logger := newTestLogger()

	swapRepo := &mocks.SwapRepository{}
	userRepo := &mocks.UserRepository{}
	skillRepo := &mocks.SkillRepository{}
	feedbackRepo := &mocks.FeedbackRepository{}

	feedbackUC := usecase.NewFeedbackUseCase(feedbackRepo, swapRepo, userRepo, domain.DefaultMatchPolicy(), clock, logger)
	swapUC := usecase.NewSwapUseCase(swapRepo, userRepo, skillRepo, feedbackUC, 0, domain.DefaultMatchPolicy(), clock, logger)

	userRepo.On("GetByID", ctx, "alice").Return(activeUser("alice"), nil)
	userRepo.On("GetByID", ctx, "bob").Return(activeUser("bob"), nil)
	skillRepo.On("GetUserOffer", ctx, "alice", "python").Return(approvedOffer("alice", "python"), nil)
	skillRepo.On("GetUserOffer", ctx, "bob", "guitar").Return(approvedOffer("bob", "guitar"), nil)
	swapRepo.On("ExistsPending", ctx, mock.AnythingOfType("domain.SwapKey")).Return(false, nil)

	var stored *domain.Swap
	swapRepo.On("Create", ctx, mock.AnythingOfType("*domain.Swap")).Return(nil).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*domain.Swap)
	})

	created, err := swapUC.CreateSwap(ctx, "alice", domain.CreateSwapInput{
		RequestedUserID:  "bob",
		OfferedSkillID:   "python",
		RequestedSkillID: "guitar",
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	swapRepo.On("Mutate", ctx, created.ID).Return(stored, nil)
	swapRepo.On("GetByID", ctx, created.ID).Return(stored, nil)

	now = now.Add(24 * time.Hour)
	swap, err := swapUC.AcceptSwap(ctx, "bob", created.ID, nil, "")
	require.NoError(t, err)
	assert.Equal(t, domain.SwapAccepted, swap.Status)

	swap, err = swapUC.StartSwap(ctx, "alice", created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SwapInProgress, swap.Status)

	swap, err = swapUC.UpdateProgress(ctx, "alice", created.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, domain.SwapInProgress, swap.Status)

	swap, err = swapUC.UpdateProgress(ctx, "bob", created.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, domain.SwapCompleted, swap.Status)
	require.NotNil(t, swap.CompletionDate)

	feedbackRepo.On("ExistsForSwap", ctx, created.ID, "bob").Return(false, nil)
	feedbackRepo.On("Create", ctx, mock.AnythingOfType("*domain.Feedback")).Return(nil)
	feedbackRepo.On("RecomputeRating", ctx, "alice").Return([]int{5}, activeUser("alice"), nil)

	_, err = feedbackUC.CreateFeedback(ctx, "bob", domain.FeedbackInput{
		SwapID:     created.ID,
		ReceiverID: "alice",
		Rating:     5,
		IsPublic:   true,
	})
	require.NoError(t, err)

	alice, err := feedbackUC.RecomputeRating(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 5.0, alice.AverageRating)
	assert.Equal(t, 1, alice.RatingCount)
}

// Принятие после истечения срока ответа сохраняет обмен в REJECTED.
func TestScenario_AcceptAfterDeadline(t *testing.T) {
	ctx := context.Background()
	f := newSwapFixture()
	stored := domain.NewSwap("s1", "carol", "dave", "go", "sql", domain.SwapDetails{}, testNow, 0)
	f.swapRepo.On("Mutate", ctx, "s1").Return(stored, nil)
	f.swapRepo.On("GetByID", ctx, "s1").Return(stored, nil)

	f.now = testNow.Add(domain.DefaultResponseWindow + time.Second)
	_, err := f.uc.AcceptSwap(ctx, "dave", "s1", nil, "")
	assert.ErrorIs(t, err, domain.ErrDeadlineExpired)

	view, err := f.uc.GetSwap(ctx, "carol", "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.SwapRejected, view.Status)
	assert.False(t, view.IsExpired)
}
