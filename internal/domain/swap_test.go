package domain_test

import (
	"testing"
	"time"

	"skill-swap-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newPendingSwap() *domain.Swap {
	return domain.NewSwap("s1", "alice", "bob", "go", "sql", domain.SwapDetails{Message: "hi"}, testNow, 0)
}

func inProgressSwap(t *testing.T) *domain.Swap {
	t.Helper()
	swap := newPendingSwap()
	require.NoError(t, swap.Accept("bob", testNow, nil, ""))
	require.NoError(t, swap.Start("alice", testNow))
	return swap
}

var allStatuses = []domain.SwapStatus{
	domain.SwapPending, domain.SwapAccepted, domain.SwapRejected,
	domain.SwapInProgress, domain.SwapCompleted, domain.SwapCancelled,
}

func TestCanTransition_ClosedGraph(t *testing.T) {
	allowed := map[domain.SwapStatus][]domain.SwapStatus{
		domain.SwapPending:    {domain.SwapAccepted, domain.SwapRejected, domain.SwapCancelled},
		domain.SwapAccepted:   {domain.SwapInProgress, domain.SwapCancelled},
		domain.SwapInProgress: {domain.SwapCompleted, domain.SwapCancelled},
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			expected := false
			for _, next := range allowed[from] {
				if next == to {
					expected = true
				}
			}
			assert.Equal(t, expected, domain.CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestSwapStatus_Terminal(t *testing.T) {
	assert.True(t, domain.SwapRejected.Terminal())
	assert.True(t, domain.SwapCompleted.Terminal())
	assert.True(t, domain.SwapCancelled.Terminal())
	assert.False(t, domain.SwapPending.Terminal())
	assert.False(t, domain.SwapStatus("UNKNOWN").Valid())
}

func TestNewSwap_Defaults(t *testing.T) {
	swap := newPendingSwap()

	assert.Equal(t, domain.SwapPending, swap.Status)
	assert.Equal(t, testNow.Add(domain.DefaultResponseWindow), swap.ResponseDeadline)
	assert.Zero(t, swap.RequesterProgress)
	assert.Zero(t, swap.RequestedUserProgress)
	assert.Nil(t, swap.CompletionDate)
}

func TestSwap_Accept_OnlyRequestedUser(t *testing.T) {
	swap := newPendingSwap()

	assert.ErrorIs(t, swap.Accept("alice", testNow, nil, ""), domain.ErrForbidden)
	assert.ErrorIs(t, swap.Accept("mallory", testNow, nil, ""), domain.ErrForbidden)
	assert.Equal(t, domain.SwapPending, swap.Status)

	start := testNow.Add(48 * time.Hour)
	require.NoError(t, swap.Accept("bob", testNow, &start, "library"))
	assert.Equal(t, domain.SwapAccepted, swap.Status)
	assert.Equal(t, &start, swap.ProposedStartDate)
	assert.Equal(t, "library", swap.Location)
	require.NotNil(t, swap.RespondedAt)
}

func TestSwap_Accept_DeadlineExpired(t *testing.T) {
	swap := newPendingSwap()
	late := swap.ResponseDeadline.Add(time.Second)

	assert.True(t, swap.Expired(late))
	err := swap.Accept("bob", late, nil, "")

	assert.ErrorIs(t, err, domain.ErrDeadlineExpired)
	assert.Equal(t, domain.SwapRejected, swap.Status)
	assert.Equal(t, domain.DeadlineExpiredReason, swap.CloseReason)
	assert.Empty(t, swap.ClosedBy)
	assert.False(t, swap.Expired(late))
}

func TestSwap_Accept_AtDeadlineStillAllowed(t *testing.T) {
	swap := newPendingSwap()

	require.NoError(t, swap.Accept("bob", swap.ResponseDeadline, nil, ""))
	assert.Equal(t, domain.SwapAccepted, swap.Status)
}

func TestSwap_Reject(t *testing.T) {
	swap := newPendingSwap()

	assert.ErrorIs(t, swap.Reject("alice", "no", testNow), domain.ErrForbidden)
	require.NoError(t, swap.Reject("bob", "busy", testNow))
	assert.Equal(t, domain.SwapRejected, swap.Status)
	assert.Equal(t, "busy", swap.CloseReason)
	assert.Equal(t, "bob", swap.ClosedBy)

	assert.ErrorIs(t, swap.Reject("bob", "again", testNow), domain.ErrInvalidState)
}

func TestSwap_Start_RequiresAccepted(t *testing.T) {
	swap := newPendingSwap()

	assert.ErrorIs(t, swap.Start("alice", testNow), domain.ErrInvalidState)
	require.NoError(t, swap.Accept("bob", testNow, nil, ""))
	assert.ErrorIs(t, swap.Start("mallory", testNow), domain.ErrForbidden)
	require.NoError(t, swap.Start("bob", testNow))
	assert.Equal(t, domain.SwapInProgress, swap.Status)
	assert.NotNil(t, swap.ActualStartDate)
}

func TestSwap_UpdateProgress_AutoCompletesInEitherOrder(t *testing.T) {
	orders := [][]string{{"alice", "bob"}, {"bob", "alice"}}

	for _, order := range orders {
		swap := inProgressSwap(t)

		require.NoError(t, swap.UpdateProgress(order[0], 100, testNow))
		assert.Equal(t, domain.SwapInProgress, swap.Status)
		assert.Nil(t, swap.CompletionDate)

		completedAt := testNow.Add(time.Hour)
		require.NoError(t, swap.UpdateProgress(order[1], 100, completedAt))
		assert.Equal(t, domain.SwapCompleted, swap.Status)
		require.NotNil(t, swap.CompletionDate)
		assert.Equal(t, completedAt, *swap.CompletionDate)
	}
}

func TestSwap_UpdateProgress_Validation(t *testing.T) {
	swap := inProgressSwap(t)

	assert.ErrorIs(t, swap.UpdateProgress("alice", 101, testNow), domain.ErrInvalidProgress)
	assert.ErrorIs(t, swap.UpdateProgress("alice", -1, testNow), domain.ErrInvalidProgress)
	assert.ErrorIs(t, swap.UpdateProgress("mallory", 50, testNow), domain.ErrForbidden)

	require.NoError(t, swap.UpdateProgress("bob", 40, testNow))
	assert.Equal(t, 40, swap.RequestedUserProgress)
	assert.Zero(t, swap.RequesterProgress)

	pending := newPendingSwap()
	assert.ErrorIs(t, pending.UpdateProgress("alice", 10, testNow), domain.ErrInvalidState)
}

func TestSwap_Complete(t *testing.T) {
	swap := inProgressSwap(t)

	require.NoError(t, swap.Complete("bob", testNow))
	assert.Equal(t, domain.SwapCompleted, swap.Status)
	assert.Equal(t, 100, swap.RequesterProgress)
	assert.Equal(t, 100, swap.RequestedUserProgress)
	assert.ErrorIs(t, swap.Complete("bob", testNow), domain.ErrInvalidState)
}

func TestSwap_Cancel(t *testing.T) {
	pending := newPendingSwap()
	assert.ErrorIs(t, pending.Cancel("bob", "", testNow), domain.ErrNotCancellable)
	assert.ErrorIs(t, pending.Cancel("mallory", "", testNow), domain.ErrForbidden)
	require.NoError(t, pending.Cancel("alice", "changed my mind", testNow))
	assert.Equal(t, domain.SwapCancelled, pending.Status)
	assert.Equal(t, "alice", pending.ClosedBy)

	accepted := newPendingSwap()
	require.NoError(t, accepted.Accept("bob", testNow, nil, ""))
	require.NoError(t, accepted.Cancel("bob", "", testNow))

	running := inProgressSwap(t)
	require.NoError(t, running.Cancel("alice", "", testNow))
}

func TestSwap_TerminalStatesRejectEverything(t *testing.T) {
	rejected := newPendingSwap()
	require.NoError(t, rejected.Reject("bob", "", testNow))

	cancelled := newPendingSwap()
	require.NoError(t, cancelled.Cancel("alice", "", testNow))

	completed := inProgressSwap(t)
	require.NoError(t, completed.Complete("alice", testNow))

	for _, swap := range []*domain.Swap{rejected, cancelled, completed} {
		status := swap.Status
		assert.ErrorIs(t, swap.Cancel("alice", "", testNow), domain.ErrNotCancellable, "cancel %s", status)
		assert.ErrorIs(t, swap.Accept("bob", testNow, nil, ""), domain.ErrInvalidState)
		assert.ErrorIs(t, swap.Start("alice", testNow), domain.ErrInvalidState)
		assert.ErrorIs(t, swap.UpdateProgress("alice", 10, testNow), domain.ErrInvalidState)
		assert.ErrorIs(t, swap.Complete("alice", testNow), domain.ErrInvalidState)
		assert.Equal(t, status, swap.Status)
	}
}

func TestSwap_CheckDeleteAndApplyDetails(t *testing.T) {
	swap := newPendingSwap()

	assert.ErrorIs(t, swap.CheckDelete("bob"), domain.ErrForbidden)
	assert.NoError(t, swap.CheckDelete("alice"))

	msg := "updated"
	require.NoError(t, swap.ApplyDetails("alice", domain.SwapDetailsPatch{Message: &msg}, testNow))
	assert.Equal(t, "updated", swap.Message)
	assert.ErrorIs(t, swap.ApplyDetails("bob", domain.SwapDetailsPatch{Message: &msg}, testNow), domain.ErrForbidden)

	require.NoError(t, swap.Accept("bob", testNow, nil, ""))
	assert.ErrorIs(t, swap.CheckDelete("alice"), domain.ErrInvalidState)
	assert.ErrorIs(t, swap.ApplyDetails("alice", domain.SwapDetailsPatch{Message: &msg}, testNow), domain.ErrInvalidState)
}

func TestViewSwap_Expired(t *testing.T) {
	swap := newPendingSwap()

	assert.False(t, domain.ViewSwap(swap, testNow).IsExpired)
	assert.True(t, domain.ViewSwap(swap, swap.ResponseDeadline.Add(time.Minute)).IsExpired)
	assert.Equal(t, domain.SwapPending, swap.Status)
}
