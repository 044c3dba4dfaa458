package domain_test

import (
	"testing"
	"time"

	"skill-swap-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedSwapAt(id, requester, requested, offered, wanted string, at time.Time) *domain.Swap {
	swap := domain.NewSwap(id, requester, requested, offered, wanted, domain.SwapDetails{}, at, 0)
	swap.Status = domain.SwapCompleted
	swap.CompletionDate = &at
	return swap
}

func TestDeriveBadges(t *testing.T) {
	first := testNow.Add(-48 * time.Hour)
	second := testNow.Add(-24 * time.Hour)

	swaps := []*domain.Swap{
		completedSwapAt("s1", "alice", "bob", "go", "guitar", second),
		completedSwapAt("s2", "carol", "alice", "sql", "go", first),
		domain.NewSwap("s3", "alice", "dave", "go", "chess", domain.SwapDetails{}, testNow, 0),
	}
	received := []*domain.Feedback{
		{ID: "f1", SwapID: "s1", GiverID: "bob", ReceiverID: "alice", Rating: 5, CreatedAt: testNow},
		{ID: "f2", SwapID: "s2", GiverID: "carol", ReceiverID: "alice", Rating: 4, CreatedAt: testNow},
		{ID: "f3", GiverID: "erin", ReceiverID: "alice", Rating: 5, CreatedAt: testNow},
		{ID: "f4", SwapID: "s3", GiverID: "dave", ReceiverID: "alice", Rating: 5, CreatedAt: testNow},
	}

	badges := domain.DeriveBadges("alice", swaps, received)

	require.Len(t, badges, 4)
	assert.Equal(t, "go", badges[0].SkillID)
	assert.Equal(t, domain.BadgeMentor, badges[0].Kind)
	assert.Equal(t, 2, badges[0].Count)
	assert.Equal(t, first, badges[0].AwardedAt)

	assert.Equal(t, "go", badges[1].SkillID)
	assert.Equal(t, domain.BadgeRated5Star, badges[1].Kind)
	assert.Equal(t, 1, badges[1].Count)

	assert.Equal(t, domain.Badge{UserID: "alice", SkillID: "guitar", Kind: domain.BadgeLearned, Count: 1, AwardedAt: second}, *badges[2])
	assert.Equal(t, domain.Badge{UserID: "alice", SkillID: "sql", Kind: domain.BadgeLearned, Count: 1, AwardedAt: first}, *badges[3])
}

func TestDeriveBadges_Empty(t *testing.T) {
	badges := domain.DeriveBadges("alice", nil, nil)
	assert.NotNil(t, badges)
	assert.Empty(t, badges)
}

func TestFeedback_VisibleTo(t *testing.T) {
	feedback := &domain.Feedback{GiverID: "bob", ReceiverID: "alice", IsPublic: true}
	assert.True(t, feedback.VisibleTo("carol"))
	assert.True(t, feedback.VisibleTo(""))

	feedback.IsHidden = true
	assert.False(t, feedback.VisibleTo("carol"))
	assert.True(t, feedback.VisibleTo("alice"))
	assert.True(t, feedback.VisibleTo("bob"))

	feedback.IsHidden = false
	feedback.IsPublic = false
	assert.False(t, feedback.VisibleTo(""))
	assert.True(t, feedback.VisibleTo("bob"))
}
