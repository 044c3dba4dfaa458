package domain_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"skill-swap-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateRating(t *testing.T) {
	assert.Equal(t, domain.RatingAggregate{}, domain.AggregateRating(nil))

	agg := domain.AggregateRating([]int{5, 4, 4})
	assert.Equal(t, 3, agg.Count)
	assert.InDelta(t, 4.3333, agg.Average, 0.0001)
}

func TestFeedback_Apply(t *testing.T) {
	feedback := &domain.Feedback{Rating: 3, Comment: "ok", IsPublic: true}

	comment := "great"
	assert.False(t, feedback.Apply(domain.FeedbackPatch{Comment: &comment}, testNow))
	assert.Equal(t, "great", feedback.Comment)

	same := 3
	assert.False(t, feedback.Apply(domain.FeedbackPatch{Rating: &same}, testNow))

	rating := 5
	assert.True(t, feedback.Apply(domain.FeedbackPatch{Rating: &rating}, testNow))
	assert.Equal(t, 5, feedback.Rating)
	assert.Equal(t, testNow, feedback.UpdatedAt)
}

func TestSummarize_Empty(t *testing.T) {
	summary := domain.Summarize("bob", nil)

	assert.Equal(t, "bob", summary.UserID)
	assert.Zero(t, summary.TotalFeedback)
	assert.Zero(t, summary.AverageRating)
	assert.Empty(t, summary.Distribution)
	assert.NotNil(t, summary.Recent)
}

func TestSummarize(t *testing.T) {
	var feedback []*domain.Feedback
	ratings := []int{5, 4, 4, 3, 5, 5, 1}
	for i, r := range ratings {
		feedback = append(feedback, &domain.Feedback{
			ID:        fmt.Sprintf("f%d", i),
			Rating:    r,
			CreatedAt: testNow.Add(-time.Duration(i) * time.Hour),
		})
	}

	summary := domain.Summarize("bob", feedback)

	assert.Equal(t, 7, summary.TotalFeedback)
	assert.Equal(t, 3.86, summary.AverageRating)
	assert.Equal(t, map[int]int{1: 1, 2: 0, 3: 1, 4: 2, 5: 3}, summary.Distribution)
	require.Len(t, summary.Recent, domain.RecentFeedbackLimit)
	assert.Equal(t, "f0", summary.Recent[0].ID)
}

func TestToHTTPError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("accept: %w", domain.ErrDeadlineExpired)

	httpErr, ok := domain.ToHTTPError(wrapped)

	assert.True(t, ok)
	assert.Equal(t, "DEADLINE_EXPIRED", httpErr.Code)

	_, ok = domain.ToHTTPError(errors.New("boom"))
	assert.False(t, ok)
}
