package domain_test

import (
	"testing"
	"time"

	"skill-swap-service/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestSortMatches_TieBreak(t *testing.T) {
	matches := []*domain.Match{
		{UserID: "carol", SkillID: "go", Score: 60},
		{UserID: "bob", SkillID: "sql", Score: 60},
		{UserID: "dave", SkillID: "go", Score: 85},
		{UserID: "bob", SkillID: "go", Score: 60},
	}

	domain.SortMatches(matches)

	got := make([]string, len(matches))
	for i, m := range matches {
		got[i] = m.UserID + "/" + m.SkillID
	}
	assert.Equal(t, []string{"dave/go", "bob/go", "bob/sql", "carol/go"}, got)
}

func TestMatchPolicy_Score(t *testing.T) {
	policy := domain.DefaultMatchPolicy()

	assert.Equal(t, 60, policy.Score(false))
	assert.Equal(t, 85, policy.Score(true))
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, domain.Paginate(items, 0, 2))
	assert.Equal(t, []int{4, 5}, domain.Paginate(items, 3, 10))
	assert.Equal(t, []int{2, 3, 4, 5}, domain.Paginate(items, 1, 0))
	assert.Empty(t, domain.Paginate(items, 5, 2))
	assert.NotNil(t, domain.Paginate([]int{}, 0, 2))
}

func TestSortOfferers(t *testing.T) {
	offerers := []*domain.Match{
		{UserID: "b", AverageRating: 4.0},
		{UserID: "a", AverageRating: 4.0},
		{UserID: "c", AverageRating: 4.9},
	}

	domain.SortOfferers(offerers)

	assert.Equal(t, "c", offerers[0].UserID)
	assert.Equal(t, "a", offerers[1].UserID)
	assert.Equal(t, "b", offerers[2].UserID)
}

func TestSortRequestsOldestFirst(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	requests := []*domain.SkillRequest{
		{ID: "new", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "old", CreatedAt: base},
		{ID: "mid", CreatedAt: base.Add(time.Hour)},
	}

	domain.SortRequestsOldestFirst(requests)

	assert.Equal(t, "old", requests[0].ID)
	assert.Equal(t, "mid", requests[1].ID)
	assert.Equal(t, "new", requests[2].ID)
}
