package domain

import "sort"

// MatchPolicy - параметры подбора пар.
type MatchPolicy struct {
	BaseScore                 int
	MutualScore               int
	DefaultLimit              int
	MaxLimit                  int
	RecommendationsPerRequest int
}

// DefaultMatchPolicy возвращает стандартные параметры подбора.
func DefaultMatchPolicy() MatchPolicy {
	return MatchPolicy{
		BaseScore:                 60,
		MutualScore:               85,
		DefaultLimit:              20,
		MaxLimit:                  100,
		RecommendationsPerRequest: 3,
	}
}

// Score возвращает оценку совпадения.
func (p MatchPolicy) Score(mutual bool) int {
	if mutual {
		return p.MutualScore
	}
	return p.BaseScore
}

// MatchQuery - параметры поиска совпадений.
type MatchQuery struct {
	SkillID    string
	Level      string
	RemoteOnly bool
	Skip       int
	Limit      int
}

// Match - пользователь, предлагающий навык, который хочет изучить искатель.
type Match struct {
	UserID           string
	Username         string
	SkillID          string
	OfferID          string
	ProficiencyLevel string
	CanTeachRemotely bool
	CanTeachInPerson bool
	AverageRating    float64
	RatingCount      int
	MutualInterest   bool
	Score            int
}

// SortMatches упорядочивает совпадения: по убыванию оценки, затем по user id и skill id.
func SortMatches(matches []*Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.UserID != b.UserID {
			return a.UserID < b.UserID
		}
		return a.SkillID < b.SkillID
	})
}

// Paginate возвращает окно [skip, skip+limit). limit <= 0 - без ограничения.
func Paginate[T any](items []T, skip, limit int) []T {
	if skip >= len(items) {
		return []T{}
	}
	items = items[skip:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// Recommendation - подборка преподавателей для одного активного запроса.
type Recommendation struct {
	Request  *SkillRequest
	Offerers []*Match
}

// SortOfferers упорядочивает преподавателей по рейтингу, затем по user id.
func SortOfferers(offerers []*Match) {
	sort.SliceStable(offerers, func(i, j int) bool {
		a, b := offerers[i], offerers[j]
		if a.AverageRating != b.AverageRating {
			return a.AverageRating > b.AverageRating
		}
		return a.UserID < b.UserID
	})
}

// SortRequestsOldestFirst упорядочивает запросы по времени создания.
func SortRequestsOldestFirst(requests []*SkillRequest) {
	sort.SliceStable(requests, func(i, j int) bool {
		if !requests[i].CreatedAt.Equal(requests[j].CreatedAt) {
			return requests[i].CreatedAt.Before(requests[j].CreatedAt)
		}
		return requests[i].ID < requests[j].ID
	})
}
