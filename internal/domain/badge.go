package domain

import (
	"sort"
	"time"
)

// BadgeKind - вид значка за навык.
type BadgeKind string

const (
	// BadgeMentor - пользователь обучил навыку хотя бы в одном завершенном обмене.
	BadgeMentor BadgeKind = "mentor"
	// BadgeLearned - пользователь освоил навык в завершенном обмене.
	BadgeLearned BadgeKind = "learned"
	// BadgeRated5Star - за обучение навыку пользователь получил оценку 5.
	BadgeRated5Star BadgeKind = "rated_5star"
)

// Badge - значок пользователя за навык. Значки не хранятся, а выводятся из
// завершенных обменов и видимых отзывов.
type Badge struct {
	UserID    string
	SkillID   string
	Kind      BadgeKind
	Count     int
	AwardedAt time.Time // момент первого основания для значка
}

// TaughtSkill возвращает навык, которому userID обучал в обмене.
func (s *Swap) TaughtSkill(userID string) string {
	switch userID {
	case s.RequesterID:
		return s.OfferedSkillID
	case s.RequestedUserID:
		return s.RequestedSkillID
	}
	return ""
}

// LearnedSkill возвращает навык, которому userID учился в обмене.
func (s *Swap) LearnedSkill(userID string) string {
	switch userID {
	case s.RequesterID:
		return s.RequestedSkillID
	case s.RequestedUserID:
		return s.OfferedSkillID
	}
	return ""
}

type badgeKey struct {
	skillID string
	kind    BadgeKind
}

// DeriveBadges строит значки userID по его обменам и полученным отзывам.
// Учитываются только завершенные обмены; отзыв дает rated_5star, только если
// он оставлен по одному из этих обменов. Результат упорядочен по навыку и виду.
func DeriveBadges(userID string, swaps []*Swap, received []*Feedback) []*Badge {
	badges := make(map[badgeKey]*Badge)
	award := func(skillID string, kind BadgeKind, at time.Time) {
		if skillID == "" {
			return
		}
		key := badgeKey{skillID: skillID, kind: kind}
		badge, ok := badges[key]
		if !ok {
			badge = &Badge{UserID: userID, SkillID: skillID, Kind: kind, AwardedAt: at}
			badges[key] = badge
		}
		badge.Count++
		if at.Before(badge.AwardedAt) {
			badge.AwardedAt = at
		}
	}

	completed := make(map[string]*Swap, len(swaps))
	for _, swap := range swaps {
		if swap.Status != SwapCompleted || !swap.IsParty(userID) {
			continue
		}
		completed[swap.ID] = swap

		at := swap.UpdatedAt
		if swap.CompletionDate != nil {
			at = *swap.CompletionDate
		}
		award(swap.TaughtSkill(userID), BadgeMentor, at)
		award(swap.LearnedSkill(userID), BadgeLearned, at)
	}

	for _, f := range received {
		if f.ReceiverID != userID || f.IsHidden || f.Rating != MaxRating {
			continue
		}
		swap, ok := completed[f.SwapID]
		if !ok {
			continue
		}
		award(swap.TaughtSkill(userID), BadgeRated5Star, f.CreatedAt)
	}

	result := make([]*Badge, 0, len(badges))
	for _, badge := range badges {
		result = append(result, badge)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].SkillID != result[j].SkillID {
			return result[i].SkillID < result[j].SkillID
		}
		return result[i].Kind < result[j].Kind
	})
	return result
}
