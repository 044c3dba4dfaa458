package usecase

import (
	"context"

	"skill-swap-service/internal/domain"
)

// MatchUseCase реализует поиск совпадений между запросами и предложениями навыков.
type MatchUseCase struct {
	skillRepo domain.SkillRepository
	userRepo  domain.UserRepository
	policy    domain.MatchPolicy
}

// NewMatchUseCase создает новый экземпляр MatchUseCase.
func NewMatchUseCase(skillRepo domain.SkillRepository, userRepo domain.UserRepository, policy domain.MatchPolicy) domain.MatchUseCase {
	return &MatchUseCase{
		skillRepo: skillRepo,
		userRepo:  userRepo,
		policy:    policy,
	}
}

// FindMatches ищет пользователей, предлагающих навыки, которые хочет изучить userID.
// Без активных запросов и без фильтра по навыку результат пустой.
func (uc *MatchUseCase) FindMatches(ctx context.Context, userID string, query domain.MatchQuery) ([]*domain.Match, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}
	if query.Level != "" && !domain.ValidLevel(query.Level) {
		return nil, domain.ErrInvalidLevel
	}
	limit, err := normalizePage(query.Skip, query.Limit, uc.policy.DefaultLimit, uc.policy.MaxLimit)
	if err != nil {
		return nil, err
	}

	var skillIDs []string
	if query.SkillID != "" {
		skillIDs = []string{query.SkillID}
	} else {
		requests, err := uc.skillRepo.GetUserRequests(ctx, userID, true)
		if err != nil {
			return nil, err
		}
		skillIDs = requestedSkills(requests)
	}

	if len(skillIDs) == 0 {
		return []*domain.Match{}, nil
	}

	matches, err := uc.collectMatches(ctx, userID, skillIDs, query.Level, query.RemoteOnly)
	if err != nil {
		return nil, err
	}

	domain.SortMatches(matches)
	return domain.Paginate(matches, query.Skip, limit), nil
}

// RecommendedFor для каждого активного запроса (не более limit) подбирает
// нескольких преподавателей с лучшим рейтингом.
func (uc *MatchUseCase) RecommendedFor(ctx context.Context, userID string, limit int) ([]*domain.Recommendation, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}
	limit, err := normalizePage(0, limit, uc.policy.DefaultLimit, uc.policy.MaxLimit)
	if err != nil {
		return nil, err
	}

	requests, err := uc.skillRepo.GetUserRequests(ctx, userID, true)
	if err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return []*domain.Recommendation{}, nil
	}

	domain.SortRequestsOldestFirst(requests)
	requests = domain.Paginate(requests, 0, limit)

	matches, err := uc.collectMatches(ctx, userID, requestedSkills(requests), "", false)
	if err != nil {
		return nil, err
	}

	bySkill := make(map[string][]*domain.Match)
	for _, m := range matches {
		bySkill[m.SkillID] = append(bySkill[m.SkillID], m)
	}

	recommendations := make([]*domain.Recommendation, 0, len(requests))
	for _, req := range requests {
		offerers := bySkill[req.SkillID]
		domain.SortOfferers(offerers)
		recommendations = append(recommendations, &domain.Recommendation{
			Request:  req,
			Offerers: domain.Paginate(offerers, 0, uc.policy.RecommendationsPerRequest),
		})
	}

	return recommendations, nil
}

// collectMatches собирает одобренные предложения навыков skillIDs от подходящих пользователей
// и отмечает взаимный интерес.
func (uc *MatchUseCase) collectMatches(ctx context.Context, userID string, skillIDs []string, level string, remoteOnly bool) ([]*domain.Match, error) {
	// 1. Одобренные предложения других пользователей
	offers, err := uc.skillRepo.GetOffersBySkills(ctx, skillIDs, userID)
	if err != nil {
		return nil, err
	}

	candidates := make([]*domain.SkillOffer, 0, len(offers))
	ownerIDs := make([]string, 0, len(offers))
	seenOwner := make(map[string]bool)
	for _, offer := range offers {
		if offer.UserID == userID || !offer.IsApproved {
			continue
		}
		if level != "" && offer.ProficiencyLevel != level {
			continue
		}
		if remoteOnly && !offer.CanTeachRemotely {
			continue
		}
		candidates = append(candidates, offer)
		if !seenOwner[offer.UserID] {
			seenOwner[offer.UserID] = true
			ownerIDs = append(ownerIDs, offer.UserID)
		}
	}
	if len(candidates) == 0 {
		return []*domain.Match{}, nil
	}

	// 2. Владельцы должны быть активны, не заблокированы и с публичным профилем
	owners, err := uc.userRepo.GetByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	// 3. Взаимный интерес: кандидат хочет изучить что-то из того, что предлагает userID
	mutual, err := uc.mutualInterest(ctx, userID, ownerIDs)
	if err != nil {
		return nil, err
	}

	matches := make([]*domain.Match, 0, len(candidates))
	for _, offer := range candidates {
		owner, ok := owners[offer.UserID]
		if !ok || !owner.Discoverable() {
			continue
		}
		isMutual := mutual[offer.UserID]
		matches = append(matches, &domain.Match{
			UserID:           owner.ID,
			Username:         owner.Username,
			SkillID:          offer.SkillID,
			OfferID:          offer.ID,
			ProficiencyLevel: offer.ProficiencyLevel,
			CanTeachRemotely: offer.CanTeachRemotely,
			CanTeachInPerson: offer.CanTeachInPerson,
			AverageRating:    owner.AverageRating,
			RatingCount:      owner.RatingCount,
			MutualInterest:   isMutual,
			Score:            uc.policy.Score(isMutual),
		})
	}

	return matches, nil
}

func (uc *MatchUseCase) mutualInterest(ctx context.Context, userID string, candidateIDs []string) (map[string]bool, error) {
	mutual := make(map[string]bool)

	myOffers, err := uc.skillRepo.GetUserOffers(ctx, userID)
	if err != nil {
		return nil, err
	}
	offered := make([]string, 0, len(myOffers))
	for _, offer := range myOffers {
		if offer.IsApproved {
			offered = append(offered, offer.SkillID)
		}
	}
	if len(offered) == 0 {
		return mutual, nil
	}

	requests, err := uc.skillRepo.GetActiveRequestsBySkills(ctx, offered, candidateIDs)
	if err != nil {
		return nil, err
	}
	for _, req := range requests {
		if req.IsActive {
			mutual[req.UserID] = true
		}
	}
	return mutual, nil
}

func requestedSkills(requests []*domain.SkillRequest) []string {
	seen := make(map[string]bool, len(requests))
	skillIDs := make([]string, 0, len(requests))
	for _, req := range requests {
		if !req.IsActive || seen[req.SkillID] {
			continue
		}
		seen[req.SkillID] = true
		skillIDs = append(skillIDs, req.SkillID)
	}
	return skillIDs
}
