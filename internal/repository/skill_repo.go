package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"skill-swap-service/internal/database"
	"skill-swap-service/internal/domain"
)

const (
	skillNameIndex     = "skills_name_lower_idx"
	activeRequestIndex = "skill_requests_active_idx"
)

// SkillRepository реализует хранение каталога навыков, предложений и запросов.
type SkillRepository struct {
	queries *database.Queries
}

// NewSkillRepository создает новый экземпляр SkillRepository.
func NewSkillRepository(queries *database.Queries) domain.SkillRepository {
	return &SkillRepository{
		queries: queries,
	}
}

func toDomainOffer(o database.SkillOffer) *domain.SkillOffer {
	return &domain.SkillOffer{
		ID:               o.OfferID,
		UserID:           o.UserID,
		SkillID:          o.SkillID,
		ProficiencyLevel: o.ProficiencyLevel,
		IsApproved:       o.IsApproved,
		CanTeachRemotely: o.CanTeachRemotely,
		CanTeachInPerson: o.CanTeachInPerson,
		CreatedAt:        o.CreatedAt,
	}
}

func toDomainOffers(rows []database.SkillOffer) []*domain.SkillOffer {
	offers := make([]*domain.SkillOffer, 0, len(rows))
	for _, row := range rows {
		offers = append(offers, toDomainOffer(row))
	}
	return offers
}

func toDomainRequest(r database.SkillRequest) *domain.SkillRequest {
	return &domain.SkillRequest{
		ID:           r.RequestID,
		UserID:       r.UserID,
		SkillID:      r.SkillID,
		DesiredLevel: r.DesiredLevel,
		Urgency:      r.Urgency,
		Message:      r.Message,
		IsActive:     r.IsActive,
		CreatedAt:    r.CreatedAt,
	}
}

func toDomainRequests(rows []database.SkillRequest) []*domain.SkillRequest {
	requests := make([]*domain.SkillRequest, 0, len(rows))
	for _, row := range rows {
		requests = append(requests, toDomainRequest(row))
	}
	return requests
}

// CreateSkill добавляет навык в каталог.
func (r *SkillRepository) CreateSkill(ctx context.Context, skill *domain.Skill) error {
	err := r.queries.CreateSkill(ctx, database.CreateSkillParams{
		SkillID:  skill.ID,
		Name:     skill.Name,
		Category: skill.Category,
	})
	if err != nil {
		if isUniqueViolation(err, skillNameIndex) {
			return domain.ErrSkillAlreadyExists
		}
		return fmt.Errorf("failed to create skill: %w", err)
	}
	return nil
}

// GetSkill возвращает навык по ID.
func (r *SkillRepository) GetSkill(ctx context.Context, skillID string) (*domain.Skill, error) {
	dbSkill, err := r.queries.GetSkillByID(ctx, skillID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSkillNotFound
		}
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}

	return &domain.Skill{
		ID:       dbSkill.SkillID,
		Name:     dbSkill.Name,
		Category: dbSkill.Category,
	}, nil
}

// ExistsSkillName проверяет наличие навыка с таким именем без учета регистра.
func (r *SkillRepository) ExistsSkillName(ctx context.Context, name string) (bool, error) {
	count, err := r.queries.CountSkillsByName(ctx, name)
	if err != nil {
		return false, fmt.Errorf("failed to check skill exists: %w", err)
	}
	return count > 0, nil
}

// CreateOffer сохраняет предложение навыка.
func (r *SkillRepository) CreateOffer(ctx context.Context, offer *domain.SkillOffer) error {
	err := r.queries.CreateSkillOffer(ctx, database.CreateSkillOfferParams{
		OfferID:          offer.ID,
		UserID:           offer.UserID,
		SkillID:          offer.SkillID,
		ProficiencyLevel: offer.ProficiencyLevel,
		IsApproved:       offer.IsApproved,
		CanTeachRemotely: offer.CanTeachRemotely,
		CanTeachInPerson: offer.CanTeachInPerson,
		CreatedAt:        offer.CreatedAt,
	})
	if err != nil {
		if isUniqueViolation(err, "") {
			return domain.ErrOfferAlreadyExists
		}
		return fmt.Errorf("failed to create offer: %w", err)
	}
	return nil
}

// GetOffer возвращает предложение по ID.
func (r *SkillRepository) GetOffer(ctx context.Context, offerID string) (*domain.SkillOffer, error) {
	dbOffer, err := r.queries.GetSkillOfferByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}
	return toDomainOffer(dbOffer), nil
}

// GetUserOffer возвращает предложение пользователя по навыку.
func (r *SkillRepository) GetUserOffer(ctx context.Context, userID, skillID string) (*domain.SkillOffer, error) {
	dbOffer, err := r.queries.GetUserSkillOffer(ctx, database.GetUserSkillOfferParams{
		UserID:  userID,
		SkillID: skillID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to get user offer: %w", err)
	}
	return toDomainOffer(dbOffer), nil
}

// DeleteOffer удаляет предложение.
func (r *SkillRepository) DeleteOffer(ctx context.Context, offerID string) error {
	affected, err := r.queries.DeleteSkillOffer(ctx, offerID)
	if err != nil {
		return fmt.Errorf("failed to delete offer: %w", err)
	}
	if affected == 0 {
		return domain.ErrOfferNotFound
	}
	return nil
}

// SetOfferApproved меняет статус модерации предложения.
func (r *SkillRepository) SetOfferApproved(ctx context.Context, offerID string, approved bool) (*domain.SkillOffer, error) {
	dbOffer, err := r.queries.SetSkillOfferApproved(ctx, database.SetSkillOfferApprovedParams{
		OfferID:    offerID,
		IsApproved: approved,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to update offer approval: %w", err)
	}
	return toDomainOffer(dbOffer), nil
}

// GetUserOffers возвращает все предложения пользователя.
func (r *SkillRepository) GetUserOffers(ctx context.Context, userID string) ([]*domain.SkillOffer, error) {
	rows, err := r.queries.ListUserSkillOffers(ctx, userID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get user offers: %w", err)
	}
	return toDomainOffers(rows), nil
}

// GetOffersBySkills возвращает одобренные предложения по навыкам, кроме предложений excludeUserID.
func (r *SkillRepository) GetOffersBySkills(ctx context.Context, skillIDs []string, excludeUserID string) ([]*domain.SkillOffer, error) {
	if len(skillIDs) == 0 {
		return []*domain.SkillOffer{}, nil
	}
	rows, err := r.queries.ListApprovedOffersBySkills(ctx, database.ListApprovedOffersBySkillsParams{
		SkillIds:      skillIDs,
		ExcludeUserID: excludeUserID,
	})
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get offers by skills: %w", err)
	}
	return toDomainOffers(rows), nil
}

// CreateRequest сохраняет запрос на изучение навыка.
func (r *SkillRepository) CreateRequest(ctx context.Context, request *domain.SkillRequest) error {
	err := r.queries.CreateSkillRequest(ctx, database.CreateSkillRequestParams{
		RequestID:    request.ID,
		UserID:       request.UserID,
		SkillID:      request.SkillID,
		DesiredLevel: request.DesiredLevel,
		Urgency:      request.Urgency,
		Message:      request.Message,
		IsActive:     request.IsActive,
		CreatedAt:    request.CreatedAt,
	})
	if err != nil {
		if isUniqueViolation(err, activeRequestIndex) {
			return domain.ErrDuplicateActiveRequest
		}
		return fmt.Errorf("failed to create request: %w", err)
	}
	return nil
}

// GetRequest возвращает запрос по ID.
func (r *SkillRepository) GetRequest(ctx context.Context, requestID string) (*domain.SkillRequest, error) {
	dbRequest, err := r.queries.GetSkillRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	return toDomainRequest(dbRequest), nil
}

// DeactivateRequest закрывает запрос.
func (r *SkillRepository) DeactivateRequest(ctx context.Context, requestID string) error {
	affected, err := r.queries.DeactivateSkillRequest(ctx, requestID)
	if err != nil {
		return fmt.Errorf("failed to deactivate request: %w", err)
	}
	if affected == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

// HasActiveRequest проверяет наличие активного запроса пользователя по навыку.
func (r *SkillRepository) HasActiveRequest(ctx context.Context, userID, skillID string) (bool, error) {
	count, err := r.queries.CountActiveSkillRequests(ctx, database.CountActiveSkillRequestsParams{
		UserID:  userID,
		SkillID: skillID,
	})
	if err != nil {
		return false, fmt.Errorf("failed to check active request: %w", err)
	}
	return count > 0, nil
}

// GetUserRequests возвращает запросы пользователя, при activeOnly - только активные.
func (r *SkillRepository) GetUserRequests(ctx context.Context, userID string, activeOnly bool) ([]*domain.SkillRequest, error) {
	rows, err := r.queries.ListUserSkillRequests(ctx, database.ListUserSkillRequestsParams{
		UserID:     userID,
		ActiveOnly: activeOnly,
	})
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get user requests: %w", err)
	}
	return toDomainRequests(rows), nil
}

// GetActiveRequestsBySkills возвращает активные запросы пользователей userIDs по навыкам skillIDs.
func (r *SkillRepository) GetActiveRequestsBySkills(ctx context.Context, skillIDs []string, userIDs []string) ([]*domain.SkillRequest, error) {
	if len(skillIDs) == 0 || len(userIDs) == 0 {
		return []*domain.SkillRequest{}, nil
	}
	rows, err := r.queries.ListActiveRequestsBySkills(ctx, database.ListActiveRequestsBySkillsParams{
		SkillIds: skillIDs,
		UserIds:  userIDs,
	})
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get requests by skills: %w", err)
	}
	return toDomainRequests(rows), nil
}
