package usecase

import (
	"context"
	"errors"
	"strings"

	"skill-swap-service/internal/domain"

	"github.com/google/uuid"
)

// SkillUseCase реализует работу с каталогом навыков, предложениями и запросами.
type SkillUseCase struct {
	skillRepo domain.SkillRepository
	userRepo  domain.UserRepository
	clock     Clock
}

// NewSkillUseCase создает новый экземпляр SkillUseCase.
func NewSkillUseCase(skillRepo domain.SkillRepository, userRepo domain.UserRepository, clock Clock) domain.SkillUseCase {
	return &SkillUseCase{
		skillRepo: skillRepo,
		userRepo:  userRepo,
		clock:     clock,
	}
}

// CreateSkill добавляет навык в каталог. Имена уникальны без учета регистра.
func (uc *SkillUseCase) CreateSkill(ctx context.Context, name, category string) (*domain.Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidSkillName
	}

	exists, err := uc.skillRepo.ExistsSkillName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrSkillAlreadyExists
	}

	skill := &domain.Skill{
		ID:       uuid.NewString(),
		Name:     name,
		Category: strings.TrimSpace(category),
	}
	if err := uc.skillRepo.CreateSkill(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

// OfferSkill регистрирует навык, которому пользователь готов обучать.
func (uc *SkillUseCase) OfferSkill(ctx context.Context, actorID string, offer *domain.SkillOffer) (*domain.SkillOffer, error) {
	if actorID == "" {
		return nil, domain.ErrUnauthorized
	}
	if offer.SkillID == "" {
		return nil, domain.ErrInvalidSkillID
	}
	if offer.ProficiencyLevel == "" {
		offer.ProficiencyLevel = domain.LevelBeginner
	}
	if !domain.ValidLevel(offer.ProficiencyLevel) {
		return nil, domain.ErrInvalidLevel
	}

	if _, err := uc.userRepo.GetByID(ctx, actorID); err != nil {
		return nil, err
	}
	if _, err := uc.skillRepo.GetSkill(ctx, offer.SkillID); err != nil {
		return nil, err
	}

	// Пара (пользователь, навык) уникальна
	_, err := uc.skillRepo.GetUserOffer(ctx, actorID, offer.SkillID)
	if err == nil {
		return nil, domain.ErrOfferAlreadyExists
	}
	if !errors.Is(err, domain.ErrOfferNotFound) {
		return nil, err
	}

	offer.ID = uuid.NewString()
	offer.UserID = actorID
	offer.IsApproved = true
	offer.CreatedAt = uc.clock.now()

	if err := uc.skillRepo.CreateOffer(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

// WithdrawOffer удаляет предложение навыка владельцем.
func (uc *SkillUseCase) WithdrawOffer(ctx context.Context, actorID, offerID string) error {
	if actorID == "" {
		return domain.ErrUnauthorized
	}
	offer, err := uc.skillRepo.GetOffer(ctx, offerID)
	if err != nil {
		return err
	}
	if offer.UserID != actorID {
		return domain.ErrForbidden
	}
	return uc.skillRepo.DeleteOffer(ctx, offerID)
}

// SetOfferApproved меняет флаг одобрения предложения (решение модерации).
func (uc *SkillUseCase) SetOfferApproved(ctx context.Context, offerID string, approved bool) (*domain.SkillOffer, error) {
	if _, err := uc.skillRepo.GetOffer(ctx, offerID); err != nil {
		return nil, err
	}
	return uc.skillRepo.SetOfferApproved(ctx, offerID, approved)
}

// RequestSkill регистрирует навык, который пользователь хочет изучить.
// Для пары (пользователь, навык) допускается только один активный запрос.
func (uc *SkillUseCase) RequestSkill(ctx context.Context, actorID string, request *domain.SkillRequest) (*domain.SkillRequest, error) {
	if actorID == "" {
		return nil, domain.ErrUnauthorized
	}
	if request.SkillID == "" {
		return nil, domain.ErrInvalidSkillID
	}
	if request.DesiredLevel == "" {
		request.DesiredLevel = domain.LevelBeginner
	}
	if !domain.ValidLevel(request.DesiredLevel) {
		return nil, domain.ErrInvalidLevel
	}
	if !domain.ValidUrgency(request.Urgency) {
		return nil, domain.ErrInvalidUrgency
	}

	if _, err := uc.userRepo.GetByID(ctx, actorID); err != nil {
		return nil, err
	}
	if _, err := uc.skillRepo.GetSkill(ctx, request.SkillID); err != nil {
		return nil, err
	}

	active, err := uc.skillRepo.HasActiveRequest(ctx, actorID, request.SkillID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, domain.ErrDuplicateActiveRequest
	}

	request.ID = uuid.NewString()
	request.UserID = actorID
	request.IsActive = true
	request.CreatedAt = uc.clock.now()

	if err := uc.skillRepo.CreateRequest(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// CloseRequest деактивирует запрос владельцем. История запросов сохраняется.
func (uc *SkillUseCase) CloseRequest(ctx context.Context, actorID, requestID string) error {
	if actorID == "" {
		return domain.ErrUnauthorized
	}
	request, err := uc.skillRepo.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if request.UserID != actorID {
		return domain.ErrForbidden
	}
	if !request.IsActive {
		return nil
	}
	return uc.skillRepo.DeactivateRequest(ctx, requestID)
}

// GetUserSkills возвращает предложения и активные запросы пользователя.
func (uc *SkillUseCase) GetUserSkills(ctx context.Context, userID string) (*domain.UserSkills, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	offers, err := uc.skillRepo.GetUserOffers(ctx, userID)
	if err != nil {
		return nil, err
	}
	requests, err := uc.skillRepo.GetUserRequests(ctx, userID, true)
	if err != nil {
		return nil, err
	}

	return &domain.UserSkills{
		UserID:   userID,
		Offers:   offers,
		Requests: requests,
	}, nil
}
