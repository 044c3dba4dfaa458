package domain

import (
	"context"
	"time"
)

// Уровни владения навыком.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelExpert       = "expert"
)

// Срочность запроса на обучение.
const (
	UrgencyLow    = "low"
	UrgencyNormal = "normal"
	UrgencyHigh   = "high"
)

// ValidLevel проверяет уровень владения навыком.
func ValidLevel(level string) bool {
	switch level {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert:
		return true
	}
	return false
}

// ValidUrgency проверяет срочность запроса. Пустое значение допустимо.
func ValidUrgency(urgency string) bool {
	switch urgency {
	case "", UrgencyLow, UrgencyNormal, UrgencyHigh:
		return true
	}
	return false
}

// Skill представляет навык из каталога.
type Skill struct {
	ID       string
	Name     string
	Category string
}

// SkillOffer - заявление пользователя о том, что он может обучать навыку.
type SkillOffer struct {
	ID               string
	UserID           string
	SkillID          string
	ProficiencyLevel string
	IsApproved       bool
	CanTeachRemotely bool
	CanTeachInPerson bool
	CreatedAt        time.Time
}

// SkillRequest - заявление пользователя о том, что он хочет изучить навык.
type SkillRequest struct {
	ID           string
	UserID       string
	SkillID      string
	DesiredLevel string
	Urgency      string
	Message      string
	IsActive     bool
	CreatedAt    time.Time
}

// UserSkills объединяет предложения и запросы пользователя.
type UserSkills struct {
	UserID   string
	Offers   []*SkillOffer
	Requests []*SkillRequest
}

// SkillRepository определяет контракт для работы с каталогом навыков,
// предложениями и запросами.
type SkillRepository interface {
	CreateSkill(ctx context.Context, skill *Skill) error
	GetSkill(ctx context.Context, skillID string) (*Skill, error)
	ExistsSkillName(ctx context.Context, name string) (bool, error)

	CreateOffer(ctx context.Context, offer *SkillOffer) error
	GetOffer(ctx context.Context, offerID string) (*SkillOffer, error)
	GetUserOffer(ctx context.Context, userID, skillID string) (*SkillOffer, error)
	DeleteOffer(ctx context.Context, offerID string) error
	SetOfferApproved(ctx context.Context, offerID string, approved bool) (*SkillOffer, error)
	GetUserOffers(ctx context.Context, userID string) ([]*SkillOffer, error)
	GetOffersBySkills(ctx context.Context, skillIDs []string, excludeUserID string) ([]*SkillOffer, error)

	CreateRequest(ctx context.Context, request *SkillRequest) error
	GetRequest(ctx context.Context, requestID string) (*SkillRequest, error)
	DeactivateRequest(ctx context.Context, requestID string) error
	HasActiveRequest(ctx context.Context, userID, skillID string) (bool, error)
	GetUserRequests(ctx context.Context, userID string, activeOnly bool) ([]*SkillRequest, error)
	GetActiveRequestsBySkills(ctx context.Context, skillIDs []string, userIDs []string) ([]*SkillRequest, error)
}
