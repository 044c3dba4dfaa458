package domain

import "context"

// User представляет участника обмена навыками.
type User struct {
	ID            string
	Username      string
	IsActive      bool
	IsBanned      bool
	IsPublic      bool
	AverageRating float64
	RatingCount   int
}

// CanParticipate сообщает, может ли пользователь быть стороной обмена.
func (u *User) CanParticipate() bool {
	return u != nil && u.IsActive && !u.IsBanned
}

// Discoverable сообщает, может ли пользователь попадать в результаты поиска.
func (u *User) Discoverable() bool {
	return u.CanParticipate() && u.IsPublic
}

// UserDirectoryFilter задает выборку каталога публичных профилей.
type UserDirectoryFilter struct {
	Search   string // подстрока имени, без учета регистра
	SkillID  string // предлагает или ищет навык
	Category string // предлагает или ищет навык из категории
	Skip     int
	Limit    int
}

// UserRepository определяет контракт для работы с хранилищем пользователей.
type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*User, error)
	Upsert(ctx context.Context, user *User) (*User, error)
	UpdateActiveStatus(ctx context.Context, userID string, isActive bool) (*User, error)
	UpdateBannedStatus(ctx context.Context, userID string, isBanned bool) (*User, error)
	GetByIDs(ctx context.Context, userIDs []string) (map[string]*User, error)
	// ListPublic возвращает публичных активных незаблокированных пользователей, лучшие по рейтингу первыми.
	ListPublic(ctx context.Context, filter UserDirectoryFilter) ([]*User, error)
}
