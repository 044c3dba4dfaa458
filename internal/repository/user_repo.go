package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"skill-swap-service/internal/database"
	"skill-swap-service/internal/domain"
)

// UserRepository реализует взаимодействие с данными пользователей в PostgreSQL.
type UserRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewUserRepository создает новый экземпляр UserRepository.
func NewUserRepository(db *sql.DB, queries *database.Queries) domain.UserRepository {
	return &UserRepository{
		db:      db,
		queries: queries,
	}
}

func toDomainUser(dbUser database.User) *domain.User {
	return &domain.User{
		ID:            dbUser.UserID,
		Username:      dbUser.Username,
		IsActive:      dbUser.IsActive,
		IsBanned:      dbUser.IsBanned,
		IsPublic:      dbUser.IsPublic,
		AverageRating: dbUser.AverageRating,
		RatingCount:   int(dbUser.RatingCount),
	}
}

// GetByID возвращает пользователя по ID.
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	dbUser, err := r.queries.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toDomainUser(dbUser), nil
}

// GetByIDs возвращает найденных пользователей, индексированных по ID.
// Отсутствующие ID просто не попадают в результат.
func (r *UserRepository) GetByIDs(ctx context.Context, userIDs []string) (map[string]*domain.User, error) {
	result := make(map[string]*domain.User, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	dbUsers, err := r.queries.GetUsersByIDs(ctx, userIDs)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	for _, dbUser := range dbUsers {
		result[dbUser.UserID] = toDomainUser(dbUser)
	}

	return result, nil
}

// ListPublic возвращает страницу каталога публичных профилей.
func (r *UserRepository) ListPublic(ctx context.Context, filter domain.UserDirectoryFilter) ([]*domain.User, error) {
	dbUsers, err := r.queries.ListPublicUsers(ctx, database.ListPublicUsersParams{
		Search:   filter.Search,
		SkillID:  filter.SkillID,
		Category: filter.Category,
		Limit:    int32(filter.Limit),
		Offset:   int32(filter.Skip),
	})
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to list public users: %w", err)
	}

	users := make([]*domain.User, 0, len(dbUsers))
	for _, dbUser := range dbUsers {
		users = append(users, toDomainUser(dbUser))
	}
	return users, nil
}

// Upsert создает профиль или обновляет имя и видимость существующего.
func (r *UserRepository) Upsert(ctx context.Context, user *domain.User) (*domain.User, error) {
	dbUser, err := r.queries.UpsertUser(ctx, database.UpsertUserParams{
		UserID:   user.ID,
		Username: user.Username,
		IsActive: user.IsActive,
		IsPublic: user.IsPublic,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return toDomainUser(dbUser), nil
}

// UpdateActiveStatus обновляет статус активности пользователя.
func (r *UserRepository) UpdateActiveStatus(ctx context.Context, userID string, isActive bool) (*domain.User, error) {
	dbUser, err := r.queries.UpdateUserActiveStatus(ctx, database.UpdateUserActiveStatusParams{
		UserID:   userID,
		IsActive: isActive,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user status: %w", err)
	}

	return toDomainUser(dbUser), nil
}

// UpdateBannedStatus блокирует или разблокирует пользователя.
func (r *UserRepository) UpdateBannedStatus(ctx context.Context, userID string, isBanned bool) (*domain.User, error) {
	dbUser, err := r.queries.UpdateUserBannedStatus(ctx, database.UpdateUserBannedStatusParams{
		UserID:   userID,
		IsBanned: isBanned,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user ban: %w", err)
	}

	return toDomainUser(dbUser), nil
}
