package usecase

import (
	"context"
	"strings"

	"skill-swap-service/internal/domain"
)

// UserUseCase реализует бизнес-логику для работы с пользователями.
type UserUseCase struct {
	userRepo domain.UserRepository
	policy   domain.MatchPolicy
}

// NewUserUseCase создает новый экземпляр UserUseCase.
func NewUserUseCase(userRepo domain.UserRepository, policy domain.MatchPolicy) domain.UserUseCase {
	if policy.MaxLimit <= 0 {
		policy = domain.DefaultMatchPolicy()
	}
	return &UserUseCase{
		userRepo: userRepo,
		policy:   policy,
	}
}

// RegisterProfile создает или обновляет профиль пользователя с проверенным идентификатором.
// Флаги модерации существующего пользователя не меняются.
func (uc *UserUseCase) RegisterProfile(ctx context.Context, actorID, username string, isPublic bool) (*domain.User, error) {
	if actorID == "" {
		return nil, domain.ErrUnauthorized
	}
	username = strings.TrimSpace(username)
	if username == "" {
		username = actorID
	}

	return uc.userRepo.Upsert(ctx, &domain.User{
		ID:       actorID,
		Username: username,
		IsActive: true,
		IsPublic: isPublic,
	})
}

// GetUser возвращает пользователя по ID.
func (uc *UserUseCase) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}
	return uc.userRepo.GetByID(ctx, userID)
}

// ListPublicProfiles возвращает страницу каталога публичных профилей.
func (uc *UserUseCase) ListPublicProfiles(ctx context.Context, filter domain.UserDirectoryFilter) ([]*domain.User, error) {
	limit, err := normalizePage(filter.Skip, filter.Limit, uc.policy.DefaultLimit, uc.policy.MaxLimit)
	if err != nil {
		return nil, err
	}
	filter.Limit = limit
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Category = strings.TrimSpace(filter.Category)

	return uc.userRepo.ListPublic(ctx, filter)
}

// SetUserActive устанавливает флаг активности пользователя.
func (uc *UserUseCase) SetUserActive(ctx context.Context, userID string, isActive bool) (*domain.User, error) {
	// Проверяем, что пользователь существует
	_, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	return uc.userRepo.UpdateActiveStatus(ctx, userID, isActive)
}

// SetUserBanned устанавливает флаг блокировки пользователя.
func (uc *UserUseCase) SetUserBanned(ctx context.Context, userID string, isBanned bool) (*domain.User, error) {
	_, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	return uc.userRepo.UpdateBannedStatus(ctx, userID, isBanned)
}
