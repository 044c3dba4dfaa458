package usecase_test

import (
	"context"
	"testing"

	"skill-swap-service/internal/domain"
	"skill-swap-service/internal/mocks"
	"skill-swap-service/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserUseCase_RegisterProfile(t *testing.T) {
	ctx := context.Background()
	userRepo := &mocks.UserRepository{}
	uc := usecase.NewUserUseCase(userRepo, domain.DefaultMatchPolicy())

	expected := &domain.User{ID: "alice", Username: "alice", IsActive: true, IsPublic: false}
	userRepo.On("Upsert", ctx, expected).Return(expected, nil)

	user, err := uc.RegisterProfile(ctx, "alice", "   ", false)

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	userRepo.AssertExpectations(t)

	_, err = uc.RegisterProfile(ctx, "", "anon", true)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUserUseCase_SetUserActive(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		userRepo := &mocks.UserRepository{}
		uc := usecase.NewUserUseCase(userRepo, domain.DefaultMatchPolicy())
		user := activeUser("u1")
		updated := activeUser("u1")
		updated.IsActive = false

		userRepo.On("GetByID", ctx, "u1").Return(user, nil)
		userRepo.On("UpdateActiveStatus", ctx, "u1", false).Return(updated, nil)

		result, err := uc.SetUserActive(ctx, "u1", false)

		require.NoError(t, err)
		assert.False(t, result.IsActive)
		userRepo.AssertExpectations(t)
	})

	t.Run("user not found", func(t *testing.T) {
		userRepo := &mocks.UserRepository{}
		uc := usecase.NewUserUseCase(userRepo, domain.DefaultMatchPolicy())
		userRepo.On("GetByID", ctx, "ghost").Return(nil, domain.ErrUserNotFound)

		result, err := uc.SetUserActive(ctx, "ghost", true)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		userRepo.AssertNotCalled(t, "UpdateActiveStatus")
	})
}

func TestUserUseCase_SetUserBanned(t *testing.T) {
	ctx := context.Background()
	userRepo := &mocks.UserRepository{}
	uc := usecase.NewUserUseCase(userRepo, domain.DefaultMatchPolicy())
	banned := activeUser("u1")
	banned.IsBanned = true

	userRepo.On("GetByID", ctx, "u1").Return(activeUser("u1"), nil)
	userRepo.On("UpdateBannedStatus", ctx, "u1", true).Return(banned, nil)

	result, err := uc.SetUserBanned(ctx, "u1", true)

	require.NoError(t, err)
	assert.True(t, result.IsBanned)
	assert.False(t, result.CanParticipate())
}

func TestUserUseCase_GetUser(t *testing.T) {
	ctx := context.Background()
	userRepo := &mocks.UserRepository{}
	uc := usecase.NewUserUseCase(userRepo, domain.DefaultMatchPolicy())
	userRepo.On("GetByID", ctx, "u1").Return(activeUser("u1"), nil)

	user, err := uc.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	_, err = uc.GetUser(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidUserID)
}

func TestUserUseCase_ListPublicProfiles(t *testing.T) {
	ctx := context.Background()
	userRepo := &mocks.UserRepository{}
	uc := usecase.NewUserUseCase(userRepo, domain.DefaultMatchPolicy())

	expected := domain.UserDirectoryFilter{Search: "ali", Category: "music", Skip: 10, Limit: 20}
	userRepo.On("ListPublic", ctx, expected).Return([]*domain.User{activeUser("alice")}, nil)

	users, err := uc.ListPublicProfiles(ctx, domain.UserDirectoryFilter{Search: " ali ", Category: "music", Skip: 10})

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].ID)

	_, err = uc.ListPublicProfiles(ctx, domain.UserDirectoryFilter{Limit: 101})
	assert.ErrorIs(t, err, domain.ErrInvalidPagination)
}
