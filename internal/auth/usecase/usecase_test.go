package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evershine/storefront-core/internal/auth"
	authRepoPkg "github.com/evershine/storefront-core/internal/auth/repository"
	authUCPkg "github.com/evershine/storefront-core/internal/auth/usecase"
	"github.com/evershine/storefront-core/pkg/logger"
	"github.com/evershine/storefront-core/pkg/storage"
	"github.com/evershine/storefront-core/pkg/storage/memory"
)

func newAuth(store storage.Store) auth.UseCase {
	// Zero delay keeps the tests instant.
	return authUCPkg.NewAuthUseCase(context.Background(), authRepoPkg.NewSeededRepository(), store, 0, logger.NewNop())
}

func TestLogin_AdminCredential(t *testing.T) {
	uc := newAuth(memory.New())

	user, err := uc.Login(context.Background(), "admin@evershine.com", "evershine123")
	require.NoError(t, err)
	assert.True(t, user.IsAdmin)
	assert.Equal(t, "admin-1", user.ID)
	assert.Equal(t, "Admin User", user.Name)
}

func TestLogin_RegularCredential(t *testing.T) {
	uc := newAuth(memory.New())

	user, err := uc.Login(context.Background(), "john@example.com", "password123")
	require.NoError(t, err)
	assert.False(t, user.IsAdmin)
	assert.Equal(t, "John Doe", user.Name)
	require.NotNil(t, uc.CurrentUser())
	assert.Equal(t, user.ID, uc.CurrentUser().ID)
}

func TestLogin_FailureLeavesCurrentUserUnchanged(t *testing.T) {
	ctx := context.Background()
	uc := newAuth(memory.New())

	_, err := uc.Login(ctx, "john@example.com", "password123")
	require.NoError(t, err)

	// Wrong password and unknown email fail the same way.
	_, err = uc.Login(ctx, "john@example.com", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	_, err = uc.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	require.NotNil(t, uc.CurrentUser())
	assert.Equal(t, "john@example.com", uc.CurrentUser().Email)
}

func TestLogin_PasswordComparisonIsCaseSensitive(t *testing.T) {
	uc := newAuth(memory.New())

	_, err := uc.Login(context.Background(), "john@example.com", "Password123")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRegister_NewUser(t *testing.T) {
	ctx := context.Background()
	uc := newAuth(memory.New())

	user, err := uc.Register(ctx, "New Person", "new@example.com", "secret")
	require.NoError(t, err)
	assert.False(t, user.IsAdmin)
	assert.NotEmpty(t, user.ID)

	// The fresh credential is immediately usable.
	uc.Logout(ctx)
	again, err := uc.Login(ctx, "new@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
}

func TestRegister_ExistingEmailFails(t *testing.T) {
	uc := newAuth(memory.New())

	_, err := uc.Register(context.Background(), "Impostor", "john@example.com", "whatever")
	assert.ErrorIs(t, err, auth.ErrEmailTaken)
	assert.Nil(t, uc.CurrentUser())
}

func TestLogout_ClearsSessionAndSnapshot(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	uc := newAuth(store)

	_, err := uc.Login(ctx, "jane@example.com", "password123")
	require.NoError(t, err)

	uc.Logout(ctx)
	assert.Nil(t, uc.CurrentUser())

	_, err = store.Get(ctx, storage.KeyUser)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSession_RestoredFromSnapshot(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	uc := newAuth(store)
	_, err := uc.Login(ctx, "jane@example.com", "password123")
	require.NoError(t, err)

	restored := newAuth(store)
	require.NotNil(t, restored.CurrentUser())
	assert.Equal(t, "jane@example.com", restored.CurrentUser().Email)
}

func TestSession_MalformedSnapshotMeansLoggedOut(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Set(ctx, storage.KeyUser, []byte("not json")))

	uc := newAuth(store)
	assert.Nil(t, uc.CurrentUser())
}

func TestRegisteredUsersAreProcessScoped(t *testing.T) {
	ctx := context.Background()

	uc := newAuth(memory.New())
	_, err := uc.Register(ctx, "Ephemeral", "ephemeral@example.com", "secret")
	require.NoError(t, err)

	// A fresh repository (a "restart") has no such credential.
	fresh := newAuth(memory.New())
	_, err = fresh.Login(ctx, "ephemeral@example.com", "secret")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
