package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desparches/backend/internal/domain/entity"
	"github.com/desparches/backend/internal/infrastructure/idgen"
	"github.com/desparches/backend/internal/infrastructure/logger"
	"github.com/desparches/backend/internal/infrastructure/recordstore"
	"github.com/desparches/backend/internal/infrastructure/validator"
	"github.com/desparches/backend/internal/repository"
)

const bootstrapEmail = "admin01@gmail.com"

func newUserRepo(seed []entity.User) *repository.UserRepository {
	return repository.NewUserRepository(
		recordstore.NewMemoryStore(),
		logger.NewNopLogger(),
		idgen.NewGenerator(),
		validator.NewValidator(),
		bootstrapEmail,
		seed,
	)
}

func TestRegister(t *testing.T) {
	repo := newUserRepo(nil)
	ctx := context.Background()

	user, err := repo.Register(ctx, "maria@example.com", "whatever")
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", user.Email)
	assert.Equal(t, "maria", user.DisplayName)
	assert.Equal(t, entity.RoleUsuario, user.Role)
	assert.Contains(t, user.PhotoURL, "ui-avatars.com")
	assert.NotEmpty(t, user.ID)

	current, ok := repo.CurrentUser(ctx)
	require.True(t, ok)
	assert.Equal(t, user.ID, current.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newUserRepo(nil)
	ctx := context.Background()

	_, err := repo.Register(ctx, "maria@example.com", "first")
	require.NoError(t, err)

	_, err = repo.Register(ctx, "maria@example.com", "second")
	assert.ErrorIs(t, err, entity.ErrEmailInUse)
}

func TestRegisterSeededEmailConflicts(t *testing.T) {
	seed := []entity.User{{ID: "usr_seed", Email: "seeded@example.com", DisplayName: "Seeded", Role: entity.RoleUsuario}}
	repo := newUserRepo(seed)
	ctx := context.Background()

	_, err := repo.Register(ctx, "seeded@example.com", "pw")
	assert.ErrorIs(t, err, entity.ErrEmailInUse)
}

func TestRegisterBootstrapAdmin(t *testing.T) {
	repo := newUserRepo(nil)
	ctx := context.Background()

	admin, err := repo.Register(ctx, bootstrapEmail, "pw")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdminPrimario, admin.Role)

	other, err := repo.Register(ctx, "someone@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUsuario, other.Role)
}

func TestRegisterInvalidEmail(t *testing.T) {
	repo := newUserRepo(nil)

	_, err := repo.Register(context.Background(), "not-an-email", "pw")
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	seed := []entity.User{{ID: "usr_seed", Email: "seeded@example.com", DisplayName: "Seeded", Role: entity.RoleUsuario}}
	repo := newUserRepo(seed)
	ctx := context.Background()

	user, err := repo.Login(ctx, "seeded@example.com", "any password at all")
	require.NoError(t, err)
	assert.Equal(t, "usr_seed", user.ID)

	current, ok := repo.CurrentUser(ctx)
	require.True(t, ok)
	assert.Equal(t, "usr_seed", current.ID)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := newUserRepo(nil)

	_, err := repo.Login(context.Background(), "nobody@example.com", "pw")
	assert.ErrorIs(t, err, entity.ErrUserNotFound)
}

func TestLogout(t *testing.T) {
	repo := newUserRepo(nil)
	ctx := context.Background()

	_, err := repo.Register(ctx, "maria@example.com", "pw")
	require.NoError(t, err)

	require.NoError(t, repo.Logout(ctx))

	_, ok := repo.CurrentUser(ctx)
	assert.False(t, ok)

	// the roster survives a logout
	assert.Len(t, repo.ListUsers(ctx), 1)
}

func TestUpdateUserRefreshesSession(t *testing.T) {
	repo := newUserRepo(nil)
	ctx := context.Background()

	user, err := repo.Register(ctx, "maria@example.com", "pw")
	require.NoError(t, err)

	updated := *user
	updated.DisplayName = "María Fernanda"
	require.NoError(t, repo.UpdateUser(ctx, updated))

	current, ok := repo.CurrentUser(ctx)
	require.True(t, ok)
	assert.Equal(t, "María Fernanda", current.DisplayName)

	stored, err := repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "María Fernanda", stored.DisplayName)
}

func TestUpdateUserLeavesOtherSessionsAlone(t *testing.T) {
	seed := []entity.User{
		{ID: "usr_a", Email: "a@example.com", DisplayName: "A", Role: entity.RoleUsuario},
		{ID: "usr_b", Email: "b@example.com", DisplayName: "B", Role: entity.RoleUsuario},
	}
	repo := newUserRepo(seed)
	ctx := context.Background()

	_, err := repo.Login(ctx, "a@example.com", "pw")
	require.NoError(t, err)

	require.NoError(t, repo.UpdateUser(ctx, entity.User{ID: "usr_b", Email: "b@example.com", DisplayName: "B2", Role: entity.RoleAyudante}))

	current, ok := repo.CurrentUser(ctx)
	require.True(t, ok)
	assert.Equal(t, "usr_a", current.ID)
}

func TestDeleteUserKeepsSession(t *testing.T) {
	repo := newUserRepo(nil)
	ctx := context.Background()

	user, err := repo.Register(ctx, "maria@example.com", "pw")
	require.NoError(t, err)

	require.NoError(t, repo.DeleteUser(ctx, user.ID))

	_, err = repo.GetUserByID(ctx, user.ID)
	assert.ErrorIs(t, err, entity.ErrUserNotFound)

	// the session snapshot outlives the roster entry
	current, ok := repo.CurrentUser(ctx)
	require.True(t, ok)
	assert.Equal(t, user.ID, current.ID)
}

func TestAuthorize(t *testing.T) {
	repo := newUserRepo(nil)

	tests := []struct {
		name    string
		role    entity.Role
		allowed []entity.Role
		want    bool
	}{
		{"exact match", entity.RoleAyudante, []entity.Role{entity.RoleAyudante}, true},
		{"higher rank passes lower floor", entity.RoleAdminPrimario, []entity.Role{entity.RoleAyudante}, true},
		{"lower rank fails higher floor", entity.RoleUsuario, []entity.Role{entity.RoleAdminSecundario}, false},
		{"any floor suffices", entity.RoleDisenador, []entity.Role{entity.RoleAdminPrimario, entity.RoleUsuario}, true},
		{"empty set allows everyone", entity.RoleUsuario, nil, true},
		{"unknown role fails every floor", entity.Role("Visitante"), []entity.Role{entity.RoleUsuario}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repo.Authorize(tt.role, tt.allowed...))
		})
	}
}
