package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/desparches/backend/internal/domain/contract"
	"github.com/desparches/backend/internal/domain/entity"
	"github.com/desparches/backend/internal/infrastructure/recordstore"
)

// UserRepository owns the "users" roster and the "currentUser" session
// record. Credentials are deliberately not verified: the password is
// accepted on register and login but never stored or checked.
type UserRepository struct {
	mu             sync.Mutex
	store          contract.IRecordStore
	log            contract.IAppLogger
	ids            contract.IIDGenerator
	validator      contract.IValidator
	bootstrapEmail string
	seed           []entity.User
}

// NewUserRepository creates a UserRepository. bootstrapEmail is the single
// reserved address that registers as primary administrator; seed is the
// roster written on first access.
func NewUserRepository(
	store contract.IRecordStore,
	log contract.IAppLogger,
	ids contract.IIDGenerator,
	validator contract.IValidator,
	bootstrapEmail string,
	seed []entity.User,
) *UserRepository {
	return &UserRepository{
		store:          store,
		log:            log,
		ids:            ids,
		validator:      validator,
		bootstrapEmail: bootstrapEmail,
		seed:           seed,
	}
}

var _ contract.IUserRepository = (*UserRepository)(nil)

func (r *UserRepository) roster(ctx context.Context) []entity.User {
	return recordstore.ReadOrSeed(ctx, r.store, r.log, usersKey, r.seed)
}

// ListUsers returns the roster, seeding it with fixture data on first access.
func (r *UserRepository) ListUsers(ctx context.Context) []entity.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.roster(ctx)
}

// GetUserByID retrieves a roster entry by id.
func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.roster(ctx) {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, entity.ErrUserNotFound
}

// Register adds a new user to the roster and switches the session to it.
// Email uniqueness is a case-sensitive exact match against the roster.
func (r *UserRepository) Register(ctx context.Context, email, _ string) (*entity.User, error) {
	if err := r.validator.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email format: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.roster(ctx)
	for _, u := range users {
		if u.Email == email {
			return nil, entity.ErrEmailInUse
		}
	}

	local := email
	if at := strings.Index(email, "@"); at >= 0 {
		local = email[:at]
	}
	if local == "" {
		local = "Usuario"
	}
	role := entity.DefaultRole()
	if email == r.bootstrapEmail {
		role = entity.RoleAdminPrimario
	}
	user := entity.User{
		ID:                 r.ids.NewID("usr"),
		Email:              email,
		DisplayName:        local,
		PhotoURL:           fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", local),
		Role:               role,
		FavoriteCategories: []string{},
	}

	if err := recordstore.Write(ctx, r.store, usersKey, append(users, user)); err != nil {
		return nil, fmt.Errorf("persisting roster: %w", err)
	}
	if err := recordstore.Write(ctx, r.store, currentUserKey, user); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}
	return &user, nil
}

// Login looks a user up by email only. The password goes unchecked.
func (r *UserRepository) Login(ctx context.Context, email, _ string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.roster(ctx) {
		if u.Email == email {
			if err := recordstore.Write(ctx, r.store, currentUserKey, u); err != nil {
				return nil, fmt.Errorf("persisting session: %w", err)
			}
			return &u, nil
		}
	}
	return nil, entity.ErrUserNotFound
}

// Logout clears the session record. The roster is untouched.
func (r *UserRepository) Logout(ctx context.Context) error {
	return r.store.Delete(ctx, currentUserKey)
}

// CurrentUser returns the session user, if any. The session is independent
// of the roster and may reference a deleted user.
func (r *UserRepository) CurrentUser(ctx context.Context) (*entity.User, bool) {
	user, ok := recordstore.Read[entity.User](ctx, r.store, r.log, currentUserKey)
	if !ok {
		return nil, false
	}
	return &user, true
}

// UpdateUser replaces the roster entry matching the user's id. When the
// updated user is the session user, the session is refreshed to match.
func (r *UserRepository) UpdateUser(ctx context.Context, user entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.roster(ctx)
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = user
		}
	}
	if err := recordstore.Write(ctx, r.store, usersKey, users); err != nil {
		return fmt.Errorf("persisting roster: %w", err)
	}

	if current, ok := recordstore.Read[entity.User](ctx, r.store, r.log, currentUserKey); ok && current.ID == user.ID {
		if err := recordstore.Write(ctx, r.store, currentUserKey, user); err != nil {
			return fmt.Errorf("refreshing session: %w", err)
		}
	}
	return nil
}

// DeleteUser removes a roster entry. Forum, chat and post content authored
// by the user keeps its snapshots; the session is not touched either.
func (r *UserRepository) DeleteUser(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.roster(ctx)
	kept := users[:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	if err := recordstore.Write(ctx, r.store, usersKey, kept); err != nil {
		return fmt.Errorf("persisting roster: %w", err)
	}
	return nil
}

// Authorize reports whether role's rank reaches the rank of any role in the
// allowed set. The set acts as a floor: an administrator passes checks that
// allow lower roles.
func (r *UserRepository) Authorize(role entity.Role, allowed ...entity.Role) bool {
	if len(allowed) == 0 {
		return true
	}
	rank := role.Rank()
	for _, a := range allowed {
		if rank >= a.Rank() {
			return true
		}
	}
	return false
}
