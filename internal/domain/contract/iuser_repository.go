package contract

import (
	"context"

	"github.com/desparches/backend/internal/domain/entity"
)

// IUserRepository owns the user roster and the per-profile session record.
// Read operations are total: a corrupt or missing collection degrades to the
// seed roster, never to an error.
type IUserRepository interface {
	// ListUsers returns the roster, seeding it with fixture data on first access.
	ListUsers(ctx context.Context) []entity.User
	// GetUserByID retrieves a roster entry by id.
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// Register adds a new user. Fails with entity.ErrEmailInUse when the email
	// is already on the roster. The password is accepted but never stored or
	// checked. On success the session is switched to the new user.
	Register(ctx context.Context, email, password string) (*entity.User, error)
	// Login looks a user up by email only and writes the session. Fails with
	// entity.ErrUserNotFound for an unknown email.
	Login(ctx context.Context, email, password string) (*entity.User, error)
	// Logout clears the session; the roster is untouched.
	Logout(ctx context.Context) error
	// CurrentUser returns the session user, if any. The snapshot may reference
	// a user no longer on the roster.
	CurrentUser(ctx context.Context) (*entity.User, bool)
	// UpdateUser replaces the roster entry matching the user's id and refreshes
	// the session when it points at the same user.
	UpdateUser(ctx context.Context, user entity.User) error
	// DeleteUser removes a roster entry. Content authored by the user keeps its
	// snapshots; the session is not touched.
	DeleteUser(ctx context.Context, id string) error
	// Authorize reports whether role's rank reaches the rank of any role in
	// allowed. The allowed set acts as a floor, not an exact-match set.
	Authorize(role entity.Role, allowed ...entity.Role) bool
}
