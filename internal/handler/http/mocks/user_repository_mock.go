package mocks

import (
	"context"
	"errors"

	"github.com/desparches/backend/internal/domain/contract"
	"github.com/desparches/backend/internal/domain/entity"
)

// MockUserRepository is a mock implementation of the IUserRepository contract
type MockUserRepository struct {
	// Control mock behavior
	ShouldFailRegister   bool
	ShouldFailLogin      bool
	ShouldFailGetByID    bool
	ShouldFailUpdateUser bool
	ShouldFailDeleteUser bool
	ShouldFailLogout     bool
	NoSession            bool

	// Return values
	MockUser  entity.User
	MockUsers []entity.User
}

var _ contract.IUserRepository = (*MockUserRepository)(nil)

func NewMockUserRepository() *MockUserRepository {
	u := entity.User{
		ID:          "usr_mock",
		DisplayName: "testuser",
		Email:       "test@example.com",
		Role:        entity.RoleUsuario,
	}
	return &MockUserRepository{
		MockUser:  u,
		MockUsers: []entity.User{u},
	}
}

func (m *MockUserRepository) ListUsers(ctx context.Context) []entity.User {
	return m.MockUsers
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, entity.ErrUserNotFound
	}
	return &m.MockUser, nil
}

func (m *MockUserRepository) Register(ctx context.Context, email, password string) (*entity.User, error) {
	if m.ShouldFailRegister {
		return nil, entity.ErrEmailInUse
	}
	return &m.MockUser, nil
}

func (m *MockUserRepository) Login(ctx context.Context, email, password string) (*entity.User, error) {
	if m.ShouldFailLogin {
		return nil, entity.ErrUserNotFound
	}
	return &m.MockUser, nil
}

func (m *MockUserRepository) Logout(ctx context.Context) error {
	if m.ShouldFailLogout {
		return errors.New("logout failed")
	}
	return nil
}

func (m *MockUserRepository) CurrentUser(ctx context.Context) (*entity.User, bool) {
	if m.NoSession {
		return nil, false
	}
	return &m.MockUser, true
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user entity.User) error {
	if m.ShouldFailUpdateUser {
		return entity.ErrUserNotFound
	}
	m.MockUser = user
	return nil
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, id string) error {
	if m.ShouldFailDeleteUser {
		return entity.ErrUserNotFound
	}
	return nil
}

func (m *MockUserRepository) Authorize(role entity.Role, allowed ...entity.Role) bool {
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
