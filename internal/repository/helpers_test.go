package repository_test

import (
	"time"

	"github.com/desparches/backend/internal/domain/contract"
	"github.com/desparches/backend/internal/domain/entity"
)

// stepClock hands out strictly increasing instants, one second apart, so
// ordering assertions are deterministic.
type stepClock struct {
	now time.Time
}

func newStepClock() *stepClock {
	return &stepClock{now: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)}
}

var _ contract.IClock = (*stepClock)(nil)

func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

func testUser(id, name string) *entity.User {
	return &entity.User{
		ID:          id,
		Email:       name + "@example.com",
		DisplayName: name,
		PhotoURL:    "https://ui-avatars.com/api/?name=" + name,
		Role:        entity.RoleUsuario,
	}
}
