package contract

import (
	"context"

	"github.com/desparches/backend/internal/domain/entity"
)

// IAdminMessageRepository is the append-only inbox of contact-form messages
// addressed to the administrators.
type IAdminMessageRepository interface {
	// Send appends a message stamped with the author's id and email. Fails
	// with entity.ErrNotAuthenticated when user is nil.
	Send(ctx context.Context, user *entity.User, subject, body string) (*entity.AdminMessage, error)
	// ListMessages returns every message in insertion order.
	ListMessages(ctx context.Context) []entity.AdminMessage
}
