package contract

import (
	"context"

	"github.com/desparches/backend/internal/domain/entity"
)

// IChatRepository is the shared global chat log.
type IChatRepository interface {
	// ListMessages returns every message in insertion order.
	ListMessages(ctx context.Context) []entity.ChatMessage
	// Send appends a message. A nil author or blank text is a silent no-op
	// returning a nil message.
	Send(ctx context.Context, author *entity.User, text string) (*entity.ChatMessage, error)
}
