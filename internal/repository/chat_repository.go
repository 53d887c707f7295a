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

// ChatRepository owns the "chatMessages" collection: a flat shared log with
// no retention policy, chronological by insertion.
type ChatRepository struct {
	mu    sync.Mutex
	store contract.IRecordStore
	log   contract.IAppLogger
	ids   contract.IIDGenerator
	clock contract.IClock
}

func NewChatRepository(
	store contract.IRecordStore,
	log contract.IAppLogger,
	ids contract.IIDGenerator,
	clock contract.IClock,
) *ChatRepository {
	return &ChatRepository{store: store, log: log, ids: ids, clock: clock}
}

var _ contract.IChatRepository = (*ChatRepository)(nil)

// ListMessages returns every message in insertion order.
func (r *ChatRepository) ListMessages(ctx context.Context) []entity.ChatMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	messages, _ := recordstore.Read[[]entity.ChatMessage](ctx, r.store, r.log, chatMessagesKey)
	return messages
}

// Send appends a message carrying the author's snapshot. A nil author or
// blank text is a silent no-op returning a nil message.
func (r *ChatRepository) Send(ctx context.Context, author *entity.User, text string) (*entity.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if author == nil || text == "" {
		return nil, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	messages, _ := recordstore.Read[[]entity.ChatMessage](ctx, r.store, r.log, chatMessagesKey)
	message := entity.ChatMessage{
		ID:        r.ids.NewID("msg"),
		Text:      text,
		Author:    author.Snapshot(),
		CreatedAt: r.clock.Now(),
	}
	if err := recordstore.Write(ctx, r.store, chatMessagesKey, append(messages, message)); err != nil {
		return nil, fmt.Errorf("persisting chat: %w", err)
	}
	return &message, nil
}
