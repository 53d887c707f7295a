package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/desparches/backend/internal/domain/contract"
	"github.com/desparches/backend/internal/domain/entity"
	"github.com/desparches/backend/internal/infrastructure/recordstore"
)

// AdminMessageRepository owns the "adminMessages" collection: the
// append-only inbox of contact-form messages for the administrators.
type AdminMessageRepository struct {
	mu    sync.Mutex
	store contract.IRecordStore
	log   contract.IAppLogger
	ids   contract.IIDGenerator
	clock contract.IClock
}

func NewAdminMessageRepository(
	store contract.IRecordStore,
	log contract.IAppLogger,
	ids contract.IIDGenerator,
	clock contract.IClock,
) *AdminMessageRepository {
	return &AdminMessageRepository{store: store, log: log, ids: ids, clock: clock}
}

var _ contract.IAdminMessageRepository = (*AdminMessageRepository)(nil)

// Send appends a message stamped with the sender's id and email.
func (r *AdminMessageRepository) Send(ctx context.Context, user *entity.User, subject, body string) (*entity.AdminMessage, error) {
	if user == nil {
		return nil, entity.ErrNotAuthenticated
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	messages, _ := recordstore.Read[[]entity.AdminMessage](ctx, r.store, r.log, adminMessagesKey)
	message := entity.AdminMessage{
		ID:        r.ids.NewID("msg"),
		UserID:    user.ID,
		UserEmail: user.Email,
		Subject:   subject,
		Body:      body,
		CreatedAt: r.clock.Now(),
	}
	if err := recordstore.Write(ctx, r.store, adminMessagesKey, append(messages, message)); err != nil {
		return nil, fmt.Errorf("persisting admin messages: %w", err)
	}
	return &message, nil
}

// ListMessages returns every message in insertion order.
func (r *AdminMessageRepository) ListMessages(ctx context.Context) []entity.AdminMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	messages, _ := recordstore.Read[[]entity.AdminMessage](ctx, r.store, r.log, adminMessagesKey)
	return messages
}
