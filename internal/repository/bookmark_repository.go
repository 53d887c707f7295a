package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/desparches/backend/internal/domain/contract"
	"github.com/desparches/backend/internal/infrastructure/recordstore"
)

// BookmarkRepository owns the "savedEventIds" collection: the set of saved
// event ids for the current profile. The set is deliberately not scoped to
// a user identity.
type BookmarkRepository struct {
	mu    sync.Mutex
	store contract.IRecordStore
	log   contract.IAppLogger
}

func NewBookmarkRepository(store contract.IRecordStore, log contract.IAppLogger) *BookmarkRepository {
	return &BookmarkRepository{store: store, log: log}
}

var _ contract.IBookmarkRepository = (*BookmarkRepository)(nil)

func (r *BookmarkRepository) ids(ctx context.Context) []string {
	ids, _ := recordstore.Read[[]string](ctx, r.store, r.log, savedEventIDsKey)
	return ids
}

// IsSaved reports membership of the event id in the saved set.
func (r *BookmarkRepository) IsSaved(ctx context.Context, eventID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.ids(ctx) {
		if id == eventID {
			return true
		}
	}
	return false
}

// Toggle flips membership of the event id. Toggling twice is a no-op.
func (r *BookmarkRepository) Toggle(ctx context.Context, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := r.ids(ctx)
	kept := make([]string, 0, len(ids)+1)
	found := false
	for _, id := range ids {
		if id == eventID {
			found = true
			continue
		}
		kept = append(kept, id)
	}
	if !found {
		kept = append(kept, eventID)
	}
	if err := recordstore.Write(ctx, r.store, savedEventIDsKey, kept); err != nil {
		return fmt.Errorf("persisting saved events: %w", err)
	}
	return nil
}

// List returns the saved event ids in insertion order.
func (r *BookmarkRepository) List(ctx context.Context) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ids(ctx)
}
