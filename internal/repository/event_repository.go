package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/desparches/backend/internal/domain/contract"
	"github.com/desparches/backend/internal/domain/entity"
	"github.com/desparches/backend/internal/infrastructure/recordstore"
)

// EventSeedFunc produces the initial event catalog written on first access.
type EventSeedFunc func(now time.Time) []entity.Event

// EventRepository owns the "events" collection. Events are append-only:
// there is no update or delete operation.
type EventRepository struct {
	mu    sync.Mutex
	store contract.IRecordStore
	log   contract.IAppLogger
	ids   contract.IIDGenerator
	clock contract.IClock
	seed  EventSeedFunc
}

func NewEventRepository(
	store contract.IRecordStore,
	log contract.IAppLogger,
	ids contract.IIDGenerator,
	clock contract.IClock,
	seed EventSeedFunc,
) *EventRepository {
	return &EventRepository{store: store, log: log, ids: ids, clock: clock, seed: seed}
}

var _ contract.IEventRepository = (*EventRepository)(nil)

func (r *EventRepository) catalog(ctx context.Context) []entity.Event {
	if events, ok := recordstore.Read[[]entity.Event](ctx, r.store, r.log, eventsKey); ok {
		return events
	}
	events := r.seed(r.clock.Now())
	if err := recordstore.Write(ctx, r.store, eventsKey, events); err != nil {
		r.log.Warnf("record store: seeding %q: %v", eventsKey, err)
	}
	return events
}

// ListEvents returns every event, seeding the collection on first access.
func (r *EventRepository) ListEvents(ctx context.Context) []entity.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.catalog(ctx)
}

// AddEvent assigns a fresh id to the draft, appends it and returns the
// stored event.
func (r *EventRepository) AddEvent(ctx context.Context, draft entity.Event) (*entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	draft.ID = r.ids.NewID("evt")
	events := append(r.catalog(ctx), draft)
	if err := recordstore.Write(ctx, r.store, eventsKey, events); err != nil {
		return nil, fmt.Errorf("persisting events: %w", err)
	}
	return &draft, nil
}
