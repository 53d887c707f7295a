package contract

import (
	"context"

	"github.com/desparches/backend/internal/domain/entity"
)

// IEventRepository lists and appends events. Events have no update or
// delete operation.
type IEventRepository interface {
	// ListEvents returns every event, seeding the collection from the fixture
	// generator on first access.
	ListEvents(ctx context.Context) []entity.Event
	// AddEvent assigns a fresh id to the draft, appends it and returns the
	// stored event.
	AddEvent(ctx context.Context, draft entity.Event) (*entity.Event, error)
}
