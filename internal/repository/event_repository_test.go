package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desparches/backend/internal/domain/entity"
	"github.com/desparches/backend/internal/infrastructure/idgen"
	"github.com/desparches/backend/internal/infrastructure/logger"
	"github.com/desparches/backend/internal/infrastructure/recordstore"
	"github.com/desparches/backend/internal/repository"
)

func staticEvents(now time.Time) []entity.Event {
	return []entity.Event{
		{
			ID:          "evt001",
			Title:       "Festival de Jazz",
			Description: "Una noche de jazz en vivo",
			Date:        now.Add(24 * time.Hour),
			Category:    "musica",
			Location:    entity.Location{Address: "Parque de la 93, Bogotá"},
		},
		{
			ID:          "evt002",
			Title:       "Feria Gastronómica",
			Description: "Cocina colombiana",
			Date:        now.Add(48 * time.Hour),
			Category:    "gastronomia",
			Location:    entity.Location{Address: "Usaquén, Bogotá"},
		},
	}
}

func newEventRepo() *repository.EventRepository {
	return repository.NewEventRepository(
		recordstore.NewMemoryStore(),
		logger.NewNopLogger(),
		idgen.NewGenerator(),
		newStepClock(),
		staticEvents,
	)
}

func TestListEventsSeedsOnFirstAccess(t *testing.T) {
	repo := newEventRepo()
	ctx := context.Background()

	events := repo.ListEvents(ctx)
	require.Len(t, events, 2)

	// second access reads the persisted catalog, not a fresh seed
	assert.Equal(t, events, repo.ListEvents(ctx))
}

func TestAddEvent(t *testing.T) {
	repo := newEventRepo()
	ctx := context.Background()

	created, err := repo.AddEvent(ctx, entity.Event{Title: "Noche de Salsa", Category: "musica"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	events := repo.ListEvents(ctx)
	require.Len(t, events, 3)
	assert.Equal(t, created.ID, events[2].ID)
}

func TestFilterEventsByCategory(t *testing.T) {
	events := staticEvents(time.Now())

	out := repository.FilterEvents(events, repository.EventFilter{Category: "musica"})
	require.Len(t, out, 1)
	assert.Equal(t, "evt001", out[0].ID)
}

func TestFilterEventsByDay(t *testing.T) {
	now := time.Date(2026, 8, 29, 23, 30, 0, 0, time.UTC)
	events := staticEvents(now)

	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	out := repository.FilterEvents(events, repository.EventFilter{Day: &day})
	require.Len(t, out, 1)
	assert.Equal(t, "evt001", out[0].ID)
}

func TestFilterEventsSavedOnly(t *testing.T) {
	events := staticEvents(time.Now())

	out := repository.FilterEvents(events, repository.EventFilter{SavedOnly: true, Saved: []string{"evt002"}})
	require.Len(t, out, 1)
	assert.Equal(t, "evt002", out[0].ID)

	out = repository.FilterEvents(events, repository.EventFilter{SavedOnly: true})
	assert.Empty(t, out)
}

func TestFilterEventsSearch(t *testing.T) {
	events := staticEvents(time.Now())

	// case-insensitive, matches across title, description and address
	out := repository.FilterEvents(events, repository.EventFilter{Search: "JAZZ"})
	require.Len(t, out, 1)
	assert.Equal(t, "evt001", out[0].ID)

	out = repository.FilterEvents(events, repository.EventFilter{Search: "usaquén"})
	require.Len(t, out, 1)
	assert.Equal(t, "evt002", out[0].ID)

	assert.Empty(t, repository.FilterEvents(events, repository.EventFilter{Search: "teatro"}))
}

func TestFilterEventsCombined(t *testing.T) {
	events := staticEvents(time.Now())

	out := repository.FilterEvents(events, repository.EventFilter{Category: "musica", Search: "gastronomia"})
	assert.Empty(t, out)
}
