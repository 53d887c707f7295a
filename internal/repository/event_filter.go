package repository

import (
	"strings"
	"time"

	"github.com/desparches/backend/internal/domain/entity"
)

// EventFilter narrows an event list. Zero-valued fields do not filter.
type EventFilter struct {
	// Category matches Event.Category exactly.
	Category string
	// Day keeps events on the same calendar day (UTC).
	Day *time.Time
	// SavedOnly keeps events whose id appears in Saved.
	SavedOnly bool
	Saved     []string
	// Search is a case-insensitive substring match across title, description
	// and venue address.
	Search string
}

// FilterEvents is a pure function over an event list: no persistence, no
// side effects. It may run on the repository's output or on any other
// slice of events.
func FilterEvents(events []entity.Event, f EventFilter) []entity.Event {
	saved := make(map[string]struct{}, len(f.Saved))
	for _, id := range f.Saved {
		saved[id] = struct{}{}
	}
	needle := strings.ToLower(f.Search)

	out := make([]entity.Event, 0, len(events))
	for _, e := range events {
		if f.Category != "" && e.Category != f.Category {
			continue
		}
		if f.Day != nil && !sameDay(e.Date, *f.Day) {
			continue
		}
		if f.SavedOnly {
			if _, ok := saved[e.ID]; !ok {
				continue
			}
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(e.Title), needle) &&
			!strings.Contains(strings.ToLower(e.Description), needle) &&
			!strings.Contains(strings.ToLower(e.Location.Address), needle) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
