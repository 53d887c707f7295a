package contract

import "context"

// IBookmarkRepository is the persisted set of saved event ids. The set is
// shared by whoever uses the current profile; it is not scoped to a user.
type IBookmarkRepository interface {
	// IsSaved reports membership of the event id in the saved set.
	IsSaved(ctx context.Context, eventID string) bool
	// Toggle flips membership. Toggling twice restores the original state.
	Toggle(ctx context.Context, eventID string) error
	// List returns the saved event ids in insertion order.
	List(ctx context.Context) []string
}
