package contract

import "time"

// IClock supplies the current instant. Injected so ordering and counter
// invariants can be exercised with a deterministic clock in tests.
type IClock interface {
	Now() time.Time
}
