package clock

import (
	"time"

	"github.com/desparches/backend/internal/domain/contract"
)

// UTCClock reports the current instant in UTC, so persisted timestamps stay
// sortable regardless of the host timezone.
type UTCClock struct{}

func New() contract.IClock {
	return UTCClock{}
}

var _ contract.IClock = UTCClock{}

func (UTCClock) Now() time.Time {
	return time.Now().UTC()
}
