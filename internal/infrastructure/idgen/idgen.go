package idgen

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/desparches/backend/internal/domain/contract"
)

// Generator synthesizes prefixed opaque ids ("evt_<uuid>", "thr_<uuid>", ...).
type Generator struct{}

// NewGenerator creates a new id generator.
func NewGenerator() contract.IIDGenerator {
	return &Generator{}
}

var _ contract.IIDGenerator = (*Generator)(nil)

// NewID returns a fresh id carrying the collection prefix.
func (g *Generator) NewID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.New().String())
}
