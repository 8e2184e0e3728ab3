package identity

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces unique opaque identifiers for newly created records.
// Implementations must be safe for concurrent use.
type Generator interface {
	NewID() string
}

type uuidGenerator struct{}

// NewGenerator returns the production Generator. IDs are random 128-bit
// UUIDs, so collision probability is negligible across the process lifetime
// and across concurrent callers.
func NewGenerator() Generator {
	return uuidGenerator{}
}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceGenerator issues deterministic ids ("id-1", "id-2", ...) for tests
// that need stable identifiers.
type SequenceGenerator struct {
	n atomic.Uint64
}

func (g *SequenceGenerator) NewID() string {
	return fmt.Sprintf("id-%d", g.n.Add(1))
}
