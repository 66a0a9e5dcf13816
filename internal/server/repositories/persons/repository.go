package persons

import (
	"context"

	"github.com/avdeluna/whispernote/internal/server/models"
)

// Repository reads and caches known-person records. Records are seeded
// out-of-band; the only write this layer performs is the one-time cache fill.
type Repository interface {
	// FindByAlias returns the person whose alias set contains name (exact,
	// case-sensitive membership), or common.ErrorNotFound.
	FindByAlias(ctx context.Context, name string) (*models.KnownPerson, error)

	// CacheAIMessage stores text on the record if no message is cached yet.
	// Returns false when another caller already filled the cache; the write
	// is first-write-wins and the loser keeps its own text.
	CacheAIMessage(ctx context.Context, id int64, text string) (bool, error)
}
