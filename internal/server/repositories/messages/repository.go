package messages

import (
	"context"
	"time"

	"github.com/avdeluna/whispernote/internal/server/models"
)

// Repository persists temporary messages. Implementations return
// common.ErrorNotFound when a row is absent.
type Repository interface {
	Create(ctx context.Context, m *models.TemporaryMessage) error
	GetByID(ctx context.Context, id string) (*models.TemporaryMessage, error)
	Delete(ctx context.Context, id string) error

	// DeleteExpired removes every row whose expiry is set and not after the
	// given instant, and returns the number of rows deleted. Null-expiry
	// rows are never touched.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
