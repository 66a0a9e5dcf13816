// Package unlocks persists plaintexts of messages the user has unlocked, so
// a locked message does not require re-entering the passphrase on every read.
package unlocks

import (
	"context"

	"github.com/avdeluna/whispernote/internal/client/models"
)

// Repository stores unlocked message plaintexts in the local cache.
type Repository interface {
	// Save inserts or refreshes the cached plaintext for a message.
	Save(ctx context.Context, m *models.UnlockedMessage) error

	// GetByMessageID returns the cached plaintext, or common.ErrorNotFound.
	GetByMessageID(ctx context.Context, messageID string) (*models.UnlockedMessage, error)

	// DeleteByMessageID removes a cached plaintext. Deleting an absent id
	// is not an error.
	DeleteByMessageID(ctx context.Context, messageID string) error
}
