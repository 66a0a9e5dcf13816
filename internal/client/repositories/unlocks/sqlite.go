package unlocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avdeluna/whispernote/internal/client/models"
	"github.com/avdeluna/whispernote/internal/common"
	"github.com/avdeluna/whispernote/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Save upserts the cached plaintext by message id.
func (r *SQLiteRepository) Save(ctx context.Context, m *models.UnlockedMessage) error {
	query := `INSERT INTO unlocked_messages (message_id, message, unlock_token, unlocked_at)
			values (?, ?, ?, ?)
			ON CONFLICT(message_id) DO UPDATE SET message = excluded.message,
				unlock_token = excluded.unlock_token,
				unlocked_at = excluded.unlocked_at
	`
	_, err := r.db.ExecContext(ctx, query, m.MessageID, m.Message, m.UnlockToken, m.UnlockedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert unlocked message: %w", err)
	}
	return nil
}

// GetByMessageID returns the cached plaintext for a message id.
func (r *SQLiteRepository) GetByMessageID(ctx context.Context, messageID string) (*models.UnlockedMessage, error) {
	query := `select message_id, message, unlock_token, unlocked_at from unlocked_messages where message_id=?`

	var m models.UnlockedMessage
	err := r.db.QueryRowContext(ctx, query, messageID).
		Scan(&m.MessageID, &m.Message, &m.UnlockToken, &m.UnlockedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to select unlocked message: %w", err)
	}
	return &m, nil
}

// DeleteByMessageID removes the cached plaintext.
func (r *SQLiteRepository) DeleteByMessageID(ctx context.Context, messageID string) error {
	query := `delete from unlocked_messages where message_id=?`
	if _, err := r.db.ExecContext(ctx, query, messageID); err != nil {
		return fmt.Errorf("failed to delete unlocked message: %w", err)
	}
	return nil
}
