// Package messages provides the PostgreSQL-backed repository for temporary
// message persistence.
package messages

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avdeluna/whispernote/internal/common"
	"github.com/avdeluna/whispernote/internal/dbx"
	"github.com/avdeluna/whispernote/internal/server/models"
)

// PostgresRepository implements message storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new temporary message row.
func (r *PostgresRepository) Create(ctx context.Context, m *models.TemporaryMessage) error {
	query := `
		INSERT INTO temporary_messages
			(id, sender_name, recipient_name, salutation, message, closing, passphrase, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8);
	`
	res, err := r.db.ExecContext(ctx, query,
		m.ID, m.SenderName, m.RecipientName, m.Salutation, m.Message, m.Closing,
		m.PassphraseHash, m.ExpiresAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n != 1 {
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
	return nil
}

// GetByID returns the message with the given id, or common.ErrorNotFound.
// Expiry is not evaluated here; that is the service's job.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.TemporaryMessage, error) {
	query := `
		SELECT id, sender_name, recipient_name, salutation, message, closing,
			COALESCE(passphrase, ''), expires_at, created_at
		FROM temporary_messages WHERE id = $1;
	`
	var m models.TemporaryMessage
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.SenderName, &m.RecipientName, &m.Salutation, &m.Message, &m.Closing,
		&m.PassphraseHash, &m.ExpiresAt, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &m, nil
}

// Delete removes the row with the given id. Deleting an already-removed row
// is not an error; lazy expiry and the sweep may race over the same id.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM temporary_messages WHERE id = $1;`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// DeleteExpired removes all rows with a set expiry at or before now.
func (r *PostgresRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM temporary_messages WHERE expires_at IS NOT NULL AND expires_at <= $1;`
	res, err := r.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}
