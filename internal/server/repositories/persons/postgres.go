// Package persons provides the PostgreSQL-backed repository for pre-seeded
// known-person records and their generated-message cache.
package persons

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avdeluna/whispernote/internal/common"
	"github.com/avdeluna/whispernote/internal/dbx"
	"github.com/avdeluna/whispernote/internal/server/models"
)

// PostgresRepository implements person storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// FindByAlias looks a person up by alias-set membership. The alias array
// itself is not read back; membership is evaluated in SQL so the Go side
// never needs to decode the array column.
func (r *PostgresRepository) FindByAlias(ctx context.Context, name string) (*models.KnownPerson, error) {
	query := `
		SELECT id, prompt_for_this_person, COALESCE(ai_generated, ''), created_at
		FROM selected_persons WHERE $1 = ANY(nickname_name)
		ORDER BY id LIMIT 1;
	`
	var p models.KnownPerson
	err := r.db.QueryRowContext(ctx, query, name).Scan(&p.ID, &p.Prompt, &p.AIMessage, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &p, nil
}

// CacheAIMessage fills the generated-message cache if it is still empty.
func (r *PostgresRepository) CacheAIMessage(ctx context.Context, id int64, text string) (bool, error) {
	query := `UPDATE selected_persons SET ai_generated = $1 WHERE id = $2 AND ai_generated IS NULL;`
	res, err := r.db.ExecContext(ctx, query, text, id)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n == 1, nil
}
