package unlocks

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeluna/whispernote/internal/client/models"
	"github.com/avdeluna/whispernote/internal/common"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE unlocked_messages (
  message_id TEXT PRIMARY KEY,
  message TEXT NOT NULL,
  unlock_token TEXT NOT NULL,
  unlocked_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`)
	require.NoError(t, err)

	return db
}

func TestSave_InsertAndUpdate(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	m1 := &models.UnlockedMessage{
		MessageID:   "m1",
		Message:     "hello",
		UnlockToken: "tok1",
		UnlockedAt:  time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, r.Save(ctx, m1))

	got, err := r.GetByMessageID(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Message)
	assert.Equal(t, "tok1", got.UnlockToken)

	// upsert with the same id
	m1b := &models.UnlockedMessage{
		MessageID:   "m1",
		Message:     "hello again",
		UnlockToken: "tok2",
		UnlockedAt:  time.Date(2026, 2, 14, 13, 0, 0, 0, time.UTC),
	}
	require.NoError(t, r.Save(ctx, m1b))

	got, err = r.GetByMessageID(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "hello again", got.Message)
	assert.Equal(t, "tok2", got.UnlockToken)
}

func TestGetByMessageID_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, err := r.GetByMessageID(context.Background(), "absent")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDeleteByMessageID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, &models.UnlockedMessage{
		MessageID: "m1", Message: "hello", UnlockToken: "tok", UnlockedAt: time.Now(),
	}))
	require.NoError(t, r.DeleteByMessageID(ctx, "m1"))

	_, err := r.GetByMessageID(ctx, "m1")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	// deleting an absent id is fine
	assert.NoError(t, r.DeleteByMessageID(ctx, "m1"))
}
