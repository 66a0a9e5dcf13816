package client

import (
	"context"
	"database/sql"
	"log"

	"github.com/pressly/goose/v3"

	"github.com/avdeluna/whispernote/internal/client/migrations"
	"github.com/avdeluna/whispernote/internal/client/repositories/unlocks"
)

// Repositories bundles the local cache repositories.
type Repositories struct {
	Unlocks unlocks.Repository
}

func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Unlocks: unlocks.NewSQLiteRepository(db),
	}
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	// Set the database dialect
	if err := goose.SetDialect("sqlite3"); err != nil {
		log.Fatal("failed to set goose dialect:", err)
	}

	return goose.UpContext(ctx, db, ".")
}

func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	return db, nil
}
