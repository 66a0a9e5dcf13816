package repomanager

import (
	"context"
	"database/sql"

	"github.com/avdeluna/whispernote/internal/dbx"
	"github.com/avdeluna/whispernote/internal/server/repositories/messages"
	"github.com/avdeluna/whispernote/internal/server/repositories/persons"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Messages(db dbx.DBTX) messages.Repository
	Persons(db dbx.DBTX) persons.Repository
}
