// Package cli implements the interactive Whisper Note command-line client:
// a small REPL for creating, opening, and looking up messages, with a local
// SQLite cache of unlocked plaintexts.
package cli

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/avdeluna/whispernote/internal/client/client"
	"github.com/avdeluna/whispernote/internal/client/config"
	"github.com/avdeluna/whispernote/internal/client/models"
	"github.com/avdeluna/whispernote/internal/client/repositories/unlocks"

	_ "modernc.org/sqlite"
)

// apiService is the backend surface the CLI commands rely on. The real
// implementation is client.APIClient; tests provide fakes.
type apiService interface {
	Ping(ctx context.Context) error
	CreateMessage(ctx context.Context, draft *models.MessageDraft) (string, error)
	GetMessage(ctx context.Context, id string, unlockToken string) (*models.MessageView, error)
	VerifyMessage(ctx context.Context, id string, passphrase string) (*models.VerifyResult, error)
	LookupMessage(ctx context.Context, name string) (*models.Resolution, error)
	CheckNameExists(ctx context.Context, name string) (bool, error)
	Sweep(ctx context.Context, secret string) (int64, error)
}

type App struct {
	config  *config.Config
	api     apiService
	unlocks unlocks.Repository
	reader  *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := client.InitDatabase(ctx, c.CacheDBPath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	repos := client.NewRepositories(db)
	api := client.NewAPIClient(c.ServerEndpointAddr, c.RequestTimeout)

	return &App{config: c, api: api, unlocks: repos.Unlocks, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, scanner)
}
