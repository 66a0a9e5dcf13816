// Package server initializes and runs the application server: config,
// database, migrations, services, and the HTTP endpoint, with graceful
// shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sethvargo/go-retry"

	"github.com/avdeluna/whispernote/internal/logging"
	"github.com/avdeluna/whispernote/internal/profanity"
	"github.com/avdeluna/whispernote/internal/server/config"
	"github.com/avdeluna/whispernote/internal/server/generator"
	"github.com/avdeluna/whispernote/internal/server/httpapi"
	"github.com/avdeluna/whispernote/internal/server/repositories/repomanager"
	"github.com/avdeluna/whispernote/internal/server/services"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	httpSrv *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := openDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	filter, err := profanity.New()
	if err != nil {
		return nil, fmt.Errorf("content filter init error: %w", err)
	}

	gen := generator.Disabled()
	if cfg.GeminiAPIKey != "" {
		gen, err = generator.NewGeminiGenerator(ctx, generator.GeminiConfig{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			Timeout: cfg.GenerationTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("generator init error: %w", err)
		}
	} else {
		logger.Warn(ctx, "no generator API key configured, lookup generation is disabled")
	}

	ms := services.NewMessageService(db, rm, filter, cfg, logger)
	ls := services.NewLookupService(db, rm, gen, logger)

	h := httpapi.NewHandler(ms, ls, logger)
	srv := httpapi.NewServer(cfg.EndpointAddr, h, logger)

	return &App{config: cfg, logger: logger, db: db, httpSrv: srv}, nil
}

// openDB opens the connection pool and waits for the database to accept
// pings, retrying with a fibonacci backoff so the server survives a
// database that is still starting up.
func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	backoff := retry.WithMaxRetries(5, retry.NewFibonacci(1*time.Second))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := db.PingContext(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.httpSrv.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
}
