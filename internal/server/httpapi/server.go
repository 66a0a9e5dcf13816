package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/avdeluna/whispernote/internal/logging"
)

// Server wraps http.Server with route registration and graceful shutdown.
type Server struct {
	address string
	handler *Handler
	logger  logging.Logger
}

func NewServer(address string, h *Handler, l logging.Logger) *Server {
	return &Server{
		address: address,
		handler: h,
		logger:  l.With("module", "http_server"),
	}
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", s.handler.Ping)
	mux.HandleFunc("POST /api/messages", s.handler.CreateMessage)
	mux.HandleFunc("GET /api/messages/{id}", s.handler.GetMessage)
	mux.HandleFunc("POST /api/messages/{id}/verify", s.handler.VerifyMessage)
	mux.HandleFunc("GET /api/lookup/{name}", s.handler.Lookup)
	mux.HandleFunc("GET /api/lookup/{name}/exists", s.handler.LookupExists)
	mux.HandleFunc("GET /api/cleanup", s.handler.Cleanup)
	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
