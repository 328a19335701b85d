// Package server exposes the worksheet, lesson plan and study material
// generators over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/abhisek/sahayak/internal/platform/logger"
)

// Server wraps the HTTP listener with graceful shutdown.
type Server struct {
	cfg  Config
	log  *logger.Logger
	http *http.Server
}

// New builds a Server for the given config and handlers.
func New(cfg Config, h *Handlers, log *logger.Logger) *Server {
	if log == nil {
		log = logger.NewNop()
	}
	return &Server{
		cfg: cfg,
		log: log,
		http: &http.Server{
			Addr:    cfg.Addr,
			Handler: NewRouter(cfg, h, log),
		},
	}
}

// Run serves until ctx is canceled, then drains in-flight requests within
// the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", "addr", s.cfg.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
