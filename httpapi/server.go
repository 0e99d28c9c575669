package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/talentsift/talentsift/recommend"
)

// Server exposes the recommendation engine over HTTP. It can start
// before the engine is ready: requests are answered with 503 until
// SetEngine is called, so health checks see the loading state instead
// of connection failures.
type Server struct {
	engine  atomic.Pointer[recommend.Engine]
	addr    string
	logger  *slog.Logger
	httpSrv *http.Server
}

// NewServer creates a server bound to addr. A nil logger falls back to
// slog.Default().
func NewServer(addr string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		addr:   addr,
		logger: logger.With("component", "httpapi"),
	}
}

// SetEngine installs the engine and flips the server to ready. Safe to
// call while requests are in flight.
func (s *Server) SetEngine(engine *recommend.Engine) {
	s.engine.Store(engine)
}

// Router builds the HTTP routing table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Post("/recommend", s.handleRecommend)

	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.httpSrv = &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", s.addr)
		errCh <- s.httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case err := <-errCh:
		return err
	}
}
