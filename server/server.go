// Package server exposes the travel backend over HTTP: destination CRUD and
// search, the chat endpoint, analytics, and health probes.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/tripmitra/aria-backend/assistant/contract"
	logx "github.com/tripmitra/aria-backend/pkg/logger"
	"github.com/tripmitra/aria-backend/travel"
)

type Config struct {
	Addr            string        `envconfig:"ADDR" split_words:"true" default:":8000"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" split_words:"true" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" split_words:"true" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" split_words:"true" default:"10s"`
}

// ChatService handles one chat exchange.
type ChatService interface {
	HandleMessage(ctx context.Context, req contract.ChatRequest) (contract.ChatReply, error)
}

// Server is the HTTP request surface. Purely structural glue: all semantics
// live in the store and the assistant service.
type Server struct {
	store        travel.Store
	chat         ChatService
	aiConfigured bool
	log          zerolog.Logger
	http         *http.Server
	shutdownWait time.Duration
	startedAt    time.Time
}

func New(cfg Config, store travel.Store, chat ChatService, aiConfigured bool) (*Server, error) {
	if store == nil {
		return nil, errors.New("server: destination store is required")
	}
	if chat == nil {
		return nil, errors.New("server: chat service is required")
	}

	s := &Server{
		store:        store,
		chat:         chat,
		aiConfigured: aiConfigured,
		log:          logx.With("server"),
		shutdownWait: cfg.ShutdownTimeout,
		startedAt:    time.Now().UTC(),
	}
	s.http = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.middleware(s.routes()),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s, nil
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/system-status", s.handleSystemStatus)

	mux.HandleFunc("GET /api/destinations", s.handleListDestinations)
	mux.HandleFunc("POST /api/destinations", s.handleCreateDestination)
	mux.HandleFunc("GET /api/destinations/{id}", s.handleGetDestination)
	mux.HandleFunc("PUT /api/destinations/{id}", s.handleUpdateDestination)
	mux.HandleFunc("DELETE /api/destinations/{id}", s.handleDeleteDestination)
	mux.HandleFunc("GET /api/search/destinations", s.handleSearchDestinations)

	mux.HandleFunc("POST /api/chat", s.handleChat)

	mux.HandleFunc("GET /api/analytics/popular-destinations", s.handlePopularDestinations)
	mux.HandleFunc("GET /api/analytics/budget-ranges", s.handleBudgetRanges)
	mux.HandleFunc("GET /api/categories", s.handleCategories)

	return mux
}

func (s *Server) middleware(next http.Handler) http.Handler {
	h := hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	})(next)
	return hlog.NewHandler(s.log)(h)
}

// Handler exposes the routed handler, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.http.Addr).Msg("http server listening")
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownWait)
	defer cancel()
	s.log.Info().Msg("shutting down http server")
	return s.http.Shutdown(shutdownCtx)
}
