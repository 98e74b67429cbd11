package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nauticalab/epiceditor-config/internal/editor"
	"github.com/nauticalab/epiceditor-config/internal/logger"
	"github.com/nauticalab/epiceditor-config/pkg/schema"
)

// Server represents the HTTP API server
type Server struct {
	router  *chi.Mux
	handler *Handler
	logger  *logger.Logger
	addr    string
}

// BuildInfo describes the running binary
type BuildInfo struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string
	// Document is the merged editor configuration to serve
	Document schema.Document
	// Options is the typed view of Document
	Options *editor.Options
	Logger  *logger.Logger
	Build   BuildInfo
}

// NewServer creates a new API server with the given configuration
func NewServer(config ServerConfig) (*Server, error) {
	if config.Document == nil || config.Options == nil {
		return nil, errors.New("api: server needs a merged configuration")
	}
	if config.Addr == "" {
		config.Addr = ":8080"
	}
	if config.Logger == nil {
		config.Logger = logger.Nop()
	}

	handler := NewHandler(config.Document, config.Options, config.Build)

	router := chi.NewRouter()
	setupMiddleware(router, config.Logger)
	setupRoutes(router, handler)

	return &Server{
		router:  router,
		handler: handler,
		logger:  config.Logger,
		addr:    config.Addr,
	}, nil
}

// Handler returns the router, for tests and for embedding in another server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupMiddleware configures the middleware chain
func setupMiddleware(router *chi.Mux, l *logger.Logger) {
	router.Use(withTraceID(l))
	router.Use(withLogging)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))
}

// setupRoutes configures the API routes
func setupRoutes(router *chi.Mux, handler *Handler) {
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondNotFound(w, r, fmt.Sprintf("No route for %s", r.URL.Path))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, fmt.Sprintf("Method %s not allowed", r.Method))
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", handler.Health)
		r.Get("/version", handler.Version)

		r.Route("/editor", func(r chi.Router) {
			r.Get("/config", handler.Config)
			r.Get("/config/{path}", handler.ConfigValue)
			r.Get("/options", handler.Options)
			r.Get("/schema", handler.Schema)
			r.Get("/defaults", handler.Defaults)
		})
	})
}

// StartWithContext starts the HTTP server and shuts it down gracefully once
// ctx is cancelled.
func (s *Server) StartWithContext(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is StartWithContext on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	server := &http.Server{
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info().Str("addr", ln.Addr().String()).Msg("server listening")
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error().Err(err).Msg("server shutdown error")
			return err
		}

		s.logger.Info().Msg("server stopped gracefully")
		return nil

	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}
}
