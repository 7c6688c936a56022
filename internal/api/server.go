package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/gapscan/gapscan/internal/cache"
	"github.com/gapscan/gapscan/internal/catalog"
	"github.com/gapscan/gapscan/internal/config"
	"github.com/gapscan/gapscan/internal/report"
	"github.com/gapscan/gapscan/internal/store"
)

// Server exposes the analysis engine over HTTP. The store and cache
// are optional; without them the server is fully stateless.
type Server struct {
	cfg      *config.Config
	router   *chi.Mux
	http     *http.Server
	logger   *slog.Logger
	validate *validator.Validate

	catalog *catalog.Catalog
	engine  *report.Engine

	store *store.Store
	cache *cache.Cache
}

type ServerOption func(*Server)

func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

func NewServer(cfg *config.Config, opts ...ServerOption) (*Server, error) {
	s := &Server{
		cfg:      cfg,
		router:   chi.NewRouter(),
		logger:   slog.Default(),
		validate: validator.New(),
	}

	for _, opt := range opts {
		opt(s)
	}

	cat := catalog.Default()
	if cfg.Engine.FrameworkOverlay != "" {
		merged, err := cat.LoadOverlay(cfg.Engine.FrameworkOverlay)
		if err != nil {
			return nil, fmt.Errorf("loading framework overlay: %w", err)
		}
		cat = merged
		s.logger.Info("loaded framework overlay", "path", cfg.Engine.FrameworkOverlay)
	}
	s.catalog = cat
	s.engine = report.NewEngine(cat, s.logger)

	if cfg.Database.Enabled {
		st, err := store.New(store.Config{
			DSN:          cfg.Database.DSN(),
			MaxOpenConns: cfg.Database.MaxOpenConns,
			MaxIdleConns: cfg.Database.MaxIdleConns,
		})
		if err != nil {
			return nil, fmt.Errorf("initializing store: %w", err)
		}
		s.store = st
	}

	if cfg.Redis.Enabled {
		c, err := cache.New(cache.Config{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TTL:      cfg.Redis.TTL,
		})
		if err != nil {
			return nil, fmt.Errorf("initializing cache: %w", err)
		}
		s.cache = c
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.http = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s, nil
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))
	s.router.Use(s.corsMiddleware())
}

func (s *Server) corsMiddleware() func(http.Handler) http.Handler {
	allowOrigin := s.cfg.Server.CORSAllowOrigin
	if allowOrigin == "" {
		allowOrigin = "*"
		s.logger.Warn("CORS Allow-Origin set to '*' - configure server.cors_allow_origin in production")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.healthCheck)
	s.router.Get("/ready", s.readyCheck)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/frameworks", s.listFrameworks)
		r.Get("/industries", s.listIndustries)

		r.Post("/classify", s.classify)
		r.Post("/benchmark", s.benchmark)
		r.Post("/scan", s.scan)
		r.Post("/analyze", s.analyze)

		r.Route("/reports", func(r chi.Router) {
			r.Get("/", s.listReports)
			r.Get("/{reportID}", s.getReport)
			r.Get("/{reportID}/export", s.exportReport)
		})
	})
}

func (s *Server) Run(ctx context.Context) error {
	if s.store != nil {
		if err := s.store.Migrate(ctx); err != nil {
			return fmt.Errorf("migrating report store: %w", err)
		}
	}

	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("starting server", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if s.store != nil {
			_ = s.store.Close()
		}
		if s.cache != nil {
			_ = s.cache.Close()
		}
		return nil
	}
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *apiError   `json:"error,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	})
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiResponse{
		Success: false,
		Error: &apiError{
			Code:    code,
			Message: message,
		},
	})
}

func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

func (s *Server) readyCheck(w http.ResponseWriter, r *http.Request) {
	if s.store != nil {
		if err := s.store.Ping(r.Context()); err != nil {
			respondError(w, http.StatusServiceUnavailable, "db_unavailable", "Database not available")
			return
		}
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}
