// Package server exposes the addon over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"dynamic/catalogs/internal/config"
	"dynamic/catalogs/internal/domain"
	"dynamic/catalogs/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	log "github.com/sirupsen/logrus"
)

type CatalogService interface {
	Manifest() domain.Manifest
	Catalog(ctx context.Context, path string) (domain.CatalogPage, error)
	Genres(ctx context.Context, contentType domain.ContentType) ([]domain.Genre, error)
	ExtractListID(ctx context.Context, listURL string) (string, error)
	ListCatalog(ctx context.Context, listURL string, contentType domain.ContentType) (string, error)
}

type Server struct {
	httpServer *http.Server
}

func New(cfg config.ServerConfig, svc CatalogService, m *metrics.Metrics) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:           NewRouter(svc, m, cfg.DashboardDir),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func NewRouter(svc CatalogService, m *metrics.Metrics, dashboardDir string) http.Handler {
	h := &handler{svc: svc, dashboardDir: dashboardDir}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(logRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", h.health)
	if m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	r.Get("/manifest.json", h.manifest)
	r.Get("/trakt-genres", h.genres)
	r.Get("/trakt/extract-list-id", h.extractListID)
	r.Get("/trakt/list-catalog", h.listCatalog)
	r.Get("/configure", h.dashboard)
	r.Get("/configure/*", h.dashboard)

	r.Route("/{config}", func(r chi.Router) {
		r.Get("/manifest.json", h.manifest)
		r.Get("/catalog/{type}/*", h.catalog)
		r.Get("/configure", h.dashboard)
		r.Get("/configure/*", h.dashboard)
	})

	return r
}

// Start blocks until the server stops. A graceful shutdown is not an error.
func (s *Server) Start() error {
	log.Infof("🚀 Listening on http://%s", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Infof("🛑 Shutting down http server")
	return s.httpServer.Shutdown(ctx)
}
