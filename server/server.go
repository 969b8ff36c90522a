// Package server serves the web dashboard and its JSON API.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/zalepa/ourvoice/catalog"
	"github.com/zalepa/ourvoice/config"
	"github.com/zalepa/ourvoice/metrics"
)

const requestTimeout = 30 * time.Second

// Server represents the HTTP dashboard server
type Server struct {
	cfg       *config.Config
	router    *chi.Mux
	catalog   *catalog.Catalog
	generator *metrics.Generator
	locator   *catalog.Locator
	snapshots *SnapshotStore
}

// New creates a new dashboard server
func New(cfg *config.Config, cat *catalog.Catalog, gen *metrics.Generator, loc *catalog.Locator) *Server {
	s := &Server{
		cfg:       cfg,
		catalog:   cat,
		generator: gen,
		locator:   loc,
		snapshots: NewSnapshotStore(cfg.Dashboard.SnapshotTTL),
	}
	s.setupRouter()
	return s
}

// Router returns the configured router
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRouter() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.Server.CORSOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Accept-Language", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/", s.handleIndex)
	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/labels", s.handleLabels)
		r.Get("/locate", s.handleLocate)
		r.Get("/dashboard", s.handleDashboard)

		r.Route("/regions", func(r chi.Router) {
			r.Get("/", s.handleListRegions)
			r.Route("/{regionID}", func(r chi.Router) {
				r.Get("/", s.handleGetRegion)
				r.Get("/districts/{districtID}", s.handleGetDistrict)
				r.Get("/districts/{districtID}/dashboard", s.handleDistrictDashboard)
			})
		})

		r.Route("/snapshots/{snapshotID}", func(r chi.Router) {
			r.Get("/", s.handleGetSnapshot)
			r.Get("/trend.svg", s.handleTrendSVG)
			r.Get("/compare/{kind}.svg", s.handleCompareSVG)
		})
	})

	s.router = r
}

// Run serves until ctx is cancelled and then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         s.cfg.Addr(),
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: requestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// loggingMiddleware logs HTTP requests using slog
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			slog.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
				"remote_addr", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
