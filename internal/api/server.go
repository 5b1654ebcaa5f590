// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api composes the kiosk HTTP surface: probes, the magazine API and the
optional media route, behind one middleware chain.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/kiosk/internal/core/magazine"
	"github.com/taibuivan/kiosk/internal/media"
	"github.com/taibuivan/kiosk/internal/platform/config"
	"github.com/taibuivan/kiosk/internal/platform/constants"
	"github.com/taibuivan/kiosk/internal/platform/middleware"
)

// Server owns the router and the listening [http.Server].
type Server struct {
	httpServer *http.Server
	router     chi.Router
	log        *slog.Logger
}

// Handlers are the route sets mounted by [NewServer].
type Handlers struct {
	// Liveness answers /health.
	Liveness http.HandlerFunc

	// Readiness answers /ready.
	Readiness http.HandlerFunc

	Magazine *magazine.Handler

	// Media is nil when image re-hosting is disabled; /media then 404s.
	Media *media.Handler
}

// NewServer builds the router. The context bounds the rate limiter janitors.
//
// Deadlines are per route group because a generation legitimately runs for
// minutes while everything else should finish within seconds. The HTTP
// server's WriteTimeout is sized for the longest of them.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	router := chi.NewRouter()

	// Outermost first: every later rejection is traced, logged and CORS-tagged.
	router.Use(
		middleware.RequestID(),
		middleware.StructuredLogger(log),
		middleware.PanicRecovery(log),
		middleware.CORS(cfg),
		middleware.RateLimit(context),
		middleware.Authenticate(verifier),
		chimw.CleanPath,
	)

	mountRoutes(router, h)

	return &Server{
		router: router,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           router,
			ReadTimeout:       constants.DefaultReadTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
		},
	}
}

func mountRoutes(router chi.Router, h Handlers) {
	router.Group(func(probe chi.Router) {
		probe.Use(chimw.Timeout(constants.GlobalRequestTimeout))
		probe.Get("/health", h.Liveness)
		probe.Get("/ready", h.Readiness)
	})

	if h.Media != nil {
		router.With(chimw.Timeout(constants.GlobalRequestTimeout)).Mount("/media", h.Media.Routes())
	}

	// The magazine handler sets its own deadlines per route.
	router.Route("/api/v1", func(api chi.Router) {
		api.Mount("/magazines", h.Magazine.Routes())
	})
}

// Handler exposes the router to tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks until the server stops; after Shutdown it returns
// [http.ErrServerClosed].
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests for at most timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	drainCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(drainCtx)
}
