// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/newsdeskhq/planning-api/internal/core/contact"
	"github.com/newsdeskhq/planning-api/internal/core/location"
	"github.com/newsdeskhq/planning-api/internal/core/profile"
	"github.com/newsdeskhq/planning-api/internal/planning/assignment"
	"github.com/newsdeskhq/planning-api/internal/planning/event"
	"github.com/newsdeskhq/planning-api/internal/planning/item"
	"github.com/newsdeskhq/planning-api/internal/platform/config"
	"github.com/newsdeskhq/planning-api/internal/platform/constants"
	"github.com/newsdeskhq/planning-api/internal/platform/middleware"
	"github.com/newsdeskhq/planning-api/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles authentication and staff provisioning routes.
	Auth *auth.Handler

	// Event handles the planning calendar (events, schedules, ICS feed).
	Event *event.Handler

	// Item handles planning items and their coverages.
	Item *item.Handler

	// Assignment handles coverage hand-offs to journalists.
	Assignment *assignment.Handler

	// Profile manages content profiles (editor and multilingual settings).
	Profile *profile.Handler

	// Contact manages media contacts.
	Contact *contact.Handler

	// Location manages event locations.
	Location *location.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix. Everything
	// except /auth requires a signed-in staff member.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())

		api.Group(func(protected chi.Router) {
			protected.Use(middleware.RequireAuth)
			protected.Mount("/events", h.Event.Routes())
			protected.Mount("/planning", h.Item.Routes())
			protected.Mount("/assignments", h.Assignment.Routes())
			protected.Mount("/profiles", h.Profile.Routes())
			protected.Mount("/contacts", h.Contact.Routes())
			protected.Mount("/locations", h.Location.Routes())
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
