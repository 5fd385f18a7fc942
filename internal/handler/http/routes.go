// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-user-gate/internal/metrics"
	"github.com/MKhiriev/go-user-gate/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Every stage of the pipeline either calls the next
// one or writes a terminal response:
//
//	RealIP → trace id → access log → recover → metrics → timeout
//	/api: gzip → identify → gate → [requireAuth → requireRole] → handler
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.RealIP,
		h.withTraceID,
		h.withLogging,
		middleware.Recoverer,
		withMetrics,
	)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// probes are not gated
	router.Get("/", h.health)
	router.Get("/health", h.health)
	router.Get("/health/ready", h.ready)
	router.Handle("/metrics", metrics.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Use(withGZip, h.identify, h.withGate)

		r.Get("/", h.apiInfo)
		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/sign-up", h.signUp)
			r.Post("/sign-in", h.signIn)
			r.Post("/sign-out", h.signOut)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(h.requireAuth)

			r.With(h.requireRole(models.RoleAdmin)).Get("/", h.listUsers)
			r.Get("/{id}", h.getUser)
			r.Put("/{id}", h.updateUser)
			r.Delete("/{id}", h.deleteUser)
		})
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	return router
}
