// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Init builds the router with every API route and middleware.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{"Authorization", traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if h.metrics != nil {
		router.Use(h.metrics.InstrumentHandler)
		// promhttp negotiates its own compression, so /metrics stays outside withGZip.
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		if h.cfg.RequestTimeout > 0 {
			r.Use(middleware.Timeout(h.cfg.RequestTimeout))
		}

		r.Get("/api/version/", h.getServerVersion)

		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Use(h.withAuthRateLimit)
			r.Post("/api/auth/register", h.register)
			r.Post("/api/auth/login", h.login)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Delete("/api/user/", h.deleteAccount)

			r.Get("/api/journal/", h.listJournalEntries)
			r.Post("/api/journal/", h.createJournalEntry)
			r.Get("/api/journal/{id}/", h.getJournalEntry)
			r.Put("/api/journal/{id}/", h.updateJournalEntry)
			r.Patch("/api/journal/{id}/", h.updateJournalEntry)
			r.Delete("/api/journal/{id}/", h.deleteJournalEntry)

			r.Get("/api/moodlog/", h.listMoodLogs)
			r.Post("/api/moodlog/", h.createMoodLog)
			r.Get("/api/moodlog/{id}/", h.getMoodLog)
			r.Delete("/api/moodlog/{id}/", h.deleteMoodLog)

			r.Get("/api/insights/mood", h.moodInsights)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
