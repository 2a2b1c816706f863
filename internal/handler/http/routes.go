// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)
	if h.metrics != nil {
		router.Use(h.metrics.Middleware)
		router.Handle("/metrics", h.metrics.Handler())
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Get("/api/version", h.getServerVersion)
		r.With(h.withAuthRateLimit).Post("/api/auth/register", h.register)
		r.With(h.withAuthRateLimit).Post("/api/auth/login", h.login)
	})

	// the websocket handshake must not be wrapped by gzip
	if h.realtime != nil {
		router.With(h.authWithQueryToken).Get("/api/realtime", h.realtimeUpgrade)
	}

	router.Group(func(r chi.Router) {
		r.Use(h.auth, withGZip)

		r.Get("/api/auth/me", h.me)
		r.Get("/api/profiles", h.listProfiles)

		r.Route("/api/dreams", func(r chi.Router) {
			r.Get("/", h.listDreams)
			r.Get("/visible", h.listVisibleDreams)
			r.Get("/owners", h.listVisibleOwnerIDs)
			r.Get("/{id}", h.getDream)
			r.Put("/{id}", h.upsertDream)
			r.Delete("/{id}", h.deleteDream)
		})

		r.Route("/api/shares", func(r chi.Router) {
			r.Post("/", h.createShare)
			r.Delete("/", h.deleteShare)
			r.Get("/received", h.listReceivedShares)
			r.Get("/sent", h.listSentShares)
		})

		r.Route("/api/notifications", func(r chi.Router) {
			r.Get("/", h.listNotifications)
			r.Get("/unread-count", h.unreadCount)
			r.Post("/read", h.markAllNotificationsRead)
			r.Post("/{id}/read", h.markNotificationRead)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
