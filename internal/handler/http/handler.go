// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/metrics"
	"github.com/MKhiriev/go-dream-journal/internal/service"
)

// RealtimeServer streams change events to an upgraded connection.
type RealtimeServer interface {
	ServeWS(w http.ResponseWriter, r *http.Request, userID string)
}

type Handler struct {
	services *service.Services
	realtime RealtimeServer
	metrics  *metrics.Metrics

	authLimiter *ipRateLimiter

	logger *logger.Logger
}

// Option configures optional Handler collaborators.
type Option func(*Handler)

// WithRealtime enables GET /api/realtime.
func WithRealtime(rt RealtimeServer) Option {
	return func(h *Handler) { h.realtime = rt }
}

// WithMetrics enables request instrumentation and GET /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handler) { h.metrics = m }
}

// WithAuthRateLimit caps sign-in and sign-up requests per client IP.
func WithAuthRateLimit(perMinute int) Option {
	return func(h *Handler) {
		if perMinute > 0 {
			h.authLimiter = newIPRateLimiter(perMinute)
		}
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Bool("realtime", h.realtime != nil).Bool("metrics", h.metrics != nil).Msg("http handler created")
	return h
}
