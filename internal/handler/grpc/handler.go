// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc serves the standard gRPC health protocol for the dream-server.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-dream-journal/internal/logger"
)

// ServiceName is the name under which the dream API reports its health.
// The empty name reports the server as a whole.
const ServiceName = "dream.v1.DreamJournal"

const pingTimeout = 2 * time.Second

// Pinger checks a backing dependency, usually the database.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the root gRPC transport handler. It answers health checks by
// pinging the storage.
type Handler struct {
	grpc_health_v1.UnimplementedHealthServer

	pinger Pinger
	logger *logger.Logger
}

// NewHandler constructs a [Handler]. A nil pinger always reports SERVING.
func NewHandler(pinger Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		pinger: pinger,
		logger: logger,
	}
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	grpc_health_v1.RegisterHealthServer(s, h)
}

func (h *Handler) Check(ctx context.Context, req *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	if name := req.GetService(); name != "" && name != ServiceName {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", name)
	}

	if h.pinger != nil {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()

		if err := h.pinger.Ping(pingCtx); err != nil {
			h.logger.Warn().Err(err).Str("func", "*Handler.Check").Msg("storage ping failed")
			return &grpc_health_v1.HealthCheckResponse{Status: grpc_health_v1.HealthCheckResponse_NOT_SERVING}, nil
		}
	}

	return &grpc_health_v1.HealthCheckResponse{Status: grpc_health_v1.HealthCheckResponse_SERVING}, nil
}
