// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-dream-journal/internal/adapter"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
)

type serverInfoService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewServerInfoService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ServerInfoService {
	return &serverInfoService{adapter: serverAdapter, logger: logger}
}

func (s *serverInfoService) Version(ctx context.Context) (string, error) {
	version, err := s.adapter.Version(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*serverInfoService.Version").Msg("error fetching server version")
		return "", fmt.Errorf("error fetching server version: %w", mapAdapterError(err))
	}
	return version, nil
}
