// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/store"
	"github.com/MKhiriev/go-dream-journal/models"
)

type profileService struct {
	users  store.UserRepository
	logger *logger.Logger
}

func NewProfileService(users store.UserRepository, logger *logger.Logger) ProfileService {
	return &profileService{users: users, logger: logger}
}

func (s *profileService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	return s.users.ListProfiles(ctx)
}
