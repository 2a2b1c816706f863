// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-dream-journal/internal/config"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/store"
)

type Services struct {
	AuthService         AuthService
	AppInfoService      AppInfoService
	ProfileService      ProfileService
	DreamService        DreamService
	ShareService        ShareService
	NotificationService NotificationService
}

// NewServices wires the dream-server services over repos. Change events are
// sent to publisher; pass nil to drop them.
func NewServices(repos *store.Repositories, publisher ChangePublisher, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	if publisher == nil {
		publisher = nopPublisher{}
	}

	dreams := NewDreamService(repos.DreamRepository, repos.ShareRepository, publisher, logger)
	shares := NewShareService(repos.ShareRepository, publisher, logger)
	notifications := NewNotificationService(repos.NotificationRepository, publisher, logger)

	return &Services{
		AuthService:         NewAuthService(repos.UserRepository, cfg, logger),
		AppInfoService:      appInfo,
		ProfileService:      NewProfileService(repos.UserRepository, logger),
		DreamService:        NewDreamValidationService().Wrap(dreams),
		ShareService:        NewShareValidationService().Wrap(shares),
		NotificationService: NewNotificationValidationService().Wrap(notifications),
	}, nil
}
