// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-dream-journal/internal/adapter"
	"github.com/MKhiriev/go-dream-journal/internal/config"
	"github.com/MKhiriev/go-dream-journal/internal/crypto"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/store"
)

type ClientServices struct {
	AuthService        ClientAuthService
	PinGate            PinGate
	DreamStore         DreamStore
	UserDirectory      UserDirectory
	SharingEngine      SharingEngine
	NotificationEngine NotificationEngine
	ThemeService       ThemeService
	BackupService      BackupService
	ServerInfo         ServerInfoService
	BadgeJob           BadgeRefreshJob
}

func NewClientServices(settings store.DeviceStorage, serverAdapter adapter.ServerAdapter, cfg config.ClientApp, logger *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(settings, serverAdapter, logger)
	directory := NewUserDirectory(serverAdapter, logger)
	dreams := NewClientDreamStore(serverAdapter, authSvc, logger)
	notifications := NewNotificationEngine(serverAdapter, directory, logger)

	return &ClientServices{
		AuthService:        authSvc,
		PinGate:            NewPinGate(settings, crypto.NewPinHasher(), cfg, logger),
		DreamStore:         dreams,
		UserDirectory:      directory,
		SharingEngine:      NewSharingEngine(serverAdapter, authSvc, directory, logger),
		NotificationEngine: notifications,
		ThemeService:       NewThemeService(settings, logger),
		BackupService:      NewBackupService(serverAdapter, dreams, logger),
		ServerInfo:         NewServerInfoService(serverAdapter, logger),
		BadgeJob:           NewBadgeRefreshJob(notifications),
	}
}
