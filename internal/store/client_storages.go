// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-dream-journal/internal/config"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
)

// ClientStorages groups the client-side repositories living in the device's
// SQLite database.
type ClientStorages struct {
	// Settings keeps the PIN digest, the theme and the signed-in session.
	Settings DeviceStorage

	db *DB
}

// NewClientStorages opens (creating if needed) the SQLite file at
// cfg.DB.DSN, applies migrations and constructs the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Settings: NewDeviceSettingsRepository(db, logger),
		db:       db,
	}, nil
}

// Close releases the database handle.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
