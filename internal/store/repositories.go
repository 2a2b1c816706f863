// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-dream-journal/internal/config"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
)

// Repositories groups the dream-server repositories sharing one PostgreSQL
// pool.
type Repositories struct {
	UserRepository         UserRepository
	DreamRepository        DreamRepository
	ShareRepository        ShareRepository
	NotificationRepository NotificationRepository

	db *DB
}

// NewRepositories connects to PostgreSQL, applies migrations and constructs
// every repository.
func NewRepositories(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Repositories, error) {
	logger.Info().Msg("creating new repositories...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newRepositories(db, logger), nil
}

func newRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db, logger),
		DreamRepository:        NewDreamRepository(db, logger),
		ShareRepository:        NewShareRepository(db, logger),
		NotificationRepository: NewNotificationRepository(db, logger),
		db:                     db,
	}
}

// Ping checks the database is reachable.
func (r *Repositories) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close releases the connection pool.
func (r *Repositories) Close() error {
	return r.db.Close()
}
