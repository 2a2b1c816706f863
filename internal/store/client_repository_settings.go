// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-dream-journal/internal/logger"
)

// deviceSettingsRepository is the SQLite-backed implementation of
// [DeviceStorage].
type deviceSettingsRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewDeviceSettingsRepository constructs a [DeviceStorage] on the client's
// SQLite database.
func NewDeviceSettingsRepository(db *DB, logger *logger.Logger) DeviceStorage {
	return &deviceSettingsRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *deviceSettingsRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, getDeviceSetting, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSettingNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*deviceSettingsRepository.Get").Str("key", key).Msg("error reading setting")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return value, nil
}

func (r *deviceSettingsRepository) Set(ctx context.Context, key, value string) error {
	query, args, err := buildSetDeviceSettingQuery(key, value, r.now().UTC())
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*deviceSettingsRepository.Set").Str("key", key).Msg("error writing setting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *deviceSettingsRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	query, args, err := buildDeleteDeviceSettingsQuery(keys)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*deviceSettingsRepository.Delete").Msg("error deleting settings")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
