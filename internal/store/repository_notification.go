// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/models"
)

type notificationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNotificationRepository constructs a [NotificationRepository] on db.
func NewNotificationRepository(db *DB, logger *logger.Logger) NotificationRepository {
	logger.Debug().Msg("creating notification repository")
	return &notificationRepository{
		db:     db,
		logger: logger,
	}
}

// ListNotifications returns every notification addressed to recipientID,
// newest first.
func (r *notificationRepository) ListNotifications(ctx context.Context, recipientID string) ([]models.Notification, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listNotifications, recipientID)
	if err != nil {
		log.Err(err).Str("func", "*notificationRepository.ListNotifications").Msg("error listing notifications")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notifications := make([]models.Notification, 0)
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.SharedBy, &n.DreamID, &n.SharedWith, &n.IsRead, &n.CreatedAt); err != nil {
			log.Err(err).Str("func", "*notificationRepository.ListNotifications").Msg("error scanning notification")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notifications, nil
}

// MarkAllRead flags every unread notification of recipientID as read.
func (r *notificationRepository) MarkAllRead(ctx context.Context, recipientID string) error {
	err := r.db.withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, markAllNotificationsRead, recipientID)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*notificationRepository.MarkAllRead").Msg("error marking notifications read")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// MarkRead flags one notification as read. Marking an already read
// notification succeeds; one addressed to someone else is
// [ErrNotificationNotFound].
func (r *notificationRepository) MarkRead(ctx context.Context, recipientID, notificationID string) error {
	var affected int64
	err := r.db.withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, markNotificationRead, notificationID, recipientID)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*notificationRepository.MarkRead").Msg("error marking notification read")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, recipientID string) (int, error) {
	var count int
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, countUnreadNotifications, recipientID).Scan(&count)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*notificationRepository.CountUnread").Msg("error counting notifications")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return count, nil
}
