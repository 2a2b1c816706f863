// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/store"
	"github.com/MKhiriev/go-dream-journal/models"
)

type notificationService struct {
	notifications store.NotificationRepository
	publisher     ChangePublisher

	logger *logger.Logger
}

func NewNotificationService(notifications store.NotificationRepository, publisher ChangePublisher, logger *logger.Logger) NotificationService {
	return &notificationService{
		notifications: notifications,
		publisher:     publisher,
		logger:        logger,
	}
}

func (s *notificationService) ListNotifications(ctx context.Context, recipientID string) ([]models.Notification, error) {
	return s.notifications.ListNotifications(ctx, recipientID)
}

// MarkAllRead also tells the recipient's other sessions to refresh their
// badge.
func (s *notificationService) MarkAllRead(ctx context.Context, recipientID string) error {
	if err := s.notifications.MarkAllRead(ctx, recipientID); err != nil {
		return fmt.Errorf("mark all read failed: %w", err)
	}

	publishTo(ctx, s.publisher, models.Notification{}.TableName(), models.ChangeUpdate, "", recipientID)
	return nil
}

func (s *notificationService) MarkRead(ctx context.Context, recipientID, notificationID string) error {
	if err := s.notifications.MarkRead(ctx, recipientID, notificationID); err != nil {
		return fmt.Errorf("mark read failed: %w", err)
	}

	publishTo(ctx, s.publisher, models.Notification{}.TableName(), models.ChangeUpdate, notificationID, recipientID)
	return nil
}

func (s *notificationService) UnreadCount(ctx context.Context, recipientID string) (int, error) {
	return s.notifications.CountUnread(ctx, recipientID)
}
