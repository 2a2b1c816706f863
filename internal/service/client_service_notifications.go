// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sort"

	"github.com/MKhiriev/go-dream-journal/internal/adapter"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/models"
)

type notificationEngine struct {
	adapter   adapter.ServerAdapter
	directory UserDirectory

	logger *logger.Logger
}

func NewNotificationEngine(serverAdapter adapter.ServerAdapter, directory UserDirectory, logger *logger.Logger) NotificationEngine {
	return &notificationEngine{
		adapter:   serverAdapter,
		directory: directory,
		logger:    logger,
	}
}

func (e *notificationEngine) ListNotifications(ctx context.Context, userID string) ([]models.NotificationView, error) {
	rows, err := e.adapter.ListNotifications(ctx)
	if err != nil {
		err = mapAdapterError(err)
		e.logger.Err(err).Str("func", "*notificationEngine.ListNotifications").Msg("error listing notifications")
		return []models.NotificationView{}, err
	}

	notifications := make([]models.Notification, 0, len(rows))
	for _, n := range rows {
		if n.SharedWith == userID {
			notifications = append(notifications, n)
		}
	}
	if len(notifications) == 0 {
		return []models.NotificationView{}, nil
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})

	dreamIDs := make([]string, 0, len(notifications))
	sharerIDs := make([]string, 0, len(notifications))
	seenDream := make(map[string]struct{}, len(notifications))
	seenSharer := make(map[string]struct{}, len(notifications))
	for _, n := range notifications {
		if _, ok := seenDream[n.DreamID]; !ok {
			seenDream[n.DreamID] = struct{}{}
			dreamIDs = append(dreamIDs, n.DreamID)
		}
		if _, ok := seenSharer[n.SharedBy]; !ok {
			seenSharer[n.SharedBy] = struct{}{}
			sharerIDs = append(sharerIDs, n.SharedBy)
		}
	}

	// a failed join keeps the feed: every dream falls back to the placeholder
	dreams := make(map[string]models.Dream, len(dreamIDs))
	found, err := e.adapter.ListVisibleDreams(ctx, dreamIDs)
	if err != nil {
		e.logger.Warn().Err(mapAdapterError(err)).Str("func", "*notificationEngine.ListNotifications").Msg("error joining notification dreams")
	}
	for _, d := range found {
		dreams[d.ID] = d
	}

	names := e.directory.ResolveMany(ctx, sharerIDs)

	views := make([]models.NotificationView, 0, len(notifications))
	for _, n := range notifications {
		view := models.NotificationView{
			ID:         n.ID,
			SharedBy:   names[n.SharedBy],
			SharedByID: n.SharedBy,
			DreamID:    n.DreamID,
			DreamTitle: models.DeletedDreamTitle,
			DreamMood:  models.MoodNeutral,
			IsRead:     n.IsRead,
			CreatedAt:  n.CreatedAt,
		}
		if d, ok := dreams[n.DreamID]; ok {
			view.DreamTitle = d.Title
			view.DreamMood = d.Mood
		}
		views = append(views, view)
	}
	return views, nil
}

func (e *notificationEngine) MarkAllRead(ctx context.Context, userID string) error {
	if err := e.adapter.MarkAllNotificationsRead(ctx); err != nil {
		err = mapAdapterError(err)
		e.logger.Err(err).Str("func", "*notificationEngine.MarkAllRead").Str("user_id", userID).Msg("error marking notifications read")
		return err
	}
	return nil
}

func (e *notificationEngine) MarkOneRead(ctx context.Context, notificationID string) error {
	if err := e.adapter.MarkNotificationRead(ctx, notificationID); err != nil {
		err = mapAdapterError(err)
		e.logger.Err(err).Str("func", "*notificationEngine.MarkOneRead").Str("notification_id", notificationID).Msg("error marking notification read")
		return err
	}
	return nil
}

func (e *notificationEngine) UnreadCount(ctx context.Context, userID string) (int, error) {
	count, err := e.adapter.UnreadCount(ctx)
	if err != nil {
		err = mapAdapterError(err)
		e.logger.Err(err).Str("func", "*notificationEngine.UnreadCount").Str("user_id", userID).Msg("error counting unread notifications")
		return 0, err
	}
	return count, nil
}

func (e *notificationEngine) Open(ctx context.Context, userID string) ([]models.NotificationView, error) {
	views, err := e.ListNotifications(ctx, userID)
	if err != nil {
		return views, err
	}

	if err = e.MarkAllRead(ctx, userID); err != nil {
		return views, err
	}

	for i := range views {
		views[i].IsRead = true
	}
	return views, nil
}
