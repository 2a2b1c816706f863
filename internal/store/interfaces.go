// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-dream-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository stores accounts of the dream-server.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User, passwordHash string) (models.User, error)
	// FindUserByEmail returns the user together with the stored password hash.
	FindUserByEmail(ctx context.Context, email string) (models.User, string, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	ListProfiles(ctx context.Context) ([]models.Profile, error)
}

// DreamRepository stores dreams. Reads are scoped by a viewer: a dream is
// visible when the viewer owns it or it was shared with the viewer.
type DreamRepository interface {
	ListOwnDreams(ctx context.Context, ownerID string, filter models.DreamFilter) ([]models.Dream, error)
	GetVisibleDream(ctx context.Context, viewerID, dreamID string) (models.Dream, error)
	ListVisibleDreamsByIDs(ctx context.Context, viewerID string, dreamIDs []string) ([]models.Dream, error)
	ListVisibleOwnerIDs(ctx context.Context, viewerID string) ([]string, error)
	// UpsertDream inserts or replaces a dream. An existing dream is replaced
	// only when dream.OwnerID owns it, otherwise ErrDreamNotOwned.
	UpsertDream(ctx context.Context, dream models.Dream) (models.Dream, error)
	DeleteDream(ctx context.Context, ownerID, dreamID string) error
}

// ShareRepository stores shares and creates the matching notifications.
type ShareRepository interface {
	// CreateShare inserts the share unless it already exists. The dream must
	// be owned by share.SharedBy. A notification is written in the same
	// transaction only when a row was inserted.
	CreateShare(ctx context.Context, share models.Share, notificationID string) (bool, error)
	DeleteShare(ctx context.Context, share models.Share) error
	ListSharesWith(ctx context.Context, userID string) ([]models.Share, error)
	ListSharesBy(ctx context.Context, userID string) ([]models.Share, error)
	// ListRecipients returns every user the dream is shared with.
	ListRecipients(ctx context.Context, dreamID string) ([]string, error)
}

// NotificationRepository stores share notifications.
type NotificationRepository interface {
	ListNotifications(ctx context.Context, recipientID string) ([]models.Notification, error)
	MarkAllRead(ctx context.Context, recipientID string) error
	MarkRead(ctx context.Context, recipientID, notificationID string) error
	CountUnread(ctx context.Context, recipientID string) (int, error)
}
