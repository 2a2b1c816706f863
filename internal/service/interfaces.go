// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-dream-journal/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	CurrentUser(ctx context.Context, userID string) (models.User, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

type ProfileService interface {
	ListProfiles(ctx context.Context) ([]models.Profile, error)
}

// DreamService is the row-scoped dream API of the dream-server. Every method
// acts on behalf of the user passed in as owner or viewer.
type DreamService interface {
	ListOwnDreams(ctx context.Context, ownerID string, filter models.DreamFilter) ([]models.Dream, error)
	GetDream(ctx context.Context, viewerID, dreamID string) (models.Dream, error)
	ListVisibleDreams(ctx context.Context, viewerID string, dreamIDs []string) ([]models.Dream, error)
	ListVisibleOwnerIDs(ctx context.Context, viewerID string) ([]string, error)
	UpsertDream(ctx context.Context, dream models.Dream) (models.Dream, error)
	DeleteDream(ctx context.Context, ownerID, dreamID string) error
}

type ShareService interface {
	// Share inserts the share unless it exists. share.SharedBy must own the
	// dream.
	Share(ctx context.Context, share models.Share) (models.ShareResult, error)
	Unshare(ctx context.Context, share models.Share) error
	ListReceived(ctx context.Context, userID string) ([]models.Share, error)
	ListSent(ctx context.Context, userID string) ([]models.Share, error)
}

type NotificationService interface {
	ListNotifications(ctx context.Context, recipientID string) ([]models.Notification, error)
	MarkAllRead(ctx context.Context, recipientID string) error
	MarkRead(ctx context.Context, recipientID, notificationID string) error
	UnreadCount(ctx context.Context, recipientID string) (int, error)
}

// ChangePublisher fans a row change out to the live subscribers of
// event.UserID.
type ChangePublisher interface {
	Publish(ctx context.Context, event models.ChangeEvent)
}

// DreamServiceWrapper defines middleware composition for DreamService.
// Implementations wrap an existing DreamService to add behavior such as
// validation.
type DreamServiceWrapper interface {
	Wrap(DreamService) DreamService
}

// ShareServiceWrapper is the ShareService counterpart of DreamServiceWrapper.
type ShareServiceWrapper interface {
	Wrap(ShareService) ShareService
}

type NotificationServiceWrapper interface {
	Wrap(NotificationService) NotificationService
}
