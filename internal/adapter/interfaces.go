// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the dream-client's view of the dream-server.
//
// [ServerAdapter] covers sign-up/sign-in and the row-scoped persistence API
// over REST; [RealtimeSubscriber] follows the server's live change channel
// over a websocket. Transport failures are mapped from HTTP status codes to
// the sentinel errors in errors.go so callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-dream-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// dream-server. Every call except Register, Login and Version is
// authenticated with the token set via SetToken and scoped by the server to
// that token's user.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when signed out.
	Token() string

	// Register creates an account and stores the returned token.
	Register(ctx context.Context, user models.User) (models.Session, error)

	// Login signs in with email and password and stores the returned token.
	Login(ctx context.Context, user models.User) (models.Session, error)

	// Me returns the account behind the stored token.
	Me(ctx context.Context) (models.User, error)

	Version(ctx context.Context) (string, error)

	ListProfiles(ctx context.Context) ([]models.Profile, error)

	// ListDreams returns the caller's own dreams matching filter.
	ListDreams(ctx context.Context, filter models.DreamFilter) ([]models.Dream, error)

	// GetDream returns a dream visible to the caller; [ErrNotFound] otherwise.
	GetDream(ctx context.Context, dreamID string) (models.Dream, error)

	// ListVisibleDreams returns those of dreamIDs visible to the caller,
	// ordered by occurredAt descending.
	ListVisibleDreams(ctx context.Context, dreamIDs []string) ([]models.Dream, error)

	// ListVisibleOwnerIDs returns distinct owners of dreams the caller can see.
	ListVisibleOwnerIDs(ctx context.Context) ([]string, error)

	UpsertDream(ctx context.Context, dream models.Dream) (models.Dream, error)
	DeleteDream(ctx context.Context, dreamID string) error

	// CreateShare inserts a share from the caller unless it exists.
	CreateShare(ctx context.Context, dreamID, sharedWith string) (models.ShareResult, error)
	DeleteShare(ctx context.Context, dreamID, sharedWith string) error
	ListReceivedShares(ctx context.Context) ([]models.Share, error)
	ListSentShares(ctx context.Context) ([]models.Share, error)

	ListNotifications(ctx context.Context) ([]models.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkAllNotificationsRead(ctx context.Context) error
	MarkNotificationRead(ctx context.Context, notificationID string) error
}

// RealtimeSubscriber delivers the server's change events for the token's
// user.
type RealtimeSubscriber interface {
	// Subscribe calls onEvent for every change event until ctx is cancelled,
	// reconnecting after connection failures. It returns ctx.Err() on
	// cancellation or an error when the server refuses the token.
	Subscribe(ctx context.Context, token string, onEvent func(models.ChangeEvent)) error
}
