// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-dream-journal/models"
)

// Read methods of the client engines never fail hard: on a backend failure
// they log, return an empty (non-nil) result and report the error so the
// caller can show a toast. Write methods return the error and change nothing
// locally.

// PinGate is the local app lock. It is independent of the signed-in account
// and lives in device storage.
type PinGate interface {
	// SetPin stores a fresh digest of pin and enables the lock. A PIN
	// shorter than four characters is rejected with ErrPinTooShort.
	SetPin(ctx context.Context, pin string) error

	// Disable clears the stored record. When the gate is configured to
	// require verification, pin must match, otherwise
	// ErrPinVerificationFailed.
	Disable(ctx context.Context, pin string) error

	// Verify reports whether pin matches the stored digest. It is false when
	// no record exists or the lock is disabled.
	Verify(ctx context.Context, pin string) bool

	IsEnabled(ctx context.Context) bool
}

// CurrentUserProvider resolves the signed-in user.
type CurrentUserProvider interface {
	CurrentUser() (models.User, bool)
}

// ClientAuthService is the client's view of the account session. The session
// is persisted in device storage so it survives restarts.
type ClientAuthService interface {
	CurrentUserProvider

	SignUp(ctx context.Context, email, password, username string) (models.User, error)
	SignIn(ctx context.Context, email, password string) (models.User, error)
	SignOut(ctx context.Context) error

	// Restore loads a persisted session and checks it against the server.
	// A session the server rejects is dropped.
	Restore(ctx context.Context) (models.User, bool)

	// Token returns the bearer token of the current session.
	Token() string

	// OnAuthStateChange registers cb for every sign-in and sign-out. The
	// returned function unregisters it.
	OnAuthStateChange(cb func(user models.User, signedIn bool)) (unsubscribe func())
}

// DreamStore is the CRUD facade over the signed-in user's dreams.
type DreamStore interface {
	List(ctx context.Context, filter models.DreamFilter) ([]models.Dream, error)

	// Get reports false when the dream does not exist or is not visible.
	Get(ctx context.Context, dreamID string) (models.Dream, bool)

	// Upsert validates and stores the dream. A new dream receives an id and
	// createdAt; updatedAt is always set to now.
	Upsert(ctx context.Context, dream models.Dream) (models.Dream, error)

	Delete(ctx context.Context, dreamID string) error
}

// UserDirectory resolves user ids to display names. Unknown ids resolve to
// a placeholder built from the id.
type UserDirectory interface {
	Resolve(ctx context.Context, userID string) string
	ResolveMany(ctx context.Context, userIDs []string) map[string]string

	// Profiles lists every known profile. It is empty when the directory
	// has none or the lookup failed.
	Profiles(ctx context.Context) ([]models.Profile, error)

	// Invalidate drops the cache so the next lookup refetches.
	Invalidate()
}

// SharingEngine manages shares of the signed-in user's dreams and the views
// derived from them.
type SharingEngine interface {
	// Share grants targetUserID read access to the dream. Ownership is
	// checked by the server, which answers ErrForbidden.
	Share(ctx context.Context, dreamID, targetUserID string) error

	// Unshare removes the grant. Removing a missing grant succeeds.
	Unshare(ctx context.Context, dreamID, targetUserID string) error

	// ListSharedWithMe returns dreams shared with userID, newest dream
	// first, annotated with the sharer's display name.
	ListSharedWithMe(ctx context.Context, userID string) ([]models.SharedDream, error)

	// ListOwnSharedDreamIDs returns the ids of the dreams userID shared.
	ListOwnSharedDreamIDs(ctx context.Context, userID string) (map[string]struct{}, error)

	// ListShareableUsers returns candidate recipients, excluding
	// currentUserID.
	ListShareableUsers(ctx context.Context, currentUserID string) ([]models.ShareableUser, error)
}

// NotificationEngine builds the notification feed and the unread badge.
type NotificationEngine interface {
	// ListNotifications returns the feed of userID, newest first. A
	// notification about a deleted dream keeps a placeholder title and the
	// neutral mood.
	ListNotifications(ctx context.Context, userID string) ([]models.NotificationView, error)

	MarkAllRead(ctx context.Context, userID string) error
	MarkOneRead(ctx context.Context, notificationID string) error

	// UnreadCount is 0 when the count cannot be fetched.
	UnreadCount(ctx context.Context, userID string) (int, error)

	// Open lists the feed and then marks it all read. The returned views
	// report the post-view state.
	Open(ctx context.Context, userID string) ([]models.NotificationView, error)
}

// ThemeService persists the dark mode preference.
type ThemeService interface {
	IsDarkMode(ctx context.Context) bool
	SetDarkMode(ctx context.Context, dark bool) error
	Toggle(ctx context.Context) (bool, error)
}

// ServerInfoService reports the dream-server's version for the about page.
type ServerInfoService interface {
	Version(ctx context.Context) (string, error)
}

// BackupService exports and imports the signed-in user's dreams as a JSON
// array of dream objects.
type BackupService interface {
	ExportJSON(ctx context.Context) (string, error)

	// ImportJSON upserts every record. A record whose id already exists
	// counts as updated, any other as imported.
	ImportJSON(ctx context.Context, payload string) (models.ImportResult, error)

	ExportToFile(ctx context.Context, path string) error
	ImportFromFile(ctx context.Context, path string) (models.ImportResult, error)
}

// BadgeRefreshJob polls the unread count in the background.
type BadgeRefreshJob interface {
	// Start stops any running job and polls every interval, passing each
	// count to onCount. It returns immediately.
	Start(ctx context.Context, userID string, interval time.Duration, onCount func(int))

	// Stop cancels the job and waits for it to exit.
	Stop()
}
