// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-dream-journal/internal/adapter"
	"github.com/MKhiriev/go-dream-journal/internal/store"
	"github.com/MKhiriev/go-dream-journal/models"
)

// ---------------------------------------------------------------------------
// Device storage
// ---------------------------------------------------------------------------

type memorySettings struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemorySettings() *memorySettings {
	return &memorySettings{values: map[string]string{}}
}

func (m *memorySettings) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", store.ErrSettingNotFound
	}
	return v, nil
}

func (m *memorySettings) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memorySettings) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.values, k)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Session
// ---------------------------------------------------------------------------

type fixedSession struct {
	user models.User
}

func (s fixedSession) CurrentUser() (models.User, bool) {
	return s.user, s.user.ID != ""
}

// ---------------------------------------------------------------------------
// In-memory dream-server
// ---------------------------------------------------------------------------

// fakeBackend applies the dream-server's row rules in memory: visibility by
// ownership or share, owner-only writes, insert-or-ignore shares that create
// one notification, and notifications that outlive their dream.
type fakeBackend struct {
	mu            sync.Mutex
	profiles      []models.Profile
	dreams        map[string]models.Dream
	shares        []models.Share
	notifications []models.Notification
	nextID        int
	clock         time.Time
}

func newFakeBackend(profiles ...models.Profile) *fakeBackend {
	return &fakeBackend{
		profiles: profiles,
		dreams:   map[string]models.Dream{},
		clock:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// as returns the adapter a client signed in as userID would use.
func (b *fakeBackend) as(userID string) adapter.ServerAdapter {
	return &fakeAdapter{backend: b, userID: userID}
}

func (b *fakeBackend) tick() time.Time {
	b.clock = b.clock.Add(time.Minute)
	return b.clock
}

func (b *fakeBackend) visible(viewerID string, d models.Dream) bool {
	if d.OwnerID == viewerID {
		return true
	}
	for _, s := range b.shares {
		if s.DreamID == d.ID && s.SharedWith == viewerID {
			return true
		}
	}
	return false
}

type fakeAdapter struct {
	backend *fakeBackend
	userID  string
	token   string
}

func (a *fakeAdapter) SetToken(token string) { a.token = token }
func (a *fakeAdapter) Token() string         { return a.token }

func (a *fakeAdapter) Register(context.Context, models.User) (models.Session, error) {
	return models.Session{}, adapter.ErrBadRequest
}

func (a *fakeAdapter) Login(context.Context, models.User) (models.Session, error) {
	return models.Session{}, adapter.ErrBadRequest
}

func (a *fakeAdapter) Me(context.Context) (models.User, error) {
	return models.User{ID: a.userID}, nil
}

func (a *fakeAdapter) Version(context.Context) (string, error) { return "test", nil }

func (a *fakeAdapter) ListProfiles(context.Context) ([]models.Profile, error) {
	b := a.backend
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Profile{}, b.profiles...), nil
}

func (a *fakeAdapter) ListDreams(_ context.Context, filter models.DreamFilter) ([]models.Dream, error) {
	b := a.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []models.Dream
	for _, d := range b.dreams {
		if d.OwnerID != a.userID {
			continue
		}
		if filter.Mood != "" && d.Mood != filter.Mood {
			continue
		}
		if q := strings.ToLower(filter.Query); q != "" &&
			!strings.Contains(strings.ToLower(d.Title), q) && !strings.Contains(strings.ToLower(d.Content), q) {
			continue
		}
		if !d.HasAllTags(filter.Tags) {
			continue
		}
		out = append(out, d)
	}
	sortDreams(out)
	return out, nil
}

func (a *fakeAdapter) GetDream(_ context.Context, dreamID string) (models.Dream, error) {
	b := a.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	d, ok := b.dreams[dreamID]
	if !ok || !b.visible(a.userID, d) {
		return models.Dream{}, fmt.Errorf("%w: not found", adapter.ErrNotFound)
	}
	return d, nil
}

func (a *fakeAdapter) ListVisibleDreams(_ context.Context, dreamIDs []string) ([]models.Dream, error) {
	b := a.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []models.Dream
	for _, id := range dreamIDs {
		if d, ok := b.dreams[id]; ok && b.visible(a.userID, d) {
			out = append(out, d)
		}
	}
	sortDreams(out)
	return out, nil
}

func (a *fakeAdapter) ListVisibleOwnerIDs(context.Context) ([]string, error) {
	b := a.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	seen := map[string]struct{}{}
	var out []string
	for _, d := range b.dreams {
		if _, ok := seen[d.OwnerID]; ok || !b.visible(a.userID, d) {
			continue
		}
		seen[d.OwnerID] = struct{}{}
		out = append(out, d.OwnerID)
	}
	sort.Strings(out)
	return out, nil
}

func (a *fakeAdapter) UpsertDream(_ context.Context, dream models.Dream) (models.Dream, error) {
	b := a.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	if existing, ok := b.dreams[dream.ID]; ok && existing.OwnerID != a.userID {
		return models.Dream{}, fmt.Errorf("%w: not owner", adapter.ErrForbidden)
	}
	dream.OwnerID = a.userID
	b.dreams[dream.ID] = dream
	return dream, nil
}

func (a *fakeAdapter) DeleteDream(_ context.Context, dreamID string) error {
	b := a.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	d, ok := b.dreams[dreamID]
	if !ok || d.OwnerID != a.userID {
		return fmt.Errorf("%w: not found", adapter.ErrNotFound)
	}
	delete(b.dreams, dreamID)

	kept := b.shares[:0]
	for _, s := range b.shares {
		if s.DreamID != dreamID {
			kept = append(kept, s)
		}
	}
	b.shares = kept
	return nil
}

func (a *fakeAdapter) CreateShare(_ context.Context, dreamID, sharedWith string) (models.ShareResult, error) {
	b := a.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	d, ok := b.dreams[dreamID]
	if !ok || d.OwnerID != a.userID {
		return models.ShareResult{}, fmt.Errorf("%w: not owner", adapter.ErrForbidden)
	}
	for _, s := range b.shares {
		if s.DreamID == dreamID && s.SharedWith == sharedWith {
			return models.ShareResult{Created: false}, nil
		}
	}

	now := b.tick()
	b.shares = append(b.shares, models.Share{DreamID: dreamID, SharedBy: a.userID, SharedWith: sharedWith, CreatedAt: now})
	b.nextID++
	b.notifications = append(b.notifications, models.Notification{
		ID:         fmt.Sprintf("n%d", b.nextID),
		SharedBy:   a.userID,
		DreamID:    dreamID,
		SharedWith: sharedWith,
		CreatedAt:  now,
	})
	return models.ShareResult{Created: true}, nil
}

func (a *fakeAdapter) DeleteShare(_ context.Context, dreamID, sharedWith string) error {
	b := a.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	kept := b.shares[:0]
	for _, s := range b.shares {
		if s.DreamID == dreamID && s.SharedWith == sharedWith && s.SharedBy == a.userID {
			continue
		}
		kept = append(kept, s)
	}
	b.shares = kept
	return nil
}

func (a *fakeAdapter) ListReceivedShares(context.Context) ([]models.Share, error) {
	return a.sharesWhere(func(s models.Share) bool { return s.SharedWith == a.userID }), nil
}

func (a *fakeAdapter) ListSentShares(context.Context) ([]models.Share, error) {
	return a.sharesWhere(func(s models.Share) bool { return s.SharedBy == a.userID }), nil
}

func (a *fakeAdapter) sharesWhere(keep func(models.Share) bool) []models.Share {
	b := a.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []models.Share
	for _, s := range b.shares {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

func (a *fakeAdapter) ListNotifications(context.Context) ([]models.Notification, error) {
	b := a.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []models.Notification
	for _, n := range b.notifications {
		if n.SharedWith == a.userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (a *fakeAdapter) UnreadCount(context.Context) (int, error) {
	b := a.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	count := 0
	for _, n := range b.notifications {
		if n.SharedWith == a.userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (a *fakeAdapter) MarkAllNotificationsRead(context.Context) error {
	b := a.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.notifications {
		if b.notifications[i].SharedWith == a.userID {
			b.notifications[i].IsRead = true
		}
	}
	return nil
}

func (a *fakeAdapter) MarkNotificationRead(_ context.Context, notificationID string) error {
	b := a.backend
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.notifications {
		if b.notifications[i].ID == notificationID && b.notifications[i].SharedWith == a.userID {
			b.notifications[i].IsRead = true
		}
	}
	return nil
}

func sortDreams(dreams []models.Dream) {
	sort.SliceStable(dreams, func(i, j int) bool {
		return dreams[i].OccurredAt.After(dreams[j].OccurredAt)
	})
}
