// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-dream-journal/internal/config"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/service"
	"github.com/MKhiriev/go-dream-journal/internal/validators"
	"github.com/MKhiriev/go-dream-journal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── fakes ───────────────────────────────────────────────────────────────────

type fakeAuth struct {
	service.ClientAuthService

	mu        sync.Mutex
	user      models.User
	signedIn  bool
	listeners []func(models.User, bool)
	signInErr error
}

func (a *fakeAuth) OnAuthStateChange(cb func(models.User, bool)) func() {
	a.mu.Lock()
	a.listeners = append(a.listeners, cb)
	a.mu.Unlock()
	return func() {}
}

func (a *fakeAuth) notify(user models.User, signedIn bool) {
	a.mu.Lock()
	listeners := append([]func(models.User, bool){}, a.listeners...)
	a.mu.Unlock()
	for _, cb := range listeners {
		cb(user, signedIn)
	}
}

func (a *fakeAuth) SignIn(_ context.Context, email, _ string) (models.User, error) {
	if a.signInErr != nil {
		return models.User{}, a.signInErr
	}
	a.mu.Lock()
	a.user = models.User{ID: "u1", Email: email}
	a.signedIn = true
	a.mu.Unlock()
	a.notify(a.user, true)
	return a.user, nil
}

func (a *fakeAuth) SignOut(context.Context) error {
	a.mu.Lock()
	user := a.user
	a.user, a.signedIn = models.User{}, false
	a.mu.Unlock()
	a.notify(user, false)
	return nil
}

func (a *fakeAuth) Restore(context.Context) (models.User, bool) {
	a.mu.Lock()
	user, ok := a.user, a.signedIn
	a.mu.Unlock()
	if ok {
		a.notify(user, true)
	}
	return user, ok
}

func (a *fakeAuth) CurrentUser() (models.User, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user, a.signedIn
}

func (a *fakeAuth) Token() string { return "tok" }

type fakePinGate struct {
	pin     string
	enabled bool
	sets    int
}

func (g *fakePinGate) SetPin(_ context.Context, pin string) error {
	g.sets++
	if len([]rune(pin)) < 4 {
		return errors.Join(service.ErrValidation, service.ErrPinTooShort)
	}
	g.pin, g.enabled = pin, true
	return nil
}

func (g *fakePinGate) Disable(context.Context, string) error {
	g.pin, g.enabled = "", false
	return nil
}

func (g *fakePinGate) Verify(_ context.Context, pin string) bool { return g.enabled && pin == g.pin }
func (g *fakePinGate) IsEnabled(context.Context) bool            { return g.enabled }

type fakeDreams struct {
	service.DreamStore

	calls     atomic.Int32
	list      func(ctx context.Context, call int32) ([]models.Dream, error)
	upsertErr error
}

func (d *fakeDreams) List(ctx context.Context, _ models.DreamFilter) ([]models.Dream, error) {
	call := d.calls.Add(1)
	if d.list == nil {
		return []models.Dream{{ID: "d1", Title: "Flight"}}, nil
	}
	return d.list(ctx, call)
}

func (d *fakeDreams) Upsert(_ context.Context, dream models.Dream) (models.Dream, error) {
	if d.upsertErr != nil {
		return models.Dream{}, d.upsertErr
	}
	return dream, nil
}

type fakeSharing struct {
	service.SharingEngine

	listErr error
}

func (s *fakeSharing) ListSharedWithMe(context.Context, string) ([]models.SharedDream, error) {
	if s.listErr != nil {
		return []models.SharedDream{}, s.listErr
	}
	return []models.SharedDream{{Dream: models.Dream{ID: "d9"}, SharedByDisplayName: "Bob"}}, nil
}

func (s *fakeSharing) ListOwnSharedDreamIDs(context.Context, string) (map[string]struct{}, error) {
	return map[string]struct{}{"d1": {}}, nil
}

func (s *fakeSharing) Share(context.Context, string, string) error { return nil }

type fakeNotifications struct {
	service.NotificationEngine

	unread atomic.Int32
}

func (n *fakeNotifications) UnreadCount(context.Context, string) (int, error) {
	return int(n.unread.Load()), nil
}

func (n *fakeNotifications) Open(context.Context, string) ([]models.NotificationView, error) {
	n.unread.Store(0)
	return []models.NotificationView{{ID: "n1", IsRead: true}}, nil
}

type fakeDirectory struct {
	service.UserDirectory

	invalidated atomic.Int32
}

func (d *fakeDirectory) Invalidate() { d.invalidated.Add(1) }

type fakeBadgeJob struct {
	started atomic.Int32
	stopped atomic.Int32
}

func (b *fakeBadgeJob) Start(context.Context, string, time.Duration, func(int)) { b.started.Add(1) }
func (b *fakeBadgeJob) Stop()                                                  { b.stopped.Add(1) }

type fakeServerInfo struct {
	version string
	err     error
}

func (f *fakeServerInfo) Version(context.Context) (string, error) { return f.version, f.err }

type fakeRealtime struct {
	events chan models.ChangeEvent
}

func (r *fakeRealtime) Subscribe(ctx context.Context, _ string, onEvent func(models.ChangeEvent)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-r.events:
			onEvent(event)
		}
	}
}

type testShell struct {
	*AppShell
	auth          *fakeAuth
	pin           *fakePinGate
	dreams        *fakeDreams
	sharing       *fakeSharing
	notifications *fakeNotifications
	directory     *fakeDirectory
	badge         *fakeBadgeJob
	serverInfo    *fakeServerInfo
}

func newTestShell(t *testing.T, realtime *fakeRealtime) *testShell {
	t.Helper()
	ts := &testShell{
		auth:          &fakeAuth{},
		pin:           &fakePinGate{},
		dreams:        &fakeDreams{},
		sharing:       &fakeSharing{},
		notifications: &fakeNotifications{},
		directory:     &fakeDirectory{},
		badge:         &fakeBadgeJob{},
		serverInfo:    &fakeServerInfo{version: "1.0.0"},
	}
	services := &service.ClientServices{
		AuthService:        ts.auth,
		PinGate:            ts.pin,
		DreamStore:         ts.dreams,
		SharingEngine:      ts.sharing,
		NotificationEngine: ts.notifications,
		UserDirectory:      ts.directory,
		BadgeJob:           ts.badge,
		ServerInfo:         ts.serverInfo,
	}

	var shell *AppShell
	if realtime != nil {
		shell = NewAppShell(services, realtime, config.ClientWorkers{BadgeInterval: time.Minute}, logger.Nop())
	} else {
		shell = NewAppShell(services, nil, config.ClientWorkers{BadgeInterval: time.Minute}, logger.Nop())
	}
	t.Cleanup(shell.Close)
	ts.AppShell = shell
	return ts
}

func lastToast(t *testing.T, s *AppShell) Toast {
	t.Helper()
	toasts := s.DrainToasts()
	require.NotEmpty(t, toasts)
	return toasts[len(toasts)-1]
}

// ── lock ────────────────────────────────────────────────────────────────────

func TestAppShell_LockStateMachine(t *testing.T) {
	s := newTestShell(t, nil)
	ctx := context.Background()
	s.pin.pin, s.pin.enabled = "1234", true

	s.Start(ctx)
	assert.True(t, s.Locked())

	assert.False(t, s.Unlock(ctx, "0000"))
	assert.True(t, s.Locked())
	assert.Equal(t, ToastError, lastToast(t, s.AppShell).Level)

	for range 10 {
		s.Unlock(ctx, "9999")
	}
	assert.True(t, s.Unlock(ctx, "1234"), "no lockout after repeated failures")
	assert.False(t, s.Locked())

	s.Lock(ctx)
	assert.True(t, s.Locked())
}

func TestAppShell_StartWithoutPinIsUnlocked(t *testing.T) {
	s := newTestShell(t, nil)
	s.Start(context.Background())
	assert.False(t, s.Locked())
}

func TestAppShell_SetPin(t *testing.T) {
	s := newTestShell(t, nil)
	ctx := context.Background()

	err := s.SetPin(ctx, "1234", "1243")
	assert.ErrorIs(t, err, service.ErrPinMismatch)
	assert.ErrorIs(t, err, service.ErrValidation)
	assert.Zero(t, s.pin.sets)
	assert.Equal(t, ToastError, lastToast(t, s.AppShell).Level)

	assert.ErrorIs(t, s.SetPin(ctx, "12", "12"), service.ErrPinTooShort)

	require.NoError(t, s.SetPin(ctx, "1234", "1234"))
	assert.True(t, s.PinEnabled(ctx))
}

// ── session ─────────────────────────────────────────────────────────────────

func TestAppShell_SignInLoadsCaches(t *testing.T) {
	s := newTestShell(t, nil)
	ctx := context.Background()
	s.notifications.unread.Store(3)

	require.NoError(t, s.SignIn(ctx, "lena@example.com", "pw"))

	user, ok := s.CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, "u1", user.ID)
	assert.Len(t, s.Dreams(), 1)
	assert.Len(t, s.SharedWithMe(), 1)
	assert.True(t, s.IsShared("d1"))
	assert.False(t, s.IsShared("d2"))
	assert.Equal(t, 3, s.UnreadCount())
	assert.EqualValues(t, 1, s.badge.started.Load())
}

func TestAppShell_SignInFailureToasts(t *testing.T) {
	s := newTestShell(t, nil)
	s.auth.signInErr = service.ErrLoginOnServer

	assert.Error(t, s.SignIn(context.Background(), "lena@example.com", "pw"))
	_, ok := s.CurrentUser()
	assert.False(t, ok)
	assert.Equal(t, ToastError, lastToast(t, s.AppShell).Level)
	assert.Zero(t, s.badge.started.Load())
}

func TestAppShell_SignOutClearsState(t *testing.T) {
	s := newTestShell(t, nil)
	ctx := context.Background()
	s.notifications.unread.Store(2)
	require.NoError(t, s.SignIn(ctx, "lena@example.com", "pw"))

	require.NoError(t, s.SignOut(ctx))

	_, ok := s.CurrentUser()
	assert.False(t, ok)
	assert.Empty(t, s.Dreams())
	assert.Empty(t, s.SharedWithMe())
	assert.Zero(t, s.UnreadCount())
	assert.NotZero(t, s.badge.stopped.Load())
}

func TestAppShell_SignOutDiscardsReloadInFlight(t *testing.T) {
	s := newTestShell(t, nil)
	ctx := context.Background()
	require.NoError(t, s.SignIn(ctx, "lena@example.com", "pw"))

	entered := make(chan struct{})
	release := make(chan struct{})
	s.dreams.list = func(context.Context, int32) ([]models.Dream, error) {
		close(entered)
		<-release
		return []models.Dream{{ID: "previous-user"}}, nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.ReloadDreams(ctx)
	}()
	<-entered

	require.NoError(t, s.SignOut(ctx))
	close(release)
	<-done

	assert.Empty(t, s.Dreams())
	assert.Empty(t, s.SharedWithMe())
}

// ── dreams ──────────────────────────────────────────────────────────────────

func TestAppShell_ReloadDreams_DiscardsStaleResult(t *testing.T) {
	s := newTestShell(t, nil)
	ctx := context.Background()
	require.NoError(t, s.SignIn(ctx, "lena@example.com", "pw"))

	entered := make(chan struct{})
	release := make(chan struct{})
	s.dreams.list = func(_ context.Context, call int32) ([]models.Dream, error) {
		if call == 2 {
			close(entered)
			<-release
			return []models.Dream{{ID: "old"}}, nil
		}
		return []models.Dream{{ID: "new"}}, nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.ReloadDreams(ctx)
	}()
	<-entered

	s.ReloadDreams(ctx)
	close(release)
	<-done

	dreams := s.Dreams()
	require.Len(t, dreams, 1)
	assert.Equal(t, "new", dreams[0].ID)
}

func TestAppShell_FailedReadShowsEmptyAndToasts(t *testing.T) {
	s := newTestShell(t, nil)
	ctx := context.Background()
	s.sharing.listErr = service.ErrBackendUnavailable
	s.dreams.list = func(context.Context, int32) ([]models.Dream, error) {
		return []models.Dream{}, service.ErrBackendUnavailable
	}

	require.NoError(t, s.SignIn(ctx, "lena@example.com", "pw"))

	assert.Empty(t, s.Dreams())
	assert.Empty(t, s.SharedWithMe())
	toasts := s.DrainToasts()
	require.Len(t, toasts, 2)
	assert.Contains(t, toasts[0].Message, "server unavailable")
}

func TestAppShell_FailedWriteToasts(t *testing.T) {
	s := newTestShell(t, nil)
	ctx := context.Background()
	require.NoError(t, s.SignIn(ctx, "lena@example.com", "pw"))
	s.DrainToasts()

	s.dreams.upsertErr = errors.Join(service.ErrValidation, validators.ErrEmptyTitle)
	_, err := s.SaveDream(ctx, models.Dream{})
	assert.ErrorIs(t, err, validators.ErrEmptyTitle)

	toast := lastToast(t, s.AppShell)
	assert.Equal(t, ToastError, toast.Level)
	assert.Contains(t, toast.Message, "save dream")
}

func TestAppShell_ShareMarksDream(t *testing.T) {
	s := newTestShell(t, nil)
	ctx := context.Background()
	require.NoError(t, s.SignIn(ctx, "lena@example.com", "pw"))

	require.NoError(t, s.Share(ctx, "d2", "u2"))
	assert.True(t, s.IsShared("d2"))
}

// ── notifications ───────────────────────────────────────────────────────────

func TestAppShell_OpenNotificationsClearsBadge(t *testing.T) {
	s := newTestShell(t, nil)
	ctx := context.Background()
	s.notifications.unread.Store(4)
	require.NoError(t, s.SignIn(ctx, "lena@example.com", "pw"))
	require.Equal(t, 4, s.UnreadCount())

	views := s.OpenNotifications(ctx)
	require.Len(t, views, 1)
	assert.True(t, views[0].IsRead)
	assert.Zero(t, s.UnreadCount())
}

func TestAppShell_RealtimeEventReloads(t *testing.T) {
	rt := &fakeRealtime{events: make(chan models.ChangeEvent)}
	s := newTestShell(t, rt)
	ctx := context.Background()
	require.NoError(t, s.SignIn(ctx, "lena@example.com", "pw"))
	before := s.dreams.calls.Load()

	s.notifications.unread.Store(1)
	rt.events <- models.ChangeEvent{Table: "notifications", Type: models.ChangeInsert, UserID: "u1"}

	assert.Eventually(t, func() bool {
		return s.dreams.calls.Load() > before && s.UnreadCount() == 1
	}, time.Second, 5*time.Millisecond)

	select {
	case <-s.Changed():
	case <-time.After(time.Second):
		t.Fatal("no change signal")
	}
}

func TestAppShell_DirectoryRefreshedOnSignInAndShareEvents(t *testing.T) {
	rt := &fakeRealtime{events: make(chan models.ChangeEvent)}
	s := newTestShell(t, rt)
	ctx := context.Background()

	require.NoError(t, s.SignIn(ctx, "lena@example.com", "pw"))
	assert.EqualValues(t, 1, s.directory.invalidated.Load())

	before := s.dreams.calls.Load()
	rt.events <- models.ChangeEvent{Table: (models.Share{}).TableName(), Type: models.ChangeInsert, UserID: "u1"}
	assert.Eventually(t, func() bool {
		return s.directory.invalidated.Load() == 2 && s.dreams.calls.Load() > before
	}, time.Second, 5*time.Millisecond)

	rt.events <- models.ChangeEvent{Table: (models.Dream{}).TableName(), Type: models.ChangeUpsert, UserID: "u1"}
	assert.Eventually(t, func() bool {
		return s.dreams.calls.Load() > before+1
	}, time.Second, 5*time.Millisecond)
	assert.EqualValues(t, 2, s.directory.invalidated.Load())
}

func TestAppShell_ServerVersion(t *testing.T) {
	s := newTestShell(t, nil)
	ctx := context.Background()

	version, ok := s.ServerVersion(ctx)
	assert.True(t, ok)
	assert.Equal(t, "1.0.0", version)
	assert.Empty(t, s.DrainToasts())

	s.serverInfo.err = fmt.Errorf("%w: offline", service.ErrBackendUnavailable)
	version, ok = s.ServerVersion(ctx)
	assert.False(t, ok)
	assert.Empty(t, version)
	assert.Equal(t, ToastError, lastToast(t, s.AppShell).Level)
}
