// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-dream-journal/internal/adapter"
	"github.com/MKhiriev/go-dream-journal/internal/config"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/service"
	"github.com/MKhiriev/go-dream-journal/internal/workers"
	"github.com/MKhiriev/go-dream-journal/models"
)

// AppShell holds the client state rendered by the UI. All methods are safe
// for concurrent use; the realtime worker reloads in the background while
// the UI reads.
type AppShell struct {
	services      *service.ClientServices
	realtime      adapter.RealtimeSubscriber
	badgeInterval time.Duration
	now           func() time.Time

	mu        sync.RWMutex
	locked    bool
	user      models.User
	signedIn  bool
	filter    models.DreamFilter
	dreams    []models.Dream
	shared    []models.SharedDream
	ownShared map[string]struct{}
	unread    int
	toasts    []Toast

	// reloadSeq is issued before every reload; applied is the newest
	// sequence whose result was stored.
	reloadSeq atomic.Uint64
	applied   uint64

	session         *workers.Workers
	unsubscribeAuth func()
	changed         chan struct{}

	logger *logger.Logger
}

// NewAppShell creates a shell over services. realtime may be nil, in which
// case the shell only refreshes on user actions and the badge poll.
func NewAppShell(services *service.ClientServices, realtime adapter.RealtimeSubscriber, cfg config.ClientWorkers, logger *logger.Logger) *AppShell {
	s := &AppShell{
		services:      services,
		realtime:      realtime,
		badgeInterval: cfg.BadgeInterval,
		now:           time.Now,
		ownShared:     map[string]struct{}{},
		dreams:        []models.Dream{},
		shared:        []models.SharedDream{},
		changed:       make(chan struct{}, 1),
		logger:        logger,
	}
	s.unsubscribeAuth = services.AuthService.OnAuthStateChange(s.onAuthStateChange)
	return s
}

// Changed delivers a signal after background work changed the state. The
// channel holds at most one pending signal.
func (s *AppShell) Changed() <-chan struct{} {
	return s.changed
}

func (s *AppShell) notifyChanged() {
	select {
	case s.changed <- struct{}{}:
	default:
	}
}

// ── lifecycle ───────────────────────────────────────────────────────────────

// Start locks the shell when a PIN is set and restores a persisted session.
func (s *AppShell) Start(ctx context.Context) {
	locked := s.services.PinGate.IsEnabled(ctx)
	s.mu.Lock()
	s.locked = locked
	s.mu.Unlock()

	if _, ok := s.services.AuthService.Restore(ctx); ok {
		s.startSession(ctx)
	}
}

// Close stops the background workers.
func (s *AppShell) Close() {
	s.stopSession()
	if s.unsubscribeAuth != nil {
		s.unsubscribeAuth()
	}
}

func (s *AppShell) onAuthStateChange(user models.User, signedIn bool) {
	s.mu.Lock()
	s.user = user
	s.signedIn = signedIn
	if !signedIn {
		s.user = models.User{}
		s.dreams = []models.Dream{}
		s.shared = []models.SharedDream{}
		s.ownShared = map[string]struct{}{}
		s.unread = 0
		// reloads still in flight belong to the previous user
		s.applied = s.reloadSeq.Add(1)
	}
	s.mu.Unlock()
	s.notifyChanged()
}

// startSession loads every cache and starts the badge and realtime workers
// for the signed-in user.
func (s *AppShell) startSession(ctx context.Context) {
	user, ok := s.CurrentUser()
	if !ok {
		return
	}

	s.services.UserDirectory.Invalidate()
	s.ReloadDreams(ctx)
	s.refreshUnread(ctx)

	group := []workers.Worker{&badgeWorker{
		job:      s.services.BadgeJob,
		ctx:      ctx,
		userID:   user.ID,
		interval: s.badgeInterval,
		report:   s.setUnread,
	}}
	if s.realtime != nil {
		token := s.services.AuthService.Token()
		group = append(group, workers.NewLoop(ctx, func(ctx context.Context) {
			err := s.realtime.Subscribe(ctx, token, func(event models.ChangeEvent) {
				s.handleChange(ctx, event)
			})
			if err != nil && ctx.Err() == nil {
				s.logger.Err(err).Str("func", "*AppShell.startSession").Msg("realtime subscription ended")
				s.pushToast(ToastError, "live updates stopped: "+err.Error())
			}
		}))
	}
	session := workers.NewWorkers(group...)

	s.mu.Lock()
	previous := s.session
	s.session = session
	s.mu.Unlock()
	if previous != nil {
		previous.Stop()
	}
	session.Run()
}

func (s *AppShell) stopSession() {
	s.mu.Lock()
	session := s.session
	s.session = nil
	s.mu.Unlock()
	if session != nil {
		session.Stop()
	}
}

// badgeWorker runs the badge refresh job as part of a session's worker group.
type badgeWorker struct {
	job      service.BadgeRefreshJob
	ctx      context.Context
	userID   string
	interval time.Duration
	report   func(int)
}

func (w *badgeWorker) Run()  { w.job.Start(w.ctx, w.userID, w.interval, w.report) }
func (w *badgeWorker) Stop() { w.job.Stop() }

func (s *AppShell) handleChange(ctx context.Context, event models.ChangeEvent) {
	s.logger.Debug().Str("table", event.Table).Str("type", string(event.Type)).Str("record_id", event.RecordID).Msg("change received")

	switch event.Table {
	case (models.Notification{}).TableName():
		// a new notification may come from a user this client has not seen
		s.services.UserDirectory.Invalidate()
		s.refreshUnread(ctx)
	case (models.Share{}).TableName():
		s.services.UserDirectory.Invalidate()
	}
	s.ReloadDreams(ctx)
	s.notifyChanged()
}

// ── lock ────────────────────────────────────────────────────────────────────

func (s *AppShell) Locked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locked
}

// Unlock opens the shell when pin verifies. A failed attempt keeps it
// locked; there is no attempt limit.
func (s *AppShell) Unlock(ctx context.Context, pin string) bool {
	if !s.services.PinGate.Verify(ctx, pin) {
		s.pushToast(ToastError, "wrong PIN")
		return false
	}
	s.mu.Lock()
	s.locked = false
	s.mu.Unlock()
	return true
}

// Lock locks the shell again when a PIN is set.
func (s *AppShell) Lock(ctx context.Context) {
	if !s.services.PinGate.IsEnabled(ctx) {
		return
	}
	s.mu.Lock()
	s.locked = true
	s.mu.Unlock()
}

func (s *AppShell) PinEnabled(ctx context.Context) bool {
	return s.services.PinGate.IsEnabled(ctx)
}

// SetPin stores pin after checking that confirm repeats it.
func (s *AppShell) SetPin(ctx context.Context, pin, confirm string) error {
	if pin != confirm {
		err := fmt.Errorf("%w: %w", service.ErrValidation, service.ErrPinMismatch)
		s.pushToast(ToastError, toastMessage("set PIN", err))
		return err
	}
	if err := s.services.PinGate.SetPin(ctx, pin); err != nil {
		s.pushToast(ToastError, toastMessage("set PIN", err))
		return err
	}
	s.pushToast(ToastInfo, "PIN enabled")
	return nil
}

func (s *AppShell) DisablePin(ctx context.Context, pin string) error {
	if err := s.services.PinGate.Disable(ctx, pin); err != nil {
		s.pushToast(ToastError, toastMessage("disable PIN", err))
		return err
	}
	s.pushToast(ToastInfo, "PIN disabled")
	return nil
}

// ── account ─────────────────────────────────────────────────────────────────

func (s *AppShell) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.signedIn
}

func (s *AppShell) SignIn(ctx context.Context, email, password string) error {
	if _, err := s.services.AuthService.SignIn(ctx, email, password); err != nil {
		s.pushToast(ToastError, toastMessage("sign in", err))
		return err
	}
	s.startSession(ctx)
	return nil
}

func (s *AppShell) SignUp(ctx context.Context, email, password, username string) error {
	if _, err := s.services.AuthService.SignUp(ctx, email, password, username); err != nil {
		s.pushToast(ToastError, toastMessage("sign up", err))
		return err
	}
	s.startSession(ctx)
	return nil
}

func (s *AppShell) SignOut(ctx context.Context) error {
	s.stopSession()
	if err := s.services.AuthService.SignOut(ctx); err != nil {
		s.pushToast(ToastError, toastMessage("sign out", err))
		return err
	}
	return nil
}

// ── dreams ──────────────────────────────────────────────────────────────────

// ReloadDreams refreshes the own-dream list, the shared-with-me list and the
// own-shared ids. A result is stored only when no newer reload has already
// stored its own, so overlapping reloads cannot roll the lists back.
func (s *AppShell) ReloadDreams(ctx context.Context) {
	seq := s.reloadSeq.Add(1)

	user, ok := s.CurrentUser()
	if !ok {
		return
	}

	s.mu.RLock()
	filter := s.filter
	s.mu.RUnlock()

	dreams, err := s.services.DreamStore.List(ctx, filter)
	if err != nil {
		s.pushToast(ToastError, toastMessage("load dreams", err))
	}
	shared, err := s.services.SharingEngine.ListSharedWithMe(ctx, user.ID)
	if err != nil {
		s.pushToast(ToastError, toastMessage("load shared dreams", err))
	}
	ownShared, err := s.services.SharingEngine.ListOwnSharedDreamIDs(ctx, user.ID)
	if err != nil {
		s.pushToast(ToastError, toastMessage("load shares", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.applied {
		s.logger.Debug().Uint64("seq", seq).Uint64("applied", s.applied).Msg("discarding stale reload")
		return
	}
	s.applied = seq
	s.dreams = dreams
	s.shared = shared
	s.ownShared = ownShared
}

// SetFilter replaces the list filter and reloads.
func (s *AppShell) SetFilter(ctx context.Context, filter models.DreamFilter) {
	s.mu.Lock()
	s.filter = filter
	s.mu.Unlock()
	s.ReloadDreams(ctx)
}

func (s *AppShell) Filter() models.DreamFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// Dreams returns a copy of the cached own dreams.
func (s *AppShell) Dreams() []models.Dream {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Dream{}, s.dreams...)
}

// SharedWithMe returns a copy of the cached dreams shared with the user.
func (s *AppShell) SharedWithMe() []models.SharedDream {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.SharedDream{}, s.shared...)
}

// IsShared reports whether the user shared dreamID with anybody.
func (s *AppShell) IsShared(dreamID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ownShared[dreamID]
	return ok
}

func (s *AppShell) GetDream(ctx context.Context, dreamID string) (models.Dream, bool) {
	return s.services.DreamStore.Get(ctx, dreamID)
}

func (s *AppShell) SaveDream(ctx context.Context, dream models.Dream) (models.Dream, error) {
	saved, err := s.services.DreamStore.Upsert(ctx, dream)
	if err != nil {
		s.pushToast(ToastError, toastMessage("save dream", err))
		return models.Dream{}, err
	}
	s.ReloadDreams(ctx)
	s.pushToast(ToastInfo, "dream saved")
	return saved, nil
}

func (s *AppShell) DeleteDream(ctx context.Context, dreamID string) error {
	if err := s.services.DreamStore.Delete(ctx, dreamID); err != nil {
		s.pushToast(ToastError, toastMessage("delete dream", err))
		return err
	}
	s.ReloadDreams(ctx)
	s.pushToast(ToastInfo, "dream deleted")
	return nil
}

// ── sharing ─────────────────────────────────────────────────────────────────

func (s *AppShell) ShareableUsers(ctx context.Context) []models.ShareableUser {
	user, _ := s.CurrentUser()
	users, err := s.services.SharingEngine.ListShareableUsers(ctx, user.ID)
	if err != nil {
		s.pushToast(ToastError, toastMessage("load users", err))
	}
	return users
}

func (s *AppShell) Share(ctx context.Context, dreamID, targetUserID string) error {
	if err := s.services.SharingEngine.Share(ctx, dreamID, targetUserID); err != nil {
		s.pushToast(ToastError, toastMessage("share dream", err))
		return err
	}
	s.mu.Lock()
	s.ownShared[dreamID] = struct{}{}
	s.mu.Unlock()
	s.pushToast(ToastInfo, "dream shared")
	return nil
}

func (s *AppShell) Unshare(ctx context.Context, dreamID, targetUserID string) error {
	if err := s.services.SharingEngine.Unshare(ctx, dreamID, targetUserID); err != nil {
		s.pushToast(ToastError, toastMessage("unshare dream", err))
		return err
	}
	s.ReloadDreams(ctx)
	return nil
}

// ── notifications ───────────────────────────────────────────────────────────

func (s *AppShell) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unread
}

// OpenNotifications returns the feed marked read and collapses the badge.
func (s *AppShell) OpenNotifications(ctx context.Context) []models.NotificationView {
	user, ok := s.CurrentUser()
	if !ok {
		return []models.NotificationView{}
	}

	views, err := s.services.NotificationEngine.Open(ctx, user.ID)
	if err != nil {
		s.pushToast(ToastError, toastMessage("load notifications", err))
		return views
	}
	s.setUnread(0)
	return views
}

func (s *AppShell) refreshUnread(ctx context.Context) {
	user, ok := s.CurrentUser()
	if !ok {
		return
	}
	count, err := s.services.NotificationEngine.UnreadCount(ctx, user.ID)
	if err != nil {
		return
	}
	s.setUnread(count)
}

func (s *AppShell) setUnread(count int) {
	s.mu.Lock()
	changed := s.unread != count
	s.unread = count
	s.mu.Unlock()
	if changed {
		s.notifyChanged()
	}
}

// ── settings ────────────────────────────────────────────────────────────────

func (s *AppShell) DarkMode(ctx context.Context) bool {
	return s.services.ThemeService.IsDarkMode(ctx)
}

func (s *AppShell) ToggleTheme(ctx context.Context) bool {
	dark, err := s.services.ThemeService.Toggle(ctx)
	if err != nil {
		s.pushToast(ToastError, toastMessage("save theme", err))
	}
	return dark
}

// ServerVersion is false when the dream-server could not be reached.
func (s *AppShell) ServerVersion(ctx context.Context) (string, bool) {
	version, err := s.services.ServerInfo.Version(ctx)
	if err != nil {
		s.pushToast(ToastError, toastMessage("load server version", err))
		return "", false
	}
	return version, true
}

func (s *AppShell) Export(ctx context.Context, path string) error {
	if err := s.services.BackupService.ExportToFile(ctx, path); err != nil {
		s.pushToast(ToastError, toastMessage("export", err))
		return err
	}
	s.pushToast(ToastInfo, "exported to "+path)
	return nil
}

// Import reports partial counts in the toast when a record fails.
func (s *AppShell) Import(ctx context.Context, path string) (models.ImportResult, error) {
	result, err := s.services.BackupService.ImportFromFile(ctx, path)
	if result.Imported+result.Updated > 0 {
		s.ReloadDreams(ctx)
	}
	if err != nil {
		msg := toastMessage("import", err)
		if result.Imported+result.Updated > 0 {
			msg = fmt.Sprintf("%s (imported %d, updated %d)", msg, result.Imported, result.Updated)
		}
		s.pushToast(ToastError, msg)
		return result, err
	}
	s.pushToast(ToastInfo, fmt.Sprintf("imported %d, updated %d", result.Imported, result.Updated))
	return result, nil
}

// ── toasts ──────────────────────────────────────────────────────────────────

func (s *AppShell) pushToast(level ToastLevel, message string) {
	s.mu.Lock()
	s.toasts = append(s.toasts, Toast{Level: level, Message: message, At: s.now()})
	if len(s.toasts) > maxToasts {
		s.toasts = s.toasts[len(s.toasts)-maxToasts:]
	}
	s.mu.Unlock()
	s.notifyChanged()
}

// DrainToasts returns the queued toasts, oldest first, and empties the queue.
func (s *AppShell) DrainToasts() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	toasts := s.toasts
	s.toasts = nil
	return toasts
}
