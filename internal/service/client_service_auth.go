// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-dream-journal/internal/adapter"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/store"
	"github.com/MKhiriev/go-dream-journal/models"
)

type clientAuthService struct {
	adapter  adapter.ServerAdapter
	settings store.DeviceStorage

	mu        sync.RWMutex
	session   *models.Session
	listeners map[int]func(models.User, bool)
	nextID    int

	logger *logger.Logger
}

func NewClientAuthService(settings store.DeviceStorage, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:   serverAdapter,
		settings:  settings,
		listeners: map[int]func(models.User, bool){},
		logger:    logger,
	}
}

func (a *clientAuthService) SignUp(ctx context.Context, email, password, username string) (models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, ErrInvalidDataProvided)
	}

	session, err := a.adapter.Register(ctx, models.User{
		Email:    email,
		Password: password,
		Username: strings.TrimSpace(username),
	})
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.SignUp").Msg("registration failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	a.start(ctx, session)
	return session.User, nil
}

func (a *clientAuthService) SignIn(ctx context.Context, email, password string) (models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, ErrInvalidDataProvided)
	}

	session, err := a.adapter.Login(ctx, models.User{Email: email, Password: password})
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.SignIn").Msg("login failed")
		if errors.Is(err, adapter.ErrUnauthorized) {
			return models.User{}, fmt.Errorf("%w: %w", ErrLoginOnServer, ErrWrongPassword)
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	a.start(ctx, session)
	return session.User, nil
}

// SignOut forgets the session locally; the server keeps no session state.
func (a *clientAuthService) SignOut(ctx context.Context) error {
	a.mu.Lock()
	previous := a.session
	a.session = nil
	a.mu.Unlock()

	a.adapter.SetToken("")

	err := a.settings.Delete(ctx, store.SettingSession)
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.SignOut").Msg("error clearing session")
		err = fmt.Errorf("error clearing session: %w", err)
	}

	if previous != nil {
		a.notify(previous.User, false)
	}
	return err
}

func (a *clientAuthService) CurrentUser() (models.User, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.session == nil {
		return models.User{}, false
	}
	return a.session.User, true
}

func (a *clientAuthService) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.session == nil {
		return ""
	}
	return a.session.Token
}

func (a *clientAuthService) Restore(ctx context.Context) (models.User, bool) {
	raw, err := a.settings.Get(ctx, store.SettingSession)
	if err != nil {
		if !errors.Is(err, store.ErrSettingNotFound) {
			a.logger.Err(err).Str("func", "*clientAuthService.Restore").Msg("error reading session")
		}
		return models.User{}, false
	}

	var session models.Session
	if err = json.Unmarshal([]byte(raw), &session); err != nil || session.Token == "" {
		a.logger.Warn().Err(err).Str("func", "*clientAuthService.Restore").Msg("dropping malformed session")
		_ = a.settings.Delete(ctx, store.SettingSession)
		return models.User{}, false
	}

	a.adapter.SetToken(session.Token)
	user, err := a.adapter.Me(ctx)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			a.logger.Info().Str("func", "*clientAuthService.Restore").Msg("stored session expired")
			a.adapter.SetToken("")
			_ = a.settings.Delete(ctx, store.SettingSession)
			return models.User{}, false
		}
		// offline: keep the stored identity, the token is checked again on
		// the next request
		a.logger.Warn().Err(err).Str("func", "*clientAuthService.Restore").Msg("could not confirm session")
		user = session.User
	}

	session.User = user
	a.start(ctx, session)
	return user, true
}

func (a *clientAuthService) OnAuthStateChange(cb func(user models.User, signedIn bool)) func() {
	a.mu.Lock()
	id := a.nextID
	a.nextID++
	a.listeners[id] = cb
	a.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			a.mu.Lock()
			delete(a.listeners, id)
			a.mu.Unlock()
		})
	}
}

// start makes session current, persists it and notifies listeners. A failed
// write only costs the session on the next restart.
func (a *clientAuthService) start(ctx context.Context, session models.Session) {
	session.User.Password = ""

	a.mu.Lock()
	a.session = &session
	a.mu.Unlock()

	a.adapter.SetToken(session.Token)

	if raw, err := json.Marshal(session); err == nil {
		if err = a.settings.Set(ctx, store.SettingSession, string(raw)); err != nil {
			a.logger.Err(err).Str("func", "*clientAuthService.start").Msg("error persisting session")
		}
	}

	a.notify(session.User, true)
}

func (a *clientAuthService) notify(user models.User, signedIn bool) {
	a.mu.RLock()
	listeners := make([]func(models.User, bool), 0, len(a.listeners))
	for _, cb := range a.listeners {
		listeners = append(listeners, cb)
	}
	a.mu.RUnlock()

	for _, cb := range listeners {
		cb(user, signedIn)
	}
}
