// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/store"
)

type themeService struct {
	settings store.DeviceStorage
	logger   *logger.Logger
}

func NewThemeService(settings store.DeviceStorage, logger *logger.Logger) ThemeService {
	return &themeService{settings: settings, logger: logger}
}

// IsDarkMode is false until a preference was saved.
func (s *themeService) IsDarkMode(ctx context.Context) bool {
	value, err := s.settings.Get(ctx, store.SettingDarkMode)
	if err != nil {
		if !errors.Is(err, store.ErrSettingNotFound) {
			s.logger.Err(err).Str("func", "*themeService.IsDarkMode").Msg("error reading theme")
		}
		return false
	}
	dark, _ := strconv.ParseBool(value)
	return dark
}

func (s *themeService) SetDarkMode(ctx context.Context, dark bool) error {
	if err := s.settings.Set(ctx, store.SettingDarkMode, strconv.FormatBool(dark)); err != nil {
		return fmt.Errorf("error saving theme: %w", err)
	}
	return nil
}

func (s *themeService) Toggle(ctx context.Context) (bool, error) {
	dark := !s.IsDarkMode(ctx)
	if err := s.SetDarkMode(ctx, dark); err != nil {
		return !dark, err
	}
	return dark, nil
}
