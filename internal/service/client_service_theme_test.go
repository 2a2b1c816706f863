// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/mock"
	"github.com/MKhiriev/go-dream-journal/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestThemeService_ToggleRoundTrip(t *testing.T) {
	svc := NewThemeService(newMemorySettings(), logger.Nop())
	ctx := context.Background()

	assert.False(t, svc.IsDarkMode(ctx), "light by default")

	dark, err := svc.Toggle(ctx)
	require.NoError(t, err)
	assert.True(t, dark)
	assert.True(t, svc.IsDarkMode(ctx))

	require.NoError(t, svc.SetDarkMode(ctx, false))
	assert.False(t, svc.IsDarkMode(ctx))
}

func TestThemeService_SaveFailureKeepsMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := mock.NewMockDeviceStorage(ctrl)
	svc := NewThemeService(settings, logger.Nop())
	ctx := context.Background()

	settings.EXPECT().Get(ctx, store.SettingDarkMode).Return("true", nil)
	settings.EXPECT().Set(ctx, store.SettingDarkMode, "false").Return(errors.New("read-only"))

	dark, err := svc.Toggle(ctx)
	assert.Error(t, err)
	assert.True(t, dark)
}
