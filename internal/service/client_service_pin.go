// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/MKhiriev/go-dream-journal/internal/config"
	"github.com/MKhiriev/go-dream-journal/internal/crypto"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/store"
	"github.com/MKhiriev/go-dream-journal/models"
)

// MinPinLength is the shortest accepted PIN, counted in characters.
const MinPinLength = 4

type pinGate struct {
	settings store.DeviceStorage
	hasher   crypto.PinHasher

	requireVerifyOnDisable bool

	logger *logger.Logger
}

func NewPinGate(settings store.DeviceStorage, hasher crypto.PinHasher, cfg config.ClientApp, logger *logger.Logger) PinGate {
	return &pinGate{
		settings:               settings,
		hasher:                 hasher,
		requireVerifyOnDisable: cfg.PinDisableRequiresVerify,
		logger:                 logger,
	}
}

func (g *pinGate) SetPin(ctx context.Context, pin string) error {
	if utf8.RuneCountInString(pin) < MinPinLength {
		return fmt.Errorf("%w: %w", ErrValidation, ErrPinTooShort)
	}

	digest, err := g.hasher.Hash(pin)
	if err != nil {
		g.logger.Err(err).Str("func", "*pinGate.SetPin").Msg("error hashing PIN")
		return fmt.Errorf("error hashing PIN: %w", err)
	}

	if err = g.settings.Set(ctx, store.SettingPinHash, digest); err != nil {
		return fmt.Errorf("error saving PIN: %w", err)
	}
	if err = g.settings.Set(ctx, store.SettingPinEnabled, strconv.FormatBool(true)); err != nil {
		return fmt.Errorf("error enabling PIN: %w", err)
	}
	return nil
}

func (g *pinGate) Disable(ctx context.Context, pin string) error {
	if g.requireVerifyOnDisable && !g.Verify(ctx, pin) {
		return ErrPinVerificationFailed
	}

	if err := g.settings.Delete(ctx, store.SettingPinHash, store.SettingPinEnabled); err != nil {
		return fmt.Errorf("error clearing PIN: %w", err)
	}
	return nil
}

func (g *pinGate) Verify(ctx context.Context, pin string) bool {
	record, ok := g.record(ctx)
	if !ok || !record.Enabled || record.PinHash == "" {
		return false
	}

	match, err := g.hasher.Verify(pin, record.PinHash)
	if err != nil {
		g.logger.Err(err).Str("func", "*pinGate.Verify").Msg("stored PIN digest is malformed")
		return false
	}
	return match
}

func (g *pinGate) IsEnabled(ctx context.Context) bool {
	record, ok := g.record(ctx)
	return ok && record.Enabled
}

// record loads the persisted PIN state. A missing key means no record.
func (g *pinGate) record(ctx context.Context) (models.PinRecord, bool) {
	enabled, err := g.settings.Get(ctx, store.SettingPinEnabled)
	if err != nil {
		if !errors.Is(err, store.ErrSettingNotFound) {
			g.logger.Err(err).Str("func", "*pinGate.record").Msg("error reading PIN state")
		}
		return models.PinRecord{}, false
	}

	hash, err := g.settings.Get(ctx, store.SettingPinHash)
	if err != nil {
		if !errors.Is(err, store.ErrSettingNotFound) {
			g.logger.Err(err).Str("func", "*pinGate.record").Msg("error reading PIN digest")
		}
		return models.PinRecord{}, false
	}

	on, _ := strconv.ParseBool(enabled)
	return models.PinRecord{PinHash: hash, Enabled: on}, true
}
