// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// Keys of the device settings store.
const (
	SettingPinHash    = "pin_hash"
	SettingPinEnabled = "pin_enabled"
	SettingDarkMode   = "dark_mode"
	SettingSession    = "session"
)

// DeviceStorage is the client's local key/value store. It survives restarts
// and is never synchronised with the server.
type DeviceStorage interface {
	// Get returns ErrSettingNotFound for a missing key.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Delete removes the keys; missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}
