// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"time"

	"github.com/MKhiriev/go-dream-journal/internal/service"
)

type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastError
)

// Toast is a short message shown to the user once.
type Toast struct {
	Level   ToastLevel
	Message string
	At      time.Time
}

// maxToasts bounds the queue when the UI does not drain it.
const maxToasts = 20

// toastMessage turns a service error into text for the user.
func toastMessage(action string, err error) string {
	switch {
	case errors.Is(err, service.ErrValidation):
		return action + ": " + err.Error()
	case errors.Is(err, service.ErrNotAuthenticated):
		return action + ": please sign in again"
	case errors.Is(err, service.ErrForbidden):
		return action + ": you can only change your own dreams"
	case errors.Is(err, service.ErrTooManyAttempts):
		return action + ": too many attempts, wait a minute"
	case errors.Is(err, service.ErrBackendUnavailable):
		return action + ": server unavailable"
	default:
		return action + ": " + err.Error()
	}
}
