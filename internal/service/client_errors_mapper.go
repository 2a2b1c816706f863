// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-dream-journal/internal/adapter"
	"github.com/MKhiriev/go-dream-journal/internal/app"
	"github.com/MKhiriev/go-dream-journal/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The transport error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var mapped error
	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		mapped = ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrUnauthorized):
		mapped = ErrNotAuthenticated

	case errors.Is(err, adapter.ErrForbidden):
		mapped = ErrForbidden

	case errors.Is(err, adapter.ErrNotFound):
		mapped = ErrDreamNotFound

	case errors.Is(err, adapter.ErrTooManyRequests):
		mapped = ErrTooManyAttempts

	case errors.Is(err, adapter.ErrConflict) && extractBody(err) == app.MsgEmailAlreadyRegistered:
		mapped = store.ErrLoginAlreadyExists

	default:
		mapped = ErrBackendUnavailable
	}

	return fmt.Errorf("%w: %w", mapped, err)
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return strings.TrimSpace(msg[idx+2:])
	}
	return msg
}
