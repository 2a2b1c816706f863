// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-dream-journal/internal/app"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/service"
	"github.com/MKhiriev/go-dream-journal/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrValidationNoUserID:      http.StatusUnauthorized,
	service.ErrVersionIsNotSpecified:   http.StatusBadRequest,

	store.ErrLoginAlreadyExists:   http.StatusConflict,
	store.ErrNoUserWasFound:       http.StatusNotFound,
	store.ErrDreamNotFound:        http.StatusNotFound,
	store.ErrDreamNotOwned:        http.StatusForbidden,
	store.ErrNotificationNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
	store.ErrDecodingTags:         http.StatusInternalServerError,
}

// errorMessages are the bodies sent for client errors. Server errors never
// leak their cause.
var errorMessages = map[int]string{
	http.StatusBadRequest:          app.MsgInvalidDataProvided,
	http.StatusUnauthorized:        app.MsgInvalidCredentials,
	http.StatusForbidden:           app.MsgDreamNotOwned,
	http.StatusNotFound:            app.MsgNotFound,
	http.StatusConflict:            app.MsgEmailAlreadyRegistered,
	http.StatusInternalServerError: app.MsgInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	msg, ok := errorMessages[status]
	if !ok {
		msg = http.StatusText(status)
	}
	http.Error(w, msg, status)
}

// fail logs err under funcName and writes the mapped status.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)
	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
	writeError(w, err)
}

// nonNil makes empty listings encode as [] instead of null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
