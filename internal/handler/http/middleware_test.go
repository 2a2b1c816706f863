// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/service"
	"github.com/MKhiriev/go-dream-journal/internal/store"
	"github.com/MKhiriev/go-dream-journal/internal/utils"
	"github.com/MKhiriev/go-dream-journal/models"
)

// ---- auth ----

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid", header: "Bearer abc", wantToken: "abc"},
		{name: "case insensitive scheme", header: "bearer abc", wantToken: "abc"},
		{name: "no token", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "blank token", header: "Bearer   ", wantErr: ErrInvalidAuthorizationHeader},
		{name: "other scheme", header: "Basic abc", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, got)
		})
	}
}

func TestAuth_StoresUserID(t *testing.T) {
	h := NewHandler(&service.Services{AuthService: &mockAuthService{}}, logger.Nop())

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = utils.GetUserIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+testToken)
	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testUserID, gotUserID)
}

func TestAuth_RejectsInvalidToken(t *testing.T) {
	h := NewHandler(&service.Services{AuthService: &mockAuthService{}}, logger.Nop())
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { t.Fatal("next must not run") })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ---- logging ----

func TestWithLogging_WritesAccessLine(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(newTestServices(), &logger.Logger{Logger: zerolog.New(&buf)})

	handler := h.withTraceID(h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("tea"))
	})))

	req := httptest.NewRequest(http.MethodGet, "/brew", nil)
	req.Header.Set(traceIDHeader, "t-1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	line := buf.String()
	assert.Contains(t, line, `"uri":"/brew"`)
	assert.Contains(t, line, `"status":418`)
	assert.Contains(t, line, `"size":3`)
	assert.Contains(t, line, `"trace_id":"t-1"`)
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)
	_, _ = rw.Write([]byte("ok"))

	assert.Equal(t, http.StatusCreated, rw.status)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 2, rw.size)
}

func TestResponseWriter_HijackUnsupported(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}
	_, _, err := rw.Hijack()
	assert.Error(t, err)
}

// ---- gzip ----

func TestWithGZip_CompressesResponse(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.UnreadCount{Count: 7}, http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":7}`, string(body))
}

func TestWithGZip_DecompressesRequest(t *testing.T) {
	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	_, _ = zw.Write([]byte(`{"title":"Flight"}`))
	require.NoError(t, zw.Close())

	var got string
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		got = string(b)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", &compressed)
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, `{"title":"Flight"}`, got)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
}

func TestWithGZip_InvalidRequestBody(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { t.Fatal("next must not run") }))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("plain"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---- error mapping ----

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("x: %w", service.ErrInvalidDataProvided), http.StatusBadRequest},
		{service.ErrWrongPassword, http.StatusUnauthorized},
		{service.ErrValidationNoUserID, http.StatusUnauthorized},
		{fmt.Errorf("x: %w", store.ErrDreamNotOwned), http.StatusForbidden},
		{store.ErrDreamNotFound, http.StatusNotFound},
		{store.ErrNotificationNotFound, http.StatusNotFound},
		{store.ErrLoginAlreadyExists, http.StatusConflict},
		{fmt.Errorf("%w: %w", store.ErrExecutingQuery, context.DeadlineExceeded), http.StatusInternalServerError},
		{errBoom, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError_HidesInternalCause(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, fmt.Errorf("%w: password=hunter2", store.ErrExecutingQuery))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hunter2")
}
