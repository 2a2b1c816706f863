// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dream-journal/internal/service"
	"github.com/MKhiriev/go-dream-journal/internal/store"
	"github.com/MKhiriev/go-dream-journal/models"
)

func TestCreateShare(t *testing.T) {
	tests := []struct {
		name       string
		result     models.ShareResult
		err        error
		wantStatus int
	}{
		{name: "new share", result: models.ShareResult{Created: true}, wantStatus: http.StatusCreated},
		{name: "repeated share is ignored", result: models.ShareResult{Created: false}, wantStatus: http.StatusOK},
		{name: "dream owned by someone else", err: fmt.Errorf("share failed: %w", store.ErrDreamNotOwned), wantStatus: http.StatusForbidden},
		{name: "missing dream", err: store.ErrDreamNotFound, wantStatus: http.StatusNotFound},
		{name: "unknown recipient", err: fmt.Errorf("share failed: %w", store.ErrNoUserWasFound), wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			svcs.ShareService = &mockShareService{shareFn: func(_ context.Context, s models.Share) (models.ShareResult, error) {
				assert.Equal(t, testUserID, s.SharedBy)
				assert.Equal(t, "d1", s.DreamID)
				assert.Equal(t, "u2", s.SharedWith)
				return tt.result, tt.err
			}}

			// shared_by in the body is overridden by the caller
			body := models.Share{DreamID: "d1", SharedWith: "u2", SharedBy: "forged"}
			rec := serve(t, svcs, newAuthedRequest(t, http.MethodPost, "/api/shares", body))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.err == nil {
				assert.Equal(t, tt.result, decodeBody[models.ShareResult](t, rec))
			}
		})
	}
}

func TestShares_MalformedIDsAreBadRequests(t *testing.T) {
	const validID = "0190a1b2-c3d4-7e5f-8a9b-0000000000d1"

	svcs := newTestServices()
	svcs.ShareService = service.NewShareValidationService().Wrap(&mockShareService{
		shareFn: func(context.Context, models.Share) (models.ShareResult, error) {
			t.Fatal("malformed share reached the service")
			return models.ShareResult{}, nil
		},
		unshareFn: func(context.Context, models.Share) error {
			t.Fatal("malformed unshare reached the service")
			return nil
		},
	})

	tests := []struct {
		name string
		req  *http.Request
	}{
		{name: "share with malformed dream id", req: newAuthedRequest(t, http.MethodPost, "/api/shares", models.Share{DreamID: "x", SharedWith: validID})},
		{name: "share with malformed recipient", req: newAuthedRequest(t, http.MethodPost, "/api/shares", models.Share{DreamID: validID, SharedWith: "bob"})},
		{name: "unshare with malformed dream id", req: newAuthedRequest(t, http.MethodDelete, "/api/shares?dream_id=x&shared_with="+validID, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, svcs, tt.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestDeleteShare(t *testing.T) {
	svcs := newTestServices()
	var got models.Share
	svcs.ShareService = &mockShareService{unshareFn: func(_ context.Context, s models.Share) error {
		got = s
		return nil
	}}

	rec := serve(t, svcs, newAuthedRequest(t, http.MethodDelete, "/api/shares?dream_id=d1&shared_with=u2", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, models.Share{DreamID: "d1", SharedWith: "u2", SharedBy: testUserID}, got)
}

func TestListShares(t *testing.T) {
	svcs := newTestServices()
	svcs.ShareService = &mockShareService{
		listReceivedFn: func(_ context.Context, userID string) ([]models.Share, error) {
			return []models.Share{{DreamID: "d1", SharedWith: userID}}, nil
		},
		listSentFn: func(context.Context, string) ([]models.Share, error) {
			return nil, errBoom
		},
	}

	rec := serve(t, svcs, newAuthedRequest(t, http.MethodGet, "/api/shares/received", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testUserID, decodeBody[[]models.Share](t, rec)[0].SharedWith)

	rec = serve(t, svcs, newAuthedRequest(t, http.MethodGet, "/api/shares/sent", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
