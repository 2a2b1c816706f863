// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dream-journal/internal/service"
	"github.com/MKhiriev/go-dream-journal/internal/store"
	"github.com/MKhiriev/go-dream-journal/models"
)

func TestListDreams_PassesFilterAndOwner(t *testing.T) {
	svcs := newTestServices()
	svcs.DreamService = &mockDreamService{listOwnDreamsFn: func(_ context.Context, ownerID string, f models.DreamFilter) ([]models.Dream, error) {
		assert.Equal(t, testUserID, ownerID)
		assert.Equal(t, "sea", f.Query)
		assert.Equal(t, models.MoodHappy, f.Mood)
		assert.Equal(t, []string{"flying", "night"}, f.Tags)
		require.NotNil(t, f.DateFrom)
		assert.Equal(t, 2024, f.DateFrom.Year())
		return []models.Dream{{ID: "d1", Title: "Flight"}}, nil
	}}

	rec := serve(t, svcs, newAuthedRequest(t, http.MethodGet, "/api/dreams?q=sea&mood=happy&tags=flying,night&dateFrom=2024-01-01", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	dreams := decodeBody[[]models.Dream](t, rec)
	require.Len(t, dreams, 1)
	assert.Equal(t, "Flight", dreams[0].Title)
}

func TestListDreams_EmptyIsArray(t *testing.T) {
	svcs := newTestServices()
	svcs.DreamService = &mockDreamService{listOwnDreamsFn: func(context.Context, string, models.DreamFilter) ([]models.Dream, error) {
		return nil, nil
	}}

	rec := serve(t, svcs, newAuthedRequest(t, http.MethodGet, "/api/dreams", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestListDreams_BadDate(t *testing.T) {
	rec := serve(t, newTestServices(), newAuthedRequest(t, http.MethodGet, "/api/dreams?day=someday", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListVisibleDreams_SplitsIDs(t *testing.T) {
	svcs := newTestServices()
	svcs.DreamService = &mockDreamService{listVisibleDreamsFn: func(_ context.Context, viewerID string, ids []string) ([]models.Dream, error) {
		assert.Equal(t, testUserID, viewerID)
		assert.Equal(t, []string{"d1", "d2"}, ids)
		return []models.Dream{{ID: "d2"}, {ID: "d1"}}, nil
	}}

	rec := serve(t, svcs, newAuthedRequest(t, http.MethodGet, "/api/dreams/visible?ids=d1,d2", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.Dream](t, rec), 2)
}

func TestListVisibleOwnerIDs(t *testing.T) {
	svcs := newTestServices()
	svcs.DreamService = &mockDreamService{listVisibleOwnerIDsFn: func(context.Context, string) ([]string, error) {
		return []string{"u1", "u2"}, nil
	}}

	rec := serve(t, svcs, newAuthedRequest(t, http.MethodGet, "/api/dreams/owners", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"u1", "u2"}, decodeBody[[]string](t, rec))
}

func TestGetDream(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "visible", wantStatus: http.StatusOK},
		{name: "not visible", err: fmt.Errorf("wrapped: %w", store.ErrDreamNotFound), wantStatus: http.StatusNotFound},
		{name: "storage failure", err: errBoom, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			svcs.DreamService = &mockDreamService{getDreamFn: func(_ context.Context, viewerID, dreamID string) (models.Dream, error) {
				assert.Equal(t, "d1", dreamID)
				return models.Dream{ID: dreamID}, tt.err
			}}

			rec := serve(t, svcs, newAuthedRequest(t, http.MethodGet, "/api/dreams/d1", nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestUpsertDream_OwnerIsCaller(t *testing.T) {
	svcs := newTestServices()
	svcs.DreamService = &mockDreamService{upsertDreamFn: func(_ context.Context, d models.Dream) (models.Dream, error) {
		assert.Equal(t, "d1", d.ID)
		assert.Equal(t, testUserID, d.OwnerID)
		d.UpdatedAt = time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC)
		return d, nil
	}}

	body := models.Dream{Title: "Flight", Content: "Over the sea", Mood: models.MoodHappy, Intensity: 3, OwnerID: "someone-else"}
	rec := serve(t, svcs, newAuthedRequest(t, http.MethodPut, "/api/dreams/d1", body))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testUserID, decodeBody[models.Dream](t, rec).OwnerID)
}

func TestUpsertDream_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       models.Dream
		err        error
		wantStatus int
	}{
		{name: "id mismatch", path: "/api/dreams/d1", body: models.Dream{ID: "d2"}, wantStatus: http.StatusBadRequest},
		{name: "validation", path: "/api/dreams/d1", err: fmt.Errorf("%w: empty title", service.ErrInvalidDataProvided), wantStatus: http.StatusBadRequest},
		{name: "not owner", path: "/api/dreams/d1", err: fmt.Errorf("dream upsert failed: %w", store.ErrDreamNotOwned), wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			svcs.DreamService = &mockDreamService{upsertDreamFn: func(context.Context, models.Dream) (models.Dream, error) {
				return models.Dream{}, tt.err
			}}

			rec := serve(t, svcs, newAuthedRequest(t, http.MethodPut, tt.path, tt.body))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDeleteDream(t *testing.T) {
	svcs := newTestServices()
	var gotOwner, gotID string
	svcs.DreamService = &mockDreamService{deleteDreamFn: func(_ context.Context, ownerID, dreamID string) error {
		gotOwner, gotID = ownerID, dreamID
		return nil
	}}

	rec := serve(t, svcs, newAuthedRequest(t, http.MethodDelete, "/api/dreams/d1", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, testUserID, gotOwner)
	assert.Equal(t, "d1", gotID)
}
