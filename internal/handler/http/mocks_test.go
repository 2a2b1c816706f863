// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/service"
	"github.com/MKhiriev/go-dream-journal/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, token string) (models.Token, error)
	currentUserFn  func(ctx context.Context, userID string) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn == nil {
		return models.Token{SignedString: "signed-" + user.ID, UserID: user.ID}, nil
	}
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, token string) (models.Token, error) {
	if m.parseTokenFn == nil {
		if token == testToken {
			return models.Token{UserID: testUserID}, nil
		}
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return m.parseTokenFn(ctx, token)
}

func (m *mockAuthService) CurrentUser(ctx context.Context, userID string) (models.User, error) {
	return m.currentUserFn(ctx, userID)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

type mockProfileService struct {
	listProfilesFn func(ctx context.Context) ([]models.Profile, error)
}

func (m *mockProfileService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	return m.listProfilesFn(ctx)
}

type mockDreamService struct {
	listOwnDreamsFn       func(ctx context.Context, ownerID string, filter models.DreamFilter) ([]models.Dream, error)
	getDreamFn            func(ctx context.Context, viewerID, dreamID string) (models.Dream, error)
	listVisibleDreamsFn   func(ctx context.Context, viewerID string, ids []string) ([]models.Dream, error)
	listVisibleOwnerIDsFn func(ctx context.Context, viewerID string) ([]string, error)
	upsertDreamFn         func(ctx context.Context, dream models.Dream) (models.Dream, error)
	deleteDreamFn         func(ctx context.Context, ownerID, dreamID string) error
}

func (m *mockDreamService) ListOwnDreams(ctx context.Context, ownerID string, filter models.DreamFilter) ([]models.Dream, error) {
	return m.listOwnDreamsFn(ctx, ownerID, filter)
}

func (m *mockDreamService) GetDream(ctx context.Context, viewerID, dreamID string) (models.Dream, error) {
	return m.getDreamFn(ctx, viewerID, dreamID)
}

func (m *mockDreamService) ListVisibleDreams(ctx context.Context, viewerID string, ids []string) ([]models.Dream, error) {
	return m.listVisibleDreamsFn(ctx, viewerID, ids)
}

func (m *mockDreamService) ListVisibleOwnerIDs(ctx context.Context, viewerID string) ([]string, error) {
	return m.listVisibleOwnerIDsFn(ctx, viewerID)
}

func (m *mockDreamService) UpsertDream(ctx context.Context, dream models.Dream) (models.Dream, error) {
	return m.upsertDreamFn(ctx, dream)
}

func (m *mockDreamService) DeleteDream(ctx context.Context, ownerID, dreamID string) error {
	return m.deleteDreamFn(ctx, ownerID, dreamID)
}

type mockShareService struct {
	shareFn        func(ctx context.Context, share models.Share) (models.ShareResult, error)
	unshareFn      func(ctx context.Context, share models.Share) error
	listReceivedFn func(ctx context.Context, userID string) ([]models.Share, error)
	listSentFn     func(ctx context.Context, userID string) ([]models.Share, error)
}

func (m *mockShareService) Share(ctx context.Context, share models.Share) (models.ShareResult, error) {
	return m.shareFn(ctx, share)
}

func (m *mockShareService) Unshare(ctx context.Context, share models.Share) error {
	return m.unshareFn(ctx, share)
}

func (m *mockShareService) ListReceived(ctx context.Context, userID string) ([]models.Share, error) {
	return m.listReceivedFn(ctx, userID)
}

func (m *mockShareService) ListSent(ctx context.Context, userID string) ([]models.Share, error) {
	return m.listSentFn(ctx, userID)
}

type mockNotificationService struct {
	listFn        func(ctx context.Context, recipientID string) ([]models.Notification, error)
	markAllReadFn func(ctx context.Context, recipientID string) error
	markReadFn    func(ctx context.Context, recipientID, id string) error
	unreadCountFn func(ctx context.Context, recipientID string) (int, error)
}

func (m *mockNotificationService) ListNotifications(ctx context.Context, recipientID string) ([]models.Notification, error) {
	return m.listFn(ctx, recipientID)
}

func (m *mockNotificationService) MarkAllRead(ctx context.Context, recipientID string) error {
	return m.markAllReadFn(ctx, recipientID)
}

func (m *mockNotificationService) MarkRead(ctx context.Context, recipientID, id string) error {
	return m.markReadFn(ctx, recipientID, id)
}

func (m *mockNotificationService) UnreadCount(ctx context.Context, recipientID string) (int, error) {
	return m.unreadCountFn(ctx, recipientID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testToken  = "good-token"
	testUserID = "0190a1b2-c3d4-7e5f-8a9b-000000000001"
)

var errBoom = errors.New("boom")

// newTestServices fills every service with a mock; callers override what
// they exercise.
func newTestServices() *service.Services {
	return &service.Services{
		AuthService:         &mockAuthService{},
		AppInfoService:      &mockAppInfoService{version: "test-version"},
		ProfileService:      &mockProfileService{},
		DreamService:        &mockDreamService{},
		ShareService:        &mockShareService{},
		NotificationService: &mockNotificationService{},
	}
}

func serve(t *testing.T, svcs *service.Services, req *http.Request, opts ...Option) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	NewHandler(svcs, logger.Nop(), opts...).Init().ServeHTTP(rec, req)
	return rec
}

func newRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	return httptest.NewRequest(method, path, &buf)
}

func newAuthedRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	req := newRequest(t, method, path, body)
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}
