// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dream-journal/internal/config"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/models"
)

const testToken = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJzdWIiOiJ1MSJ9.signature"

// newTestAdapter builds an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://dreams.example/ ", want: "https://dreams.example"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Register / Login ────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var body models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "lena@example.com", body.Email)
		assert.Equal(t, "secret1", body.Password)

		w.Header().Set("Authorization", "Bearer "+testToken)
		writeJSON(t, w, models.User{ID: "u1", Email: body.Email, Username: body.Username})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	session, err := a.Register(context.Background(), models.User{Email: "lena@example.com", Password: "secret1", Username: "lena"})

	require.NoError(t, err)
	assert.Equal(t, "u1", session.User.ID)
	assert.Equal(t, "lena", session.User.Username)
	assert.Equal(t, testToken, session.Token)
	assert.Equal(t, testToken, a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "email already registered", http.StatusConflict)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.User{Email: "lena@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Empty(t, a.Token())
}

func TestLogin_MissingAuthorizationHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.User{ID: "u1"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.User{Email: "lena@example.com", Password: "secret1"})

	require.Error(t, err)
	assert.Empty(t, a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		http.Error(w, "wrong email or password", http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.User{Email: "lena@example.com", Password: "nope"})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Authenticated requests ──────────────────────────────────────────────────

func TestAuthedRequest_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		writeJSON(t, w, models.User{ID: "u1", Username: "lena"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("  " + testToken + " ")

	user, err := a.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		writeJSON(t, w, models.VersionInfo{Version: "1.2.3"})
	}))
	defer srv.Close()

	v, err := newTestAdapter(t, srv.URL).Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", v)
}

func TestMapHTTPError_Statuses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "bad request", status: http.StatusBadRequest, body: "invalid filter", wantErr: ErrBadRequest, wantMsg: "invalid filter"},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, wantErr: ErrBadRequest},
		{name: "forbidden", status: http.StatusForbidden, body: "not the owner", wantErr: ErrForbidden},
		{name: "unavailable", status: http.StatusServiceUnavailable, wantErr: ErrBadGateway, wantMsg: "Service Unavailable"},
		{name: "gateway timeout", status: http.StatusGatewayTimeout, wantErr: ErrBadGateway},
		{name: "unmapped", status: http.StatusTeapot, wantMsg: "http 418"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Version(context.Background())
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

// ── Dreams ──────────────────────────────────────────────────────────────────

func TestListDreams_EncodesFilter(t *testing.T) {
	day := time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/dreams", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "flight", q.Get("q"))
		assert.Equal(t, "happy", q.Get("mood"))
		assert.Equal(t, "sea,sky", q.Get("tags"))
		assert.Equal(t, "2024-01-25", q.Get("day"))
		writeJSON(t, w, []models.Dream{{ID: "d1", Title: "Flight"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	dreams, err := a.ListDreams(context.Background(), models.DreamFilter{
		Query: "flight",
		Mood:  models.MoodHappy,
		Tags:  []string{"sea", "sky"},
		Day:   &day,
	})

	require.NoError(t, err)
	require.Len(t, dreams, 1)
	assert.Equal(t, "Flight", dreams[0].Title)
}

func TestGetDream_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/dreams/d404", r.URL.Path)
		http.Error(w, "dream not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetDream(context.Background(), "d404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListVisibleDreams(t *testing.T) {
	t.Run("empty ids do not hit the server", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("unexpected request")
		}))
		defer srv.Close()

		dreams, err := newTestAdapter(t, srv.URL).ListVisibleDreams(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, dreams)
	})

	t.Run("ids are comma separated", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/dreams/visible", r.URL.Path)
			assert.Equal(t, "d1,d2", r.URL.Query().Get("ids"))
			writeJSON(t, w, []models.Dream{{ID: "d2"}, {ID: "d1"}})
		}))
		defer srv.Close()

		dreams, err := newTestAdapter(t, srv.URL).ListVisibleDreams(context.Background(), []string{"d1", "d2"})
		require.NoError(t, err)
		assert.Len(t, dreams, 2)
	})
}

func TestUpsertDream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/dreams/d1", r.URL.Path)

		var d models.Dream
		require.NoError(t, json.NewDecoder(r.Body).Decode(&d))
		d.OwnerID = "u1"
		writeJSON(t, w, d)
	}))
	defer srv.Close()

	saved, err := newTestAdapter(t, srv.URL).UpsertDream(context.Background(), models.Dream{ID: "d1", Title: "Flight"})
	require.NoError(t, err)
	assert.Equal(t, "u1", saved.OwnerID)
}

func TestUpsertDream_RequiresID(t *testing.T) {
	a := newTestAdapter(t, "http://127.0.0.1:1")
	_, err := a.UpsertDream(context.Background(), models.Dream{Title: "Flight"})
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestDeleteDream_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).DeleteDream(context.Background(), "d1")
	assert.ErrorIs(t, err, ErrForbidden)
}

// ── Shares ──────────────────────────────────────────────────────────────────

func TestCreateShare(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/shares", r.URL.Path)
		var s models.Share
		require.NoError(t, json.NewDecoder(r.Body).Decode(&s))
		assert.Equal(t, "d1", s.DreamID)
		assert.Equal(t, "u2", s.SharedWith)
		assert.Empty(t, s.SharedBy)
		writeJSON(t, w, models.ShareResult{Created: true})
	}))
	defer srv.Close()

	res, err := newTestAdapter(t, srv.URL).CreateShare(context.Background(), "d1", "u2")
	require.NoError(t, err)
	assert.True(t, res.Created)
}

func TestDeleteShare(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "d1", r.URL.Query().Get("dream_id"))
		assert.Equal(t, "u2", r.URL.Query().Get("shared_with"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, newTestAdapter(t, srv.URL).DeleteShare(context.Background(), "d1", "u2"))
}

// ── Notifications ───────────────────────────────────────────────────────────

func TestUnreadCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notifications/unread-count", r.URL.Path)
		writeJSON(t, w, models.UnreadCount{Count: 3})
	}))
	defer srv.Close()

	n, err := newTestAdapter(t, srv.URL).UnreadCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestMarkNotificationRead(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		paths = append(paths, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.MarkNotificationRead(context.Background(), "n1"))
	require.NoError(t, a.MarkAllNotificationsRead(context.Background()))
	assert.Equal(t, []string{"/api/notifications/n1/read", "/api/notifications/read"}, paths)
}

// ── Errors ──────────────────────────────────────────────────────────────────

func TestTransportErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListNotifications(context.Background())
	assert.ErrorIs(t, err, ErrBadGateway)
	assert.True(t, IsTransportError(err))

	srv.Close()
	_, err = newTestAdapter(t, srv.URL).ListProfiles(context.Background())
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.True(t, IsTransportError(err))

	assert.False(t, IsTransportError(ErrForbidden))
}
