// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-dream-journal/internal/config"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/utils"
	"github.com/MKhiriev/go-dream-journal/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register POSTs the new account to /api/auth/register. The bearer token is
// taken from the Authorization response header.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Session, error) {
	return h.authenticate(ctx, "/api/auth/register", user)
}

// Login POSTs email and password to /api/auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Session, error) {
	return h.authenticate(ctx, "/api/auth/login", user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.Session, error) {
	var created models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(user).
		SetResult(&created).
		Post(path)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %s: %w", ErrRequestFailed, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Session{}, fmt.Errorf("%s parse bearer token: %w", path, err)
	}

	h.SetToken(token)
	return models.Session{User: created, Token: token}, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User
	if err := h.get(ctx, "/api/auth/me", nil, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	var info models.VersionInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("%w: version: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return info.Version, nil
}

func (h *httpServerAdapter) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	if err := h.get(ctx, "/api/profiles", nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (h *httpServerAdapter) ListDreams(ctx context.Context, filter models.DreamFilter) ([]models.Dream, error) {
	var dreams []models.Dream
	if err := h.get(ctx, "/api/dreams", filter.QueryParams(), &dreams); err != nil {
		return nil, err
	}
	return dreams, nil
}

func (h *httpServerAdapter) GetDream(ctx context.Context, dreamID string) (models.Dream, error) {
	var dream models.Dream
	if err := h.get(ctx, "/api/dreams/"+url.PathEscape(dreamID), nil, &dream); err != nil {
		return models.Dream{}, err
	}
	return dream, nil
}

func (h *httpServerAdapter) ListVisibleDreams(ctx context.Context, dreamIDs []string) ([]models.Dream, error) {
	if len(dreamIDs) == 0 {
		return []models.Dream{}, nil
	}

	var dreams []models.Dream
	params := map[string]string{"ids": strings.Join(dreamIDs, ",")}
	if err := h.get(ctx, "/api/dreams/visible", params, &dreams); err != nil {
		return nil, err
	}
	return dreams, nil
}

func (h *httpServerAdapter) ListVisibleOwnerIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := h.get(ctx, "/api/dreams/owners", nil, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (h *httpServerAdapter) UpsertDream(ctx context.Context, dream models.Dream) (models.Dream, error) {
	if dream.ID == "" {
		return models.Dream{}, fmt.Errorf("%w: dream id is required", ErrBadRequest)
	}

	var saved models.Dream
	resp, err := h.authedRequest(ctx).
		SetBody(dream).
		SetResult(&saved).
		Put("/api/dreams/" + url.PathEscape(dream.ID))
	if err != nil {
		return models.Dream{}, fmt.Errorf("%w: upsert dream: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Dream{}, err
	}
	return saved, nil
}

func (h *httpServerAdapter) DeleteDream(ctx context.Context, dreamID string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/dreams/" + url.PathEscape(dreamID))
	if err != nil {
		return fmt.Errorf("%w: delete dream: %w", ErrRequestFailed, err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) CreateShare(ctx context.Context, dreamID, sharedWith string) (models.ShareResult, error) {
	var result models.ShareResult

	resp, err := h.authedRequest(ctx).
		SetBody(models.Share{DreamID: dreamID, SharedWith: sharedWith}).
		SetResult(&result).
		Post("/api/shares")
	if err != nil {
		return models.ShareResult{}, fmt.Errorf("%w: create share: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ShareResult{}, err
	}
	return result, nil
}

func (h *httpServerAdapter) DeleteShare(ctx context.Context, dreamID, sharedWith string) error {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("dream_id", dreamID).
		SetQueryParam("shared_with", sharedWith).
		Delete("/api/shares")
	if err != nil {
		return fmt.Errorf("%w: delete share: %w", ErrRequestFailed, err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListReceivedShares(ctx context.Context) ([]models.Share, error) {
	var shares []models.Share
	if err := h.get(ctx, "/api/shares/received", nil, &shares); err != nil {
		return nil, err
	}
	return shares, nil
}

func (h *httpServerAdapter) ListSentShares(ctx context.Context) ([]models.Share, error) {
	var shares []models.Share
	if err := h.get(ctx, "/api/shares/sent", nil, &shares); err != nil {
		return nil, err
	}
	return shares, nil
}

func (h *httpServerAdapter) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := h.get(ctx, "/api/notifications", nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (h *httpServerAdapter) UnreadCount(ctx context.Context) (int, error) {
	var count models.UnreadCount
	if err := h.get(ctx, "/api/notifications/unread-count", nil, &count); err != nil {
		return 0, err
	}
	return count.Count, nil
}

func (h *httpServerAdapter) MarkAllNotificationsRead(ctx context.Context) error {
	return h.post(ctx, "/api/notifications/read")
}

func (h *httpServerAdapter) MarkNotificationRead(ctx context.Context, notificationID string) error {
	return h.post(ctx, "/api/notifications/"+url.PathEscape(notificationID)+"/read")
}

func (h *httpServerAdapter) get(ctx context.Context, path string, params map[string]string, result any) error {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(params).
		SetResult(result).
		Get(path)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %w", ErrRequestFailed, path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) post(ctx context.Context, path string) error {
	resp, err := h.authedRequest(ctx).Post(path)
	if err != nil {
		return fmt.Errorf("%w: POST %s: %w", ErrRequestFailed, path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// IsTransportError reports whether err means the server could not be reached
// or failed, as opposed to rejecting the request.
func IsTransportError(err error) bool {
	return errors.Is(err, ErrRequestFailed) ||
		errors.Is(err, ErrInternalServerError) ||
		errors.Is(err, ErrBadGateway)
}
