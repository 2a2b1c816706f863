// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-dream-journal/internal/config"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/models"
)

const (
	realtimePath          = "/api/realtime"
	realtimeHandshake     = 10 * time.Second
	realtimeMinBackoff    = 500 * time.Millisecond
	realtimeMaxBackoff    = 30 * time.Second
	realtimeCloseDeadline = time.Second
)

type wsRealtimeSubscriber struct {
	url    string
	dialer websocket.Dialer

	minBackoff time.Duration
	maxBackoff time.Duration

	logger *logger.Logger
}

// NewRealtimeSubscriber returns a [RealtimeSubscriber] that connects to the
// server's websocket endpoint derived from adapterCfg.HTTPAddress.
func NewRealtimeSubscriber(adapterCfg config.ClientAdapter, logger *logger.Logger) (RealtimeSubscriber, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &wsRealtimeSubscriber{
		url:        websocketURL(baseURL) + realtimePath,
		dialer:     websocket.Dialer{HandshakeTimeout: realtimeHandshake},
		minBackoff: realtimeMinBackoff,
		maxBackoff: realtimeMaxBackoff,
		logger:     logger,
	}, nil
}

func websocketURL(baseURL string) string {
	switch {
	case strings.HasPrefix(baseURL, "https://"):
		return "wss://" + strings.TrimPrefix(baseURL, "https://")
	case strings.HasPrefix(baseURL, "http://"):
		return "ws://" + strings.TrimPrefix(baseURL, "http://")
	default:
		return baseURL
	}
}

func (s *wsRealtimeSubscriber) Subscribe(ctx context.Context, token string, onEvent func(models.ChangeEvent)) error {
	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("%w: empty token", ErrUnauthorized)
	}

	backoff := s.minBackoff
	for {
		connected, err := s.session(ctx, token, onEvent)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, ErrUnauthorized) {
			return err
		}
		if connected {
			backoff = s.minBackoff
		}

		s.logger.Warn().Err(err).Dur("retry_in", backoff).Msg("realtime connection lost")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > s.maxBackoff {
			backoff = s.maxBackoff
		}
	}
}

// session runs one connection until it fails. connected reports whether the
// handshake succeeded.
func (s *wsRealtimeSubscriber) session(ctx context.Context, token string, onEvent func(models.ChangeEvent)) (connected bool, err error) {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	conn, resp, err := s.dialer.DialContext(ctx, s.url, header)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return false, fmt.Errorf("%w: realtime handshake rejected", ErrUnauthorized)
		}
		return false, fmt.Errorf("websocket dial: %w", err)
	}
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(realtimeCloseDeadline),
			)
			_ = conn.Close()
		case <-done:
		}
	}()

	s.logger.Debug().Str("url", s.url).Msg("realtime connected")

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			return true, fmt.Errorf("websocket read: %w", err)
		}

		var event models.ChangeEvent
		if err := json.Unmarshal(message, &event); err != nil {
			s.logger.Err(err).Msg("skipping malformed realtime event")
			continue
		}
		onEvent(event)
	}
}
