// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package realtime fans row change events out to websocket subscribers.
//
// [Hub] is the server's change publisher: services call Publish after a
// write commits and every open connection of the event's user receives the
// event as a JSON text frame. Delivery is best effort; a subscriber that
// cannot keep up loses events rather than stalling writers.
package realtime

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/metrics"
	"github.com/MKhiriev/go-dream-journal/models"
)

const (
	sendBuffer = 32
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	maxMessage = 512
)

type subscriber struct {
	userID string
	send   chan models.ChangeEvent
}

// Hub tracks live subscribers per user.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[*subscriber]struct{}

	upgrader websocket.Upgrader
	metrics  *metrics.Metrics
	logger   *logger.Logger
}

// NewHub returns an empty hub. m may be nil.
func NewHub(m *metrics.Metrics, logger *logger.Logger) *Hub {
	return &Hub{
		subs: make(map[string]map[*subscriber]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The terminal client is not a browser; authentication is the
			// bearer token, so the Origin header carries no meaning here.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		metrics: m,
		logger:  logger,
	}
}

// Publish hands event to every subscriber of event.UserID without blocking.
func (h *Hub) Publish(ctx context.Context, event models.ChangeEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs[event.UserID] {
		select {
		case sub.send <- event:
			h.metrics.EventDelivered(event.Table)
		default:
			logger.FromContext(ctx).Warn().
				Str("func", "*Hub.Publish").
				Str("user_id", event.UserID).
				Str("table", event.Table).
				Msg("realtime subscriber is slow, dropping event")
		}
	}
}

// Subscribe registers a new subscriber for userID. The returned cancel
// function unregisters it and closes the channel.
func (h *Hub) Subscribe(userID string) (<-chan models.ChangeEvent, func()) {
	sub := &subscriber{userID: userID, send: make(chan models.ChangeEvent, sendBuffer)}

	h.mu.Lock()
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[*subscriber]struct{})
	}
	h.subs[userID][sub] = struct{}{}
	h.mu.Unlock()
	h.metrics.RealtimeConnected()

	var once sync.Once
	return sub.send, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[userID], sub)
			if len(h.subs[userID]) == 0 {
				delete(h.subs, userID)
			}
			close(sub.send)
			h.mu.Unlock()
			h.metrics.RealtimeDisconnected()
		})
	}
}

// Subscribers returns the number of open subscriptions for userID.
func (h *Hub) Subscribers(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[userID])
}

// ServeWS upgrades the request and streams userID's events until the client
// disconnects or the request context ends.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, userID string) {
	log := logger.FromRequest(r)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an HTTP error.
		log.Err(err).Str("func", "*Hub.ServeWS").Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	events, cancel := h.Subscribe(userID)
	defer cancel()

	log.Debug().Str("user_id", userID).Msg("realtime subscriber connected")

	closed := make(chan struct{})
	go h.readPump(conn, closed)

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(event); err != nil {
				log.Err(err).Str("func", "*Hub.ServeWS").Str("user_id", userID).Msg("realtime write failed")
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-closed:
			log.Debug().Str("user_id", userID).Msg("realtime subscriber disconnected")
			return
		case <-r.Context().Done():
			_ = conn.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
				time.Now().Add(writeWait),
			)
			return
		}
	}
}

// readPump drains client frames so control messages are processed and
// reports when the connection goes away.
func (h *Hub) readPump(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)

	conn.SetReadLimit(maxMessage)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
