// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-dream-journal/internal/utils"
	"github.com/MKhiriev/go-dream-journal/models"
)

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUserID(w, r)
	if !ok {
		return
	}

	notifications, err := h.services.NotificationService.ListNotifications(r.Context(), userID)
	if err != nil {
		h.fail(w, r, "*Handler.listNotifications", err)
		return
	}

	utils.WriteJSON(w, nonNil(notifications), http.StatusOK)
}

func (h *Handler) unreadCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUserID(w, r)
	if !ok {
		return
	}

	count, err := h.services.NotificationService.UnreadCount(r.Context(), userID)
	if err != nil {
		h.fail(w, r, "*Handler.unreadCount", err)
		return
	}

	utils.WriteJSON(w, models.UnreadCount{Count: count}, http.StatusOK)
}

func (h *Handler) markAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUserID(w, r)
	if !ok {
		return
	}

	if err := h.services.NotificationService.MarkAllRead(r.Context(), userID); err != nil {
		h.fail(w, r, "*Handler.markAllNotificationsRead", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUserID(w, r)
	if !ok {
		return
	}

	if err := h.services.NotificationService.MarkRead(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, "*Handler.markNotificationRead", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
