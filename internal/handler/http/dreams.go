// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/utils"
	"github.com/MKhiriev/go-dream-journal/models"
)

func (h *Handler) listDreams(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUserID(w, r)
	if !ok {
		return
	}

	filter, err := models.ParseDreamFilter(r.URL.Query())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listDreams").Msg("invalid filter")
		http.Error(w, "invalid filter", http.StatusBadRequest)
		return
	}

	dreams, err := h.services.DreamService.ListOwnDreams(r.Context(), userID, filter)
	if err != nil {
		h.fail(w, r, "*Handler.listDreams", err)
		return
	}

	utils.WriteJSON(w, nonNil(dreams), http.StatusOK)
}

func (h *Handler) listVisibleDreams(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUserID(w, r)
	if !ok {
		return
	}

	var ids []string
	if raw := strings.TrimSpace(r.URL.Query().Get("ids")); raw != "" {
		ids = strings.Split(raw, ",")
	}

	dreams, err := h.services.DreamService.ListVisibleDreams(r.Context(), userID, ids)
	if err != nil {
		h.fail(w, r, "*Handler.listVisibleDreams", err)
		return
	}

	utils.WriteJSON(w, nonNil(dreams), http.StatusOK)
}

func (h *Handler) listVisibleOwnerIDs(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUserID(w, r)
	if !ok {
		return
	}

	ids, err := h.services.DreamService.ListVisibleOwnerIDs(r.Context(), userID)
	if err != nil {
		h.fail(w, r, "*Handler.listVisibleOwnerIDs", err)
		return
	}

	utils.WriteJSON(w, nonNil(ids), http.StatusOK)
}

func (h *Handler) getDream(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUserID(w, r)
	if !ok {
		return
	}

	dream, err := h.services.DreamService.GetDream(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "*Handler.getDream", err)
		return
	}

	utils.WriteJSON(w, dream, http.StatusOK)
}

// upsertDream stores the body under the path id for the caller. The owner is
// always the caller; an owner_id in the body is ignored.
func (h *Handler) upsertDream(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUserID(w, r)
	if !ok {
		return
	}

	var dream models.Dream
	if err := utils.DecodeJSON(r.Body, &dream); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.upsertDream").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	pathID := chi.URLParam(r, "id")
	if dream.ID != "" && dream.ID != pathID {
		http.Error(w, "dream id does not match the path", http.StatusBadRequest)
		return
	}
	dream.ID = pathID
	dream.OwnerID = userID

	saved, err := h.services.DreamService.UpsertDream(r.Context(), dream)
	if err != nil {
		h.fail(w, r, "*Handler.upsertDream", err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) deleteDream(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUserID(w, r)
	if !ok {
		return
	}

	if err := h.services.DreamService.DeleteDream(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, "*Handler.deleteDream", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
