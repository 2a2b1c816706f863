// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/utils"
	"github.com/MKhiriev/go-dream-journal/models"
)

// createShare inserts a share from the caller. A repeated share answers 200
// with created=false.
func (h *Handler) createShare(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUserID(w, r)
	if !ok {
		return
	}

	var share models.Share
	if err := utils.DecodeJSON(r.Body, &share); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createShare").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	share.SharedBy = userID

	result, err := h.services.ShareService.Share(r.Context(), share)
	if err != nil {
		h.fail(w, r, "*Handler.createShare", err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	utils.WriteJSON(w, result, status)
}

func (h *Handler) deleteShare(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUserID(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	share := models.Share{
		DreamID:    query.Get("dream_id"),
		SharedWith: query.Get("shared_with"),
		SharedBy:   userID,
	}

	if err := h.services.ShareService.Unshare(r.Context(), share); err != nil {
		h.fail(w, r, "*Handler.deleteShare", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listReceivedShares(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUserID(w, r)
	if !ok {
		return
	}

	shares, err := h.services.ShareService.ListReceived(r.Context(), userID)
	if err != nil {
		h.fail(w, r, "*Handler.listReceivedShares", err)
		return
	}

	utils.WriteJSON(w, nonNil(shares), http.StatusOK)
}

func (h *Handler) listSentShares(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUserID(w, r)
	if !ok {
		return
	}

	shares, err := h.services.ShareService.ListSent(r.Context(), userID)
	if err != nil {
		h.fail(w, r, "*Handler.listSentShares", err)
		return
	}

	utils.WriteJSON(w, nonNil(shares), http.StatusOK)
}
