// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-dream-journal/internal/utils"
	"github.com/MKhiriev/go-dream-journal/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())
	utils.WriteJSON(w, models.VersionInfo{Version: serverVersion}, http.StatusOK)
}

func (h *Handler) listProfiles(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireUserID(w, r); !ok {
		return
	}

	profiles, err := h.services.ProfileService.ListProfiles(r.Context())
	if err != nil {
		h.fail(w, r, "*Handler.listProfiles", err)
		return
	}

	utils.WriteJSON(w, nonNil(profiles), http.StatusOK)
}
