// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/utils"
)

// tokenQueryParam carries the token on the realtime handshake for clients
// that cannot set headers on a websocket dial.
const tokenQueryParam = "token"

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It reads the bearer token from the "Authorization" header, validates it
// via AuthService.ParseToken and stores the user id in the request context
// under [utils.UserIDCtxKey]. Any failure answers 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return h.authenticate(next, false)
}

// authWithQueryToken is auth that also accepts ?token=<jwt>.
func (h *Handler) authWithQueryToken(next http.Handler) http.Handler {
	return h.authenticate(next, true)
}

func (h *Handler) authenticate(next http.Handler, allowQuery bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := tokenFromRequest(r, allowQuery)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}

func tokenFromRequest(r *http.Request, allowQuery bool) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		if allowQuery {
			if token := strings.TrimSpace(r.URL.Query().Get(tokenQueryParam)); token != "" {
				return token, nil
			}
		}
		return "", ErrEmptyAuthorizationHeader
	}

	return getTokenFromAuthHeader(authHeader)
}

// getTokenFromAuthHeader extracts the token from "Bearer <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, tokenString, found := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	return strings.TrimSpace(tokenString), nil
}
