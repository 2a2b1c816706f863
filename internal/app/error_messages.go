// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the dream-server handlers
// and the dream-client, which matches response bodies against them.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is returned for a wrong email/password pair and
	// for a missing, expired or forged bearer token.
	MsgInvalidCredentials = "invalid credentials or token"

	// MsgDreamNotOwned is returned when the caller writes or shares a dream
	// owned by someone else.
	MsgDreamNotOwned = "dream is owned by another user"

	MsgNotFound = "not found"

	// MsgEmailAlreadyRegistered is returned by sign-up for a taken email.
	MsgEmailAlreadyRegistered = "email already registered"

	MsgInternalServerError = "internal server error"
)
