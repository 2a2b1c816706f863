// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Server-side errors.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("version is not specified")

	// ErrValidationNoUserID is returned when a request reaches a service
	// without an authenticated user in its context.
	ErrValidationNoUserID = errors.New("no user ID was given")
)

// Client-side errors. Write paths return them to the caller, read paths log
// them and degrade to an empty result.
var (
	// ErrNotAuthenticated blocks write paths when no user is signed in.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrValidation is the parent of every input validation failure.
	ErrValidation = errors.New("validation error")

	ErrPinTooShort           = errors.New("PIN must be at least 4 characters")
	ErrPinMismatch           = errors.New("PINs do not match")
	ErrPinVerificationFailed = errors.New("PIN verification failed")

	// ErrBackendUnavailable wraps any failure of the dream-server call.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrForbidden is returned when the server rejects an action on a dream
	// owned by someone else.
	ErrForbidden = errors.New("forbidden")

	// ErrDreamNotFound is returned by writes addressing a missing dream.
	ErrDreamNotFound = errors.New("dream not found")

	// ErrTooManyAttempts is returned when the server throttles sign-in or
	// sign-up from this address.
	ErrTooManyAttempts = errors.New("too many attempts, try again later")

	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")

	ErrInvalidBackup = errors.New("invalid backup payload")
)
