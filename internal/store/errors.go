// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrLoginAlreadyExists is returned when the email is already registered.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a user lookup matches nothing.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrDreamNotFound is returned when the dream does not exist or is not
	// visible to the caller.
	ErrDreamNotFound = errors.New("dream was not found")

	// ErrDreamNotOwned is returned when a caller tries to overwrite, delete or
	// share a dream owned by someone else.
	ErrDreamNotOwned = errors.New("dream is owned by another user")

	// ErrNotificationNotFound is returned when a notification does not exist
	// for the recipient.
	ErrNotificationNotFound = errors.New("notification was not found")

	// ErrSettingNotFound is returned by the device store for a missing key.
	ErrSettingNotFound = errors.New("setting was not found")
)

// Low-level database operation errors, wrapped together with the driver
// error as fmt.Errorf("%w: %w", ErrX, err).
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
	ErrDecodingTags         = errors.New("failed to decode dream tags")
)
