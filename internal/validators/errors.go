// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidDreamID    = errors.New("invalid dream id")
	ErrInvalidOwnerID    = errors.New("invalid owner id")
	ErrEmptyTitle        = errors.New("title is required")
	ErrEmptyContent      = errors.New("content is required")
	ErrInvalidMood       = errors.New("invalid mood")
	ErrInvalidIntensity  = errors.New("intensity must be between 1 and 5")
	ErrInvalidOccurredAt = errors.New("occurredAt is required")
	ErrInvalidSharedBy   = errors.New("invalid shared_by user id")
	ErrInvalidSharedWith = errors.New("invalid shared_with user id")
	ErrSelfShare         = errors.New("a dream cannot be shared with its owner")
	ErrInvalidDateRange  = errors.New("dateFrom is after dateTo")

	ErrInvalidNotificationID = errors.New("invalid notification id")
)
