// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-dream-journal/internal/utils"
	"github.com/MKhiriev/go-dream-journal/models"
)

// Field names accepted by [DreamValidator].
const (
	FieldID         = "id"
	FieldOwnerID    = "owner_id"
	FieldTitle      = "title"
	FieldContent    = "content"
	FieldMood       = "mood"
	FieldIntensity  = "intensity"
	FieldOccurredAt = "occurredAt"

	FieldDreamID    = "dream_id"
	FieldSharedBy   = "shared_by"
	FieldSharedWith = "shared_with"

	FieldDateRange = "date_range"
)

// DreamValidator validates dreams, shares, notifications and dream filters.
// Identifiers taken from a request must be UUIDs.
type DreamValidator struct{}

func NewDreamValidator() Validator {
	return &DreamValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types (value or pointer): models.Dream, models.Share,
// models.Notification, models.DreamFilter.
func (v *DreamValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Dream:
		return v.validateDream(value, fields...)
	case *models.Dream:
		return v.validateDream(*value, fields...)

	case models.Share:
		return v.validateShare(value, fields...)
	case *models.Share:
		return v.validateShare(*value, fields...)

	case models.Notification:
		return v.validateNotification(value, fields...)
	case *models.Notification:
		return v.validateNotification(*value, fields...)

	case models.DreamFilter:
		return v.validateFilter(value, fields...)
	case *models.DreamFilter:
		return v.validateFilter(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateDream runs title, content, mood and intensity checks by default.
// Identity fields are checked only when requested: a new dream has no id yet.
func (v *DreamValidator) validateDream(dream models.Dream, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent, FieldMood, FieldIntensity}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if !utils.IsUUID(dream.ID) {
				return ErrInvalidDreamID
			}
		case FieldOwnerID:
			if strings.TrimSpace(dream.OwnerID) == "" {
				return ErrInvalidOwnerID
			}
		case FieldTitle:
			if strings.TrimSpace(dream.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldContent:
			if strings.TrimSpace(dream.Content) == "" {
				return ErrEmptyContent
			}
		case FieldMood:
			if !dream.Mood.Valid() {
				return ErrInvalidMood
			}
		case FieldIntensity:
			if dream.Intensity < models.MinIntensity || dream.Intensity > models.MaxIntensity {
				return ErrInvalidIntensity
			}
		case FieldOccurredAt:
			if dream.OccurredAt.IsZero() {
				return ErrInvalidOccurredAt
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DreamValidator) validateShare(share models.Share, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDreamID, FieldSharedBy, FieldSharedWith}
	}

	for _, f := range fields {
		switch f {
		case FieldDreamID:
			if !utils.IsUUID(share.DreamID) {
				return ErrInvalidDreamID
			}
		case FieldSharedBy:
			if strings.TrimSpace(share.SharedBy) == "" {
				return ErrInvalidSharedBy
			}
		case FieldSharedWith:
			if !utils.IsUUID(share.SharedWith) {
				return ErrInvalidSharedWith
			}
			if share.SharedWith == share.SharedBy {
				return ErrSelfShare
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DreamValidator) validateNotification(notification models.Notification, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if !utils.IsUUID(notification.ID) {
				return ErrInvalidNotificationID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DreamValidator) validateFilter(filter models.DreamFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMood, FieldDateRange}
	}

	for _, f := range fields {
		switch f {
		case FieldMood:
			if filter.Mood != "" && !filter.Mood.Valid() {
				return ErrInvalidMood
			}
		case FieldDateRange:
			if filter.DateFrom != nil && filter.DateTo != nil && filter.DateFrom.After(*filter.DateTo) {
				return ErrInvalidDateRange
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
