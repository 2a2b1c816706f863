// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-dream-journal/internal/validators"
	"github.com/MKhiriev/go-dream-journal/models"
)

// DreamValidationService checks input before it reaches the wrapped
// DreamService. Failures are reported as ErrInvalidDataProvided.
type DreamValidationService struct {
	inner     DreamService
	validator validators.Validator
}

func NewDreamValidationService() DreamServiceWrapper {
	return &DreamValidationService{
		validator: validators.NewDreamValidator(),
	}
}

func (v *DreamValidationService) Wrap(inner DreamService) DreamService {
	v.inner = inner
	return v
}

func (v *DreamValidationService) ListOwnDreams(ctx context.Context, ownerID string, filter models.DreamFilter) ([]models.Dream, error) {
	if ownerID == "" {
		return nil, ErrValidationNoUserID
	}
	if err := v.validator.Validate(ctx, filter); err != nil {
		return nil, invalid(err)
	}

	return v.inner.ListOwnDreams(ctx, ownerID, filter)
}

func (v *DreamValidationService) GetDream(ctx context.Context, viewerID, dreamID string) (models.Dream, error) {
	if viewerID == "" {
		return models.Dream{}, ErrValidationNoUserID
	}
	if err := v.validator.Validate(ctx, models.Dream{ID: dreamID}, validators.FieldID); err != nil {
		return models.Dream{}, invalid(err)
	}

	return v.inner.GetDream(ctx, viewerID, dreamID)
}

func (v *DreamValidationService) ListVisibleDreams(ctx context.Context, viewerID string, dreamIDs []string) ([]models.Dream, error) {
	if viewerID == "" {
		return nil, ErrValidationNoUserID
	}
	for _, id := range dreamIDs {
		if err := v.validator.Validate(ctx, models.Dream{ID: id}, validators.FieldID); err != nil {
			return nil, invalid(err)
		}
	}

	return v.inner.ListVisibleDreams(ctx, viewerID, dreamIDs)
}

func (v *DreamValidationService) ListVisibleOwnerIDs(ctx context.Context, viewerID string) ([]string, error) {
	if viewerID == "" {
		return nil, ErrValidationNoUserID
	}

	return v.inner.ListVisibleOwnerIDs(ctx, viewerID)
}

func (v *DreamValidationService) UpsertDream(ctx context.Context, dream models.Dream) (models.Dream, error) {
	if dream.OwnerID == "" {
		return models.Dream{}, ErrValidationNoUserID
	}
	fields := []string{
		validators.FieldTitle,
		validators.FieldContent,
		validators.FieldMood,
		validators.FieldIntensity,
	}
	// the id is generated when the request carries none
	if dream.ID != "" {
		fields = append(fields, validators.FieldID)
	}
	if err := v.validator.Validate(ctx, dream, fields...); err != nil {
		return models.Dream{}, invalid(err)
	}

	return v.inner.UpsertDream(ctx, dream)
}

func (v *DreamValidationService) DeleteDream(ctx context.Context, ownerID, dreamID string) error {
	if ownerID == "" {
		return ErrValidationNoUserID
	}
	if err := v.validator.Validate(ctx, models.Dream{ID: dreamID}, validators.FieldID); err != nil {
		return invalid(err)
	}

	return v.inner.DeleteDream(ctx, ownerID, dreamID)
}

// ShareValidationService checks share requests before they reach the
// wrapped ShareService.
type ShareValidationService struct {
	inner     ShareService
	validator validators.Validator
}

func NewShareValidationService() ShareServiceWrapper {
	return &ShareValidationService{
		validator: validators.NewDreamValidator(),
	}
}

func (v *ShareValidationService) Wrap(inner ShareService) ShareService {
	v.inner = inner
	return v
}

func (v *ShareValidationService) Share(ctx context.Context, share models.Share) (models.ShareResult, error) {
	if share.SharedBy == "" {
		return models.ShareResult{}, ErrValidationNoUserID
	}
	if err := v.validator.Validate(ctx, share); err != nil {
		return models.ShareResult{}, invalid(err)
	}

	return v.inner.Share(ctx, share)
}

func (v *ShareValidationService) Unshare(ctx context.Context, share models.Share) error {
	if share.SharedBy == "" {
		return ErrValidationNoUserID
	}
	if err := v.validator.Validate(ctx, share, validators.FieldDreamID, validators.FieldSharedWith); err != nil {
		return invalid(err)
	}

	return v.inner.Unshare(ctx, share)
}

func (v *ShareValidationService) ListReceived(ctx context.Context, userID string) ([]models.Share, error) {
	if userID == "" {
		return nil, ErrValidationNoUserID
	}
	return v.inner.ListReceived(ctx, userID)
}

func (v *ShareValidationService) ListSent(ctx context.Context, userID string) ([]models.Share, error) {
	if userID == "" {
		return nil, ErrValidationNoUserID
	}
	return v.inner.ListSent(ctx, userID)
}

// NotificationValidationService rejects malformed notification ids before
// they reach the wrapped NotificationService.
type NotificationValidationService struct {
	inner     NotificationService
	validator validators.Validator
}

func NewNotificationValidationService() NotificationServiceWrapper {
	return &NotificationValidationService{
		validator: validators.NewDreamValidator(),
	}
}

func (v *NotificationValidationService) Wrap(inner NotificationService) NotificationService {
	v.inner = inner
	return v
}

func (v *NotificationValidationService) ListNotifications(ctx context.Context, recipientID string) ([]models.Notification, error) {
	if recipientID == "" {
		return nil, ErrValidationNoUserID
	}
	return v.inner.ListNotifications(ctx, recipientID)
}

func (v *NotificationValidationService) MarkAllRead(ctx context.Context, recipientID string) error {
	if recipientID == "" {
		return ErrValidationNoUserID
	}
	return v.inner.MarkAllRead(ctx, recipientID)
}

func (v *NotificationValidationService) MarkRead(ctx context.Context, recipientID, notificationID string) error {
	if recipientID == "" {
		return ErrValidationNoUserID
	}
	if err := v.validator.Validate(ctx, models.Notification{ID: notificationID}); err != nil {
		return invalid(err)
	}
	return v.inner.MarkRead(ctx, recipientID, notificationID)
}

func (v *NotificationValidationService) UnreadCount(ctx context.Context, recipientID string) (int, error) {
	if recipientID == "" {
		return 0, ErrValidationNoUserID
	}
	return v.inner.UnreadCount(ctx, recipientID)
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
