// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/store"
	"github.com/MKhiriev/go-dream-journal/internal/utils"
	"github.com/MKhiriev/go-dream-journal/models"
)

type shareService struct {
	shares    store.ShareRepository
	publisher ChangePublisher
	ids       utils.UUIDGenerator

	logger *logger.Logger
}

func NewShareService(shares store.ShareRepository, publisher ChangePublisher, logger *logger.Logger) ShareService {
	return &shareService{
		shares:    shares,
		publisher: publisher,
		logger:    logger,
	}
}

// Share grants share.SharedWith read access to the dream. The repository
// rejects callers that do not own the dream with store.ErrDreamNotOwned.
// A repeated share reports Created == false and notifies nobody.
func (s *shareService) Share(ctx context.Context, share models.Share) (models.ShareResult, error) {
	log := logger.FromContext(ctx)

	created, err := s.shares.CreateShare(ctx, share, s.ids.Generate())
	if err != nil {
		log.Err(err).Str("func", "*shareService.Share").
			Str("dream_id", share.DreamID).
			Str("user_id", share.SharedBy).
			Msg("share failed")
		return models.ShareResult{}, fmt.Errorf("share failed: %w", err)
	}

	if created {
		publishTo(ctx, s.publisher, models.Notification{}.TableName(), models.ChangeInsert, share.DreamID, share.SharedWith)
		publishTo(ctx, s.publisher, models.Share{}.TableName(), models.ChangeInsert, share.DreamID, share.SharedBy, share.SharedWith)
	}

	return models.ShareResult{Created: created}, nil
}

func (s *shareService) Unshare(ctx context.Context, share models.Share) error {
	if err := s.shares.DeleteShare(ctx, share); err != nil {
		return fmt.Errorf("unshare failed: %w", err)
	}

	publishTo(ctx, s.publisher, models.Share{}.TableName(), models.ChangeDelete, share.DreamID, share.SharedBy, share.SharedWith)
	return nil
}

func (s *shareService) ListReceived(ctx context.Context, userID string) ([]models.Share, error) {
	return s.shares.ListSharesWith(ctx, userID)
}

func (s *shareService) ListSent(ctx context.Context, userID string) ([]models.Share, error) {
	return s.shares.ListSharesBy(ctx, userID)
}
