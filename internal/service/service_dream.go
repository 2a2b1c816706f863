// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/store"
	"github.com/MKhiriev/go-dream-journal/internal/utils"
	"github.com/MKhiriev/go-dream-journal/models"
)

// dreamService implements DreamService over the dream and share
// repositories. Mutations publish a "dreams" change to the owner and to every
// user the dream is shared with.
type dreamService struct {
	dreams    store.DreamRepository
	shares    store.ShareRepository
	publisher ChangePublisher
	ids       utils.UUIDGenerator
	now       func() time.Time

	logger *logger.Logger
}

func NewDreamService(dreams store.DreamRepository, shares store.ShareRepository, publisher ChangePublisher, logger *logger.Logger) DreamService {
	return &dreamService{
		dreams:    dreams,
		shares:    shares,
		publisher: publisher,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *dreamService) ListOwnDreams(ctx context.Context, ownerID string, filter models.DreamFilter) ([]models.Dream, error) {
	return s.dreams.ListOwnDreams(ctx, ownerID, filter)
}

func (s *dreamService) GetDream(ctx context.Context, viewerID, dreamID string) (models.Dream, error) {
	return s.dreams.GetVisibleDream(ctx, viewerID, dreamID)
}

func (s *dreamService) ListVisibleDreams(ctx context.Context, viewerID string, dreamIDs []string) ([]models.Dream, error) {
	return s.dreams.ListVisibleDreamsByIDs(ctx, viewerID, dreamIDs)
}

func (s *dreamService) ListVisibleOwnerIDs(ctx context.Context, viewerID string) ([]string, error) {
	return s.dreams.ListVisibleOwnerIDs(ctx, viewerID)
}

// UpsertDream stores the dream for dream.OwnerID. A missing id is generated,
// tags are normalised and timestamps defaulted to now.
func (s *dreamService) UpsertDream(ctx context.Context, dream models.Dream) (models.Dream, error) {
	log := logger.FromContext(ctx)

	now := s.now().UTC()
	if dream.ID == "" {
		dream.ID = s.ids.Generate()
	}
	if dream.CreatedAt.IsZero() {
		dream.CreatedAt = now
	}
	if dream.UpdatedAt.IsZero() {
		dream.UpdatedAt = now
	}
	if dream.OccurredAt.IsZero() {
		dream.OccurredAt = now
	}
	dream.Tags = models.NormalizeTags(dream.Tags)

	saved, err := s.dreams.UpsertDream(ctx, dream)
	if err != nil {
		log.Err(err).Str("func", "*dreamService.UpsertDream").Str("dream_id", dream.ID).Msg("dream upsert failed")
		return models.Dream{}, fmt.Errorf("dream upsert failed: %w", err)
	}

	s.publish(ctx, models.ChangeUpsert, saved.OwnerID, saved.ID)
	return saved, nil
}

// DeleteDream removes the owner's dream. Recipients are collected before the
// delete because the shares cascade with it.
func (s *dreamService) DeleteDream(ctx context.Context, ownerID, dreamID string) error {
	log := logger.FromContext(ctx)

	recipients, err := s.shares.ListRecipients(ctx, dreamID)
	if err != nil {
		log.Warn().Err(err).Str("dream_id", dreamID).Msg("could not list recipients before delete")
	}

	if err = s.dreams.DeleteDream(ctx, ownerID, dreamID); err != nil {
		log.Err(err).Str("func", "*dreamService.DeleteDream").Str("dream_id", dreamID).Msg("dream delete failed")
		return fmt.Errorf("dream delete failed: %w", err)
	}

	publishTo(ctx, s.publisher, models.Dream{}.TableName(), models.ChangeDelete, dreamID, append([]string{ownerID}, recipients...)...)
	return nil
}

func (s *dreamService) publish(ctx context.Context, changeType models.ChangeType, ownerID, dreamID string) {
	recipients, err := s.shares.ListRecipients(ctx, dreamID)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("dream_id", dreamID).Msg("could not list recipients for change event")
	}
	publishTo(ctx, s.publisher, models.Dream{}.TableName(), changeType, dreamID, append([]string{ownerID}, recipients...)...)
}
