// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-dream-journal/internal/adapter"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/utils"
	"github.com/MKhiriev/go-dream-journal/internal/validators"
	"github.com/MKhiriev/go-dream-journal/models"
)

type clientDreamStore struct {
	adapter   adapter.ServerAdapter
	session   CurrentUserProvider
	validator validators.Validator
	ids       *utils.UUIDGenerator
	now       func() time.Time

	logger *logger.Logger
}

func NewClientDreamStore(serverAdapter adapter.ServerAdapter, session CurrentUserProvider, logger *logger.Logger) DreamStore {
	return &clientDreamStore{
		adapter:   serverAdapter,
		session:   session,
		validator: validators.NewDreamValidator(),
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *clientDreamStore) List(ctx context.Context, filter models.DreamFilter) ([]models.Dream, error) {
	dreams, err := s.adapter.ListDreams(ctx, filter)
	if err != nil {
		err = mapAdapterError(err)
		s.logger.Err(err).Str("func", "*clientDreamStore.List").Msg("error listing dreams")
		return []models.Dream{}, err
	}
	if dreams == nil {
		dreams = []models.Dream{}
	}
	return dreams, nil
}

func (s *clientDreamStore) Get(ctx context.Context, dreamID string) (models.Dream, bool) {
	dream, err := s.adapter.GetDream(ctx, dreamID)
	if err != nil {
		if !errors.Is(err, adapter.ErrNotFound) {
			s.logger.Err(err).Str("func", "*clientDreamStore.Get").Str("dream_id", dreamID).Msg("error getting dream")
		}
		return models.Dream{}, false
	}
	return dream, true
}

func (s *clientDreamStore) Upsert(ctx context.Context, dream models.Dream) (models.Dream, error) {
	user, ok := s.session.CurrentUser()
	if !ok {
		return models.Dream{}, ErrNotAuthenticated
	}

	if err := s.validator.Validate(ctx, dream); err != nil {
		return models.Dream{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	now := s.now().UTC()
	if dream.ID == "" {
		dream.ID = s.ids.Generate()
	}
	if dream.CreatedAt.IsZero() {
		dream.CreatedAt = now
	}
	if dream.OccurredAt.IsZero() {
		dream.OccurredAt = now
	}
	dream.UpdatedAt = now
	dream.OwnerID = user.ID
	dream.Tags = models.NormalizeTags(dream.Tags)

	saved, err := s.adapter.UpsertDream(ctx, dream)
	if err != nil {
		err = mapAdapterError(err)
		s.logger.Err(err).Str("func", "*clientDreamStore.Upsert").Str("dream_id", dream.ID).Msg("error saving dream")
		return models.Dream{}, err
	}
	return saved, nil
}

func (s *clientDreamStore) Delete(ctx context.Context, dreamID string) error {
	if _, ok := s.session.CurrentUser(); !ok {
		return ErrNotAuthenticated
	}

	if err := s.adapter.DeleteDream(ctx, dreamID); err != nil {
		err = mapAdapterError(err)
		s.logger.Err(err).Str("func", "*clientDreamStore.Delete").Str("dream_id", dreamID).Msg("error deleting dream")
		return err
	}
	return nil
}
