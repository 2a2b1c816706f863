// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/MKhiriev/go-dream-journal/internal/adapter"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/models"
)

const backupFileMode = 0o600

type backupService struct {
	adapter adapter.ServerAdapter
	dreams  DreamStore

	logger *logger.Logger
}

func NewBackupService(serverAdapter adapter.ServerAdapter, dreams DreamStore, logger *logger.Logger) BackupService {
	return &backupService{
		adapter: serverAdapter,
		dreams:  dreams,
		logger:  logger,
	}
}

// ExportJSON fails instead of exporting an empty journal when the dreams
// cannot be listed.
func (s *backupService) ExportJSON(ctx context.Context) (string, error) {
	dreams, err := s.ownDreams(ctx)
	if err != nil {
		return "", err
	}

	payload, err := json.MarshalIndent(dreams, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error encoding backup: %w", err)
	}
	return string(payload), nil
}

// ImportJSON stops at the first record that fails and returns the counts
// reached so far.
func (s *backupService) ImportJSON(ctx context.Context, payload string) (models.ImportResult, error) {
	var records []models.Dream
	decoder := json.NewDecoder(bytes.NewBufferString(payload))
	if err := decoder.Decode(&records); err != nil {
		return models.ImportResult{}, fmt.Errorf("%w: %w", ErrInvalidBackup, err)
	}

	existing, err := s.ownDreams(ctx)
	if err != nil {
		return models.ImportResult{}, err
	}
	known := make(map[string]struct{}, len(existing))
	for _, d := range existing {
		known[d.ID] = struct{}{}
	}

	var result models.ImportResult
	for i, record := range records {
		_, exists := known[record.ID]
		exists = exists && record.ID != ""

		saved, upsertErr := s.dreams.Upsert(ctx, record)
		if upsertErr != nil {
			s.logger.Err(upsertErr).Str("func", "*backupService.ImportJSON").Int("record", i).Msg("error importing dream")
			return result, fmt.Errorf("record %d: %w", i, upsertErr)
		}

		if exists {
			result.Updated++
		} else {
			result.Imported++
		}
		known[saved.ID] = struct{}{}
	}
	return result, nil
}

func (s *backupService) ExportToFile(ctx context.Context, path string) error {
	payload, err := s.ExportJSON(ctx)
	if err != nil {
		return err
	}

	if err = os.WriteFile(path, []byte(payload), backupFileMode); err != nil {
		s.logger.Err(err).Str("func", "*backupService.ExportToFile").Str("path", path).Msg("error writing backup")
		return fmt.Errorf("error writing backup file: %w", err)
	}
	return nil
}

func (s *backupService) ImportFromFile(ctx context.Context, path string) (models.ImportResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		s.logger.Err(err).Str("func", "*backupService.ImportFromFile").Str("path", path).Msg("error reading backup")
		return models.ImportResult{}, fmt.Errorf("error reading backup file: %w", err)
	}
	if !utf8.Valid(raw) {
		return models.ImportResult{}, fmt.Errorf("%w: file is not UTF-8", ErrInvalidBackup)
	}

	return s.ImportJSON(ctx, string(raw))
}

func (s *backupService) ownDreams(ctx context.Context) ([]models.Dream, error) {
	dreams, err := s.adapter.ListDreams(ctx, models.DreamFilter{})
	if err != nil {
		err = mapAdapterError(err)
		s.logger.Err(err).Str("func", "*backupService.ownDreams").Msg("error listing dreams")
		return nil, err
	}
	if dreams == nil {
		dreams = []models.Dream{}
	}
	return dreams, nil
}
