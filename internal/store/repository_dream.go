// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/models"
)

// dreamRepository is the PostgreSQL-backed implementation of [DreamRepository].
type dreamRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDreamRepository constructs a [DreamRepository] on db.
func NewDreamRepository(db *DB, logger *logger.Logger) DreamRepository {
	logger.Debug().Msg("creating dream repository")
	return &dreamRepository{
		db:     db,
		logger: logger,
	}
}

// ListOwnDreams returns the owner's dreams matching filter, newest first.
// An empty result is an empty, non-nil slice.
func (r *dreamRepository) ListOwnDreams(ctx context.Context, ownerID string, filter models.DreamFilter) ([]models.Dream, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListOwnDreamsQuery(ownerID, filter)
	if err != nil {
		log.Err(err).Str("func", "*dreamRepository.ListOwnDreams").Msg("error building query")
		return nil, err
	}

	return r.queryDreams(ctx, "*dreamRepository.ListOwnDreams", query, args...)
}

// GetVisibleDream returns the dream if viewerID owns it or it was shared
// with viewerID. Anything else is [ErrDreamNotFound].
func (r *dreamRepository) GetVisibleDream(ctx context.Context, viewerID, dreamID string) (models.Dream, error) {
	log := logger.FromContext(ctx)

	var dream models.Dream
	err := r.db.withRetry(ctx, func() error {
		var scanErr error
		dream, scanErr = scanDream(r.db.QueryRowContext(ctx, getVisibleDream, dreamID, viewerID))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Dream{}, ErrDreamNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*dreamRepository.GetVisibleDream").Msg("error getting dream")
		return models.Dream{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return dream, nil
}

// ListVisibleDreamsByIDs returns those of dreamIDs visible to viewerID.
// Unknown or hidden ids are silently skipped.
func (r *dreamRepository) ListVisibleDreamsByIDs(ctx context.Context, viewerID string, dreamIDs []string) ([]models.Dream, error) {
	if len(dreamIDs) == 0 {
		return []models.Dream{}, nil
	}

	query, args, err := buildVisibleDreamsByIDsQuery(viewerID, dreamIDs)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*dreamRepository.ListVisibleDreamsByIDs").Msg("error building query")
		return nil, err
	}

	return r.queryDreams(ctx, "*dreamRepository.ListVisibleDreamsByIDs", query, args...)
}

// ListVisibleOwnerIDs returns the distinct owners of every dream the viewer
// can see, including the viewer when they own at least one dream.
func (r *dreamRepository) ListVisibleOwnerIDs(ctx context.Context, viewerID string) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listVisibleOwnerIDs, viewerID)
	if err != nil {
		log.Err(err).Str("func", "*dreamRepository.ListVisibleOwnerIDs").Msg("error listing owners")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanStrings(rows)
}

// UpsertDream inserts a new dream or replaces the owner's existing one.
// Overwriting someone else's dream yields [ErrDreamNotOwned].
func (r *dreamRepository) UpsertDream(ctx context.Context, dream models.Dream) (models.Dream, error) {
	log := logger.FromContext(ctx)

	tagsJSON, err := json.Marshal(models.NormalizeTags(dream.Tags))
	if err != nil {
		return models.Dream{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var saved models.Dream
	err = r.db.withRetry(ctx, func() error {
		var scanErr error
		saved, scanErr = scanDream(r.db.QueryRowContext(ctx, upsertDream,
			dream.ID,
			dream.OwnerID,
			dream.Title,
			dream.Content,
			dream.OccurredAt,
			string(dream.Mood),
			dream.Intensity,
			dream.Lucid,
			string(tagsJSON),
			dream.CreatedAt,
			dream.UpdatedAt,
		))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		log.Warn().Str("func", "*dreamRepository.UpsertDream").
			Str("dream_id", dream.ID).
			Msg("upsert rejected: dream belongs to another user")
		return models.Dream{}, ErrDreamNotOwned
	}
	if err != nil {
		log.Err(err).Str("func", "*dreamRepository.UpsertDream").Msg("error saving dream")
		return models.Dream{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

// DeleteDream removes the owner's dream. Shares cascade; notifications are
// kept. A dream that does not exist or belongs to someone else yields
// [ErrDreamNotFound].
func (r *dreamRepository) DeleteDream(ctx context.Context, ownerID, dreamID string) error {
	log := logger.FromContext(ctx)

	var affected int64
	err := r.db.withRetry(ctx, func() error {
		res, execErr := r.db.ExecContext(ctx, deleteDream, dreamID, ownerID)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*dreamRepository.DeleteDream").Msg("error deleting dream")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrDreamNotFound
	}

	return nil
}

func (r *dreamRepository) queryDreams(ctx context.Context, funcName, query string, args ...any) ([]models.Dream, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error querying dreams")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	dreams := make([]models.Dream, 0)
	for rows.Next() {
		dream, err := scanDream(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning dream")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		dreams = append(dreams, dream)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return dreams, nil
}

func scanStrings(rows *sql.Rows) ([]string, error) {
	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return values, nil
}
