// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/models"
)

type shareRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewShareRepository constructs a [ShareRepository] on db.
func NewShareRepository(db *DB, logger *logger.Logger) ShareRepository {
	logger.Debug().Msg("creating share repository")
	return &shareRepository{
		db:     db,
		logger: logger,
	}
}

// CreateShare grants share.SharedWith read access to the dream.
//
// Within one transaction it:
//  1. locks the dream row and checks share.SharedBy owns it;
//  2. inserts the share, ignoring a duplicate (dream, recipient) pair;
//  3. writes a notification with notificationID when the share is new.
//
// Returns true when a new share was created.
func (r *shareRepository) CreateShare(ctx context.Context, share models.Share, notificationID string) (bool, error) {
	log := logger.FromContext(ctx)

	var created bool
	err := r.db.withRetry(ctx, func() error {
		created = false
		return r.db.withTx(ctx, func(tx *sql.Tx) error {
			var ownerID string
			if err := tx.QueryRowContext(ctx, lockDreamOwner, share.DreamID).Scan(&ownerID); err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return ErrDreamNotFound
				}
				return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
			}
			if ownerID != share.SharedBy {
				return ErrDreamNotOwned
			}

			res, err := tx.ExecContext(ctx, insertShare, share.DreamID, share.SharedBy, share.SharedWith)
			if err != nil {
				// shared_with references a user that does not exist
				if hasPgCode(err, pgerrcode.ForeignKeyViolation) {
					return fmt.Errorf("%w: %w", ErrNoUserWasFound, err)
				}
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			affected, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			if affected == 0 {
				return nil
			}

			if _, err = tx.ExecContext(ctx, insertNotification, notificationID, share.SharedBy, share.DreamID, share.SharedWith); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			created = true
			return nil
		})
	})
	if err != nil {
		if !errors.Is(err, ErrDreamNotFound) && !errors.Is(err, ErrDreamNotOwned) && !errors.Is(err, ErrNoUserWasFound) {
			log.Err(err).Str("func", "*shareRepository.CreateShare").Msg("error creating share")
		}
		return false, err
	}

	return created, nil
}

// DeleteShare revokes the share. Only the sharer can revoke; a missing share
// is not an error. The notification is left in place.
func (r *shareRepository) DeleteShare(ctx context.Context, share models.Share) error {
	err := r.db.withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, deleteShare, share.DreamID, share.SharedWith, share.SharedBy)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*shareRepository.DeleteShare").Msg("error deleting share")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// ListSharesWith returns shares received by userID, newest first.
func (r *shareRepository) ListSharesWith(ctx context.Context, userID string) ([]models.Share, error) {
	return r.listShares(ctx, "*shareRepository.ListSharesWith", listSharesWith, userID)
}

// ListSharesBy returns shares created by userID, newest first.
func (r *shareRepository) ListSharesBy(ctx context.Context, userID string) ([]models.Share, error) {
	return r.listShares(ctx, "*shareRepository.ListSharesBy", listSharesBy, userID)
}

func (r *shareRepository) ListRecipients(ctx context.Context, dreamID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, listShareRecipients, dreamID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*shareRepository.ListRecipients").Msg("error listing recipients")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanStrings(rows)
}

func (r *shareRepository) listShares(ctx context.Context, funcName, query, userID string) ([]models.Share, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error listing shares")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	shares := make([]models.Share, 0)
	for rows.Next() {
		var s models.Share
		if err := rows.Scan(&s.DreamID, &s.SharedBy, &s.SharedWith, &s.CreatedAt); err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning share")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		shares = append(shares, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return shares, nil
}
