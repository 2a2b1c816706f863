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
	"github.com/MKhiriev/go-dream-journal/internal/utils"
	"github.com/MKhiriev/go-dream-journal/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	ids    utils.UUIDGenerator
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns it with the server-assigned
// fields (ID, CreatedAt) filled in. The password is never returned.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrLoginAlreadyExists].
//   - Any other driver-level error → wrapped with [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User, passwordHash string) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.ID == "" {
		user.ID = r.ids.Generate()
	}

	var created models.User
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, createUser, user.ID, user.Email, user.Username, passwordHash).
			Scan(&created.ID, &created.Email, &created.Username, &created.CreatedAt)
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrLoginAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindUserByEmail retrieves the account registered with email together with
// its stored password hash.
//
// Returns [ErrNoUserWasFound] when no account matches.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, string, error) {
	log := logger.FromContext(ctx)

	var (
		found        models.User
		passwordHash string
	)
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, findUserByEmail, email).
			Scan(&found.ID, &found.Email, &found.Username, &found.CreatedAt, &passwordHash)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, "", ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user")
		return models.User{}, "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, passwordHash, nil
}

// FindUserByID retrieves an account by its id.
//
// Returns [ErrNoUserWasFound] when no account matches.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, findUserByID, userID).
			Scan(&found.ID, &found.Email, &found.Username, &found.CreatedAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// ListProfiles returns the public profile of every account, ordered by
// username. Empty usernames are reported as [models.AnonymousName].
func (r *userRepository) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listProfiles)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListProfiles").Msg("error listing profiles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	profiles := make([]models.Profile, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username); err != nil {
			log.Err(err).Str("func", "*userRepository.ListProfiles").Msg("error scanning profile")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		profiles = append(profiles, models.Profile{ID: u.ID, DisplayName: u.DisplayName()})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return profiles, nil
}
