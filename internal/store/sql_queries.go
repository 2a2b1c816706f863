// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-dream-journal/models"
)

const (
	createUser = `INSERT INTO users (id, email, username, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING id, email, username, created_at;`

	findUserByEmail = `SELECT id, email, username, created_at, password_hash
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, email, username, created_at
    FROM users
    WHERE id = $1;`

	listProfiles = `SELECT id, username
    FROM users
    ORDER BY username, id;`
)

const (
	dreamColumnList = `d.id, d.owner_id, d.title, d.content, d.occurred_at, d.mood, d.intensity, d.lucid, d.tags, d.created_at, d.updated_at`

	// visibleToViewer is true when the viewer owns the dream or it was shared with them.
	visibleToViewer = `(d.owner_id = $2 OR EXISTS (
        SELECT 1 FROM dream_shares s WHERE s.dream_id = d.id AND s.shared_with = $2))`

	getVisibleDream = `SELECT ` + dreamColumnList + `
    FROM dreams d
    WHERE d.id = $1 AND ` + visibleToViewer + `;`

	listVisibleOwnerIDs = `SELECT DISTINCT d.owner_id
    FROM dreams d
    WHERE d.owner_id = $1 OR EXISTS (
        SELECT 1 FROM dream_shares s WHERE s.dream_id = d.id AND s.shared_with = $1)
    ORDER BY d.owner_id;`

	// upsertDream replaces an existing dream only for its owner; for anyone
	// else the conflict branch matches no row and nothing is returned.
	upsertDream = `INSERT INTO dreams AS d (id, owner_id, title, content, occurred_at, mood, intensity, lucid, tags, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    ON CONFLICT (id) DO UPDATE SET
        title = EXCLUDED.title,
        content = EXCLUDED.content,
        occurred_at = EXCLUDED.occurred_at,
        mood = EXCLUDED.mood,
        intensity = EXCLUDED.intensity,
        lucid = EXCLUDED.lucid,
        tags = EXCLUDED.tags,
        updated_at = EXCLUDED.updated_at
    WHERE d.owner_id = EXCLUDED.owner_id
    RETURNING ` + dreamColumnList + `;`

	deleteDream = `DELETE FROM dreams
    WHERE id = $1 AND owner_id = $2;`
)

const (
	lockDreamOwner = `SELECT owner_id FROM dreams WHERE id = $1 FOR SHARE;`

	insertShare = `INSERT INTO dream_shares (dream_id, shared_by, shared_with)
    VALUES ($1, $2, $3)
    ON CONFLICT (dream_id, shared_with) DO NOTHING;`

	insertNotification = `INSERT INTO notifications (id, shared_by, dream_id, shared_with)
    VALUES ($1, $2, $3, $4);`

	deleteShare = `DELETE FROM dream_shares
    WHERE dream_id = $1 AND shared_with = $2 AND shared_by = $3;`

	listSharesWith = `SELECT dream_id, shared_by, shared_with, created_at
    FROM dream_shares
    WHERE shared_with = $1
    ORDER BY created_at DESC;`

	listSharesBy = `SELECT dream_id, shared_by, shared_with, created_at
    FROM dream_shares
    WHERE shared_by = $1
    ORDER BY created_at DESC;`

	listShareRecipients = `SELECT shared_with
    FROM dream_shares
    WHERE dream_id = $1;`
)

const (
	listNotifications = `SELECT id, shared_by, dream_id, shared_with, is_read, created_at
    FROM notifications
    WHERE shared_with = $1
    ORDER BY created_at DESC, id DESC;`

	markAllNotificationsRead = `UPDATE notifications
    SET is_read = TRUE
    WHERE shared_with = $1 AND NOT is_read;`

	markNotificationRead = `UPDATE notifications
    SET is_read = TRUE
    WHERE id = $1 AND shared_with = $2;`

	countUnreadNotifications = `SELECT COUNT(*)
    FROM notifications
    WHERE shared_with = $1 AND NOT is_read;`
)

const getDeviceSetting = `SELECT value FROM device_settings WHERE key = ?;`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListOwnDreamsQuery builds the owner's dream listing with optional
// filters, newest dream first.
func buildListOwnDreamsQuery(ownerID string, filter models.DreamFilter) (string, []any, error) {
	builder := psql.
		Select(strings.Split(dreamColumnList, ", ")...).
		From("dreams d").
		Where(sq.Eq{"d.owner_id": ownerID})

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + escapeLike(q) + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"d.title": pattern},
			sq.ILike{"d.content": pattern},
		})
	}

	if filter.Mood != "" {
		builder = builder.Where(sq.Eq{"d.mood": string(filter.Mood)})
	}

	if tags := models.NormalizeTags(filter.Tags); len(tags) > 0 {
		tagsJSON, err := json.Marshal(tags)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		builder = builder.Where(sq.Expr("d.tags @> ?::jsonb", string(tagsJSON)))
	}

	if filter.DateFrom != nil {
		builder = builder.Where(sq.GtOrEq{"d.occurred_at": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		builder = builder.Where(sq.LtOrEq{"d.occurred_at": *filter.DateTo})
	}
	if filter.Day != nil {
		// Day is the first instant of the caller's calendar day
		start := filter.Day.UTC()
		builder = builder.Where(sq.And{
			sq.GtOrEq{"d.occurred_at": start},
			sq.Lt{"d.occurred_at": start.Add(24 * time.Hour)},
		})
	}

	query, args, err := builder.OrderBy("d.occurred_at DESC", "d.id").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildVisibleDreamsByIDsQuery fetches dreams by id that the viewer may see,
// newest dream first.
func buildVisibleDreamsByIDsQuery(viewerID string, dreamIDs []string) (string, []any, error) {
	query, args, err := psql.
		Select(strings.Split(dreamColumnList, ", ")...).
		From("dreams d").
		Where(sq.Eq{"d.id": dreamIDs}).
		Where(sq.Or{
			sq.Eq{"d.owner_id": viewerID},
			sq.Expr("EXISTS (SELECT 1 FROM dream_shares s WHERE s.dream_id = d.id AND s.shared_with = ?)", viewerID),
		}).
		OrderBy("d.occurred_at DESC", "d.id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSetDeviceSettingQuery(key, value string, now time.Time) (string, []any, error) {
	query, args, err := sq.
		Insert("device_settings").
		Columns("key", "value", "updated_at").
		Values(key, value, now).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteDeviceSettingsQuery(keys []string) (string, []any, error) {
	query, args, err := sq.
		Delete("device_settings").
		Where(sq.Eq{"key": keys}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDream(row rowScanner) (models.Dream, error) {
	var (
		dream    models.Dream
		mood     string
		tagsJSON []byte
	)

	if err := row.Scan(
		&dream.ID,
		&dream.OwnerID,
		&dream.Title,
		&dream.Content,
		&dream.OccurredAt,
		&mood,
		&dream.Intensity,
		&dream.Lucid,
		&tagsJSON,
		&dream.CreatedAt,
		&dream.UpdatedAt,
	); err != nil {
		return models.Dream{}, err
	}

	dream.Mood = models.Mood(mood)
	dream.Tags = []string{}
	if len(tagsJSON) > 0 {
		if err := json.Unmarshal(tagsJSON, &dream.Tags); err != nil {
			return models.Dream{}, fmt.Errorf("%w: %w", ErrDecodingTags, err)
		}
	}

	return dream, nil
}
