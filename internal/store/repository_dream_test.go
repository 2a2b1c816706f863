// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/models"
)

func newTestDreamRepo(t *testing.T) (*dreamRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &dreamRepository{db: db, logger: logger.Nop()}, mock
}

// ── ListOwnDreams ───────────────────────────────────────────────────────────

func TestListOwnDreams_ScansTags(t *testing.T) {
	repo, mock := newTestDreamRepo(t)
	d := sampleDream()

	mock.ExpectQuery(`SELECT .+ FROM dreams d WHERE d.owner_id = \$1 AND d.mood = \$2`).
		WithArgs(d.OwnerID, "happy").
		WillReturnRows(dreamRows(d))

	dreams, err := repo.ListOwnDreams(context.Background(), d.OwnerID, models.DreamFilter{Mood: models.MoodHappy})
	require.NoError(t, err)
	require.Len(t, dreams, 1)
	assert.Equal(t, d, dreams[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListOwnDreams_EmptyIsNotNil(t *testing.T) {
	repo, mock := newTestDreamRepo(t)

	mock.ExpectQuery("SELECT .+ FROM dreams d").
		WillReturnRows(sqlmock.NewRows(dreamColumns))

	dreams, err := repo.ListOwnDreams(context.Background(), "owner", models.DreamFilter{})
	require.NoError(t, err)
	assert.NotNil(t, dreams)
	assert.Empty(t, dreams)
}

func TestListOwnDreams_QueryError(t *testing.T) {
	repo, mock := newTestDreamRepo(t)

	mock.ExpectQuery("SELECT .+ FROM dreams d").
		WillReturnError(errors.New("boom"))

	_, err := repo.ListOwnDreams(context.Background(), "owner", models.DreamFilter{})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListOwnDreams_BadTagsJSON(t *testing.T) {
	repo, mock := newTestDreamRepo(t)
	d := sampleDream()

	rows := sqlmock.NewRows(dreamColumns).
		AddRow(d.ID, d.OwnerID, d.Title, d.Content, d.OccurredAt, "happy", 3, false, []byte("{not json"), d.CreatedAt, d.UpdatedAt)
	mock.ExpectQuery("SELECT .+ FROM dreams d").WillReturnRows(rows)

	_, err := repo.ListOwnDreams(context.Background(), d.OwnerID, models.DreamFilter{})
	assert.ErrorIs(t, err, ErrDecodingTags)
}

// ── GetVisibleDream ─────────────────────────────────────────────────────────

func TestGetVisibleDream(t *testing.T) {
	repo, mock := newTestDreamRepo(t)
	d := sampleDream()

	mock.ExpectQuery(`SELECT .+ FROM dreams d\s+WHERE d.id = \$1`).
		WithArgs(d.ID, "viewer").
		WillReturnRows(dreamRows(d))

	got, err := repo.GetVisibleDream(context.Background(), "viewer", d.ID)
	require.NoError(t, err)
	assert.Equal(t, d.Title, got.Title)
}

func TestGetVisibleDream_Hidden(t *testing.T) {
	repo, mock := newTestDreamRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM dreams d`).
		WillReturnRows(sqlmock.NewRows(dreamColumns))

	_, err := repo.GetVisibleDream(context.Background(), "stranger", "d-1")
	assert.ErrorIs(t, err, ErrDreamNotFound)
}

// ── ListVisibleDreamsByIDs ──────────────────────────────────────────────────

func TestListVisibleDreamsByIDs_NoIDsSkipsQuery(t *testing.T) {
	repo, mock := newTestDreamRepo(t)

	dreams, err := repo.ListVisibleDreamsByIDs(context.Background(), "viewer", nil)
	require.NoError(t, err)
	assert.Empty(t, dreams)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListVisibleDreamsByIDs(t *testing.T) {
	repo, mock := newTestDreamRepo(t)
	d := sampleDream()

	mock.ExpectQuery(`SELECT .+ FROM dreams d WHERE d.id IN \(\$1,\$2\)`).
		WithArgs("a", "b", "viewer", "viewer").
		WillReturnRows(dreamRows(d))

	dreams, err := repo.ListVisibleDreamsByIDs(context.Background(), "viewer", []string{"a", "b"})
	require.NoError(t, err)
	assert.Len(t, dreams, 1)
}

// ── ListVisibleOwnerIDs ─────────────────────────────────────────────────────

func TestListVisibleOwnerIDs(t *testing.T) {
	repo, mock := newTestDreamRepo(t)

	mock.ExpectQuery("SELECT DISTINCT d.owner_id").
		WithArgs("viewer").
		WillReturnRows(sqlmock.NewRows([]string{"owner_id"}).AddRow("owner-1").AddRow("viewer"))

	ids, err := repo.ListVisibleOwnerIDs(context.Background(), "viewer")
	require.NoError(t, err)
	assert.Equal(t, []string{"owner-1", "viewer"}, ids)
}

// ── UpsertDream ─────────────────────────────────────────────────────────────

func TestUpsertDream_Success(t *testing.T) {
	repo, mock := newTestDreamRepo(t)
	d := sampleDream()

	mock.ExpectQuery("INSERT INTO dreams").
		WithArgs(d.ID, d.OwnerID, d.Title, d.Content, d.OccurredAt, "happy", d.Intensity, d.Lucid, `["flying","mountains"]`, d.CreatedAt, d.UpdatedAt).
		WillReturnRows(dreamRows(d))

	saved, err := repo.UpsertDream(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, d, saved)
}

func TestUpsertDream_ForeignDream(t *testing.T) {
	repo, mock := newTestDreamRepo(t)

	mock.ExpectQuery("INSERT INTO dreams").
		WillReturnRows(sqlmock.NewRows(dreamColumns))

	_, err := repo.UpsertDream(context.Background(), sampleDream())
	assert.ErrorIs(t, err, ErrDreamNotOwned)
}

// ── DeleteDream ─────────────────────────────────────────────────────────────

func TestDeleteDream(t *testing.T) {
	repo, mock := newTestDreamRepo(t)

	mock.ExpectExec("DELETE FROM dreams").
		WithArgs("d-1", "owner").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteDream(context.Background(), "owner", "d-1"))
}

func TestDeleteDream_NothingDeleted(t *testing.T) {
	repo, mock := newTestDreamRepo(t)

	mock.ExpectExec("DELETE FROM dreams").
		WithArgs("d-1", "stranger").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteDream(context.Background(), "stranger", "d-1"), ErrDreamNotFound)
}
