// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/models"
)

var dreamColumns = []string{"id", "owner_id", "title", "content", "occurred_at", "mood", "intensity", "lucid", "tags", "created_at", "updated_at"}

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	db := newPostgresDB(conn, logger.Nop())
	db.retryDelay = time.Millisecond
	return db, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func sampleDream() models.Dream {
	at := time.Date(2024, 1, 25, 8, 30, 0, 0, time.UTC)
	return models.Dream{
		ID:         "0190a000-0000-7000-8000-000000000001",
		OwnerID:    "0190a000-0000-7000-8000-0000000000aa",
		Title:      "Flying Over Mountains",
		Content:    "I was soaring above snow-capped peaks.",
		OccurredAt: at,
		Mood:       models.MoodHappy,
		Intensity:  4,
		Lucid:      true,
		Tags:       []string{"flying", "mountains"},
		CreatedAt:  at,
		UpdatedAt:  at,
	}
}

func dreamRows(dreams ...models.Dream) *sqlmock.Rows {
	rows := sqlmock.NewRows(dreamColumns)
	for _, d := range dreams {
		tags, _ := json.Marshal(models.NormalizeTags(d.Tags))
		rows.AddRow(d.ID, d.OwnerID, d.Title, d.Content, d.OccurredAt, string(d.Mood), d.Intensity, d.Lucid, tags, d.CreatedAt, d.UpdatedAt)
	}
	return rows
}

