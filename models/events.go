// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ChangeType is the kind of row change carried by a [ChangeEvent].
type ChangeType string

const (
	ChangeUpsert ChangeType = "upsert"
	ChangeDelete ChangeType = "delete"
	ChangeInsert ChangeType = "insert"
	ChangeUpdate ChangeType = "update"
)

// ChangeEvent is pushed over the realtime channel to every subscriber of
// UserID whenever a row affecting that user changes.
type ChangeEvent struct {
	Table    string     `json:"table"`
	Type     ChangeType `json:"type"`
	RecordID string     `json:"record_id"`
	UserID   string     `json:"user_id"`
	At       time.Time  `json:"at"`
}

// ImportResult counts the outcome of a JSON import.
type ImportResult struct {
	Imported int `json:"imported"`
	Updated  int `json:"updated"`
}

// PinRecord is the persisted PIN lock state.
type PinRecord struct {
	PinHash string `json:"pinHash"`
	Enabled bool   `json:"enabled"`
}
