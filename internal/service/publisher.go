// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-dream-journal/models"
)

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, models.ChangeEvent) {}

// publishTo sends one event per distinct non-empty user id.
func publishTo(ctx context.Context, publisher ChangePublisher, table string, changeType models.ChangeType, recordID string, userIDs ...string) {
	now := time.Now().UTC()
	seen := make(map[string]struct{}, len(userIDs))
	for _, userID := range userIDs {
		if userID == "" {
			continue
		}
		if _, ok := seen[userID]; ok {
			continue
		}
		seen[userID] = struct{}{}

		publisher.Publish(ctx, models.ChangeEvent{
			Table:    table,
			Type:     changeType,
			RecordID: recordID,
			UserID:   userID,
			At:       now,
		})
	}
}
