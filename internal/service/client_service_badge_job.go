// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-dream-journal/internal/workers"
)

type badgeRefreshJob struct {
	notifications NotificationEngine

	mu       sync.Mutex
	periodic *workers.Periodic
}

// NewBadgeRefreshJob creates a job that polls notifications.UnreadCount on a
// ticker. The job is idle until Start is called.
func NewBadgeRefreshJob(notifications NotificationEngine) BadgeRefreshJob {
	return &badgeRefreshJob{notifications: notifications}
}

// Start stops a running job, then polls every interval. A failed poll is
// skipped so the badge keeps its last known value.
func (j *badgeRefreshJob) Start(ctx context.Context, userID string, interval time.Duration, onCount func(int)) {
	j.Stop()

	periodic := workers.NewPeriodic(ctx, interval, func(ctx context.Context) {
		count, err := j.notifications.UnreadCount(ctx, userID)
		if err != nil {
			return
		}
		onCount(count)
	})

	j.mu.Lock()
	j.periodic = periodic
	j.mu.Unlock()

	periodic.Run()
}

// Stop is safe to call when the job is not running.
func (j *badgeRefreshJob) Stop() {
	j.mu.Lock()
	periodic := j.periodic
	j.periodic = nil
	j.mu.Unlock()

	if periodic != nil {
		periodic.Stop()
	}
}
