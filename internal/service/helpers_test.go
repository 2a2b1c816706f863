// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-dream-journal/models"
)

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []models.ChangeEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event models.ChangeEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

// recipients returns the user ids of events on table, in publish order.
func (p *recordingPublisher) recipients(table string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []string
	for _, e := range p.events {
		if e.Table == table {
			out = append(out, e.UserID)
		}
	}
	return out
}
