// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-dream-journal/internal/adapter"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/models"
)

const placeholderIDLength = 8

// PlaceholderName is the display name of a user the directory cannot resolve.
func PlaceholderName(userID string) string {
	runes := []rune(userID)
	if len(runes) > placeholderIDLength {
		runes = runes[:placeholderIDLength]
	}
	return "user-" + string(runes)
}

// profileDirectory resolves names through the server's profile listing and
// caches the result until Invalidate. An id missing from the cache triggers
// one refetch, since the user may have registered after the cache was
// filled; ids still missing afterwards are remembered as unknown.
type profileDirectory struct {
	adapter adapter.ServerAdapter

	mu       sync.RWMutex
	loaded   bool
	profiles []models.Profile
	names    map[string]string
	unknown  map[string]struct{}

	logger *logger.Logger
}

func NewUserDirectory(serverAdapter adapter.ServerAdapter, logger *logger.Logger) UserDirectory {
	return &profileDirectory{
		adapter: serverAdapter,
		names:   map[string]string{},
		unknown: map[string]struct{}{},
		logger:  logger,
	}
}

func (d *profileDirectory) Resolve(ctx context.Context, userID string) string {
	return d.ResolveMany(ctx, []string{userID})[userID]
}

func (d *profileDirectory) ResolveMany(ctx context.Context, userIDs []string) map[string]string {
	// a lookup failure leaves every id on its placeholder
	_, fetched, err := d.load(ctx, false)
	if err == nil && !fetched && d.hasMissing(userIDs) {
		_, fetched, _ = d.load(ctx, true)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	out := make(map[string]string, len(userIDs))
	for _, id := range userIDs {
		name, ok := d.names[id]
		if !ok && fetched {
			d.unknown[id] = struct{}{}
		}
		if ok && name != "" {
			out[id] = name
			continue
		}
		out[id] = PlaceholderName(id)
	}
	return out
}

func (d *profileDirectory) Profiles(ctx context.Context) ([]models.Profile, error) {
	profiles, _, err := d.load(ctx, false)
	return profiles, err
}

// load returns the cached profiles, fetching them when the cache is empty or
// force is set. fetched reports whether the server was asked successfully.
func (d *profileDirectory) load(ctx context.Context, force bool) (profiles []models.Profile, fetched bool, err error) {
	if !force {
		d.mu.RLock()
		if d.loaded {
			profiles = append([]models.Profile(nil), d.profiles...)
			d.mu.RUnlock()
			return profiles, false, nil
		}
		d.mu.RUnlock()
	}

	profiles, err = d.adapter.ListProfiles(ctx)
	if err != nil {
		err = mapAdapterError(err)
		d.logger.Err(err).Str("func", "*profileDirectory.load").Msg("error listing profiles")
		return []models.Profile{}, false, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.loaded = true
	d.profiles = append([]models.Profile{}, profiles...)
	d.names = make(map[string]string, len(profiles))
	for _, p := range profiles {
		d.names[p.ID] = p.DisplayName
	}
	return append([]models.Profile{}, profiles...), true, nil
}

// hasMissing reports whether some id is neither cached nor known to be
// unknown.
func (d *profileDirectory) hasMissing(userIDs []string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, id := range userIDs {
		if _, ok := d.names[id]; ok {
			continue
		}
		if _, ok := d.unknown[id]; ok {
			continue
		}
		return true
	}
	return false
}

func (d *profileDirectory) Invalidate() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.loaded = false
	d.profiles = nil
	d.names = map[string]string{}
	d.unknown = map[string]struct{}{}
}
