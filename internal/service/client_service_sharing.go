// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sort"

	"github.com/MKhiriev/go-dream-journal/internal/adapter"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/models"
)

type sharingEngine struct {
	adapter   adapter.ServerAdapter
	session   CurrentUserProvider
	directory UserDirectory

	logger *logger.Logger
}

func NewSharingEngine(serverAdapter adapter.ServerAdapter, session CurrentUserProvider, directory UserDirectory, logger *logger.Logger) SharingEngine {
	return &sharingEngine{
		adapter:   serverAdapter,
		session:   session,
		directory: directory,
		logger:    logger,
	}
}

func (e *sharingEngine) Share(ctx context.Context, dreamID, targetUserID string) error {
	user, ok := e.session.CurrentUser()
	if !ok {
		return ErrNotAuthenticated
	}

	if _, err := e.adapter.CreateShare(ctx, dreamID, targetUserID); err != nil {
		err = mapAdapterError(err)
		e.logger.Err(err).Str("func", "*sharingEngine.Share").
			Str("dream_id", dreamID).
			Str("user_id", user.ID).
			Msg("error sharing dream")
		return err
	}
	return nil
}

func (e *sharingEngine) Unshare(ctx context.Context, dreamID, targetUserID string) error {
	if _, ok := e.session.CurrentUser(); !ok {
		return ErrNotAuthenticated
	}

	if err := e.adapter.DeleteShare(ctx, dreamID, targetUserID); err != nil {
		err = mapAdapterError(err)
		e.logger.Err(err).Str("func", "*sharingEngine.Unshare").Str("dream_id", dreamID).Msg("error unsharing dream")
		return err
	}
	return nil
}

func (e *sharingEngine) ListSharedWithMe(ctx context.Context, userID string) ([]models.SharedDream, error) {
	shares, err := e.adapter.ListReceivedShares(ctx)
	if err != nil {
		err = mapAdapterError(err)
		e.logger.Err(err).Str("func", "*sharingEngine.ListSharedWithMe").Msg("error listing received shares")
		return []models.SharedDream{}, err
	}

	sharedBy := make(map[string]string, len(shares))
	dreamIDs := make([]string, 0, len(shares))
	for _, share := range shares {
		if share.SharedWith != userID {
			continue
		}
		if _, seen := sharedBy[share.DreamID]; seen {
			continue
		}
		sharedBy[share.DreamID] = share.SharedBy
		dreamIDs = append(dreamIDs, share.DreamID)
	}

	// nothing to fetch: skip the second query instead of sending an empty id set
	if len(dreamIDs) == 0 {
		return []models.SharedDream{}, nil
	}

	dreams, err := e.adapter.ListVisibleDreams(ctx, dreamIDs)
	if err != nil {
		err = mapAdapterError(err)
		e.logger.Err(err).Str("func", "*sharingEngine.ListSharedWithMe").Msg("error fetching shared dreams")
		return []models.SharedDream{}, err
	}

	sharerIDs := make([]string, 0, len(sharedBy))
	for _, id := range sharedBy {
		sharerIDs = append(sharerIDs, id)
	}
	names := e.directory.ResolveMany(ctx, sharerIDs)

	out := make([]models.SharedDream, 0, len(dreams))
	for _, dream := range dreams {
		sharer, ok := sharedBy[dream.ID]
		if !ok {
			continue
		}
		out = append(out, models.SharedDream{
			Dream:               dream,
			SharedByID:          sharer,
			SharedByDisplayName: names[sharer],
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccurredAt.After(out[j].OccurredAt)
	})
	return out, nil
}

func (e *sharingEngine) ListOwnSharedDreamIDs(ctx context.Context, userID string) (map[string]struct{}, error) {
	shares, err := e.adapter.ListSentShares(ctx)
	if err != nil {
		err = mapAdapterError(err)
		e.logger.Err(err).Str("func", "*sharingEngine.ListOwnSharedDreamIDs").Msg("error listing sent shares")
		return map[string]struct{}{}, err
	}

	ids := make(map[string]struct{}, len(shares))
	for _, share := range shares {
		if share.SharedBy == userID {
			ids[share.DreamID] = struct{}{}
		}
	}
	return ids, nil
}

func (e *sharingEngine) ListShareableUsers(ctx context.Context, currentUserID string) ([]models.ShareableUser, error) {
	profiles, err := e.directory.Profiles(ctx)
	if err == nil && len(profiles) > 0 {
		users := make([]models.ShareableUser, 0, len(profiles))
		for _, p := range profiles {
			if p.ID == currentUserID {
				continue
			}
			name := p.DisplayName
			if name == "" {
				name = PlaceholderName(p.ID)
			}
			users = append(users, models.ShareableUser{ID: p.ID, DisplayName: name})
		}
		return users, nil
	}

	// no profiles: derive candidates from the owners of visible dreams
	ownerIDs, ownersErr := e.adapter.ListVisibleOwnerIDs(ctx)
	if ownersErr != nil {
		ownersErr = mapAdapterError(ownersErr)
		e.logger.Err(ownersErr).Str("func", "*sharingEngine.ListShareableUsers").Msg("error listing dream owners")
		return []models.ShareableUser{}, ownersErr
	}

	candidates := make([]string, 0, len(ownerIDs))
	seen := make(map[string]struct{}, len(ownerIDs))
	for _, id := range ownerIDs {
		if id == "" || id == currentUserID {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		candidates = append(candidates, id)
	}

	names := e.directory.ResolveMany(ctx, candidates)
	users := make([]models.ShareableUser, 0, len(candidates))
	for _, id := range candidates {
		users = append(users, models.ShareableUser{ID: id, DisplayName: names[id]})
	}
	return users, nil
}
