// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-dream-journal/internal/adapter"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/mock"
	"github.com/MKhiriev/go-dream-journal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationEngine_FlightScenario(t *testing.T) {
	_, alice, bob := newAliceAndBob()
	ctx := context.Background()
	flight := alice.mustSave(t, "Flight", models.MoodHappy, day)

	require.NoError(t, alice.sharing.Share(ctx, flight.ID, bob.user.ID))

	count, err := bob.notifications.UnreadCount(ctx, bob.user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	views, err := bob.notifications.Open(ctx, bob.user.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Alice", views[0].SharedBy)
	assert.Equal(t, alice.user.ID, views[0].SharedByID)
	assert.Equal(t, "Flight", views[0].DreamTitle)
	assert.Equal(t, models.MoodHappy, views[0].DreamMood)
	assert.True(t, views[0].IsRead)

	count, err = bob.notifications.UnreadCount(ctx, bob.user.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestNotificationEngine_SharerRegisteredAfterDirectoryLoaded(t *testing.T) {
	b := newFakeBackend(models.Profile{ID: "bob-0002-uuid", DisplayName: "Bob"})
	bob := newTestClient(b, "bob-0002-uuid")
	ctx := context.Background()

	users, err := bob.sharing.ListShareableUsers(ctx, bob.user.ID)
	require.NoError(t, err)
	assert.Empty(t, users)

	b.mu.Lock()
	b.profiles = append(b.profiles, models.Profile{ID: "alice-0001-uuid", DisplayName: "Alice"})
	b.mu.Unlock()
	alice := newTestClient(b, "alice-0001-uuid")
	flight := alice.mustSave(t, "Flight", models.MoodHappy, day)
	require.NoError(t, alice.sharing.Share(ctx, flight.ID, bob.user.ID))

	views, err := bob.notifications.Open(ctx, bob.user.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Alice", views[0].SharedBy)

	shared, err := bob.sharing.ListSharedWithMe(ctx, bob.user.ID)
	require.NoError(t, err)
	require.Len(t, shared, 1)
	assert.Equal(t, "Alice", shared[0].SharedByDisplayName)
}

func TestNotificationEngine_RepeatedShareNotifiesOnce(t *testing.T) {
	_, alice, bob := newAliceAndBob()
	ctx := context.Background()
	dream := alice.mustSave(t, "Again", models.MoodWeird, day)

	require.NoError(t, alice.sharing.Share(ctx, dream.ID, bob.user.ID))
	require.NoError(t, alice.sharing.Share(ctx, dream.ID, bob.user.ID))

	count, err := bob.notifications.UnreadCount(ctx, bob.user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNotificationEngine_MarkAllRead(t *testing.T) {
	_, alice, bob := newAliceAndBob()
	ctx := context.Background()
	for _, title := range []string{"a", "b", "c"} {
		d := alice.mustSave(t, title, models.MoodSad, day)
		require.NoError(t, alice.sharing.Share(ctx, d.ID, bob.user.ID))
	}

	require.NoError(t, bob.notifications.MarkAllRead(ctx, bob.user.ID))
	// idempotent
	require.NoError(t, bob.notifications.MarkAllRead(ctx, bob.user.ID))

	views, err := bob.notifications.ListNotifications(ctx, bob.user.ID)
	require.NoError(t, err)
	require.Len(t, views, 3)
	for _, v := range views {
		assert.True(t, v.IsRead)
	}

	count, err := bob.notifications.UnreadCount(ctx, bob.user.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestNotificationEngine_MarkOneRead(t *testing.T) {
	_, alice, bob := newAliceAndBob()
	ctx := context.Background()
	d1 := alice.mustSave(t, "one", models.MoodSad, day)
	d2 := alice.mustSave(t, "two", models.MoodSad, day)
	require.NoError(t, alice.sharing.Share(ctx, d1.ID, bob.user.ID))
	require.NoError(t, alice.sharing.Share(ctx, d2.ID, bob.user.ID))

	views, err := bob.notifications.ListNotifications(ctx, bob.user.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)

	require.NoError(t, bob.notifications.MarkOneRead(ctx, views[0].ID))
	require.NoError(t, bob.notifications.MarkOneRead(ctx, views[0].ID))

	count, err := bob.notifications.UnreadCount(ctx, bob.user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNotificationEngine_NewestFirst(t *testing.T) {
	_, alice, bob := newAliceAndBob()
	ctx := context.Background()
	first := alice.mustSave(t, "first", models.MoodSad, day)
	second := alice.mustSave(t, "second", models.MoodSad, day)
	require.NoError(t, alice.sharing.Share(ctx, first.ID, bob.user.ID))
	require.NoError(t, alice.sharing.Share(ctx, second.ID, bob.user.ID))

	views, err := bob.notifications.ListNotifications(ctx, bob.user.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "second", views[0].DreamTitle)
	assert.Equal(t, "first", views[1].DreamTitle)
}

func TestNotificationEngine_DanglingDream(t *testing.T) {
	_, alice, bob := newAliceAndBob()
	ctx := context.Background()
	gone := alice.mustSave(t, "Gone", models.MoodScary, day)
	require.NoError(t, alice.sharing.Share(ctx, gone.ID, bob.user.ID))
	require.NoError(t, alice.dreams.Delete(ctx, gone.ID))

	views, err := bob.notifications.ListNotifications(ctx, bob.user.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, gone.ID, views[0].DreamID)
	assert.Equal(t, models.DeletedDreamTitle, views[0].DreamTitle)
	assert.Equal(t, models.MoodNeutral, views[0].DreamMood)
	assert.Equal(t, "Alice", views[0].SharedBy)
}

func TestNotificationEngine_UnknownSharerGetsPlaceholder(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	engine := NewNotificationEngine(api, NewUserDirectory(api, logger.Nop()), logger.Nop())
	ctx := context.Background()

	api.EXPECT().ListNotifications(ctx).Return([]models.Notification{
		{ID: "n1", SharedBy: "0190abcdef-1234", DreamID: "d1", SharedWith: "u2", CreatedAt: day},
	}, nil)
	api.EXPECT().ListVisibleDreams(ctx, []string{"d1"}).Return([]models.Dream{{ID: "d1", Title: "Sea", Mood: models.MoodRomantic}}, nil)
	api.EXPECT().ListProfiles(ctx).Return(nil, nil)

	views, err := engine.ListNotifications(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "user-0190abcd", views[0].SharedBy)
	assert.Equal(t, "Sea", views[0].DreamTitle)
}

func TestNotificationEngine_Failures(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	engine := NewNotificationEngine(api, NewUserDirectory(api, logger.Nop()), logger.Nop())
	ctx := context.Background()

	api.EXPECT().ListNotifications(ctx).Return(nil, adapter.ErrBadGateway)
	views, err := engine.ListNotifications(ctx, "u2")
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.NotNil(t, views)
	assert.Empty(t, views)

	api.EXPECT().UnreadCount(ctx).Return(7, adapter.ErrRequestFailed)
	count, err := engine.UnreadCount(ctx, "u2")
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.Zero(t, count)

	api.EXPECT().MarkAllNotificationsRead(ctx).Return(adapter.ErrInternalServerError)
	assert.ErrorIs(t, engine.MarkAllRead(ctx, "u2"), ErrBackendUnavailable)

	api.EXPECT().MarkNotificationRead(ctx, "n1").Return(adapter.ErrRequestFailed)
	assert.ErrorIs(t, engine.MarkOneRead(ctx, "n1"), ErrBackendUnavailable)
}

func TestNotificationEngine_Open_MarkFailureKeepsUnreadState(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockServerAdapter(ctrl)
	engine := NewNotificationEngine(api, NewUserDirectory(api, logger.Nop()), logger.Nop())
	ctx := context.Background()

	api.EXPECT().ListNotifications(ctx).Return([]models.Notification{
		{ID: "n1", SharedBy: "u1", DreamID: "d1", SharedWith: "u2", CreatedAt: time.Now()},
	}, nil)
	api.EXPECT().ListVisibleDreams(ctx, gomock.Any()).Return(nil, nil)
	api.EXPECT().ListProfiles(ctx).Return(nil, nil)
	api.EXPECT().MarkAllNotificationsRead(ctx).Return(adapter.ErrRequestFailed)

	views, err := engine.Open(ctx, "u2")
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	require.Len(t, views, 1)
	assert.False(t, views[0].IsRead)
}
