// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DeletedDreamTitle stands in for the title of a dream that no longer exists.
const DeletedDreamTitle = "(deleted dream)"

// Notification tells SharedWith that SharedBy shared DreamID. DreamID is not
// a foreign key: the dream may be deleted after the notification was created.
type Notification struct {
	ID         string    `json:"id"`
	SharedBy   string    `json:"shared_by"`
	DreamID    string    `json:"dream_id"`
	SharedWith string    `json:"shared_with"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the name of the database table associated with Notification.
func (n Notification) TableName() string {
	return "notifications"
}

// NotificationView is a notification joined with its dream and the
// sharer's display name.
type NotificationView struct {
	ID         string    `json:"id"`
	SharedBy   string    `json:"sharedBy"`
	SharedByID string    `json:"sharedById"`
	DreamID    string    `json:"dreamId"`
	DreamTitle string    `json:"dreamTitle"`
	DreamMood  Mood      `json:"dreamMood"`
	IsRead     bool      `json:"isRead"`
	CreatedAt  time.Time `json:"createdAt"`
}

// UnreadCount is the response body of the unread counter endpoint.
type UnreadCount struct {
	Count int `json:"count"`
}
