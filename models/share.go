// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Share is a directed read grant on a dream from its owner to another user.
// At most one share exists per (DreamID, SharedWith).
type Share struct {
	DreamID    string    `json:"dream_id"`
	SharedBy   string    `json:"shared_by"`
	SharedWith string    `json:"shared_with"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

// TableName returns the name of the database table associated with Share.
func (s Share) TableName() string {
	return "dream_shares"
}

// ShareResult reports whether a share request created a new row. A repeated
// share of the same dream with the same user is ignored.
type ShareResult struct {
	Created bool `json:"created"`
}

// SharedDream is a dream visible to the viewer through a share.
type SharedDream struct {
	Dream
	SharedByID          string `json:"sharedById"`
	SharedByDisplayName string `json:"sharedByDisplayName"`
}

// ShareableUser is a candidate recipient for a share.
type ShareableUser struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// Profile is the public part of a user account.
type Profile struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}
