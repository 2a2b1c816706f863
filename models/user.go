// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AnonymousName is shown for an account without a username.
const AnonymousName = "Anonymous"

// User represents an account entity used for authentication.
type User struct {
	// ID is the UUID assigned by the server.
	ID string `json:"id"`

	// Email is the unique sign-in identifier.
	Email string `json:"email"`

	// Username is the display name chosen at sign-up.
	Username string `json:"username"`

	// Password is accepted on sign-up and sign-in only and never returned.
	// The server stores an HMAC of it.
	Password string `json:"password,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table associated with User.
func (u User) TableName() string {
	return "users"
}

// DisplayName returns the username or [AnonymousName].
func (u User) DisplayName() string {
	if u.Username == "" {
		return AnonymousName
	}
	return u.Username
}

// Session is the client's persisted sign-in state.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
