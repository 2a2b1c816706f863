// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Mood is the emotional tone of a dream.
type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodSad      Mood = "sad"
	MoodScary    Mood = "scary"
	MoodRomantic Mood = "romantic"
	MoodWeird    Mood = "weird"
	MoodNeutral  Mood = "neutral"
)

// Moods lists every valid mood in display order.
var Moods = []Mood{MoodHappy, MoodSad, MoodScary, MoodRomantic, MoodWeird, MoodNeutral}

// Valid reports whether m is one of [Moods].
func (m Mood) Valid() bool {
	for _, known := range Moods {
		if m == known {
			return true
		}
	}
	return false
}

const (
	MinIntensity = 1
	MaxIntensity = 5
)

// Dream is a single journal entry. It is owned by OwnerID and may only be
// mutated or deleted by that user.
type Dream struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"owner_id,omitempty"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	OccurredAt time.Time `json:"occurredAt"`
	Mood       Mood      `json:"mood"`
	Intensity  int       `json:"intensity"`
	Lucid      bool      `json:"lucid"`
	Tags       []string  `json:"tags"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table associated with Dream.
func (d Dream) TableName() string {
	return "dreams"
}

// NormalizeTags trims tags, drops empty ones and removes duplicates while
// keeping the first-seen order. The result is never nil.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// HasAllTags reports whether the dream carries every tag in want.
func (d Dream) HasAllTags(want []string) bool {
	for _, w := range want {
		found := false
		for _, tag := range d.Tags {
			if tag == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// DreamFilter narrows a dream listing. Zero-valued fields do not filter.
type DreamFilter struct {
	// Query matches title or content, case-insensitively.
	Query string `json:"query,omitempty"`
	// Mood matches exactly.
	Mood Mood `json:"mood,omitempty"`
	// Tags must all be present on the dream.
	Tags []string `json:"tags,omitempty"`
	// DateFrom and DateTo bound OccurredAt inclusively.
	DateFrom *time.Time `json:"dateFrom,omitempty"`
	DateTo   *time.Time `json:"dateTo,omitempty"`
	// Day matches the calendar day (UTC) of OccurredAt.
	Day *time.Time `json:"day,omitempty"`
}
