// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Query parameter names of a [DreamFilter] on GET /api/dreams.
const (
	FilterParamQuery    = "q"
	FilterParamMood     = "mood"
	FilterParamTags     = "tags"
	FilterParamDateFrom = "dateFrom"
	FilterParamDateTo   = "dateTo"
	FilterParamDay      = "day"
)

const dayLayout = "2006-01-02"

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// QueryParams encodes the non-zero fields of f. Tags are joined with commas
// and times use RFC 3339. Day is sent as the midnight that starts it, with
// the offset of its location, so the server matches the caller's calendar
// day rather than the UTC one.
func (f DreamFilter) QueryParams() map[string]string {
	params := make(map[string]string)
	if q := strings.TrimSpace(f.Query); q != "" {
		params[FilterParamQuery] = q
	}
	if f.Mood != "" {
		params[FilterParamMood] = string(f.Mood)
	}
	if tags := NormalizeTags(f.Tags); len(tags) > 0 {
		params[FilterParamTags] = strings.Join(tags, ",")
	}
	if f.DateFrom != nil {
		params[FilterParamDateFrom] = f.DateFrom.UTC().Format(time.RFC3339)
	}
	if f.DateTo != nil {
		params[FilterParamDateTo] = f.DateTo.UTC().Format(time.RFC3339)
	}
	if f.Day != nil {
		params[FilterParamDay] = StartOfDay(*f.Day).Format(time.RFC3339)
	}
	return params
}

// ParseDreamFilter decodes the parameters written by [DreamFilter.QueryParams].
// Dates are accepted either as RFC 3339 timestamps or as calendar dates; a
// bare calendar date is a UTC day.
func ParseDreamFilter(values url.Values) (DreamFilter, error) {
	filter := DreamFilter{
		Query: strings.TrimSpace(values.Get(FilterParamQuery)),
		Mood:  Mood(strings.TrimSpace(values.Get(FilterParamMood))),
	}

	if raw := values.Get(FilterParamTags); raw != "" {
		filter.Tags = NormalizeTags(strings.Split(raw, ","))
	}

	for name, dst := range map[string]**time.Time{
		FilterParamDateFrom: &filter.DateFrom,
		FilterParamDateTo:   &filter.DateTo,
		FilterParamDay:      &filter.Day,
	} {
		raw := strings.TrimSpace(values.Get(name))
		if raw == "" {
			continue
		}
		t, err := parseFilterTime(raw)
		if err != nil {
			return DreamFilter{}, fmt.Errorf("invalid %s: %w", name, err)
		}
		*dst = &t
	}

	return filter, nil
}

func parseFilterTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(dayLayout, raw)
}
