// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-dream-journal/models"
)

const (
	filterQuery = iota
	filterMood
	filterTags
	filterDay
	filterFrom
	filterTo
)

var errInvalidFilterDate = errors.New("dates must look like 2024-01-31")

func newFilterForm(current models.DreamFilter) inputForm {
	f := newInputForm(
		inputField{label: "Search", placeholder: "title or text"},
		inputField{label: "Mood", placeholder: moodChoices()},
		inputField{label: "Tags", placeholder: "all of, comma separated"},
		inputField{label: "Day", placeholder: dayLayout},
		inputField{label: "From", placeholder: dayLayout},
		inputField{label: "To", placeholder: dayLayout},
	)
	f.inputs[filterQuery].SetValue(current.Query)
	f.inputs[filterMood].SetValue(string(current.Mood))
	f.inputs[filterTags].SetValue(strings.Join(current.Tags, ", "))
	f.inputs[filterDay].SetValue(formatDay(current.Day))
	f.inputs[filterFrom].SetValue(formatDay(current.DateFrom))
	f.inputs[filterTo].SetValue(formatDay(current.DateTo))
	return f
}

func formatDay(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dayLayout)
}

// filterFromForm builds the filter. To covers the whole of its day.
func filterFromForm(f inputForm) (models.DreamFilter, error) {
	filter := models.DreamFilter{
		Query: strings.TrimSpace(f.value(filterQuery)),
		Mood:  models.Mood(strings.ToLower(strings.TrimSpace(f.value(filterMood)))),
		Tags:  models.NormalizeTags(strings.Split(f.value(filterTags), ",")),
	}
	if len(filter.Tags) == 0 {
		filter.Tags = nil
	}

	var err error
	if filter.Day, err = parseDay(f.value(filterDay)); err != nil {
		return models.DreamFilter{}, err
	}
	if filter.DateFrom, err = parseDay(f.value(filterFrom)); err != nil {
		return models.DreamFilter{}, err
	}
	if filter.DateTo, err = parseDay(f.value(filterTo)); err != nil {
		return models.DreamFilter{}, err
	}
	if filter.DateTo != nil {
		end := filter.DateTo.Add(24*time.Hour - time.Nanosecond)
		filter.DateTo = &end
	}
	return filter, nil
}

func parseDay(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	// days are calendar days of the user's zone, the zone dreams are logged in
	t, err := time.ParseInLocation(dayLayout, raw, time.Local)
	if err != nil {
		return nil, errInvalidFilterDate
	}
	return &t, nil
}

func filterSummary(f models.DreamFilter) string {
	var parts []string
	if f.Query != "" {
		parts = append(parts, "\""+f.Query+"\"")
	}
	if f.Mood != "" {
		parts = append(parts, "mood="+string(f.Mood))
	}
	if len(f.Tags) > 0 {
		parts = append(parts, "tags="+strings.Join(f.Tags, ","))
	}
	if f.Day != nil {
		parts = append(parts, "day="+formatDay(f.Day))
	}
	if f.DateFrom != nil {
		parts = append(parts, "from="+formatDay(f.DateFrom))
	}
	if f.DateTo != nil {
		parts = append(parts, "to="+f.DateTo.Format(dayLayout))
	}
	return strings.Join(parts, " ")
}
