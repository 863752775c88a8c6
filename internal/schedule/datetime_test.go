// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsdeskhq/planning-api/internal/schedule"
)

/*
TestIsAllDay checks the full-calendar-day span predicate, including the
non-strict midnight-of-next-day form and the degenerate-span exclusion.
*/
func TestIsAllDay(t *testing.T) {
	day := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		start  time.Time
		end    time.Time
		strict bool
		want   bool
	}{
		{"full_day_span", schedule.StartOfDay(day), schedule.EndOfDay(day), false, true},
		{"full_day_span_strict", schedule.StartOfDay(day), schedule.EndOfDay(day), true, true},
		{"degenerate_span", day, day, false, false},
		{"midnight_next_day", schedule.StartOfDay(day), day.AddDate(0, 0, 1), false, true},
		{"midnight_next_day_strict", schedule.StartOfDay(day), day.AddDate(0, 0, 1), true, false},
		{"start_not_midnight", day.Add(9 * time.Hour), schedule.EndOfDay(day), false, false},
		{"end_mid_afternoon", schedule.StartOfDay(day), day.Add(15 * time.Hour), false, false},
		{"multi_day_full_span", schedule.StartOfDay(day), schedule.EndOfDay(day.AddDate(0, 0, 3)), false, true},
		{"zero_times", time.Time{}, time.Time{}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, schedule.IsAllDay(tt.start, tt.end, tt.strict))
		})
	}
}

/*
TestIsSameDay checks calendar-day equality in the event's own zone.
*/
func TestIsSameDay(t *testing.T) {
	sydney, err := time.LoadLocation("Australia/Sydney")
	require.NoError(t, err)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{
			"same_day",
			time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC),
			time.Date(2025, 4, 10, 18, 0, 0, 0, time.UTC),
			true,
		},
		{
			"different_days",
			time.Date(2025, 4, 10, 23, 0, 0, 0, time.UTC),
			time.Date(2025, 4, 11, 1, 0, 0, 0, time.UTC),
			false,
		},
		{
			// 23:00 UTC on the 10th is already the 11th in Sydney; the day is
			// read in each value's own zone, not in UTC.
			"remote_zone_day_rollover",
			time.Date(2025, 4, 10, 23, 0, 0, 0, time.UTC).In(sydney),
			time.Date(2025, 4, 11, 1, 0, 0, 0, time.UTC).In(sydney),
			true,
		},
		{"zero_times", time.Time{}, time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, schedule.IsSameDay(tt.start, tt.end))
		})
	}
}

/*
TestInRemoteZone checks that re-expression preserves the absolute instant
and that malformed zone names pass the input through unchanged.
*/
func TestInRemoteZone(t *testing.T) {
	at := time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)

	remote := schedule.InRemoteZone(at, "Europe/Paris")
	assert.True(t, at.Equal(remote), "instant must not change")
	assert.Equal(t, 14, remote.Hour(), "Paris is UTC+2 in April")

	unchanged := schedule.InRemoteZone(at, "Not/AZone")
	assert.Equal(t, at, unchanged)
}

/*
TestSameWallClock checks the deliberate "same wall-clock, new zone"
re-anchoring used for timezone changes.
*/
func TestSameWallClock(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	at := time.Date(2025, 4, 10, 9, 30, 0, 0, time.UTC)
	moved := schedule.SameWallClock(at, paris)

	assert.Equal(t, 9, moved.Hour())
	assert.Equal(t, 30, moved.Minute())
	assert.Equal(t, paris, moved.Location())
	assert.False(t, at.Equal(moved), "the absolute instant must change")
}
