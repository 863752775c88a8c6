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
TestNewRule checks the fixed defaults created on repeat toggle-on.
*/
func TestNewRule(t *testing.T) {
	rule := schedule.NewRule()

	assert.Equal(t, schedule.FreqDaily, rule.Frequency)
	assert.Equal(t, 1, rule.Interval)
	assert.Equal(t, schedule.EndModeUntil, rule.EndRepeatMode)
	assert.Nil(t, rule.Until)
	assert.Nil(t, rule.Count)
	assert.Nil(t, rule.ByDay)
}

/*
TestRule_WithFrequency checks that the BYDAY set only survives while the
frequency stays weekly.
*/
func TestRule_WithFrequency(t *testing.T) {
	weekly := schedule.NewRule().
		WithFrequency(schedule.FreqWeekly).
		WithByDay(schedule.Monday, schedule.Tuesday)
	require.Equal(t, []schedule.Weekday{schedule.Monday, schedule.Tuesday}, weekly.ByDay)

	daily := weekly.WithFrequency(schedule.FreqDaily)
	assert.Nil(t, daily.ByDay, "leaving WEEKLY must clear the BYDAY set")
	assert.Equal(t, schedule.FreqDaily, daily.Frequency)

	backToWeekly := weekly.WithFrequency(schedule.FreqWeekly)
	assert.Equal(t, []schedule.Weekday{schedule.Monday, schedule.Tuesday}, backToWeekly.ByDay,
		"staying WEEKLY preserves the set")
}

/*
TestRule_WithEndRepeatMode checks that switching the bound mode always clears
both bounds, regardless of prior values.
*/
func TestRule_WithEndRepeatMode(t *testing.T) {
	until := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	count := 4

	rule := schedule.NewRule()
	rule.Until = &until
	rule.Count = &count

	switched := rule.WithEndRepeatMode(schedule.EndModeCount)

	assert.Equal(t, schedule.EndModeCount, switched.EndRepeatMode)
	assert.Nil(t, switched.Until)
	assert.Nil(t, switched.Count)
	assert.Equal(t, rule.Frequency, switched.Frequency, "unrelated fields unchanged")
	assert.Equal(t, rule.Interval, switched.Interval)
}

/*
TestRule_WithInterval checks the permissive base-10 parse.
*/
func TestRule_WithInterval(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"plain_number", "12", 12},
		{"padded", " 3 ", 3},
		{"unparsable_keeps_prior", "abc", 1},
		{"empty_keeps_prior", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := schedule.NewRule().WithInterval(tt.raw)
			assert.Equal(t, tt.want, rule.Interval)
		})
	}
}

/*
TestRule_WithUntil checks the end-of-day normalization that keeps the
boundary date inside the series.
*/
func TestRule_WithUntil(t *testing.T) {
	picked := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)

	rule := schedule.NewRule().WithUntil(picked)
	require.NotNil(t, rule.Until)

	assert.Equal(t, 23, rule.Until.Hour())
	assert.Equal(t, 59, rule.Until.Minute())
	assert.Equal(t, 59, rule.Until.Second())
	assert.True(t, schedule.IsSameDay(picked, *rule.Until))

	cleared := rule.WithUntil(time.Time{})
	assert.Nil(t, cleared.Until)
}

/*
TestRule_WithCount checks that falsy input stores nil rather than zero.
*/
func TestRule_WithCount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *int
	}{
		{"positive", "5", intPtr(5)},
		{"zero_stores_nil", "0", nil},
		{"empty_stores_nil", "", nil},
		{"unparsable_stores_nil", "often", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := schedule.NewRule().WithCount(tt.raw)
			if tt.want == nil {
				assert.Nil(t, rule.Count)
			} else {
				require.NotNil(t, rule.Count)
				assert.Equal(t, *tt.want, *rule.Count)
			}
		})
	}
}

/*
TestRule_WithByDay checks canonical ordering, deduplication, and rejection of
unknown codes.
*/
func TestRule_WithByDay(t *testing.T) {
	rule := schedule.NewRule().
		WithFrequency(schedule.FreqWeekly).
		WithByDay(schedule.Friday, schedule.Monday, schedule.Friday, schedule.Weekday("XX"))

	assert.Equal(t, []schedule.Weekday{schedule.Monday, schedule.Friday}, rule.ByDay)

	cleared := rule.WithByDay()
	assert.Nil(t, cleared.ByDay)
}

func intPtr(v int) *int { return &v }
