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
TestExpand_NonRecurring checks that a schedule without a rule yields exactly
its own start.
*/
func TestExpand_NonRecurring(t *testing.T) {
	start := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

	occurrences, err := schedule.Expand(schedule.EventDates{Start: &start}, 0)
	require.NoError(t, err)
	require.Len(t, occurrences, 1)
	assert.True(t, occurrences[0].Equal(start))

	_, err = schedule.Expand(schedule.EventDates{}, 0)
	assert.ErrorIs(t, err, schedule.ErrNoStart)
}

/*
TestExpand_DailyCount checks count-bounded daily expansion with an interval.
*/
func TestExpand_DailyCount(t *testing.T) {
	start := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	rule := schedule.NewRule().
		WithEndRepeatMode(schedule.EndModeCount).
		WithCount("5").
		WithInterval("2")

	occurrences, err := schedule.Expand(schedule.EventDates{Start: &start, RecurringRule: &rule}, 0)
	require.NoError(t, err)
	require.Len(t, occurrences, 5)

	assert.True(t, occurrences[0].Equal(start))
	assert.True(t, occurrences[1].Equal(start.AddDate(0, 0, 2)))
	assert.True(t, occurrences[4].Equal(start.AddDate(0, 0, 8)))
}

/*
TestExpand_WeeklyUntil checks that the end-of-day until normalization keeps
an occurrence landing on the boundary date inside the series.
*/
func TestExpand_WeeklyUntil(t *testing.T) {
	// A Monday.
	start := time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)
	rule := schedule.NewRule().
		WithFrequency(schedule.FreqWeekly).
		WithByDay(schedule.Monday).
		WithUntil(time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC))

	occurrences, err := schedule.Expand(schedule.EventDates{Start: &start, RecurringRule: &rule}, 0)
	require.NoError(t, err)
	require.Len(t, occurrences, 3, "6th, 13th, and the boundary 20th")
	assert.Equal(t, 20, occurrences[2].Day())
}

/*
TestExpand_UnboundedIsCapped checks the safety cap on a rule bounded by
neither until nor count.
*/
func TestExpand_UnboundedIsCapped(t *testing.T) {
	start := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	rule := schedule.NewRule() // until mode, no until picked yet

	occurrences, err := schedule.Expand(schedule.EventDates{Start: &start, RecurringRule: &rule}, 10)
	require.NoError(t, err)
	assert.Len(t, occurrences, 10)
}

/*
TestRule_ROption checks the rrule-go conversion corners: interval clamping
and the frequency vocabulary.
*/
func TestRule_ROption(t *testing.T) {
	start := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

	rule := schedule.Rule{Frequency: schedule.FreqMonthly, EndRepeatMode: schedule.EndModeUntil}
	option, err := rule.ROption(start)
	require.NoError(t, err)
	assert.Equal(t, 1, option.Interval, "non-positive interval clamps to 1")

	_, err = schedule.Rule{Frequency: "FORTNIGHTLY"}.ROption(start)
	assert.Error(t, err)
}
