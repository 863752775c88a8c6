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

func datesAt(start, end time.Time) schedule.EventDates {
	return schedule.EventDates{Start: &start, End: &end}
}

/*
TestEditor_ChangeStartDate_PushesEndForward checks that moving the start past
the existing end pushes the end forward by the same delta, keeping the
previously-set duration.
*/
func TestEditor_ChangeStartDate_PushesEndForward(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)

	editor := schedule.NewEditor(datesAt(start, end), false, schedule.EditorConfig{})
	cs := editor.ChangeStartDate(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))

	require.NotNil(t, cs.Start)
	require.NotNil(t, cs.End)
	assert.Equal(t, time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC), *cs.Start,
		"existing time-of-day is preserved")
	assert.Equal(t, time.Date(2025, 1, 11, 10, 0, 0, 0, time.UTC), *cs.End,
		"end moves by the same nine-day delta")
}

/*
TestEditor_ChangeStartDate_KeepsLaterEnd checks that an end still after the
new start is left alone.
*/
func TestEditor_ChangeStartDate_KeepsLaterEnd(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC)

	editor := schedule.NewEditor(datesAt(start, end), false, schedule.EditorConfig{})
	cs := editor.ChangeStartDate(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC))

	require.NotNil(t, cs.Start)
	assert.Nil(t, cs.End, "later end is untouched")
	assert.Equal(t, end, *editor.Dates().End)
}

/*
TestEditor_ChangeStartDate_NoEnd checks that without an end date the event
becomes instantaneous at the new start.
*/
func TestEditor_ChangeStartDate_NoEnd(t *testing.T) {
	editor := schedule.NewEditor(schedule.EventDates{}, true, schedule.EditorConfig{})
	cs := editor.ChangeStartDate(time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC))

	require.NotNil(t, cs.Start)
	require.NotNil(t, cs.End)
	assert.Equal(t, *cs.Start, *cs.End)
}

/*
TestEditor_ChangeStartTime_AutoEnd checks the default-duration auto-fill:
the first committed start time derives the end time, but only for single-day
events, and commits clear the to-be-confirmed sentinel.
*/
func TestEditor_ChangeStartTime_AutoEnd(t *testing.T) {
	t.Run("single_day_derives_end", func(t *testing.T) {
		start := time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)
		editor := schedule.NewEditor(
			schedule.EventDates{Start: &start}, true,
			schedule.EditorConfig{DefaultDurationHours: 2},
		)

		cs := editor.ChangeStartTime(time.Date(0, 1, 1, 9, 30, 0, 0, time.UTC))

		require.NotNil(t, cs.Start)
		require.NotNil(t, cs.End)
		assert.Equal(t, time.Date(2025, 2, 14, 9, 30, 0, 0, time.UTC), *cs.Start)
		assert.Equal(t, time.Date(2025, 2, 14, 11, 30, 0, 0, time.UTC), *cs.End)

		require.NotNil(t, cs.ToBeConfirmed)
		assert.False(t, *cs.ToBeConfirmed, "both times known, sentinel cleared")
		assert.False(t, editor.ToBeConfirmed())
	})

	t.Run("multi_day_leaves_end_alone", func(t *testing.T) {
		start := time.Date(2025, 2, 14, 10, 0, 0, 0, time.UTC)
		end := time.Date(2025, 2, 16, 18, 0, 0, 0, time.UTC)
		editor := schedule.NewEditor(datesAt(start, end), true, schedule.EditorConfig{})

		cs := editor.ChangeStartTime(time.Date(0, 1, 1, 8, 0, 0, 0, time.UTC))

		require.NotNil(t, cs.Start)
		assert.Nil(t, cs.End, "multi-day spans are never auto-shortened")
		assert.Equal(t, end, *editor.Dates().End)
	})

	t.Run("default_duration_fallback_is_one_hour", func(t *testing.T) {
		start := time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)
		editor := schedule.NewEditor(schedule.EventDates{Start: &start}, true, schedule.EditorConfig{})

		cs := editor.ChangeStartTime(time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC))

		require.NotNil(t, cs.End)
		assert.Equal(t, time.Date(2025, 2, 14, 10, 0, 0, 0, time.UTC), *cs.End)
	})
}

/*
TestEditor_ChangeEndDate_SeedsStart checks that setting an end on an event
with no start seeds the start at midnight of the end day.
*/
func TestEditor_ChangeEndDate_SeedsStart(t *testing.T) {
	editor := schedule.NewEditor(schedule.EventDates{}, true, schedule.EditorConfig{})
	cs := editor.ChangeEndDate(time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC))

	require.NotNil(t, cs.Start)
	assert.Equal(t, time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC), *cs.Start)
}

/*
TestEditor_ChangeEndTime_AutoStart checks the mirrored backward derivation
of the start time under the same single-day gate.
*/
func TestEditor_ChangeEndTime_AutoStart(t *testing.T) {
	end := time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)
	editor := schedule.NewEditor(
		schedule.EventDates{End: &end}, true,
		schedule.EditorConfig{DefaultDurationHours: 2},
	)

	cs := editor.ChangeEndTime(time.Date(0, 1, 1, 17, 0, 0, 0, time.UTC))

	require.NotNil(t, cs.End)
	require.NotNil(t, cs.Start)
	assert.Equal(t, time.Date(2025, 2, 14, 17, 0, 0, 0, time.UTC), *cs.End)
	assert.Equal(t, time.Date(2025, 2, 14, 15, 0, 0, 0, time.UTC), *cs.Start)
}

/*
TestEditor_ChangeTimezone checks "same wall-clock, new zone" semantics for
the stored dates.
*/
func TestEditor_ChangeTimezone(t *testing.T) {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC)
	editor := schedule.NewEditor(datesAt(start, end), false, schedule.EditorConfig{})

	cs := editor.ChangeTimezone("Australia/Sydney")

	require.NotNil(t, cs.TZ)
	assert.Equal(t, "Australia/Sydney", *cs.TZ)

	require.NotNil(t, cs.Start)
	assert.Equal(t, 9, cs.Start.Hour(), "wall clock preserved")
	assert.Equal(t, "Australia/Sydney", cs.Start.Location().String())
	assert.False(t, cs.Start.Equal(start), "absolute instant changed")

	t.Run("unknown_zone_is_ignored", func(t *testing.T) {
		cs := editor.ChangeTimezone("Not/AZone")
		assert.True(t, cs.IsZero())
	})
}

/*
TestEditor_SetAllDay_NotARoundTrip checks that toggling all-day on and back
off does not restore the original end: disabling resets the end to one
minute past midnight.
*/
func TestEditor_SetAllDay_NotARoundTrip(t *testing.T) {
	start := time.Date(2025, 3, 5, 14, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 5, 15, 30, 0, 0, time.UTC)
	editor := schedule.NewEditor(datesAt(start, end), false, schedule.EditorConfig{})

	on := editor.SetAllDay(true)
	require.NotNil(t, on.Start)
	require.NotNil(t, on.End)
	assert.Equal(t, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), *on.Start)
	assert.True(t, schedule.IsSameDay(*on.Start, *on.End),
		"a one-day all-day event's end never rolls to the next day")
	assert.Equal(t, 23, on.End.Hour())
	require.NotNil(t, on.AllDay)
	assert.True(t, *on.AllDay)

	off := editor.SetAllDay(false)
	require.NotNil(t, off.End)
	assert.Equal(t, time.Date(2025, 3, 5, 0, 1, 0, 0, time.UTC), *off.End,
		"disabling yields a minimal non-zero duration, not the original end")
	assert.NotEqual(t, end, *off.End)
}

/*
TestEditor_ToBeConfirmed checks that the sentinel is reversible without data
loss: raising it keeps the working times, and the derived schedule stays put.
*/
func TestEditor_ToBeConfirmed(t *testing.T) {
	start := time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)
	editor := schedule.NewEditor(schedule.EventDates{Start: &start}, true, schedule.EditorConfig{})

	// First time commit clears the sentinel.
	editor.ChangeStartTime(time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC))
	require.False(t, editor.ToBeConfirmed())

	// Raising it again does not wipe the committed times.
	cs := editor.SetToBeConfirmed()
	require.NotNil(t, cs.ToBeConfirmed)
	assert.True(t, *cs.ToBeConfirmed)

	state := editor.State()
	assert.NotNil(t, state.StartTime)
	assert.NotNil(t, state.EndTime)

	// A later time change immediately clears it again, reusing the kept times.
	cs = editor.ChangeStartTime(time.Date(0, 1, 1, 10, 0, 0, 0, time.UTC))
	require.NotNil(t, cs.ToBeConfirmed)
	assert.False(t, *cs.ToBeConfirmed)
}

/*
TestEditor_SetDoesRepeat checks rule creation with fixed defaults and
destruction without state restoration.
*/
func TestEditor_SetDoesRepeat(t *testing.T) {
	editor := schedule.NewEditor(schedule.EventDates{}, true, schedule.EditorConfig{})

	on := editor.SetDoesRepeat(true)
	require.True(t, on.RuleChanged)
	require.NotNil(t, on.Rule)
	assert.Equal(t, schedule.NewRule(), *on.Rule)

	// Customize, destroy, recreate: defaults come back, not the custom rule.
	editor.ChangeRuleFrequency(schedule.FreqMonthly)
	off := editor.SetDoesRepeat(false)
	require.True(t, off.RuleChanged)
	assert.Nil(t, off.Rule)

	again := editor.SetDoesRepeat(true)
	require.NotNil(t, again.Rule)
	assert.Equal(t, schedule.FreqDaily, again.Rule.Frequency,
		"prior rule state is not restored")
}

/*
TestEditor_RuleChangesRequireActiveRule checks that rule field edits are
no-ops while recurrence is off.
*/
func TestEditor_RuleChangesRequireActiveRule(t *testing.T) {
	editor := schedule.NewEditor(schedule.EventDates{}, true, schedule.EditorConfig{})

	assert.True(t, editor.ChangeRuleFrequency(schedule.FreqWeekly).IsZero())
	assert.True(t, editor.ChangeRuleCount("3").IsZero())
	assert.Nil(t, editor.Dates().RecurringRule)
}

/*
TestEditor_Apply checks the tagged-change dispatch, including the unknown-op
error and round-tripping the session state.
*/
func TestEditor_Apply(t *testing.T) {
	editor := schedule.NewEditor(schedule.EventDates{}, true, schedule.EditorConfig{})

	at := time.Date(2045, 12, 12, 0, 0, 0, 0, time.UTC)
	cs, err := editor.Apply(schedule.Change{Op: schedule.OpStartDate, At: &at})
	require.NoError(t, err)
	require.NotNil(t, cs.Start)

	cs, err = editor.Apply(schedule.Change{Op: schedule.OpAllDay, Enabled: true})
	require.NoError(t, err)
	require.NotNil(t, cs.End)
	assert.Equal(t, "2045-12-12", cs.End.Format("2006-01-02"),
		"all-day single-day event ends on its own date")

	_, err = editor.Apply(schedule.Change{Op: "paint_it_blue"})
	assert.ErrorIs(t, err, schedule.ErrUnknownOp)

	// Session snapshot survives a resume.
	resumed := schedule.ResumeEditor(editor.State(), schedule.EditorConfig{})
	assert.Equal(t, editor.Dates(), resumed.Dates())
	assert.Equal(t, editor.ToBeConfirmed(), resumed.ToBeConfirmed())
}
