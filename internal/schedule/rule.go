// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package schedule

import (
	"strconv"
	"strings"
	"time"
)

// # Recurrence Vocabulary

// Frequency is the base repetition unit of a recurrence rule.
type Frequency string

const (
	FreqDaily   Frequency = "DAILY"
	FreqWeekly  Frequency = "WEEKLY"
	FreqMonthly Frequency = "MONTHLY"
	FreqYearly  Frequency = "YEARLY"
)

// EndRepeatMode selects which of the two series bounds is meaningful.
type EndRepeatMode string

const (
	// EndModeUntil bounds the series by a final date.
	EndModeUntil EndRepeatMode = "until"
	// EndModeCount bounds the series by a number of occurrences.
	EndModeCount EndRepeatMode = "count"
)

// Weekday is an iCalendar two-letter weekday code used in BYDAY sets.
type Weekday string

const (
	Monday    Weekday = "MO"
	Tuesday   Weekday = "TU"
	Wednesday Weekday = "WE"
	Thursday  Weekday = "TH"
	Friday    Weekday = "FR"
	Saturday  Weekday = "SA"
	Sunday    Weekday = "SU"
)

// weekOrder fixes the canonical ordering of BYDAY sets.
var weekOrder = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// # Recurrence Rule

// Rule is a normalized recurrence specification for a repeating event.
//
// # Invariants
//
// Exactly one of Until / Count is meaningful, selected by EndRepeatMode.
// ByDay is only meaningful when Frequency is WEEKLY and is cleared whenever
// the frequency moves away from weekly.
//
// Rule values are immutable: every With* method returns a modified copy,
// keeping the rule internally consistent as the user edits one field at a
// time.
type Rule struct {
	Frequency     Frequency     `json:"frequency"`
	Interval      int           `json:"interval"`
	EndRepeatMode EndRepeatMode `json:"end_repeat_mode"`
	Until         *time.Time    `json:"until,omitempty"`
	Count         *int          `json:"count,omitempty"`
	ByDay         []Weekday     `json:"byday,omitempty"`
}

// NewRule returns the rule created when the repeat toggle is switched on.
// Toggling repeat off destroys the rule entirely; prior state is never
// restored on a later toggle-on.
func NewRule() Rule {
	return Rule{
		Frequency:     FreqDaily,
		Interval:      1,
		EndRepeatMode: EndModeUntil,
	}
}

// WithFrequency sets the frequency. Moving away from WEEKLY clears the BYDAY
// set; moving to WEEKLY preserves whatever set already exists.
func (r Rule) WithFrequency(f Frequency) Rule {
	r.Frequency = f
	if f != FreqWeekly {
		r.ByDay = nil
	}
	return r
}

// WithEndRepeatMode switches the series bound mode. Both bounds are always
// cleared so the new bound is collected fresh rather than carrying a stale
// until/count across the switch.
func (r Rule) WithEndRepeatMode(mode EndRepeatMode) Rule {
	r.EndRepeatMode = mode
	r.Until = nil
	r.Count = nil
	return r
}

// WithInterval parses raw as a base-10 integer and stores it. No bounds are
// enforced here; the editing surface constrains the value to 1..30.
// Unparsable input leaves the rule unchanged.
func (r Rule) WithInterval(raw string) Rule {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return r
	}
	r.Interval = n
	return r
}

// WithUntil stores the final date of the series, normalized to end-of-day so
// occurrences landing on the boundary date are included. A zero time clears
// the bound.
func (r Rule) WithUntil(t time.Time) Rule {
	if t.IsZero() {
		r.Until = nil
		return r
	}
	until := EndOfDay(t)
	r.Until = &until
	return r
}

// WithCount stores the occurrence count. Zero, empty, or unparsable input
// stores nil rather than 0: the field means "repeats N times" and 0 is
// meaningless state, not a terminal value.
func (r Rule) WithCount(raw string) Rule {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n == 0 {
		r.Count = nil
		return r
	}
	r.Count = &n
	return r
}

// WithByDay replaces the BYDAY set, deduplicated and ordered canonically
// (Monday first). Codes outside the weekday vocabulary are dropped. An empty
// result clears the set.
func (r Rule) WithByDay(days ...Weekday) Rule {
	chosen := make(map[Weekday]bool, len(days))
	for _, d := range days {
		chosen[d] = true
	}

	var normalized []Weekday
	for _, d := range weekOrder {
		if chosen[d] {
			normalized = append(normalized, d)
		}
	}
	r.ByDay = normalized
	return r
}
