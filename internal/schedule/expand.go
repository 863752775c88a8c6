// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package schedule

import (
	"errors"
	"fmt"

	"time"

	"github.com/teambition/rrule-go"
)

// DefaultMaxOccurrences caps series materialization so an unbounded rule
// (until mode with no date picked yet) cannot expand forever.
const DefaultMaxOccurrences = 200

// ErrNoStart is returned when expansion is requested without a start date.
var ErrNoStart = errors.New("schedule: expansion requires a start date")

// Expand materializes the occurrence start times of a schedule. A schedule
// without a recurrence rule yields exactly its own start. The cap defaults to
// [DefaultMaxOccurrences] when max is not positive.
func Expand(dates EventDates, max int) ([]time.Time, error) {
	if dates.Start == nil {
		return nil, ErrNoStart
	}
	if max <= 0 {
		max = DefaultMaxOccurrences
	}

	rule := dates.RecurringRule
	if rule == nil {
		return []time.Time{*dates.Start}, nil
	}

	option, err := rule.ROption(*dates.Start)
	if err != nil {
		return nil, err
	}
	rr, err := rrule.NewRRule(option)
	if err != nil {
		return nil, fmt.Errorf("schedule: invalid recurrence rule: %w", err)
	}

	// Pull from the iterator rather than All(): a rule bounded by neither
	// until nor count is an infinite series.
	next := rr.Iterator()
	occurrences := make([]time.Time, 0, min(max, 16))
	for len(occurrences) < max {
		at, ok := next()
		if !ok {
			break
		}
		occurrences = append(occurrences, at)
	}
	return occurrences, nil
}

// ROption converts the rule into rrule-go options anchored at dtstart.
func (r Rule) ROption(dtstart time.Time) (rrule.ROption, error) {
	option := rrule.ROption{Dtstart: dtstart}

	switch r.Frequency {
	case FreqDaily:
		option.Freq = rrule.DAILY
	case FreqWeekly:
		option.Freq = rrule.WEEKLY
	case FreqMonthly:
		option.Freq = rrule.MONTHLY
	case FreqYearly:
		option.Freq = rrule.YEARLY
	default:
		return option, fmt.Errorf("schedule: unsupported frequency %q", r.Frequency)
	}

	option.Interval = r.Interval
	if option.Interval < 1 {
		option.Interval = 1
	}

	switch r.EndRepeatMode {
	case EndModeUntil:
		if r.Until != nil {
			option.Until = *r.Until
		}
	case EndModeCount:
		if r.Count != nil {
			option.Count = *r.Count
		}
	}

	if r.Frequency == FreqWeekly {
		for _, day := range r.ByDay {
			weekday, ok := rruleWeekday(day)
			if !ok {
				continue
			}
			option.Byweekday = append(option.Byweekday, weekday)
		}
	}

	return option, nil
}

func rruleWeekday(day Weekday) (rrule.Weekday, bool) {
	switch day {
	case Monday:
		return rrule.MO, true
	case Tuesday:
		return rrule.TU, true
	case Wednesday:
		return rrule.WE, true
	case Thursday:
		return rrule.TH, true
	case Friday:
		return rrule.FR, true
	case Saturday:
		return rrule.SA, true
	case Sunday:
		return rrule.SU, true
	default:
		return rrule.Weekday{}, false
	}
}
