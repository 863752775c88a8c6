// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package schedule

import "time"

// # Event Schedule

// EventDates is the schedule block of an event.
//
// # Invariants
//
// End is never before Start when both are set; the editor enforces this by
// shifting the other bound rather than rejecting input. An empty TZ means
// the viewer's local time is authoritative.
type EventDates struct {
	Start         *time.Time `json:"start,omitempty"`
	End           *time.Time `json:"end,omitempty"`
	TZ            string     `json:"tz,omitempty"`
	AllDay        bool       `json:"all_day"`
	NoEndTime     bool       `json:"no_end_time,omitempty"`
	RecurringRule *Rule      `json:"recurring_rule,omitempty"`
}

// ChangeSet is the atomic patch emitted by the editor for a single field
// change. Nil fields were not touched; all non-nil fields must be applied
// together.
type ChangeSet struct {
	Start         *time.Time
	End           *time.Time
	TZ            *string
	AllDay        *bool
	ToBeConfirmed *bool

	// RuleChanged distinguishes "rule untouched" from "rule destroyed"
	// (RuleChanged true, Rule nil).
	RuleChanged bool
	Rule        *Rule
}

// IsZero reports whether the change-set carries no changes at all.
func (c ChangeSet) IsZero() bool {
	return c.Start == nil && c.End == nil && c.TZ == nil &&
		c.AllDay == nil && c.ToBeConfirmed == nil && !c.RuleChanged
}

// Apply folds the change-set into dates and the to-be-confirmed sentinel.
func (c ChangeSet) Apply(dates *EventDates, toBeConfirmed *bool) {
	if c.Start != nil {
		start := *c.Start
		dates.Start = &start
	}
	if c.End != nil {
		end := *c.End
		dates.End = &end
	}
	if c.TZ != nil {
		dates.TZ = *c.TZ
	}
	if c.AllDay != nil {
		dates.AllDay = *c.AllDay
	}
	if c.RuleChanged {
		dates.RecurringRule = c.Rule
	}
	if c.ToBeConfirmed != nil && toBeConfirmed != nil {
		*toBeConfirmed = *c.ToBeConfirmed
	}
}

// # Editor Configuration

// EditorConfig carries the content-profile settings the editor consults.
type EditorConfig struct {
	// DefaultDurationHours is the span auto-derived for the end time when the
	// user commits their first start time on a single-day event.
	DefaultDurationHours int
	// AllDayEnabled gates the all-day toggle for this content profile.
	AllDayEnabled bool
}

// DefaultDurationOnChange is the fallback auto-derived duration when the
// content profile does not configure one.
const DefaultDurationOnChange = 1

func (c EditorConfig) duration() time.Duration {
	hours := c.DefaultDurationHours
	if hours <= 0 {
		hours = DefaultDurationOnChange
	}
	return time.Duration(hours) * time.Hour
}

// # Schedule Editor

// Editor is the single authority reconciling the six interdependent schedule
// inputs into coherent change-sets. One editor instance exists per editing
// session; it is not safe for concurrent use.
//
// The all-day and multi-day flags are never stored: they are re-derived from
// the current dates on every read, so derived state cannot drift from the
// underlying values.
type Editor struct {
	dates EventDates
	cfg   EditorConfig

	// startTime / endTime are the working copies of the committed
	// times-of-day. They stay populated while the to-be-confirmed sentinel
	// is raised so that "confirm later" is reversible without data loss.
	startTime *time.Time
	endTime   *time.Time

	// toBeConfirmed means no concrete time has been committed yet. It is
	// cleared only once both working times are known.
	toBeConfirmed bool
}

// EditorState is the serializable snapshot of an editing session, persisted
// between requests (the event package keeps it in Redis with a TTL).
type EditorState struct {
	Dates         EventDates `json:"dates"`
	StartTime     *time.Time `json:"start_time,omitempty"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	ToBeConfirmed bool       `json:"to_be_confirmed"`
}

// NewEditor opens an editing session over the given schedule. When the
// event is not to-be-confirmed, the stored times seed the working copies.
func NewEditor(dates EventDates, toBeConfirmed bool, cfg EditorConfig) *Editor {
	e := &Editor{dates: dates, cfg: cfg, toBeConfirmed: toBeConfirmed}
	if !toBeConfirmed {
		if dates.Start != nil {
			start := *dates.Start
			e.startTime = &start
		}
		if dates.End != nil {
			end := *dates.End
			e.endTime = &end
		}
	}
	return e
}

// ResumeEditor restores an editing session from a persisted snapshot.
func ResumeEditor(state EditorState, cfg EditorConfig) *Editor {
	return &Editor{
		dates:         state.Dates,
		cfg:           cfg,
		startTime:     state.StartTime,
		endTime:       state.EndTime,
		toBeConfirmed: state.ToBeConfirmed,
	}
}

// State snapshots the session for persistence.
func (e *Editor) State() EditorState {
	return EditorState{
		Dates:         e.dates,
		StartTime:     e.startTime,
		EndTime:       e.endTime,
		ToBeConfirmed: e.toBeConfirmed,
	}
}

// Dates returns the current working schedule.
func (e *Editor) Dates() EventDates { return e.dates }

// ToBeConfirmed reports the current sentinel state.
func (e *Editor) ToBeConfirmed() bool { return e.toBeConfirmed }

// isAllDay is derived, never cached.
func (e *Editor) isAllDay() bool {
	if e.dates.Start == nil || e.dates.End == nil {
		return false
	}
	return IsAllDay(*e.dates.Start, *e.dates.End, false)
}

// isMultiDay is derived, never cached.
func (e *Editor) isMultiDay() bool {
	if e.dates.Start == nil || e.dates.End == nil {
		return false
	}
	return IsMultiDay(*e.dates.Start, *e.dates.End)
}

// # Date & Time Changes

// ChangeStartDate moves the start to newDate's calendar day, preserving the
// existing start time-of-day (midnight when none). When no end exists the
// event becomes instantaneous at the new start; when the existing end would
// precede the new start, the end is pushed forward by the same delta the
// start moved, keeping the previously-set duration.
func (e *Editor) ChangeStartDate(newDate time.Time) ChangeSet {
	if newDate.IsZero() {
		return ChangeSet{}
	}

	var cs ChangeSet
	oldStart := e.dates.Start

	var start time.Time
	if oldStart != nil {
		start = mergeClock(newDate, *oldStart)
	} else {
		start = StartOfDay(newDate)
	}
	e.dates.Start = &start
	cs.Start = &start

	switch {
	case e.dates.End == nil:
		end := start
		e.dates.End = &end
		cs.End = &end
	case e.dates.End.Before(start):
		var end time.Time
		if oldStart != nil {
			end = e.dates.End.Add(start.Sub(*oldStart))
		} else {
			end = start
		}
		e.dates.End = &end
		cs.End = &end
	}

	e.syncAllDay(&cs)
	return cs
}

// ChangeStartTime merges newTime's time-of-day onto the existing start date,
// or adopts newTime verbatim when no start exists yet. On the first committed
// start time (leaving to-be-confirmed) or when the event was all-day, and
// only for single-day events, the end time is auto-derived as start plus the
// profile's default duration; multi-day spans are never auto-shortened.
func (e *Editor) ChangeStartTime(newTime time.Time) ChangeSet {
	if newTime.IsZero() {
		return ChangeSet{}
	}

	var cs ChangeSet
	wasAllDay := e.isAllDay()
	firstCommit := e.startTime == nil

	var start time.Time
	if e.dates.Start != nil {
		start = mergeClock(*e.dates.Start, newTime)
	} else {
		start = newTime
	}
	e.dates.Start = &start
	e.startTime = &start
	cs.Start = &start

	if (firstCommit || wasAllDay) && !e.isMultiDay() {
		end := start.Add(e.cfg.duration())
		e.dates.End = &end
		e.endTime = &end
		cs.End = &end
	}

	e.maybeClearToBeConfirmed(&cs)
	e.syncAllDay(&cs)
	return cs
}

// ChangeEndDate is the mirror of ChangeStartDate. When no start exists yet
// the start is seeded at midnight of the new end day; when the existing start
// would follow the new end, the start is pulled back by the same delta.
func (e *Editor) ChangeEndDate(newDate time.Time) ChangeSet {
	if newDate.IsZero() {
		return ChangeSet{}
	}

	var cs ChangeSet
	oldEnd := e.dates.End

	var end time.Time
	if oldEnd != nil {
		end = mergeClock(newDate, *oldEnd)
	} else {
		end = EndOfDay(newDate)
	}
	e.dates.End = &end
	cs.End = &end

	switch {
	case e.dates.Start == nil:
		start := StartOfDay(end)
		e.dates.Start = &start
		cs.Start = &start
	case e.dates.Start.After(end):
		var start time.Time
		if oldEnd != nil {
			start = e.dates.Start.Add(end.Sub(*oldEnd))
		} else {
			start = end
		}
		e.dates.Start = &start
		cs.Start = &start
	}

	e.syncAllDay(&cs)
	return cs
}

// ChangeEndTime is the mirror of ChangeStartTime: the start time is
// auto-derived backwards by the default duration under the same gate
// (first committed end time or formerly all-day, single-day only).
func (e *Editor) ChangeEndTime(newTime time.Time) ChangeSet {
	if newTime.IsZero() {
		return ChangeSet{}
	}

	var cs ChangeSet
	wasAllDay := e.isAllDay()
	firstCommit := e.endTime == nil

	var end time.Time
	if e.dates.End != nil {
		end = mergeClock(*e.dates.End, newTime)
	} else {
		end = newTime
	}
	e.dates.End = &end
	e.endTime = &end
	cs.End = &end

	if (firstCommit || wasAllDay) && !e.isMultiDay() {
		start := end.Add(-e.cfg.duration())
		e.dates.Start = &start
		e.startTime = &start
		cs.Start = &start
	}

	e.maybeClearToBeConfirmed(&cs)
	e.syncAllDay(&cs)
	return cs
}

// ChangeTimezone re-expresses the schedule in the named zone keeping the
// wall-clock readings, so "09:00 in Sydney" edited to Paris means "09:00 in
// Paris", not the same instant under a new label. Unknown zone names are
// ignored.
func (e *Editor) ChangeTimezone(tz string) ChangeSet {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return ChangeSet{}
	}

	var cs ChangeSet
	e.dates.TZ = tz
	cs.TZ = &tz

	if e.dates.Start != nil {
		start := SameWallClock(*e.dates.Start, loc)
		e.dates.Start = &start
		cs.Start = &start
	}
	if e.dates.End != nil {
		end := SameWallClock(*e.dates.End, loc)
		e.dates.End = &end
		cs.End = &end
	}
	if e.startTime != nil {
		start := SameWallClock(*e.startTime, loc)
		e.startTime = &start
	}
	if e.endTime != nil {
		end := SameWallClock(*e.endTime, loc)
		e.endTime = &end
	}

	return cs
}

// # All-Day & Confirmation

// SetAllDay toggles full-day coverage. Enabling snaps the span to
// [startOfDay, endOfDay], clears to-be-confirmed, and remembers both times so
// a later toggle-off has sensible working values. Disabling resets the end to
// one minute past midnight of the same day: a deliberate minimal non-zero
// duration, not a round trip back to the previous end.
func (e *Editor) SetAllDay(enabled bool) ChangeSet {
	var cs ChangeSet

	base := time.Now()
	if e.dates.Start != nil {
		base = *e.dates.Start
	} else if e.dates.TZ != "" {
		base = InRemoteZone(base, e.dates.TZ)
	}

	if enabled {
		start := StartOfDay(base)
		endBase := base
		if e.dates.End != nil {
			endBase = *e.dates.End
		}
		end := EndOfDay(endBase)

		e.dates.Start = &start
		e.dates.End = &end
		e.dates.AllDay = true
		e.startTime = &start
		e.endTime = &end

		cs.Start = &start
		cs.End = &end
		allDay := true
		cs.AllDay = &allDay

		if e.toBeConfirmed {
			e.toBeConfirmed = false
			cleared := false
			cs.ToBeConfirmed = &cleared
		}
		return cs
	}

	start := StartOfDay(base)
	end := start.Add(time.Minute)

	e.dates.Start = &start
	e.dates.End = &end
	e.dates.AllDay = false
	e.startTime = &start
	e.endTime = &end

	cs.Start = &start
	cs.End = &end
	allDay := false
	cs.AllDay = &allDay
	return cs
}

// SetToBeConfirmed re-raises the provisional-time sentinel. The working
// times keep their last committed values, so confirming later resumes from
// where the editor left off rather than losing data.
func (e *Editor) SetToBeConfirmed() ChangeSet {
	var cs ChangeSet
	if e.toBeConfirmed {
		return cs
	}
	e.toBeConfirmed = true
	raised := true
	cs.ToBeConfirmed = &raised
	return cs
}

// maybeClearToBeConfirmed drops the sentinel once both times are committed.
func (e *Editor) maybeClearToBeConfirmed(cs *ChangeSet) {
	if e.toBeConfirmed && e.startTime != nil && e.endTime != nil {
		e.toBeConfirmed = false
		cleared := false
		cs.ToBeConfirmed = &cleared
	}
}

// syncAllDay re-derives the stored all-day flag after a date mutation so the
// persisted flag always agrees with the dates it was derived from.
func (e *Editor) syncAllDay(cs *ChangeSet) {
	derived := e.isAllDay()
	if e.dates.AllDay != derived {
		e.dates.AllDay = derived
		cs.AllDay = &derived
	}
}

// # Recurrence Changes

// SetDoesRepeat toggles recurrence. Enabling creates the fixed default rule
// when none exists; disabling destroys the rule outright.
func (e *Editor) SetDoesRepeat(enabled bool) ChangeSet {
	var cs ChangeSet
	if enabled {
		if e.dates.RecurringRule == nil {
			rule := NewRule()
			e.dates.RecurringRule = &rule
			cs.RuleChanged = true
			cs.Rule = &rule
		}
		return cs
	}
	if e.dates.RecurringRule != nil {
		e.dates.RecurringRule = nil
		cs.RuleChanged = true
	}
	return cs
}

// ChangeRuleFrequency applies Rule.WithFrequency to the active rule.
// All rule field changes are no-ops while recurrence is off.
func (e *Editor) ChangeRuleFrequency(f Frequency) ChangeSet {
	return e.updateRule(func(r Rule) Rule { return r.WithFrequency(f) })
}

// ChangeRuleEndMode applies Rule.WithEndRepeatMode to the active rule.
func (e *Editor) ChangeRuleEndMode(mode EndRepeatMode) ChangeSet {
	return e.updateRule(func(r Rule) Rule { return r.WithEndRepeatMode(mode) })
}

// ChangeRuleInterval applies Rule.WithInterval to the active rule.
func (e *Editor) ChangeRuleInterval(raw string) ChangeSet {
	return e.updateRule(func(r Rule) Rule { return r.WithInterval(raw) })
}

// ChangeRuleUntil applies Rule.WithUntil to the active rule.
func (e *Editor) ChangeRuleUntil(t time.Time) ChangeSet {
	return e.updateRule(func(r Rule) Rule { return r.WithUntil(t) })
}

// ChangeRuleCount applies Rule.WithCount to the active rule.
func (e *Editor) ChangeRuleCount(raw string) ChangeSet {
	return e.updateRule(func(r Rule) Rule { return r.WithCount(raw) })
}

// ChangeRuleByDay applies Rule.WithByDay to the active rule.
func (e *Editor) ChangeRuleByDay(days ...Weekday) ChangeSet {
	return e.updateRule(func(r Rule) Rule { return r.WithByDay(days...) })
}

func (e *Editor) updateRule(mutate func(Rule) Rule) ChangeSet {
	var cs ChangeSet
	if e.dates.RecurringRule == nil {
		return cs
	}
	rule := mutate(*e.dates.RecurringRule)
	e.dates.RecurringRule = &rule
	cs.RuleChanged = true
	cs.Rule = &rule
	return cs
}
