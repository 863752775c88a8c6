// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

/*
Package schedule implements the event scheduling core of the Planning API.

It owns the only stateful algorithmic decisions in the system: timezone-aware
date arithmetic, recurrence-rule normalization, and the schedule editor that
reconciles the six interdependent schedule inputs (start date, start time,
end date, end time, all-day flag, timezone) into atomic change-sets.

# Design

Every function in this package is total. Malformed input (zero times, unknown
timezone names, unparsable numerics) is normalized to false / nil / identity
rather than returned as an error, mirroring the permissive behavior editors
expect from a scheduling form. Validation of user intent (required fields,
ranges) belongs to the service layer, not here.
*/
package schedule

import "time"

// StartOfDay returns midnight of t's calendar day in t's own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59.999 of t's calendar day in t's own location.
//
// The millisecond precision guarantees that a series bounded by an
// end-of-day "until" value still includes occurrences on the boundary date.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// IsAllDay reports whether the span [start, end] covers full calendar days:
// start at midnight and end at 23:59:59 of its day. When strict is false,
// an end at exactly 00:00 of a later day also qualifies.
//
// A degenerate span (start == end) is never all-day.
func IsAllDay(start, end time.Time, strict bool) bool {
	if start.IsZero() || end.IsZero() {
		return false
	}
	if !isMidnight(start) {
		return false
	}
	if end.Hour() == 23 && end.Minute() == 59 && end.Second() == 59 {
		return true
	}
	if !strict && isMidnight(end) && end.After(start) {
		return true
	}
	return false
}

// IsSameDay reports calendar-day equality of start and end, each read in its
// own location (the event's zone travels with the time value).
func IsSameDay(start, end time.Time) bool {
	if start.IsZero() || end.IsZero() {
		return false
	}
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	return sy == ey && sm == em && sd == ed
}

// IsMultiDay reports whether the span crosses a calendar-day boundary.
func IsMultiDay(start, end time.Time) bool {
	if start.IsZero() || end.IsZero() {
		return false
	}
	return !IsSameDay(start, end)
}

// IsRemoteTimeZone reports whether tz names a zone whose current UTC offset
// differs from the local zone. Empty or unknown names are treated as local.
func IsRemoteTimeZone(tz string) bool {
	if tz == "" {
		return false
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return false
	}
	now := time.Now()
	_, remoteOffset := now.In(loc).Zone()
	_, localOffset := now.Zone()
	return remoteOffset != localOffset
}

// InRemoteZone re-expresses t in the named zone without changing the absolute
// instant. An unknown zone name yields t unchanged.
func InRemoteZone(t time.Time, tz string) time.Time {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return t
	}
	return t.In(loc)
}

// SameWallClock re-anchors t's wall-clock reading in loc, changing the
// absolute instant. This is the timezone-change semantics of the schedule
// editor: "same wall-clock time, new zone", never "same instant, new label".
func SameWallClock(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

// mergeClock combines date's calendar day with clock's time-of-day, in
// date's location.
func mergeClock(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), clock.Nanosecond(), date.Location())
}

func isMidnight(t time.Time) bool {
	return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0
}
