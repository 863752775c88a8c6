// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package event

import (
	"time"

	ics "github.com/arran4/golang-ical"
)

// calendarProductID identifies this feed in generated ICS payloads.
const calendarProductID = "-//Newsdesk//Planning API//EN"

// ExportICS serializes a list of events into an iCalendar payload so desks
// can subscribe to the planning calendar from external clients.
//
// All-day events are emitted as DATE values; timed events as UTC DATE-TIME.
// Events without a start date (to-be-confirmed) are skipped: ICS has no
// representation for "sometime".
func ExportICS(events []*Event) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProductID)

	for _, e := range events {
		if e.Dates.Start == nil {
			continue
		}

		ve := cal.AddEvent(e.ID + "@planning.newsdeskhq.com")
		ve.SetDtStampTime(time.Now().UTC())
		ve.SetSummary(e.Name)
		if e.Definition != nil && *e.Definition != "" {
			ve.SetDescription(*e.Definition)
		}

		start := *e.Dates.Start
		if e.IsAllDay {
			ve.SetAllDayStartAt(start)
			if e.Dates.End != nil {
				// DTEND is exclusive for DATE values.
				ve.SetAllDayEndAt(e.Dates.End.AddDate(0, 0, 1).Truncate(24 * time.Hour))
			}
		} else {
			ve.SetStartAt(start.UTC())
			if e.Dates.End != nil && !e.Dates.NoEndTime {
				ve.SetEndAt(e.Dates.End.UTC())
			}
		}

		switch e.State {
		case StateCancelled:
			ve.SetStatus(ics.ObjectStatusCancelled)
		case StateDraft, StatePostponed:
			ve.SetStatus(ics.ObjectStatusTentative)
		default:
			ve.SetStatus(ics.ObjectStatusConfirmed)
		}
	}

	return cal.Serialize()
}
