// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

/*
Package event manages planned events, the primary entity of the planning desk.

An event is something happening in the world at a known or tentative time: a
press conference, a match, a court hearing. Events carry a schedule (start,
end, timezone, recurrence), multilingual text fields driven by the content
profile, and a lifecycle state.

# Core Responsibility

  - Lifecycle: draft → scheduled → postponed / cancelled / expired.
  - Series: Recurring rules are materialized into sibling events sharing a
    recurrence ID at creation time.
  - Editing: Schedule edits flow through a Redis-backed editor session so
    half-finished input never touches the stored event.

# Derived Flags

All-day and multi-day are never persisted. They are re-derived from the
stored dates on every read, so they cannot drift from the underlying values.
*/
package event

import (
	"time"

	"github.com/newsdeskhq/planning-api/internal/multilingual"
	"github.com/newsdeskhq/planning-api/internal/schedule"
)

// # Event Lifecycle

// State is the lifecycle phase of a planned event.
type State string

const (
	StateDraft     State = "draft"
	StateScheduled State = "scheduled"
	StatePostponed State = "postponed"
	StateCancelled State = "cancelled"
	StateExpired   State = "expired"
)

// Valid reports whether the state is one of the known phases.
func (s State) Valid() bool {
	switch s {
	case StateDraft, StateScheduled, StatePostponed, StateCancelled, StateExpired:
		return true
	}
	return false
}

// terminal states accept no further schedule edits.
func (s State) terminal() bool {
	return s == StateCancelled || s == StateExpired
}

// # Core Entities

// Event represents a single planned event occurrence.
type Event struct {
	ID           string  `json:"id"` // UUIDv7
	RecurrenceID *string `json:"recurrence_id,omitempty"`
	ProfileID    string  `json:"profile_id"`
	LocationID   *string `json:"location_id,omitempty"`
	Slugline     string  `json:"slugline"`
	Name         string  `json:"name"`
	Definition   *string `json:"definition,omitempty"`
	State        State   `json:"state"`

	Dates         schedule.EventDates `json:"dates"`
	ToBeConfirmed bool                `json:"to_be_confirmed"`

	Translations []multilingual.Entry `json:"translations,omitempty"`

	CreatedBy string     `json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`

	// Derived on read, never stored.
	IsAllDay   bool `json:"is_all_day"`
	IsMultiDay bool `json:"is_multi_day"`
}

// DeriveFlags recomputes the presentation flags from the stored dates.
// Stores call this after every scan; services call it after every mutation.
func (e *Event) DeriveFlags() {
	e.IsAllDay = false
	e.IsMultiDay = false
	if e.Dates.Start == nil {
		return
	}

	end := e.Dates.Start
	if e.Dates.End != nil {
		end = e.Dates.End
	}

	e.IsAllDay = e.Dates.AllDay || schedule.IsAllDay(*e.Dates.Start, *end, false)
	e.IsMultiDay = schedule.IsMultiDay(*e.Dates.Start, *end)
}

// # Search & Filtering

// Filter holds parameters for listing events on the planning calendar.
type Filter struct {
	From         *time.Time `json:"from"` // Window start (inclusive)
	To           *time.Time `json:"to"`   // Window end (exclusive)
	States       []State    `json:"states"`
	ProfileID    string     `json:"profile_id"`
	RecurrenceID string     `json:"recurrence_id"`
	Query        string     `json:"q"` // Matches slugline and name
}

// # Field Identifiers

const (
	FieldSlugline   = "slugline"
	FieldName       = "name"
	FieldDefinition = "definition"
	FieldState      = "state"
)
