// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package event

import (
	"context"

	"github.com/newsdeskhq/planning-api/internal/schedule"
)

// # Event Data Access

// Repository defines the data access contract for planned events.
type Repository interface {

	/*
		List returns a filtered, paginated slice of events and the total count.

		Parameters:
		  - context: context.Context
		  - filter: Filter (Date window, states, profile, query)
		  - limit, offset: int

		Returns:
		  - []*Event: Slice of matching events, ordered by start date
		  - int: Total record count
		  - error: Database retrieval failures
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*Event, int, error)

	/*
		FindByID retrieves an event by its UUID.

		Returns:
		  - *Event: Hydrated entity with derived flags computed
		  - error: ErrNotFound if missing
	*/
	FindByID(context context.Context, id string) (*Event, error)

	/*
		ListSeries returns every event sharing a recurrence ID, ordered by
		start date.

		Returns:
		  - []*Event: Series siblings
		  - error: Retrieval failures
	*/
	ListSeries(context context.Context, recurrenceID string) ([]*Event, error)

	/*
		Create persists a single event.
	*/
	Create(context context.Context, event *Event) error

	/*
		CreateSeries persists a recurring series atomically. Either every
		occurrence lands or none do.
	*/
	CreateSeries(context context.Context, events []*Event) error

	/*
		Update modifies an event's descriptive fields and translations.
	*/
	Update(context context.Context, event *Event) error

	/*
		UpdateSchedule replaces an event's schedule block. Used when an edit
		session is committed.

		Parameters:
		  - context: context.Context
		  - id: string
		  - dates: schedule.EventDates
		  - toBeConfirmed: bool
	*/
	UpdateSchedule(context context.Context, id string, dates schedule.EventDates, toBeConfirmed bool) error

	/*
		UpdateState transitions an event's lifecycle state.
	*/
	UpdateState(context context.Context, id string, state State) error

	/*
		ExpireEnded marks scheduled events whose end date passed before the
		cutoff as expired. Returns the number of affected rows.
	*/
	ExpireEnded(context context.Context, cutoffDays int) (int, error)

	/*
		SoftDelete marks an event as deleted.
	*/
	SoftDelete(context context.Context, id string) error
}

// # Edit Session Storage

// SessionRepository persists in-flight schedule editing sessions. Sessions
// are volatile by design: an abandoned edit evaporates after its TTL and the
// stored event is untouched.
type SessionRepository interface {

	/*
		Save stores the editor snapshot for an event, refreshing the TTL.

		Parameters:
		  - context: context.Context
		  - eventID: string
		  - state: schedule.EditorState
	*/
	Save(context context.Context, eventID string, state schedule.EditorState) error

	/*
		Find retrieves the editor snapshot for an event.

		Returns:
		  - *schedule.EditorState: The persisted snapshot
		  - error: apperr.NotFound when no session exists or it expired
	*/
	Find(context context.Context, eventID string) (*schedule.EditorState, error)

	/*
		Delete discards the editor snapshot for an event.
	*/
	Delete(context context.Context, eventID string) error
}
