// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package assignment

import (
	"context"
)

// # Assignment Data Access

// Repository defines the data access contract for assignments.
type Repository interface {

	/*
		List returns a filtered, paginated slice of assignments and the total
		count.

		Parameters:
		  - context: context.Context
		  - filter: Filter (Assignee, coverage, states, priority)
		  - limit, offset: int

		Returns:
		  - []*Assignment: Slice ordered by priority, then assignment time
		  - int: Total record count
		  - error: Database retrieval failures
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*Assignment, int, error)

	/*
		FindByID retrieves an assignment by its UUID.

		Returns:
		  - *Assignment: Hydrated entity
		  - error: ErrNotFound if missing
	*/
	FindByID(context context.Context, id string) (*Assignment, error)

	/*
		FindActiveByCoverage retrieves the non-terminal assignment for a
		coverage, if one exists.

		Returns:
		  - *Assignment: The active assignment
		  - error: ErrNotFound when the coverage is unassigned
	*/
	FindActiveByCoverage(context context.Context, coverageID string) (*Assignment, error)

	/*
		Create persists a new assignment.
	*/
	Create(context context.Context, assignment *Assignment) error

	/*
		Update modifies an assignment's assignee, priority, and note. Moving
		the assignee refreshes the assignment timestamp.
	*/
	Update(context context.Context, assignment *Assignment) error

	/*
		UpdateState transitions an assignment's lifecycle state, stamping
		started/completed times as the state demands.
	*/
	UpdateState(context context.Context, id string, state State) error
}
