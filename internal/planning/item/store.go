// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package item

import (
	"context"
)

// # Item Data Access

// Repository defines the data access contract for planning items.
type Repository interface {

	/*
		List returns a filtered, paginated slice of items and the total count.
		Coverages are hydrated for every returned item.

		Parameters:
		  - context: context.Context
		  - filter: Filter (Event, states, urgency, query)
		  - limit, offset: int

		Returns:
		  - []*Item: Slice of matching items, newest first
		  - int: Total record count
		  - error: Database retrieval failures
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*Item, int, error)

	/*
		FindByID retrieves an item by its UUID, coverages included.

		Returns:
		  - *Item: Hydrated entity
		  - error: ErrNotFound if missing
	*/
	FindByID(context context.Context, id string) (*Item, error)

	/*
		Create persists an item and its initial coverages atomically.
	*/
	Create(context context.Context, item *Item) error

	/*
		Update modifies an item's descriptive fields and translations.
	*/
	Update(context context.Context, item *Item) error

	/*
		UpdateState transitions an item's lifecycle state.
	*/
	UpdateState(context context.Context, id string, state State) error

	/*
		ExpireEnded marks scheduled items whose latest coverage deadline passed
		before the cutoff as expired. Returns the number of affected rows.
	*/
	ExpireEnded(context context.Context, cutoffDays int) (int, error)

	/*
		SoftDelete marks an item and its coverages as deleted.
	*/
	SoftDelete(context context.Context, id string) error

	// ## Coverage Access

	/*
		AddCoverage persists a new coverage under an item.
	*/
	AddCoverage(context context.Context, coverage *Coverage) error

	/*
		FindCoverage retrieves one coverage by its UUID.

		Returns:
		  - *Coverage: The coverage row
		  - error: ErrNotFound if missing
	*/
	FindCoverage(context context.Context, id string) (*Coverage, error)

	/*
		UpdateCoverage modifies a coverage's fields and status.
	*/
	UpdateCoverage(context context.Context, coverage *Coverage) error

	/*
		UpdateCoverageStatus moves a coverage's production status.
	*/
	UpdateCoverageStatus(context context.Context, id string, status CoverageStatus) error
}
