// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package location

import "context"

// # Location Data Access

// Repository defines the data access contract for venues.
type Repository interface {

	/*
		List returns a filtered, paginated slice of venues and the total count.

		Parameters:
		  - context: context.Context
		  - filter: Filter
		  - limit, offset: int

		Returns:
		  - []*Location: Slice of matching venues
		  - int: Total record count
		  - error: Database retrieval failures
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*Location, int, error)

	/*
		FindByID retrieves a venue by its UUID.

		Returns:
		  - *Location: Hydrated entity
		  - error: ErrNotFound if missing
	*/
	FindByID(context context.Context, id string) (*Location, error)

	/*
		Create persists a new venue.
	*/
	Create(context context.Context, location *Location) error

	/*
		Update modifies an existing venue.
	*/
	Update(context context.Context, location *Location) error

	/*
		SoftDelete marks a venue as deleted.
	*/
	SoftDelete(context context.Context, id string) error
}
