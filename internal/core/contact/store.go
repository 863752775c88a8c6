// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package contact

import "context"

// # Contact Data Access

// Repository defines the data access contract for the contact directory.
type Repository interface {

	/*
		List returns a filtered, paginated slice of contacts and the total count.

		Parameters:
		  - context: context.Context
		  - filter: Filter
		  - limit, offset: int

		Returns:
		  - []*Contact: Slice of matching contacts
		  - int: Total record count
		  - error: Database retrieval failures
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*Contact, int, error)

	/*
		FindByID retrieves a contact by its UUID.

		Returns:
		  - *Contact: Hydrated entity
		  - error: ErrNotFound if missing
	*/
	FindByID(context context.Context, id string) (*Contact, error)

	/*
		Create persists a new contact.
	*/
	Create(context context.Context, contact *Contact) error

	/*
		Update modifies an existing contact.
	*/
	Update(context context.Context, contact *Contact) error

	/*
		SoftDelete marks a contact as deleted.
	*/
	SoftDelete(context context.Context, id string) error
}
