// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package profile

import "context"

// # Profile Data Access

// Repository defines the data access contract for content profiles.
type Repository interface {

	/*
		List returns all active profiles.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*Profile: Slice of profiles, default first
		  - error: Database retrieval failures
	*/
	List(context context.Context) ([]*Profile, error)

	/*
		FindByID retrieves a profile by its UUID.

		Parameters:
		  - context: context.Context
		  - id: string (UUIDv7)

		Returns:
		  - *Profile: Hydrated entity
		  - error: ErrNotFound if missing
	*/
	FindByID(context context.Context, id string) (*Profile, error)

	/*
		FindDefault retrieves the newsroom default profile.

		Returns:
		  - *Profile: Hydrated entity
		  - error: ErrNotFound if no default is configured
	*/
	FindDefault(context context.Context) (*Profile, error)

	/*
		Create persists a new profile.

		Parameters:
		  - context: context.Context
		  - profile: *Profile

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, profile *Profile) error

	/*
		Update modifies an existing profile's settings.

		Parameters:
		  - context: context.Context
		  - profile: *Profile

		Returns:
		  - error: Persistence failures
	*/
	Update(context context.Context, profile *Profile) error

	/*
		SoftDelete marks a profile as deleted.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Persistence failures
	*/
	SoftDelete(context context.Context, id string) error
}
