// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package sec

// # Newsroom Roles

// UserRole represents the authorization level granted to a staff account.
type UserRole string

const (
	// Unrestricted system access
	RoleAdmin UserRole = "admin"

	// Can manage content profiles, reassign coverage, and spike any item
	RoleEditor UserRole = "editor"

	// Can create and schedule events, planning items, and assignments
	RoleProducer UserRole = "producer"

	// Default role: can work assignments and edit own items
	RoleJournalist UserRole = "journalist"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {

	// Linear scale (10-40) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 40
	case RoleEditor:
		return 30
	case RoleProducer:
		return 20
	case RoleJournalist:
		return 10
	default:
		return 0
	}
}
