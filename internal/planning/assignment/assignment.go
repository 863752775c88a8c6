// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

/*
Package assignment manages the hand-off of coverages to journalists.

An assignment binds one coverage to one assignee. At most one active
assignment exists per coverage: reassigning moves the existing record rather
than stacking a new one.

# Lifecycle

assigned → in_progress → completed | cancelled. Completing an assignment
completes its coverage; cancelling one returns the coverage to the planned
pool.
*/
package assignment

import (
	"time"
)

// # Assignment Lifecycle

// State is the lifecycle phase of an assignment.
type State string

const (
	StateAssigned   State = "assigned"
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
	StateCancelled  State = "cancelled"
)

// Valid reports whether the state is one of the known phases.
func (s State) Valid() bool {
	switch s {
	case StateAssigned, StateInProgress, StateCompleted, StateCancelled:
		return true
	}
	return false
}

// terminal states accept no further transitions.
func (s State) terminal() bool {
	return s == StateCompleted || s == StateCancelled
}

// # Core Entities

// Assignment represents one coverage handed to one journalist.
type Assignment struct {
	ID         string  `json:"id"` // UUIDv7
	CoverageID string  `json:"coverage_id"`
	AssigneeID string  `json:"assignee_id"`
	AssignedBy string  `json:"assigned_by"`
	State      State   `json:"state"`
	Priority   int     `json:"priority"` // 1 (highest) to 5
	Note       *string `json:"note,omitempty"`

	AssignedAt  time.Time  `json:"assigned_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// # Search & Filtering

// Filter holds parameters for listing assignments.
type Filter struct {
	AssigneeID string  `json:"assignee_id"`
	CoverageID string  `json:"coverage_id"`
	States     []State `json:"states"`
	Priority   int     `json:"priority"` // 0 means any
}

// # Field Identifiers

const (
	FieldAssigneeID = "assignee_id"
	FieldCoverageID = "coverage_id"
	FieldPriority   = "priority"
)
