// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

/*
Package item manages planning items, the editorial work units of the desk.

A planning item is the newsroom's intent to cover something: it may hang off
a planned event or stand alone (a feature, an anniversary piece). Items carry
coverages, one per content type being produced (text, photo, video), and each
coverage can later be assigned to a journalist.

# Relationship to Events

An item references at most one event. Deleting an event leaves its items in
place; the reference simply dangles as historical context.
*/
package item

import (
	"time"

	"github.com/newsdeskhq/planning-api/internal/multilingual"
)

// # Item Lifecycle

// State is the lifecycle phase of a planning item.
type State string

const (
	StateDraft     State = "draft"
	StateScheduled State = "scheduled"
	StateCancelled State = "cancelled"
	StateExpired   State = "expired"
)

// Valid reports whether the state is one of the known phases.
func (s State) Valid() bool {
	switch s {
	case StateDraft, StateScheduled, StateCancelled, StateExpired:
		return true
	}
	return false
}

// terminal states accept no further edits.
func (s State) terminal() bool {
	return s == StateCancelled || s == StateExpired
}

// # Coverage

// ContentType identifies what a coverage produces.
type ContentType string

const (
	ContentTypeText  ContentType = "text"
	ContentTypePhoto ContentType = "photo"
	ContentTypeVideo ContentType = "video"
)

// Valid reports whether the content type is a known kind of output.
func (c ContentType) Valid() bool {
	switch c {
	case ContentTypeText, ContentTypePhoto, ContentTypeVideo:
		return true
	}
	return false
}

// CoverageStatus tracks a coverage's production progress.
type CoverageStatus string

const (
	CoveragePlanned   CoverageStatus = "planned"
	CoverageAssigned  CoverageStatus = "assigned"
	CoverageCompleted CoverageStatus = "completed"
	CoverageCancelled CoverageStatus = "cancelled"
)

// Valid reports whether the status is a known progress value.
func (s CoverageStatus) Valid() bool {
	switch s {
	case CoveragePlanned, CoverageAssigned, CoverageCompleted, CoverageCancelled:
		return true
	}
	return false
}

// Coverage is one planned piece of output under an item.
type Coverage struct {
	ID          string         `json:"id"` // UUIDv7
	ItemID      string         `json:"item_id"`
	ContentType ContentType    `json:"content_type"`
	Status      CoverageStatus `json:"status"`
	Slugline    string         `json:"slugline"`
	Note        *string        `json:"note,omitempty"`
	ScheduledAt *time.Time     `json:"scheduled_at,omitempty"` // Delivery deadline

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}

// # Core Entities

// Item represents a planning item with its embedded coverages.
type Item struct {
	ID          string  `json:"id"` // UUIDv7
	EventID     *string `json:"event_id,omitempty"`
	ProfileID   string  `json:"profile_id"`
	Slugline    string  `json:"slugline"`
	Description *string `json:"description,omitempty"`
	State       State   `json:"state"`
	Urgency     int     `json:"urgency"` // 1 (highest) to 5

	Translations []multilingual.Entry `json:"translations,omitempty"`

	Coverages []Coverage `json:"coverages"`

	CreatedBy string     `json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}

// # Search & Filtering

// Filter holds parameters for listing planning items.
type Filter struct {
	EventID   string  `json:"event_id"`
	ProfileID string  `json:"profile_id"`
	States    []State `json:"states"`
	Urgency   int     `json:"urgency"` // 0 means any
	Query     string  `json:"q"`       // Matches slugline and description
}

// # Field Identifiers

const (
	FieldSlugline    = "slugline"
	FieldDescription = "description"
	FieldUrgency     = "urgency"
	FieldContentType = "content_type"
	FieldStatus      = "status"
)
