// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

/*
Package contact manages the newsroom's media contact directory.

Contacts are the people and organisations journalists reach out to while
covering a planned event: press officers, spokespeople, venue managers.

# Core Responsibility

  - Directory: Defines the [Contact] entity and its metadata.
  - Privacy: Tracks whether a contact may appear in shared planning views.
*/
package contact

import "time"

// # Core Entities

// Contact represents a person or organisation in the media directory.
type Contact struct {
	ID           string     `json:"id"` // UUIDv7
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Organisation *string    `json:"organisation,omitempty"`
	JobTitle     *string    `json:"job_title,omitempty"`
	Email        *string    `json:"email,omitempty"`
	Phone        *string    `json:"phone,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
	IsPublic     bool       `json:"is_public"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"-"`
}

// # Search & Filtering

// Filter holds parameters for searching the directory.
type Filter struct {
	Query      string `json:"q"` // Matches name and organisation
	PublicOnly bool   `json:"public_only"`
}

// # Field Identifiers

const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
)
