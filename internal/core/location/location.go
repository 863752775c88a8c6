// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

/*
Package location manages the venues planned events take place at.

A location carries an optional geographic point and an IANA timezone so the
scheduling layer can present event times in the venue's local clock.

# Core Responsibility

  - Venues: Defines the [Location] entity and its metadata.
  - Geography: Validates coordinates and timezone names on write.
*/
package location

import "time"

// # Core Entities

// Location represents a venue or place referenced by planned events.
type Location struct {
	ID        string     `json:"id"` // UUIDv7
	Name      string     `json:"name"`
	Address   *string    `json:"address,omitempty"`
	City      *string    `json:"city,omitempty"`
	Country   *string    `json:"country,omitempty"`
	Latitude  *float64   `json:"latitude,omitempty"`
	Longitude *float64   `json:"longitude,omitempty"`
	TZ        string     `json:"tz,omitempty"` // IANA zone name, empty means unknown
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}

// # Search & Filtering

// Filter holds parameters for searching venues.
type Filter struct {
	Query   string `json:"q"` // Matches name and city
	Country string `json:"country"`
}

// # Field Identifiers

const (
	FieldName      = "name"
	FieldLatitude  = "latitude"
	FieldLongitude = "longitude"
	FieldTZ        = "tz"
)
