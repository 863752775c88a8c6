// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

/*
Package profile manages content profiles for the planning desk.

A content profile bundles the editorial configuration applied to events and
planning items created under it: the schedule editor settings (default
duration, all-day availability) and the multilingual field setup (enabled
fields, active languages, default language).

# Core Responsibility

  - Configuration: Defines the [Profile] entity and its JSONB settings blocks.
  - Defaults: Exactly one profile is flagged as the newsroom default.
  - Distribution: The event and item services resolve their profile at write
    time; profiles are never embedded into events.
*/
package profile

import (
	"time"

	"github.com/newsdeskhq/planning-api/internal/multilingual"
	"github.com/newsdeskhq/planning-api/internal/schedule"
)

// # Core Entities

// EditorSettings is the schedule-editor section of a content profile.
type EditorSettings struct {
	DefaultDurationHours int  `json:"default_duration_on_change"`
	AllDayEnabled        bool `json:"all_day_enabled"`
}

// Profile represents a content profile owned by a desk or output channel.
type Profile struct {
	ID           string              `json:"id"` // UUIDv7
	Name         string              `json:"name"`
	Slug         string              `json:"slug"`
	Editor       EditorSettings      `json:"editor"`
	Multilingual multilingual.Config `json:"multilingual"`
	IsDefault    bool                `json:"is_default"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
	DeletedAt    *time.Time          `json:"-"`
}

// EditorConfig adapts the profile settings into the schedule editor's
// configuration shape.
func (p *Profile) EditorConfig() schedule.EditorConfig {
	return schedule.EditorConfig{
		DefaultDurationHours: p.Editor.DefaultDurationHours,
		AllDayEnabled:        p.Editor.AllDayEnabled,
	}
}

// # Field Identifiers

const (
	FieldName = "name"
	FieldSlug = "slug"
)
