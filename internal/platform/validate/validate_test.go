// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package validate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsdeskhq/planning-api/internal/platform/apperr"
	"github.com/newsdeskhq/planning-api/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "slugline", "olympics-opening", false},
		{"empty_string", "slugline", "", true},
		{"whitespace_only", "slugline", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Coordinates checks the latitude/longitude bounds used by the
locations editor.
*/
func TestValidator_Coordinates(t *testing.T) {
	tests := []struct {
		name     string
		lat      float64
		lon      float64
		hasError bool
	}{
		{"valid_point", -33.8688, 151.2093, false},
		{"lat_too_high", 91, 0, true},
		{"lat_too_low", -90.5, 0, true},
		{"lon_too_high", 0, 180.1, true},
		{"lon_too_low", 0, -181, true},
		{"both_boundaries", 90, -180, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Latitude("position.latitude", tt.lat).Longitude("position.longitude", tt.lon)
			assert.Equal(t, tt.hasError, v.HasErrors())
		})
	}
}

/*
TestValidator_Timezone checks the IANA zone-name rule, including the
empty-means-local pass-through.
*/
func TestValidator_Timezone(t *testing.T) {
	lookup := func(name string) error {
		_, err := time.LoadLocation(name)
		return err
	}

	v := &validate.Validator{}
	v.Timezone("dates.tz", "Australia/Sydney", lookup)
	assert.False(t, v.HasErrors())

	v.Timezone("dates.tz", "", lookup)
	assert.False(t, v.HasErrors(), "empty timezone means local time")

	v.Timezone("dates.tz", "Mars/OlympusMons", lookup)
	assert.True(t, v.HasErrors())
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	// Multi-rule validation
	err := v.
		Required("slugline", "olympics").
		Slug("slugline", "olympics").
		MaxLen("slugline", "olympics", 64).
		OneOf("state", "draft", "draft", "scheduled").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("slugline", "").            // Fails
		MinLen("name", "a", 5).              // Fails
		Email("contact_email", "not-an-at"). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}
