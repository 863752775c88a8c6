// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/newsdeskhq/planning-api/pkg/pagination"
)

func TestFromRequest(t *testing.T) {
	testCases := []struct {
		name          string
		url           string
		expectedPage  int
		expectedLimit int
	}{
		{"defaults when absent", "/events", 1, 20},
		{"explicit values", "/events?page=3&limit=50", 3, 50},
		{"zero page falls back", "/events?page=0", 1, 20},
		{"negative limit falls back", "/events?limit=-5", 1, 20},
		{"oversized limit is clamped", "/events?limit=9999", 1, 100},
		{"garbage falls back", "/events?page=abc&limit=xyz", 1, 20},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tc.url, nil)

			params := pagination.FromRequest(request)

			assert.Equal(t, tc.expectedPage, params.Page)
			assert.Equal(t, tc.expectedLimit, params.Limit)
		})
	}
}

func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, pagination.Params{Page: 3, Limit: 20}.Offset())

	// Page 0 is never produced by FromRequest, but Offset stays safe.
	assert.Equal(t, 0, pagination.Params{Page: 0, Limit: 20}.Offset())
}

func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(2, 20, 41)

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 20, meta.Limit)
	assert.Equal(t, 41, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	assert.Equal(t, 0, pagination.NewMeta(1, 0, 10).TotalPages)
}
