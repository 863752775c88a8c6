// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

// Package pagination standardizes page-based navigation across API list
// endpoints: how "page" and "limit" are read from the query string and how
// the resulting metadata appears in the response envelope.
package pagination

import (
	"net/http"

	"github.com/newsdeskhq/planning-api/pkg/convert"
)

const (
	// DefaultLimit is the page size when the client does not specify one.
	DefaultLimit = 20
	// MaxLimit caps the page size. Larger requests are clamped, not rejected.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the sanitized page and limit for a list query.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the SQL OFFSET implied by Page and Limit.
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination block included in list responses.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta derives the response metadata from a result count.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// FromRequest reads "page" and "limit" from the query string. Missing,
// malformed, or out-of-range values fall back to the defaults; an oversized
// limit is clamped to MaxLimit.
func FromRequest(r *http.Request) Params {
	page := convert.ToInt(r.URL.Query().Get("page"))
	if page < 1 {
		page = DefaultPage
	}

	limit := convert.ToInt(r.URL.Query().Get("limit"))
	switch {
	case limit < 1:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	return Params{Page: page, Limit: limit}
}
