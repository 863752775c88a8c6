// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

// Package query provides small helpers for parsing URL query parameters.
package query

import "strings"

/*
StringSlice splits a comma-separated query value into its non-empty,
trimmed elements. Duplicates are preserved; callers that care validate
the elements themselves.

Returns nil for an empty or all-whitespace input so that filters can
treat "absent" and "empty" identically.
*/
func StringSlice(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	elements := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			elements = append(elements, trimmed)
		}
	}

	if len(elements) == 0 {
		return nil
	}
	return elements
}
