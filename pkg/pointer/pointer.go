// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

// Package pointer removes the address-of boilerplate around optional fields.
package pointer

// To returns a pointer to v. Handy for filling optional struct fields from
// literals, e.g. pointer.To(time.Date(...)).
func To[T any](v T) *T {
	return &v
}

// Val dereferences p, returning T's zero value when p is nil.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
