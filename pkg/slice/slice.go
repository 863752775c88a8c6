// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

// Package slice adds the generic transforms the standard [slices] package
// stops short of.
package slice

// Map applies transform to every element of input. A nil input stays nil so
// that optional request fields round-trip untouched.
func Map[T any, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}
	return result
}
