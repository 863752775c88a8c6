// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

/*
Package convert provides fault-tolerant string conversions for query-parameter
parsing, where absent and malformed both collapse to the zero value.

Do not use it where malformed input must be distinguished from zero; call
[strconv] directly there.
*/
package convert

import "strconv"

// ToInt parses s as an integer, returning 0 when empty or malformed.
func ToInt(s string) int {
	if s == "" {
		return 0
	}
	v, _ := strconv.Atoi(s)
	return v
}

// ToBool parses a boolean string ("true", "1", "false", "0"), returning
// false when empty or malformed.
func ToBool(s string) bool {
	if s == "" {
		return false
	}
	v, _ := strconv.ParseBool(s)
	return v
}
