// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

/*
Package multilingual resolves translated content fields against the active
language set of a content profile.

A content item carries a flat ordered list of [Entry] values (the persisted
wire form). Internally the package works on a keyed map (field, language) →
value, so the at-most-one-entry-per-pair invariant is structural rather than
procedurally maintained by find-and-replace scans. Serialization to and from
the flat list happens only at the storage boundary.

Items created before multilingual support existed have their value in the
plain base field only; resolution backfills the profile's default language
from it exactly once, after which the entries list is the single source of
truth.
*/
package multilingual

import (
	"strings"

	"golang.org/x/text/language"
)

// # Keys & Entries

// Key identifies one translated value: a base field in one language.
// It replaces the stringly "field.language" pseudo-namespace of older
// clients; JoinKey and SplitKey are the only conversion points.
type Key struct {
	Field    string `json:"field"`
	Language string `json:"language"`
}

// JoinKey renders the key in the legacy dotted form ("slugline.de").
func JoinKey(k Key) string {
	return k.Field + "." + k.Language
}

// SplitKey parses the legacy dotted form. The language is everything after
// the last dot, so base fields containing dots survive the round trip.
func SplitKey(joined string) (Key, bool) {
	idx := strings.LastIndex(joined, ".")
	if idx <= 0 || idx == len(joined)-1 {
		return Key{}, false
	}
	return Key{Field: joined[:idx], Language: joined[idx+1:]}, true
}

// Entry is the persisted form of one translated value.
type Entry struct {
	Field    string `json:"field"`
	Language string `json:"language"`
	Value    string `json:"value"`
}

// # Profile Configuration

// Config is the multilingual section of a content profile. It is supplied by
// the profile service and read-only here.
type Config struct {
	Enabled         bool     `json:"enabled"`
	Fields          []string `json:"fields,omitempty"`
	Languages       []string `json:"languages,omitempty"`
	DefaultLanguage string   `json:"default_language,omitempty"`
}

// FieldEnabled reports whether the field participates in multilingual
// editing under this profile.
func (c Config) FieldEnabled(field string) bool {
	if !c.Enabled {
		return false
	}
	for _, f := range c.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// ActiveLanguages returns the configured language codes, canonicalized via
// BCP 47 parsing and deduplicated, preserving configuration order. Codes
// that fail to parse are kept verbatim rather than dropped.
func (c Config) ActiveLanguages() []string {
	seen := make(map[string]bool, len(c.Languages))
	out := make([]string, 0, len(c.Languages))
	for _, code := range c.Languages {
		canonical := code
		if tag, err := language.Parse(code); err == nil {
			canonical = tag.String()
		}
		if seen[canonical] {
			continue
		}
		seen[canonical] = true
		out = append(out, canonical)
	}
	return out
}

// Mode is the presentation policy for one field under one profile.
type Mode int

const (
	// ModePlain binds a single input directly to the base field; the
	// entries list is not involved.
	ModePlain Mode = iota
	// ModeSingle stores the value in the entries list but presents one
	// unlabelled input (at most one active language).
	ModeSingle
	// ModePerLanguage presents one labelled input per active language.
	ModePerLanguage
)

// ModeFor resolves the presentation policy for a field.
func (c Config) ModeFor(field string) Mode {
	if !c.FieldEnabled(field) {
		return ModePlain
	}
	if len(c.ActiveLanguages()) <= 1 {
		return ModeSingle
	}
	return ModePerLanguage
}

// # Keyed Translation Set

// Set is the working form of an item's translations: a keyed map with the
// original list order retained for stable serialization.
type Set struct {
	order  []Key
	values map[Key]string
}

// FromEntries builds a Set from the persisted list. A duplicate (field,
// language) pair keeps its first position and takes the last value.
func FromEntries(entries []Entry) *Set {
	s := &Set{values: make(map[Key]string, len(entries))}
	for _, e := range entries {
		s.Put(Key{Field: e.Field, Language: e.Language}, e.Value)
	}
	return s
}

// Get returns the value for the key and whether it is present.
func (s *Set) Get(k Key) (string, bool) {
	v, ok := s.values[k]
	return v, ok
}

// Put stores the value under the key: an existing pair is replaced in place,
// a new pair is appended. This is the structural form of the legacy
// find-or-append scan.
func (s *Set) Put(k Key, value string) {
	if _, exists := s.values[k]; !exists {
		s.order = append(s.order, k)
	}
	s.values[k] = value
}

// Delete removes the pair if present.
func (s *Set) Delete(k Key) {
	if _, exists := s.values[k]; !exists {
		return
	}
	delete(s.values, k)
	for i, key := range s.order {
		if key == k {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of stored pairs.
func (s *Set) Len() int { return len(s.values) }

// Entries serializes the set back to the flat persisted list.
func (s *Set) Entries() []Entry {
	out := make([]Entry, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, Entry{Field: k.Field, Language: k.Language, Value: s.values[k]})
	}
	return out
}

// # Resolution

// FieldStates derives the per-language values of one field: the entries
// filtered to the field, keyed by language. When the profile's default
// language has no entry, the plain base field value seeds it — the one-time
// migration path for legacy items.
func FieldStates(entries []Entry, plainValue, field string, cfg Config) map[string]string {
	states := make(map[string]string)
	for _, e := range entries {
		if e.Field == field {
			states[e.Language] = e.Value
		}
	}
	if cfg.DefaultLanguage != "" {
		if _, ok := states[cfg.DefaultLanguage]; !ok {
			states[cfg.DefaultLanguage] = plainValue
		}
	}
	return states
}

// Apply folds one translated-field edit into the entries list and returns
// the updated list. It is the write half of FieldStates.
func Apply(entries []Entry, k Key, value string) []Entry {
	s := FromEntries(entries)
	s.Put(k, value)
	return s.Entries()
}
