// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package multilingual_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsdeskhq/planning-api/internal/multilingual"
)

/*
TestSplitKey checks the legacy dotted-form parser, including dotted base
fields and malformed input.
*/
func TestSplitKey(t *testing.T) {
	tests := []struct {
		name   string
		joined string
		want   multilingual.Key
		ok     bool
	}{
		{"simple", "slugline.de", multilingual.Key{Field: "slugline", Language: "de"}, true},
		{"dotted_field", "extra.note.fr", multilingual.Key{Field: "extra.note", Language: "fr"}, true},
		{"no_dot", "slugline", multilingual.Key{}, false},
		{"trailing_dot", "slugline.", multilingual.Key{}, false},
		{"leading_dot", ".de", multilingual.Key{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := multilingual.SplitKey(tt.joined)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestJoinSplitRoundTrip checks the join/split pair is lossless.
*/
func TestJoinSplitRoundTrip(t *testing.T) {
	k := multilingual.Key{Field: "headline", Language: "nl"}
	got, ok := multilingual.SplitKey(multilingual.JoinKey(k))
	require.True(t, ok)
	assert.Equal(t, k, got)
}

/*
TestFieldStates_BackfillsDefaultLanguage checks the one-time legacy
migration seed: an item with no translations resolves its plain field value
under the profile's default language.
*/
func TestFieldStates_BackfillsDefaultLanguage(t *testing.T) {
	cfg := multilingual.Config{
		Enabled:         true,
		Fields:          []string{"slugline"},
		Languages:       []string{"en", "de"},
		DefaultLanguage: "en",
	}

	states := multilingual.FieldStates(nil, "X", "slugline", cfg)
	assert.Equal(t, map[string]string{"en": "X"}, states)

	// An existing default-language entry wins over the plain field.
	entries := []multilingual.Entry{
		{Field: "slugline", Language: "en", Value: "translated"},
	}
	states = multilingual.FieldStates(entries, "X", "slugline", cfg)
	assert.Equal(t, "translated", states["en"])
}

/*
TestFieldStates_FiltersByField checks that only entries of the requested
field contribute.
*/
func TestFieldStates_FiltersByField(t *testing.T) {
	entries := []multilingual.Entry{
		{Field: "slugline", Language: "en", Value: "A"},
		{Field: "headline", Language: "en", Value: "B"},
		{Field: "slugline", Language: "de", Value: "C"},
	}

	states := multilingual.FieldStates(entries, "", "slugline", multilingual.Config{DefaultLanguage: "en"})
	assert.Equal(t, map[string]string{"en": "A", "de": "C"}, states)
}

/*
TestApply_AppendsNewLanguage checks that editing a field in a new language
appends a second entry rather than replacing the existing one.
*/
func TestApply_AppendsNewLanguage(t *testing.T) {
	entries := []multilingual.Entry{
		{Field: "slugline", Language: "en", Value: "X"},
	}

	updated := multilingual.Apply(entries, multilingual.Key{Field: "slugline", Language: "de"}, "Y")

	require.Len(t, updated, 2, "one entry per language")
	assert.Equal(t, multilingual.Entry{Field: "slugline", Language: "en", Value: "X"}, updated[0])
	assert.Equal(t, multilingual.Entry{Field: "slugline", Language: "de", Value: "Y"}, updated[1])
}

/*
TestApply_ReplacesInPlace checks the uniqueness invariant: a second write to
the same (field, language) pair replaces the value at its original position.
*/
func TestApply_ReplacesInPlace(t *testing.T) {
	entries := []multilingual.Entry{
		{Field: "slugline", Language: "en", Value: "X"},
		{Field: "slugline", Language: "de", Value: "Y"},
	}

	updated := multilingual.Apply(entries, multilingual.Key{Field: "slugline", Language: "en"}, "Z")

	require.Len(t, updated, 2)
	assert.Equal(t, "Z", updated[0].Value)
	assert.Equal(t, "en", updated[0].Language)
}

/*
TestSet_Dedup checks that a duplicated pair in stored data collapses
structurally, keeping first position and last value.
*/
func TestSet_Dedup(t *testing.T) {
	set := multilingual.FromEntries([]multilingual.Entry{
		{Field: "slugline", Language: "en", Value: "old"},
		{Field: "headline", Language: "en", Value: "H"},
		{Field: "slugline", Language: "en", Value: "new"},
	})

	require.Equal(t, 2, set.Len())
	entries := set.Entries()
	assert.Equal(t, "slugline", entries[0].Field)
	assert.Equal(t, "new", entries[0].Value)
}

/*
TestConfig_ModeFor checks the rendering policy ladder: disabled → plain,
one active language → single, several → per-language.
*/
func TestConfig_ModeFor(t *testing.T) {
	tests := []struct {
		name string
		cfg  multilingual.Config
		want multilingual.Mode
	}{
		{
			"disabled_profile",
			multilingual.Config{Enabled: false, Fields: []string{"slugline"}},
			multilingual.ModePlain,
		},
		{
			"field_not_listed",
			multilingual.Config{Enabled: true, Fields: []string{"headline"}, Languages: []string{"en", "de"}},
			multilingual.ModePlain,
		},
		{
			"single_language",
			multilingual.Config{Enabled: true, Fields: []string{"slugline"}, Languages: []string{"en"}},
			multilingual.ModeSingle,
		},
		{
			"two_languages",
			multilingual.Config{Enabled: true, Fields: []string{"slugline"}, Languages: []string{"en", "de"}},
			multilingual.ModePerLanguage,
		},
		{
			"duplicate_codes_count_once",
			multilingual.Config{Enabled: true, Fields: []string{"slugline"}, Languages: []string{"en", "EN"}},
			multilingual.ModeSingle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.ModeFor("slugline"))
		})
	}
}

/*
TestConfig_ActiveLanguages checks BCP 47 canonicalization and order-preserving
deduplication.
*/
func TestConfig_ActiveLanguages(t *testing.T) {
	cfg := multilingual.Config{Languages: []string{"en", "DE", "de", "not-at-all-a-language-tag-xx!!"}}
	langs := cfg.ActiveLanguages()

	require.GreaterOrEqual(t, len(langs), 3)
	assert.Equal(t, "en", langs[0])
	assert.Equal(t, "de", langs[1], "DE canonicalizes to de and later duplicates collapse")
}
