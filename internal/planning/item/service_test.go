// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package item

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsdeskhq/planning-api/internal/core/profile"
	"github.com/newsdeskhq/planning-api/internal/multilingual"
	"github.com/newsdeskhq/planning-api/internal/platform/apperr"
	"github.com/newsdeskhq/planning-api/pkg/pointer"
)

// # Test Doubles

// memoryRepository is an in-memory [Repository] for service tests.
type memoryRepository struct {
	items     map[string]*Item
	coverages map[string]*Coverage
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		items:     make(map[string]*Item),
		coverages: make(map[string]*Coverage),
	}
}

func (m *memoryRepository) List(_ context.Context, filter Filter, limit, offset int) ([]*Item, int, error) {
	var out []*Item
	for _, i := range m.items {
		if filter.EventID != "" && (i.EventID == nil || *i.EventID != filter.EventID) {
			continue
		}
		out = append(out, i)
	}
	return out, len(out), nil
}

func (m *memoryRepository) FindByID(_ context.Context, id string) (*Item, error) {
	i, ok := m.items[id]
	if !ok {
		return nil, apperr.NotFound("planning item")
	}
	copied := *i
	copied.Coverages = nil
	for _, c := range m.coverages {
		if c.ItemID == id {
			copied.Coverages = append(copied.Coverages, *c)
		}
	}
	return &copied, nil
}

func (m *memoryRepository) Create(_ context.Context, item *Item) error {
	copied := *item
	m.items[item.ID] = &copied
	for _, c := range item.Coverages {
		coverage := c
		m.coverages[c.ID] = &coverage
	}
	return nil
}

func (m *memoryRepository) Update(_ context.Context, item *Item) error {
	stored, ok := m.items[item.ID]
	if !ok {
		return apperr.NotFound("planning item")
	}
	stored.Slugline = item.Slugline
	stored.Description = item.Description
	stored.Urgency = item.Urgency
	stored.Translations = item.Translations
	return nil
}

func (m *memoryRepository) UpdateState(_ context.Context, id string, state State) error {
	stored, ok := m.items[id]
	if !ok {
		return apperr.NotFound("planning item")
	}
	stored.State = state
	return nil
}

func (m *memoryRepository) ExpireEnded(_ context.Context, _ int) (int, error) {
	return 0, nil
}

func (m *memoryRepository) SoftDelete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return apperr.NotFound("planning item")
	}
	delete(m.items, id)
	return nil
}

func (m *memoryRepository) AddCoverage(_ context.Context, coverage *Coverage) error {
	copied := *coverage
	m.coverages[coverage.ID] = &copied
	return nil
}

func (m *memoryRepository) FindCoverage(_ context.Context, id string) (*Coverage, error) {
	c, ok := m.coverages[id]
	if !ok {
		return nil, apperr.NotFound("coverage")
	}
	copied := *c
	return &copied, nil
}

func (m *memoryRepository) UpdateCoverage(_ context.Context, coverage *Coverage) error {
	stored, ok := m.coverages[coverage.ID]
	if !ok {
		return apperr.NotFound("coverage")
	}
	stored.Slugline = coverage.Slugline
	stored.Note = coverage.Note
	stored.ScheduledAt = coverage.ScheduledAt
	stored.Status = coverage.Status
	return nil
}

func (m *memoryRepository) UpdateCoverageStatus(_ context.Context, id string, status CoverageStatus) error {
	stored, ok := m.coverages[id]
	if !ok {
		return apperr.NotFound("coverage")
	}
	stored.Status = status
	return nil
}

// staticProfiles resolves every lookup to a single fixed profile.
type staticProfiles struct {
	profile *profile.Profile
}

func (s *staticProfiles) Resolve(_ context.Context, _ string) (*profile.Profile, error) {
	return s.profile, nil
}

func newTestService() (*Service, *memoryRepository) {
	repo := newMemoryRepository()
	profiles := &staticProfiles{profile: &profile.Profile{
		ID:   "profile-1",
		Name: "Newsroom",
		Multilingual: multilingual.Config{
			Enabled:         true,
			Fields:          []string{"slugline", "description"},
			Languages:       []string{"en", "fr"},
			DefaultLanguage: "en",
		},
	}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, profiles, logger), repo
}

func deadline(y int, m time.Month, d int) *time.Time {
	return pointer.To(time.Date(y, m, d, 17, 0, 0, 0, time.UTC))
}

// # Creation

/*
TestService_CreateItem verifies an item with a dated coverage starts
scheduled, coverages get IDs and the planned status, and the default urgency
is filled in.
*/
func TestService_CreateItem(t *testing.T) {
	service, repo := newTestService()

	input := &Item{
		Slugline: "election-night",
		Coverages: []Coverage{
			{ContentType: ContentTypeText, Slugline: "election-night-live", ScheduledAt: deadline(2026, 11, 3)},
			{ContentType: ContentTypePhoto, Status: CoverageCompleted}, // caller status is ignored
		},
	}

	created, err := service.CreateItem(context.Background(), input, "user-1")
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, StateScheduled, created.State)
	assert.Equal(t, 3, created.Urgency)
	require.Len(t, created.Coverages, 2)
	for _, c := range created.Coverages {
		assert.NotEmpty(t, c.ID)
		assert.Equal(t, created.ID, c.ItemID)
		assert.Equal(t, CoveragePlanned, c.Status)
	}
	assert.Len(t, repo.items, 1)
	assert.Len(t, repo.coverages, 2)
}

/*
TestService_CreateItem_NoDatedCoverage verifies an item whose coverages have
no deadline starts as a draft.
*/
func TestService_CreateItem_NoDatedCoverage(t *testing.T) {
	service, _ := newTestService()

	created, err := service.CreateItem(context.Background(), &Item{
		Slugline:  "profile-piece",
		Coverages: []Coverage{{ContentType: ContentTypeText}},
	}, "user-1")
	require.NoError(t, err)

	assert.Equal(t, StateDraft, created.State)
}

/*
TestService_CreateItem_RejectsBadCoverage verifies an unknown content type
fails validation.
*/
func TestService_CreateItem_RejectsBadCoverage(t *testing.T) {
	service, _ := newTestService()

	_, err := service.CreateItem(context.Background(), &Item{
		Slugline:  "weather-feature",
		Coverages: []Coverage{{ContentType: "podcast"}},
	}, "user-1")

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
}

/*
TestService_CreateItem_RejectsBadUrgency verifies urgency outside 1-5 fails
validation.
*/
func TestService_CreateItem_RejectsBadUrgency(t *testing.T) {
	service, _ := newTestService()

	_, err := service.CreateItem(context.Background(), &Item{
		Slugline: "city-council",
		Urgency:  9,
	}, "user-1")

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
}

// # Coverage Management

/*
TestService_AddCoverage verifies adding a dated coverage promotes a draft
item to scheduled.
*/
func TestService_AddCoverage(t *testing.T) {
	service, repo := newTestService()

	created, err := service.CreateItem(context.Background(), &Item{
		Slugline: "harbour-expansion",
	}, "user-1")
	require.NoError(t, err)
	require.Equal(t, StateDraft, created.State)

	coverage, err := service.AddCoverage(context.Background(), created.ID, &Coverage{
		ContentType: ContentTypeVideo,
		ScheduledAt: deadline(2026, 10, 1),
	})
	require.NoError(t, err)

	assert.Equal(t, CoveragePlanned, coverage.Status)
	assert.Equal(t, StateScheduled, repo.items[created.ID].State)
}

/*
TestService_UpdateCoverage_FrozenWhenDone verifies completed coverages reject
further edits.
*/
func TestService_UpdateCoverage_FrozenWhenDone(t *testing.T) {
	service, repo := newTestService()

	created, err := service.CreateItem(context.Background(), &Item{
		Slugline:  "transit-strike",
		Coverages: []Coverage{{ContentType: ContentTypeText}},
	}, "user-1")
	require.NoError(t, err)

	coverageID := created.Coverages[0].ID
	repo.coverages[coverageID].Status = CoverageCompleted

	err = service.UpdateCoverage(context.Background(), &Coverage{
		ID:       coverageID,
		Slugline: "transit-strike-day-two",
	})

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "CONFLICT", appError.Code)
}

/*
TestService_UpdateCoverage_ContentTypePinned verifies the content type set at
creation survives edits.
*/
func TestService_UpdateCoverage_ContentTypePinned(t *testing.T) {
	service, repo := newTestService()

	created, err := service.CreateItem(context.Background(), &Item{
		Slugline:  "airshow",
		Coverages: []Coverage{{ContentType: ContentTypePhoto}},
	}, "user-1")
	require.NoError(t, err)

	coverageID := created.Coverages[0].ID
	err = service.UpdateCoverage(context.Background(), &Coverage{
		ID:          coverageID,
		ContentType: ContentTypeText,
	})
	require.NoError(t, err)

	assert.Equal(t, ContentTypePhoto, repo.coverages[coverageID].ContentType)
}

// # Lifecycle

/*
TestService_CancelItem verifies cancelling an item cancels its open coverages
and blocks further edits.
*/
func TestService_CancelItem(t *testing.T) {
	service, repo := newTestService()

	created, err := service.CreateItem(context.Background(), &Item{
		Slugline: "festival-preview",
		Coverages: []Coverage{
			{ContentType: ContentTypeText},
			{ContentType: ContentTypePhoto},
		},
	}, "user-1")
	require.NoError(t, err)

	require.NoError(t, service.CancelItem(context.Background(), created.ID))

	assert.Equal(t, StateCancelled, repo.items[created.ID].State)
	for _, c := range repo.coverages {
		assert.Equal(t, CoverageCancelled, c.Status)
	}

	err = service.UpdateItem(context.Background(), &Item{
		ID:       created.ID,
		Slugline: "festival-preview",
	})
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "CONFLICT", appError.Code)
}

// # Translations

/*
TestService_CreateItem_Translations verifies translation entries for enabled
fields are kept and entries for disabled fields are rejected.
*/
func TestService_CreateItem_Translations(t *testing.T) {
	service, _ := newTestService()

	created, err := service.CreateItem(context.Background(), &Item{
		Slugline: "climate-summit",
		Translations: []multilingual.Entry{
			{Field: "description", Language: "fr", Value: "Sommet sur le climat"},
		},
	}, "user-1")
	require.NoError(t, err)
	require.Len(t, created.Translations, 1)

	_, err = service.CreateItem(context.Background(), &Item{
		Slugline: "climate-summit-two",
		Translations: []multilingual.Entry{
			{Field: "urgency", Language: "fr", Value: "3"},
		},
	}, "user-1")

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "UNPROCESSABLE", appError.Code)
}
