// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package event

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
	"github.com/newsdeskhq/planning-api/internal/schedule"
	"github.com/newsdeskhq/planning-api/pkg/pointer"
)

// # Test Doubles

// memoryRepository is an in-memory [Repository] for service tests.
type memoryRepository struct {
	events map[string]*Event
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{events: make(map[string]*Event)}
}

func (m *memoryRepository) List(_ context.Context, filter Filter, limit, offset int) ([]*Event, int, error) {
	var out []*Event
	for _, e := range m.events {
		if filter.RecurrenceID != "" && (e.RecurrenceID == nil || *e.RecurrenceID != filter.RecurrenceID) {
			continue
		}
		out = append(out, e)
	}
	return out, len(out), nil
}

func (m *memoryRepository) FindByID(_ context.Context, id string) (*Event, error) {
	e, ok := m.events[id]
	if !ok {
		return nil, apperr.NotFound("event")
	}
	copied := *e
	copied.DeriveFlags()
	return &copied, nil
}

func (m *memoryRepository) ListSeries(_ context.Context, recurrenceID string) ([]*Event, error) {
	var out []*Event
	for _, e := range m.events {
		if e.RecurrenceID != nil && *e.RecurrenceID == recurrenceID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memoryRepository) Create(_ context.Context, event *Event) error {
	copied := *event
	m.events[event.ID] = &copied
	return nil
}

func (m *memoryRepository) CreateSeries(_ context.Context, events []*Event) error {
	for _, e := range events {
		copied := *e
		m.events[e.ID] = &copied
	}
	return nil
}

func (m *memoryRepository) Update(_ context.Context, event *Event) error {
	stored, ok := m.events[event.ID]
	if !ok {
		return apperr.NotFound("event")
	}
	stored.Slugline = event.Slugline
	stored.Name = event.Name
	stored.Definition = event.Definition
	stored.LocationID = event.LocationID
	stored.Translations = event.Translations
	return nil
}

func (m *memoryRepository) UpdateSchedule(_ context.Context, id string, dates schedule.EventDates, toBeConfirmed bool) error {
	stored, ok := m.events[id]
	if !ok {
		return apperr.NotFound("event")
	}
	stored.Dates = dates
	stored.ToBeConfirmed = toBeConfirmed
	return nil
}

func (m *memoryRepository) UpdateState(_ context.Context, id string, state State) error {
	stored, ok := m.events[id]
	if !ok {
		return apperr.NotFound("event")
	}
	stored.State = state
	return nil
}

func (m *memoryRepository) ExpireEnded(_ context.Context, _ int) (int, error) {
	return 0, nil
}

func (m *memoryRepository) SoftDelete(_ context.Context, id string) error {
	if _, ok := m.events[id]; !ok {
		return apperr.NotFound("event")
	}
	delete(m.events, id)
	return nil
}

// memorySessions is an in-memory [SessionRepository].
type memorySessions struct {
	states map[string]schedule.EditorState
}

func newMemorySessions() *memorySessions {
	return &memorySessions{states: make(map[string]schedule.EditorState)}
}

func (m *memorySessions) Save(_ context.Context, eventID string, state schedule.EditorState) error {
	m.states[eventID] = state
	return nil
}

func (m *memorySessions) Find(_ context.Context, eventID string) (*schedule.EditorState, error) {
	state, ok := m.states[eventID]
	if !ok {
		return nil, apperr.NotFound("edit session")
	}
	return &state, nil
}

func (m *memorySessions) Delete(_ context.Context, eventID string) error {
	delete(m.states, eventID)
	return nil
}

// staticProfiles resolves every lookup to a single fixed profile.
type staticProfiles struct {
	profile *profile.Profile
}

func (s *staticProfiles) Resolve(_ context.Context, _ string) (*profile.Profile, error) {
	return s.profile, nil
}

func newTestService() (*Service, *memoryRepository, *memorySessions) {
	repo := newMemoryRepository()
	sessions := newMemorySessions()
	profiles := &staticProfiles{profile: &profile.Profile{
		ID:   "profile-1",
		Name: "Newsroom",
		Editor: profile.EditorSettings{
			DefaultDurationHours: 1,
			AllDayEnabled:        true,
		},
		Multilingual: multilingual.Config{
			Enabled:         true,
			Fields:          []string{"name", "definition"},
			Languages:       []string{"en", "fr"},
			DefaultLanguage: "en",
		},
	}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, sessions, profiles, logger), repo, sessions
}

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

// # Creation

/*
TestService_CreateEvent_Single verifies a plain event gets an ID, the
scheduled state, and derived flags.
*/
func TestService_CreateEvent_Single(t *testing.T) {
	service, repo, _ := newTestService()

	input := &Event{
		Slugline: "press-briefing",
		Name:     "Ministerial press briefing",
		Dates: schedule.EventDates{
			Start: pointer.To(date(2026, 9, 14, 10, 0)),
			End:   pointer.To(date(2026, 9, 14, 11, 0)),
			TZ:    "Europe/Paris",
		},
	}

	created, err := service.CreateEvent(context.Background(), input, "user-1")
	require.NoError(t, err)
	require.Len(t, created, 1)

	e := created[0]
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, StateScheduled, e.State)
	assert.False(t, e.ToBeConfirmed)
	assert.False(t, e.IsAllDay)
	assert.False(t, e.IsMultiDay)
	assert.Len(t, repo.events, 1)
}

/*
TestService_CreateEvent_NoStart verifies an event without a start date is
created as a to-be-confirmed draft.
*/
func TestService_CreateEvent_NoStart(t *testing.T) {
	service, _, _ := newTestService()

	created, err := service.CreateEvent(context.Background(), &Event{
		Slugline: "budget-reaction",
		Name:     "Budget reaction roundup",
	}, "user-1")
	require.NoError(t, err)
	require.Len(t, created, 1)

	assert.True(t, created[0].ToBeConfirmed)
	assert.Equal(t, StateDraft, created[0].State)
}

/*
TestService_CreateEvent_Series verifies a recurring rule materializes the
whole series with a shared recurrence ID and preserved duration.
*/
func TestService_CreateEvent_Series(t *testing.T) {
	service, repo, _ := newTestService()

	rule := schedule.NewRule().
		WithFrequency(schedule.FreqDaily).
		WithEndRepeatMode(schedule.EndModeCount).
		WithCount("3")

	input := &Event{
		Slugline: "daily-standup",
		Name:     "Desk standup",
		Dates: schedule.EventDates{
			Start:         pointer.To(date(2026, 9, 14, 9, 0)),
			End:           pointer.To(date(2026, 9, 14, 9, 30)),
			RecurringRule: &rule,
		},
	}

	created, err := service.CreateEvent(context.Background(), input, "user-1")
	require.NoError(t, err)
	require.Len(t, created, 3)
	assert.Len(t, repo.events, 3)

	first := created[0]
	require.NotNil(t, first.RecurrenceID)

	for i, occurrence := range created {
		require.NotNil(t, occurrence.RecurrenceID)
		assert.Equal(t, *first.RecurrenceID, *occurrence.RecurrenceID)

		wantStart := date(2026, 9, 14+i, 9, 0)
		require.NotNil(t, occurrence.Dates.Start)
		assert.Equal(t, wantStart, *occurrence.Dates.Start)

		// 30 minute duration carries over to every occurrence
		require.NotNil(t, occurrence.Dates.End)
		assert.Equal(t, 30*time.Minute, occurrence.Dates.End.Sub(*occurrence.Dates.Start))
	}
}

/*
TestService_CreateEvent_RejectsBadSlugline verifies slugline validation.
*/
func TestService_CreateEvent_RejectsBadSlugline(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.CreateEvent(context.Background(), &Event{
		Slugline: "Not A Slug!",
		Name:     "Something",
	}, "user-1")

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

// # Schedule Editing

/*
TestService_EditSession_Flow walks the open → change → commit path and
verifies the stored event only changes at commit time.
*/
func TestService_EditSession_Flow(t *testing.T) {
	service, repo, sessions := newTestService()

	created, err := service.CreateEvent(context.Background(), &Event{
		Slugline: "court-hearing",
		Name:     "Court hearing",
		Dates: schedule.EventDates{
			Start: pointer.To(date(2026, 10, 1, 14, 0)),
			End:   pointer.To(date(2026, 10, 1, 15, 0)),
		},
	}, "user-1")
	require.NoError(t, err)
	eventID := created[0].ID

	// 1. Open a session
	view, err := service.OpenEditSession(context.Background(), eventID)
	require.NoError(t, err)
	assert.False(t, view.ToBeConfirmed)

	// 2. Move the start date forward three days
	view, err = service.ApplyScheduleChange(context.Background(), eventID, schedule.Change{
		Op: schedule.OpStartDate,
		At: pointer.To(date(2026, 10, 4, 0, 0)),
	})
	require.NoError(t, err)
	require.NotNil(t, view.Dates.Start)
	assert.Equal(t, date(2026, 10, 4, 14, 0), *view.Dates.Start)
	assert.Equal(t, date(2026, 10, 4, 15, 0), *view.Dates.End)

	// 3. The stored event is untouched until commit
	stored, err := repo.FindByID(context.Background(), eventID)
	require.NoError(t, err)
	assert.Equal(t, date(2026, 10, 1, 14, 0), *stored.Dates.Start)

	// 4. Commit
	updated, err := service.CommitEditSession(context.Background(), eventID)
	require.NoError(t, err)
	assert.Equal(t, date(2026, 10, 4, 14, 0), *updated.Dates.Start)

	// 5. The session is gone
	_, err = sessions.Find(context.Background(), eventID)
	require.Error(t, err)
}

/*
TestService_EditSession_TerminalEvent verifies cancelled events reject
schedule editing.
*/
func TestService_EditSession_TerminalEvent(t *testing.T) {
	service, _, _ := newTestService()

	created, err := service.CreateEvent(context.Background(), &Event{
		Slugline: "cancelled-gig",
		Name:     "Cancelled gig",
		Dates: schedule.EventDates{
			Start: pointer.To(date(2026, 10, 1, 20, 0)),
		},
	}, "user-1")
	require.NoError(t, err)
	eventID := created[0].ID

	require.NoError(t, service.CancelEvent(context.Background(), eventID))

	_, err = service.OpenEditSession(context.Background(), eventID)
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)
}

/*
TestService_Postpone_OnlyScheduled verifies draft events cannot be postponed
while scheduled events can.
*/
func TestService_Postpone_OnlyScheduled(t *testing.T) {
	service, repo, _ := newTestService()

	created, err := service.CreateEvent(context.Background(), &Event{
		Slugline: "maybe-rally",
		Name:     "Possible rally",
	}, "user-1")
	require.NoError(t, err)
	draftID := created[0].ID

	err = service.PostponeEvent(context.Background(), draftID)
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)

	// Promote it and try again
	require.NoError(t, repo.UpdateState(context.Background(), draftID, StateScheduled))
	require.NoError(t, service.PostponeEvent(context.Background(), draftID))

	stored, err := repo.FindByID(context.Background(), draftID)
	require.NoError(t, err)
	assert.Equal(t, StatePostponed, stored.State)
}

// # Translations

/*
TestService_SetTranslation verifies the keyed upsert path and profile
enforcement.
*/
func TestService_SetTranslation(t *testing.T) {
	service, _, _ := newTestService()

	created, err := service.CreateEvent(context.Background(), &Event{
		Slugline: "summit",
		Name:     "Trade summit",
	}, "user-1")
	require.NoError(t, err)
	eventID := created[0].ID

	// 1. New language appends
	updated, err := service.SetTranslation(context.Background(), eventID,
		multilingual.Key{Field: "name", Language: "fr"}, "Sommet commercial")
	require.NoError(t, err)
	require.Len(t, updated.Translations, 1)
	assert.Equal(t, "Sommet commercial", updated.Translations[0].Value)

	// 2. Same key replaces in place
	updated, err = service.SetTranslation(context.Background(), eventID,
		multilingual.Key{Field: "name", Language: "fr"}, "Sommet du commerce")
	require.NoError(t, err)
	require.Len(t, updated.Translations, 1)
	assert.Equal(t, "Sommet du commerce", updated.Translations[0].Value)

	// 3. Disabled field is rejected
	_, err = service.SetTranslation(context.Background(), eventID,
		multilingual.Key{Field: "slugline", Language: "fr"}, "x")
	require.Error(t, err)
	assert.Equal(t, "UNPROCESSABLE", apperr.As(err).Code)
}
