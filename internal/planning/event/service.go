// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package event

import (
	"context"
	"log/slog"
	"time"

	"github.com/newsdeskhq/planning-api/internal/core/profile"
	"github.com/newsdeskhq/planning-api/internal/multilingual"
	"github.com/newsdeskhq/planning-api/internal/platform/apperr"
	"github.com/newsdeskhq/planning-api/internal/platform/constants"
	"github.com/newsdeskhq/planning-api/internal/platform/validate"
	"github.com/newsdeskhq/planning-api/internal/schedule"
	"github.com/newsdeskhq/planning-api/pkg/uuidv7"
)

// # Service Dependencies

// ProfileSource resolves content profiles for events. Satisfied by the
// profile service; an interface here keeps the event tests free of the
// profile store.
type ProfileSource interface {
	Resolve(context context.Context, id string) (*profile.Profile, error)
}

// # Service Layer

// Service orchestrates business rules for planned events.
type Service struct {
	repo     Repository
	sessions SessionRepository
	profiles ProfileSource
	logger   *slog.Logger
}

// NewService constructs a new event [Service].
func NewService(repo Repository, sessions SessionRepository, profiles ProfileSource, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		sessions: sessions,
		profiles: profiles,
		logger:   logger,
	}
}

// # Event Management

/*
ListEvents retrieves a paginated, filtered slice of the planning calendar.

Parameters:
  - context: context.Context
  - filter: Filter
  - limit, offset: int

Returns:
  - []*Event: List of events
  - int: Total matching count
  - error: Retrieval errors
*/
func (service *Service) ListEvents(context context.Context, filter Filter, limit, offset int) ([]*Event, int, error) {
	return service.repo.List(context, filter, limit, offset)
}

/*
GetEvent retrieves an event by UUID.
*/
func (service *Service) GetEvent(context context.Context, id string) (*Event, error) {
	return service.repo.FindByID(context, id)
}

/*
GetSeries returns every occurrence of a recurring series.
*/
func (service *Service) GetSeries(context context.Context, recurrenceID string) ([]*Event, error) {
	return service.repo.ListSeries(context, recurrenceID)
}

/*
CreateEvent registers a new planned event.

Description: When the event carries a recurring rule and a start date, the
series is materialized immediately: each occurrence becomes its own event
row sharing a recurrence ID, capped at MaxRecurringOccurrences. An event
without a start date is created with the to-be-confirmed sentinel raised.

Parameters:
  - context: context.Context
  - event: *Event (ID, recurrence ID, and state are assigned here)
  - creatorID: string

Returns:
  - []*Event: The created events (one entry unless a series materialized)
  - error: Validation or persistence failures
*/
func (service *Service) CreateEvent(context context.Context, event *Event, creatorID string) ([]*Event, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldSlugline, event.Slugline).MaxLen(FieldSlugline, event.Slugline, 64).
		Slug(FieldSlugline, event.Slugline).
		Required(FieldName, event.Name).MaxLen(FieldName, event.Name, 200)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	resolvedProfile, err := service.profiles.Resolve(context, event.ProfileID)
	if err != nil {
		return nil, err
	}
	event.ProfileID = resolvedProfile.ID

	if err := service.reconcileTranslations(event, resolvedProfile); err != nil {
		return nil, err
	}

	event.ID = uuidv7.New()
	event.CreatedBy = creatorID
	event.ToBeConfirmed = event.Dates.Start == nil
	if event.State == "" || !event.State.Valid() {
		event.State = StateDraft
	}
	if event.Dates.Start != nil && event.State == StateDraft {
		event.State = StateScheduled
	}

	// Single event: no rule, or a rule with nothing to expand against.
	if event.Dates.RecurringRule == nil || event.Dates.Start == nil {
		if err := service.repo.Create(context, event); err != nil {
			return nil, err
		}
		event.DeriveFlags()

		service.logger.Info("event_created",
			slog.String("event_id", event.ID),
			slog.String("slugline", event.Slugline),
		)
		return []*Event{event}, nil
	}

	// Recurring event: materialize the series up front so each occurrence
	// can be covered, assigned, and rescheduled independently.
	starts, err := schedule.Expand(event.Dates, constants.MaxRecurringOccurrences)
	if err != nil {
		return nil, apperr.Unprocessable("The recurring rule could not be expanded")
	}

	recurrenceID := uuidv7.New()
	event.RecurrenceID = &recurrenceID

	var duration *time.Duration
	if event.Dates.End != nil {
		d := event.Dates.End.Sub(*event.Dates.Start)
		duration = &d
	}

	series := make([]*Event, len(starts))
	for i, start := range starts {
		occurrence := *event
		if i > 0 {
			occurrence.ID = uuidv7.New()
		}

		occStart := start
		occurrence.Dates.Start = &occStart
		if duration != nil {
			occEnd := start.Add(*duration)
			occurrence.Dates.End = &occEnd
		}

		series[i] = &occurrence
	}

	if err := service.repo.CreateSeries(context, series); err != nil {
		return nil, err
	}
	for _, occurrence := range series {
		occurrence.DeriveFlags()
	}

	service.logger.Info("event_series_created",
		slog.String("recurrence_id", recurrenceID),
		slog.Int("occurrences", len(series)),
	)

	return series, nil
}

/*
UpdateEvent modifies an event's descriptive fields and translations.

Parameters:
  - context: context.Context
  - event: *Event

Returns:
  - error: Validation or persistence failures
*/
func (service *Service) UpdateEvent(context context.Context, event *Event) error {
	existing, err := service.repo.FindByID(context, event.ID)
	if err != nil {
		return err
	}
	if existing.State.terminal() {
		return apperr.Conflict("Cancelled and expired events cannot be edited")
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldSlugline, event.Slugline).MaxLen(FieldSlugline, event.Slugline, 64).
		Slug(FieldSlugline, event.Slugline).
		Required(FieldName, event.Name).MaxLen(FieldName, event.Name, 200)
	if err := validator.Err(); err != nil {
		return err
	}

	resolvedProfile, err := service.profiles.Resolve(context, existing.ProfileID)
	if err != nil {
		return err
	}
	if err := service.reconcileTranslations(event, resolvedProfile); err != nil {
		return err
	}

	if err := service.repo.Update(context, event); err != nil {
		return err
	}

	service.logger.Info("event_updated", slog.String("event_id", event.ID))
	return nil
}

/*
SetTranslation upserts a single translated value on an event.

Description: The key addresses one field in one language. Existing entries
are replaced in place; new languages append.

Parameters:
  - context: context.Context
  - eventID: string
  - key: multilingual.Key
  - value: string

Returns:
  - *Event: The updated event
  - error: Validation or persistence failures
*/
func (service *Service) SetTranslation(context context.Context, eventID string, key multilingual.Key, value string) (*Event, error) {
	event, err := service.repo.FindByID(context, eventID)
	if err != nil {
		return nil, err
	}

	resolvedProfile, err := service.profiles.Resolve(context, event.ProfileID)
	if err != nil {
		return nil, err
	}

	cfg := resolvedProfile.Multilingual
	if !cfg.Enabled || !cfg.FieldEnabled(key.Field) {
		return nil, apperr.Unprocessable("Field is not multilingual under this profile")
	}

	event.Translations = multilingual.Apply(event.Translations, key, value)

	if err := service.repo.Update(context, event); err != nil {
		return nil, err
	}
	return event, nil
}

// # Lifecycle Transitions

/*
CancelEvent marks a non-terminal event as cancelled and discards any
in-flight edit session.
*/
func (service *Service) CancelEvent(context context.Context, id string) error {
	return service.transition(context, id, StateCancelled)
}

/*
PostponeEvent marks a scheduled event as postponed. The dates are retained
so the event can be rescheduled through the editor later.
*/
func (service *Service) PostponeEvent(context context.Context, id string) error {
	return service.transition(context, id, StatePostponed)
}

// transition applies a lifecycle change with the shared guards.
func (service *Service) transition(context context.Context, id string, target State) error {
	existing, err := service.repo.FindByID(context, id)
	if err != nil {
		return err
	}
	if existing.State.terminal() {
		return apperr.Conflict("Event is already in a terminal state")
	}
	if target == StatePostponed && existing.State != StateScheduled {
		return apperr.Conflict("Only scheduled events can be postponed")
	}

	if err := service.repo.UpdateState(context, id, target); err != nil {
		return err
	}

	// A lifecycle change invalidates any pending schedule edits.
	_ = service.sessions.Delete(context, id)

	service.logger.Info("event_state_changed",
		slog.String("event_id", id),
		slog.String("state", string(target)),
	)
	return nil
}

/*
DeleteEvent soft-deletes an event and discards its edit session.
*/
func (service *Service) DeleteEvent(context context.Context, id string) error {
	if err := service.repo.SoftDelete(context, id); err != nil {
		return err
	}
	_ = service.sessions.Delete(context, id)

	service.logger.Info("event_deleted", slog.String("event_id", id))
	return nil
}

// # Schedule Editing

// SchedulePreview is the editor feedback returned after each change: the
// working schedule plus the flags derived from it.
type SchedulePreview struct {
	Dates         schedule.EventDates `json:"dates"`
	ToBeConfirmed bool                `json:"to_be_confirmed"`
	IsAllDay      bool                `json:"is_all_day"`
	IsMultiDay    bool                `json:"is_multi_day"`
}

func preview(e *schedule.Editor) SchedulePreview {
	p := SchedulePreview{
		Dates:         e.Dates(),
		ToBeConfirmed: e.ToBeConfirmed(),
	}
	if p.Dates.Start != nil {
		end := p.Dates.Start
		if p.Dates.End != nil {
			end = p.Dates.End
		}
		p.IsAllDay = p.Dates.AllDay || schedule.IsAllDay(*p.Dates.Start, *end, false)
		p.IsMultiDay = schedule.IsMultiDay(*p.Dates.Start, *end)
	}
	return p
}

/*
OpenEditSession starts (or restarts) a schedule editing session for an event.

Description: The editor is seeded from the stored schedule and persisted to
Redis. Opening over an existing session replaces it.

Returns:
  - SchedulePreview: The initial editor view
  - error: Conflict when the event is terminal
*/
func (service *Service) OpenEditSession(context context.Context, eventID string) (SchedulePreview, error) {
	event, err := service.repo.FindByID(context, eventID)
	if err != nil {
		return SchedulePreview{}, err
	}
	if event.State.terminal() {
		return SchedulePreview{}, apperr.Conflict("Cancelled and expired events cannot be rescheduled")
	}

	resolvedProfile, err := service.profiles.Resolve(context, event.ProfileID)
	if err != nil {
		return SchedulePreview{}, err
	}

	editor := schedule.NewEditor(event.Dates, event.ToBeConfirmed, resolvedProfile.EditorConfig())
	if err := service.sessions.Save(context, eventID, editor.State()); err != nil {
		return SchedulePreview{}, err
	}

	return preview(editor), nil
}

/*
ApplyScheduleChange applies one tagged change to an event's edit session.

Description: The session is resumed from Redis, the change dispatched to the
editor, and the new snapshot persisted with a refreshed TTL. When no session
exists (expired or never opened), one is seeded from the stored event first.

Parameters:
  - context: context.Context
  - eventID: string
  - change: schedule.Change

Returns:
  - SchedulePreview: The editor view after the change
  - error: ErrUnknownOp wrapped as a validation error, persistence failures
*/
func (service *Service) ApplyScheduleChange(context context.Context, eventID string, change schedule.Change) (SchedulePreview, error) {
	event, err := service.repo.FindByID(context, eventID)
	if err != nil {
		return SchedulePreview{}, err
	}
	if event.State.terminal() {
		return SchedulePreview{}, apperr.Conflict("Cancelled and expired events cannot be rescheduled")
	}

	resolvedProfile, err := service.profiles.Resolve(context, event.ProfileID)
	if err != nil {
		return SchedulePreview{}, err
	}
	cfg := resolvedProfile.EditorConfig()

	var editor *schedule.Editor
	state, err := service.sessions.Find(context, eventID)
	switch appError := apperr.As(err); {
	case err == nil:
		editor = schedule.ResumeEditor(*state, cfg)
	case appError != nil && appError.Code == "NOT_FOUND":
		editor = schedule.NewEditor(event.Dates, event.ToBeConfirmed, cfg)
	default:
		return SchedulePreview{}, err
	}

	if _, err := editor.Apply(change); err != nil {
		return SchedulePreview{}, apperr.ValidationError("Unknown schedule operation")
	}

	if err := service.sessions.Save(context, eventID, editor.State()); err != nil {
		return SchedulePreview{}, err
	}

	return preview(editor), nil
}

/*
CommitEditSession persists the edit session's schedule onto the event and
discards the session.

Description: A draft event gains the scheduled state once it has a concrete
start. Committing without an open session is a conflict.

Returns:
  - *Event: The updated event
  - error: NotFound when no session exists
*/
func (service *Service) CommitEditSession(context context.Context, eventID string) (*Event, error) {
	state, err := service.sessions.Find(context, eventID)
	if err != nil {
		return nil, err
	}

	event, err := service.repo.FindByID(context, eventID)
	if err != nil {
		return nil, err
	}

	if err := service.repo.UpdateSchedule(context, eventID, state.Dates, state.ToBeConfirmed); err != nil {
		return nil, err
	}

	if event.State == StateDraft && state.Dates.Start != nil && !state.ToBeConfirmed {
		if err := service.repo.UpdateState(context, eventID, StateScheduled); err != nil {
			return nil, err
		}
	}
	if event.State == StatePostponed && state.Dates.Start != nil && !state.ToBeConfirmed {
		// Rescheduling a postponed event puts it back on the calendar.
		if err := service.repo.UpdateState(context, eventID, StateScheduled); err != nil {
			return nil, err
		}
	}

	_ = service.sessions.Delete(context, eventID)

	service.logger.Info("event_schedule_committed", slog.String("event_id", eventID))

	return service.repo.FindByID(context, eventID)
}

/*
DiscardEditSession throws away any pending schedule edits for an event.
*/
func (service *Service) DiscardEditSession(context context.Context, eventID string) error {
	return service.sessions.Delete(context, eventID)
}

// # Translation Reconciliation

// reconcileTranslations validates and normalizes an event's translation
// entries against its profile configuration. Entries for disabled fields or
// inactive languages are rejected rather than silently dropped.
func (service *Service) reconcileTranslations(event *Event, resolvedProfile *profile.Profile) error {
	if len(event.Translations) == 0 {
		return nil
	}

	cfg := resolvedProfile.Multilingual
	if !cfg.Enabled {
		return apperr.Unprocessable("Profile does not enable multilingual fields")
	}

	active := make(map[string]bool, len(cfg.Languages))
	for _, language := range cfg.ActiveLanguages() {
		active[language] = true
	}

	for _, entry := range event.Translations {
		if !cfg.FieldEnabled(entry.Field) {
			return apperr.Unprocessable("Field '" + entry.Field + "' is not multilingual under this profile")
		}
		if !active[entry.Language] {
			return apperr.Unprocessable("Language '" + entry.Language + "' is not active under this profile")
		}
	}

	// Deduplicate keyed entries, last value wins.
	event.Translations = multilingual.FromEntries(event.Translations).Entries()

	return nil
}
