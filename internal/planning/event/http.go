// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

/*
Package event provides the HTTP interface for the planning calendar.

# Routing Strategy

  - Authenticated: All event endpoints require a signed-in planner.
  - Editing: Schedule changes go through the /schedule sub-resource, which
    maps onto the Redis-backed edit session.
  - Feeds: The ICS export is a read-only calendar projection.
*/
package event

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/newsdeskhq/planning-api/internal/multilingual"
	"github.com/newsdeskhq/planning-api/internal/platform/apperr"
	requestutil "github.com/newsdeskhq/planning-api/internal/platform/request"
	"github.com/newsdeskhq/planning-api/internal/platform/respond"
	"github.com/newsdeskhq/planning-api/internal/schedule"
	"github.com/newsdeskhq/planning-api/pkg/pagination"
	"github.com/newsdeskhq/planning-api/pkg/query"
	"github.com/newsdeskhq/planning-api/pkg/slice"
)

// # Handler Implementation

// Handler implements the HTTP layer for planned events.
type Handler struct {
	service *Service
}

// NewHandler constructs a new event [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with calendar endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Calendar Reads
	router.Get("/", handler.listEvents)
	router.Get("/export.ics", handler.exportICS)
	router.Get("/series/{recurrenceID}", handler.getSeries)
	router.Get("/{id}", handler.getEvent)

	// ## Event Writes
	router.Post("/", handler.createEvent)
	router.Patch("/{id}", handler.updateEvent)
	router.Put("/{id}/translations", handler.setTranslation)
	router.Delete("/{id}", handler.deleteEvent)

	// ## Lifecycle
	router.Post("/{id}/cancel", handler.cancelEvent)
	router.Post("/{id}/postpone", handler.postponeEvent)

	// ## Schedule Editing Session
	router.Route("/{id}/schedule", func(session chi.Router) {
		session.Post("/", handler.openEditSession)
		session.Patch("/", handler.applyScheduleChange)
		session.Post("/commit", handler.commitEditSession)
		session.Delete("/", handler.discardEditSession)
	})

	return router
}

// # Calendar Endpoints

/*
GET /api/v1/events.

Description: Retrieves a paginated slice of the planning calendar.

Request:
  - from, to: date or RFC 3339 timestamp (window bounds)
  - state: comma-separated lifecycle states
  - profile: profile UUID
  - q: string (Matches slugline and name)
  - limit, page: int

Response:
  - 200: []Event: Paginated list with derived flags
*/
func (handler *Handler) listEvents(writer http.ResponseWriter, request *http.Request) {
	filter, err := filterFromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	events, total, err := handler.service.ListEvents(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, events, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/events/export.ics.

Description: Serializes the filtered calendar as an iCalendar feed.

Response:
  - 200: text/calendar payload
*/
func (handler *Handler) exportICS(writer http.ResponseWriter, request *http.Request) {
	filter, err := filterFromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Feeds are bounded by the series cap rather than page size.
	events, _, err := handler.service.ListEvents(request.Context(), filter, 1000, 0)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	writer.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	writer.Header().Set("Content-Disposition", `attachment; filename="planning.ics"`)
	writer.WriteHeader(http.StatusOK)
	_, _ = writer.Write([]byte(ExportICS(events)))
}

/*
GET /api/v1/events/{id}.

Response:
  - 200: Event
  - 404: ErrNotFound: Event not found
*/
func (handler *Handler) getEvent(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	result, err := handler.service.GetEvent(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
GET /api/v1/events/series/{recurrenceID}.

Description: Retrieves every occurrence of a recurring series.

Response:
  - 200: []Event
*/
func (handler *Handler) getSeries(writer http.ResponseWriter, request *http.Request) {
	recurrenceID := requestutil.Param(request, "recurrenceID")

	events, err := handler.service.GetSeries(request.Context(), recurrenceID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, events)
}

// # Event Write Endpoints

/*
POST /api/v1/events.

Description: Creates a planned event. A recurring rule materializes the
whole series in one call.

Request (Body):
  - Event JSON object

Response:
  - 201: []Event: The created events (one entry unless a series materialized)
  - 400: ErrInvalidJSON/Validation: Invalid input data
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) createEvent(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Event
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateEvent(request.Context(), &input, userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

/*
PATCH /api/v1/events/{id}.

Description: Updates descriptive fields (slugline, name, definition,
location, translations). Schedule changes go through /schedule.

Response:
  - 200: Event: Updated object
  - 409: Conflict: Event is terminal
*/
func (handler *Handler) updateEvent(writer http.ResponseWriter, request *http.Request) {
	var input Event
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	input.ID = requestutil.ID(request, "id")

	if err := handler.service.UpdateEvent(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, input)
}

// translationInput is the body of the translation upsert endpoint.
type translationInput struct {
	Key   string `json:"key"` // "field.language", e.g. "name.fr"
	Value string `json:"value"`
}

/*
PUT /api/v1/events/{id}/translations.

Description: Upserts a single translated value addressed by a
"field.language" key.

Request (Body):
  - key: string ("name.fr")
  - value: string

Response:
  - 200: Event: Updated event
  - 400: Validation: Malformed key
  - 422: Unprocessable: Field or language not enabled by the profile
*/
func (handler *Handler) setTranslation(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input translationInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	key, ok := multilingual.SplitKey(input.Key)
	if !ok {
		respond.Error(writer, request, apperr.ValidationError("Translation key must be 'field.language'"))
		return
	}

	updated, err := handler.service.SetTranslation(request.Context(), id, key, input.Value)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

/*
DELETE /api/v1/events/{id}.

Response:
  - 204: Deleted
*/
func (handler *Handler) deleteEvent(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteEvent(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Lifecycle Endpoints

/*
POST /api/v1/events/{id}/cancel.

Response:
  - 204: Cancelled
  - 409: Conflict: Event already terminal
*/
func (handler *Handler) cancelEvent(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.CancelEvent(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
POST /api/v1/events/{id}/postpone.

Response:
  - 204: Postponed
  - 409: Conflict: Only scheduled events can be postponed
*/
func (handler *Handler) postponeEvent(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.PostponeEvent(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Schedule Editing Endpoints

/*
POST /api/v1/events/{id}/schedule.

Description: Opens a schedule editing session seeded from the stored event.

Response:
  - 200: SchedulePreview
  - 409: Conflict: Event is terminal
*/
func (handler *Handler) openEditSession(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	result, err := handler.service.OpenEditSession(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
PATCH /api/v1/events/{id}/schedule.

Description: Applies one tagged change to the edit session and returns the
reconciled working schedule.

Request (Body):
  - schedule.Change JSON object ({"op": "start_date", "at": "..."})

Response:
  - 200: SchedulePreview
  - 400: Validation: Unknown operation
*/
func (handler *Handler) applyScheduleChange(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var change schedule.Change
	if err := requestutil.DecodeJSON(request, &change); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.ApplyScheduleChange(request.Context(), id, change)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
POST /api/v1/events/{id}/schedule/commit.

Description: Persists the session's schedule onto the event and discards
the session.

Response:
  - 200: Event: Updated event
  - 404: ErrNotFound: No open session
*/
func (handler *Handler) commitEditSession(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	result, err := handler.service.CommitEditSession(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
DELETE /api/v1/events/{id}/schedule.

Response:
  - 204: Session discarded
*/
func (handler *Handler) discardEditSession(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DiscardEditSession(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Request Parsing

// filterFromRequest builds a calendar filter from query parameters.
func filterFromRequest(request *http.Request) (Filter, error) {
	queryParams := request.URL.Query()

	from, err := requestutil.QueryDate(request, "from")
	if err != nil {
		return Filter{}, err
	}
	to, err := requestutil.QueryDate(request, "to")
	if err != nil {
		return Filter{}, err
	}

	states := slice.Map(query.StringSlice(queryParams.Get("state")), func(s string) State {
		return State(s)
	})
	for _, s := range states {
		if !s.Valid() {
			return Filter{}, apperr.ValidationError("Unknown state '" + string(s) + "'")
		}
	}

	return Filter{
		From:         from,
		To:           to,
		States:       states,
		ProfileID:    queryParams.Get("profile"),
		RecurrenceID: queryParams.Get("recurrence"),
		Query:        queryParams.Get("q"),
	}, nil
}
