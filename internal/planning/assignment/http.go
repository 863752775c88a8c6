// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package assignment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/newsdeskhq/planning-api/internal/platform/apperr"
	requestutil "github.com/newsdeskhq/planning-api/internal/platform/request"
	"github.com/newsdeskhq/planning-api/internal/platform/respond"
	"github.com/newsdeskhq/planning-api/pkg/convert"
	"github.com/newsdeskhq/planning-api/pkg/pagination"
	"github.com/newsdeskhq/planning-api/pkg/query"
	"github.com/newsdeskhq/planning-api/pkg/slice"
)

// # Handler Implementation

// Handler implements the HTTP layer for assignments.
type Handler struct {
	service *Service
}

// NewHandler constructs a new assignment [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with assignment endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listAssignments)
	router.Get("/{id}", handler.getAssignment)
	router.Post("/", handler.createAssignment)
	router.Patch("/{id}", handler.reassign)

	// ## Lifecycle
	router.Post("/{id}/start", handler.startAssignment)
	router.Post("/{id}/complete", handler.completeAssignment)
	router.Post("/{id}/cancel", handler.cancelAssignment)

	return router
}

// # Assignment Endpoints

/*
GET /api/v1/assignments.

Description: Retrieves a paginated slice of assignments, most urgent first.

Request:
  - assignee: user UUID (a journalist's work queue)
  - coverage: coverage UUID
  - state: comma-separated lifecycle states
  - priority: int (1-5)
  - limit, page: int

Response:
  - 200: []Assignment: Paginated list
*/
func (handler *Handler) listAssignments(writer http.ResponseWriter, request *http.Request) {
	filter, err := filterFromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	assignments, total, err := handler.service.ListAssignments(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, assignments, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/assignments/{id}.

Response:
  - 200: Assignment
  - 404: ErrNotFound: Assignment not found
*/
func (handler *Handler) getAssignment(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	result, err := handler.service.GetAssignment(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
POST /api/v1/assignments.

Description: Hands a coverage to a journalist.

Request (Body):
  - coverage_id, assignee_id: string
  - priority: int (optional, defaults to 3)
  - note: string (optional)

Response:
  - 201: Assignment: The created assignment
  - 409: Conflict: Coverage terminal or already assigned
*/
func (handler *Handler) createAssignment(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Assignment
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateAssignment(request.Context(), &input, userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

/*
PATCH /api/v1/assignments/{id}.

Description: Moves an assignment to another journalist or adjusts its
priority and note.

Response:
  - 200: Assignment: Updated object
  - 409: Conflict: Assignment is terminal
*/
func (handler *Handler) reassign(writer http.ResponseWriter, request *http.Request) {
	var input Assignment
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	input.ID = requestutil.ID(request, "id")

	if err := handler.service.Reassign(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, input)
}

// # Lifecycle Endpoints

/*
POST /api/v1/assignments/{id}/start.

Response:
  - 204: Started
  - 409: Conflict: Only assigned work can be started
*/
func (handler *Handler) startAssignment(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.StartAssignment(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
POST /api/v1/assignments/{id}/complete.

Response:
  - 204: Completed (coverage completed with it)
  - 409: Conflict: Only in-progress work can be completed
*/
func (handler *Handler) completeAssignment(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.CompleteAssignment(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
POST /api/v1/assignments/{id}/cancel.

Response:
  - 204: Cancelled (coverage returned to the planned pool)
  - 409: Conflict: Assignment already terminal
*/
func (handler *Handler) cancelAssignment(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.CancelAssignment(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Request Parsing

// filterFromRequest builds an assignment filter from query parameters.
func filterFromRequest(request *http.Request) (Filter, error) {
	queryParams := request.URL.Query()

	states := slice.Map(query.StringSlice(queryParams.Get("state")), func(s string) State {
		return State(s)
	})
	for _, s := range states {
		if !s.Valid() {
			return Filter{}, apperr.ValidationError("Unknown state '" + string(s) + "'")
		}
	}

	return Filter{
		AssigneeID: queryParams.Get("assignee"),
		CoverageID: queryParams.Get("coverage"),
		States:     states,
		Priority:   convert.ToInt(queryParams.Get("priority")),
	}, nil
}
