// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package item

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

// Handler implements the HTTP layer for planning items.
type Handler struct {
	service *Service
}

// NewHandler constructs a new item [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with planning item endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Item Reads
	router.Get("/", handler.listItems)
	router.Get("/{id}", handler.getItem)

	// ## Item Writes
	router.Post("/", handler.createItem)
	router.Patch("/{id}", handler.updateItem)
	router.Delete("/{id}", handler.deleteItem)
	router.Post("/{id}/cancel", handler.cancelItem)

	// ## Coverages
	router.Post("/{id}/coverages", handler.addCoverage)
	router.Patch("/{id}/coverages/{coverageID}", handler.updateCoverage)

	return router
}

// # Item Endpoints

/*
GET /api/v1/planning.

Description: Retrieves a paginated slice of planning items.

Request:
  - event: event UUID
  - profile: profile UUID
  - state: comma-separated lifecycle states
  - urgency: int (1-5)
  - q: string (Matches slugline and description)
  - limit, page: int

Response:
  - 200: []Item: Paginated list with coverages hydrated
*/
func (handler *Handler) listItems(writer http.ResponseWriter, request *http.Request) {
	filter, err := filterFromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	items, total, err := handler.service.ListItems(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, items, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/planning/{id}.

Response:
  - 200: Item
  - 404: ErrNotFound: Item not found
*/
func (handler *Handler) getItem(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	result, err := handler.service.GetItem(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
POST /api/v1/planning.

Description: Creates a planning item with its initial coverages.

Request (Body):
  - Item JSON object

Response:
  - 201: Item: The created item
  - 400: ErrInvalidJSON/Validation: Invalid input data
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) createItem(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Item
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateItem(request.Context(), &input, userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

/*
PATCH /api/v1/planning/{id}.

Description: Updates descriptive fields (slugline, description, urgency,
translations). Coverages are edited through their own endpoints.

Response:
  - 200: Item: Updated object
  - 409: Conflict: Item is terminal
*/
func (handler *Handler) updateItem(writer http.ResponseWriter, request *http.Request) {
	var input Item
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	input.ID = requestutil.ID(request, "id")

	if err := handler.service.UpdateItem(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, input)
}

/*
DELETE /api/v1/planning/{id}.

Response:
  - 204: Deleted
*/
func (handler *Handler) deleteItem(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteItem(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
POST /api/v1/planning/{id}/cancel.

Response:
  - 204: Cancelled (open coverages cancelled with it)
  - 409: Conflict: Item already terminal
*/
func (handler *Handler) cancelItem(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.CancelItem(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Coverage Endpoints

/*
POST /api/v1/planning/{id}/coverages.

Description: Attaches a new coverage to an item.

Request (Body):
  - Coverage JSON object (content_type, slugline, note, scheduled_at)

Response:
  - 201: Coverage: The created coverage
  - 409: Conflict: Item is terminal
*/
func (handler *Handler) addCoverage(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input Coverage
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.AddCoverage(request.Context(), id, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

/*
PATCH /api/v1/planning/{id}/coverages/{coverageID}.

Description: Updates a coverage's slugline, note, deadline, and status.

Response:
  - 200: Coverage: Updated object
  - 409: Conflict: Coverage is completed or cancelled
*/
func (handler *Handler) updateCoverage(writer http.ResponseWriter, request *http.Request) {
	var input Coverage
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	input.ID = requestutil.ID(request, "coverageID")

	if err := handler.service.UpdateCoverage(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, input)
}

// # Request Parsing

// filterFromRequest builds an item filter from query parameters.
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
		EventID:   queryParams.Get("event"),
		ProfileID: queryParams.Get("profile"),
		States:    states,
		Urgency:   convert.ToInt(queryParams.Get("urgency")),
		Query:     queryParams.Get("q"),
	}, nil
}
