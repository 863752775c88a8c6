// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package location

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/newsdeskhq/planning-api/internal/platform/request"
	"github.com/newsdeskhq/planning-api/internal/platform/respond"
	"github.com/newsdeskhq/planning-api/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for venue operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new location [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with venue endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listLocations)
	router.Get("/{id}", handler.getLocation)
	router.Post("/", handler.createLocation)
	router.Patch("/{id}", handler.updateLocation)
	router.Delete("/{id}", handler.deleteLocation)

	return router
}

// # Venue Endpoints

/*
GET /api/v1/locations.

Description: Retrieves a paginated list of venues.

Request:
  - q: string (Matches name and city)
  - country: string
  - limit, page: int

Response:
  - 200: []Location: Paginated list
*/
func (handler *Handler) listLocations(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	queryParams := request.URL.Query()

	filter := Filter{
		Query:   queryParams.Get("q"),
		Country: queryParams.Get("country"),
	}

	locations, total, err := handler.service.ListLocations(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, locations, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/locations/{id}.

Response:
  - 200: Location
  - 404: ErrNotFound: Location not found
*/
func (handler *Handler) getLocation(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	result, err := handler.service.GetLocation(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
POST /api/v1/locations.

Request (Body):
  - Location JSON object

Response:
  - 201: Location: Created object
  - 400: ErrInvalidJSON/Validation: Invalid input data
*/
func (handler *Handler) createLocation(writer http.ResponseWriter, request *http.Request) {
	var input Location

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateLocation(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, input)
}

/*
PATCH /api/v1/locations/{id}.

Response:
  - 200: Location: Updated object
  - 404: ErrNotFound: Location not found
*/
func (handler *Handler) updateLocation(writer http.ResponseWriter, request *http.Request) {
	var input Location

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	input.ID = requestutil.ID(request, "id")

	if err := handler.service.UpdateLocation(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, input)
}

/*
DELETE /api/v1/locations/{id}.

Response:
  - 204: Deleted
  - 404: ErrNotFound: Location not found
*/
func (handler *Handler) deleteLocation(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteLocation(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
