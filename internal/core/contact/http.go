// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/newsdeskhq/planning-api/internal/platform/request"
	"github.com/newsdeskhq/planning-api/internal/platform/respond"
	"github.com/newsdeskhq/planning-api/pkg/convert"
	"github.com/newsdeskhq/planning-api/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for the contact directory.
type Handler struct {
	service *Service
}

// NewHandler constructs a new contact [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with directory endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listContacts)
	router.Get("/{id}", handler.getContact)
	router.Post("/", handler.createContact)
	router.Patch("/{id}", handler.updateContact)
	router.Delete("/{id}", handler.deleteContact)

	return router
}

// # Directory Endpoints

/*
GET /api/v1/contacts.

Description: Retrieves a paginated slice of the media contact directory.

Request:
  - q: string (Matches name and organisation)
  - public: bool (Shared-view contacts only)
  - limit, page: int

Response:
  - 200: []Contact: Paginated list
*/
func (handler *Handler) listContacts(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	queryParams := request.URL.Query()

	filter := Filter{
		Query:      queryParams.Get("q"),
		PublicOnly: convert.ToBool(queryParams.Get("public")),
	}

	contacts, total, err := handler.service.ListContacts(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, contacts, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/contacts/{id}.

Response:
  - 200: Contact
  - 404: ErrNotFound: Contact not found
*/
func (handler *Handler) getContact(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	result, err := handler.service.GetContact(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
POST /api/v1/contacts.

Request (Body):
  - Contact JSON object

Response:
  - 201: Contact: Created object
  - 400: ErrInvalidJSON/Validation: Invalid input data
*/
func (handler *Handler) createContact(writer http.ResponseWriter, request *http.Request) {
	var input Contact

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateContact(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, input)
}

/*
PATCH /api/v1/contacts/{id}.

Response:
  - 200: Contact: Updated object
  - 404: ErrNotFound: Contact not found
*/
func (handler *Handler) updateContact(writer http.ResponseWriter, request *http.Request) {
	var input Contact

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	input.ID = requestutil.ID(request, "id")

	if err := handler.service.UpdateContact(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, input)
}

/*
DELETE /api/v1/contacts/{id}.

Response:
  - 204: Deleted
  - 404: ErrNotFound: Contact not found
*/
func (handler *Handler) deleteContact(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteContact(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
