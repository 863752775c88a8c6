// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

/*
Package profile provides the HTTP interface for content profile management.

# Routing Strategy

  - Authenticated: Listing and detail views (GET /profiles).
  - Restricted: Create, update, and delete require the editor role.
*/
package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/newsdeskhq/planning-api/internal/platform/middleware"
	requestutil "github.com/newsdeskhq/planning-api/internal/platform/request"
	"github.com/newsdeskhq/planning-api/internal/platform/respond"
	"github.com/newsdeskhq/planning-api/internal/platform/sec"
)

// # Handler Implementation

// Handler implements the HTTP layer for content profile operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new profile [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with profile endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listProfiles)
	router.Get("/{id}", handler.getProfile)

	// ## Administrative
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleEditor))
		r.Post("/", handler.createProfile)
		r.Patch("/{id}", handler.updateProfile)
		r.Delete("/{id}", handler.deleteProfile)
	})

	return router
}

// # Profile Endpoints

/*
GET /api/v1/profiles.

Description: Retrieves all active content profiles, default first.

Response:
  - 200: []Profile
*/
func (handler *Handler) listProfiles(writer http.ResponseWriter, request *http.Request) {
	profiles, err := handler.service.ListProfiles(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profiles)
}

/*
GET /api/v1/profiles/{id}.

Response:
  - 200: Profile
  - 404: ErrNotFound: Profile not found
*/
func (handler *Handler) getProfile(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	result, err := handler.service.GetProfile(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
POST /api/v1/profiles.

Description: Registers a new content profile. Slugs are auto-generated
from the profile name.

Request (Body):
  - Profile JSON object

Response:
  - 201: Profile: Created object
  - 400: ErrInvalidJSON/Validation: Invalid input data
*/
func (handler *Handler) createProfile(writer http.ResponseWriter, request *http.Request) {
	var input Profile

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateProfile(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, input)
}

/*
PATCH /api/v1/profiles/{id}.

Description: Updates a profile's name and settings blocks.

Response:
  - 200: Profile: Updated object
  - 404: ErrNotFound: Profile not found
*/
func (handler *Handler) updateProfile(writer http.ResponseWriter, request *http.Request) {
	var input Profile

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	input.ID = requestutil.ID(request, "id")

	if err := handler.service.UpdateProfile(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, input)
}

/*
DELETE /api/v1/profiles/{id}.

Response:
  - 204: Deleted
  - 409: Conflict: The default profile cannot be deleted
*/
func (handler *Handler) deleteProfile(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteProfile(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
