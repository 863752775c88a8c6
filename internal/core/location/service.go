// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package location

import (
	"context"
	"log/slog"
	"time"

	"github.com/newsdeskhq/planning-api/internal/platform/validate"
	"github.com/newsdeskhq/planning-api/pkg/uuidv7"
)

// # Service Layer

// Service orchestrates business rules for venues.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new location [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

/*
ListLocations retrieves a paginated, filtered list of venues.

Parameters:
  - context: context.Context
  - filter: Filter
  - limit, offset: int

Returns:
  - []*Location: List of venues
  - int: Total matching count
  - error: Retrieval errors
*/
func (service *Service) ListLocations(context context.Context, filter Filter, limit, offset int) ([]*Location, int, error) {
	return service.repo.List(context, filter, limit, offset)
}

/*
GetLocation retrieves a venue by UUID.
*/
func (service *Service) GetLocation(context context.Context, id string) (*Location, error) {
	return service.repo.FindByID(context, id)
}

/*
CreateLocation registers a new venue.

Parameters:
  - context: context.Context
  - location: *Location

Returns:
  - error: Validation or persistence failures
*/
func (service *Service) CreateLocation(context context.Context, location *Location) error {
	if err := service.validateLocation(location); err != nil {
		return err
	}

	location.ID = uuidv7.New()

	if err := service.repo.Create(context, location); err != nil {
		return err
	}

	service.logger.Info("location_created",
		slog.String("location_id", location.ID),
		slog.String("name", location.Name),
	)

	return nil
}

/*
UpdateLocation modifies an existing venue.
*/
func (service *Service) UpdateLocation(context context.Context, location *Location) error {
	if err := service.validateLocation(location); err != nil {
		return err
	}

	if err := service.repo.Update(context, location); err != nil {
		return err
	}

	service.logger.Info("location_updated", slog.String("location_id", location.ID))

	return nil
}

/*
DeleteLocation soft-deletes a venue.
*/
func (service *Service) DeleteLocation(context context.Context, id string) error {
	if err := service.repo.SoftDelete(context, id); err != nil {
		return err
	}

	service.logger.Info("location_deleted", slog.String("location_id", id))

	return nil
}

// validateLocation applies the shared create/update rules. Coordinates must
// come in pairs, and the timezone must resolve against the host zone database.
func (service *Service) validateLocation(location *Location) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, location.Name).MaxLen(FieldName, location.Name, 200)

	hasLat := location.Latitude != nil
	hasLon := location.Longitude != nil
	validator.Custom("coordinates", hasLat != hasLon, "Latitude and longitude must be provided together")

	if hasLat {
		validator.Latitude(FieldLatitude, *location.Latitude)
	}
	if hasLon {
		validator.Longitude(FieldLongitude, *location.Longitude)
	}

	validator.Timezone(FieldTZ, location.TZ, func(name string) error {
		_, err := time.LoadLocation(name)
		return err
	})

	return validator.Err()
}
