// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package profile

import (
	"context"
	"log/slog"

	"github.com/newsdeskhq/planning-api/internal/platform/apperr"
	"github.com/newsdeskhq/planning-api/internal/platform/validate"
	"github.com/newsdeskhq/planning-api/pkg/slug"
	"github.com/newsdeskhq/planning-api/pkg/uuidv7"
)

// # Service Layer

// Service orchestrates business rules for content profiles.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new profile [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

/*
ListProfiles retrieves all active content profiles.

Parameters:
  - context: context.Context

Returns:
  - []*Profile: List of profiles
  - error: Retrieval errors
*/
func (service *Service) ListProfiles(context context.Context) ([]*Profile, error) {
	return service.repo.List(context)
}

/*
GetProfile retrieves a profile by UUID.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Profile: Hydrated profile entity
  - error: ErrNotFound if missing
*/
func (service *Service) GetProfile(context context.Context, id string) (*Profile, error) {
	return service.repo.FindByID(context, id)
}

/*
Resolve returns the profile for an optional ID, falling back to the newsroom
default when the ID is empty. This is the lookup path the event and item
services use on every write.

Parameters:
  - context: context.Context
  - id: string (may be empty)

Returns:
  - *Profile: Resolved profile
  - error: ErrNotFound when neither the ID nor a default resolves
*/
func (service *Service) Resolve(context context.Context, id string) (*Profile, error) {
	if id == "" {
		return service.repo.FindDefault(context)
	}
	return service.repo.FindByID(context, id)
}

/*
CreateProfile registers a new content profile.

Parameters:
  - context: context.Context
  - profile: *Profile

Returns:
  - error: Validation or persistence failures
*/
func (service *Service) CreateProfile(context context.Context, profile *Profile) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, profile.Name).MaxLen(FieldName, profile.Name, 120)

	if err := validator.Err(); err != nil {
		return err
	}

	// Canonicalize the configured languages before persisting so stores
	// never see duplicate or mixed-case BCP 47 tags.
	profile.Multilingual.Languages = profile.Multilingual.ActiveLanguages()

	profile.ID = uuidv7.New()
	profile.Slug = slug.From(profile.Name)

	if err := service.repo.Create(context, profile); err != nil {
		return err
	}

	service.logger.Info("profile_created",
		slog.String("profile_id", profile.ID),
		slog.String("slug", profile.Slug),
	)

	return nil
}

/*
UpdateProfile modifies an existing profile's settings.

Parameters:
  - context: context.Context
  - profile: *Profile

Returns:
  - error: Validation or persistence failures
*/
func (service *Service) UpdateProfile(context context.Context, profile *Profile) error {
	validator := &validate.Validator{}
	if profile.Name != "" {
		validator.MaxLen(FieldName, profile.Name, 120)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	profile.Multilingual.Languages = profile.Multilingual.ActiveLanguages()

	if err := service.repo.Update(context, profile); err != nil {
		return err
	}

	service.logger.Info("profile_updated", slog.String("profile_id", profile.ID))

	return nil
}

/*
DeleteProfile soft-deletes a profile. The newsroom default cannot be removed.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: Conflict when deleting the default, persistence failures otherwise
*/
func (service *Service) DeleteProfile(context context.Context, id string) error {
	existing, err := service.repo.FindByID(context, id)
	if err != nil {
		return err
	}

	if existing.IsDefault {
		return apperr.Conflict("The default profile cannot be deleted")
	}

	if err := service.repo.SoftDelete(context, id); err != nil {
		return err
	}

	service.logger.Info("profile_deleted", slog.String("profile_id", id))

	return nil
}
