// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package contact

import (
	"context"
	"log/slog"

	"github.com/newsdeskhq/planning-api/internal/platform/validate"
	"github.com/newsdeskhq/planning-api/pkg/uuidv7"
)

// # Service Layer

// Service orchestrates business rules for the contact directory.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new contact [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

/*
ListContacts retrieves a paginated, filtered directory slice.

Parameters:
  - context: context.Context
  - filter: Filter
  - limit, offset: int

Returns:
  - []*Contact: List of contacts
  - int: Total matching count
  - error: Retrieval errors
*/
func (service *Service) ListContacts(context context.Context, filter Filter, limit, offset int) ([]*Contact, int, error) {
	return service.repo.List(context, filter, limit, offset)
}

/*
GetContact retrieves a contact by UUID.
*/
func (service *Service) GetContact(context context.Context, id string) (*Contact, error) {
	return service.repo.FindByID(context, id)
}

/*
CreateContact registers a new directory entry.

Parameters:
  - context: context.Context
  - contact: *Contact

Returns:
  - error: Validation or persistence failures
*/
func (service *Service) CreateContact(context context.Context, contact *Contact) error {
	if err := service.validateContact(contact); err != nil {
		return err
	}

	contact.ID = uuidv7.New()

	if err := service.repo.Create(context, contact); err != nil {
		return err
	}

	service.logger.Info("contact_created", slog.String("contact_id", contact.ID))

	return nil
}

/*
UpdateContact modifies an existing directory entry.
*/
func (service *Service) UpdateContact(context context.Context, contact *Contact) error {
	if err := service.validateContact(contact); err != nil {
		return err
	}

	if err := service.repo.Update(context, contact); err != nil {
		return err
	}

	service.logger.Info("contact_updated", slog.String("contact_id", contact.ID))

	return nil
}

/*
DeleteContact soft-deletes a directory entry.
*/
func (service *Service) DeleteContact(context context.Context, id string) error {
	if err := service.repo.SoftDelete(context, id); err != nil {
		return err
	}

	service.logger.Info("contact_deleted", slog.String("contact_id", id))

	return nil
}

// validateContact applies the shared create/update rules.
func (service *Service) validateContact(contact *Contact) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldFirstName, contact.FirstName).MaxLen(FieldFirstName, contact.FirstName, 120).
		Required(FieldLastName, contact.LastName).MaxLen(FieldLastName, contact.LastName, 120)

	if contact.Email != nil && *contact.Email != "" {
		validator.Email(FieldEmail, *contact.Email)
	}

	return validator.Err()
}
