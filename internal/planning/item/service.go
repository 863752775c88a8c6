// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package item

import (
	"context"
	"log/slog"

	"github.com/newsdeskhq/planning-api/internal/core/profile"
	"github.com/newsdeskhq/planning-api/internal/multilingual"
	"github.com/newsdeskhq/planning-api/internal/platform/apperr"
	"github.com/newsdeskhq/planning-api/internal/platform/validate"
	"github.com/newsdeskhq/planning-api/pkg/uuidv7"
)

// # Service Dependencies

// ProfileSource resolves content profiles for items. Satisfied by the
// profile service.
type ProfileSource interface {
	Resolve(context context.Context, id string) (*profile.Profile, error)
}

// # Service Layer

// Service orchestrates business rules for planning items.
type Service struct {
	repo     Repository
	profiles ProfileSource
	logger   *slog.Logger
}

// NewService constructs a new item [Service].
func NewService(repo Repository, profiles ProfileSource, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		profiles: profiles,
		logger:   logger,
	}
}

// # Item Management

/*
ListItems retrieves a paginated, filtered slice of planning items.

Parameters:
  - context: context.Context
  - filter: Filter
  - limit, offset: int

Returns:
  - []*Item: List of items with coverages hydrated
  - int: Total matching count
  - error: Retrieval errors
*/
func (service *Service) ListItems(context context.Context, filter Filter, limit, offset int) ([]*Item, int, error) {
	return service.repo.List(context, filter, limit, offset)
}

/*
GetItem retrieves an item by UUID.
*/
func (service *Service) GetItem(context context.Context, id string) (*Item, error) {
	return service.repo.FindByID(context, id)
}

/*
CreateItem registers a new planning item with its initial coverages.

Description: Every coverage starts in the planned status regardless of what
the caller sent; assignment is a separate step. An item with at least one
dated coverage starts scheduled, otherwise it starts as a draft.

Parameters:
  - context: context.Context
  - item: *Item (ID and coverage IDs are assigned here)
  - creatorID: string

Returns:
  - *Item: The created item
  - error: Validation or persistence failures
*/
func (service *Service) CreateItem(context context.Context, item *Item, creatorID string) (*Item, error) {
	if err := validateItem(item); err != nil {
		return nil, err
	}

	resolvedProfile, err := service.profiles.Resolve(context, item.ProfileID)
	if err != nil {
		return nil, err
	}
	item.ProfileID = resolvedProfile.ID

	if err := service.reconcileTranslations(item, resolvedProfile); err != nil {
		return nil, err
	}

	item.ID = uuidv7.New()
	item.CreatedBy = creatorID
	if item.Urgency == 0 {
		item.Urgency = 3
	}

	item.State = StateDraft
	for i := range item.Coverages {
		coverage := &item.Coverages[i]
		if err := validateCoverage(coverage); err != nil {
			return nil, err
		}
		coverage.ID = uuidv7.New()
		coverage.ItemID = item.ID
		coverage.Status = CoveragePlanned
		if coverage.ScheduledAt != nil {
			item.State = StateScheduled
		}
	}

	if err := service.repo.Create(context, item); err != nil {
		return nil, err
	}

	service.logger.Info("item_created",
		slog.String("item_id", item.ID),
		slog.String("slugline", item.Slugline),
		slog.Int("coverages", len(item.Coverages)),
	)
	return item, nil
}

/*
UpdateItem modifies an item's descriptive fields and translations.

Parameters:
  - context: context.Context
  - item: *Item

Returns:
  - error: Validation or persistence failures
*/
func (service *Service) UpdateItem(context context.Context, item *Item) error {
	existing, err := service.repo.FindByID(context, item.ID)
	if err != nil {
		return err
	}
	if existing.State.terminal() {
		return apperr.Conflict("Cancelled and expired items cannot be edited")
	}

	if err := validateItem(item); err != nil {
		return err
	}

	resolvedProfile, err := service.profiles.Resolve(context, existing.ProfileID)
	if err != nil {
		return err
	}
	if err := service.reconcileTranslations(item, resolvedProfile); err != nil {
		return err
	}

	if err := service.repo.Update(context, item); err != nil {
		return err
	}

	service.logger.Info("item_updated", slog.String("item_id", item.ID))
	return nil
}

/*
CancelItem marks a non-terminal item as cancelled. Its open coverages are
cancelled with it.
*/
func (service *Service) CancelItem(context context.Context, id string) error {
	existing, err := service.repo.FindByID(context, id)
	if err != nil {
		return err
	}
	if existing.State.terminal() {
		return apperr.Conflict("Item is already in a terminal state")
	}

	if err := service.repo.UpdateState(context, id, StateCancelled); err != nil {
		return err
	}

	for _, coverage := range existing.Coverages {
		if coverage.Status == CoveragePlanned || coverage.Status == CoverageAssigned {
			if err := service.repo.UpdateCoverageStatus(context, coverage.ID, CoverageCancelled); err != nil {
				return err
			}
		}
	}

	service.logger.Info("item_cancelled", slog.String("item_id", id))
	return nil
}

/*
DeleteItem soft-deletes an item and its coverages.
*/
func (service *Service) DeleteItem(context context.Context, id string) error {
	if err := service.repo.SoftDelete(context, id); err != nil {
		return err
	}

	service.logger.Info("item_deleted", slog.String("item_id", id))
	return nil
}

// # Coverage Management

/*
AddCoverage attaches a new coverage to an item.

Description: Coverages always start in the planned status. Adding a dated
coverage to a draft item moves the item to scheduled.

Parameters:
  - context: context.Context
  - itemID: string
  - coverage: *Coverage (ID and status are assigned here)

Returns:
  - *Coverage: The created coverage
  - error: Validation or persistence failures
*/
func (service *Service) AddCoverage(context context.Context, itemID string, coverage *Coverage) (*Coverage, error) {
	existing, err := service.repo.FindByID(context, itemID)
	if err != nil {
		return nil, err
	}
	if existing.State.terminal() {
		return nil, apperr.Conflict("Cancelled and expired items cannot gain coverages")
	}

	if err := validateCoverage(coverage); err != nil {
		return nil, err
	}

	coverage.ID = uuidv7.New()
	coverage.ItemID = itemID
	coverage.Status = CoveragePlanned

	if err := service.repo.AddCoverage(context, coverage); err != nil {
		return nil, err
	}

	if existing.State == StateDraft && coverage.ScheduledAt != nil {
		if err := service.repo.UpdateState(context, itemID, StateScheduled); err != nil {
			return nil, err
		}
	}

	service.logger.Info("coverage_added",
		slog.String("item_id", itemID),
		slog.String("coverage_id", coverage.ID),
		slog.String("content_type", string(coverage.ContentType)),
	)
	return coverage, nil
}

/*
UpdateCoverage modifies a coverage's slugline, note, deadline, and status.

Description: Completed and cancelled coverages are frozen. Status may only
move to a valid value; assignment-driven transitions come through the
assignment service instead.

Parameters:
  - context: context.Context
  - coverage: *Coverage

Returns:
  - error: Validation, conflict, or persistence failures
*/
func (service *Service) UpdateCoverage(context context.Context, coverage *Coverage) error {
	existing, err := service.repo.FindCoverage(context, coverage.ID)
	if err != nil {
		return err
	}
	if existing.Status == CoverageCompleted || existing.Status == CoverageCancelled {
		return apperr.Conflict("Completed and cancelled coverages cannot be edited")
	}

	if err := validateCoverage(coverage); err != nil {
		return err
	}
	if coverage.Status == "" {
		coverage.Status = existing.Status
	}
	if !coverage.Status.Valid() {
		return apperr.ValidationError("Unknown coverage status '" + string(coverage.Status) + "'")
	}

	// Content type is fixed at creation; a photo coverage never becomes text.
	coverage.ContentType = existing.ContentType

	if err := service.repo.UpdateCoverage(context, coverage); err != nil {
		return err
	}

	service.logger.Info("coverage_updated", slog.String("coverage_id", coverage.ID))
	return nil
}

// # Validation

func validateItem(item *Item) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldSlugline, item.Slugline).MaxLen(FieldSlugline, item.Slugline, 64).
		Slug(FieldSlugline, item.Slugline)
	if item.Urgency != 0 {
		validator.Range(FieldUrgency, item.Urgency, 1, 5)
	}
	return validator.Err()
}

func validateCoverage(coverage *Coverage) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldContentType, string(coverage.ContentType)).
		Custom(FieldContentType, !coverage.ContentType.Valid(), "Content type must be text, photo, or video").
		MaxLen(FieldSlugline, coverage.Slugline, 64)
	return validator.Err()
}

// # Translation Reconciliation

// reconcileTranslations validates and normalizes an item's translation
// entries against its profile configuration.
func (service *Service) reconcileTranslations(item *Item, resolvedProfile *profile.Profile) error {
	if len(item.Translations) == 0 {
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

	for _, entry := range item.Translations {
		if !cfg.FieldEnabled(entry.Field) {
			return apperr.Unprocessable("Field '" + entry.Field + "' is not multilingual under this profile")
		}
		if !active[entry.Language] {
			return apperr.Unprocessable("Language '" + entry.Language + "' is not active under this profile")
		}
	}

	item.Translations = multilingual.FromEntries(item.Translations).Entries()

	return nil
}
