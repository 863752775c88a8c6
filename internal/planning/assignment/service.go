// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package assignment

import (
	"context"
	"log/slog"

	"github.com/newsdeskhq/planning-api/internal/planning/item"
	"github.com/newsdeskhq/planning-api/internal/platform/apperr"
	"github.com/newsdeskhq/planning-api/internal/platform/validate"
	"github.com/newsdeskhq/planning-api/pkg/uuidv7"
)

// # Service Dependencies

// CoverageSource reads and transitions coverages on behalf of assignments.
// Satisfied by the item repository.
type CoverageSource interface {
	FindCoverage(context context.Context, id string) (*item.Coverage, error)
	UpdateCoverageStatus(context context.Context, id string, status item.CoverageStatus) error
}

// # Service Layer

// Service orchestrates the assignment lifecycle.
type Service struct {
	repo      Repository
	coverages CoverageSource
	logger    *slog.Logger
}

// NewService constructs a new assignment [Service].
func NewService(repo Repository, coverages CoverageSource, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		coverages: coverages,
		logger:    logger,
	}
}

// # Assignment Management

/*
ListAssignments retrieves a paginated, filtered slice of assignments.

Parameters:
  - context: context.Context
  - filter: Filter
  - limit, offset: int

Returns:
  - []*Assignment: List ordered by priority
  - int: Total matching count
  - error: Retrieval errors
*/
func (service *Service) ListAssignments(context context.Context, filter Filter, limit, offset int) ([]*Assignment, int, error) {
	return service.repo.List(context, filter, limit, offset)
}

/*
GetAssignment retrieves an assignment by UUID.
*/
func (service *Service) GetAssignment(context context.Context, id string) (*Assignment, error) {
	return service.repo.FindByID(context, id)
}

/*
CreateAssignment hands a coverage to a journalist.

Description: The coverage must exist and not be completed or cancelled, and
must not already carry an active assignment. On success the coverage moves to
the assigned status.

Parameters:
  - context: context.Context
  - assignment: *Assignment (ID, state, and timestamps are assigned here)
  - assignerID: string

Returns:
  - *Assignment: The created assignment
  - error: Validation, conflict, or persistence failures
*/
func (service *Service) CreateAssignment(context context.Context, assignment *Assignment, assignerID string) (*Assignment, error) {
	if err := validateAssignment(assignment); err != nil {
		return nil, err
	}

	coverage, err := service.coverages.FindCoverage(context, assignment.CoverageID)
	if err != nil {
		return nil, err
	}
	if coverage.Status == item.CoverageCompleted || coverage.Status == item.CoverageCancelled {
		return nil, apperr.Conflict("Completed and cancelled coverages cannot be assigned")
	}

	if existing, err := service.repo.FindActiveByCoverage(context, assignment.CoverageID); err == nil && existing != nil {
		return nil, apperr.Conflict("Coverage already has an active assignment")
	}

	assignment.ID = uuidv7.New()
	assignment.AssignedBy = assignerID
	assignment.State = StateAssigned
	if assignment.Priority == 0 {
		assignment.Priority = 3
	}

	if err := service.repo.Create(context, assignment); err != nil {
		return nil, err
	}

	if err := service.coverages.UpdateCoverageStatus(context, assignment.CoverageID, item.CoverageAssigned); err != nil {
		return nil, err
	}

	service.logger.Info("assignment_created",
		slog.String("assignment_id", assignment.ID),
		slog.String("coverage_id", assignment.CoverageID),
		slog.String("assignee_id", assignment.AssigneeID),
	)
	return assignment, nil
}

/*
Reassign moves an assignment to another journalist.

Description: Only non-terminal assignments move. The store resets the state
to assigned and clears any start time when the assignee actually changes.

Parameters:
  - context: context.Context
  - assignment: *Assignment (ID, assignee, priority, note)

Returns:
  - error: Conflict when the assignment is terminal
*/
func (service *Service) Reassign(context context.Context, assignment *Assignment) error {
	existing, err := service.repo.FindByID(context, assignment.ID)
	if err != nil {
		return err
	}
	if existing.State.terminal() {
		return apperr.Conflict("Completed and cancelled assignments cannot be reassigned")
	}

	if err := validateAssignment(&Assignment{
		CoverageID: existing.CoverageID,
		AssigneeID: assignment.AssigneeID,
		Priority:   assignment.Priority,
	}); err != nil {
		return err
	}

	if err := service.repo.Update(context, assignment); err != nil {
		return err
	}

	service.logger.Info("assignment_reassigned",
		slog.String("assignment_id", assignment.ID),
		slog.String("assignee_id", assignment.AssigneeID),
	)
	return nil
}

// # Lifecycle Transitions

/*
StartAssignment moves an assigned coverage into production.
*/
func (service *Service) StartAssignment(context context.Context, id string) error {
	existing, err := service.repo.FindByID(context, id)
	if err != nil {
		return err
	}
	if existing.State != StateAssigned {
		return apperr.Conflict("Only assigned work can be started")
	}

	if err := service.repo.UpdateState(context, id, StateInProgress); err != nil {
		return err
	}

	service.logger.Info("assignment_started", slog.String("assignment_id", id))
	return nil
}

/*
CompleteAssignment marks in-progress work as done and completes the coverage.
*/
func (service *Service) CompleteAssignment(context context.Context, id string) error {
	existing, err := service.repo.FindByID(context, id)
	if err != nil {
		return err
	}
	if existing.State != StateInProgress {
		return apperr.Conflict("Only in-progress work can be completed")
	}

	if err := service.repo.UpdateState(context, id, StateCompleted); err != nil {
		return err
	}
	if err := service.coverages.UpdateCoverageStatus(context, existing.CoverageID, item.CoverageCompleted); err != nil {
		return err
	}

	service.logger.Info("assignment_completed", slog.String("assignment_id", id))
	return nil
}

/*
CancelAssignment withdraws an active assignment and returns its coverage to
the planned pool.
*/
func (service *Service) CancelAssignment(context context.Context, id string) error {
	existing, err := service.repo.FindByID(context, id)
	if err != nil {
		return err
	}
	if existing.State.terminal() {
		return apperr.Conflict("Assignment is already in a terminal state")
	}

	if err := service.repo.UpdateState(context, id, StateCancelled); err != nil {
		return err
	}
	if err := service.coverages.UpdateCoverageStatus(context, existing.CoverageID, item.CoveragePlanned); err != nil {
		return err
	}

	service.logger.Info("assignment_cancelled", slog.String("assignment_id", id))
	return nil
}

// # Validation

func validateAssignment(assignment *Assignment) error {
	validator := &validate.Validator{}
	validator.
		Required(FieldCoverageID, assignment.CoverageID).
		Required(FieldAssigneeID, assignment.AssigneeID)
	if assignment.Priority != 0 {
		validator.Range(FieldPriority, assignment.Priority, 1, 5)
	}
	return validator.Err()
}
