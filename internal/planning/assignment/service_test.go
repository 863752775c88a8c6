// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package assignment

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsdeskhq/planning-api/internal/planning/item"
	"github.com/newsdeskhq/planning-api/internal/platform/apperr"
)

// # Test Doubles

// memoryRepository is an in-memory [Repository] for service tests.
type memoryRepository struct {
	assignments map[string]*Assignment
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{assignments: make(map[string]*Assignment)}
}

func (m *memoryRepository) List(_ context.Context, filter Filter, limit, offset int) ([]*Assignment, int, error) {
	var out []*Assignment
	for _, a := range m.assignments {
		if filter.AssigneeID != "" && a.AssigneeID != filter.AssigneeID {
			continue
		}
		out = append(out, a)
	}
	return out, len(out), nil
}

func (m *memoryRepository) FindByID(_ context.Context, id string) (*Assignment, error) {
	a, ok := m.assignments[id]
	if !ok {
		return nil, apperr.NotFound("assignment")
	}
	copied := *a
	return &copied, nil
}

func (m *memoryRepository) FindActiveByCoverage(_ context.Context, coverageID string) (*Assignment, error) {
	for _, a := range m.assignments {
		if a.CoverageID == coverageID && !a.State.terminal() {
			copied := *a
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("assignment")
}

func (m *memoryRepository) Create(_ context.Context, assignment *Assignment) error {
	copied := *assignment
	m.assignments[assignment.ID] = &copied
	return nil
}

func (m *memoryRepository) Update(_ context.Context, assignment *Assignment) error {
	stored, ok := m.assignments[assignment.ID]
	if !ok {
		return apperr.NotFound("assignment")
	}
	if stored.AssigneeID != assignment.AssigneeID {
		stored.State = StateAssigned
		stored.StartedAt = nil
	}
	stored.AssigneeID = assignment.AssigneeID
	stored.Priority = assignment.Priority
	stored.Note = assignment.Note
	return nil
}

func (m *memoryRepository) UpdateState(_ context.Context, id string, state State) error {
	stored, ok := m.assignments[id]
	if !ok {
		return apperr.NotFound("assignment")
	}
	stored.State = state
	return nil
}

// memoryCoverages is an in-memory [CoverageSource].
type memoryCoverages struct {
	coverages map[string]*item.Coverage
}

func (m *memoryCoverages) FindCoverage(_ context.Context, id string) (*item.Coverage, error) {
	c, ok := m.coverages[id]
	if !ok {
		return nil, apperr.NotFound("coverage")
	}
	copied := *c
	return &copied, nil
}

func (m *memoryCoverages) UpdateCoverageStatus(_ context.Context, id string, status item.CoverageStatus) error {
	c, ok := m.coverages[id]
	if !ok {
		return apperr.NotFound("coverage")
	}
	c.Status = status
	return nil
}

func newTestService() (*Service, *memoryRepository, *memoryCoverages) {
	repo := newMemoryRepository()
	coverages := &memoryCoverages{coverages: map[string]*item.Coverage{
		"coverage-1": {
			ID:          "coverage-1",
			ItemID:      "item-1",
			ContentType: item.ContentTypeText,
			Status:      item.CoveragePlanned,
		},
	}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, coverages, logger), repo, coverages
}

// # Creation

/*
TestService_CreateAssignment verifies a new assignment starts in the assigned
state and moves its coverage to assigned.
*/
func TestService_CreateAssignment(t *testing.T) {
	service, repo, coverages := newTestService()

	created, err := service.CreateAssignment(context.Background(), &Assignment{
		CoverageID: "coverage-1",
		AssigneeID: "journalist-1",
	}, "editor-1")
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, StateAssigned, created.State)
	assert.Equal(t, "editor-1", created.AssignedBy)
	assert.Equal(t, 3, created.Priority)
	assert.Equal(t, item.CoverageAssigned, coverages.coverages["coverage-1"].Status)
	assert.Len(t, repo.assignments, 1)
}

/*
TestService_CreateAssignment_DuplicateActive verifies a coverage cannot carry
two active assignments.
*/
func TestService_CreateAssignment_DuplicateActive(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.CreateAssignment(context.Background(), &Assignment{
		CoverageID: "coverage-1",
		AssigneeID: "journalist-1",
	}, "editor-1")
	require.NoError(t, err)

	_, err = service.CreateAssignment(context.Background(), &Assignment{
		CoverageID: "coverage-1",
		AssigneeID: "journalist-2",
	}, "editor-1")

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "CONFLICT", appError.Code)
}

/*
TestService_CreateAssignment_CoverageDone verifies completed coverages cannot
be assigned.
*/
func TestService_CreateAssignment_CoverageDone(t *testing.T) {
	service, _, coverages := newTestService()
	coverages.coverages["coverage-1"].Status = item.CoverageCompleted

	_, err := service.CreateAssignment(context.Background(), &Assignment{
		CoverageID: "coverage-1",
		AssigneeID: "journalist-1",
	}, "editor-1")

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "CONFLICT", appError.Code)
}

// # Lifecycle

/*
TestService_Lifecycle walks assigned → in_progress → completed and verifies
the coverage completes with the assignment.
*/
func TestService_Lifecycle(t *testing.T) {
	service, repo, coverages := newTestService()

	created, err := service.CreateAssignment(context.Background(), &Assignment{
		CoverageID: "coverage-1",
		AssigneeID: "journalist-1",
	}, "editor-1")
	require.NoError(t, err)

	// Completing before starting is a conflict.
	err = service.CompleteAssignment(context.Background(), created.ID)
	require.NotNil(t, apperr.As(err))

	require.NoError(t, service.StartAssignment(context.Background(), created.ID))
	assert.Equal(t, StateInProgress, repo.assignments[created.ID].State)

	// Starting twice is a conflict.
	err = service.StartAssignment(context.Background(), created.ID)
	require.NotNil(t, apperr.As(err))

	require.NoError(t, service.CompleteAssignment(context.Background(), created.ID))
	assert.Equal(t, StateCompleted, repo.assignments[created.ID].State)
	assert.Equal(t, item.CoverageCompleted, coverages.coverages["coverage-1"].Status)
}

/*
TestService_CancelAssignment verifies cancelling returns the coverage to the
planned pool.
*/
func TestService_CancelAssignment(t *testing.T) {
	service, repo, coverages := newTestService()

	created, err := service.CreateAssignment(context.Background(), &Assignment{
		CoverageID: "coverage-1",
		AssigneeID: "journalist-1",
	}, "editor-1")
	require.NoError(t, err)

	require.NoError(t, service.CancelAssignment(context.Background(), created.ID))

	assert.Equal(t, StateCancelled, repo.assignments[created.ID].State)
	assert.Equal(t, item.CoveragePlanned, coverages.coverages["coverage-1"].Status)

	// Terminal assignments reject further transitions.
	err = service.CancelAssignment(context.Background(), created.ID)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "CONFLICT", appError.Code)
}

/*
TestService_Reassign verifies moving the assignee resets in-progress work and
that terminal assignments refuse to move.
*/
func TestService_Reassign(t *testing.T) {
	service, repo, _ := newTestService()

	created, err := service.CreateAssignment(context.Background(), &Assignment{
		CoverageID: "coverage-1",
		AssigneeID: "journalist-1",
	}, "editor-1")
	require.NoError(t, err)
	require.NoError(t, service.StartAssignment(context.Background(), created.ID))

	err = service.Reassign(context.Background(), &Assignment{
		ID:         created.ID,
		AssigneeID: "journalist-2",
		Priority:   1,
	})
	require.NoError(t, err)

	stored := repo.assignments[created.ID]
	assert.Equal(t, "journalist-2", stored.AssigneeID)
	assert.Equal(t, StateAssigned, stored.State)
	assert.Nil(t, stored.StartedAt)

	require.NoError(t, service.CancelAssignment(context.Background(), created.ID))
	err = service.Reassign(context.Background(), &Assignment{
		ID:         created.ID,
		AssigneeID: "journalist-3",
		Priority:   2,
	})
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "CONFLICT", appError.Code)
}
