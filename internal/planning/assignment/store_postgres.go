// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package assignment

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/newsdeskhq/planning-api/internal/platform/apperr"
	"github.com/newsdeskhq/planning-api/internal/platform/database/schema"
	"github.com/newsdeskhq/planning-api/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed assignment store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// assignmentColumns is the shared SELECT column list.
func assignmentColumns() string {
	t := schema.PlanningAssignment
	return fmt.Sprintf(
		"%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.CoverageID, t.AssigneeID, t.AssignedBy, t.State, t.Priority,
		t.Note, t.AssignedAt, t.StartedAt, t.CompletedAt, t.CreatedAt, t.UpdatedAt,
	)
}

func scanAssignment(row pgx.Row, extra ...any) (*Assignment, error) {
	a := &Assignment{}
	targets := []any{
		&a.ID, &a.CoverageID, &a.AssigneeID, &a.AssignedBy, &a.State, &a.Priority,
		&a.Note, &a.AssignedAt, &a.StartedAt, &a.CompletedAt, &a.CreatedAt, &a.UpdatedAt,
	}
	targets = append(targets, extra...)

	if err := row.Scan(targets...); err != nil {
		return nil, err
	}
	return a, nil
}

// # Assignment Retrieval

/*
List returns a filtered and paginated slice of assignments, most urgent first.
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Assignment, int, error) {
	t := schema.PlanningAssignment

	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() as total
		FROM %s
		WHERE 1=1
	`, assignmentColumns(), t.Table))

	args := []any{}
	argID := 1

	if filter.AssigneeID != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", t.AssigneeID, argID))
		args = append(args, filter.AssigneeID)
		argID++
	}

	if filter.CoverageID != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", t.CoverageID, argID))
		args = append(args, filter.CoverageID)
		argID++
	}

	if len(filter.States) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = ANY($%d)", t.State, argID))
		states := make([]string, len(filter.States))
		for i, s := range filter.States {
			states[i] = string(s)
		}
		args = append(args, states)
		argID++
	}

	if filter.Priority > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", t.Priority, argID))
		args = append(args, filter.Priority)
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(
		" ORDER BY %s ASC, %s ASC LIMIT $%d OFFSET $%d",
		t.Priority, t.AssignedAt, argID, argID+1,
	))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_assignments")
	}
	defer rows.Close()

	var assignments []*Assignment
	var total int
	for rows.Next() {
		a, err := scanAssignment(rows, &total)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_assignment")
		}
		assignments = append(assignments, a)
	}

	return assignments, total, nil
}

/*
FindByID retrieves a single assignment by its primary key.
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Assignment, error) {
	t := schema.PlanningAssignment
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
	`, assignmentColumns(), t.Table, t.ID)

	a, err := scanAssignment(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_assignment_by_id")
	}
	return a, nil
}

/*
FindActiveByCoverage retrieves the non-terminal assignment for a coverage.
*/
func (repository *PostgresRepository) FindActiveByCoverage(context context.Context, coverageID string) (*Assignment, error) {
	t := schema.PlanningAssignment
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s = ANY($2)
		ORDER BY %s DESC
		LIMIT 1
	`, assignmentColumns(), t.Table, t.CoverageID, t.State, t.AssignedAt)

	active := []string{string(StateAssigned), string(StateInProgress)}
	a, err := scanAssignment(repository.db.QueryRow(context, query, coverageID, active))
	if err != nil {
		return nil, dberr.Wrap(err, "get_active_assignment")
	}
	return a, nil
}

// # Assignment Mutation

/*
Create inserts a new assignment record.
*/
func (repository *PostgresRepository) Create(context context.Context, assignment *Assignment) error {
	t := schema.PlanningAssignment
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW(), NOW())
		RETURNING %s, %s, %s
	`, t.Table,
		t.ID, t.CoverageID, t.AssigneeID, t.AssignedBy, t.State, t.Priority,
		t.Note, t.AssignedAt, t.CreatedAt, t.UpdatedAt,
		t.AssignedAt, t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		assignment.ID, assignment.CoverageID, assignment.AssigneeID,
		assignment.AssignedBy, assignment.State, assignment.Priority, assignment.Note,
	).Scan(&assignment.AssignedAt, &assignment.CreatedAt, &assignment.UpdatedAt)

	return dberr.Wrap(err, "create_assignment")
}

/*
Update modifies an assignment's assignee, priority, and note.

Description: Moving the assignee restarts the clock: the assignment timestamp
refreshes and any in-progress start time is cleared.
*/
func (repository *PostgresRepository) Update(context context.Context, assignment *Assignment) error {
	t := schema.PlanningAssignment
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2,
		    %s = $3,
		    %s = $4,
		    %s = CASE WHEN %s <> $2 THEN NOW() ELSE %s END,
		    %s = CASE WHEN %s <> $2 THEN NULL ELSE %s END,
		    %s = CASE WHEN %s <> $2 THEN '%s' ELSE %s END,
		    %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`, t.Table,
		t.AssigneeID,
		t.Priority,
		t.Note,
		t.AssignedAt, t.AssigneeID, t.AssignedAt,
		t.StartedAt, t.AssigneeID, t.StartedAt,
		t.State, t.AssigneeID, StateAssigned, t.State,
		t.UpdatedAt,
		t.ID,
		t.AssignedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		assignment.ID, assignment.AssigneeID, assignment.Priority, assignment.Note,
	).Scan(&assignment.AssignedAt, &assignment.UpdatedAt)

	return dberr.Wrap(err, "update_assignment")
}

/*
UpdateState transitions an assignment's lifecycle state, stamping the
started/completed timestamps as the target state demands.
*/
func (repository *PostgresRepository) UpdateState(context context.Context, id string, state State) error {
	t := schema.PlanningAssignment
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2,
		    %s = CASE WHEN $2 = '%s' THEN NOW() ELSE %s END,
		    %s = CASE WHEN $2 = '%s' THEN NOW() ELSE %s END,
		    %s = NOW()
		WHERE %s = $1
	`, t.Table,
		t.State,
		t.StartedAt, StateInProgress, t.StartedAt,
		t.CompletedAt, StateCompleted, t.CompletedAt,
		t.UpdatedAt,
		t.ID,
	)

	tag, err := repository.db.Exec(context, query, id, state)
	if err != nil {
		return dberr.Wrap(err, "update_assignment_state")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("assignment")
	}
	return nil
}
