// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package event

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/newsdeskhq/planning-api/internal/platform/apperr"
	"github.com/newsdeskhq/planning-api/internal/platform/database/schema"
	"github.com/newsdeskhq/planning-api/internal/platform/dberr"
	"github.com/newsdeskhq/planning-api/internal/schedule"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed event store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// eventColumns is the shared SELECT column list.
func eventColumns() string {
	t := schema.PlanningEvent
	return fmt.Sprintf(
		"%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.RecurrenceID, t.ProfileID, t.LocationID, t.Slugline, t.Name,
		t.Definition, t.State, t.StartAt, t.EndAt, t.TZ, t.AllDay, t.NoEndTime,
		t.ToBeConfirmed, t.Rule, t.Translations, t.CreatedBy, t.CreatedAt, t.UpdatedAt,
	)
}

// scanEvent hydrates one row into an [Event] and derives the read-time flags.
func scanEvent(row pgx.Row, extra ...any) (*Event, error) {
	e := &Event{}
	targets := []any{
		&e.ID, &e.RecurrenceID, &e.ProfileID, &e.LocationID, &e.Slugline, &e.Name,
		&e.Definition, &e.State, &e.Dates.Start, &e.Dates.End, &e.Dates.TZ,
		&e.Dates.AllDay, &e.Dates.NoEndTime, &e.ToBeConfirmed,
		&e.Dates.RecurringRule, &e.Translations, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	}
	targets = append(targets, extra...)

	if err := row.Scan(targets...); err != nil {
		return nil, err
	}

	e.DeriveFlags()
	return e, nil
}

// # Event Retrieval

/*
List returns a filtered and paginated slice of events.

Description: The date window matches any event overlapping [From, To): an
event overlaps when it starts before the window closes and ends (or starts,
when open-ended) after the window opens.
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Event, int, error) {
	t := schema.PlanningEvent

	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() as total
		FROM %s
		WHERE %s IS NULL
	`, eventColumns(), t.Table, t.DeletedAt))

	args := []any{}
	argID := 1

	if filter.From != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND COALESCE(%s, %s) >= $%d", t.EndAt, t.StartAt, argID))
		args = append(args, *filter.From)
		argID++
	}

	if filter.To != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s < $%d", t.StartAt, argID))
		args = append(args, *filter.To)
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

	if filter.ProfileID != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", t.ProfileID, argID))
		args = append(args, filter.ProfileID)
		argID++
	}

	if filter.RecurrenceID != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", t.RecurrenceID, argID))
		args = append(args, filter.RecurrenceID)
		argID++
	}

	if filter.Query != "" {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND (%s ILIKE $%d OR %s ILIKE $%d)", t.Slugline, argID, t.Name, argID,
		))
		args = append(args, "%"+filter.Query+"%")
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(
		" ORDER BY %s ASC NULLS LAST, %s ASC LIMIT $%d OFFSET $%d",
		t.StartAt, t.Slugline, argID, argID+1,
	))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_events")
	}
	defer rows.Close()

	var events []*Event
	var total int
	for rows.Next() {
		e, err := scanEvent(rows, &total)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_event")
		}
		events = append(events, e)
	}

	return events, total, nil
}

/*
FindByID retrieves a single event record by its primary key.
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Event, error) {
	t := schema.PlanningEvent
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`, eventColumns(), t.Table, t.ID, t.DeletedAt)

	e, err := scanEvent(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_event_by_id")
	}
	return e, nil
}

/*
ListSeries returns every event sharing a recurrence ID, ordered by start.
*/
func (repository *PostgresRepository) ListSeries(context context.Context, recurrenceID string) ([]*Event, error) {
	t := schema.PlanningEvent
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
		ORDER BY %s ASC
	`, eventColumns(), t.Table, t.RecurrenceID, t.DeletedAt, t.StartAt)

	rows, err := repository.db.Query(context, query, recurrenceID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_series")
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_series_event")
		}
		events = append(events, e)
	}

	return events, nil
}

// # Event Mutation

// insertQuery is the shared INSERT statement for single and series creation.
func insertQuery() string {
	t := schema.PlanningEvent
	return fmt.Sprintf(`
		INSERT INTO %s (
			%s, %s, %s, %s, %s, %s, %s, %s, %s, %s,
			%s, %s, %s, %s, %s, %s, %s, %s, %s
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, NOW(), NOW())
		RETURNING %s, %s
	`, t.Table,
		t.ID, t.RecurrenceID, t.ProfileID, t.LocationID, t.Slugline, t.Name,
		t.Definition, t.State, t.StartAt, t.EndAt,
		t.TZ, t.AllDay, t.NoEndTime, t.ToBeConfirmed, t.Rule, t.Translations,
		t.CreatedBy, t.CreatedAt, t.UpdatedAt,
		t.CreatedAt, t.UpdatedAt,
	)
}

// insertArgs flattens an event into the insert parameter list.
func insertArgs(event *Event) []any {
	return []any{
		event.ID, event.RecurrenceID, event.ProfileID, event.LocationID,
		event.Slugline, event.Name, event.Definition, event.State,
		event.Dates.Start, event.Dates.End, event.Dates.TZ, event.Dates.AllDay,
		event.Dates.NoEndTime, event.ToBeConfirmed, event.Dates.RecurringRule,
		event.Translations, event.CreatedBy,
	}
}

/*
Create inserts a single event record.
*/
func (repository *PostgresRepository) Create(context context.Context, event *Event) error {
	err := repository.db.QueryRow(context, insertQuery(), insertArgs(event)...).
		Scan(&event.CreatedAt, &event.UpdatedAt)
	return dberr.Wrap(err, "create_event")
}

/*
CreateSeries inserts a recurring series inside a single transaction.

Description: A failed occurrence rolls back the whole series, so a recurring
event never half-materializes.
*/
func (repository *PostgresRepository) CreateSeries(context context.Context, events []*Event) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_series")
	}
	defer func() { _ = tx.Rollback(context) }()

	query := insertQuery()
	for _, e := range events {
		if err := tx.QueryRow(context, query, insertArgs(e)...).Scan(&e.CreatedAt, &e.UpdatedAt); err != nil {
			return dberr.Wrap(err, "create_series_event")
		}
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_create_series")
	}
	return nil
}

/*
Update modifies an event's descriptive fields and translations.
*/
func (repository *PostgresRepository) Update(context context.Context, event *Event) error {
	t := schema.PlanningEvent
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`, t.Table,
		t.Slugline, t.Name, t.Definition, t.LocationID, t.Translations, t.UpdatedAt,
		t.ID, t.DeletedAt,
		t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		event.ID, event.Slugline, event.Name, event.Definition,
		event.LocationID, event.Translations,
	).Scan(&event.UpdatedAt)

	return dberr.Wrap(err, "update_event")
}

/*
UpdateSchedule replaces an event's schedule block atomically.
*/
func (repository *PostgresRepository) UpdateSchedule(context context.Context, id string, dates schedule.EventDates, toBeConfirmed bool) error {
	t := schema.PlanningEvent
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
	`, t.Table,
		t.StartAt, t.EndAt, t.TZ, t.AllDay, t.NoEndTime, t.ToBeConfirmed, t.Rule, t.UpdatedAt,
		t.ID, t.DeletedAt,
	)

	tag, err := repository.db.Exec(context, query,
		id, dates.Start, dates.End, dates.TZ, dates.AllDay, dates.NoEndTime,
		toBeConfirmed, dates.RecurringRule,
	)
	if err != nil {
		return dberr.Wrap(err, "update_event_schedule")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("event")
	}
	return nil
}

/*
UpdateState transitions an event's lifecycle state.
*/
func (repository *PostgresRepository) UpdateState(context context.Context, id string, state State) error {
	t := schema.PlanningEvent
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1 AND %s IS NULL
	`, t.Table, t.State, t.UpdatedAt, t.ID, t.DeletedAt)

	tag, err := repository.db.Exec(context, query, id, state)
	if err != nil {
		return dberr.Wrap(err, "update_event_state")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("event")
	}
	return nil
}

/*
ExpireEnded marks scheduled events that finished more than cutoffDays ago
as expired. Open-ended events expire based on their start date.
*/
func (repository *PostgresRepository) ExpireEnded(context context.Context, cutoffDays int) (int, error) {
	t := schema.PlanningEvent
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = NOW()
		WHERE %s = $2
		  AND %s IS NULL
		  AND COALESCE(%s, %s) < NOW() - make_interval(days => $3)
	`, t.Table, t.State, t.UpdatedAt,
		t.State, t.DeletedAt,
		t.EndAt, t.StartAt,
	)

	tag, err := repository.db.Exec(context, query, StateExpired, StateScheduled, cutoffDays)
	if err != nil {
		return 0, dberr.Wrap(err, "expire_events")
	}
	return int(tag.RowsAffected()), nil
}

/*
SoftDelete marks an event as deleted.
*/
func (repository *PostgresRepository) SoftDelete(context context.Context, id string) error {
	t := schema.PlanningEvent
	query := fmt.Sprintf(`
		UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL
	`, t.Table, t.DeletedAt, t.ID, t.DeletedAt)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_event")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("event")
	}
	return nil
}
