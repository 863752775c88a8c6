// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package item

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

// NewPostgresRepository constructs a PostgreSQL backed item store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// itemColumns is the shared SELECT column list.
func itemColumns() string {
	t := schema.PlanningItem
	return fmt.Sprintf(
		"%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.EventID, t.ProfileID, t.Slugline, t.Description, t.State,
		t.Urgency, t.Translations, t.CreatedBy, t.CreatedAt, t.UpdatedAt,
	)
}

func scanItem(row pgx.Row, extra ...any) (*Item, error) {
	i := &Item{}
	targets := []any{
		&i.ID, &i.EventID, &i.ProfileID, &i.Slugline, &i.Description, &i.State,
		&i.Urgency, &i.Translations, &i.CreatedBy, &i.CreatedAt, &i.UpdatedAt,
	}
	targets = append(targets, extra...)

	if err := row.Scan(targets...); err != nil {
		return nil, err
	}
	return i, nil
}

// coverageColumns is the shared SELECT column list for coverages.
func coverageColumns() string {
	t := schema.PlanningCoverage
	return fmt.Sprintf(
		"%s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.ItemID, t.ContentType, t.Status, t.Slugline, t.Note,
		t.ScheduledAt, t.CreatedAt, t.UpdatedAt,
	)
}

func scanCoverage(row pgx.Row) (*Coverage, error) {
	c := &Coverage{}
	err := row.Scan(
		&c.ID, &c.ItemID, &c.ContentType, &c.Status, &c.Slugline, &c.Note,
		&c.ScheduledAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// # Item Retrieval

/*
List returns a filtered and paginated slice of items with their coverages.

Description: Coverages are hydrated in a second query keyed by the page's
item IDs, avoiding a row-multiplying join on the paginated read.
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Item, int, error) {
	t := schema.PlanningItem

	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() as total
		FROM %s
		WHERE %s IS NULL
	`, itemColumns(), t.Table, t.DeletedAt))

	args := []any{}
	argID := 1

	if filter.EventID != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", t.EventID, argID))
		args = append(args, filter.EventID)
		argID++
	}

	if filter.ProfileID != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", t.ProfileID, argID))
		args = append(args, filter.ProfileID)
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

	if filter.Urgency > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", t.Urgency, argID))
		args = append(args, filter.Urgency)
		argID++
	}

	if filter.Query != "" {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND (%s ILIKE $%d OR %s ILIKE $%d)", t.Slugline, argID, t.Description, argID,
		))
		args = append(args, "%"+filter.Query+"%")
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(
		" ORDER BY %s DESC LIMIT $%d OFFSET $%d", t.CreatedAt, argID, argID+1,
	))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_items")
	}
	defer rows.Close()

	var items []*Item
	var total int
	for rows.Next() {
		i, err := scanItem(rows, &total)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_item")
		}
		items = append(items, i)
	}

	if err := repository.hydrateCoverages(context, items); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

/*
FindByID retrieves a single item with its coverages.
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Item, error) {
	t := schema.PlanningItem
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`, itemColumns(), t.Table, t.ID, t.DeletedAt)

	item, err := scanItem(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_item_by_id")
	}

	if err := repository.hydrateCoverages(context, []*Item{item}); err != nil {
		return nil, err
	}
	return item, nil
}

// hydrateCoverages attaches coverages to the given items in one query.
func (repository *PostgresRepository) hydrateCoverages(context context.Context, items []*Item) error {
	if len(items) == 0 {
		return nil
	}

	t := schema.PlanningCoverage
	byItem := make(map[string]*Item, len(items))
	ids := make([]string, len(items))
	for i, item := range items {
		item.Coverages = []Coverage{}
		byItem[item.ID] = item
		ids[i] = item.ID
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = ANY($1) AND %s IS NULL
		ORDER BY %s ASC
	`, coverageColumns(), t.Table, t.ItemID, t.DeletedAt, t.CreatedAt)

	rows, err := repository.db.Query(context, query, ids)
	if err != nil {
		return dberr.Wrap(err, "list_coverages")
	}
	defer rows.Close()

	for rows.Next() {
		c, err := scanCoverage(rows)
		if err != nil {
			return dberr.Wrap(err, "scan_coverage")
		}
		if parent, ok := byItem[c.ItemID]; ok {
			parent.Coverages = append(parent.Coverages, *c)
		}
	}

	return nil
}

// # Item Mutation

/*
Create inserts an item and its initial coverages inside one transaction.
*/
func (repository *PostgresRepository) Create(context context.Context, item *Item) error {
	t := schema.PlanningItem
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING %s, %s
	`, t.Table,
		t.ID, t.EventID, t.ProfileID, t.Slugline, t.Description, t.State,
		t.Urgency, t.Translations, t.CreatedBy, t.CreatedAt, t.UpdatedAt,
		t.CreatedAt, t.UpdatedAt,
	)

	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_item")
	}
	defer func() { _ = tx.Rollback(context) }()

	err = tx.QueryRow(context, query,
		item.ID, item.EventID, item.ProfileID, item.Slugline, item.Description,
		item.State, item.Urgency, item.Translations, item.CreatedBy,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_item")
	}

	for i := range item.Coverages {
		if err := insertCoverage(context, tx, &item.Coverages[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_create_item")
	}
	return nil
}

// insertCoverage persists one coverage row on the given executor.
func insertCoverage(context context.Context, tx pgx.Tx, coverage *Coverage) error {
	t := schema.PlanningCoverage
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s, %s
	`, t.Table,
		t.ID, t.ItemID, t.ContentType, t.Status, t.Slugline, t.Note,
		t.ScheduledAt, t.CreatedAt, t.UpdatedAt,
		t.CreatedAt, t.UpdatedAt,
	)

	err := tx.QueryRow(context, query,
		coverage.ID, coverage.ItemID, coverage.ContentType, coverage.Status,
		coverage.Slugline, coverage.Note, coverage.ScheduledAt,
	).Scan(&coverage.CreatedAt, &coverage.UpdatedAt)

	return dberr.Wrap(err, "create_coverage")
}

/*
Update modifies an item's descriptive fields and translations.
*/
func (repository *PostgresRepository) Update(context context.Context, item *Item) error {
	t := schema.PlanningItem
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`, t.Table,
		t.Slugline, t.Description, t.Urgency, t.Translations, t.UpdatedAt,
		t.ID, t.DeletedAt,
		t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		item.ID, item.Slugline, item.Description, item.Urgency, item.Translations,
	).Scan(&item.UpdatedAt)

	return dberr.Wrap(err, "update_item")
}

/*
UpdateState transitions an item's lifecycle state.
*/
func (repository *PostgresRepository) UpdateState(context context.Context, id string, state State) error {
	t := schema.PlanningItem
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1 AND %s IS NULL
	`, t.Table, t.State, t.UpdatedAt, t.ID, t.DeletedAt)

	tag, err := repository.db.Exec(context, query, id, state)
	if err != nil {
		return dberr.Wrap(err, "update_item_state")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("planning item")
	}
	return nil
}

/*
ExpireEnded marks scheduled items whose latest coverage deadline passed more
than cutoffDays ago as expired. Items without any dated coverage never expire.
*/
func (repository *PostgresRepository) ExpireEnded(context context.Context, cutoffDays int) (int, error) {
	t := schema.PlanningItem
	c := schema.PlanningCoverage
	query := fmt.Sprintf(`
		UPDATE %s AS i
		SET %s = $1, %s = NOW()
		WHERE i.%s = $2
		  AND i.%s IS NULL
		  AND (
			SELECT MAX(c.%s) FROM %s AS c
			WHERE c.%s = i.%s AND c.%s IS NULL
		  ) < NOW() - make_interval(days => $3)
	`, t.Table, t.State, t.UpdatedAt,
		t.State, t.DeletedAt,
		c.ScheduledAt, c.Table,
		c.ItemID, t.ID, c.DeletedAt,
	)

	tag, err := repository.db.Exec(context, query, StateExpired, StateScheduled, cutoffDays)
	if err != nil {
		return 0, dberr.Wrap(err, "expire_items")
	}
	return int(tag.RowsAffected()), nil
}

/*
SoftDelete marks an item and its coverages as deleted.
*/
func (repository *PostgresRepository) SoftDelete(context context.Context, id string) error {
	t := schema.PlanningItem
	c := schema.PlanningCoverage

	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_delete_item")
	}
	defer func() { _ = tx.Rollback(context) }()

	tag, err := tx.Exec(context, fmt.Sprintf(`
		UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL
	`, t.Table, t.DeletedAt, t.ID, t.DeletedAt), id)
	if err != nil {
		return dberr.Wrap(err, "delete_item")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("planning item")
	}

	_, err = tx.Exec(context, fmt.Sprintf(`
		UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL
	`, c.Table, c.DeletedAt, c.ItemID, c.DeletedAt), id)
	if err != nil {
		return dberr.Wrap(err, "delete_item_coverages")
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_delete_item")
	}
	return nil
}

// # Coverage Mutation

/*
AddCoverage persists a new coverage under an item.
*/
func (repository *PostgresRepository) AddCoverage(context context.Context, coverage *Coverage) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_add_coverage")
	}
	defer func() { _ = tx.Rollback(context) }()

	if err := insertCoverage(context, tx, coverage); err != nil {
		return err
	}
	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_add_coverage")
	}
	return nil
}

/*
FindCoverage retrieves a single coverage by UUID.
*/
func (repository *PostgresRepository) FindCoverage(context context.Context, id string) (*Coverage, error) {
	t := schema.PlanningCoverage
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`, coverageColumns(), t.Table, t.ID, t.DeletedAt)

	c, err := scanCoverage(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_coverage_by_id")
	}
	return c, nil
}

/*
UpdateCoverage modifies a coverage's fields and status.
*/
func (repository *PostgresRepository) UpdateCoverage(context context.Context, coverage *Coverage) error {
	t := schema.PlanningCoverage
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`, t.Table,
		t.Slugline, t.Note, t.ScheduledAt, t.Status, t.UpdatedAt,
		t.ID, t.DeletedAt,
		t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		coverage.ID, coverage.Slugline, coverage.Note, coverage.ScheduledAt, coverage.Status,
	).Scan(&coverage.UpdatedAt)

	return dberr.Wrap(err, "update_coverage")
}

/*
UpdateCoverageStatus moves a coverage's production status.
*/
func (repository *PostgresRepository) UpdateCoverageStatus(context context.Context, id string, status CoverageStatus) error {
	t := schema.PlanningCoverage
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1 AND %s IS NULL
	`, t.Table, t.Status, t.UpdatedAt, t.ID, t.DeletedAt)

	tag, err := repository.db.Exec(context, query, id, status)
	if err != nil {
		return dberr.Wrap(err, "update_coverage_status")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("coverage")
	}
	return nil
}
