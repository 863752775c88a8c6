// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package location

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/newsdeskhq/planning-api/internal/platform/apperr"
	"github.com/newsdeskhq/planning-api/internal/platform/database/schema"
	"github.com/newsdeskhq/planning-api/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed venue store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Location Retrieval

/*
List returns a filtered and paginated list of venues.
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Location, int, error) {
	t := schema.CoreLocation

	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT
			%s, %s, %s, %s, %s, %s, %s, %s, %s, %s,
			COUNT(*) OVER() as total
		FROM %s
		WHERE %s IS NULL
	`, t.ID, t.Name, t.Address, t.City, t.Country, t.Latitude, t.Longitude,
		t.TZ, t.CreatedAt, t.UpdatedAt,
		t.Table, t.DeletedAt,
	))

	args := []any{}
	argID := 1

	if filter.Query != "" {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND (%s ILIKE $%d OR %s ILIKE $%d)",
			t.Name, argID, t.City, argID,
		))
		args = append(args, "%"+filter.Query+"%")
		argID++
	}

	if filter.Country != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", t.Country, argID))
		args = append(args, filter.Country)
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s ASC LIMIT $%d OFFSET $%d", t.Name, argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_locations")
	}
	defer rows.Close()

	var locations []*Location
	var total int
	for rows.Next() {
		l := &Location{}
		err := rows.Scan(
			&l.ID, &l.Name, &l.Address, &l.City, &l.Country, &l.Latitude, &l.Longitude,
			&l.TZ, &l.CreatedAt, &l.UpdatedAt, &total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_location")
		}
		locations = append(locations, l)
	}

	return locations, total, nil
}

/*
FindByID retrieves a single venue record by its primary key.
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Location, error) {
	t := schema.CoreLocation
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`, t.ID, t.Name, t.Address, t.City, t.Country, t.Latitude, t.Longitude,
		t.TZ, t.CreatedAt, t.UpdatedAt,
		t.Table, t.ID, t.DeletedAt,
	)

	l := &Location{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&l.ID, &l.Name, &l.Address, &l.City, &l.Country, &l.Latitude, &l.Longitude,
		&l.TZ, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_location_by_id")
	}
	return l, nil
}

// # Location Mutation

/*
Create inserts a new venue record.
*/
func (repository *PostgresRepository) Create(context context.Context, location *Location) error {
	t := schema.CoreLocation
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s, %s
	`, t.Table, t.ID, t.Name, t.Address, t.City, t.Country, t.Latitude,
		t.Longitude, t.TZ, t.CreatedAt, t.UpdatedAt,
		t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		location.ID, location.Name, location.Address, location.City,
		location.Country, location.Latitude, location.Longitude, location.TZ,
	).Scan(&location.CreatedAt, &location.UpdatedAt)

	return dberr.Wrap(err, "create_location")
}

/*
Update modifies venue fields.
*/
func (repository *PostgresRepository) Update(context context.Context, location *Location) error {
	t := schema.CoreLocation
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`, t.Table,
		t.Name, t.Address, t.City, t.Country, t.Latitude, t.Longitude, t.TZ, t.UpdatedAt,
		t.ID, t.DeletedAt,
		t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		location.ID, location.Name, location.Address, location.City,
		location.Country, location.Latitude, location.Longitude, location.TZ,
	).Scan(&location.UpdatedAt)

	return dberr.Wrap(err, "update_location")
}

/*
SoftDelete marks a venue as deleted.
*/
func (repository *PostgresRepository) SoftDelete(context context.Context, id string) error {
	t := schema.CoreLocation
	query := fmt.Sprintf(`
		UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL
	`, t.Table, t.DeletedAt, t.ID, t.DeletedAt)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_location")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("location")
	}
	return nil
}
