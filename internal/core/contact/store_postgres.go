// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package contact

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

// NewPostgresRepository constructs a PostgreSQL backed contact store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Contact Retrieval

/*
List returns a filtered and paginated slice of the directory.

Description: Uses ILIKE against name and organisation, COUNT(*) OVER() for
total metadata.
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Contact, int, error) {
	t := schema.CoreContact

	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT
			%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s,
			COUNT(*) OVER() as total
		FROM %s
		WHERE %s IS NULL
	`, t.ID, t.FirstName, t.LastName, t.Organisation, t.JobTitle, t.Email,
		t.Phone, t.Notes, t.IsPublic, t.CreatedAt, t.UpdatedAt,
		t.Table, t.DeletedAt,
	))

	args := []any{}
	argID := 1

	if filter.Query != "" {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND (%s ILIKE $%d OR %s ILIKE $%d OR %s ILIKE $%d)",
			t.FirstName, argID, t.LastName, argID, t.Organisation, argID,
		))
		args = append(args, "%"+filter.Query+"%")
		argID++
	}

	if filter.PublicOnly {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = TRUE", t.IsPublic))
	}

	queryBuilder.WriteString(fmt.Sprintf(
		" ORDER BY %s ASC, %s ASC LIMIT $%d OFFSET $%d",
		t.LastName, t.FirstName, argID, argID+1,
	))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_contacts")
	}
	defer rows.Close()

	var contacts []*Contact
	var total int
	for rows.Next() {
		c := &Contact{}
		err := rows.Scan(
			&c.ID, &c.FirstName, &c.LastName, &c.Organisation, &c.JobTitle, &c.Email,
			&c.Phone, &c.Notes, &c.IsPublic, &c.CreatedAt, &c.UpdatedAt, &total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_contact")
		}
		contacts = append(contacts, c)
	}

	return contacts, total, nil
}

/*
FindByID retrieves a single contact record by its primary key.
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Contact, error) {
	t := schema.CoreContact
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`, t.ID, t.FirstName, t.LastName, t.Organisation, t.JobTitle, t.Email,
		t.Phone, t.Notes, t.IsPublic, t.CreatedAt, t.UpdatedAt,
		t.Table, t.ID, t.DeletedAt,
	)

	c := &Contact{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Organisation, &c.JobTitle, &c.Email,
		&c.Phone, &c.Notes, &c.IsPublic, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_contact_by_id")
	}
	return c, nil
}

// # Contact Mutation

/*
Create inserts a new contact record.
*/
func (repository *PostgresRepository) Create(context context.Context, contact *Contact) error {
	t := schema.CoreContact
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING %s, %s
	`, t.Table, t.ID, t.FirstName, t.LastName, t.Organisation, t.JobTitle,
		t.Email, t.Phone, t.Notes, t.IsPublic, t.CreatedAt, t.UpdatedAt,
		t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		contact.ID, contact.FirstName, contact.LastName, contact.Organisation,
		contact.JobTitle, contact.Email, contact.Phone, contact.Notes, contact.IsPublic,
	).Scan(&contact.CreatedAt, &contact.UpdatedAt)

	return dberr.Wrap(err, "create_contact")
}

/*
Update modifies contact fields.
*/
func (repository *PostgresRepository) Update(context context.Context, contact *Contact) error {
	t := schema.CoreContact
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`, t.Table,
		t.FirstName, t.LastName, t.Organisation, t.JobTitle, t.Email, t.Phone,
		t.Notes, t.IsPublic, t.UpdatedAt,
		t.ID, t.DeletedAt,
		t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		contact.ID, contact.FirstName, contact.LastName, contact.Organisation,
		contact.JobTitle, contact.Email, contact.Phone, contact.Notes, contact.IsPublic,
	).Scan(&contact.UpdatedAt)

	return dberr.Wrap(err, "update_contact")
}

/*
SoftDelete marks a contact as deleted.
*/
func (repository *PostgresRepository) SoftDelete(context context.Context, id string) error {
	t := schema.CoreContact
	query := fmt.Sprintf(`
		UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL
	`, t.Table, t.DeletedAt, t.ID, t.DeletedAt)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_contact")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("contact")
	}
	return nil
}
