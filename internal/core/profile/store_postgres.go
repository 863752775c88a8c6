// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package profile

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/newsdeskhq/planning-api/internal/platform/apperr"
	"github.com/newsdeskhq/planning-api/internal/platform/database/schema"
	"github.com/newsdeskhq/planning-api/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed profile store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// profileColumns is the shared SELECT column list, default profile first.
func profileColumns() string {
	t := schema.CoreContentProfile
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Name, t.Slug, t.EditorConfig, t.MultilingualConfig,
		t.IsDefault, t.CreatedAt, t.UpdatedAt,
	)
}

// # Profile Retrieval

/*
List returns all active profiles, the newsroom default first.
*/
func (repository *PostgresRepository) List(context context.Context) ([]*Profile, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s IS NULL
		ORDER BY %s DESC, %s ASC
	`, profileColumns(), schema.CoreContentProfile.Table,
		schema.CoreContentProfile.DeletedAt,
		schema.CoreContentProfile.IsDefault, schema.CoreContentProfile.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_profiles")
	}
	defer rows.Close()

	var profiles []*Profile
	for rows.Next() {
		p := &Profile{}
		err := rows.Scan(
			&p.ID, &p.Name, &p.Slug, &p.Editor, &p.Multilingual,
			&p.IsDefault, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_profile")
		}
		profiles = append(profiles, p)
	}

	return profiles, nil
}

/*
FindByID retrieves a single profile record by its primary key.
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Profile, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`, profileColumns(), schema.CoreContentProfile.Table,
		schema.CoreContentProfile.ID, schema.CoreContentProfile.DeletedAt,
	)

	p := &Profile{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&p.ID, &p.Name, &p.Slug, &p.Editor, &p.Multilingual,
		&p.IsDefault, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_profile_by_id")
	}
	return p, nil
}

/*
FindDefault retrieves the newsroom default profile.
*/
func (repository *PostgresRepository) FindDefault(context context.Context) (*Profile, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = TRUE AND %s IS NULL
		LIMIT 1
	`, profileColumns(), schema.CoreContentProfile.Table,
		schema.CoreContentProfile.IsDefault, schema.CoreContentProfile.DeletedAt,
	)

	p := &Profile{}
	err := repository.db.QueryRow(context, query).Scan(
		&p.ID, &p.Name, &p.Slug, &p.Editor, &p.Multilingual,
		&p.IsDefault, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_default_profile")
	}
	return p, nil
}

// # Profile Mutation

/*
Create inserts a new profile record. The settings blocks land in JSONB.
*/
func (repository *PostgresRepository) Create(context context.Context, profile *Profile) error {
	t := schema.CoreContentProfile
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s
	`, t.Table, t.ID, t.Name, t.Slug, t.EditorConfig, t.MultilingualConfig,
		t.IsDefault, t.CreatedAt, t.UpdatedAt,
		t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		profile.ID, profile.Name, profile.Slug, profile.Editor, profile.Multilingual, profile.IsDefault,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)

	return dberr.Wrap(err, "create_profile")
}

/*
Update modifies profile metadata and settings blocks.
*/
func (repository *PostgresRepository) Update(context context.Context, profile *Profile) error {
	t := schema.CoreContentProfile
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`, t.Table, t.Name, t.EditorConfig, t.MultilingualConfig, t.UpdatedAt,
		t.ID, t.DeletedAt,
		t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		profile.ID, profile.Name, profile.Editor, profile.Multilingual,
	).Scan(&profile.UpdatedAt)

	return dberr.Wrap(err, "update_profile")
}

/*
SoftDelete marks a profile as deleted.
*/
func (repository *PostgresRepository) SoftDelete(context context.Context, id string) error {
	t := schema.CoreContentProfile
	query := fmt.Sprintf(`
		UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL
	`, t.Table, t.DeletedAt, t.ID, t.DeletedAt)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_profile")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("profile")
	}
	return nil
}
