// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/newsdeskhq/planning-api/internal/platform/apperr"
	"github.com/newsdeskhq/planning-api/internal/platform/database/schema"
	"github.com/newsdeskhq/planning-api/internal/platform/dberr"
)

// # User Store

// PostgresUserRepository implements [UserRepository] using pgx.
type PostgresUserRepository struct {
	db *pgxpool.Pool
}

// NewPostgresUserRepository constructs a PostgreSQL backed account store.
func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// userColumns is the shared SELECT column list.
func userColumns() string {
	t := schema.UserAccount
	return fmt.Sprintf(
		"%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Username, t.Email, t.Password, t.Role, t.IsActive,
		t.DisplayName, t.Desk, t.LastLoginAt, t.CreatedAt, t.UpdatedAt,
	)
}

func scanUser(row pgx.Row) (*User, error) {
	u := &User{}
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive,
		&u.DisplayName, &u.Desk, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

/*
FindByID retrieves an account by its primary key.
*/
func (repository *PostgresUserRepository) FindByID(context context.Context, id string) (*User, error) {
	t := schema.UserAccount
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`, userColumns(), t.Table, t.ID, t.DeletedAt)

	u, err := scanUser(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_user_by_id")
	}
	return u, nil
}

/*
FindByUsername retrieves an account by its unique username.
*/
func (repository *PostgresUserRepository) FindByUsername(context context.Context, username string) (*User, error) {
	t := schema.UserAccount
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`, userColumns(), t.Table, t.Username, t.DeletedAt)

	u, err := scanUser(repository.db.QueryRow(context, query, username))
	if err != nil {
		return nil, dberr.Wrap(err, "get_user_by_username")
	}
	return u, nil
}

/*
FindByEmail retrieves an account by its unique email.
*/
func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	t := schema.UserAccount
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`, userColumns(), t.Table, t.Email, t.DeletedAt)

	u, err := scanUser(repository.db.QueryRow(context, query, email))
	if err != nil {
		return nil, dberr.Wrap(err, "get_user_by_email")
	}
	return u, nil
}

/*
List returns every active account, ordered by display name.
*/
func (repository *PostgresUserRepository) List(context context.Context) ([]*User, error) {
	t := schema.UserAccount
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s IS NULL AND %s = TRUE
		ORDER BY %s ASC
	`, userColumns(), t.Table, t.DeletedAt, t.IsActive, t.DisplayName)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_user")
		}
		users = append(users, u)
	}

	return users, nil
}

/*
Create inserts a new staff account.
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	t := schema.UserAccount
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s, %s
	`, t.Table,
		t.ID, t.Username, t.Email, t.Password, t.Role, t.IsActive,
		t.DisplayName, t.Desk, t.CreatedAt, t.UpdatedAt,
		t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.Role,
		user.IsActive, user.DisplayName, user.Desk,
	).Scan(&user.CreatedAt, &user.UpdatedAt)

	return dberr.Wrap(err, "create_user")
}

/*
UpdatePassword replaces only the account's password hash.
*/
func (repository *PostgresUserRepository) UpdatePassword(context context.Context, userID, newHash string) error {
	t := schema.UserAccount
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1 AND %s IS NULL
	`, t.Table, t.Password, t.UpdatedAt, t.ID, t.DeletedAt)

	tag, err := repository.db.Exec(context, query, userID, newHash)
	if err != nil {
		return dberr.Wrap(err, "update_user_password")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("user")
	}
	return nil
}

/*
TouchLogin stamps the account's last successful sign-in time.
*/
func (repository *PostgresUserRepository) TouchLogin(context context.Context, userID string) error {
	t := schema.UserAccount
	query := fmt.Sprintf(`
		UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL
	`, t.Table, t.LastLoginAt, t.ID, t.DeletedAt)

	_, err := repository.db.Exec(context, query, userID)
	return dberr.Wrap(err, "touch_user_login")
}

/*
SetActive toggles whether the account may sign in.
*/
func (repository *PostgresUserRepository) SetActive(context context.Context, userID string, active bool) error {
	t := schema.UserAccount
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1 AND %s IS NULL
	`, t.Table, t.IsActive, t.UpdatedAt, t.ID, t.DeletedAt)

	tag, err := repository.db.Exec(context, query, userID, active)
	if err != nil {
		return dberr.Wrap(err, "set_user_active")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("user")
	}
	return nil
}

// # Session Store

// PostgresSessionRepository implements [SessionRepository] using pgx.
type PostgresSessionRepository struct {
	db *pgxpool.Pool
}

// NewPostgresSessionRepository constructs a PostgreSQL backed session store.
func NewPostgresSessionRepository(db *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{db: db}
}

/*
Create inserts a new refresh-token session.
*/
func (repository *PostgresSessionRepository) Create(context context.Context, session *Session) error {
	t := schema.UserSession
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7, NOW())
		RETURNING %s
	`, t.Table,
		t.ID, t.UserID, t.TokenHash, t.DeviceName, t.IPAddress, t.UserAgent,
		t.IsRevoked, t.ExpiresAt, t.CreatedAt,
		t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		session.ID, session.UserID, session.TokenHash, session.DeviceName,
		session.IPAddress, session.UserAgent, session.ExpiresAt,
	).Scan(&session.CreatedAt)

	return dberr.Wrap(err, "create_session")
}

/*
FindByTokenHash retrieves the live session matching the token hash. Revoked
and expired sessions never match.
*/
func (repository *PostgresSessionRepository) FindByTokenHash(context context.Context, tokenHash string) (*Session, error) {
	t := schema.UserSession
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = FALSE AND %s > NOW()
	`, t.ID, t.UserID, t.TokenHash, t.DeviceName, t.IPAddress, t.UserAgent,
		t.IsRevoked, t.ExpiresAt, t.CreatedAt,
		t.Table,
		t.TokenHash, t.IsRevoked, t.ExpiresAt,
	)

	s := &Session{}
	err := repository.db.QueryRow(context, query, tokenHash).Scan(
		&s.ID, &s.UserID, &s.TokenHash, &s.DeviceName, &s.IPAddress,
		&s.UserAgent, &s.IsRevoked, &s.ExpiresAt, &s.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_session_by_token")
	}
	return s, nil
}

/*
Revoke marks the session as permanently invalidated.
*/
func (repository *PostgresSessionRepository) Revoke(context context.Context, session *Session) error {
	t := schema.UserSession
	query := fmt.Sprintf(`
		UPDATE %s SET %s = TRUE, %s = NOW() WHERE %s = $1
	`, t.Table, t.IsRevoked, t.RevokedAt, t.ID)

	_, err := repository.db.Exec(context, query, session.ID)
	return dberr.Wrap(err, "revoke_session")
}

/*
RevokeAll revokes every active session belonging to the user.
*/
func (repository *PostgresSessionRepository) RevokeAll(context context.Context, userID string) error {
	t := schema.UserSession
	query := fmt.Sprintf(`
		UPDATE %s SET %s = TRUE, %s = NOW() WHERE %s = $1 AND %s = FALSE
	`, t.Table, t.IsRevoked, t.RevokedAt, t.UserID, t.IsRevoked)

	_, err := repository.db.Exec(context, query, userID)
	return dberr.Wrap(err, "revoke_all_sessions")
}

/*
DeleteExpired physically removes sessions past their expiry.
*/
func (repository *PostgresSessionRepository) DeleteExpired(context context.Context) error {
	t := schema.UserSession
	query := fmt.Sprintf(`
		DELETE FROM %s WHERE %s < NOW()
	`, t.Table, t.ExpiresAt)

	_, err := repository.db.Exec(context, query)
	return dberr.Wrap(err, "delete_expired_sessions")
}
