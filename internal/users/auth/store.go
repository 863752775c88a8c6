// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package auth

import (
	"context"
)

// # User Data Access

// UserRepository defines the data access contract for staff accounts.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Returns:
		  - *User: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByUsername returns the account with the given username.

		Returns:
		  - *User: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByUsername(context context.Context, username string) (*User, error)

	/*
		FindByEmail returns the account with the given email.

		Returns:
		  - *User: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		List returns every active staff account, ordered by display name.
	*/
	List(context context.Context) ([]*User, error)

	/*
		Create persists a brand-new staff account.
	*/
	Create(context context.Context, user *User) error

	/*
		UpdatePassword replaces only the user's password hash.
	*/
	UpdatePassword(context context.Context, userID, newHash string) error

	/*
		TouchLogin stamps the account's last successful sign-in time.
	*/
	TouchLogin(context context.Context, userID string) error

	/*
		SetActive toggles whether the account may sign in.
	*/
	SetActive(context context.Context, userID string, active bool) error
}

// # Session Data Access

// SessionRepository defines the data access contract for refresh-token
// sessions.
type SessionRepository interface {

	/*
		Create persists a new tracking session for an authenticated login.
	*/
	Create(context context.Context, session *Session) error

	/*
		FindByTokenHash returns the active session matching the given token
		hash. Revoked and expired sessions never match.

		Returns:
		  - *Session: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByTokenHash(context context.Context, tokenHash string) (*Session, error)

	/*
		Revoke marks the session as permanently invalidated.
	*/
	Revoke(context context.Context, session *Session) error

	/*
		RevokeAll revokes every active session belonging to the user.
	*/
	RevokeAll(context context.Context, userID string) error

	/*
		DeleteExpired physically removes sessions whose expiry is in the past.
	*/
	DeleteExpired(context context.Context) error
}
