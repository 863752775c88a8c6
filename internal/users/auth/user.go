// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

/*
Package auth implements newsroom staff identity and session management.

It defines the core domain entities (User, Session) and the logic for
authentication, authorization, and account provisioning.

# Provisioning Model

There is no self-service registration: accounts are created by admins. A
deactivated account keeps its history but can no longer sign in.
*/
package auth

import (
	"time"

	"github.com/newsdeskhq/planning-api/internal/platform/sec"
)

// # Domain Entities

// User represents a newsroom staff account.
type User struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	DisplayName  string       `json:"display_name"`
	Desk         string       `json:"desk,omitempty"` // Home desk, e.g. "sports", "politics"
	Role         sec.UserRole `json:"role"`
	IsActive     bool         `json:"is_active"`
	LastLoginAt  *time.Time   `json:"last_login_at,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Session represents an active refresh-token session.
type Session struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	TokenHash  string    `json:"-"` // Hashed value of the refresh token. Omitted for security.
	DeviceName string    `json:"device_name,omitempty"`
	UserAgent  string    `json:"user_agent"`
	IPAddress  string    `json:"ip_address"`
	ExpiresAt  time.Time `json:"expires_at"`
	IsRevoked  bool      `json:"is_revoked"`
	CreatedAt  time.Time `json:"created_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the
// authentication domain.
const (
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldDisplayName     = "display_name"
	FieldDesk            = "desk"
	FieldRole            = "role"
	FieldLogin           = "login"
	FieldCurrentPassword = "current_password"
	FieldNewPassword     = "new_password"
	FieldAccessToken     = "access_token"
	FieldTokenType       = "token_type"
	FieldExpiresIn       = "expires_in"
	FieldUser            = "user"
	FieldMessage         = "message"
)

// # Token Sizing

const (
	// RefreshTokenLength is the byte length of the random secure token.
	RefreshTokenLength = 32
)
