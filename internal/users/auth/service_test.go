// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsdeskhq/planning-api/internal/platform/apperr"
	"github.com/newsdeskhq/planning-api/internal/platform/sec"
)

// # Test Doubles

type memoryUserRepository struct {
	users map[string]*User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[string]*User)}
}

func (m *memoryUserRepository) FindByID(_ context.Context, id string) (*User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, apperr.NotFound("user")
	}
	copied := *u
	return &copied, nil
}

func (m *memoryUserRepository) FindByUsername(_ context.Context, username string) (*User, error) {
	for _, u := range m.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("user")
}

func (m *memoryUserRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("user")
}

func (m *memoryUserRepository) List(_ context.Context) ([]*User, error) {
	var out []*User
	for _, u := range m.users {
		if u.IsActive {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memoryUserRepository) Create(_ context.Context, user *User) error {
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *memoryUserRepository) UpdatePassword(_ context.Context, userID, newHash string) error {
	u, ok := m.users[userID]
	if !ok {
		return apperr.NotFound("user")
	}
	u.PasswordHash = newHash
	return nil
}

func (m *memoryUserRepository) TouchLogin(_ context.Context, userID string) error {
	return nil
}

func (m *memoryUserRepository) SetActive(_ context.Context, userID string, active bool) error {
	u, ok := m.users[userID]
	if !ok {
		return apperr.NotFound("user")
	}
	u.IsActive = active
	return nil
}

type memorySessionRepository struct {
	sessions map[string]*Session // keyed by token hash
}

func newMemorySessionRepository() *memorySessionRepository {
	return &memorySessionRepository{sessions: make(map[string]*Session)}
}

func (m *memorySessionRepository) Create(_ context.Context, session *Session) error {
	copied := *session
	m.sessions[session.TokenHash] = &copied
	return nil
}

func (m *memorySessionRepository) FindByTokenHash(_ context.Context, tokenHash string) (*Session, error) {
	s, ok := m.sessions[tokenHash]
	if !ok || s.IsRevoked || s.ExpiresAt.Before(time.Now()) {
		return nil, apperr.NotFound("session")
	}
	copied := *s
	return &copied, nil
}

func (m *memorySessionRepository) Revoke(_ context.Context, session *Session) error {
	if s, ok := m.sessions[session.TokenHash]; ok {
		s.IsRevoked = true
	}
	return nil
}

func (m *memorySessionRepository) RevokeAll(_ context.Context, userID string) error {
	for _, s := range m.sessions {
		if s.UserID == userID {
			s.IsRevoked = true
		}
	}
	return nil
}

func (m *memorySessionRepository) DeleteExpired(_ context.Context) error {
	return nil
}

// staticTokens signs tokens without touching key material.
type staticTokens struct{}

func (staticTokens) GenerateAccessToken(userID, username, role string, _ time.Duration) (string, error) {
	return "token-for-" + username, nil
}

func newTestService() (*Service, *memoryUserRepository, *memorySessionRepository) {
	users := newMemoryUserRepository()
	sessions := newMemorySessionRepository()
	return NewService(users, sessions, staticTokens{}), users, sessions
}

func provision(t *testing.T, service *Service) *User {
	t.Helper()
	user, err := service.CreateUser(context.Background(), CreateUserInput{
		Username:    "mkaplan",
		Email:       "m.kaplan@newsdeskhq.com",
		Password:    "correct-horse-battery",
		DisplayName: "M. Kaplan",
		Desk:        "politics",
		Role:        sec.RoleProducer,
	})
	require.NoError(t, err)
	return user
}

// # Provisioning

/*
TestService_CreateUser verifies accounts are created active with a hashed
password and duplicate identities are rejected.
*/
func TestService_CreateUser(t *testing.T) {
	service, users, _ := newTestService()

	user := provision(t, service)

	assert.NotEmpty(t, user.ID)
	assert.True(t, user.IsActive)
	assert.Equal(t, sec.RoleProducer, user.Role)
	assert.NotEqual(t, "correct-horse-battery", users.users[user.ID].PasswordHash)

	_, err := service.CreateUser(context.Background(), CreateUserInput{
		Username: "mkaplan",
		Email:    "other@newsdeskhq.com",
		Password: "irrelevant-password",
	})
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "CONFLICT", appError.Code)
}

/*
TestService_CreateUser_UnknownRole verifies an unrecognized role falls back
to journalist.
*/
func TestService_CreateUser_UnknownRole(t *testing.T) {
	service, _, _ := newTestService()

	user, err := service.CreateUser(context.Background(), CreateUserInput{
		Username: "intern",
		Email:    "intern@newsdeskhq.com",
		Password: "a-long-enough-password",
		Role:     sec.UserRole("superuser"),
	})
	require.NoError(t, err)

	assert.Equal(t, sec.RoleJournalist, user.Role)
}

// # Authentication

/*
TestService_Login verifies valid credentials yield a token pair and a
tracked session, and bad credentials share one generic error.
*/
func TestService_Login(t *testing.T) {
	service, _, sessions := newTestService()
	provision(t, service)

	session, err := service.Login(context.Background(), LoginInput{
		Login:    "mkaplan",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	assert.Equal(t, "token-for-mkaplan", session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.Len(t, sessions.sessions, 1)

	_, err = service.Login(context.Background(), LoginInput{
		Login:    "mkaplan",
		Password: "wrong-password",
	})
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "UNAUTHORIZED", appError.Code)

	_, err = service.Login(context.Background(), LoginInput{
		Login:    "nobody",
		Password: "wrong-password",
	})
	appError = apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "UNAUTHORIZED", appError.Code)
}

/*
TestService_Login_Deactivated verifies a deactivated account cannot sign in.
*/
func TestService_Login_Deactivated(t *testing.T) {
	service, _, _ := newTestService()
	user := provision(t, service)

	require.NoError(t, service.DeactivateUser(context.Background(), user.ID))

	_, err := service.Login(context.Background(), LoginInput{
		Login:    "mkaplan",
		Password: "correct-horse-battery",
	})
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "UNAUTHORIZED", appError.Code)
}

// # Session Rotation

/*
TestService_RefreshSession verifies token rotation revokes the old session
and a replayed refresh token is rejected.
*/
func TestService_RefreshSession(t *testing.T) {
	service, _, _ := newTestService()
	provision(t, service)

	session, err := service.Login(context.Background(), LoginInput{
		Login:    "mkaplan",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	rotated, err := service.RefreshSession(context.Background(), session.RefreshToken, "", "")
	require.NoError(t, err)
	assert.NotEqual(t, session.RefreshToken, rotated.RefreshToken)

	// Replaying the original token must fail: it was revoked by the rotation.
	_, err = service.RefreshSession(context.Background(), session.RefreshToken, "", "")
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "UNAUTHORIZED", appError.Code)
}

/*
TestService_Logout verifies logout revokes the session and is idempotent.
*/
func TestService_Logout(t *testing.T) {
	service, _, _ := newTestService()
	provision(t, service)

	session, err := service.Login(context.Background(), LoginInput{
		Login:    "mkaplan",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), session.RefreshToken))

	_, err = service.RefreshSession(context.Background(), session.RefreshToken, "", "")
	require.NotNil(t, apperr.As(err))

	// A second logout with the same token is still a clean no-op.
	require.NoError(t, service.Logout(context.Background(), session.RefreshToken))
}

// # Password Management

/*
TestService_ChangePassword verifies the current password gates the change
and every session is revoked afterwards.
*/
func TestService_ChangePassword(t *testing.T) {
	service, _, _ := newTestService()
	user := provision(t, service)

	session, err := service.Login(context.Background(), LoginInput{
		Login:    "mkaplan",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	err = service.ChangePassword(context.Background(), user.ID, "wrong-password", "a-brand-new-password")
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "UNAUTHORIZED", appError.Code)

	require.NoError(t, service.ChangePassword(context.Background(), user.ID, "correct-horse-battery", "a-brand-new-password"))

	// Old sessions are revoked; the new password signs in.
	_, err = service.RefreshSession(context.Background(), session.RefreshToken, "", "")
	require.NotNil(t, apperr.As(err))

	_, err = service.Login(context.Background(), LoginInput{
		Login:    "mkaplan",
		Password: "a-brand-new-password",
	})
	require.NoError(t, err)
}
