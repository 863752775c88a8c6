// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package auth

import (
	stdctx "context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/newsdeskhq/planning-api/internal/platform/constants"
)

// sessionCacheTTL bounds how stale a cached session may be. Bulk revocations
// (password changes, account deactivation) hit only Postgres, so the cache
// must converge quickly.
const sessionCacheTTL = 5 * time.Minute

// CachedSessionRepository wraps a [SessionRepository] with a Redis read-through
// cache keyed by token hash. Refresh lookups happen on every token rotation,
// which makes them the hottest query in the auth path.
type CachedSessionRepository struct {
	inner  SessionRepository
	client *redis.Client
}

// NewCachedSessionRepository decorates the given store with Redis caching.
func NewCachedSessionRepository(inner SessionRepository, client *redis.Client) *CachedSessionRepository {
	return &CachedSessionRepository{inner: inner, client: client}
}

func sessionCacheKey(tokenHash string) string {
	return constants.RedisPrefixSession + tokenHash
}

/*
Create persists the session and primes the cache.
*/
func (repository *CachedSessionRepository) Create(context stdctx.Context, session *Session) error {
	if err := repository.inner.Create(context, session); err != nil {
		return err
	}

	if payload, err := json.Marshal(session); err == nil {
		_ = repository.client.Set(context, sessionCacheKey(session.TokenHash), payload, sessionCacheTTL).Err()
	}
	return nil
}

/*
FindByTokenHash serves from Redis when possible, falling back to the inner
store and backfilling on a miss.
*/
func (repository *CachedSessionRepository) FindByTokenHash(context stdctx.Context, tokenHash string) (*Session, error) {
	payload, err := repository.client.Get(context, sessionCacheKey(tokenHash)).Bytes()
	if err == nil {
		session := &Session{}
		if err := json.Unmarshal(payload, session); err == nil && !session.IsRevoked && session.ExpiresAt.After(time.Now()) {
			return session, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("redis_session_get_failed: %w", err)
	}

	session, err := repository.inner.FindByTokenHash(context, tokenHash)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(session); err == nil {
		_ = repository.client.Set(context, sessionCacheKey(tokenHash), payload, sessionCacheTTL).Err()
	}
	return session, nil
}

/*
Revoke invalidates the session in the inner store and drops its cache entry.
*/
func (repository *CachedSessionRepository) Revoke(context stdctx.Context, session *Session) error {
	if err := repository.inner.Revoke(context, session); err != nil {
		return err
	}

	_ = repository.client.Del(context, sessionCacheKey(session.TokenHash)).Err()
	return nil
}

/*
RevokeAll revokes every session for the user in the inner store. Cache
entries for those sessions age out within sessionCacheTTL.
*/
func (repository *CachedSessionRepository) RevokeAll(context stdctx.Context, userID string) error {
	return repository.inner.RevokeAll(context, userID)
}

/*
DeleteExpired delegates to the inner store; expired cache entries have
already lapsed their TTL.
*/
func (repository *CachedSessionRepository) DeleteExpired(context stdctx.Context) error {
	return repository.inner.DeleteExpired(context)
}
