// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/newsdeskhq/planning-api/internal/platform/apperr"
	"github.com/newsdeskhq/planning-api/internal/platform/constants"
	"github.com/newsdeskhq/planning-api/internal/schedule"
)

// RedisSessionRepository implements [SessionRepository] using Redis.
//
// Edit sessions are written on every keystroke-level change, so they live in
// Redis rather than PostgreSQL. The TTL is refreshed on each save; an
// abandoned session simply expires.
type RedisSessionRepository struct {
	client *redis.Client
}

// NewRedisSessionRepository creates a new Redis-backed edit session store.
func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

// sessionKey builds the namespaced Redis key for an event's edit session.
func sessionKey(eventID string) string {
	return constants.RedisPrefixEditSession + eventID
}

/*
Save stores the editor snapshot for an event, refreshing the TTL.

Parameters:
  - context: context.Context
  - eventID: string
  - state: schedule.EditorState

Returns:
  - error: Serialization or execution errors
*/
func (repository *RedisSessionRepository) Save(context context.Context, eventID string, state schedule.EditorState) error {

	// Serialize the snapshot
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("redis_edit_session_marshal_failed: %w", err)
	}

	// Set the snapshot with a refreshed TTL
	if err := repository.client.Set(context, sessionKey(eventID), payload, constants.EditSessionTTL).Err(); err != nil {
		return fmt.Errorf("redis_edit_session_set_failed: %w", err)
	}

	return nil
}

/*
Find retrieves the editor snapshot for an event.

Description: Returns apperr.NotFound if the session is absent or expired.

Parameters:
  - context: context.Context
  - eventID: string

Returns:
  - *schedule.EditorState: The persisted snapshot
  - error: apperr.NotFound or connectivity errors
*/
func (repository *RedisSessionRepository) Find(context context.Context, eventID string) (*schedule.EditorState, error) {

	// Get the snapshot from Redis
	payload, err := repository.client.Get(context, sessionKey(eventID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFound("edit session")
		}
		return nil, fmt.Errorf("redis_edit_session_get_failed: %w", err)
	}

	// Deserialize the snapshot
	var state schedule.EditorState
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, fmt.Errorf("redis_edit_session_unmarshal_failed: %w", err)
	}

	return &state, nil
}

/*
Delete discards the editor snapshot for an event.

Parameters:
  - context: context.Context
  - eventID: string

Returns:
  - error: Deletion failures
*/
func (repository *RedisSessionRepository) Delete(context context.Context, eventID string) error {
	if err := repository.client.Del(context, sessionKey(eventID)).Err(); err != nil {
		return fmt.Errorf("redis_edit_session_delete_failed: %w", err)
	}
	return nil
}
