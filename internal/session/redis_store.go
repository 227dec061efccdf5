package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// sessionKey is the single fixed key the record lives under.
const sessionKey = "oldenfyre_session"

// RedisStore keeps the session record in Redis, for deployments where
// the console runs in more than one place and the operator expects the
// session to follow.
type RedisStore struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisStore(rdb *redis.Client, ctx context.Context) *RedisStore {
	return &RedisStore{rdb: rdb, ctx: ctx}
}

func (s *RedisStore) Load() (Record, error) {
	data, err := s.rdb.Get(s.ctx, sessionKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Record{}, ErrNoSession
		}
		return Record{}, fmt.Errorf("failed to read session key: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, ErrCorrupt
	}
	return rec, nil
}

func (s *RedisStore) Save(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode session record: %w", err)
	}
	if err := s.rdb.Set(s.ctx, sessionKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write session key: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear() error {
	if err := s.rdb.Del(s.ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("failed to delete session key: %w", err)
	}
	return nil
}
