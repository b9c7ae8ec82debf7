package mem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "auth:session:"

// RedisSessions stores sessions as JSON strings with a redis TTL, so expiry
// needs no sweeping on our side.
type RedisSessions struct {
	conn *redis.Client
}

func NewRedisSessions(conn *redis.Client) *RedisSessions {
	return &RedisSessions{conn: conn}
}

func (s *RedisSessions) Save(ctx context.Context, sess Session, ttl time.Duration) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := s.conn.Set(ctx, sessionKeyPrefix+sess.ID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

func (s *RedisSessions) Get(ctx context.Context, id string) (*Session, error) {
	raw, err := s.conn.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

func (s *RedisSessions) Delete(ctx context.Context, id string) error {
	if _, err := s.conn.Del(ctx, sessionKeyPrefix+id).Result(); err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}
	return nil
}
