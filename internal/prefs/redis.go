package prefs

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps preferences under prefix-qualified keys so several
// boards can share one Redis.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) LoadFinishScore(ctx context.Context) (int, error) {
	raw, err := s.client.Get(ctx, s.prefix+finishScoreKey).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return decodeScore(raw)
}

func (s *RedisStore) SaveFinishScore(ctx context.Context, score int) error {
	return s.client.Set(ctx, s.prefix+finishScoreKey, score, 0).Err()
}
