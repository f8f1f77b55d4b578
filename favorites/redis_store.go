package favorites

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists favorites lists in redis.
type RedisStore struct {
	Conn *redis.Client
}

func (s RedisStore) Load(ctx context.Context, key string) (string, error) {
	val, err := s.Conn.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (s RedisStore) Save(ctx context.Context, key, value string) error {
	return s.Conn.Set(ctx, key, value, 0).Err()
}
