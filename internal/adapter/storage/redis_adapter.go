package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const tokenKeyPrefix = "token:"

// RedisAdapter stores bearer tokens. Expiry is delegated to Redis TTLs, so a
// token disappears on its own when it ages out.
type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func (r *RedisAdapter) SaveToken(ctx context.Context, token, userID string, ttl time.Duration) (bool, error) {
	return r.client.SetNX(ctx, tokenKeyPrefix+token, userID, ttl).Result()
}

func (r *RedisAdapter) GetUserID(ctx context.Context, token string) (string, error) {
	val, err := r.client.Get(ctx, tokenKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *RedisAdapter) DeleteToken(ctx context.Context, token string) error {
	return r.client.Del(ctx, tokenKeyPrefix+token).Err()
}
