package debounce

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "rollcall:swipe:"

// RedisGuard shares debounce state across instances using SET NX with a TTL.
type RedisGuard struct {
	client *redis.Client
}

func NewRedisGuard(client *redis.Client) *RedisGuard {
	return &RedisGuard{client: client}
}

func (g *RedisGuard) Allow(ctx context.Context, key string, window time.Duration) (bool, error) {
	if window <= 0 {
		return true, nil
	}
	return g.client.SetNX(ctx, keyPrefix+key, "1", window).Result()
}
