package locks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const releaseLockScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end
`

var releaseScript = redis.NewScript(releaseLockScript)

// RedisLocker implements Locker with SETNX and an owner-checked Lua release.
type RedisLocker struct {
	client *redis.Client
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{client: client}
}

func (l *RedisLocker) TryLock(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	if l.client == nil {
		return false, errors.New("Redis client is not initialized")
	}
	return l.client.SetNX(ctx, key, value, ttl).Result()
}

func (l *RedisLocker) Unlock(ctx context.Context, key, value string) error {
	if l.client == nil {
		return errors.New("Redis client is not initialized")
	}
	result, err := releaseScript.Run(ctx, l.client, []string{key}, value).Int64()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if result == 0 {
		return ErrNotOwner
	}
	return nil
}
