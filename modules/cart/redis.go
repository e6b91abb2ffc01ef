package cart

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisBucket stores snapshots in redis. Namespace, when set, prefixes every
// key so several carts can share one server.
type RedisBucket struct {
	Client    *redis.Client
	Namespace string
	Timeout   time.Duration
}

func (rb RedisBucket) Get(key string) (string, bool, error) {
	ctx, cancel := rb.context()
	defer cancel()

	value, err := rb.Client.Get(ctx, rb.key(key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return value, true, nil
}

func (rb RedisBucket) Set(key, value string) error {
	ctx, cancel := rb.context()
	defer cancel()

	return rb.Client.Set(ctx, rb.key(key), value, 0).Err()
}

func (rb RedisBucket) key(key string) string {
	if rb.Namespace == "" {
		return key
	}
	return rb.Namespace + ":" + key
}

func (rb RedisBucket) context() (context.Context, context.CancelFunc) {
	timeout := rb.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}
