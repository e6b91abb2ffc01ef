package deps

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/tryanzu/cartstore/modules/cart"
)

func IgniteRedis(container Deps) (Deps, error) {
	conf := container.Config()
	client := redis.NewClient(&redis.Options{
		Addr:     conf.UString("cart.redis.address", "localhost:6379"),
		Password: conf.UString("cart.redis.password", ""),
		DB:       conf.UInt("cart.redis.db", 0),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return container, err
	}

	container.RedisProvider = client
	container.BucketProvider = cart.RedisBucket{
		Client:    client,
		Namespace: conf.UString("cart.redis.namespace", ""),
	}
	return container, nil
}
