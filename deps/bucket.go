package deps

import (
	"fmt"

	"github.com/tryanzu/cartstore/modules/cart"
)

// IgniteBucket opens the storage selected by cart.storage.
func IgniteBucket(container Deps) (Deps, error) {
	driver := container.Config().UString("cart.storage", "memory")
	log.Infof("Cart storage driver: %s", driver)

	switch driver {
	case "memory":
		container.BucketProvider = cart.NewMemoryBucket()
		return container, nil
	case "ledis":
		return IgniteLedisDB(container)
	case "redis":
		return IgniteRedis(container)
	case "bunt":
		return IgniteBuntDB(container)
	}

	return container, fmt.Errorf("unknown cart storage driver %q", driver)
}
