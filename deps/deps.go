package deps

import (
	"github.com/go-redis/redis/v8"
	"github.com/olebedev/config"
	"github.com/op/go-logging"
	"github.com/siddontang/ledisdb/ledis"
	"github.com/tidwall/buntdb"
	"github.com/tryanzu/cartstore/modules/cart"
)

type Deps struct {
	ConfigProvider *config.Config
	LoggerProvider *logging.Logger
	LedisProvider  *ledis.Ledis
	RedisProvider  *redis.Client
	BuntProvider   *buntdb.DB
	BucketProvider cart.CartBucket
}

func (d Deps) Config() *config.Config {
	return d.ConfigProvider
}

func (d Deps) Log() *logging.Logger {
	return d.LoggerProvider
}

// Bucket where carts booted outside of an http session are mirrored.
func (d Deps) Bucket() cart.CartBucket {
	return d.BucketProvider
}

// Close every storage connection opened by the ignitors.
func (d Deps) Close() {
	if d.LedisProvider != nil {
		d.LedisProvider.Close()
	}
	if d.RedisProvider != nil {
		if err := d.RedisProvider.Close(); err != nil {
			log.Error(err)
		}
	}
	if d.BuntProvider != nil {
		if err := d.BuntProvider.Close(); err != nil {
			log.Error(err)
		}
	}
}
