package deps

import (
	lediscfg "github.com/siddontang/ledisdb/config"
	"github.com/siddontang/ledisdb/ledis"
	"github.com/tryanzu/cartstore/modules/cart"
)

func IgniteLedisDB(container Deps) (Deps, error) {
	conf := lediscfg.NewConfigDefault()
	conf.DataDir = container.Config().UString("cart.ledis.path", "./data/ledis")

	conn, err := ledis.Open(conf)
	if err != nil {
		return container, err
	}

	db, err := conn.Select(0)
	if err != nil {
		conn.Close()
		return container, err
	}

	container.LedisProvider = conn
	container.BucketProvider = cart.LedisBucket{DB: db}
	return container, nil
}
