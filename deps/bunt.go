package deps

import (
	"os"
	"path/filepath"

	"github.com/tidwall/buntdb"
	"github.com/tryanzu/cartstore/modules/cart"
)

func IgniteBuntDB(container Deps) (Deps, error) {
	path := container.Config().UString("cart.bunt.path", "./data/cart.db")
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return container, err
		}
	}

	db, err := buntdb.Open(path)
	if err != nil {
		return container, err
	}

	container.BuntProvider = db
	container.BucketProvider = cart.BuntBucket{DB: db}
	return container, nil
}
