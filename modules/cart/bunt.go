package cart

import (
	"github.com/tidwall/buntdb"
)

// BuntBucket stores snapshots in a buntdb file (or ":memory:").
type BuntBucket struct {
	DB *buntdb.DB
}

func (bb BuntBucket) Get(key string) (value string, found bool, err error) {
	err = bb.DB.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(key)
		if err == buntdb.ErrNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		value, found = v, true
		return nil
	})
	return
}

func (bb BuntBucket) Set(key, value string) error {
	return bb.DB.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(key, value, nil)
		return err
	})
}
