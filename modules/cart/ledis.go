package cart

import (
	"github.com/siddontang/ledisdb/ledis"
)

// LedisBucket stores snapshots in an embedded ledisdb database.
type LedisBucket struct {
	DB *ledis.DB
}

func (lb LedisBucket) Get(key string) (string, bool, error) {
	k := []byte(key)
	n, err := lb.DB.Exists(k)
	if err != nil || n == 0 {
		return "", false, err
	}

	value, err := lb.DB.Get(k)
	if err != nil {
		return "", false, err
	}

	return string(value), true, nil
}

func (lb LedisBucket) Set(key, value string) error {
	return lb.DB.Set([]byte(key), []byte(value))
}
