package cart

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Key under which the whole cart snapshot is stored.
const Key = "cartState"

var (
	ErrMalformedSnapshot = errors.New("malformed cart snapshot")
	ErrUnknownAction     = errors.New("unknown cart action")
	ErrNonFinite         = errors.New("cart amounts must be finite numbers")
)

// CartBucket is the key-value medium the cart is mirrored to.
type CartBucket interface {

	// Get the stored value. found is false when the key was never set.
	Get(key string) (value string, found bool, err error)

	// Set overwrites the stored value.
	Set(key, value string) error
}

// Encode a state into its snapshot representation.
func Encode(s State) (string, error) {
	if !s.Finite() {
		return "", ErrNonFinite
	}
	if s.CartItems == nil {
		s.CartItems = []CartItem{}
	}
	encoded, err := json.Marshal(s)
	if err != nil {
		return "", errors.Wrap(err, "encode cart snapshot")
	}
	return string(encoded), nil
}

// Decode a snapshot. No schema validation nor migration takes place: fields
// unknown to State are ignored and missing ones stay zero.
func Decode(snapshot string) (State, error) {
	var s State
	if err := json.Unmarshal([]byte(snapshot), &s); err != nil {
		return State{}, errors.Wrapf(ErrMalformedSnapshot, "%v", err)
	}
	return s, nil
}

// Load the snapshot stored in bucket or the initial state when there is none.
func Load(bucket CartBucket) (State, error) {
	stored, found, err := bucket.Get(Key)
	if err != nil {
		return State{}, errors.Wrap(err, "read cart snapshot")
	}
	if !found {
		return Initial(), nil
	}
	return Decode(stored)
}

// Save the full state into bucket.
func Save(bucket CartBucket, s State) error {
	encoded, err := Encode(s)
	if err != nil {
		return err
	}
	if err := bucket.Set(Key, encoded); err != nil {
		return errors.Wrap(err, "write cart snapshot")
	}
	return nil
}
