package cart

import (
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("cart")

// Cart keeps the current state in memory and mirrors it to storage after
// every mutation. It is not safe for concurrent use.
type Cart struct {
	state   State
	storage CartBucket
}

type transition func(State) State

// Boot hydrates a cart from storage. A stored snapshot that cannot be decoded
// is returned as an error.
func Boot(storage CartBucket) (*Cart, error) {
	restored, err := Load(storage)
	if err != nil {
		return nil, err
	}

	c := &Cart{
		state:   restored,
		storage: storage,
	}

	return c, nil
}

// State returns the current cart state.
func (module *Cart) State() State {
	s := module.state
	s.CartItems = s.items()
	return s
}

// Add an item or replace the line with the same product id.
func (module *Cart) Add(item CartItem) error {
	return module.apply(func(s State) State {
		return AddToCart(s, item)
	})
}

// Remove every line of the given product.
func (module *Cart) Remove(productID string) error {
	return module.apply(func(s State) State {
		return RemoveCartItem(s, productID)
	})
}

func (module *Cart) CalculatePrice() error {
	return module.apply(CalculatePrice)
}

func (module *Cart) ApplyDiscount(amount float64) error {
	return module.apply(func(s State) State {
		return DiscountApplied(s, amount)
	})
}

func (module *Cart) SaveShippingInfo(info ShippingInfo) error {
	return module.apply(func(s State) State {
		return SaveShippingInfo(s, info)
	})
}

// Reset the cart to its initial state and persist it.
func (module *Cart) Reset() error {
	return module.apply(ResetCart)
}

// apply moves to the next state and then persists it. A next state holding
// non finite amounts is refused and nothing changes. When persisting fails
// the in-memory state has already moved on.
func (module *Cart) apply(fn transition) error {
	next := fn(module.state)
	if !next.Finite() {
		return ErrNonFinite
	}

	module.state = next
	err := Save(module.storage, module.state)
	if err != nil {
		log.Errorf("Could not persist cart: %v", err)
		return err
	}

	return nil
}
