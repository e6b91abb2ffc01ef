package cart

import (
	"github.com/pkg/errors"
)

// Action types understood by Dispatch.
const (
	AddToCartAction        = "cart/addToCart"
	RemoveCartItemAction   = "cart/removeCartItem"
	CalculatePriceAction   = "cart/calculatePrice"
	DiscountAppliedAction  = "cart/discountApplied"
	SaveShippingInfoAction = "cart/saveShippingInfo"
	ResetCartAction        = "cart/resetCart"
)

// Action is a named operation plus its payload. Payload must be a CartItem,
// a product id string, a float64 amount, a ShippingInfo or nil depending on
// Type.
type Action struct {
	Type    string
	Payload interface{}
}

func AddToCartOf(item CartItem) Action {
	return Action{AddToCartAction, item}
}

func RemoveCartItemOf(productID string) Action {
	return Action{RemoveCartItemAction, productID}
}

func CalculatePriceOf() Action {
	return Action{Type: CalculatePriceAction}
}

func DiscountAppliedOf(amount float64) Action {
	return Action{DiscountAppliedAction, amount}
}

func SaveShippingInfoOf(info ShippingInfo) Action {
	return Action{SaveShippingInfoAction, info}
}

func ResetCartOf() Action {
	return Action{Type: ResetCartAction}
}

// Reduce applies an action to a state without touching storage. Results
// holding non finite amounts are refused with ErrNonFinite.
func Reduce(s State, action Action) (State, error) {
	next, err := reduce(s, action)
	if err != nil {
		return s, err
	}
	if !next.Finite() {
		return s, errors.Wrap(ErrNonFinite, action.Type)
	}
	return next, nil
}

func reduce(s State, action Action) (State, error) {
	switch action.Type {
	case AddToCartAction:
		item, ok := action.Payload.(CartItem)
		if !ok {
			return s, payloadErr(action)
		}
		return AddToCart(s, item), nil
	case RemoveCartItemAction:
		id, ok := action.Payload.(string)
		if !ok {
			return s, payloadErr(action)
		}
		return RemoveCartItem(s, id), nil
	case CalculatePriceAction:
		return CalculatePrice(s), nil
	case DiscountAppliedAction:
		amount, ok := action.Payload.(float64)
		if !ok {
			return s, payloadErr(action)
		}
		return DiscountApplied(s, amount), nil
	case SaveShippingInfoAction:
		info, ok := action.Payload.(ShippingInfo)
		if !ok {
			return s, payloadErr(action)
		}
		return SaveShippingInfo(s, info), nil
	case ResetCartAction:
		return ResetCart(s), nil
	}

	return s, errors.Wrap(ErrUnknownAction, action.Type)
}

// Dispatch reduces the action over the current state and persists the result.
func (module *Cart) Dispatch(action Action) (State, error) {
	next, err := Reduce(module.state, action)
	if err != nil {
		return module.State(), err
	}

	err = module.apply(func(State) State {
		return next
	})

	return module.State(), err
}

func payloadErr(action Action) error {
	return errors.Errorf("unexpected payload %T for %s", action.Payload, action.Type)
}
