package cart

import "math"

const (
	// Orders at or above this subtotal ship for free.
	FreeShippingThreshold = 1000.0

	// Flat shipping fee below the threshold.
	ShippingFee = 100.0

	TaxRate = 0.18
)

// AddToCart replaces the line with the same product id or appends a new one.
// Totals are left as they were.
func AddToCart(s State, item CartItem) State {
	s.Loading = true
	items := s.items()
	index := s.index(item.ProductID)
	if index != -1 {
		items[index] = item
	} else {
		items = append(items, item)
	}

	s.CartItems = items
	s.Loading = false
	return s
}

// RemoveCartItem drops every line matching productID. Unknown ids leave the
// list as is.
func RemoveCartItem(s State, productID string) State {
	s.Loading = true
	items := make([]CartItem, 0, len(s.CartItems))
	for _, item := range s.CartItems {
		if item.ProductID != productID {
			items = append(items, item)
		}
	}

	s.CartItems = items
	s.Loading = false
	return s
}

// CalculatePrice recomputes subtotal, shipping, tax and total from the cart
// items and the current discount.
func CalculatePrice(s State) State {
	subtotal := 0.0
	for _, item := range s.CartItems {
		subtotal += item.Amount()
	}

	s.Subtotal = subtotal
	s.ShippingCharges = ShippingFee
	if subtotal >= FreeShippingThreshold {
		s.ShippingCharges = 0
	}

	s.Tax = round(subtotal * TaxRate)
	s.Total = s.Subtotal + s.Tax + s.ShippingCharges - s.Discount
	s.CartItems = s.items()
	return s
}

// DiscountApplied sets the discount as given. A discount above the subtotal
// yields a negative total on the next CalculatePrice.
func DiscountApplied(s State, amount float64) State {
	s.Discount = amount
	s.CartItems = s.items()
	return s
}

func SaveShippingInfo(s State, info ShippingInfo) State {
	s.ShippingInfo = info
	s.CartItems = s.items()
	return s
}

// ResetCart discards everything and returns the initial state.
func ResetCart(State) State {
	return Initial()
}

// round half up to the nearest unit.
func round(v float64) float64 {
	return math.Floor(v + 0.5)
}
