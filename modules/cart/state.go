package cart

import "math"

// State is the whole cart snapshot. Derived totals hold the values computed by
// the last CalculatePrice call and go stale after any other mutation.
type State struct {
	Loading         bool         `json:"loading"`
	CartItems       []CartItem   `json:"cartItems"`
	Subtotal        float64      `json:"subtotal"`
	Tax             float64      `json:"tax"`
	ShippingCharges float64      `json:"shippingCharges"`
	Discount        float64      `json:"discount"`
	Total           float64      `json:"total"`
	ShippingInfo    ShippingInfo `json:"shippingInfo"`
}

// Initial cart state: no items, zeroed totals, empty shipping info.
func Initial() State {
	return State{
		CartItems: []CartItem{},
	}
}

// IsEmpty checks if no items in cart.
func (s State) IsEmpty() bool {
	return len(s.CartItems) == 0
}

// Find looks up an item by product id.
func (s State) Find(productID string) (CartItem, bool) {
	if i := s.index(productID); i != -1 {
		return s.CartItems[i], true
	}
	return CartItem{}, false
}

func (s State) index(productID string) int {
	for i := range s.CartItems {
		if s.CartItems[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// Finite reports whether every price, amount and total is a finite number.
// Snapshots cannot hold NaN or infinities.
func (s State) Finite() bool {
	for _, v := range []float64{s.Subtotal, s.Tax, s.ShippingCharges, s.Discount, s.Total} {
		if !finite(v) {
			return false
		}
	}
	for _, item := range s.CartItems {
		if !finite(item.Price) {
			return false
		}
	}
	return true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (s State) items() []CartItem {
	list := make([]CartItem, len(s.CartItems), len(s.CartItems)+1)
	copy(list, s.CartItems)
	return list
}
