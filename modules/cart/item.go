package cart

// CartItem is one product line inside the cart. ProductID identifies the
// line; every other descriptive field travels along untouched.
type CartItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
	Quantity  int     `json:"quantity"`
}

// Amount of the line (price times quantity).
func (item CartItem) Amount() float64 {
	return item.Price * float64(item.Quantity)
}

type ShippingInfo struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	PinCode string `json:"pinCode"`
}
