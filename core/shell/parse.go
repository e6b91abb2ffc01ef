package shell

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tryanzu/cartstore/modules/cart"
)

var errUsage = errors.New("wrong number of arguments")

// ParseAdd reads "<product id> <price> <quantity> [name...]".
func ParseAdd(args []string) (cart.Action, error) {
	if len(args) < 3 {
		return cart.Action{}, errors.Wrap(errUsage, "add <product id> <price> <quantity> [name]")
	}

	price, err := parseAmount(args[1])
	if err != nil {
		return cart.Action{}, errors.Wrap(err, "price")
	}

	quantity, err := strconv.Atoi(args[2])
	if err != nil {
		return cart.Action{}, errors.Wrap(err, "quantity")
	}

	item := cart.CartItem{
		ProductID: args[0],
		Price:     price,
		Quantity:  quantity,
		Name:      strings.Join(args[3:], " "),
	}

	return cart.AddToCartOf(item), nil
}

func ParseRemove(args []string) (cart.Action, error) {
	if len(args) != 1 {
		return cart.Action{}, errors.Wrap(errUsage, "remove <product id>")
	}

	return cart.RemoveCartItemOf(args[0]), nil
}

func ParseDiscount(args []string) (cart.Action, error) {
	if len(args) != 1 {
		return cart.Action{}, errors.Wrap(errUsage, "discount <amount>")
	}

	amount, err := parseAmount(args[0])
	if err != nil {
		return cart.Action{}, errors.Wrap(err, "amount")
	}

	return cart.DiscountAppliedOf(amount), nil
}

// parseAmount accepts finite numbers only, ParseFloat alone lets "NaN" and
// "Inf" through.
func parseAmount(arg string) (float64, error) {
	amount, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, cart.ErrNonFinite
	}
	return amount, nil
}

// Describe renders the whole cart, or a single line when a product id is
// given.
func Describe(s cart.State, args []string) (string, error) {
	if len(args) > 1 {
		return "", errors.Wrap(errUsage, "show [product id]")
	}

	var subject interface{} = s
	if len(args) == 1 {
		item, found := s.Find(args[0])
		if !found {
			return "", errors.Errorf("product %s is not in the cart", args[0])
		}
		subject = item
	}

	encoded, err := json.MarshalIndent(subject, "", "  ")
	if err != nil {
		return "", err
	}

	out := string(encoded)
	if len(args) == 0 && s.IsEmpty() {
		out = "Cart is empty.\n" + out
	}
	return out, nil
}
