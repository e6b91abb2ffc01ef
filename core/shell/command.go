package shell

import (
	"github.com/abiosoft/ishell"
	"github.com/tryanzu/cartstore/modules/cart"
)

// RunShell starts an interactive session dispatching cart operations.
func RunShell(c *cart.Cart) {
	shell := ishell.New()
	shell.Println("Cartstore Interactive Shell 0.1")

	for _, cmd := range Commands(c) {
		shell.AddCmd(cmd)
	}

	// start shell
	shell.Run()
}

// Commands bound to the given cart.
func Commands(c *cart.Cart) []*ishell.Cmd {
	return []*ishell.Cmd{
		{
			Name: "show",
			Help: "show [product id]: print the cart or one of its lines.",
			Func: func(ctx *ishell.Context) {
				out, err := Describe(c.State(), ctx.Args)
				if err != nil {
					ctx.Err(err)
					return
				}
				ctx.Println(out)
			},
		},
		{
			Name: "add",
			Help: "add <product id> <price> <quantity> [name]: add or replace a cart line.",
			Func: dispatcher(c, ParseAdd),
		},
		{
			Name: "remove",
			Help: "remove <product id>: remove every line of a product.",
			Func: dispatcher(c, ParseRemove),
		},
		{
			Name: "price",
			Help: "Recalculate subtotal, tax, shipping and total.",
			Func: dispatcher(c, constant(cart.CalculatePriceOf())),
		},
		{
			Name: "discount",
			Help: "discount <amount>: set the discount.",
			Func: dispatcher(c, ParseDiscount),
		},
		{
			Name: "shipping",
			Help: "Prompt for and save the shipping address.",
			Func: func(ctx *ishell.Context) {
				info := promptShipping(ctx)
				dispatch(ctx, c, cart.SaveShippingInfoOf(info))
			},
		},
		{
			Name: "reset",
			Help: "Empty the cart.",
			Func: dispatcher(c, constant(cart.ResetCartOf())),
		},
	}
}

type parser func(args []string) (cart.Action, error)

func constant(action cart.Action) parser {
	return func([]string) (cart.Action, error) {
		return action, nil
	}
}

func dispatcher(c *cart.Cart, parse parser) func(*ishell.Context) {
	return func(ctx *ishell.Context) {
		action, err := parse(ctx.Args)
		if err != nil {
			ctx.Err(err)
			return
		}

		dispatch(ctx, c, action)
	}
}

func dispatch(ctx *ishell.Context, c *cart.Cart, action cart.Action) {
	s, err := c.Dispatch(action)
	if err != nil {
		ctx.Err(err)
	}

	printState(ctx, s)
}

func promptShipping(ctx *ishell.Context) cart.ShippingInfo {
	ctx.ShowPrompt(false)
	defer ctx.ShowPrompt(true)

	var info cart.ShippingInfo
	fields := []struct {
		label string
		dst   *string
	}{
		{"Address: ", &info.Address},
		{"City: ", &info.City},
		{"State: ", &info.State},
		{"Country: ", &info.Country},
		{"Pin code: ", &info.PinCode},
	}

	for _, field := range fields {
		ctx.Print(field.label)
		*field.dst = ctx.ReadLine()
	}

	return info
}

func printState(ctx *ishell.Context, s cart.State) {
	out, err := Describe(s, nil)
	if err != nil {
		ctx.Err(err)
		return
	}

	ctx.Println(out)
}
