package main

import (
	"fmt"
	"os"

	"github.com/facebookgo/inject"
	"github.com/spf13/cobra"
	"github.com/tryanzu/cartstore/core/shell"
	"github.com/tryanzu/cartstore/deps"
	"github.com/tryanzu/cartstore/modules/api"
	"github.com/tryanzu/cartstore/modules/cart"
)

func main() {

	// Graph main object (used to inject dependencies)
	var g inject.Graph

	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Starts interactive cart shell",
		Long: `Starts an interactive shell bound to the cart
		stored in the configured storage driver.
        `,
		Run: func(cmd *cobra.Command, args []string) {
			shell.RunShell(bootCart())
		},
	}

	var cmdShow = &cobra.Command{
		Use:   "show",
		Short: "Prints the stored cart snapshot",
		Run: func(cmd *cobra.Command, args []string) {
			encoded, err := cart.Encode(bootCart().State())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}

			fmt.Println(encoded)
		},
	}

	var cmdAPI = &cobra.Command{
		Use:   "api [address]",
		Short: "Starts cart API web server",
		Long: `Starts API web server listening
        in the specified address (:3200 by default)
        `,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			port := ":3200"
			if len(args) == 1 {
				port = args[0]
			}

			var module api.Module
			err := g.Provide(
				&inject.Object{Value: deps.Container.Config(), Complete: true},
				&inject.Object{Value: deps.Container.Log(), Complete: true},
			)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}

			// Populate dependencies using the already instantiated DI
			module.Populate(g)

			// Run API module
			module.Run(port)
		},
	}

	var rootCmd = &cobra.Command{
		Use: "cartstore",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			deps.Bootstrap()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			deps.Container.Close()
		},
	}
	rootCmd.AddCommand(cmdAPI)
	rootCmd.AddCommand(cmdShow)
	rootCmd.AddCommand(shellCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootCart hydrates the cart from the configured bucket. A corrupt snapshot
// stops the process.
func bootCart() *cart.Cart {
	c, err := cart.Boot(deps.Container.Bucket())
	if err != nil {
		deps.Container.Log().Fatalf("Could not restore cart: %v", err)
	}

	return c
}
