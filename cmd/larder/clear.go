package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	Long: `Remove every item from the cart.

The saved-for-later list is left alone.`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	return withApp(func(a *app) error {
		n := len(a.store.Cart())
		a.store.ClearCart()
		fmt.Printf("Cleared %d line(s) from cart\n", n)
		return nil
	})
}
