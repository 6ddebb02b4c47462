package main

import (
	"fmt"

	"github.com/jacksmith/larder/internal/model"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:               "remove <id>",
	Aliases:           []string{"rm"},
	Short:             "Remove an item from the cart",
	Args:              cobra.ExactArgs(1),
	RunE:              runRemove,
	ValidArgsFunction: completeCartIDs,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	id := model.NormalizeProductID(args[0])
	return withApp(func(a *app) error {
		if err := requireInCart(a, id); err != nil {
			return err
		}
		a.store.RemoveFromCart(id)
		fmt.Printf("Removed %s from cart\n", id)
		printSummary(a)
		return nil
	})
}
