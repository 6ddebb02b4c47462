package main

import (
	"github.com/jacksmith/larder/internal/model"
	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:   "move <id>",
	Short: "Move a saved item back to the cart",
	Long: `Move an item from the saved-for-later list back to the cart.

If the product is already in the cart the quantities are added together,
up to the stock recorded for the cart item.`,
	Args:              cobra.ExactArgs(1),
	RunE:              runMove,
	ValidArgsFunction: completeSavedIDs,
}

func init() {
	rootCmd.AddCommand(moveCmd)
}

func runMove(cmd *cobra.Command, args []string) error {
	id := model.NormalizeProductID(args[0])
	return withApp(func(a *app) error {
		if err := requireInSaved(a, id); err != nil {
			return err
		}
		a.store.MoveToCart(id)
		printSummary(a)
		return nil
	})
}
