package main

import (
	"github.com/jacksmith/larder/internal/model"
	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save <id>",
	Short: "Move a cart item to the saved-for-later list",
	Long: `Move a cart item to the saved-for-later list.

The item is saved with quantity 1 and removed from the cart. If the item
is already saved, the saved entry is kept as it is.`,
	Args:              cobra.ExactArgs(1),
	RunE:              runSave,
	ValidArgsFunction: completeCartIDs,
}

func init() {
	rootCmd.AddCommand(saveCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	id := model.NormalizeProductID(args[0])
	return withApp(func(a *app) error {
		if err := requireInCart(a, id); err != nil {
			return err
		}
		a.store.SaveForLater(id)
		printSummary(a)
		return nil
	})
}
