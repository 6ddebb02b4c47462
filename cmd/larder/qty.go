package main

import (
	"fmt"
	"strconv"

	"github.com/jacksmith/larder/internal/cli"
	"github.com/jacksmith/larder/internal/model"
	"github.com/spf13/cobra"
)

var qtyCmd = &cobra.Command{
	Use:   "qty <id> <quantity>",
	Short: "Set the quantity of a cart item",
	Long: `Set the quantity of a cart item.

A quantity of 0 or less removes the item. Quantities above the recorded
stock are lowered to the stock level.

Examples:
  larder qty 3 4
  larder qty 3 0      # same as larder remove 3`,
	Args:              cobra.ExactArgs(2),
	RunE:              runQty,
	ValidArgsFunction: completeCartIDs,
}

func init() {
	rootCmd.AddCommand(qtyCmd)
}

func runQty(cmd *cobra.Command, args []string) error {
	id := model.NormalizeProductID(args[0])
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return &cli.ValidationError{Field: "quantity", Message: fmt.Sprintf("%q is not a whole number", args[1])}
	}

	return withApp(func(a *app) error {
		if err := requireInCart(a, id); err != nil {
			return err
		}
		a.store.UpdateQuantity(id, n)

		for _, it := range a.store.Cart() {
			if it.ID != id {
				continue
			}
			fmt.Printf("Set %s to %d\n", it.Name, it.Quantity)
			if it.Quantity < n {
				fmt.Println(cli.Yellow(fmt.Sprintf("Only %d in stock", it.Stock)))
			}
			printSummary(a)
			return nil
		}
		fmt.Printf("Removed %s from cart\n", id)
		printSummary(a)
		return nil
	})
}
