package main

import (
	"bytes"
	"fmt"

	"github.com/jacksmith/larder/internal/cli"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit cart quantities in $EDITOR",
	Long: `Open the cart in $EDITOR as one "id quantity" line per item.

Change a quantity to update it. Set it to 0 or delete the line to remove
the item. Quantities above stock are lowered to the stock level. Saving
the file unchanged leaves the cart as it was.`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	return withApp(func(a *app) error {
		items := a.store.Cart()
		if len(items) == 0 {
			fmt.Println("Cart is empty.")
			return nil
		}

		sheet := cli.QuantitySheet(items)
		edited, err := cli.EditInEditor(sheet, ".txt")
		if err != nil {
			return err
		}
		if bytes.Equal(sheet, edited) {
			fmt.Println("No changes made.")
			return nil
		}

		quantities, err := cli.ParseQuantitySheet(edited)
		if err != nil {
			return err
		}
		return applyQuantities(a, quantities)
	})
}

// applyQuantities updates the cart from an edited quantity sheet. Items
// missing from the sheet are removed; ids not in the cart are rejected
// before anything changes.
func applyQuantities(a *app, quantities map[string]int) error {
	items := a.store.Cart()
	inCart := make(map[string]bool, len(items))
	for _, it := range items {
		inCart[it.ID] = true
	}
	for id := range quantities {
		if !inCart[id] {
			return &cli.NotFoundError{Type: "cart item", ID: id}
		}
	}

	changed := 0
	for _, it := range items {
		qty, ok := quantities[it.ID]
		switch {
		case !ok:
			a.store.RemoveFromCart(it.ID)
		case qty != it.Quantity:
			a.store.UpdateQuantity(it.ID, qty)
		default:
			continue
		}
		changed++
	}

	fmt.Printf("Updated %d line(s)\n", changed)
	printSummary(a)
	return nil
}
