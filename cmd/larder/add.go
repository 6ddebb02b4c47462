package main

import (
	"fmt"
	"strings"

	"github.com/jacksmith/larder/internal/cli"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <product>",
	Short: "Add a product to the cart",
	Long: `Add a product to the cart by id or name.

The product may be given as its id, its full name, or a unique prefix of
its name. Adding a product already in the cart raises its quantity.
Quantities never exceed the stock recorded when the product was first added.

Examples:
  larder add 3
  larder add saffron -q 2
  larder add "black truffle"`,
	Args:              cobra.MinimumNArgs(1),
	RunE:              runAdd,
	ValidArgsFunction: completeProductIDs,
}

var addQuantity int

func init() {
	addCmd.Flags().IntVarP(&addQuantity, "quantity", "q", 1, "how many to add")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	if addQuantity < 1 {
		return &cli.ValidationError{Field: "quantity", Message: "must be at least 1"}
	}
	input := strings.Join(args, " ")

	return withApp(func(a *app) error {
		c, err := a.catalog()
		if err != nil {
			return err
		}
		p, err := cli.MatchProduct(input, c.Products)
		if err != nil {
			return err
		}
		if p.Stock <= 0 {
			return &cli.ValidationError{Field: "product", Message: fmt.Sprintf("%s is sold out", p.Name)}
		}

		a.store.AddToCart(p.LineItem(addQuantity))

		qty := 0
		for _, it := range a.store.Cart() {
			if it.ID == p.ID {
				qty = it.Quantity
			}
		}
		fmt.Printf("Added %s (%d in cart)\n", p.Name, qty)
		if qty == p.Stock {
			fmt.Println(cli.Yellow(fmt.Sprintf("Only %d in stock", p.Stock)))
		}
		printSummary(a)
		return nil
	})
}

// printSummary prints the cart's item count and total.
func printSummary(a *app) {
	count := a.store.Count()
	noun := "items"
	if count == 1 {
		noun = "item"
	}
	fmt.Printf("Cart: %d %s, %s\n", count, noun, a.money(a.store.Total()))
}
