package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jacksmith/larder/internal/cli"
	"github.com/jacksmith/larder/internal/model"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show the cart",
	Long: `Show the cart with its item count and total.

Items whose recorded stock is at or below low_stock in .larderconfig.yaml
are highlighted.

Examples:
  larder list
  larder list --saved    # also show saved-for-later items`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listSaved bool

func init() {
	listCmd.Flags().BoolVarP(&listSaved, "saved", "s", false, "also show saved-for-later items")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	return withApp(func(a *app) error {
		items := a.store.Cart()
		if len(items) == 0 {
			fmt.Println("Cart is empty.")
		} else {
			renderItems(a, items, true)
			fmt.Println()
			printSummary(a)
		}

		if !listSaved {
			return nil
		}
		saved := a.store.Saved()
		fmt.Println()
		if len(saved) == 0 {
			fmt.Println("No saved items.")
			return nil
		}
		fmt.Println("Saved for later:")
		renderItems(a, saved, false)
		return nil
	})
}

// renderItems prints line items as a table. Cart rows include the quantity
// and subtotal; saved rows show the unit price only.
func renderItems(a *app, items []model.LineItem, withQty bool) {
	table := cli.NewTable()
	table.SetMaxWidth(1, cli.DefaultMaxNameWidth)
	table.AlignRight(2)
	table.AlignRight(3)
	table.AlignRight(4)
	for _, it := range items {
		if withQty {
			table.AddRow(
				it.ID,
				it.Name,
				strconv.Itoa(it.Quantity)+" x",
				a.money(it.Price),
				a.money(it.Subtotal()),
				stockNote(it, a.config.LowStock),
			)
			continue
		}
		table.AddRow(it.ID, it.Name, a.money(it.Price), "", "", stockNote(it, a.config.LowStock))
	}
	table.Render(os.Stdout)
}

// stockNote warns when an item's recorded stock is low.
func stockNote(it model.LineItem, low int) string {
	if it.Stock <= low {
		return cli.Yellow(fmt.Sprintf("(%d in stock)", it.Stock))
	}
	return ""
}
