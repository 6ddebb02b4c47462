package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jacksmith/larder/internal/cli"
	"github.com/jacksmith/larder/internal/storage"
	"github.com/spf13/cobra"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Browse the product catalog",
	Long: `List products from .larder/catalog.yaml.

Examples:
  larder products
  larder products --category=spices`,
	Args: cobra.NoArgs,
	RunE: runProducts,
}

var productsCategory string

func init() {
	productsCmd.Flags().StringVarP(&productsCategory, "category", "c", "", "show only this category")
	productsCmd.RegisterFlagCompletionFunc("category", completeCategories)
	rootCmd.AddCommand(productsCmd)
}

func runProducts(cmd *cobra.Command, args []string) error {
	s, err := storage.Open(".")
	if err != nil {
		return err
	}
	cfg, err := s.LoadConfig()
	if err != nil {
		return err
	}
	c, err := s.LoadCatalog()
	if err != nil {
		return err
	}

	table := cli.NewTable()
	table.SetMaxWidth(1, cli.DefaultMaxNameWidth)
	table.AlignRight(3)
	table.AlignRight(4)
	for _, p := range c.Products {
		if productsCategory != "" && !strings.EqualFold(p.Category, productsCategory) {
			continue
		}
		table.AddRow(
			p.ID,
			p.Name,
			p.Category,
			cli.Money(cfg.Currency, p.Price),
			formatStock(p.Stock, cfg.LowStock),
		)
	}

	if table.Len() == 0 {
		fmt.Println("No products found.")
		return nil
	}
	table.Render(os.Stdout)
	return nil
}

// formatStock renders a stock level, highlighting low and empty stock.
func formatStock(stock, low int) string {
	switch {
	case stock <= 0:
		return cli.Red("sold out")
	case stock <= low:
		return cli.Yellow(strconv.Itoa(stock) + " left")
	default:
		return strconv.Itoa(stock)
	}
}
