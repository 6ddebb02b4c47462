package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jacksmith/larder/internal/cli"
	"github.com/jacksmith/larder/internal/model"
	"github.com/jacksmith/larder/internal/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var ordersCmd = &cobra.Command{
	Use:   "orders [id]",
	Short: "List placed orders",
	Long: `List orders placed with "larder checkout", oldest first.

Given an order id, or the first block of one, show that order's items.

Examples:
  larder orders
  larder orders 1b9d6bcd`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOrders,
}

func init() {
	rootCmd.AddCommand(ordersCmd)
}

func runOrders(cmd *cobra.Command, args []string) error {
	s, err := storage.Open(".")
	if err != nil {
		return err
	}
	cfg, err := s.LoadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ids, err := s.ListOrders()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		id, err := matchOrderID(args[0], ids)
		if err != nil {
			return err
		}
		o, err := s.LoadOrder(id)
		if err != nil {
			return err
		}
		printOrder(o, cfg.Currency)
		return nil
	}

	if len(ids) == 0 {
		fmt.Println("No orders.")
		return nil
	}

	table := cli.NewTable()
	table.SetMaxWidth(2, cli.DefaultMaxNameWidth)
	table.AlignRight(3)
	table.AlignRight(4)
	for _, id := range ids {
		o, err := s.LoadOrder(id)
		if err != nil {
			logger.Warn("skipping unreadable order", zap.String("order", id), zap.Error(err))
			continue
		}
		table.AddRow(
			model.ShortOrderID(o.ID),
			o.Created.Local().Format("2006-01-02 15:04"),
			o.Customer,
			strconv.Itoa(o.Count()),
			cli.Money(cfg.Currency, o.Total()),
		)
	}
	table.Render(os.Stdout)
	return nil
}

// matchOrderID resolves a full order id or a unique id prefix.
func matchOrderID(input string, ids []string) (string, error) {
	if id, err := model.ParseOrderID(input); err == nil {
		for _, known := range ids {
			if known == id {
				return id, nil
			}
		}
		return "", &cli.NotFoundError{Type: "order", ID: input}
	}

	prefix := strings.ToLower(strings.TrimSpace(input))
	var matches []string
	for _, id := range ids {
		if prefix != "" && strings.HasPrefix(id, prefix) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", &cli.NotFoundError{Type: "order", ID: input}
	case 1:
		return matches[0], nil
	default:
		return "", &cli.AmbiguousError{Input: input, Matches: matches}
	}
}

func printOrder(o *model.Order, currency string) {
	fmt.Printf("Order %s\n", o.ID)
	fmt.Printf("Placed:   %s\n", o.Created.Local().Format("2006-01-02 15:04"))
	fmt.Printf("Customer: %s\n", o.Customer)
	if o.Email != "" {
		fmt.Printf("Email:    %s\n", o.Email)
	}
	if o.Notes != "" {
		fmt.Printf("Notes:    %s\n", o.Notes)
	}
	fmt.Println()

	table := cli.NewTable()
	table.SetMaxWidth(1, cli.DefaultMaxNameWidth)
	table.AlignRight(2)
	table.AlignRight(3)
	for _, it := range o.Items {
		table.AddRow(it.ID, it.Name, strconv.Itoa(it.Quantity)+" x", cli.Money(currency, it.Subtotal()))
	}
	table.Render(os.Stdout)
	fmt.Println()
	fmt.Printf("%d item(s), %s\n", o.Count(), cli.Money(currency, o.Total()))
}
