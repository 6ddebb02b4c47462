package main

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/jacksmith/larder/internal/cli"
	"github.com/jacksmith/larder/internal/model"
	"github.com/spf13/cobra"
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Submit the cart as an order",
	Long: `Record the cart as an order in .larder/orders/ and empty the cart.

Payment is not taken; the order file is the record of the purchase.

Examples:
  larder checkout --name="Ada Lovelace" --email=ada@example.com
  larder checkout --name=Ada --email=ada@example.com --notes="Leave at the door"`,
	Args: cobra.NoArgs,
	RunE: runCheckout,
}

var (
	checkoutName  string
	checkoutEmail string
	checkoutNotes string
)

func init() {
	checkoutCmd.Flags().StringVar(&checkoutName, "name", "", "customer name (required)")
	checkoutCmd.Flags().StringVar(&checkoutEmail, "email", "", "customer email (required)")
	checkoutCmd.Flags().StringVar(&checkoutNotes, "notes", "", "delivery notes")
	rootCmd.AddCommand(checkoutCmd)
}

func runCheckout(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(checkoutName)
	if name == "" {
		return &cli.ValidationError{Field: "name", Message: "required"}
	}
	email := strings.TrimSpace(checkoutEmail)
	if email == "" {
		return &cli.ValidationError{Field: "email", Message: "required"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return &cli.ValidationError{Field: "email", Message: fmt.Sprintf("%q is not an email address", email)}
	}

	return withApp(func(a *app) error {
		items := a.store.Cart()
		if len(items) == 0 {
			return &cli.ValidationError{Message: "cart is empty"}
		}

		order := &model.Order{
			ID:       model.NewOrderID(),
			Customer: name,
			Email:    email,
			Notes:    checkoutNotes,
			Created:  time.Now().UTC(),
			Items:    items,
		}
		if err := a.storage.SaveOrder(order); err != nil {
			return err
		}
		a.store.ClearCart()

		fmt.Printf("Placed order %s: %d item(s), %s\n",
			model.ShortOrderID(order.ID), order.Count(), a.money(order.Total()))
		return nil
	})
}
