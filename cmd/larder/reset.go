package main

import (
	"fmt"
	"strings"

	"github.com/jacksmith/larder/internal/storage"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the stored cart and saved-for-later lists",
	Long: `Delete everything stored for the cart and the saved-for-later list.

The catalog, orders, and configuration are left alone. Unlike "larder clear",
this also empties the saved-for-later list and removes any list that could
not be read.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	s, err := storage.Open(".")
	if err != nil {
		return err
	}
	kv, err := s.OpenBackend()
	if err != nil {
		return err
	}
	defer kv.Close()

	removed, err := storage.ClearKV(kv)
	if err != nil {
		return err
	}
	if len(removed) == 0 {
		fmt.Println("Nothing stored.")
		return nil
	}
	fmt.Printf("Removed %s\n", strings.Join(removed, ", "))
	return nil
}
