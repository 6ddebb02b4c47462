package main

import (
	"fmt"

	"github.com/jacksmith/larder/internal/storage"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize larder storage",
	Long: `Create a .larder/ directory with the default product catalog.

The cart and saved-for-later lists are kept in .larder/local/ as one JSON
file per list, or in .larder/local.db with --backend=sqlite.

Fails if .larder/ already exists in the current directory.`,
	RunE: runInit,
}

var initBackend string

func init() {
	initCmd.Flags().StringVar(&initBackend, "backend", storage.BackendFile, "where lists are stored (file or sqlite)")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	s, err := storage.Init(".", initBackend)
	if err != nil {
		return err
	}

	c, err := s.LoadCatalog()
	if err != nil {
		return err
	}

	fmt.Printf("Initialized larder in .larder/ (%s backend)\n", s.BackendName())
	fmt.Printf("Catalog has %d products\n", len(c.Products))
	return nil
}
