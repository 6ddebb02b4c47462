package main

import (
	"github.com/jacksmith/larder/internal/model"
	"github.com/spf13/cobra"
)

var unsaveCmd = &cobra.Command{
	Use:               "unsave <id>",
	Short:             "Remove an item from the saved-for-later list",
	Args:              cobra.ExactArgs(1),
	RunE:              runUnsave,
	ValidArgsFunction: completeSavedIDs,
}

var unsaveQuiet bool

func init() {
	unsaveCmd.Flags().BoolVarP(&unsaveQuiet, "quiet", "q", false, "don't print a confirmation")
	rootCmd.AddCommand(unsaveCmd)
}

func runUnsave(cmd *cobra.Command, args []string) error {
	id := model.NormalizeProductID(args[0])
	return withApp(func(a *app) error {
		if err := requireInSaved(a, id); err != nil {
			return err
		}
		a.store.RemoveFromSaved(id, !unsaveQuiet)
		return nil
	})
}
