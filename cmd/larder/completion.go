package main

import (
	"os"
	"strings"

	"github.com/jacksmith/larder/internal/cart"
	"github.com/jacksmith/larder/internal/model"
	"github.com/jacksmith/larder/internal/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var completionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for larder.

To load completions:

Bash:
  $ source <(larder completion bash)

Zsh:
  $ larder completion zsh > "${fpath[1]}/_larder"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ larder completion fish | source
`,
}

var completionBashCmd = &cobra.Command{
	Use:   "bash",
	Short: "Generate bash completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenBashCompletion(os.Stdout)
	},
}

var completionZshCmd = &cobra.Command{
	Use:   "zsh",
	Short: "Generate zsh completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenZshCompletion(os.Stdout)
	},
}

var completionFishCmd = &cobra.Command{
	Use:   "fish",
	Short: "Generate fish completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenFishCompletion(os.Stdout, true)
	},
}

func init() {
	completionCmd.AddCommand(completionBashCmd)
	completionCmd.AddCommand(completionZshCmd)
	completionCmd.AddCommand(completionFishCmd)
	rootCmd.AddCommand(completionCmd)
}

// completeProductIDs completes catalog product ids, described by name.
func completeProductIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	s, err := storage.Open(".")
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	c, err := s.LoadCatalog()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, p := range c.Products {
		if strings.HasPrefix(p.ID, toComplete) {
			completions = append(completions, p.ID+"\t"+p.Name)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeCategories completes catalog categories.
func completeCategories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	s, err := storage.Open(".")
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	c, err := s.LoadCatalog()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	lower := strings.ToLower(toComplete)
	for _, cat := range c.Categories() {
		if strings.HasPrefix(strings.ToLower(cat), lower) {
			completions = append(completions, cat)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeCartIDs completes ids of items in the cart.
func completeCartIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeListIDs(cart.ListCart, args, toComplete)
}

// completeSavedIDs completes ids of saved-for-later items.
func completeSavedIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeListIDs(cart.ListSaved, args, toComplete)
}

// completeListIDs reads one list straight from storage without logging,
// so completion never writes to the terminal.
func completeListIDs(list cart.List, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	s, err := storage.Open(".")
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	kv, err := s.OpenBackend()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	defer kv.Close()

	items := cart.NewPersister(kv, zap.NewNop()).Load(list)
	return itemCompletions(items, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func itemCompletions(items []model.LineItem, toComplete string) []string {
	var completions []string
	for _, it := range items {
		if strings.HasPrefix(it.ID, toComplete) {
			completions = append(completions, it.ID+"\t"+it.Name)
		}
	}
	return completions
}
