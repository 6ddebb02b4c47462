package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jacksmith/larder/internal/cart"
	"github.com/jacksmith/larder/internal/cli"
	"github.com/jacksmith/larder/internal/storage"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print cart totals whenever the lists change",
	Long: `Watch .larder/local/ and print the cart count and total each time
another larder session changes the cart or the saved-for-later list.

Only the file backend can be watched. Press Ctrl-C to stop.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

var watchDebounce time.Duration

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", storage.DefaultWatchDebounce, "wait this long after the last change before printing")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return withApp(func(a *app) error {
		return watchLists(ctx, a)
	})
}

// watchLists prints a summary now and after every change until ctx is done.
func watchLists(ctx context.Context, a *app) error {
	if a.storage.BackendName() != storage.BackendFile {
		return &cli.ValidationError{Field: "backend", Message: fmt.Sprintf("watch needs the file backend, not %s", a.storage.BackendName())}
	}

	p := cart.NewPersister(a.kv, a.logger)
	report := func(changed []string) {
		s := cart.New()
		p.Hydrate(s)
		line := fmt.Sprintf("%s  cart: %d item(s), %s  saved: %d",
			time.Now().Format("15:04:05"), s.Count(), a.money(s.Total()), len(s.Saved()))
		if len(changed) > 0 {
			line += cli.Gray("  (" + strings.Join(changed, ", ") + ")")
		}
		fmt.Println(line)
	}

	report(nil)
	return storage.Watch(ctx, a.storage.LocalPath(), watchDebounce, a.logger, report)
}
