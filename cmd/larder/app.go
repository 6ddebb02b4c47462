package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jacksmith/larder/internal/cart"
	"github.com/jacksmith/larder/internal/cli"
	"github.com/jacksmith/larder/internal/logging"
	"github.com/jacksmith/larder/internal/model"
	"github.com/jacksmith/larder/internal/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// app is the state one command invocation works with: the storage
// directory, the user's config, and a cart store hydrated from the
// configured backend with persistence attached.
type app struct {
	storage *storage.Storage
	config  *storage.Config
	logger  *zap.Logger
	kv      storage.KV
	store   *cart.Store
	async   *cart.AsyncPersister
}

// openApp opens .larder/ in the current directory and builds the cart store.
// The caller must Close the app.
func openApp() (*app, error) {
	s, err := storage.Open(".")
	if err != nil {
		return nil, err
	}

	cfg, err := s.LoadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	kv, err := s.OpenBackend()
	if err != nil {
		logger.Sync()
		return nil, err
	}
	logger.Debug("opened storage",
		zap.String("root", s.Root()),
		zap.String("backend", s.BackendName()),
		zap.Bool("async_writes", cfg.AsyncWrites),
	)

	a := &app{storage: s, config: cfg, logger: logger, kv: kv}
	a.store = cart.New(cart.WithNotifier(cart.NotifierFunc(printNotice)))

	p := cart.NewPersister(kv, logger)
	if cfg.AsyncWrites {
		a.async = cart.NewAsyncPersister(p)
		a.async.Attach(a.store)
	} else {
		p.Attach(a.store)
	}
	return a, nil
}

// logOutput is where diagnostics are written.
var logOutput io.Writer = os.Stderr

// newLogger builds the logger for cfg's log level, or debug with --verbose.
func newLogger(cfg *storage.Config) (*zap.Logger, error) {
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	return logging.NewWithWriter(level, logOutput)
}

// Close flushes pending writes and releases the backend.
func (a *app) Close() error {
	if a.async != nil {
		a.async.Close()
	}
	err := a.kv.Close()
	a.logger.Sync()
	return err
}

// catalog loads the product catalog.
func (a *app) catalog() (*model.Catalog, error) {
	return a.storage.LoadCatalog()
}

// money formats an amount in the configured currency.
func (a *app) money(d decimal.Decimal) string {
	return cli.Money(a.config.Currency, d)
}

// withApp runs fn against an opened app and closes it afterwards.
func withApp(fn func(a *app) error) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

func printNotice(n cart.Notice) {
	fmt.Fprintln(os.Stdout, cli.Green(n.Message()))
}

// requireInCart returns a NotFoundError when id is not in the cart.
func requireInCart(a *app, id string) error {
	for _, it := range a.store.Cart() {
		if it.ID == model.NormalizeProductID(id) {
			return nil
		}
	}
	return &cli.NotFoundError{Type: "cart item", ID: id}
}

// requireInSaved returns a NotFoundError when id is not in the saved list.
func requireInSaved(a *app, id string) error {
	for _, it := range a.store.Saved() {
		if it.ID == model.NormalizeProductID(id) {
			return nil
		}
	}
	return &cli.NotFoundError{Type: "saved item", ID: id}
}
