// Package cli provides common CLI initialization utilities: environment,
// logging, configuration and the wiring of the budget store to its
// persistence and change-feed subscribers.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"bilancio/internal/backend"
	"bilancio/internal/budget"
	"bilancio/internal/config"
	"bilancio/internal/events"
	"bilancio/internal/kv"
	"bilancio/internal/log"
	"bilancio/internal/persist"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger builds the process logger at the given level, writing to
// stderr so command output on stdout stays clean, and makes it the slog
// default.
func SetupLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := log.New(log.Config{Level: lvl, Component: log.ComponentCLI, Output: os.Stderr})
	log.SetDefault(logger)
	return logger, nil
}

// LoadAndValidateConfig loads configuration from the environment and
// validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// App is one session of the budget: a store seeded from storage whose every
// change is written back.
type App struct {
	Store   *budget.Store
	Persist *persist.Adapter
	Logger  *log.Logger
	cleanup backend.CleanupFunc
}

// OpenApp opens the configured backend and restores the store from it.
func OpenApp(ctx context.Context, cfg *config.Config, logger *log.Logger) (*App, error) {
	res, err := backend.NewFactory(logger).Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app, err := NewApp(ctx, res.Store, res.Publisher, logger)
	if err != nil {
		_ = res.Cleanup()
		return nil, err
	}
	app.cleanup = res.Cleanup
	return app, nil
}

// NewApp restores state from store and registers the subscribers: the
// snapshot writer first, then the change feed if publisher is non-nil.
// The caller keeps ownership of store and publisher.
func NewApp(ctx context.Context, store kv.Store, publisher *events.Publisher, logger *log.Logger, opts ...budget.Option) (*App, error) {
	if logger == nil {
		logger = log.Discard()
	}
	adapter := persist.New(store, logger)
	initial, err := adapter.Restore(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore state: %w", err)
	}

	opts = append([]budget.Option{budget.WithLogger(logger), budget.WithSubscriber(adapter.Subscriber())}, opts...)
	if publisher != nil {
		opts = append(opts, budget.WithSubscriber(publisher.Subscriber()))
	}

	logger.DebugContext(ctx, "State restored",
		log.FieldOperation, log.OpStartup,
		log.FieldBudget, initial.Budget.String(),
		log.FieldExpenseCount, len(initial.Expenses))

	return &App{
		Store:   budget.NewStore(initial, opts...),
		Persist: adapter,
		Logger:  logger,
	}, nil
}

// Close releases what OpenApp opened. Safe on an App built by NewApp.
func (a *App) Close() error {
	if a == nil || a.cleanup == nil {
		return nil
	}
	return a.cleanup()
}
