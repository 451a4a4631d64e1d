package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"bilancio/internal/cli"
)

// env carries what every command needs; tests swap open and the streams.
type env struct {
	open func(ctx context.Context) (*cli.App, error)
	out  io.Writer
	now  func() time.Time
}

func defaultEnv() *env {
	return &env{
		open: func(ctx context.Context) (*cli.App, error) {
			cli.LoadEnvFile()
			cfg, err := cli.LoadAndValidateConfig()
			if err != nil {
				return nil, err
			}
			logger, err := cli.SetupLogger(cfg.LogLevel)
			if err != nil {
				return nil, err
			}
			return cli.OpenApp(ctx, cfg, logger)
		},
		out: os.Stdout,
		now: time.Now,
	}
}

// withApp opens a session, runs fn and closes the session.
func (e *env) withApp(ctx context.Context, fn func(app *cli.App) error) (err error) {
	app, err := e.open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := app.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close: %w", cerr)
		}
	}()
	return fn(app)
}

func (e *env) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(e.out, format, args...)
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:   "bilancio",
		Short: "Personal budget and expense tracker",
		Long: `bilancio keeps a budget and the expenses spent against it.

State is stored locally (SQLite by default, see DATA_BACKEND and
SQLITE_DB_PATH) and restored on every run.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(budgetCmd(e))
	root.AddCommand(expenseCmd(e))
	root.AddCommand(categoriesCmd(e))
	root.AddCommand(summaryCmd(e))
	root.AddCommand(resetCmd(e))
	return root
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(defaultEnv()).ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
