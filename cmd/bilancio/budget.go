package main

import (
	"errors"

	"github.com/spf13/cobra"

	"bilancio/internal/budget"
	"bilancio/internal/cli"
	"bilancio/internal/core"
)

func budgetCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Set or show the budget",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <amount>",
		Short: "Set the total budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := core.ParseMoney(args[0])
			if err != nil {
				return err
			}
			if amount.Cents <= 0 {
				return errors.New("budget must be greater than zero")
			}
			return e.withApp(cmd.Context(), func(app *cli.App) error {
				if err := app.Store.Dispatch(cmd.Context(), budget.AddBudget{Budget: amount}); err != nil {
					return err
				}
				e.printf("Budget set to %s\n", amount)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show budget, spent and remaining amounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.withApp(cmd.Context(), func(app *cli.App) error {
				printSummary(e, app.Store.State())
				return nil
			})
		},
	})

	return cmd
}

func summaryCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Alias for budget show",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.withApp(cmd.Context(), func(app *cli.App) error {
				printSummary(e, app.Store.State())
				return nil
			})
		},
	}
}

func printSummary(e *env, s budget.State) {
	e.printf("Budget:    %s\n", s.Budget)
	e.printf("Spent:     %s (%.2f%%)\n", budget.SpentTotal(s), budget.PercentageSpent(s))
	e.printf("Remaining: %s\n", budget.RemainingBudget(s))
	e.printf("Expenses:  %d\n", len(s.Expenses))
}
