package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bilancio/internal/budget"
	"bilancio/internal/cli"
	"bilancio/internal/core"
)

func categoriesCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the expense categories",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, c := range core.Categories() {
				e.printf("%s  %s\n", c.ID, c.Name)
			}
			return nil
		},
	}
}

func resetCmd(e *env) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the budget and all expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force {
				e.printf("This will delete the budget and every expense. Continue? [y/N]: ")
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				answer = strings.ToLower(strings.TrimSpace(answer))
				if answer != "y" && answer != "yes" {
					e.printf("Reset cancelled.\n")
					return nil
				}
			}
			return e.withApp(cmd.Context(), func(app *cli.App) error {
				if err := app.Store.Dispatch(cmd.Context(), budget.ResetApp{}); err != nil {
					return fmt.Errorf("reset: %w", err)
				}
				e.printf("Budget and expenses cleared.\n")
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")
	return cmd
}
