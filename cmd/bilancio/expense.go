package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"bilancio/internal/budget"
	"bilancio/internal/cli"
	"bilancio/internal/core"
	"bilancio/internal/log"
)

func expenseCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "expense",
		Aliases: []string{"expenses"},
		Short:   "Add, edit, remove and list expenses",
	}
	cmd.AddCommand(expenseAddCmd(e))
	cmd.AddCommand(expenseEditCmd(e))
	cmd.AddCommand(expenseRemoveCmd(e))
	cmd.AddCommand(expenseListCmd(e))
	return cmd
}

type expenseFlags struct {
	name     string
	amount   string
	category string
	date     string
}

func (f *expenseFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "expense name")
	cmd.Flags().StringVarP(&f.amount, "amount", "a", "", "amount, e.g. 12.50")
	cmd.Flags().StringVarP(&f.category, "category", "c", "", "category id (see 'bilancio categories')")
	cmd.Flags().StringVarP(&f.date, "date", "d", "", "date as YYYY-MM-DD (default today)")
}

// apply overwrites the fields of d whose flags were given on the command line.
func (f *expenseFlags) apply(cmd *cobra.Command, d *core.DraftExpense) error {
	if cmd.Flags().Changed("name") {
		d.Name = f.name
	}
	if cmd.Flags().Changed("amount") {
		m, err := core.ParseMoney(f.amount)
		if err != nil {
			return fmt.Errorf("amount %q: %w", f.amount, err)
		}
		d.Amount = m
	}
	if cmd.Flags().Changed("category") {
		d.Category = f.category
	}
	if cmd.Flags().Changed("date") {
		date, err := core.ParseDate(f.date)
		if err != nil {
			return err
		}
		d.Date = date
	}
	return nil
}

func logExpense(app *cli.App, msg string, x core.Expense) {
	fields := log.NewFields().
		WithOperation(log.OpDispatch).
		WithExpense(x.ID, x.Name, x.Amount.String(), x.Category)
	app.Logger.Debug(msg, fields.ToSlice()...)
}

func expenseAddCmd(e *env) *cobra.Command {
	var flags expenseFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := e.now()
			d := core.DraftExpense{Date: core.NewDate(now.Year(), int(now.Month()), now.Day())}
			if err := flags.apply(cmd, &d); err != nil {
				return err
			}
			if err := d.Validate(); err != nil {
				return err
			}

			return e.withApp(cmd.Context(), func(app *cli.App) error {
				ctx := cmd.Context()
				if err := budget.CanAfford(app.Store.State(), d.Amount, core.Money{}); err != nil {
					return fmt.Errorf("%w: %s remaining", err, app.Store.RemainingBudget())
				}
				if err := app.Store.Dispatch(ctx, budget.ShowModal{}); err != nil {
					return err
				}
				if err := app.Store.Dispatch(ctx, budget.AddExpense{Draft: d}); err != nil {
					return err
				}
				s := app.Store.State()
				added := s.Expenses[len(s.Expenses)-1]
				logExpense(app, "Expense added", added)
				e.printf("Added %s (%s)\n", added.ID, added.Amount)
				e.printf("Remaining: %s\n", budget.RemainingBudget(s))
				return nil
			})
		},
	}
	flags.register(cmd)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func expenseEditCmd(e *env) *cobra.Command {
	var flags expenseFlags
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of an existing expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withApp(cmd.Context(), func(app *cli.App) error {
				ctx := cmd.Context()
				id := args[0]
				if _, ok := app.Store.State().Find(id); !ok {
					return fmt.Errorf("expense %q not found", id)
				}
				if err := app.Store.Dispatch(ctx, budget.GetExpenseByID{ID: id}); err != nil {
					return err
				}

				s := app.Store.State()
				current, _ := budget.EditingExpense(s)
				d := current.Draft()
				err := flags.apply(cmd, &d)
				if err == nil {
					err = d.Validate()
				}
				if err == nil {
					if err = budget.CanAfford(s, d.Amount, current.Amount); err != nil {
						err = fmt.Errorf("%w: %s remaining", err, budget.RemainingBudget(s))
					}
				}
				if err != nil {
					if cerr := app.Store.Dispatch(ctx, budget.CloseModal{}); cerr != nil {
						return cerr
					}
					return err
				}

				updated := d.WithID(s.EditingID)
				if err := app.Store.Dispatch(ctx, budget.UpdateExpense{Expense: updated}); err != nil {
					return err
				}
				logExpense(app, "Expense updated", updated)
				e.printf("Updated %s\n", id)
				e.printf("Remaining: %s\n", app.Store.RemainingBudget())
				return nil
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func expenseRemoveCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove an expense",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.withApp(cmd.Context(), func(app *cli.App) error {
				if _, ok := app.Store.State().Find(args[0]); !ok {
					return fmt.Errorf("expense %q not found", args[0])
				}
				if err := app.Store.Dispatch(cmd.Context(), budget.RemoveExpense{ID: args[0]}); err != nil {
					return err
				}
				e.printf("Removed %s\n", args[0])
				return nil
			})
		},
	}
}

func expenseListCmd(e *env) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List expenses, optionally filtered by category",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if category != "" {
				if _, ok := core.CategoryByID(category); !ok {
					return fmt.Errorf("%w: %q", core.ErrUnknownCategory, category)
				}
			}
			return e.withApp(cmd.Context(), func(app *cli.App) error {
				if err := app.Store.Dispatch(cmd.Context(), budget.AddFilterCategory{ID: category}); err != nil {
					return err
				}
				visible := budget.VisibleExpenses(app.Store.State())
				if len(visible) == 0 {
					e.printf("No expenses.\n")
					return nil
				}

				tw := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tDATE\tCATEGORY\tNAME\tAMOUNT")
				for _, x := range visible {
					catName := x.Category
					if c, ok := core.CategoryByID(x.Category); ok {
						catName = c.Name
					}
					date := ""
					if !x.Date.IsEmpty() {
						date = x.Date.Format("2006-01-02")
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", x.ID, date, catName, x.Name, x.Amount)
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only show this category id")
	return cmd
}
