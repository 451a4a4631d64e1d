package budget

import (
	"math"

	"bilancio/internal/core"
)

// SpentTotal is the sum of all expense amounts.
func SpentTotal(s State) core.Money {
	var total core.Money
	for _, e := range s.Expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// RemainingBudget is the budget minus SpentTotal. It goes negative when
// expenses exceed the budget.
func RemainingBudget(s State) core.Money {
	return s.Budget.Sub(SpentTotal(s))
}

// PercentageSpent is SpentTotal as a percentage of the budget, rounded to two
// decimals. It is 0 when no budget is set.
func PercentageSpent(s State) float64 {
	if s.Budget.Cents == 0 {
		return 0
	}
	pct := float64(SpentTotal(s).Cents) / float64(s.Budget.Cents) * 100
	return math.Round(pct*100) / 100
}

// VisibleExpenses returns the expenses matching the current category filter,
// in insertion order. With no filter every expense is visible.
func VisibleExpenses(s State) []core.Expense {
	if s.CurrentCategory == "" {
		return append([]core.Expense(nil), s.Expenses...)
	}
	var out []core.Expense
	for _, e := range s.Expenses {
		if e.Category == s.CurrentCategory {
			out = append(out, e)
		}
	}
	return out
}

// EditingExpense returns the expense currently being edited, if any.
func EditingExpense(s State) (core.Expense, bool) {
	if s.EditingID == "" {
		return core.Expense{}, false
	}
	return s.Find(s.EditingID)
}

// CanAfford reports whether changing an expense from previous to amount keeps
// spending within the budget. Use a zero previous for new expenses.
func CanAfford(s State, amount, previous core.Money) error {
	if amount.Sub(previous).Cents > RemainingBudget(s).Cents {
		return core.ErrBudgetExceeded
	}
	return nil
}
