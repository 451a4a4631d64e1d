package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bilancio/internal/core"
)

func TestBudgetArithmetic(t *testing.T) {
	tests := []struct {
		name      string
		budget    int64
		amounts   []int64
		spent     int64
		remaining int64
		pct       float64
	}{
		{"empty", 0, nil, 0, 0, 0},
		{"no expenses", 100000, nil, 0, 100000, 0},
		{"some expenses", 100000, []int64{500, 1, 99}, 600, 99400, 0.6},
		{"exact", 1000, []int64{250, 750}, 1000, 0, 100},
		{"overspent", 1000, []int64{1500}, 1500, -500, 150},
		{"no budget", 0, []int64{300}, 300, -300, 0},
		{"thirds", 300, []int64{100}, 100, 200, 33.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := State{Budget: core.Money{Cents: tt.budget}}
			for i, a := range tt.amounts {
				s.Expenses = append(s.Expenses, core.Expense{ID: string(rune('a' + i)), Amount: core.Money{Cents: a}})
			}

			assert.Equal(t, tt.spent, SpentTotal(s).Cents)
			assert.Equal(t, tt.remaining, RemainingBudget(s).Cents)
			assert.Equal(t, s.Budget.Cents-SpentTotal(s).Cents, RemainingBudget(s).Cents)
			assert.InDelta(t, tt.pct, PercentageSpent(s), 0.001)
		})
	}
}

func TestVisibleExpenses(t *testing.T) {
	s := seeded()
	s.Expenses = append(s.Expenses, draft("Lunch", 1500, "2").WithID("d"))

	s.CurrentCategory = "2"
	assert.Equal(t, []string{"a", "d"}, ids(VisibleExpenses(s)))

	s.CurrentCategory = ""
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(VisibleExpenses(s)))

	s.CurrentCategory = "7"
	assert.Empty(t, VisibleExpenses(s))
}

func TestEditingExpense(t *testing.T) {
	s := seeded()
	_, ok := EditingExpense(s)
	assert.False(t, ok)

	s.EditingID = "gone"
	_, ok = EditingExpense(s)
	assert.False(t, ok)
}

func TestCanAfford(t *testing.T) {
	s := State{
		Budget:   core.Money{Cents: 1000},
		Expenses: []core.Expense{{ID: "a", Amount: core.Money{Cents: 600}}},
	}

	assert.NoError(t, CanAfford(s, core.Money{Cents: 400}, core.Money{}))
	assert.ErrorIs(t, CanAfford(s, core.Money{Cents: 401}, core.Money{}), core.ErrBudgetExceeded)

	// Editing "a" from 600 to 1000 uses exactly the remaining 400.
	assert.NoError(t, CanAfford(s, core.Money{Cents: 1000}, core.Money{Cents: 600}))
	assert.ErrorIs(t, CanAfford(s, core.Money{Cents: 1001}, core.Money{Cents: 600}), core.ErrBudgetExceeded)
}
