package budget

import (
	"github.com/google/uuid"

	"bilancio/internal/core"
)

// IDGenerator returns a fresh expense id on every call.
type IDGenerator func() string

// NewID generates random (version 4) UUIDs.
func NewID() string {
	return uuid.NewString()
}

// Reduce is the transition function. It never mutates state and never fails:
// actions it does not know return state unchanged. newID is only called for
// AddExpense; a nil newID falls back to NewID.
func Reduce(state State, a Action, newID IDGenerator) State {
	switch a := canonical(a).(type) {
	case AddBudget:
		state.Budget = a.Budget
		return state

	case ShowModal:
		state.ModalOpen = true
		return state

	case CloseModal:
		state.ModalOpen = false
		state.EditingID = ""
		return state

	case AddExpense:
		if newID == nil {
			newID = NewID
		}
		expenses := make([]core.Expense, 0, len(state.Expenses)+1)
		expenses = append(expenses, state.Expenses...)
		state.Expenses = append(expenses, a.Draft.WithID(newID()))
		state.ModalOpen = false
		return state

	case RemoveExpense:
		if _, ok := state.Find(a.ID); !ok {
			return state
		}
		expenses := make([]core.Expense, 0, len(state.Expenses))
		for _, e := range state.Expenses {
			if e.ID != a.ID {
				expenses = append(expenses, e)
			}
		}
		state.Expenses = expenses
		return state

	case GetExpenseByID:
		state.EditingID = a.ID
		state.ModalOpen = true
		return state

	case UpdateExpense:
		expenses := make([]core.Expense, len(state.Expenses))
		for i, e := range state.Expenses {
			if e.ID == a.Expense.ID {
				e = a.Expense
			}
			expenses[i] = e
		}
		state.Expenses = expenses
		// Edit state is cleared even when no expense matched.
		state.ModalOpen = false
		state.EditingID = ""
		return state

	case ResetApp:
		state.Budget = core.Money{}
		state.ModalOpen = false
		state.Expenses = []core.Expense{}
		state.EditingID = ""
		return state

	case AddFilterCategory:
		state.CurrentCategory = a.ID
		return state

	default:
		return state
	}
}
