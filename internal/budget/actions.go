package budget

import "bilancio/internal/core"

// Action is a requested state change. The set is closed: only the types in
// this file implement it. Actions are values; a pointer to one is accepted
// and treated as the value it points to.
type Action interface {
	// Kind is the stable kebab-case name, used in logs and change events.
	Kind() string
	action()
}

type (
	// AddBudget sets the total allotted budget.
	AddBudget struct {
		Budget core.Money
	}

	ShowModal struct{}

	// CloseModal hides the form and abandons any edit in progress.
	CloseModal struct{}

	// AddExpense commits a draft under a freshly generated id and closes the form.
	AddExpense struct {
		Draft core.DraftExpense
	}

	// RemoveExpense deletes the expense with ID. Absent ids are a no-op.
	RemoveExpense struct {
		ID string
	}

	// GetExpenseByID starts editing the expense with ID and opens the form.
	GetExpenseByID struct {
		ID string
	}

	// UpdateExpense replaces the expense whose id matches Expense.ID and
	// ends editing.
	UpdateExpense struct {
		Expense core.Expense
	}

	// ResetApp clears budget and expenses. The category filter is kept.
	ResetApp struct{}

	// AddFilterCategory sets the category filter; "" shows everything.
	AddFilterCategory struct {
		ID string
	}
)

const (
	KindAddBudget         = "add-budget"
	KindShowModal         = "show-modal"
	KindCloseModal        = "close-modal"
	KindAddExpense        = "add-expense"
	KindRemoveExpense     = "remove-expense"
	KindGetExpenseByID    = "get-expense-by-id"
	KindUpdateExpense     = "update-expense"
	KindResetApp          = "reset-app"
	KindAddFilterCategory = "add-filter-category"
)

func (AddBudget) Kind() string         { return KindAddBudget }
func (ShowModal) Kind() string         { return KindShowModal }
func (CloseModal) Kind() string        { return KindCloseModal }
func (AddExpense) Kind() string        { return KindAddExpense }
func (RemoveExpense) Kind() string     { return KindRemoveExpense }
func (GetExpenseByID) Kind() string    { return KindGetExpenseByID }
func (UpdateExpense) Kind() string     { return KindUpdateExpense }
func (ResetApp) Kind() string          { return KindResetApp }
func (AddFilterCategory) Kind() string { return KindAddFilterCategory }

func (AddBudget) action()         {}
func (ShowModal) action()         {}
func (CloseModal) action()        {}
func (AddExpense) action()        {}
func (RemoveExpense) action()     {}
func (GetExpenseByID) action()    {}
func (UpdateExpense) action()     {}
func (ResetApp) action()          {}
func (AddFilterCategory) action() {}

// canonical turns a pointer to a known action into its value. A nil action,
// or a nil pointer to one, yields nil.
func canonical(a Action) Action {
	switch a := a.(type) {
	case *AddBudget:
		return deref(a)
	case *ShowModal:
		return deref(a)
	case *CloseModal:
		return deref(a)
	case *AddExpense:
		return deref(a)
	case *RemoveExpense:
		return deref(a)
	case *GetExpenseByID:
		return deref(a)
	case *UpdateExpense:
		return deref(a)
	case *ResetApp:
		return deref(a)
	case *AddFilterCategory:
		return deref(a)
	}
	return a
}

func deref[T Action](p *T) Action {
	if p == nil {
		return nil
	}
	return *p
}
