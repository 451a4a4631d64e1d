package budget

import "bilancio/internal/core"

// State is the whole budget state. The zero value is an empty app: no
// budget, no expenses, modal closed, nothing being edited, no filter.
type State struct {
	Budget          core.Money
	ModalOpen       bool
	Expenses        []core.Expense
	EditingID       string
	CurrentCategory string
}

// Clone returns a copy that shares no slice memory with s.
func (s State) Clone() State {
	out := s
	if s.Expenses != nil {
		out.Expenses = append(make([]core.Expense, 0, len(s.Expenses)), s.Expenses...)
	}
	return out
}

// Find returns the expense with the given id.
func (s State) Find(id string) (core.Expense, bool) {
	for _, e := range s.Expenses {
		if e.ID == id {
			return e, true
		}
	}
	return core.Expense{}, false
}
