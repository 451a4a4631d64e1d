// Package persist snapshots the budget and the expense list into a
// key-value store and restores them at startup.
//
// Layout: key "budget" holds the budget as a decimal string ("500",
// "12.5"); key "expenses" holds a JSON array of
// {id, expenseName, amount, category, date} objects, with date in
// core.DateLayout or null. There is no version or schema tag.
package persist

import (
	"context"
	"encoding/json"
	"fmt"

	"bilancio/internal/budget"
	"bilancio/internal/core"
	"bilancio/internal/kv"
	"bilancio/internal/log"
)

const (
	KeyBudget   = "budget"
	KeyExpenses = "expenses"
)

// Snapshot is the persisted part of the budget state.
type Snapshot struct {
	Budget   core.Money
	Expenses []core.Expense
}

// SnapshotOf extracts the persisted fields from s.
func SnapshotOf(s budget.State) Snapshot {
	return Snapshot{Budget: s.Budget, Expenses: s.Expenses}
}

// State returns a fresh State seeded from the snapshot.
func (s Snapshot) State() budget.State {
	expenses := s.Expenses
	if expenses == nil {
		expenses = []core.Expense{}
	}
	return budget.State{Budget: s.Budget, Expenses: expenses}.Clone()
}

type Adapter struct {
	store  kv.Store
	logger *log.Logger
}

func New(store kv.Store, logger *log.Logger) *Adapter {
	if logger == nil {
		logger = log.Discard()
	}
	return &Adapter{store: store, logger: logger.WithComponent(log.ComponentPersist)}
}

// Load reads both slots. A missing budget is 0 and missing expenses are an
// empty list; present but undecodable values are errors.
func (a *Adapter) Load(ctx context.Context) (Snapshot, error) {
	snap := Snapshot{Expenses: []core.Expense{}}

	raw, ok, err := a.store.Get(ctx, KeyBudget)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load budget: %w", err)
	}
	if ok && raw != "" {
		// Same decimal form as JSON amounts, so a negative budget loads back.
		if err := snap.Budget.UnmarshalJSON([]byte(raw)); err != nil {
			return Snapshot{}, fmt.Errorf("decode budget %q: %w", raw, err)
		}
	}

	raw, ok, err = a.store.Get(ctx, KeyExpenses)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load expenses: %w", err)
	}
	if ok && raw != "" {
		var expenses []core.Expense
		if err := json.Unmarshal([]byte(raw), &expenses); err != nil {
			return Snapshot{}, fmt.Errorf("decode expenses: %w", err)
		}
		if expenses != nil {
			snap.Expenses = expenses
		}
	}

	a.logger.DebugContext(ctx, "Snapshot loaded",
		log.FieldOperation, log.OpLoad,
		log.FieldBudget, snap.Budget.String(),
		log.FieldExpenseCount, len(snap.Expenses))
	return snap, nil
}

// Restore loads the snapshot as an initial State.
func (a *Adapter) Restore(ctx context.Context) (budget.State, error) {
	snap, err := a.Load(ctx)
	if err != nil {
		return budget.State{}, err
	}
	return snap.State(), nil
}

// Save overwrites the budget slot and then the expenses slot. The two writes
// are independent: if the second fails the first stays written.
func (a *Adapter) Save(ctx context.Context, snap Snapshot) error {
	expenses := snap.Expenses
	if expenses == nil {
		expenses = []core.Expense{}
	}
	body, err := json.Marshal(expenses)
	if err != nil {
		return fmt.Errorf("encode expenses: %w", err)
	}

	budgetText, err := snap.Budget.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode budget: %w", err)
	}
	if err := a.store.Set(ctx, KeyBudget, string(budgetText)); err != nil {
		return fmt.Errorf("save budget: %w", err)
	}
	if err := a.store.Set(ctx, KeyExpenses, string(body)); err != nil {
		return fmt.Errorf("save expenses: %w", err)
	}

	a.logger.DebugContext(ctx, "Snapshot saved",
		log.FieldOperation, log.OpSave,
		log.FieldBudget, snap.Budget.String(),
		log.FieldExpenseCount, len(expenses))
	return nil
}

// Subscriber saves the new state after every dispatch.
func (a *Adapter) Subscriber() budget.Subscriber {
	return budget.SubscriberFunc(func(ctx context.Context, _ budget.Action, _, next budget.State) error {
		return a.Save(ctx, SnapshotOf(next))
	})
}
