package log

// Common field names for structured logging
const (
	FieldComponent      = "component"
	FieldError          = "error"
	FieldOperation      = "operation"
	FieldAction         = "action"
	FieldExpenseID      = "expense_id"
	FieldExpenseName    = "expense_name"
	FieldAmount         = "amount"
	FieldCategory       = "category"
	FieldBudget         = "budget"
	FieldSpent          = "spent"
	FieldRemaining      = "remaining"
	FieldExpenseCount   = "expense_count"
	FieldKey            = "key"
	FieldBackend        = "backend"
	FieldPath           = "path"
	FieldExchange       = "exchange"
	FieldQueue          = "queue"
	FieldSubscriberName = "subscriber"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentStore   = "store"
	ComponentPersist = "persist"
	ComponentStorage = "storage"
	ComponentEvents  = "events"
	ComponentCLI     = "cli"
)

// Operations defines standard operation names
const (
	OpLoad     = "load"
	OpSave     = "save"
	OpDispatch = "dispatch"
	OpPublish  = "publish"
	OpValidate = "validate"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithAction adds the kind of a dispatched action
func (f LogFields) WithAction(kind string) LogFields {
	f[FieldAction] = kind
	return f
}

// WithTotals adds the budget figures, formatted as decimal strings
func (f LogFields) WithTotals(budget, spent, remaining string, count int) LogFields {
	f[FieldBudget] = budget
	f[FieldSpent] = spent
	f[FieldRemaining] = remaining
	f[FieldExpenseCount] = count
	return f
}

// WithExpense adds expense-related fields
func (f LogFields) WithExpense(id, name, amount, category string) LogFields {
	f[FieldExpenseID] = id
	f[FieldExpenseName] = name
	f[FieldAmount] = amount
	f[FieldCategory] = category
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
