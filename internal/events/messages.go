package events

import (
	"encoding/json"
	"time"

	"bilancio/internal/budget"
)

// StateChangedMessage describes one committed transition. Amounts are decimal
// strings so consumers do not deal with float rounding.
type StateChangedMessage struct {
	Action       string    `json:"action"`
	Budget       string    `json:"budget"`
	Spent        string    `json:"spent"`
	Remaining    string    `json:"remaining"`
	ExpenseCount int       `json:"expense_count"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewStateChangedMessage summarizes next after action a.
func NewStateChangedMessage(a budget.Action, next budget.State, now time.Time) *StateChangedMessage {
	return &StateChangedMessage{
		Action:       a.Kind(),
		Budget:       next.Budget.String(),
		Spent:        budget.SpentTotal(next).String(),
		Remaining:    budget.RemainingBudget(next).String(),
		ExpenseCount: len(next.Expenses),
		Timestamp:    now.UTC(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *StateChangedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// StateChangedMessageFromJSON decodes a message body.
func StateChangedMessageFromJSON(data []byte) (*StateChangedMessage, error) {
	var msg StateChangedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
