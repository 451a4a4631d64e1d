// Package budget holds the budget/expense state machine.
//
// State is changed only through Dispatch on a Store, which runs the pure
// Reduce function for the action and then notifies subscribers (persistence,
// change feed) synchronously. Derived figures such as the remaining budget
// are computed from the State on every read and never stored.
package budget
