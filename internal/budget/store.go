package budget

import (
	"context"
	"fmt"
	"sync"

	"bilancio/internal/core"
	"bilancio/internal/log"
)

// Subscriber is notified after every dispatch, with the state before and
// after the transition. It runs synchronously on the dispatching goroutine
// and must not call back into the same Store.
type Subscriber interface {
	StateChanged(ctx context.Context, a Action, prev, next State) error
}

// SubscriberFunc adapts a function to Subscriber.
type SubscriberFunc func(ctx context.Context, a Action, prev, next State) error

func (f SubscriberFunc) StateChanged(ctx context.Context, a Action, prev, next State) error {
	return f(ctx, a, prev, next)
}

// Store owns the current State. Construct one per application and hand it
// to whatever issues actions.
type Store struct {
	mu          sync.Mutex
	state       State
	newID       IDGenerator
	subscribers []Subscriber
	logger      *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the UUID generator used for new expenses.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger.WithComponent(log.ComponentStore)
		}
	}
}

// WithSubscriber registers sub at construction time.
func WithSubscriber(sub Subscriber) Option {
	return func(s *Store) {
		s.subscribers = append(s.subscribers, sub)
	}
}

func NewStore(initial State, opts ...Option) *Store {
	s := &Store{
		state:  initial.Clone(),
		newID:  NewID,
		logger: log.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe adds sub after the already registered subscribers.
func (s *Store) Subscribe(sub Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, sub)
}

// Dispatch applies a to the held state and then runs every subscriber in
// registration order. The new state is kept even when a subscriber fails;
// the first subscriber error is returned and later subscribers still run.
// Dispatches are serialized: a second call waits until the first one has
// finished notifying its subscribers.
func (s *Store) Dispatch(ctx context.Context, a Action) error {
	a = canonical(a)
	if a == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state
	next := Reduce(prev.Clone(), a, s.newID)
	s.state = next

	s.logger.DebugContext(ctx, "Action dispatched",
		log.NewFields().
			WithOperation(log.OpDispatch).
			WithAction(a.Kind()).
			WithTotals(next.Budget.String(), SpentTotal(next).String(), RemainingBudget(next).String(), len(next.Expenses)).
			ToSlice()...)

	var firstErr error
	for i, sub := range s.subscribers {
		if err := sub.StateChanged(ctx, a, prev.Clone(), next.Clone()); err != nil {
			s.logger.ErrorContext(ctx, "Subscriber failed",
				log.FieldAction, a.Kind(),
				log.FieldSubscriberName, i,
				log.FieldError, err)
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: subscriber %d: %w", a.Kind(), i, err)
			}
		}
	}
	return firstErr
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *Store) SpentTotal() core.Money {
	return SpentTotal(s.State())
}

func (s *Store) RemainingBudget() core.Money {
	return RemainingBudget(s.State())
}
