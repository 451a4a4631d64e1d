// Package backend opens the storage and change-feed collaborators selected
// by configuration.
package backend

import (
	"context"
	"errors"
	"fmt"

	"bilancio/internal/config"
	"bilancio/internal/events"
	"bilancio/internal/kv"
	"bilancio/internal/log"
)

// CleanupFunc represents a cleanup function for resources
type CleanupFunc func() error

// Result holds everything opened for one backend.
type Result struct {
	Store     kv.Store
	Publisher *events.Publisher // nil when the change feed is disabled
	Cleanup   CleanupFunc
}

// Type represents the type of backend
type Type string

const (
	SQLite Type = config.BackendSQLite
	Memory Type = config.BackendMemory
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case SQLite, Memory:
		return true
	default:
		return false
	}
}

// Dialer opens the AMQP change feed; replaced in tests.
type Dialer func(url, exchange, queue string, logger *log.Logger) (*events.Publisher, error)

type Factory struct {
	logger *log.Logger
	dial   Dialer
}

func NewFactory(logger *log.Logger) *Factory {
	if logger == nil {
		logger = log.Discard()
	}
	return &Factory{logger: logger.WithComponent(log.ComponentStorage), dial: events.Dial}
}

// WithDialer replaces the AMQP dialer.
func (f *Factory) WithDialer(d Dialer) *Factory {
	f.dial = d
	return f
}

// Open creates the key-value store and, when configured, the publisher.
// A change feed that cannot be reached is logged and skipped.
func (f *Factory) Open(ctx context.Context, cfg *config.Config) (*Result, error) {
	if cfg == nil {
		return nil, errors.New("app config is nil")
	}
	t := Type(cfg.DataBackend)
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.DataBackend)
	}

	var store kv.Store
	switch t {
	case SQLite:
		s, err := kv.NewSQLite(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite store: %w", err)
		}
		store = s
		f.logger.InfoContext(ctx, "Initialized SQLite backend", log.FieldPath, cfg.SQLiteDBPath)
	case Memory:
		store = kv.NewMemory(nil)
		f.logger.InfoContext(ctx, "Initialized memory backend; state will not survive the process")
	}

	var publisher *events.Publisher
	if cfg.AMQPURL != "" {
		p, err := f.dial(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, f.logger)
		if err != nil {
			f.logger.WarnContext(ctx, "Failed to initialize AMQP publisher, continuing without change feed", log.FieldError, err)
		} else {
			publisher = p
			f.logger.InfoContext(ctx, "Initialized AMQP publisher",
				log.FieldExchange, cfg.AMQPExchange,
				log.FieldQueue, cfg.AMQPQueue)
		}
	}

	return &Result{
		Store:     store,
		Publisher: publisher,
		Cleanup: func() error {
			var errs []error
			if err := publisher.Close(); err != nil {
				errs = append(errs, fmt.Errorf("amqp: %w", err))
			}
			if err := store.Close(); err != nil {
				errs = append(errs, fmt.Errorf("storage: %w", err))
			}
			return errors.Join(errs...)
		},
	}, nil
}
