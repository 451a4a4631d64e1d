// Package kv provides the durable local key-value store that budget
// snapshots are written to.
package kv

import "context"

// Store holds string values under string keys. Set overwrites the whole
// value; there are no partial writes and no transactions across keys.
type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
