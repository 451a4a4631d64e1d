package backend

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bilancio/internal/config"
	"bilancio/internal/events"
	"bilancio/internal/kv"
	"bilancio/internal/log"
)

func TestTypeIsValid(t *testing.T) {
	assert.True(t, SQLite.IsValid())
	assert.True(t, Memory.IsValid())
	assert.False(t, Type("sheets").IsValid())
	assert.Equal(t, "sqlite", SQLite.String())
}

func TestOpenSQLite(t *testing.T) {
	cfg := &config.Config{DataBackend: "sqlite", SQLiteDBPath: filepath.Join(t.TempDir(), "b.db")}
	res, err := NewFactory(nil).Open(context.Background(), cfg)
	require.NoError(t, err)

	_, ok := res.Store.(*kv.SQLite)
	assert.True(t, ok)
	assert.Nil(t, res.Publisher)
	assert.NoError(t, res.Cleanup())
}

func TestOpenMemory(t *testing.T) {
	res, err := NewFactory(nil).Open(context.Background(), &config.Config{DataBackend: "memory"})
	require.NoError(t, err)
	_, ok := res.Store.(*kv.Memory)
	assert.True(t, ok)
	assert.NoError(t, res.Cleanup())
}

func TestOpenInvalid(t *testing.T) {
	_, err := NewFactory(nil).Open(context.Background(), &config.Config{DataBackend: "sheets"})
	assert.Error(t, err)
	_, err = NewFactory(nil).Open(context.Background(), nil)
	assert.Error(t, err)
}

func TestOpenUnreachableAMQPContinues(t *testing.T) {
	var dialed string
	f := NewFactory(nil).WithDialer(func(url, _, _ string, _ *log.Logger) (*events.Publisher, error) {
		dialed = url
		return nil, errors.New("connection refused")
	})

	res, err := f.Open(context.Background(), &config.Config{
		DataBackend:  "memory",
		AMQPURL:      "amqp://localhost:5672/",
		AMQPExchange: "bilancio",
		AMQPQueue:    "state_changes",
	})
	require.NoError(t, err)
	assert.Equal(t, "amqp://localhost:5672/", dialed)
	assert.Nil(t, res.Publisher)
	assert.NoError(t, res.Cleanup())
}
