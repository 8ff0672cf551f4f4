package sessions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kvlasov/raspbot/pkg/logger"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	store, err := New(ctx, logger.Nop(), Config{Backend: BackendMemory})
	require.NoError(t, err)

	_, err = store.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, "a", "1"))
	value, err := store.Get(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, "1", value)

	require.NoError(t, store.SetMany(ctx, map[string]string{"b": "2", "c": "3"}))
	value, err = store.Get(ctx, "c")
	require.NoError(t, err)
	require.Equal(t, "3", value)

	require.NoError(t, store.Delete(ctx, "a"))
	_, err = store.Get(ctx, "a")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.DeleteMany(ctx, []string{"b", "c", "missing"}))
	_, err = store.Get(ctx, "b")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Ping(ctx))
	require.NoError(t, store.Close(ctx))
}

func TestNew_UnknownBackend(t *testing.T) {
	_, err := New(context.Background(), logger.Nop(), Config{Backend: "cassandra"})
	require.Error(t, err)
}

func TestNew_DefaultsToMemory(t *testing.T) {
	store, err := New(context.Background(), logger.Nop(), Config{})
	require.NoError(t, err)
	require.NoError(t, store.Ping(context.Background()))
}
