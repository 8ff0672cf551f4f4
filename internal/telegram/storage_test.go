package telegram

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vitaliy-ukiru/fsm-telebot"

	"github.com/kvlasov/raspbot/internal/login"
	"github.com/kvlasov/raspbot/internal/sessions"
	"github.com/kvlasov/raspbot/pkg/logger"
)

func newTestStorage(t *testing.T) (*sessionStorage, sessions.Store) {
	t.Helper()

	ctx := context.Background()
	store, err := sessions.New(ctx, logger.Nop(), sessions.Config{Backend: sessions.BackendMemory})
	require.NoError(t, err)

	return newSessionStorage(ctx, store, logger.Nop()), store
}

func TestSessionStorage_States(t *testing.T) {
	s, store := newTestStorage(t)

	state, err := s.GetState(0, testUser)
	require.NoError(t, err)
	require.Equal(t, fsm.DefaultState, state, "absent key means idle")

	require.NoError(t, s.SetState(0, testUser, waitUsernameState))

	state, err = s.GetState(0, testUser)
	require.NoError(t, err)
	require.Equal(t, waitUsernameState, state)

	// the state must live in the session store, not in process memory
	raw, err := store.Get(context.Background(), login.StateKey(testUser))
	require.NoError(t, err)
	require.Equal(t, login.StateWaitingLogin, raw)

	require.NoError(t, s.SetState(0, testUser, fsm.DefaultState))

	state, err = s.GetState(0, testUser)
	require.NoError(t, err)
	require.Equal(t, fsm.DefaultState, state)
}

func TestSessionStorage_ResetWithData(t *testing.T) {
	ctx := context.Background()
	s, store := newTestStorage(t)

	require.NoError(t, store.SetMany(ctx, map[string]string{
		login.StateKey(testUser):      login.StateWaitingPassword,
		login.UsernameKey(testUser):   "alice@uni.edu",
		login.UniversityKey(testUser): "T",
	}))

	require.NoError(t, s.ResetState(0, testUser, true))

	for _, key := range login.TransientKeys(testUser) {
		_, err := store.Get(ctx, key)
		require.ErrorIs(t, err, sessions.ErrNotFound)
	}
}

func TestSessionStorage_Data(t *testing.T) {
	ctx := context.Background()
	s, store := newTestStorage(t)

	require.NoError(t, s.UpdateData(0, testUser, "username", "ivanov"))

	raw, err := store.Get(ctx, login.UsernameKey(testUser))
	require.NoError(t, err)
	require.Equal(t, "ivanov", raw)

	var got string
	require.NoError(t, s.GetData(0, testUser, "username", &got))
	require.Equal(t, "ivanov", got)

	require.NoError(t, s.UpdateData(0, testUser, "username", nil))
	require.ErrorIs(t, s.GetData(0, testUser, "username", &got), fsm.ErrNotFound)

	require.Error(t, s.UpdateData(0, testUser, "username", 17), "only strings are stored")
}
