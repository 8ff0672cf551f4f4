package telegram

import (
	"context"

	"github.com/vitaliy-ukiru/fsm-telebot"

	"github.com/kvlasov/raspbot/internal/login"
	"github.com/kvlasov/raspbot/internal/sessions"
	"github.com/kvlasov/raspbot/pkg/errors"
	"github.com/kvlasov/raspbot/pkg/logger"
)

// sessionStorage adapts the session store to fsm.Storage, so the FSM
// manager routes text messages by the same persisted login_state key the
// flow itself writes. Nothing is cached in-process: the store stays the
// single source of truth.
type sessionStorage struct {
	ctx   context.Context
	store sessions.Store
	log   logger.Logger
}

func newSessionStorage(ctx context.Context, store sessions.Store, log logger.Logger) *sessionStorage {
	return &sessionStorage{ctx: ctx, store: store, log: log.With("fsm_storage")}
}

func (s *sessionStorage) GetState(_, userID int64) (fsm.State, error) {
	raw, err := s.store.Get(s.ctx, login.StateKey(userID))
	if errors.Is(err, sessions.ErrNotFound) {
		return fsm.DefaultState, nil
	}
	if err != nil {
		return fsm.DefaultState, errors.WrapFail(err, "read login state")
	}

	return fsm.State(raw), nil
}

func (s *sessionStorage) SetState(_, userID int64, state fsm.State) error {
	if state == fsm.DefaultState {
		return errors.WrapFail(s.store.Delete(s.ctx, login.StateKey(userID)), "drop login state")
	}
	return errors.WrapFail(s.store.Set(s.ctx, login.StateKey(userID), string(state)), "store login state")
}

func (s *sessionStorage) ResetState(_, userID int64, withData bool) error {
	if withData {
		return errors.WrapFail(
			s.store.DeleteMany(s.ctx, login.TransientKeys(userID)),
			"drop login keys",
		)
	}
	return errors.WrapFail(s.store.Delete(s.ctx, login.StateKey(userID)), "drop login state")
}

// UpdateData maps fsm data keys onto the {uid}:login_{key} convention.
// Only string payloads exist in this bot.
func (s *sessionStorage) UpdateData(_, userID int64, key string, data any) error {
	storeKey := dataKey(userID, key)

	if data == nil {
		return errors.WrapFail(s.store.Delete(s.ctx, storeKey), "drop login data key")
	}

	value, ok := data.(string)
	if !ok {
		return errors.Errorf("unsupported login data type %T", data)
	}

	return errors.WrapFail(s.store.Set(s.ctx, storeKey, value), "store login data key")
}

func (s *sessionStorage) GetData(_, userID int64, key string, to any) error {
	target, ok := to.(*string)
	if !ok {
		return errors.Errorf("unsupported login data target %T", to)
	}

	value, err := s.store.Get(s.ctx, dataKey(userID, key))
	if errors.Is(err, sessions.ErrNotFound) {
		return fsm.ErrNotFound
	}
	if err != nil {
		return errors.WrapFail(err, "read login data key")
	}

	*target = value
	return nil
}

func (s *sessionStorage) Close() error {
	// the session store is owned by main, nothing to do here
	return nil
}

func dataKey(userID int64, key string) string {
	switch key {
	case "username":
		return login.UsernameKey(userID)
	case "university":
		return login.UniversityKey(userID)
	default:
		return login.StateKey(userID) + "_" + key
	}
}
