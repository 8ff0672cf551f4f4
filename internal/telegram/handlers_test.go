package telegram

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v3"

	"github.com/kvlasov/raspbot/internal/login"
	"github.com/kvlasov/raspbot/internal/sessions"
	"github.com/kvlasov/raspbot/internal/timetable"
	"github.com/kvlasov/raspbot/pkg/logger"
)

const testUser int64 = 42

// recordingAPI keeps the credentials it was called with and rejects every
// authentication attempt, so flows never get past the password step.
type recordingAPI struct {
	username string
	password string
}

func (a *recordingAPI) Authenticate(_ context.Context, _, username, password string) (timetable.Auth, error) {
	a.username = username
	a.password = password
	return timetable.Auth{State: timetable.StateWrongCredentials}, nil
}

func (a *recordingAPI) StudentGroupID(context.Context, string, string, string) (int, error) {
	return 0, nil
}

func (a *recordingAPI) TeacherID(context.Context, string, string, string) (int, error) {
	return 0, nil
}

func (a *recordingAPI) Schedule(context.Context, timetable.Ref) timetable.Payload {
	return timetable.Payload{}
}

func newTestBot(t *testing.T) (*Bot, sessions.Store, *recordingAPI) {
	t.Helper()

	store, err := sessions.New(context.Background(), logger.Nop(), sessions.Config{
		Backend: sessions.BackendMemory,
	})
	require.NoError(t, err)

	api := &recordingAPI{}
	flow := login.New(store, api, logger.Nop(), login.Config{})

	tb, err := telebot.NewBot(telebot.Settings{Synchronous: true, Offline: true})
	require.NoError(t, err)

	b := &Bot{
		bot:       tb,
		ctx:       context.Background(),
		store:     store,
		flow:      flow,
		timetable: api,
		log:       logger.Nop(),
	}
	b.setupHandlers()

	return b, store, api
}

func textUpdate(text string) telebot.Update {
	return telebot.Update{Message: &telebot.Message{
		ID:     1,
		Sender: &telebot.User{ID: testUser},
		Chat:   &telebot.Chat{ID: testUser},
		Text:   text,
	}}
}

func TestHandlers_MenuCaptionKeepsMeaningMidFlow(t *testing.T) {
	ctx := context.Background()
	b, store, _ := newTestBot(t)

	require.NoError(t, b.flow.Begin(ctx, testUser))

	b.bot.ProcessUpdate(textUpdate(btnToday))

	_, err := store.Get(ctx, login.UsernameKey(testUser))
	require.ErrorIs(t, err, sessions.ErrNotFound, "caption must not be captured as a username")

	state, err := store.Get(ctx, login.StateKey(testUser))
	require.NoError(t, err)
	require.Equal(t, login.StateWaitingLogin, state, "caption press leaves the flow pending")
}

func TestHandlers_FreeTextMidFlowIsUsername(t *testing.T) {
	ctx := context.Background()
	b, store, _ := newTestBot(t)

	require.NoError(t, b.flow.Begin(ctx, testUser))

	b.bot.ProcessUpdate(textUpdate("  ivanov@edu.ru "))

	username, err := store.Get(ctx, login.UsernameKey(testUser))
	require.NoError(t, err)
	require.Equal(t, "ivanov@edu.ru", username)

	state, err := store.Get(ctx, login.StateKey(testUser))
	require.NoError(t, err)
	require.Equal(t, login.StateWaitingPassword, state)
}

func TestHandlers_PasswordIsTrimmed(t *testing.T) {
	ctx := context.Background()
	b, _, api := newTestBot(t)

	require.NoError(t, b.flow.Begin(ctx, testUser))
	b.bot.ProcessUpdate(textUpdate("ivanov@edu.ru"))
	b.bot.ProcessUpdate(textUpdate("  s3cret \n"))

	require.Equal(t, "ivanov@edu.ru", api.username)
	require.Equal(t, "s3cret", api.password)
}
