package telegram

import (
	"strings"

	"github.com/vitaliy-ukiru/fsm-telebot"
	"gopkg.in/telebot.v3"

	"github.com/kvlasov/raspbot/internal/locale"
	"github.com/kvlasov/raspbot/internal/login"
	"github.com/kvlasov/raspbot/internal/timetable"
	"github.com/kvlasov/raspbot/pkg/errors"
)

const (
	waitUsernameState fsm.State = login.StateWaitingLogin
	waitPasswordState fsm.State = login.StateWaitingPassword
)

func (b *Bot) setupHandlers() {
	manager := fsm.NewManager(
		b.bot,
		nil,
		newSessionStorage(b.ctx, b.store, b.log),
		nil,
	)

	manager.Bind("/start", fsm.AnyState, b.start)
	manager.Bind("/login", fsm.AnyState, b.login)
	manager.Bind("/l", fsm.AnyState, b.login)

	manager.Bind(telebot.OnText, waitUsernameState, b.loginReadUsername)
	manager.Bind(telebot.OnText, waitPasswordState, b.loginReadPassword)
	manager.Bind(telebot.OnText, fsm.DefaultState, b.menuText)

	_, tpi, dstu := universityMenu()
	b.bot.Handle(&tpi, b.chooseInstitution(timetable.InstitutionTPI))
	b.bot.Handle(&dstu, b.chooseInstitution(timetable.InstitutionDSTU))
}

func (b *Bot) start(c telebot.Context, _ fsm.Context) error {
	text := locale.Localize("StartHandler", map[string]string{"BtnLogin": btnLogin})
	return c.Send(text, loginMenu())
}

func (b *Bot) login(c telebot.Context, s fsm.Context) error {
	sender := c.Sender()
	if sender == nil {
		return b.fail(c, errors.Fail("get sender"))
	}

	if b.flow.Mode() == login.ModeChoice {
		markup, _, _ := universityMenu()
		return c.Send(locale.Localize("ChooseUniversity", nil), markup)
	}

	err := b.flow.Begin(b.ctx, sender.ID)
	if err != nil {
		return b.fail(c, errors.WrapFail(err, "begin login flow"))
	}

	return c.Send(locale.Localize("LoginHandler", nil))
}

// chooseInstitution handles the inline institution pick in choice mode.
func (b *Bot) chooseInstitution(institution string) telebot.HandlerFunc {
	return func(c telebot.Context) error {
		sender := c.Sender()
		if sender == nil {
			return b.fail(c, errors.Fail("get sender"))
		}

		err := b.flow.ChooseInstitution(b.ctx, sender.ID, institution)
		if err != nil {
			return b.fail(c, errors.WrapFail(err, "choose institution"))
		}

		return c.Edit(locale.Localize("LoginHandler", nil))
	}
}

func (b *Bot) loginReadUsername(c telebot.Context, s fsm.Context) error {
	sender := c.Sender()
	if sender == nil {
		return b.fail(c, errors.Fail("get sender"))
	}

	text := strings.TrimSpace(c.Text())
	if isMenuCaption(text) {
		return b.menuText(c, s)
	}

	err := b.flow.ReadUsername(b.ctx, sender.ID, text)
	if err != nil {
		return b.fail(c, errors.WrapFail(err, "store username"))
	}

	return c.Send(locale.Localize("LoginEnterPassword", nil))
}

func (b *Bot) loginReadPassword(c telebot.Context, s fsm.Context) error {
	sender := c.Sender()
	if sender == nil {
		return b.fail(c, errors.Fail("get sender"))
	}

	text := strings.TrimSpace(c.Text())
	if isMenuCaption(text) {
		return b.menuText(c, s)
	}

	msgKey, loggedIn := b.flow.ReadPassword(b.ctx, sender.ID, text)
	if !loggedIn {
		return c.Send(locale.Localize(msgKey, nil))
	}

	text = locale.Localize(msgKey, map[string]string{"BtnLogout": btnLogout})
	return c.Send(text, mainMenu())
}

func (b *Bot) logout(c telebot.Context) error {
	sender := c.Sender()
	if sender == nil {
		return b.fail(c, errors.Fail("get sender"))
	}

	msgKey, loggedOut := b.flow.Logout(b.ctx, sender.ID)
	if !loggedOut {
		return c.Send(locale.Localize(msgKey, nil))
	}

	return c.Send(locale.Localize(msgKey, nil), loginMenu())
}

// menuText dispatches a menu press. The login text handlers delegate here
// too, so captions keep working mid-flow. Free text that matches no caption
// is silently ignored.
func (b *Bot) menuText(c telebot.Context, s fsm.Context) error {
	switch strings.TrimSpace(c.Text()) {
	case btnToday:
		return b.sendTimetable(c, timetable.PeriodToday)
	case btnTomorrow:
		return b.sendTimetable(c, timetable.PeriodTomorrow)
	case btnWeek:
		return b.sendTimetable(c, timetable.PeriodWeek)
	case btnHelp:
		return b.help(c)
	case btnLogin:
		return b.login(c, s)
	case btnLogout:
		return b.logout(c)
	default:
		return nil
	}
}

func (b *Bot) help(c telebot.Context) error {
	text := locale.Localize("HelpHandler", map[string]string{
		"BtnToday":    btnToday,
		"BtnTomorrow": btnTomorrow,
		"BtnWeek":     btnWeek,
	})
	return c.Send(text)
}

func (b *Bot) sendTimetable(c telebot.Context, period timetable.Period) error {
	sender := c.Sender()
	if sender == nil {
		return b.fail(c, errors.Fail("get sender"))
	}

	ref, err := b.flow.Ref(b.ctx, sender.ID)
	if errors.Is(err, login.ErrNotAuthenticated) {
		return c.Send(locale.Localize("TimetableLoginFirstError", nil))
	}
	if err != nil {
		return b.fail(c, errors.WrapFail(err, "read resolved ref"))
	}

	payload := b.timetable.Schedule(b.ctx, ref)

	text, mode := timetable.Format(payload, ref, period, timetable.Now())
	if text == "" {
		return c.Send(locale.Localize("TimetableEmpty", nil))
	}

	return c.Send(text, &telebot.SendOptions{ParseMode: mode})
}

// fail logs the error and degrades to the generic try-later message, so
// nothing below this layer ever leaks into the chat.
func (b *Bot) fail(c telebot.Context, err error) error {
	b.log.Error(err)
	return c.Send(locale.Localize("TryLaterError", nil))
}
