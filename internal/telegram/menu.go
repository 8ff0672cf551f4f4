package telegram

import "gopkg.in/telebot.v3"

// Fixed menu captions. Free text matching one of these is a menu press,
// everything else outside a login flow is ignored.
const (
	btnToday    = "📖 Сегодня"
	btnTomorrow = "📖 Завтра"
	btnWeek     = "📖 Неделя"
	btnHelp     = "ℹ Помощь"
	btnLogin    = "🔑 Авторизация"
	btnLogout   = "🚪 Выход"
)

// isMenuCaption reports whether text is one of the fixed menu captions.
// A caption press keeps its meaning even in the middle of a login flow.
func isMenuCaption(text string) bool {
	switch text {
	case btnToday, btnTomorrow, btnWeek, btnHelp, btnLogin, btnLogout:
		return true
	}
	return false
}

func mainMenu() *telebot.ReplyMarkup {
	m := &telebot.ReplyMarkup{ResizeKeyboard: true}
	m.Reply(
		m.Row(m.Text(btnToday), m.Text(btnTomorrow)),
		m.Row(m.Text(btnWeek), m.Text(btnHelp)),
		m.Row(m.Text(btnLogout)),
	)
	return m
}

func loginMenu() *telebot.ReplyMarkup {
	m := &telebot.ReplyMarkup{ResizeKeyboard: true}
	m.Reply(m.Row(m.Text(btnLogin)))
	return m
}

// universityMenu is the inline institution picker used in choice mode.
func universityMenu() (*telebot.ReplyMarkup, telebot.Btn, telebot.Btn) {
	m := &telebot.ReplyMarkup{}
	tpi := m.Data("ПИ ДГТУ", "uni_tpi")
	dstu := m.Data("ДГТУ", "uni_dstu")
	m.Inline(m.Row(tpi, dstu))
	return m, tpi, dstu
}
