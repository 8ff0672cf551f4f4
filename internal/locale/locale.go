// Package locale maps message keys to Russian display text.
// Placeholders look like {Name} and are substituted from params.
package locale

import "strings"

var messages = map[string]string{
	"StartHandler": "Привет! Я показываю расписание занятий ДГТУ.\n" +
		"Нажми «{BtnLogin}» или отправь /login, чтобы привязать свою группу.",
	"ChooseUniversity":                "Выберите университет:",
	"LoginHandler":                    "Введите логин от личного кабинета:",
	"LoginEnterPassword":              "Теперь введите пароль:",
	"LoginWrongLoginOrPasswordError":  "Неверный логин или пароль. Попробуйте ещё раз: /login",
	"LoginCompleteMessage":            "Готово! Теперь вам доступно расписание.\nВыйти из аккаунта можно кнопкой «{BtnLogout}».",
	"LogoutNotAuthError":              "Вы не авторизованы.",
	"LogoutCompleteMessage":           "Вы вышли из аккаунта.",
	"HelpHandler": "Доступные кнопки:\n" +
		"{BtnToday} — расписание на сегодня\n" +
		"{BtnTomorrow} — расписание на завтра\n" +
		"{BtnWeek} — расписание на неделю",
	"TimetableLoginFirstError": "Сначала авторизуйтесь: /login",
	"TimetableEmpty":           "Занятий нет 🎉",
	"TryLaterError":            "Что-то пошло не так, попробуйте позже.",
}

// Localize renders the message for key, substituting {Param} placeholders.
// Unknown keys render as the key itself so a missing entry is visible in chat.
func Localize(key string, params map[string]string) string {
	msg, ok := messages[key]
	if !ok {
		return key
	}

	for name, value := range params {
		msg = strings.ReplaceAll(msg, "{"+name+"}", value)
	}

	return msg
}
