package timetable

import "encoding/json"

// Auth is the outcome of a credential exchange. State == -1 means wrong
// credentials; that is a regular outcome callers must check, not an error.
type Auth struct {
	State       int
	AccessToken string
	UserID      string
}

const StateWrongCredentials = -1

// Item is one class meeting. The upstream payload keys are Cyrillic; they
// are a wire contract and stay confined to this package.
type Item struct {
	Discipline string `json:"дисциплина"`
	Teacher    string `json:"преподаватель"`
	Group      string `json:"группа"`
	Start      string `json:"начало"`
	End        string `json:"конец"`
	Room       string `json:"аудитория"`
	Date       string `json:"дата"`
	WeekdayNum int    `json:"деньНедели"`
	Weekday    string `json:"день_недели"`
}

// Payload is a schedule response. OK is false when the fetch degraded and
// Items should be treated as "nothing scheduled".
type Payload struct {
	Items []Item
	OK    bool
}

type authResponse struct {
	State int `json:"state"`
	Data  struct {
		AccessToken string `json:"accessToken"`
		Data        struct {
			ID json.Number `json:"id"`
		} `json:"data"`
	} `json:"data"`
}

type studentResponse struct {
	Data struct {
		Group struct {
			Item2 json.Number `json:"item2"`
		} `json:"group"`
	} `json:"data"`
}

type teacherResponse struct {
	Data struct {
		TeacherID json.Number `json:"teacherID"`
	} `json:"data"`
}

type scheduleResponse struct {
	Data struct {
		Rasp []Item `json:"rasp"`
	} `json:"data"`
}
