package login

import (
	"fmt"
	"strconv"
)

// Login-flow state values as persisted in the session store.
const (
	StateWaitingLogin    = "waiting_login"
	StateWaitingPassword = "waiting_password"
)

// RefKey is where a user's resolved schedule ref lives: the bare user id.
func RefKey(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

func StateKey(userID int64) string {
	return fmt.Sprintf("%d:login_state", userID)
}

func UsernameKey(userID int64) string {
	return fmt.Sprintf("%d:login_username", userID)
}

func UniversityKey(userID int64) string {
	return fmt.Sprintf("%d:login_university", userID)
}

// TransientKeys lists the three login-flow keys that are created and
// deleted together.
func TransientKeys(userID int64) []string {
	return []string{StateKey(userID), UsernameKey(userID), UniversityKey(userID)}
}
