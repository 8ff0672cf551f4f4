// Package login drives the multi-turn authentication dialogue. All of its
// state lives in the session store, so a restart mid-flow loses nothing.
package login

import (
	"context"
	"regexp"

	"github.com/kvlasov/raspbot/internal/sessions"
	"github.com/kvlasov/raspbot/internal/timetable"
	"github.com/kvlasov/raspbot/pkg/errors"
	"github.com/kvlasov/raspbot/pkg/logger"
)

// ErrNotAuthenticated is returned by Ref when the user has no stored ref.
var ErrNotAuthenticated = errors.New("user is not authenticated")

// The one place where the student/teacher decision is made: usernames that
// look like an email address belong to students.
var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func New(store sessions.Store, api timetable.API, log logger.Logger, cfg Config) *Flow {
	return &Flow{
		store: store,
		api:   api,
		log:   log.With("login_flow"),
		cfg:   cfg.withDefaults(),
	}
}

type Flow struct {
	store sessions.Store
	api   timetable.API
	log   logger.Logger
	cfg   Config
}

// Mode reports the configured institution selection strategy.
func (f *Flow) Mode() string {
	return f.cfg.SelectionMode
}

// Begin starts the flow against the default institution and moves the user
// to the username step. In choice mode callers should show the institution
// keyboard and call ChooseInstitution instead.
func (f *Flow) Begin(ctx context.Context, userID int64) error {
	err := f.store.SetMany(ctx, map[string]string{
		StateKey(userID):      StateWaitingLogin,
		UniversityKey(userID): f.cfg.DefaultInstitution,
	})
	return errors.WrapFail(err, "init login state")
}

// ChooseInstitution handles an explicit institution pick. The previous
// resolved ref is replaced with the bare institution code as a provisional
// marker, matching how re-authentication always overwrites the old binding.
func (f *Flow) ChooseInstitution(ctx context.Context, userID int64, institution string) error {
	err := f.store.Delete(ctx, RefKey(userID))
	if err != nil {
		return errors.WrapFail(err, "drop old ref")
	}

	err = f.store.SetMany(ctx, map[string]string{
		RefKey(userID):        institution,
		StateKey(userID):      StateWaitingLogin,
		UniversityKey(userID): institution,
	})
	return errors.WrapFail(err, "init login state")
}

// ReadUsername stores the username verbatim and advances to the password
// step. No validation happens here; the email check runs at the end.
func (f *Flow) ReadUsername(ctx context.Context, userID int64, username string) error {
	err := f.store.SetMany(ctx, map[string]string{
		UsernameKey(userID): username,
		StateKey(userID):    StateWaitingPassword,
	})
	return errors.WrapFail(err, "store username")
}

// ReadPassword consumes the password and finishes the flow. Whatever
// happens the transient keys are gone afterwards. The returned message key
// is what the user should see; loggedIn reports whether a ref was stored.
func (f *Flow) ReadPassword(ctx context.Context, userID int64, password string) (msgKey string, loggedIn bool) {
	username, uErr := f.store.Get(ctx, UsernameKey(userID))
	university, iErr := f.store.Get(ctx, UniversityKey(userID))

	// Drop the transient keys before touching the upstream, so a crash
	// mid-authentication cannot leave a stale half-finished flow behind.
	err := f.store.DeleteMany(ctx, TransientKeys(userID))
	if err != nil {
		f.log.Error(errors.WrapFail(err, "cleanup login state"))
	}

	if uErr != nil || iErr != nil || username == "" || university == "" {
		f.log.Warnf("login flow for user %d lost its transient keys", userID)
		return "TryLaterError", false
	}

	auth, err := f.api.Authenticate(ctx, university, username, password)
	if err != nil {
		f.log.Error(errors.WrapFail(err, "authenticate user"))
		return "TryLaterError", false
	}

	if auth.State == timetable.StateWrongCredentials {
		return "LoginWrongLoginOrPasswordError", false
	}

	ref, err := f.resolveRef(ctx, university, username, auth)
	if err != nil {
		f.log.Error(errors.WrapFail(err, "resolve schedule ref"))
		return "TryLaterError", false
	}

	err = f.store.Set(ctx, RefKey(userID), ref.String())
	if err != nil {
		f.log.Error(errors.WrapFail(err, "store resolved ref"))
		return "TryLaterError", false
	}

	return "LoginCompleteMessage", true
}

func (f *Flow) resolveRef(ctx context.Context, university, username string, auth timetable.Auth) (timetable.Ref, error) {
	if emailRe.MatchString(username) {
		groupID, err := f.api.StudentGroupID(ctx, university, auth.AccessToken, auth.UserID)
		if err != nil {
			return timetable.Ref{}, errors.WrapFail(err, "resolve student group id")
		}
		return timetable.Ref{Institution: university, ID: groupID}, nil
	}

	teacherID, err := f.api.TeacherID(ctx, university, auth.AccessToken, auth.UserID)
	if err != nil {
		return timetable.Ref{}, errors.WrapFail(err, "resolve teacher id")
	}
	return timetable.Ref{Institution: university, ID: teacherID, Teacher: true}, nil
}

// Logout drops the resolved ref. Having none to drop is a reportable
// condition, not an error.
func (f *Flow) Logout(ctx context.Context, userID int64) (msgKey string, loggedOut bool) {
	_, err := f.store.Get(ctx, RefKey(userID))
	if errors.Is(err, sessions.ErrNotFound) {
		return "LogoutNotAuthError", false
	}
	if err != nil {
		f.log.Error(errors.WrapFail(err, "read ref on logout"))
		return "TryLaterError", false
	}

	err = f.store.Delete(ctx, RefKey(userID))
	if err != nil {
		f.log.Error(errors.WrapFail(err, "delete ref on logout"))
		return "TryLaterError", false
	}

	return "LogoutCompleteMessage", true
}

// Ref returns the user's resolved schedule ref. A provisional marker left
// by an unfinished institution choice does not parse and counts as not
// authenticated.
func (f *Flow) Ref(ctx context.Context, userID int64) (timetable.Ref, error) {
	raw, err := f.store.Get(ctx, RefKey(userID))
	if errors.Is(err, sessions.ErrNotFound) {
		return timetable.Ref{}, ErrNotAuthenticated
	}
	if err != nil {
		return timetable.Ref{}, errors.WrapFail(err, "read stored ref")
	}

	ref, err := timetable.ParseRef(raw)
	if err != nil {
		return timetable.Ref{}, ErrNotAuthenticated
	}

	return ref, nil
}
