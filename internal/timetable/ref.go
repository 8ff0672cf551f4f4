// Package timetable talks to the university schedule APIs and renders
// their responses for chat output.
package timetable

import (
	"strconv"
	"strings"

	"github.com/kvlasov/raspbot/pkg/errors"
)

// Institution codes routing requests to one of the two upstream APIs.
const (
	InstitutionTPI  = "T"
	InstitutionDSTU = "D"
)

// Ref identifies whose schedule a user is bound to. Its string form is
// persisted in the session store: institution code, numeric id and a
// trailing "T" when the id belongs to a teacher rather than a group.
type Ref struct {
	Institution string
	ID          int
	Teacher     bool
}

// ParseRef decodes a stored ref of the form {T|D}{digits}[T].
func ParseRef(s string) (Ref, error) {
	if len(s) < 2 {
		return Ref{}, errors.Errorf("ref %q is too short", s)
	}

	inst := s[:1]
	if inst != InstitutionTPI && inst != InstitutionDSTU {
		return Ref{}, errors.Errorf("ref %q has unknown institution code", s)
	}

	rest := s[1:]
	teacher := strings.HasSuffix(rest, "T")
	if teacher {
		rest = rest[:len(rest)-1]
	}

	id, err := strconv.Atoi(rest)
	if err != nil || id < 0 {
		return Ref{}, errors.Errorf("ref %q has malformed id", s)
	}

	return Ref{Institution: inst, ID: id, Teacher: teacher}, nil
}

func (r Ref) String() string {
	s := r.Institution + strconv.Itoa(r.ID)
	if r.Teacher {
		s += "T"
	}
	return s
}
