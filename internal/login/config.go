package login

import "github.com/kvlasov/raspbot/internal/timetable"

// How the institution is picked when a login flow starts. Both behaviors
// shipped at different times; the strategy is a config switch now.
const (
	ModeDefault = "default" // flow starts against DefaultInstitution right away
	ModeChoice  = "choice"  // user picks the institution from an inline keyboard first
)

type Config struct {
	SelectionMode      string `yaml:"selectionMode"`
	DefaultInstitution string `yaml:"defaultInstitution"`
}

func (c Config) withDefaults() Config {
	if c.SelectionMode == "" {
		c.SelectionMode = ModeDefault
	}
	if c.DefaultInstitution == "" {
		c.DefaultInstitution = timetable.InstitutionTPI
	}
	return c
}
