// Package environment names the runtime profile the bot was started with.
// The profile picks the logger preset and can come from either the yaml
// config or the -env flag, the flag winning.
package environment

type Env int

const (
	Unknown Env = iota
	Development
	Production
)

// FromString maps the config spelling to a profile. Anything unrecognized
// is Unknown, which callers treat as Development.
func FromString(s string) Env {
	switch s {
	case "dev":
		return Development
	case "prod":
		return Production
	default:
		return Unknown
	}
}

func (e Env) String() string {
	switch e {
	case Development:
		return "dev"
	case Production:
		return "prod"
	default:
		return "unknown"
	}
}

func (e *Env) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string

	err := unmarshal(&raw)
	if err != nil {
		return err
	}

	*e = FromString(raw)
	return nil
}
