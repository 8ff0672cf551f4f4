package timetable

import "time"

const (
	defaultTPIBaseURL  = "https://edu-tpi.donstu.ru/api"
	defaultDSTUBaseURL = "https://edu.donstu.ru/api"
	defaultTimeout     = 10 * time.Second
)

type Config struct {
	TPIBaseURL  string        `yaml:"tpiBaseURL"`
	DSTUBaseURL string        `yaml:"dstuBaseURL"`
	Timeout     time.Duration `yaml:"timeout"`
}

func (c Config) withDefaults() Config {
	if c.TPIBaseURL == "" {
		c.TPIBaseURL = defaultTPIBaseURL
	}
	if c.DSTUBaseURL == "" {
		c.DSTUBaseURL = defaultDSTUBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	return c
}
