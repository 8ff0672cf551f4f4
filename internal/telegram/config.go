package telegram

import "time"

type Config struct {
	Token        string        `yaml:"token" envconfig:"BOT_TOKEN"`
	PollInterval time.Duration `yaml:"pollInterval"`
}
