package main

import (
	"flag"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/kvlasov/raspbot/internal/api"
	"github.com/kvlasov/raspbot/internal/login"
	"github.com/kvlasov/raspbot/internal/sessions"
	"github.com/kvlasov/raspbot/internal/telegram"
	"github.com/kvlasov/raspbot/internal/timetable"
	"github.com/kvlasov/raspbot/pkg/environment"
	"github.com/kvlasov/raspbot/pkg/errors"
)

type Config struct {
	Environment environment.Env  `yaml:"environment" ignored:"true"`
	Telegram    telegram.Config  `yaml:"telegram"`
	Sessions    sessions.Config  `yaml:"sessions"`
	Timetable   timetable.Config `yaml:"timetable"`
	Login       login.Config     `yaml:"login"`
	API         api.Config       `yaml:"api"`
}

func loadConfig() (*Config, error) {
	var (
		path = flag.String("config", "config.yaml", "path to config file")
		env  = flag.String("env", "", "environment (dev, prod)")
	)
	flag.Parse()

	var cfg Config

	data, err := os.ReadFile(*path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.WrapFail(err, "read config file")
	}
	if err == nil {
		err = yaml.Unmarshal(data, &cfg)
		if err != nil {
			return nil, errors.WrapFail(err, "parse config yaml")
		}
	}

	// secrets and deploy-specific values come from the environment
	err = envconfig.Process("", &cfg)
	if err != nil {
		return nil, errors.WrapFail(err, "apply env overrides")
	}

	if *env != "" {
		cfg.Environment = environment.FromString(*env)
	}

	return &cfg, nil
}
