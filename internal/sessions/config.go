package sessions

import "time"

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

type Config struct {
	Backend string `yaml:"backend" envconfig:"SESSIONS_BACKEND"`

	SQLite SQLiteConfig `yaml:"sqlite"`
	Redis  RedisConfig  `yaml:"redis"`
	Mongo  MongoConfig  `yaml:"mongo"`
}

type SQLiteConfig struct {
	Path string `yaml:"path" envconfig:"SQLITE_PATH"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" envconfig:"REDIS_ADDR"`
	Password string `yaml:"password" envconfig:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" envconfig:"REDIS_DB"`
}

type MongoConfig struct {
	URL     string        `yaml:"url" envconfig:"MONGO_URI"`
	Timeout time.Duration `yaml:"timeout"`

	Database   string `yaml:"database" envconfig:"MONGO_DB"`
	Collection string `yaml:"collection" envconfig:"MONGO_COLLECTION"`

	Auth struct {
		Username string `yaml:"username" envconfig:"MONGO_USERNAME"`
		Password string `yaml:"password" envconfig:"MONGO_PASSWORD"`
	} `yaml:"auth"`
}
