// Package sessions is the durable key/value store behind the bot:
// resolved schedule refs and transient login-flow keys both live here.
package sessions

import (
	"context"

	"github.com/kvlasov/raspbot/pkg/errors"
	"github.com/kvlasov/raspbot/pkg/logger"
)

// ErrNotFound is returned by Get when the key is absent.
var ErrNotFound = errors.New("session key not found")

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	SetMany(ctx context.Context, kv map[string]string) error
	Delete(ctx context.Context, key string) error
	DeleteMany(ctx context.Context, keys []string) error

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// New builds a Store for the configured backend.
func New(ctx context.Context, log logger.Logger, cfg Config) (Store, error) {
	switch cfg.Backend {
	case BackendMongo:
		return newMongo(ctx, log.With("mongo_sessions"), cfg.Mongo)
	case BackendRedis:
		return newRedis(ctx, log.With("redis_sessions"), cfg.Redis)
	case BackendSQLite:
		return newSQLite(ctx, log.With("sqlite_sessions"), cfg.SQLite)
	case BackendMemory, "":
		log.Infof("using in-memory session store")
		return newMemory(), nil
	default:
		return nil, errors.Errorf("unknown sessions backend %q", cfg.Backend)
	}
}
