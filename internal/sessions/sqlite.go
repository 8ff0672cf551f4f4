package sessions

import (
	"context"
	"database/sql"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/kvlasov/raspbot/pkg/errors"
	"github.com/kvlasov/raspbot/pkg/logger"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS sessions (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

func newSQLite(ctx context.Context, log logger.Logger, cfg SQLiteConfig) (*sqliteStore, error) {
	db, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, errors.WrapFail(err, "open sqlite database")
	}

	_, err = db.ExecContext(ctx, sqliteSchema)
	if err != nil {
		return nil, errors.WrapFail(err, "init sessions table")
	}

	log.Infof("using sqlite session store (%s)", cfg.Path)

	return &sqliteStore{db: db}, nil
}

type sqliteStore struct {
	db *sql.DB
}

func (s *sqliteStore) Get(ctx context.Context, key string) (string, error) {
	var value string

	err := s.db.QueryRowContext(ctx, "SELECT value FROM sessions WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", errors.WrapFail(err, "select session row")
	}

	return value, nil
}

func (s *sqliteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(
		ctx,
		"INSERT OR REPLACE INTO sessions (key, value) VALUES (?, ?)",
		key, value,
	)
	return errors.WrapFail(err, "upsert session row")
}

func (s *sqliteStore) SetMany(ctx context.Context, kv map[string]string) error {
	if len(kv) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.WrapFail(err, "begin tx")
	}
	defer func() { _ = tx.Rollback() }()

	for key, value := range kv {
		_, err = tx.ExecContext(
			ctx,
			"INSERT OR REPLACE INTO sessions (key, value) VALUES (?, ?)",
			key, value,
		)
		if err != nil {
			return errors.WrapFail(err, "upsert session row")
		}
	}

	return errors.WrapFail(tx.Commit(), "commit tx")
}

func (s *sqliteStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE key = ?", key)
	return errors.WrapFail(err, "delete session row")
}

func (s *sqliteStore) DeleteMany(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(keys)), ",")
	args := make([]any, len(keys))
	for i, key := range keys {
		args[i] = key
	}

	_, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE key IN ("+placeholders+")", args...)
	return errors.WrapFail(err, "delete session rows")
}

func (s *sqliteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqliteStore) Close(context.Context) error {
	return errors.WrapFail(s.db.Close(), "close sqlite database")
}
