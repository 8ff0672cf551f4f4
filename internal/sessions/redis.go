package sessions

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/kvlasov/raspbot/pkg/errors"
	"github.com/kvlasov/raspbot/pkg/logger"
)

func newRedis(ctx context.Context, log logger.Logger, cfg RedisConfig) (*redisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	err := client.Ping(ctx).Err()
	if err != nil {
		return nil, errors.WrapFail(err, "ping redis")
	}

	log.Infof("using redis session store (%s)", cfg.Addr)

	return &redisStore{client: client}, nil
}

type redisStore struct {
	client *redis.Client
}

func (r *redisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", errors.WrapFail(err, "get session key")
	}

	return value, nil
}

func (r *redisStore) Set(ctx context.Context, key, value string) error {
	return errors.WrapFail(r.client.Set(ctx, key, value, 0).Err(), "set session key")
}

func (r *redisStore) SetMany(ctx context.Context, kv map[string]string) error {
	if len(kv) == 0 {
		return nil
	}

	pairs := make([]any, 0, 2*len(kv))
	for key, value := range kv {
		pairs = append(pairs, key, value)
	}

	return errors.WrapFail(r.client.MSet(ctx, pairs...).Err(), "mset session keys")
}

func (r *redisStore) Delete(ctx context.Context, key string) error {
	return errors.WrapFail(r.client.Del(ctx, key).Err(), "delete session key")
}

func (r *redisStore) DeleteMany(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	return errors.WrapFail(r.client.Del(ctx, keys...).Err(), "delete session keys")
}

func (r *redisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *redisStore) Close(context.Context) error {
	return errors.WrapFail(r.client.Close(), "close redis client")
}
