package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

const defaultLockTTL = 10 * time.Second

// RedisGateway stores each document under prefix+key. Writes take a
// redislock lock and commit every key in one MULTI/EXEC.
type RedisGateway struct {
	client  redis.UniversalClient
	locker  *redislock.Client
	prefix  string
	lockTTL time.Duration
}

var _ Gateway = (*RedisGateway)(nil)

func NewRedisGateway(client redis.UniversalClient, prefix string) *RedisGateway {
	return &RedisGateway{
		client:  client,
		locker:  redislock.New(client),
		prefix:  prefix,
		lockTTL: defaultLockTTL,
	}
}

func (g *RedisGateway) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := g.client.Get(ctx, g.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return data, nil
}

func (g *RedisGateway) Save(ctx context.Context, docs ...Document) error {
	lock, err := g.locker.Obtain(ctx, g.prefix+"lock:store", g.lockTTL, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(50*time.Millisecond), 20),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		return ErrLocked
	} else if err != nil {
		return fmt.Errorf("obtain store lock: %w", err)
	}
	defer func() {
		_ = lock.Release(context.WithoutCancel(ctx))
	}()

	_, err = g.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, d := range docs {
			pipe.Set(ctx, g.prefix+d.Key, d.Data, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis commit: %w", err)
	}
	return nil
}
