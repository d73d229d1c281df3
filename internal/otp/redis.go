package otp

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/green-basket/internal/config"
	"github.com/redis/go-redis/v9"
)

const keyAttempts = "otp:attempts:%s"

// RedisStore общий для всех инстансов счетчик попыток: INCR, TTL ставится на первой попытке.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return rdb, nil
}

// Attempt INCR и EXPIRE NX уходят одной MULTI транзакцией, ключ без TTL не остается.
func (s *RedisStore) Attempt(ctx context.Context, orderID string, window time.Duration) (int, error) {
	key := fmt.Sprintf(keyAttempts, orderID)

	var incr *redis.IntCmd
	if _, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, window)
		return nil
	}); err != nil {
		return 0, err
	}
	return int(incr.Val()), nil
}

func (s *RedisStore) Reset(ctx context.Context, orderID string) error {
	return s.rdb.Del(ctx, fmt.Sprintf(keyAttempts, orderID)).Err()
}
