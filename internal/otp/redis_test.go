package otp

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *RedisStore) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return mr, NewRedisStore(rdb)
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	mr, store := setupRedis(t)

	for want := 1; want <= 3; want++ {
		n, err := store.Attempt(ctx, "ORD-1", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}

	got, err := mr.Get("otp:attempts:ORD-1")
	require.NoError(t, err)
	assert.Equal(t, "3", got)
	assert.Equal(t, time.Minute, mr.TTL("otp:attempts:ORD-1"))

	mr.FastForward(time.Minute + time.Second)
	assert.False(t, mr.Exists("otp:attempts:ORD-1"))

	n, err := store.Attempt(ctx, "ORD-1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRedisStore_WindowNotExtended(t *testing.T) {
	ctx := context.Background()
	mr, store := setupRedis(t)

	_, err := store.Attempt(ctx, "ORD-4", time.Minute)
	require.NoError(t, err)
	mr.FastForward(40 * time.Second)

	_, err = store.Attempt(ctx, "ORD-4", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 20*time.Second, mr.TTL("otp:attempts:ORD-4"))
}

func TestRedisStore_ExistingKeyWithoutTTL(t *testing.T) {
	ctx := context.Background()
	mr, store := setupRedis(t)
	require.NoError(t, mr.Set("otp:attempts:ORD-5", "2"))

	n, err := store.Attempt(ctx, "ORD-5", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, time.Minute, mr.TTL("otp:attempts:ORD-5"))
}

func TestRedisStore_Reset(t *testing.T) {
	ctx := context.Background()
	mr, store := setupRedis(t)

	_, err := store.Attempt(ctx, "ORD-2", time.Minute)
	require.NoError(t, err)
	require.NoError(t, store.Reset(ctx, "ORD-2"))
	assert.False(t, mr.Exists("otp:attempts:ORD-2"))
}

func TestRedisStore_Unavailable(t *testing.T) {
	ctx := context.Background()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer rdb.Close()
	store := NewRedisStore(rdb)
	mr.Close()

	_, err = store.Attempt(ctx, "ORD-3", time.Minute)
	assert.Error(t, err)
}
