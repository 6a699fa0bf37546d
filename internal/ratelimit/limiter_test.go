package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T) (*Limiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client, time.Minute), mr
}

func TestLimiterAllowsUpToMax(t *testing.T) {
	l, _ := newTestLimiter(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		ok, err := l.Allow(ctx, "click:1.2.3.4", 5)
		require.NoError(t, err)
		require.True(t, ok, "request %d should be admitted", i+1)
	}

	ok, err := l.Allow(ctx, "click:1.2.3.4", 5)
	require.NoError(t, err)
	require.False(t, ok, "sixth request should be rejected")
}

func TestLimiterKeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(t)
	ctx := context.Background()

	ok, err := l.Allow(ctx, "click:1.2.3.4", 1)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = l.Allow(ctx, "click:5.6.7.8", 1)
	require.NoError(t, err)
	require.True(t, ok, "a different key has its own window")
}

func TestLimiterWindowExpires(t *testing.T) {
	l, mr := newTestLimiter(t)
	ctx := context.Background()

	ok, err := l.Allow(ctx, "select:1.2.3.4", 1)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = l.Allow(ctx, "select:1.2.3.4", 1)
	require.NoError(t, err)
	require.False(t, ok)

	mr.FastForward(time.Minute + time.Second)

	ok, err = l.Allow(ctx, "select:1.2.3.4", 1)
	require.NoError(t, err)
	require.True(t, ok, "a fresh window admits requests again")
}

func TestLimiterReset(t *testing.T) {
	l, _ := newTestLimiter(t)
	ctx := context.Background()

	_, err := l.Allow(ctx, "x", 1)
	require.NoError(t, err)
	require.NoError(t, l.Reset(ctx, "x"))

	ok, err := l.Allow(ctx, "x", 1)
	require.NoError(t, err)
	require.True(t, ok)
}
