package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter implements a fixed-window rate limit backed by Redis. The window
// state lives in Redis so the limit holds across replicas, and the check
// runs as a Lua script so concurrent requests never race on the counter.
type Limiter struct {
	client *redis.Client
	window time.Duration
}

var allowScript = redis.NewScript(`
    local key = KEYS[1]
    local max_requests = tonumber(ARGV[1])
    local window = tonumber(ARGV[2])

    local current = redis.call('GET', key)
    if current == false then
        redis.call('SET', key, 1, 'EX', window)
        return 1
    end
    if tonumber(current) < max_requests then
        redis.call('INCR', key)
        return 1
    end
    return 0
`)

// New creates a limiter with the given window, typically one minute.
func New(client *redis.Client, window time.Duration) *Limiter {
	return &Limiter{client: client, window: window}
}

// Allow reports whether another request is admitted for the key within the
// current window. The per-key maximum is passed per call so each route can
// carry its own limit.
func (l *Limiter) Allow(ctx context.Context, key string, maxRequests int) (bool, error) {
	redisKey := fmt.Sprintf("ratelimit:%s", key)
	res, err := allowScript.Run(ctx, l.client, []string{redisKey},
		maxRequests, int(l.window.Seconds())).Int()
	if err != nil {
		return false, fmt.Errorf("rate limit check: %w", err)
	}
	return res == 1, nil
}

// Reset clears the window for a key.
func (l *Limiter) Reset(ctx context.Context, key string) error {
	return l.client.Del(ctx, fmt.Sprintf("ratelimit:%s", key)).Err()
}
