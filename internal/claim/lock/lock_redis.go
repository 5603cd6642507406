package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"

	"pixclaim/pkg/platform/sentinel"
)

const (
	keyPrefix            = "pixclaim:lock:"
	defaultTTL           = 30 * time.Second
	defaultRetryInterval = 50 * time.Millisecond
	releaseTimeout       = 2 * time.Second
)

// RedisLocker serializes callers across instances with a redsync mutex per key.
type RedisLocker struct {
	rs            *redsync.Redsync
	ttl           time.Duration
	wait          time.Duration
	retryInterval time.Duration
}

// RedisOption configures a RedisLocker.
type RedisOption func(*RedisLocker)

// WithTTL sets how long a held lock survives a crashed holder.
func WithTTL(ttl time.Duration) RedisOption {
	return func(l *RedisLocker) {
		if ttl > 0 {
			l.ttl = ttl
		}
	}
}

// WithWait sets how long Acquire retries before giving up.
func WithWait(wait time.Duration) RedisOption {
	return func(l *RedisLocker) {
		if wait > 0 {
			l.wait = wait
		}
	}
}

// WithRetryInterval sets the delay between attempts while waiting.
func WithRetryInterval(d time.Duration) RedisOption {
	return func(l *RedisLocker) {
		if d > 0 {
			l.retryInterval = d
		}
	}
}

// NewRedis constructs a Redis-backed locker.
func NewRedis(client redis.UniversalClient, opts ...RedisOption) *RedisLocker {
	l := &RedisLocker{
		rs:            redsync.New(goredis.NewPool(client)),
		ttl:           defaultTTL,
		wait:          DefaultWait,
		retryInterval: defaultRetryInterval,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

func (l *RedisLocker) tries() int {
	n := int(l.wait / l.retryInterval)
	if n < 1 {
		return 1
	}
	return n + 1
}

// Acquire retries until it holds the key, ctx ends, or the wait is spent.
// Contention yields sentinel.ErrLockHeld; a Redis failure wraps
// sentinel.ErrUnavailable.
func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	mutex := l.rs.NewMutex(keyPrefix+key,
		redsync.WithExpiry(l.ttl),
		redsync.WithTries(l.tries()),
		redsync.WithRetryDelay(l.retryInterval),
	)

	if err := mutex.LockContext(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		var redisErr *redsync.RedisError
		if errors.As(err, &redisErr) {
			return nil, fmt.Errorf("acquire lock %s: %w: %w", key, sentinel.ErrUnavailable, err)
		}
		return nil, sentinel.ErrLockHeld
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
			defer cancel()
			// A failed or late release is reclaimed by the TTL.
			_, _ = mutex.UnlockContext(releaseCtx)
		})
	}, nil
}
