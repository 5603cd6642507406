package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"pixclaim/internal/claim/lock"
	"pixclaim/internal/claim/ports"
	"pixclaim/internal/claim/store/failure"
	"pixclaim/internal/claim/store/notification"
	httpapi "pixclaim/internal/http"
	"pixclaim/internal/platform/config"
	"pixclaim/internal/platform/postgres"
	"pixclaim/internal/platform/redis"
)

// infra holds the storage and coordination backends chosen by config.
type infra struct {
	notifications ports.NotificationStore
	failures      ports.FailureStore
	locker        ports.KeyLocker
	health        map[string]httpapi.HealthCheck
	closers       []func() error
}

func (i *infra) Close() {
	for j := len(i.closers) - 1; j >= 0; j-- {
		_ = i.closers[j]()
	}
}

func buildInfra(ctx context.Context, cfg config.Config, log *slog.Logger) (*infra, error) {
	in := &infra{health: map[string]httpapi.HealthCheck{}}

	if cfg.Database.URL == "" {
		log.Warn("DATABASE_URL not set, using in-memory stores")
		in.notifications = notification.NewInMemory()
		in.failures = failure.NewInMemory()
	} else {
		db, err := postgres.Open(ctx, postgres.Config{URL: cfg.Database.URL, MaxOpenConns: cfg.Database.MaxOpenConns})
		if err != nil {
			return nil, err
		}
		in.closers = append(in.closers, db.Close)
		if err := postgres.Migrate(ctx, db, log); err != nil {
			in.Close()
			return nil, err
		}
		in.notifications = notification.NewPostgres(db)
		in.failures = failure.NewPostgres(db)
		in.health["postgres"] = pingDB(db)
	}

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		in.Close()
		return nil, err
	}
	if redisClient != nil {
		in.closers = append(in.closers, redisClient.Close)
		in.health["redis"] = redisClient.Health
	}

	switch cfg.Claims.KeyLock {
	case config.LockMemory:
		in.locker = lock.NewMemory(cfg.Claims.KeyLockWait)
	case config.LockRedis:
		if redisClient == nil {
			in.Close()
			return nil, fmt.Errorf("key lock %q needs redis", cfg.Claims.KeyLock)
		}
		in.locker = lock.NewRedis(redisClient.Client,
			lock.WithTTL(cfg.Claims.KeyLockTTL),
			lock.WithWait(cfg.Claims.KeyLockWait),
		)
	}
	return in, nil
}

func pingDB(db *sql.DB) httpapi.HealthCheck {
	return func(ctx context.Context) error {
		return db.PingContext(ctx)
	}
}
