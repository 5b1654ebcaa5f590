// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package redis connects the read-through cache that sits in front of the
magazine table.

Cached entries are finished, immutable records, so the pool is small and
short timeouts are preferred: a slow cache is bypassed by the caller rather
than waited on.
*/
package redis

import (
	stdctx "context"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/redis/go-redis/v9"
)

const (
	poolSize     = 8
	minIdleConns = 1

	dialTimeout = 2 * time.Second
	ioTimeout   = 500 * time.Millisecond
	pingTimeout = 2 * time.Second

	// The cache container often starts alongside the API.
	startupAttempts = 4
	startupDelay    = 250 * time.Millisecond
)

// NewClient parses redisURL, applies the cache pool settings and waits for
// the first successful ping.
func NewClient(context stdctx.Context, redisURL string, logger *slog.Logger) (*redis.Client, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}

	options.PoolSize = poolSize
	options.MinIdleConns = minIdleConns
	options.DialTimeout = dialTimeout
	options.ReadTimeout = ioTimeout
	options.WriteTimeout = ioTimeout

	client := redis.NewClient(options)

	err = retry.Do(
		func() error { return Ping(context, client) },
		retry.Context(context),
		retry.Attempts(startupAttempts),
		retry.Delay(startupDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(attempt uint, err error) {
			logger.Warn("redis_ping_retry", slog.Uint64("attempt", uint64(attempt+1)), slog.Any("error", err))
		}),
	)
	if err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("redis client connected",
		slog.String("addr", options.Addr),
		slog.Int("db", options.DB),
	)

	return client, nil
}

// Ping backs the readiness probe.
func Ping(context stdctx.Context, client *redis.Client) error {
	pingCtx, cancel := stdctx.WithTimeout(context, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}

	return nil
}
