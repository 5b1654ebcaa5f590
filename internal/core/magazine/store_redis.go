// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package magazine

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/kiosk/internal/platform/constants"
)

// # Redis Read-Through Cache

// CachedRepository decorates a [Repository] with a Redis read-through cache.
//
// Records are immutable once persisted, so entries never need invalidation;
// they simply expire after the TTL. Cache failures are logged and bypassed.
type CachedRepository struct {
	next   Repository
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedRepository wraps next with a Redis cache.
func NewCachedRepository(next Repository, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

/*
Create persists through to the underlying store, then warms the cache.
*/
func (repository *CachedRepository) Create(context context.Context, record *Record) error {
	if err := repository.next.Create(context, record); err != nil {
		return err
	}
	repository.store(context, record)
	return nil
}

/*
FindByID serves from Redis when possible, otherwise loads and caches.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *Record
  - error: apperr.NotFound or storage errors from the underlying store
*/
func (repository *CachedRepository) FindByID(context context.Context, id string) (*Record, error) {

	// 1. Cache lookup
	payload, err := repository.client.Get(context, cacheKey(id)).Bytes()
	switch {
	case err == nil:
		var record Record
		if decodeErr := json.Unmarshal(payload, &record); decodeErr == nil {
			return &record, nil
		}
		repository.logger.WarnContext(context, "magazine_cache_corrupt", slog.String("magazine_id", id))
	case !errors.Is(err, redis.Nil):
		repository.logger.WarnContext(context, "magazine_cache_get_failed",
			slog.String("magazine_id", id),
			slog.Any("error", err),
		)
	}

	// 2. Load from the store of record
	record, err := repository.next.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	// 3. Warm the cache
	repository.store(context, record)
	return record, nil
}

// ListByOwner is not cached; list views change with every new magazine.
func (repository *CachedRepository) ListByOwner(context context.Context, ownerID string, limit, offset int) ([]*Record, int, error) {
	return repository.next.ListByOwner(context, ownerID, limit, offset)
}

// store writes a record to Redis, logging instead of failing.
func (repository *CachedRepository) store(context context.Context, record *Record) {
	payload, err := json.Marshal(record)
	if err != nil {
		return
	}
	if err := repository.client.Set(context, cacheKey(record.ID), payload, repository.ttl).Err(); err != nil {
		repository.logger.WarnContext(context, "magazine_cache_set_failed",
			slog.String("magazine_id", record.ID),
			slog.Any("error", err),
		)
	}
}

func cacheKey(id string) string {
	return constants.RedisPrefixMagazine + id
}
