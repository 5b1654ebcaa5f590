// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package magazine_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kiosk/internal/core/magazine"
	"github.com/taibuivan/kiosk/internal/platform/apperr"
)

// unreachableRedis points at a closed port so every command fails fast.
func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 50 * time.Millisecond,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

/*
TestCachedRepository_BypassesUnavailableCache keeps serving from the store
when Redis is down.
*/
func TestCachedRepository_BypassesUnavailableCache(t *testing.T) {
	store := newFakeRepository()
	cached := magazine.NewCachedRepository(store, unreachableRedis(t), time.Minute, discardLogger())

	record := &magazine.Record{ID: "7d0f1f4e-8a2b-4c61-9f0e-2b7f7c3f5a10", OwnerID: "owner-a", Title: "Ocean"}
	require.NoError(t, cached.Create(context.Background(), record))

	found, err := cached.FindByID(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ocean", found.Title)

	_, err = cached.FindByID(context.Background(), "00000000-0000-0000-0000-000000000000")
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)

	records, total, err := cached.ListByOwner(context.Background(), "owner-a", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, records, 1)
}

/*
TestCachedRepository_CreateFailure never caches records that were not stored.
*/
func TestCachedRepository_CreateFailure(t *testing.T) {
	store := newFakeRepository()
	store.err = apperr.Storage(assert.AnError)
	cached := magazine.NewCachedRepository(store, unreachableRedis(t), time.Minute, discardLogger())

	err := cached.Create(context.Background(), &magazine.Record{ID: "x"})
	assert.ErrorIs(t, err, assert.AnError)
}
