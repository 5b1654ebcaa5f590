// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/taibuivan/kiosk/internal/platform/apperr"
	"github.com/taibuivan/kiosk/internal/platform/constants"
	"github.com/taibuivan/kiosk/internal/platform/ctxutil"
	"github.com/taibuivan/kiosk/internal/platform/respond"
)

// # Token Buckets

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// buckets keeps one token bucket per key and forgets keys idle for
// [constants.RateLimitClientTTL].
type buckets struct {
	mu    sync.Mutex
	byKey map[string]*bucket
	limit rate.Limit
	burst int
}

func newBuckets(context context.Context, limit rate.Limit, burst int) *buckets {
	store := &buckets{byKey: make(map[string]*bucket), limit: limit, burst: burst}

	go func() {
		ticker := time.NewTicker(constants.RateLimitCleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				store.evictIdle(time.Now().Add(-constants.RateLimitClientTTL))
			case <-context.Done():
				return
			}
		}
	}()

	return store
}

// take consumes one token for key. When the bucket is empty nothing is
// consumed and the wait until the next token is returned.
func (store *buckets) take(key string) (time.Duration, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()

	entry, found := store.byKey[key]
	if !found {
		entry = &bucket{limiter: rate.NewLimiter(store.limit, store.burst)}
		store.byKey[key] = entry
	}
	entry.lastSeen = time.Now()

	reservation := entry.limiter.Reserve()
	if wait := reservation.Delay(); wait > 0 {
		reservation.Cancel()
		return wait, false
	}
	return 0, true
}

func (store *buckets) evictIdle(cutoff time.Time) {
	store.mu.Lock()
	defer store.mu.Unlock()

	for key, entry := range store.byKey {
		if entry.lastSeen.Before(cutoff) {
			delete(store.byKey, key)
		}
	}
}

func rejectRateLimited(writer http.ResponseWriter, request *http.Request, wait time.Duration) {
	seconds := max(int(math.Ceil(wait.Seconds())), 1)
	writer.Header().Set(constants.HeaderRetryAfter, strconv.Itoa(seconds))
	respond.Error(writer, request, apperr.RateLimited(seconds))
}

// # Limiters

// RateLimit applies the global per-IP budget to every route.
func RateLimit(context context.Context) func(http.Handler) http.Handler {
	store := newBuckets(context, rate.Limit(constants.DefaultRateLimitRPS), constants.DefaultRateLimitBurst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if wait, ok := store.take(RealIP(request)); !ok {
				rejectRateLimited(writer, request, wait)
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}

// GenerationLimit bounds how often one owner may start a magazine generation.
//
// Every generation costs a language model call, so the bucket is keyed by the
// authenticated user rather than the client IP. Anonymous requests pass
// through; [RequireAuth] rejects them later in the chain.
func GenerationLimit(context context.Context, perMinute float64, burst int) func(http.Handler) http.Handler {
	store := newBuckets(context, rate.Limit(perMinute/60), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := ctxutil.GetAuthUser(request.Context())
			if claims == nil {
				next.ServeHTTP(writer, request)
				return
			}

			if wait, ok := store.take(claims.UserID); !ok {
				rejectRateLimited(writer, request, wait)
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}
