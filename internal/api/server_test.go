// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kiosk/internal/api"
	"github.com/taibuivan/kiosk/internal/core/magazine"
	"github.com/taibuivan/kiosk/internal/platform/config"
	"github.com/taibuivan/kiosk/internal/platform/sec"
)

type rejectAll struct{}

func (rejectAll) VerifyToken(string) (*sec.AuthClaims, error) {
	return nil, errors.New("no tokens in this test")
}

func newServer(t *testing.T, deps api.HealthDependencies) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	liveness, readiness := api.NewHealthHandlers(deps, logger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	server := api.NewServer(ctx, &config.Config{ServerPort: "0", Environment: "test"}, logger, rejectAll{}, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Magazine:  magazine.NewHandler(nil, nil),
	})
	return server.Handler()
}

func get(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	return recorder
}

func TestHealth(t *testing.T) {
	recorder := get(t, newServer(t, api.HealthDependencies{}), "/health")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"kiosk-api"`)
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
}

func TestReady(t *testing.T) {
	healthy := func(context.Context) error { return nil }
	broken := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name   string
		deps   api.HealthDependencies
		status int
		state  string
	}{
		{"all_up", api.HealthDependencies{CheckDatabase: healthy, CheckCache: healthy}, http.StatusOK, "ready"},
		{"cache_down", api.HealthDependencies{CheckDatabase: healthy, CheckCache: broken}, http.StatusServiceUnavailable, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := get(t, newServer(t, tt.deps), "/ready")
			require.Equal(t, tt.status, recorder.Code)

			var body struct {
				Data struct {
					Status string `json:"status"`
					Checks []struct {
						Name string `json:"name"`
						OK   bool   `json:"ok"`
					} `json:"checks"`
				} `json:"data"`
			}
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
			assert.Equal(t, tt.state, body.Data.Status)
			assert.Len(t, body.Data.Checks, 2)
		})
	}
}

func TestMagazinesRequireAuth(t *testing.T) {
	recorder := get(t, newServer(t, api.HealthDependencies{}), "/api/v1/magazines")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestMediaDisabled(t *testing.T) {
	recorder := get(t, newServer(t, api.HealthDependencies{}), "/media/7d0f1f4e-8a2b-4c61-9f0e-2b7f7c3f5a10")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
