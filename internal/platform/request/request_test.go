// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kiosk/internal/platform/apperr"
	"github.com/taibuivan/kiosk/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/kiosk/internal/platform/request"
	"github.com/taibuivan/kiosk/internal/platform/sec"
	"github.com/taibuivan/kiosk/internal/platform/validate"
)

type brief struct {
	Theme string `json:"theme"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"single object", `{"theme":"ocean"}`, false},
		{"trailing whitespace", "{\"theme\":\"ocean\"}\n  ", false},
		{"malformed", `{"theme":`, true},
		{"two objects", `{"theme":"a"}{"theme":"b"}`, true},
		{"oversized", `{"theme":"` + strings.Repeat("x", requestutil.MaxBodyBytes) + `"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("POST", "/", strings.NewReader(tt.body))

			var target brief
			err := requestutil.DecodeJSON(request, &target)

			if tt.wantErr {
				assert.ErrorIs(t, err, validate.ErrInvalidJSON)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ocean", target.Theme)
		})
	}
}

func TestRequiredUserID(t *testing.T) {
	request := httptest.NewRequest("GET", "/", nil)

	_, err := requestutil.RequiredUserID(request)
	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.HTTPStatus)

	empty := request.WithContext(ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{}))
	_, err = requestutil.RequiredUserID(empty)
	assert.Error(t, err)

	authed := request.WithContext(ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{UserID: "reader-1"}))
	userID, err := requestutil.RequiredUserID(authed)
	require.NoError(t, err)
	assert.Equal(t, "reader-1", userID)
}
