// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kiosk/internal/platform/apperr"
)

func TestConstructors(t *testing.T) {
	cause := errors.New("deny-list: violence")

	tests := []struct {
		name   string
		err    *apperr.AppError
		status int
		code   string
	}{
		{"not_found", apperr.NotFound("Magazine"), http.StatusNotFound, apperr.CodeNotFound},
		{"unauthorized", apperr.Unauthorized("no token"), http.StatusUnauthorized, apperr.CodeUnauthorized},
		{"forbidden", apperr.Forbidden("not yours"), http.StatusForbidden, apperr.CodeForbidden},
		{"rejected", apperr.ContentRejected(cause), http.StatusUnprocessableEntity, apperr.CodeContentRejected},
		{"validation", apperr.ValidationError("bad brief"), http.StatusBadRequest, apperr.CodeValidation},
		{"rate_limited", apperr.RateLimited(7), http.StatusTooManyRequests, apperr.CodeRateLimited},
		{"internal", apperr.Internal(cause), http.StatusInternalServerError, apperr.CodeInternal},
		{"storage", apperr.Storage(cause), http.StatusInternalServerError, apperr.CodeStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.NotContains(t, tt.err.Error(), "deny-list", "causes are never in the message")
		})
	}

	assert.Equal(t, "Magazine not found", apperr.NotFound("Magazine").Message)
	assert.Contains(t, apperr.RateLimited(7).Message, "7s")
}

func TestAs(t *testing.T) {
	cause := errors.New("connection refused")
	wrapped := fmt.Errorf("save magazine: %w", apperr.Storage(cause))

	appErr := apperr.As(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, apperr.CodeStorage, appErr.Code)
	assert.ErrorIs(t, wrapped, cause)

	assert.Nil(t, apperr.As(cause))
}

func TestValidationErrorDetails(t *testing.T) {
	err := apperr.ValidationError("Validation failed",
		apperr.FieldError{Field: "theme", Message: "is required"},
		apperr.FieldError{Field: "pages", Message: "must be between 5 and 40"},
	)

	require.Len(t, err.Details, 2)
	assert.Equal(t, "pages", err.Details[1].Field)
}
