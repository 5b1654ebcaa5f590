// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil reads path parameters, JSON bodies and the caller's
identity from incoming requests.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/taibuivan/kiosk/internal/platform/apperr"
	"github.com/taibuivan/kiosk/internal/platform/ctxutil"
	"github.com/taibuivan/kiosk/internal/platform/validate"
)

// MaxBodyBytes bounds a decoded request body. A magazine brief is a handful
// of short strings, so anything larger is rejected outright.
const MaxBodyBytes = 64 << 10

/*
DecodeJSON decodes exactly one JSON value from the request body into target.

Bodies over [MaxBodyBytes], malformed JSON and trailing data all yield
[validate.ErrInvalidJSON].
*/
func DecodeJSON(request *http.Request, target any) error {
	decoder := json.NewDecoder(io.LimitReader(request.Body, MaxBodyBytes+1))

	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}

	// A second value, or a body cut at the limit, means the payload was not a single object.
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return validate.ErrInvalidJSON
	}

	return nil
}

// ID returns the named chi URL parameter.
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
RequiredUserID returns the subject of the verified bearer token.

Returns apperr.Unauthorized when the authentication middleware attached no
claims or the claims carry an empty subject.
*/
func RequiredUserID(request *http.Request) (string, error) {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil || claims.UserID == "" {
		return "", apperr.Unauthorized("Authentication required")
	}

	return claims.UserID, nil
}
