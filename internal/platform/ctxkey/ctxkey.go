// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey holds the context keys shared by the middleware chain and the
// magazine handlers. Read and write values through package ctxutil.
package ctxkey

// key is unexported so no other package can mint a colliding key.
type key int

const (
	// KeyRequestID carries the X-Request-ID of the current request.
	KeyRequestID key = iota

	// KeyUser carries the verified reader claims.
	KeyUser

	// KeyLogger carries the request-scoped logger.
	KeyLogger
)
