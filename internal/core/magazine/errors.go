// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package magazine

import (
	"errors"
	"fmt"
)

// # Generation Errors

var (
	// ErrNoJSONObject is returned when a response holds no balanced JSON object.
	ErrNoJSONObject = errors.New("no balanced JSON object in response")

	// ErrEmptyResponse is returned when the generator answers with blank text.
	ErrEmptyResponse = errors.New("empty response")
)

// Generation stages reported by [GenerationError].
const (
	StageRequest = "request"
	StageParse   = "parse"
)

// GenerationError reports a failed or unparsable text generation call.
//
// It is recovered locally by the fallback fill and never reaches the client
// as a missing artifact.
type GenerationError struct {
	Stage string
	Cause error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation: %s failed: %v", e.Stage, e.Cause)
}

// Unwrap exposes the cause to [errors.Is] and [errors.As].
func (e *GenerationError) Unwrap() error { return e.Cause }
