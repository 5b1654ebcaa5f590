// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr is the error vocabulary shared by the magazine service, its
stores and the HTTP layer.

A service returns an [*AppError] whenever the failure has a meaning for the
caller (a missing magazine, a rejected brief, a blocked generation). Anything
else is wrapped into INTERNAL_ERROR by package respond. The Cause of an
AppError is logged and never serialised.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Machine-readable codes carried in the "code" field of error responses.
const (
	CodeNotFound        = "NOT_FOUND"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeContentRejected = "CONTENT_REJECTED"
	CodeValidation      = "VALIDATION_ERROR"
	CodeRateLimited     = "RATE_LIMITED"
	CodeInternal        = "INTERNAL_ERROR"
	CodeStorage         = "STORAGE_ERROR"
)

type AppError struct {
	Code       string       `json:"code"`
	Message    string       `json:"error"`
	HTTPStatus int          `json:"-"`
	Cause      error        `json:"-"`
	Details    []FieldError `json:"details,omitempty"`
}

// FieldError names one brief field that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error returns the client-safe message only.
func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Cause }

func newError(status int, code, message string, cause error) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status, Cause: cause}
}

// # Client Errors (4xx)

// NotFound reports a missing resource, e.g. NotFound("Magazine").
func NotFound(resource string) *AppError {
	return newError(http.StatusNotFound, CodeNotFound, resource+" not found", nil)
}

func Unauthorized(msg string) *AppError {
	return newError(http.StatusUnauthorized, CodeUnauthorized, msg, nil)
}

func Forbidden(msg string) *AppError {
	return newError(http.StatusForbidden, CodeForbidden, msg, nil)
}

// ContentRejected is returned when the moderation gate blocks a magazine.
// The matched category stays in the cause; clients only learn that the
// magazine was rejected.
func ContentRejected(cause error) *AppError {
	return newError(http.StatusUnprocessableEntity, CodeContentRejected,
		"The generated magazine did not pass content moderation", cause)
}

// ValidationError carries one [FieldError] per failed rule.
func ValidationError(msg string, details ...FieldError) *AppError {
	err := newError(http.StatusBadRequest, CodeValidation, msg, nil)
	err.Details = details
	return err
}

func RateLimited(retryAfterSeconds int) *AppError {
	return newError(http.StatusTooManyRequests, CodeRateLimited,
		fmt.Sprintf("Too many requests. Try again in %ds.", retryAfterSeconds), nil)
}

// # Server Errors (5xx)

func Internal(cause error) *AppError {
	return newError(http.StatusInternalServerError, CodeInternal, "An unexpected error occurred", cause)
}

// Storage reports a failed read or write against PostgreSQL.
func Storage(cause error) *AppError {
	return newError(http.StatusInternalServerError, CodeStorage, "The request could not be persisted", cause)
}

// # Helpers

// As returns the first [*AppError] in err's chain, or nil.
func As(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}
