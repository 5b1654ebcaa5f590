// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate collects brief and path-parameter rule failures into one
// VALIDATION_ERROR.
//
// Only the first failure per field is reported, so a reader who leaves the
// theme empty is told it is required, not also that it is too long.
package validate

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"

	"github.com/taibuivan/kiosk/internal/platform/apperr"
	"github.com/taibuivan/kiosk/pkg/uuid"
)

// ErrInvalidJSON is returned when the request body cannot be decoded.
var ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")

// Validator is used once per request and is not safe for concurrent use.
type Validator struct {
	errs []apperr.FieldError
}

func (v *Validator) Required(field, value string) *Validator {
	return v.check(field, strings.TrimSpace(value) != "", "This field is required")
}

// MaxLen counts characters, not bytes.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	return v.check(field, utf8.RuneCountInString(value) <= max, fmt.Sprintf("Maximum %d characters", max))
}

// Range is inclusive on both ends.
func (v *Validator) Range(field string, value, min, max int) *Validator {
	return v.check(field, value >= min && value <= max, fmt.Sprintf("Must be between %d and %d", min, max))
}

func (v *Validator) MaxItems(field string, count, max int) *Validator {
	return v.check(field, count <= max, fmt.Sprintf("Maximum %d items", max))
}

// Language accepts any well-formed BCP 47 tag.
func (v *Validator) Language(field, value string) *Validator {
	_, err := language.Parse(value)
	return v.check(field, err == nil, "Must be a valid language tag (e.g. en, vi, pt-BR)")
}

func (v *Validator) UUID(field, value string) *Validator {
	return v.check(field, uuid.IsValid(value), "Must be a valid UUID")
}

// Err ends a chain: nil when every rule passed.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

func (v *Validator) check(field string, ok bool, message string) *Validator {
	if ok || v.failed(field) {
		return v
	}
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
	return v
}

func (v *Validator) failed(field string) bool {
	return slices.ContainsFunc(v.errs, func(e apperr.FieldError) bool { return e.Field == field })
}
