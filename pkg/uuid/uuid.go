// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid provides time-ordered identifiers for magazines and stored media.

Version 7 values sort by creation time, which keeps the B-tree primary keys
of the magazine and media tables append-only and lets "newest first" listings
fall back on ID order.
*/
package uuid

import "github.com/google/uuid"

// canonicalLength is the length of the hyphenated 8-4-4-4-12 form.
const canonicalLength = 36

// New generates a new UUIDv7 string.
func New() string {
	id, err := uuid.NewV7()

	// entropy failure is an unrecoverable system-level error
	if err != nil {
		panic("uuid: failed to generate UUIDv7: " + err.Error())
	}

	return id.String()
}

// IsValid reports whether s is a UUID in canonical hyphenated form.
//
// Braced, URN and unhyphenated spellings are rejected so that a record has
// exactly one URL.
func IsValid(s string) bool {
	if len(s) != canonicalLength {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
