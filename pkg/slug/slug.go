// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug generates ASCII slugs from arbitrary Unicode strings.
//
// # Usage
//
// Slugs seed placeholder images (e.g., "a-blue-whale-at-dusk"), so equal
// prompts always map to the same picture.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Limit converts s into a slug of [a-z0-9] runs joined by single hyphens,
// capped at max bytes. A max of zero or less means no cap.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Lowercases ASCII letters and digits and turns every other run into one hyphen.
// 4. Trims leading hyphens, and any hyphen left dangling by the cut.
func Limit(s string, max int) string {
	stripAccents := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	folded, _, _ := transform.String(stripAccents, s)

	var builder strings.Builder
	pendingHyphen := false

	for _, r := range strings.ToLower(folded) {
		if !isSlugRune(r) {
			pendingHyphen = builder.Len() > 0
			continue
		}
		if pendingHyphen {
			builder.WriteByte('-')
			pendingHyphen = false
		}
		builder.WriteRune(r)

		if max > 0 && builder.Len() >= max {
			break
		}
	}

	result := builder.String()
	if max > 0 && len(result) > max {
		result = result[:max]
	}
	return strings.TrimRight(result, "-")
}

// isSlugRune reports whether r survives into a slug.
func isSlugRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
