// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package moderation provides the content-safety gate run before a magazine is persisted.

The gate is all-or-nothing: a single deny-list match anywhere in the scanned
sections rejects the whole generation. There is no partial redaction.

External safety services can replace [Gate] as long as they keep the same
input and output shapes.
*/
package moderation

import (
	"errors"
	"fmt"
	"regexp"
)

// # Errors

// ErrContentRejected is returned when a section matches the deny-list.
var ErrContentRejected = errors.New("moderation: content rejected")

// # Section Keys

// Section keys scanned by the gate. Any other key in the input is ignored.
const (
	SectionTitle        = "title"
	SectionCover        = "cover"
	SectionEditorsNote  = "editors_note"
	SectionIntroduction = "introduction"
	SectionChapters     = "chapters"
	SectionSummary      = "summary"
	SectionImagePrompts = "image_prompts"
)

// ScannedSections lists the section keys in scan order.
var ScannedSections = []string{
	SectionTitle,
	SectionCover,
	SectionEditorsNote,
	SectionIntroduction,
	SectionChapters,
	SectionSummary,
	SectionImagePrompts,
}

// Rule is one deny-list entry.
type Rule struct {
	Category string
	Pattern  *regexp.Regexp
}

// DefaultRules is the built-in deny-list. Patterns match as substrings, so a
// term embedded in a longer word still matches.
var DefaultRules = []Rule{
	{Category: "violence", Pattern: regexp.MustCompile(`(?i)violen(ce|t)|gore|bloodbath`)},
	{Category: "hate", Pattern: regexp.MustCompile(`(?i)hate (speech|crime)|hateful`)},
	{Category: "nudity", Pattern: regexp.MustCompile(`(?i)nud(e|ity)|naked`)},
	{Category: "explicit", Pattern: regexp.MustCompile(`(?i)explicit|pornograph`)},
}

// # Gate

// Gate scans assembled sections against a deny-list.
type Gate struct {
	rules []Rule
}

// NewGate constructs a [Gate]. With no rules it uses [DefaultRules].
func NewGate(rules ...Rule) *Gate {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	return &Gate{rules: rules}
}

/*
Moderate checks every scanned section against the deny-list.

Parameters:
  - sections: map[string]string (section key → text)

Returns:
  - map[string]string: the input, unchanged, when nothing matched
  - error: wraps ErrContentRejected on the first match
*/
func (gate *Gate) Moderate(sections map[string]string) (map[string]string, error) {
	for _, key := range ScannedSections {
		value, ok := sections[key]
		if !ok || value == "" {
			continue
		}
		for _, rule := range gate.rules {
			if rule.Pattern.MatchString(value) {
				return nil, fmt.Errorf("%w: section %q matched category %q", ErrContentRejected, key, rule.Category)
			}
		}
	}
	return sections, nil
}
