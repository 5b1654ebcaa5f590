// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package moderation_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kiosk/internal/core/moderation"
)

/*
TestGate_Moderate checks the built-in deny-list across scanned sections.
*/
func TestGate_Moderate(t *testing.T) {
	tests := []struct {
		name     string
		sections map[string]string
		rejected bool
	}{
		{"clean", map[string]string{moderation.SectionChapters: "Whales sing to each other."}, false},
		{"empty", map[string]string{}, false},
		{"violence_in_title", map[string]string{moderation.SectionTitle: "A Violent Sea"}, true},
		{"nudity_in_summary", map[string]string{moderation.SectionSummary: "Nothing naked here"}, true},
		{"case_insensitive", map[string]string{moderation.SectionCover: "GORE"}, true},
		{"inside_longer_word", map[string]string{moderation.SectionIntroduction: "Gorely the goat explores."}, true},
		{"prefixed_substring", map[string]string{moderation.SectionChapters: "The monks preached nonviolence."}, true},
		{"suffixed_substring", map[string]string{moderation.SectionChapters: "Domestic-violences statistics"}, true},
		{"image_prompts_scanned", map[string]string{moderation.SectionImagePrompts: "a bloodbath at dawn"}, true},
		{"unscanned_key_ignored", map[string]string{"notes": "gore"}, false},
	}

	gate := moderation.NewGate()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := gate.Moderate(tt.sections)
			if tt.rejected {
				assert.ErrorIs(t, err, moderation.ErrContentRejected)
				assert.Nil(t, out)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.sections, out)
		})
	}
}

/*
TestGate_CustomRules replaces the default deny-list.
*/
func TestGate_CustomRules(t *testing.T) {
	gate := moderation.NewGate(moderation.Rule{Category: "spoilers", Pattern: regexp.MustCompile(`(?i)\bending\b`)})

	_, err := gate.Moderate(map[string]string{moderation.SectionChapters: "The ending is a twist."})
	require.ErrorIs(t, err, moderation.ErrContentRejected)
	assert.Contains(t, err.Error(), "spoilers")

	_, err = gate.Moderate(map[string]string{moderation.SectionChapters: "Plenty of gore."})
	assert.NoError(t, err)
}
