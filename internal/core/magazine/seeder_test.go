// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package magazine_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/kiosk/internal/core/magazine"
)

/*
TestSeedFor_Candidates walks the prompt, title and theme fallbacks.
*/
func TestSeedFor_Candidates(t *testing.T) {
	tests := []struct {
		name string
		slot magazine.PageSlot
		want string
	}{
		{"prompt_wins", magazine.PageSlot{PageNumber: 4, ImagePrompt: "A Blue Whale, at Dusk!", Title: "Whales"}, "a-blue-whale-at-dusk"},
		{"title_when_no_prompt", magazine.PageSlot{PageNumber: 4, Title: "Coral   Reefs"}, "coral-reefs"},
		{"theme_and_page", magazine.PageSlot{PageNumber: 7}, "deep-sea-7"},
		{"symbols_only_prompt_skipped", magazine.PageSlot{PageNumber: 2, ImagePrompt: "!!!", Title: "Kelp"}, "kelp"},
		{"accents_removed", magazine.PageSlot{PageNumber: 1, Title: "Café Océan"}, "cafe-ocean"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, magazine.SeedFor(tt.slot, "Deep Sea"))
		})
	}
}

/*
TestSeedFor_Truncation keeps long prompts within the seed length limit.
*/
func TestSeedFor_Truncation(t *testing.T) {
	seed := magazine.SeedFor(magazine.PageSlot{ImagePrompt: strings.Repeat("lantern fish ", 20)}, "")

	assert.LessOrEqual(t, len(seed), 80)
	assert.False(t, strings.HasSuffix(seed, "-"))
	assert.Regexp(t, `^[a-z0-9-]+$`, seed)
}

/*
TestSeeder_Seed skips pages without imagery and is idempotent.
*/
func TestSeeder_Seed(t *testing.T) {
	seeder := magazine.NewSeeder("https://img.example/seed/")
	slots := magazine.Fallback(magazine.Plan(8))
	slots[4].Image = "https://cdn.example/kept.jpg"

	once := seeder.Seed(slots, "Deep Sea")
	twice := seeder.Seed(once, "Deep Sea")

	assert.Equal(t, once, twice)
	assert.Empty(t, slots[0].Image, "input must not be mutated")

	for _, page := range once {
		switch page.Type {
		case magazine.PageBackCover, magazine.PageContents:
			assert.Empty(t, page.Image)
		default:
			assert.NotEmpty(t, page.Image)
		}
	}

	assert.Equal(t, "https://cdn.example/kept.jpg", once[4].Image)
	assert.Equal(t, "https://img.example/seed/cover/800/600", once[0].Image)
}

/*
TestNewSeeder_DefaultBase uses the placeholder service when unset.
*/
func TestNewSeeder_DefaultBase(t *testing.T) {
	assert.Equal(t, "https://picsum.photos/seed/abc/800/600", magazine.NewSeeder("").URL("abc"))
}
