// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package magazine

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/taibuivan/kiosk/pkg/slug"
)

// # Image Seeder

const (
	// DefaultImageBaseURL is the placeholder image service keyed by seed.
	DefaultImageBaseURL = "https://picsum.photos/seed"

	// maxSeedLength keeps placeholder URLs short when prompts are long.
	maxSeedLength = 80
)

// Seeder assigns deterministic placeholder images to pages that lack one.
type Seeder struct {
	baseURL string
}

// NewSeeder constructs a [Seeder]. An empty baseURL selects [DefaultImageBaseURL].
func NewSeeder(baseURL string) *Seeder {
	if baseURL == "" {
		baseURL = DefaultImageBaseURL
	}
	return &Seeder{baseURL: strings.TrimRight(baseURL, "/")}
}

/*
Seed fills the Image of every page that needs one.

Description: BACK_COVER and CONTENTS pages never carry an image. For every
other page without an image the seed is taken from the image prompt, else the
title, else the theme and page number, reduced to [a-z0-9-]. Pages that already
have an image are left alone, so Seed is idempotent.

Parameters:
  - slots: []PageSlot
  - theme: string

Returns:
  - []PageSlot: a copy with images assigned
*/
func (seeder *Seeder) Seed(slots []PageSlot, theme string) []PageSlot {
	seeded := slices.Clone(slots)
	for i := range seeded {
		slot := &seeded[i]
		if slot.Type == PageBackCover || slot.Type == PageContents {
			continue
		}
		if slot.Image != "" {
			continue
		}
		slot.Image = seeder.URL(SeedFor(*slot, theme))
	}
	return seeded
}

// URL builds the placeholder image address for a seed.
func (seeder *Seeder) URL(seed string) string {
	return fmt.Sprintf("%s/%s/800/600", seeder.baseURL, seed)
}

// SeedFor derives the image seed of a page.
func SeedFor(slot PageSlot, theme string) string {
	pageNumber := strconv.Itoa(slot.PageNumber)

	candidates := []string{slot.ImagePrompt, slot.Title, theme + " " + pageNumber}
	for _, candidate := range candidates {
		if seed := slug.Limit(candidate, maxSeedLength); seed != "" {
			return seed
		}
	}
	return "page-" + pageNumber
}
