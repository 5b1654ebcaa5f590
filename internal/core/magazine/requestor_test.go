// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package magazine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kiosk/internal/core/magazine"
)

/*
TestLogicalChapterCount applies the floor of two and the 1.5 page ratio.
*/
func TestLogicalChapterCount(t *testing.T) {
	tests := []struct {
		slots int
		want  int
	}{
		{0, 2}, {1, 2}, {2, 2}, {3, 2}, {4, 3}, {5, 4}, {6, 4}, {30, 20},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, magazine.LogicalChapterCount(tt.slots), "slots=%d", tt.slots)
	}
}

/*
TestBuildPrompt carries the brief and the structural contract.
*/
func TestBuildPrompt(t *testing.T) {
	prompt := magazine.BuildPrompt(magazine.Brief{
		Theme:    "Volcanoes",
		Genre:    "science",
		Age:      9,
		Keywords: []string{"lava", "magma"},
	}, 4)

	assert.Contains(t, prompt, "Theme: Volcanoes")
	assert.Contains(t, prompt, "Genre: science")
	assert.Contains(t, prompt, "Reader age: 9")
	assert.Contains(t, prompt, "Keywords: lava, magma")
	assert.Contains(t, prompt, `"en"`)
	assert.Contains(t, prompt, "Write exactly 4 chapters")
	assert.Contains(t, prompt, "must not exceed 120 words")
	assert.Contains(t, prompt, "JSON only")
}

/*
TestRequestDocument_Outcomes maps each failure onto its generation stage.
*/
func TestRequestDocument_Outcomes(t *testing.T) {
	brief := magazine.Brief{Theme: "Ocean", Pages: 8}

	t.Run("success", func(t *testing.T) {
		generator := &fakeGenerator{answer: documentJSON(magazine.Section{Title: "One", Content: "Text"})}
		doc, err := magazine.NewRequestor(generator).RequestDocument(context.Background(), brief, 5)

		require.NoError(t, err)
		assert.Len(t, doc.Chapters, 1)
		require.Len(t, generator.prompts, 1)
		assert.Contains(t, generator.prompts[0], "Write exactly 4 chapters")
	})

	tests := []struct {
		name      string
		generator *fakeGenerator
		stage     string
	}{
		{"transport", &fakeGenerator{err: errors.New("timeout")}, magazine.StageRequest},
		{"blank", &fakeGenerator{answer: "  \n"}, magazine.StageRequest},
		{"garbage", &fakeGenerator{answer: "no json here"}, magazine.StageParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := magazine.NewRequestor(tt.generator).RequestDocument(context.Background(), brief, 2)

			var generationErr *magazine.GenerationError
			require.ErrorAs(t, err, &generationErr)
			assert.Equal(t, tt.stage, generationErr.Stage)
			assert.Len(t, tt.generator.prompts, 1, "exactly one call, no retries")
		})
	}
}
