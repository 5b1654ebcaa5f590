// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package magazine_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kiosk/internal/core/magazine"
	"github.com/taibuivan/kiosk/internal/core/moderation"
	"github.com/taibuivan/kiosk/internal/platform/apperr"
)

type failingModerator struct{ err error }

func (f failingModerator) Moderate(map[string]string) (map[string]string, error) {
	return nil, f.err
}

func newAssembler(generator *fakeGenerator, moderator magazine.Moderator) *magazine.Assembler {
	return magazine.NewAssembler(
		magazine.NewRequestor(generator),
		magazine.NewSeeder(""),
		moderator,
		discardLogger(),
	)
}

/*
TestAssemble_Generated reflows a generated document into a complete structure.
*/
func TestAssemble_Generated(t *testing.T) {
	generator := &fakeGenerator{answer: documentJSON(
		magazine.Section{Title: "Whales", Content: chapterOf("w", 80, 80), ImagePrompt: "humpback"},
		magazine.Section{Title: "Reefs", Content: chapterOf("r", 60)},
	)}

	assembly, err := newAssembler(generator, moderation.NewGate()).
		Assemble(context.Background(), magazine.Brief{Theme: "Ocean", Pages: 8})

	require.NoError(t, err)
	assert.False(t, assembly.Degraded)
	assert.Equal(t, "Ocean Deep", assembly.Structure.Title)
	assert.Equal(t, 8, assembly.Structure.TotalPages)
	require.Len(t, assembly.Structure.Pages, 8)

	for i, page := range assembly.Structure.Pages {
		assert.Equal(t, i+1, page.PageNumber)
		assert.NotEmpty(t, page.Content, "page %d", page.PageNumber)
		assert.True(t, page.Layout.IsValid(), "page %d layout %q", page.PageNumber, page.Layout)
	}

	assert.Equal(t, "Whales", assembly.Structure.Pages[4].Title)
	assert.Contains(t, assembly.Structure.Pages[4].Image, "/humpback/")
}

/*
TestAssemble_Fallback degrades instead of failing when generation breaks.
*/
func TestAssemble_Fallback(t *testing.T) {
	tests := []struct {
		name      string
		generator *fakeGenerator
	}{
		{"transport_error", &fakeGenerator{err: errors.New("connection reset")}},
		{"unparsable", &fakeGenerator{answer: "Sorry, I can't do that."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assembly, err := newAssembler(tt.generator, moderation.NewGate()).
				Assemble(context.Background(), magazine.Brief{Theme: "Ocean", Pages: 6})

			require.NoError(t, err)
			assert.True(t, assembly.Degraded)
			assert.Equal(t, "Ocean", assembly.Structure.Title)
			assert.Len(t, assembly.Structure.Pages, 6)

			last := assembly.Structure.Pages[5]
			assert.Equal(t, magazine.PageBackCover, last.Type)
			assert.Equal(t, magazine.BackCoverMessage, last.Content)
			assert.Equal(t, magazine.RetryMessage, assembly.Structure.Pages[1].Content)
		})
	}
}

/*
TestAssemble_Moderation maps gate outcomes onto API errors.
*/
func TestAssemble_Moderation(t *testing.T) {
	t.Run("rejected", func(t *testing.T) {
		generator := &fakeGenerator{answer: documentJSON(
			magazine.Section{Title: "Battles", Content: "A story full of gore and more."},
		)}

		_, err := newAssembler(generator, moderation.NewGate()).
			Assemble(context.Background(), magazine.Brief{Theme: "History", Pages: 5})

		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "CONTENT_REJECTED", appErr.Code)
		assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPStatus)
		assert.ErrorIs(t, err, moderation.ErrContentRejected)
	})

	t.Run("gate_failure", func(t *testing.T) {
		generator := &fakeGenerator{answer: documentJSON(magazine.Section{Title: "One", Content: "Calm text."})}

		_, err := newAssembler(generator, failingModerator{err: errors.New("safety service down")}).
			Assemble(context.Background(), magazine.Brief{Theme: "History", Pages: 5})

		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
	})
}

/*
TestSections groups pages into the moderated section keys.
*/
func TestSections(t *testing.T) {
	structure := magazine.Structure{
		Title: "Mag",
		Pages: []magazine.PageSlot{
			{Type: magazine.PageCover, Title: "Cover", Content: "c"},
			{Type: magazine.PageChapter, Title: "One", Content: "a"},
			{Type: magazine.PageFeature, Title: magazine.FillerTitle},
			{Type: magazine.PageChapter, Title: "Two", Content: "b"},
			{Type: magazine.PageBackCover, Content: "bye"},
		},
	}

	sections := magazine.Sections(structure)

	assert.Equal(t, "Mag", sections[moderation.SectionTitle])
	assert.Equal(t, "Cover\nc", sections[moderation.SectionCover])
	assert.Equal(t, "One\na\n\nVisual Gallery\n\nTwo\nb", sections[moderation.SectionChapters])
	assert.NotContains(t, sections, moderation.SectionSummary)
	assert.NotContains(t, sections, moderation.SectionImagePrompts)
}

/*
TestSections_ImagePrompts folds page image prompts into the moderated sections.
*/
func TestSections_ImagePrompts(t *testing.T) {
	structure := magazine.Structure{
		Title: "Mag",
		Pages: []magazine.PageSlot{
			{Type: magazine.PageCover, Title: "Cover", ImagePrompt: "calm harbor"},
			{Type: magazine.PageChapter, Title: "One", Content: "a", ImagePrompt: "a bloodbath at dawn"},
			{Type: magazine.PageChapter, Title: "One" + magazine.ContinuationSuffix, Content: "b"},
		},
	}

	sections := magazine.Sections(structure)
	assert.Equal(t, "calm harbor\na bloodbath at dawn", sections[moderation.SectionImagePrompts])

	_, err := moderation.NewGate().Moderate(sections)
	assert.ErrorIs(t, err, moderation.ErrContentRejected)
}
