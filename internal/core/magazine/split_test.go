// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package magazine_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kiosk/internal/core/magazine"
)

func chunkWordCounts(chunks []string) []int {
	counts := make([]int, len(chunks))
	for i, chunk := range chunks {
		counts[i] = magazine.CountWords(chunk)
	}
	return counts
}

/*
TestSplitChapter_Boundaries covers the budget and the near-empty floor.
*/
func TestSplitChapter_Boundaries(t *testing.T) {
	tests := []struct {
		name       string
		paragraphs []int
		want       []int
	}{
		{"empty", nil, []int{}},
		{"single_short", []int{80}, []int{80}},
		{"three_of_two_hundred", []int{200, 200, 200}, []int{200, 200, 200}},
		{"fits_budget_exactly", []int{145, 100}, []int{245}},
		{"one_over_budget", []int{145, 101}, []int{145, 101}},
		{"floor_keeps_small_chunk_open", []int{50, 250}, []int{300}},
		{"floor_boundary_at_one_hundred", []int{100, 200}, []int{300}},
		{"long_paragraph_kept_whole", []int{400}, []int{400}},
		{"small_tail", []int{200, 10}, []int{210}},
		{"tail_after_close", []int{150, 150, 5}, []int{150, 155}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := magazine.SplitChapter(chapterOf("w", tt.paragraphs...))
			if len(tt.want) == 0 {
				assert.Empty(t, chunks)
				return
			}
			assert.Equal(t, tt.want, chunkWordCounts(chunks))
		})
	}
}

/*
TestSplitChapter_PreservesParagraphs never splits inside a paragraph and keeps order.
*/
func TestSplitChapter_PreservesParagraphs(t *testing.T) {
	content := chapterOf("keep", 120, 130, 90, 140, 60)
	chunks := magazine.SplitChapter(content)
	require.NotEmpty(t, chunks)

	var rejoined []string
	for _, chunk := range chunks {
		rejoined = append(rejoined, strings.Split(chunk, "\n\n")...)
	}

	assert.Equal(t, magazine.Paragraphs(content), rejoined)
}

/*
TestSplitChapter_BudgetProperty holds whenever every paragraph is 101..145 words.
*/
func TestSplitChapter_BudgetProperty(t *testing.T) {
	counts := []int{101, 145, 120, 133, 101, 144, 110, 128, 139, 102}
	chunks := magazine.SplitChapter(chapterOf("prop", counts...))

	for _, n := range chunkWordCounts(chunks) {
		assert.LessOrEqual(t, n, magazine.WordBudget)
		assert.Greater(t, n, 100)
	}
}

/*
TestParagraphs_Normalisation drops blank lines and handles CRLF.
*/
func TestParagraphs_Normalisation(t *testing.T) {
	got := magazine.Paragraphs("first line\r\n\r\n  second line  \n\n\nthird")
	assert.Equal(t, []string{"first line", "second line", "third"}, got)
	assert.Empty(t, magazine.Paragraphs("  \n \n"))
}
