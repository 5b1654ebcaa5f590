// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package magazine

import "strings"

// # Word Budget

const (
	// WordBudget is the maximum number of words a chapter page should carry.
	WordBudget = 245

	// minChunkWords stops a chunk from closing while it is still nearly empty.
	minChunkWords = 100
)

/*
SplitChapter breaks chapter prose into page-sized chunks.

Description: Content is only ever split between paragraphs. Paragraphs are
accumulated into the current chunk until adding the next one would exceed
[WordBudget] while the current chunk already holds more than 100 words; then
the chunk is closed and the paragraph opens a new one.

A paragraph longer than the budget is kept whole, and the last chunk may be
arbitrarily small. Blank content yields no chunks.

Parameters:
  - content: string (paragraphs separated by line breaks)

Returns:
  - []string: chunks, paragraphs joined by a blank line
*/
func SplitChapter(content string) []string {
	var chunks []string
	var current []string
	currentWords := 0

	for _, paragraph := range Paragraphs(content) {
		words := CountWords(paragraph)

		if currentWords+words > WordBudget && currentWords > minChunkWords {
			chunks = append(chunks, strings.Join(current, "\n\n"))
			current = nil
			currentWords = 0
		}

		current = append(current, paragraph)
		currentWords += words
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, "\n\n"))
	}

	return chunks
}

// Paragraphs splits text on line breaks and drops blank lines.
func Paragraphs(content string) []string {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	paragraphs := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return paragraphs
}

// CountWords counts whitespace-separated words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
