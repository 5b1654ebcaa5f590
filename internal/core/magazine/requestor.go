// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package magazine

import (
	"context"
	"fmt"
	"math"
	"strings"
)

// # Content Requestor

const (
	// minLogicalChapters is the fewest chapters ever requested from the generator.
	minLogicalChapters = 2

	// pagesPerChapter is how many physical pages one logical chapter is expected to span.
	pagesPerChapter = 1.5

	// introductionWordCeiling caps the introduction so it fits beside its image.
	introductionWordCeiling = 120

	defaultLanguage = "en"
)

// TextGenerator is the external text model.
//
// One call, no streaming. The answer may contain extra formatting around the JSON.
type TextGenerator interface {
	GenerateStructuredText(context context.Context, prompt string) (string, error)
}

// Requestor turns a brief into a generated [Document] with a single model call.
type Requestor struct {
	generator TextGenerator
}

// NewRequestor constructs a [Requestor] around a text generator.
func NewRequestor(generator TextGenerator) *Requestor {
	return &Requestor{generator: generator}
}

/*
RequestDocument asks the generator for a magazine document.

Description: Builds one prompt from the brief and the number of chapter
slots, issues exactly one generation call and parses the answer with
[ParseLooseJSON]. Failures are returned as [*GenerationError]; nothing is
swallowed here.

Parameters:
  - context: context.Context
  - brief: Brief
  - chapterSlotCount: int

Returns:
  - Document
  - error: *GenerationError
*/
func (requestor *Requestor) RequestDocument(context context.Context, brief Brief, chapterSlotCount int) (Document, error) {
	prompt := BuildPrompt(brief, LogicalChapterCount(chapterSlotCount))

	raw, err := requestor.generator.GenerateStructuredText(context, prompt)
	if err != nil {
		return Document{}, &GenerationError{Stage: StageRequest, Cause: err}
	}
	if strings.TrimSpace(raw) == "" {
		return Document{}, &GenerationError{Stage: StageRequest, Cause: ErrEmptyResponse}
	}

	doc, err := ParseLooseJSON(raw)
	if err != nil {
		return Document{}, &GenerationError{Stage: StageParse, Cause: err}
	}

	return doc, nil
}

// LogicalChapterCount is max(2, ceil(chapterSlotCount / 1.5)).
func LogicalChapterCount(chapterSlotCount int) int {
	requested := int(math.Ceil(float64(chapterSlotCount) / pagesPerChapter))
	return max(minLogicalChapters, requested)
}

// # Prompt

/*
BuildPrompt renders the single generation prompt for a brief.

Description: Carries the brief (age, genre, theme, keywords, language) and
the structural contract: a capped introduction, chapters as one continuous
block of paragraphs, and JSON-only output.
*/
func BuildPrompt(brief Brief, chapterCount int) string {
	language := brief.Language
	if language == "" {
		language = defaultLanguage
	}

	var builder strings.Builder

	builder.WriteString("You are the editor of an illustrated magazine. Write the full magazine described below.\n\n")

	builder.WriteString("Brief:\n")
	fmt.Fprintf(&builder, "- Theme: %s\n", brief.Theme)
	if brief.Genre != "" {
		fmt.Fprintf(&builder, "- Genre: %s\n", brief.Genre)
	}
	if brief.Age > 0 {
		fmt.Fprintf(&builder, "- Reader age: %d\n", brief.Age)
	}
	if len(brief.Keywords) > 0 {
		fmt.Fprintf(&builder, "- Keywords: %s\n", strings.Join(brief.Keywords, ", "))
	}
	fmt.Fprintf(&builder, "- Language: write every text field in %q\n\n", language)

	builder.WriteString("Structure:\n")
	fmt.Fprintf(&builder, "- The introduction must not exceed %d words.\n", introductionWordCeiling)
	fmt.Fprintf(&builder, "- Write exactly %d chapters.\n", chapterCount)
	builder.WriteString("- Each chapter's content is one continuous block of prose, 350 to 500 words, with paragraphs separated by line breaks. Do not split a chapter into parts.\n")
	builder.WriteString("- Give the cover and every chapter a short, concrete image_prompt describing one illustration.\n\n")

	builder.WriteString("Output:\n")
	builder.WriteString("- Respond with JSON only. No Markdown, no commentary.\n")
	builder.WriteString("- Use exactly this shape:\n")
	builder.WriteString(`{"cover":{"title":"","content":"","image_prompt":""},` +
		`"editors_note":{"title":"","content":""},` +
		`"introduction":{"title":"","content":""},` +
		`"chapters":[{"title":"","content":"","image_prompt":""}],` +
		`"summary":{"title":"","content":""}}`)
	builder.WriteString("\n")

	return builder.String()
}
