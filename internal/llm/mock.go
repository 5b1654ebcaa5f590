// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	chapterCountPattern = regexp.MustCompile(`Write exactly (\d+) chapters`)
	themePattern        = regexp.MustCompile(`(?m)^- Theme: (.+)$`)
)

const (
	defaultMockChapters   = 2
	mockParagraphs        = 4
	mockParagraphSentence = "The story of %s continues as the reader discovers one more detail worth remembering, told slowly and clearly so that every picture on the page has room to breathe."
)

// Mock is an offline generator that answers in the same loose format a real
// model tends to use: a fenced JSON block with a sentence of chatter around it.
type Mock struct{}

// NewMock returns a deterministic generator.
func NewMock() *Mock {
	return &Mock{}
}

// GenerateStructuredText builds a document sized from the prompt.
func (generator *Mock) GenerateStructuredText(context context.Context, prompt string) (string, error) {
	if err := context.Err(); err != nil {
		return "", err
	}

	theme := "the world"
	if match := themePattern.FindStringSubmatch(prompt); match != nil {
		theme = strings.TrimSpace(match[1])
	}

	chapters := defaultMockChapters
	if match := chapterCountPattern.FindStringSubmatch(prompt); match != nil {
		if n, err := strconv.Atoi(match[1]); err == nil && n > 0 {
			chapters = n
		}
	}

	payload, err := json.MarshalIndent(mockDocument(theme, chapters), "", "  ")
	if err != nil {
		return "", fmt.Errorf("llm: mock encode: %w", err)
	}

	return "Here is your magazine:\n```json\n" + string(payload) + "\n```\n", nil
}

type mockSection struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	ImagePrompt string `json:"image_prompt,omitempty"`
}

type mockDoc struct {
	Cover        mockSection   `json:"cover"`
	EditorsNote  mockSection   `json:"editors_note"`
	Introduction mockSection   `json:"introduction"`
	Chapters     []mockSection `json:"chapters"`
	Summary      mockSection   `json:"summary"`
}

func mockDocument(theme string, chapters int) mockDoc {
	doc := mockDoc{
		Cover: mockSection{
			Title:       "All About " + theme,
			Content:     "A magazine about " + theme + ".",
			ImagePrompt: theme + " cover illustration",
		},
		EditorsNote: mockSection{
			Title:   "From the Editor",
			Content: "Welcome to this issue about " + theme + ".",
		},
		Introduction: mockSection{
			Title:   "Introduction",
			Content: "In these pages we explore " + theme + " one chapter at a time.",
		},
		Summary: mockSection{
			Title:   "What We Learned",
			Content: "We travelled through " + strconv.Itoa(chapters) + " chapters about " + theme + ".",
		},
	}

	for i := 1; i <= chapters; i++ {
		paragraphs := make([]string, mockParagraphs)
		for p := range paragraphs {
			paragraphs[p] = strings.Repeat(fmt.Sprintf(mockParagraphSentence, theme)+" ", 3)
		}
		doc.Chapters = append(doc.Chapters, mockSection{
			Title:       fmt.Sprintf("Chapter %d: %s", i, theme),
			Content:     strings.Join(paragraphs, "\n"),
			ImagePrompt: fmt.Sprintf("%s scene %d", theme, i),
		})
	}

	return doc
}
