// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package magazine

import (
	"encoding/json"
	"slices"
	"strings"
)

// # Reflow Constants

const (
	// ContinuationSuffix marks every chapter page after the first.
	ContinuationSuffix = " (Cont.)"

	// FillerTitle is given to chapter slots that generation could not fill.
	FillerTitle = "Visual Gallery"

	// RetryMessage fills pages whose content could not be generated.
	RetryMessage = "This page could not be generated right now. Please try generating the magazine again."

	// BackCoverMessage closes every magazine.
	BackCoverMessage = "Thank you for reading."
)

// # Reflow Pipeline

/*
Reflow maps a generated document onto a planned skeleton.

Description: Runs the reflow steps in their fixed order. Each step returns a
new slice, so the input skeleton is left untouched.

 1. Direct sections (cover, editor's note, introduction).
 2. Chapter split across CHAPTER slots with a single shared cursor.
 3. Unused CHAPTER slots become FEATURE filler.
 4. Back matter (summary, back cover).
 5. Contents, which must read the final chapter titles.

Any slot still lacking content afterwards receives [RetryMessage].

Parameters:
  - slots: []PageSlot (planned skeleton)
  - doc: Document

Returns:
  - []PageSlot: the filled pages
*/
func Reflow(slots []PageSlot, doc Document) []PageSlot {
	filled := applyDirectSections(slots, doc)
	filled = applyChapters(filled, doc.Chapters)
	filled = applyFiller(filled)
	filled = applyBackMatter(filled, doc.Summary)
	filled = applyContents(filled)
	return FillMissing(filled)
}

/*
Fallback fills a skeleton when no document could be generated.

Description: The skeleton keeps its page types, contents are still computed,
and every empty page receives [RetryMessage]. Images are left to the seeder.
*/
func Fallback(slots []PageSlot) []PageSlot {
	filled := applyBackMatter(slots, Section{})
	filled = applyContents(filled)
	return FillMissing(filled)
}

// FillMissing gives every non-filler slot lacking content the retry message and
// a default layout.
func FillMissing(slots []PageSlot) []PageSlot {
	filled := slices.Clone(slots)
	for i := range filled {
		if filled[i].Layout == "" {
			filled[i].Layout = defaultLayout(filled[i].Type)
		}
		if filled[i].Type == PageFeature {
			continue
		}
		if strings.TrimSpace(filled[i].Content) == "" {
			filled[i].Content = RetryMessage
		}
	}
	return filled
}

// # Step 1: Direct Sections

func applyDirectSections(slots []PageSlot, doc Document) []PageSlot {
	filled := slices.Clone(slots)
	for i := range filled {
		switch filled[i].Type {
		case PageCover:
			fillSection(&filled[i], doc.Cover, LayoutFullImage)
		case PageEditorNote:
			if doc.EditorsNote != nil {
				fillSection(&filled[i], *doc.EditorsNote, LayoutSimpleText)
			}
		case PageIntroduction:
			// Introductions must never sit under an image overlay.
			fillSection(&filled[i], doc.Introduction, LayoutImageTop)
		}
	}
	return filled
}

func fillSection(slot *PageSlot, section Section, layout Layout) {
	if section.Title != "" {
		slot.Title = section.Title
	}
	slot.Content = section.Content
	slot.ImagePrompt = section.ImagePrompt
	slot.Layout = layout
}

// # Step 2: Chapter Split

// chunk is one physical page of a logical chapter.
type chunk struct {
	chapterIndex int
	part         int
	title        string
	content      string
	imagePrompt  string
}

// applyChapters places chapters in generated order. A chapter with no prose
// yields no chunks and takes no slot, but chapter numbers stay tied to the
// generated index, so later chapters keep their numbers and gaps can appear.
func applyChapters(slots []PageSlot, chapters []Section) []PageSlot {
	filled := slices.Clone(slots)

	cursor := 0
	for chapterIndex, chapter := range chapters {
		for part, content := range SplitChapter(chapter.Content) {
			next := chunk{
				chapterIndex: chapterIndex,
				part:         part,
				title:        chapter.Title,
				content:      content,
				imagePrompt:  chapter.ImagePrompt,
			}

			var ok bool
			cursor, ok = placeChunk(filled, cursor, next)
			if !ok {
				// The skeleton is the hard ceiling; surplus chunks are dropped.
				return filled
			}
		}
	}

	return filled
}

// placeChunk writes c into the first CHAPTER slot at or after cursor and returns
// the advanced cursor. It reports false when no chapter slot is left.
func placeChunk(slots []PageSlot, cursor int, c chunk) (int, bool) {
	for ; cursor < len(slots); cursor++ {
		if slots[cursor].Type != PageChapter {
			continue
		}

		slot := &slots[cursor]
		slot.ChapterNumber = c.chapterIndex + 1
		slot.Content = c.content

		if c.part == 0 {
			slot.Title = c.title
			slot.ImagePrompt = c.imagePrompt
			slot.Layout = LayoutImageRight
			if c.chapterIndex%2 == 1 {
				slot.Layout = LayoutImageLeft
			}
		} else {
			slot.Title = c.title + ContinuationSuffix
			slot.ImagePrompt = ""
			slot.Layout = LayoutSimpleText
		}

		return cursor + 1, true
	}
	return cursor, false
}

// # Step 3: Filler

func applyFiller(slots []PageSlot) []PageSlot {
	filled := slices.Clone(slots)
	for i := range filled {
		if filled[i].Type != PageChapter || filled[i].ChapterNumber != 0 {
			continue
		}
		filled[i].Type = PageFeature
		filled[i].Title = FillerTitle
		filled[i].Layout = LayoutFullImage
		filled[i].Content = ""
	}
	return filled
}

// # Step 4: Back Matter

func applyBackMatter(slots []PageSlot, summary Section) []PageSlot {
	filled := slices.Clone(slots)
	for i := range filled {
		switch filled[i].Type {
		case PageSummary:
			fillSection(&filled[i], summary, LayoutSimpleText)
		case PageBackCover:
			filled[i].Content = BackCoverMessage
			filled[i].Layout = LayoutFullImage
		}
	}
	return filled
}

// # Step 5: Contents

func applyContents(slots []PageSlot) []PageSlot {
	filled := slices.Clone(slots)

	contentsIndex := slices.IndexFunc(filled, func(slot PageSlot) bool {
		return slot.Type == PageContents
	})
	if contentsIndex < 0 {
		return filled
	}

	entries := []ContentsEntry{}
	for _, slot := range filled {
		if isChapterStart(slot) {
			entries = append(entries, ContentsEntry{Page: slot.PageNumber, Title: slot.Title})
		}
	}

	// Encoding a slice of plain structs cannot fail.
	encoded, _ := json.Marshal(entries)

	filled[contentsIndex].Content = string(encoded)
	filled[contentsIndex].Layout = LayoutSimpleText
	return filled
}

// isChapterStart reports whether slot opens a placed logical chapter.
func isChapterStart(slot PageSlot) bool {
	return slot.Type == PageChapter && slot.ChapterNumber > 0 && !strings.Contains(slot.Title, ContinuationSuffix)
}

// ParseContents decodes the entries stored on a CONTENTS page.
func ParseContents(content string) ([]ContentsEntry, error) {
	var entries []ContentsEntry
	if err := json.Unmarshal([]byte(content), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// # Layout Defaults

func defaultLayout(pageType PageType) Layout {
	switch pageType {
	case PageCover, PageBackCover, PageFeature:
		return LayoutFullImage
	case PageIntroduction:
		return LayoutImageTop
	default:
		return LayoutSimpleText
	}
}
