// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package magazine

// # Page Planner

const (
	// MinPages is the smallest magazine: cover, introduction, one chapter, summary, back cover.
	MinPages = 5

	// frontMatterThreshold is the page count from which EDITOR_NOTE and CONTENTS are planned.
	frontMatterThreshold = 8

	// trailingReserved counts the SUMMARY and BACK_COVER slots.
	trailingReserved = 2
)

// placeholderTitles are the skeleton titles; reflow overwrites the ones it fills.
var placeholderTitles = map[PageType]string{
	PageCover:        "Cover",
	PageEditorNote:   "Editor's Note",
	PageContents:     "Contents",
	PageIntroduction: "Introduction",
	PageChapter:      "Chapter",
	PageSummary:      "Summary",
	PageBackCover:    "Back Cover",
}

/*
Plan builds the ordered page skeleton for a requested page count.

Description: The count is clamped to [MinPages]. The skeleton is a COVER,
then EDITOR_NOTE and CONTENTS when the magazine has at least 8 pages, then an
INTRODUCTION, then CHAPTER slots up to totalPages-2, then SUMMARY and BACK_COVER.
The two trailing slots are never encroached upon.

Parameters:
  - requestedPages: int

Returns:
  - []PageSlot: exactly max(requestedPages, 5) slots numbered 1..N
*/
func Plan(requestedPages int) []PageSlot {
	totalPages := max(requestedPages, MinPages)
	slots := make([]PageSlot, 0, totalPages)

	push := func(pageType PageType) {
		slots = append(slots, PageSlot{
			PageNumber: len(slots) + 1,
			Type:       pageType,
			Title:      placeholderTitles[pageType],
		})
	}

	push(PageCover)
	if totalPages >= frontMatterThreshold {
		push(PageEditorNote)
		push(PageContents)
	}
	push(PageIntroduction)

	contentEndPage := totalPages - trailingReserved
	for len(slots) < contentEndPage {
		push(PageChapter)
	}

	push(PageSummary)
	push(PageBackCover)

	return slots
}

// CountChapterSlots returns how many CHAPTER slots a skeleton holds.
func CountChapterSlots(slots []PageSlot) int {
	count := 0
	for _, slot := range slots {
		if slot.Type == PageChapter {
			count++
		}
	}
	return count
}
