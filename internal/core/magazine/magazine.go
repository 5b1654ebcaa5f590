// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package magazine defines the layout engine and the generation workflow for Kiosk.

A magazine is produced from a short [Brief] in a single sequential pass:

	brief → Plan → RequestDocument → Reflow → Seed → Moderate → Rehost → persist

Core Responsibility:

  - Planning: Builds a fixed page skeleton from a requested page count.
  - Reflow: Distributes generated prose across the skeleton under a strict word budget.
  - Assembly: Seeds placeholder imagery, moderates and persists the final structure.

Every step of the layout engine is a pure function over a slice of [PageSlot]
values. Steps never alias their input, so each one can be tested in isolation.
*/
package magazine

import "time"

// # Page Taxonomy

// PageType classifies a planned slot.
type PageType string

const (
	PageCover        PageType = "COVER"
	PageEditorNote   PageType = "EDITOR_NOTE"
	PageContents     PageType = "CONTENTS"
	PageIntroduction PageType = "INTRODUCTION"
	PageChapter      PageType = "CHAPTER"
	PageFeature      PageType = "FEATURE"
	PageSummary      PageType = "SUMMARY"
	PageBackCover    PageType = "BACK_COVER"
)

// Layout is the presentation tag a renderer uses to draw a page.
type Layout string

const (
	LayoutSimpleText  Layout = "simple-text"
	LayoutImageRight  Layout = "image-right"
	LayoutImageLeft   Layout = "image-left"
	LayoutImageTop    Layout = "image-top"
	LayoutImageBottom Layout = "image-bottom"
	LayoutFullImage   Layout = "full-image"
	LayoutQuoteBreak  Layout = "quote-break"
)

// IsValid reports whether l is a recognised [Layout].
func (l Layout) IsValid() bool {
	switch l {
	case
		LayoutSimpleText,
		LayoutImageRight,
		LayoutImageLeft,
		LayoutImageTop,
		LayoutImageBottom,
		LayoutFullImage,
		LayoutQuoteBreak:
		return true
	}
	return false
}

// # Structure

// PageSlot is one physical page of the finished magazine.
//
// PageNumber is assigned at planning time and never changes afterwards.
// ChapterNumber identifies the logical chapter a physical page belongs to;
// several continuation pages share the same value.
type PageSlot struct {
	PageNumber    int      `json:"pageNumber"`
	Type          PageType `json:"type"`
	Title         string   `json:"title,omitempty"`
	Content       string   `json:"content"`
	ImagePrompt   string   `json:"imagePrompt,omitempty"`
	Layout        Layout   `json:"layout"`
	ChapterNumber int      `json:"chapterNumber,omitempty"`
	Image         string   `json:"image,omitempty"`
}

// Structure is the document root handed to renderers and persistence.
type Structure struct {
	Title      string     `json:"title"`
	TotalPages int        `json:"totalPages"`
	Pages      []PageSlot `json:"pages"`
}

// ContentsEntry is one line of a CONTENTS page.
type ContentsEntry struct {
	Page  int    `json:"page"`
	Title string `json:"title"`
}

// # Generator Payload

// Section is a single titled block of generated prose.
type Section struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	ImagePrompt string `json:"image_prompt,omitempty"`
}

// Document is the structured answer of the text generator.
//
// It is ephemeral: the reflow engine consumes it entirely.
type Document struct {
	Cover        Section   `json:"cover"`
	EditorsNote  *Section  `json:"editors_note,omitempty"`
	Introduction Section   `json:"introduction"`
	Chapters     []Section `json:"chapters"`
	Summary      Section   `json:"summary"`
}

// # Request

// Brief is the user's free-text request for a magazine.
type Brief struct {
	Theme    string   `json:"theme"`
	Genre    string   `json:"genre"`
	Age      int      `json:"age"`
	Language string   `json:"language"`
	Keywords []string `json:"keywords"`
	Pages    int      `json:"pages"`
}

// # Persistence Record

// ModerationStatus is stored alongside a record; only approved content is persisted.
type ModerationStatus string

const (
	ModerationApproved ModerationStatus = "approved"
)

// Record is the generic content record consumed by storage and legacy readers.
//
// Structure holds the serialised [Structure] JSON. Images is the flat list of
// page images in slot order, kept for backward-compatible consumers.
type Record struct {
	ID               string           `json:"id"`
	OwnerID          string           `json:"owner_id"`
	Title            string           `json:"title"`
	Introduction     string           `json:"introduction"`
	Conclusion       string           `json:"conclusion"`
	Images           []string         `json:"images"`
	Structure        string           `json:"structure"`
	Brief            Brief            `json:"brief"`
	ModerationStatus ModerationStatus `json:"moderation_status"`
	Degraded         bool             `json:"degraded"` // true when the fallback fill was used
	CreatedAt        time.Time        `json:"created_at"`
}
