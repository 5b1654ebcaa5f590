// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package magazine

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/taibuivan/kiosk/internal/core/moderation"
	"github.com/taibuivan/kiosk/internal/platform/apperr"
)

// # Assembly

// Moderator is the content-safety gate run over the assembled sections.
type Moderator interface {
	Moderate(sections map[string]string) (map[string]string, error)
}

// Assembly is the outcome of one synchronous assembly pass.
type Assembly struct {
	Structure Structure
	// Degraded is true when generation failed and the fallback fill was used.
	Degraded bool
}

// Assembler runs the layout pipeline without touching storage.
type Assembler struct {
	requestor *Requestor
	seeder    *Seeder
	moderator Moderator
	logger    *slog.Logger
}

// NewAssembler constructs an [Assembler] with its collaborators.
func NewAssembler(requestor *Requestor, seeder *Seeder, moderator Moderator, logger *slog.Logger) *Assembler {
	return &Assembler{
		requestor: requestor,
		seeder:    seeder,
		moderator: moderator,
		logger:    logger,
	}
}

/*
Assemble produces a complete magazine structure for a brief.

Description: Plans the skeleton, requests the document and reflows it. A
generation failure is recovered with [Fallback] so a fully populated structure
is always produced. Images are then seeded and the result is moderated.

Parameters:
  - context: context.Context
  - brief: Brief

Returns:
  - *Assembly
  - error: apperr CONTENT_REJECTED when moderation fails
*/
func (assembler *Assembler) Assemble(context context.Context, brief Brief) (*Assembly, error) {

	// 1. Skeleton
	slots := Plan(brief.Pages)

	// 2. Document and reflow, degrading to the fallback fill on failure
	degraded := false
	doc, err := assembler.requestor.RequestDocument(context, brief, CountChapterSlots(slots))
	if err != nil {
		assembler.logger.WarnContext(context, "generation_failed_fallback",
			slog.String("theme", brief.Theme),
			slog.Int("pages", len(slots)),
			slog.Any("error", err),
		)
		slots = Fallback(slots)
		degraded = true
	} else {
		slots = Reflow(slots, doc)
	}

	// 3. Placeholder imagery
	slots = assembler.seeder.Seed(slots, brief.Theme)

	structure := Structure{
		Title:      magazineTitle(doc, brief),
		TotalPages: len(slots),
		Pages:      slots,
	}

	// 4. Moderation (all-or-nothing)
	if _, err := assembler.moderator.Moderate(Sections(structure)); err != nil {
		if errors.Is(err, moderation.ErrContentRejected) {
			assembler.logger.WarnContext(context, "content_rejected", slog.Any("reason", err))
			return nil, apperr.ContentRejected(err)
		}
		return nil, apperr.Internal(err)
	}

	return &Assembly{Structure: structure, Degraded: degraded}, nil
}

// Sections flattens a structure into the section map scanned by moderation.
func Sections(structure Structure) map[string]string {
	sections := map[string]string{
		moderation.SectionTitle: structure.Title,
	}

	var chapters, prompts []string
	for _, page := range structure.Pages {
		if prompt := strings.TrimSpace(page.ImagePrompt); prompt != "" {
			prompts = append(prompts, prompt)
		}

		text := strings.TrimSpace(page.Title + "\n" + page.Content)
		switch page.Type {
		case PageCover:
			sections[moderation.SectionCover] = text
		case PageEditorNote:
			sections[moderation.SectionEditorsNote] = text
		case PageIntroduction:
			sections[moderation.SectionIntroduction] = text
		case PageChapter, PageFeature:
			chapters = append(chapters, text)
		case PageSummary:
			sections[moderation.SectionSummary] = text
		}
	}
	sections[moderation.SectionChapters] = strings.Join(chapters, "\n\n")
	if len(prompts) > 0 {
		sections[moderation.SectionImagePrompts] = strings.Join(prompts, "\n")
	}

	return sections
}

// magazineTitle prefers the generated cover title and falls back to the theme.
func magazineTitle(doc Document, brief Brief) string {
	if title := strings.TrimSpace(doc.Cover.Title); title != "" {
		return title
	}
	return brief.Theme
}
