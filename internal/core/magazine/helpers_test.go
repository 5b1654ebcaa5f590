// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package magazine_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/taibuivan/kiosk/internal/core/magazine"
	"github.com/taibuivan/kiosk/internal/platform/apperr"
)

// words returns a paragraph of exactly n distinct words.
func words(prefix string, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return strings.Join(parts, " ")
}

// chapterOf joins paragraphs of the given word counts with line breaks.
func chapterOf(prefix string, counts ...int) string {
	paragraphs := make([]string, len(counts))
	for i, n := range counts {
		paragraphs[i] = words(fmt.Sprintf("%s-p%d-", prefix, i), n)
	}
	return strings.Join(paragraphs, "\n")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func typesOf(slots []magazine.PageSlot) []magazine.PageType {
	types := make([]magazine.PageType, len(slots))
	for i, slot := range slots {
		types[i] = slot.Type
	}
	return types
}

// # Fakes

type fakeGenerator struct {
	mu      sync.Mutex
	answer  string
	err     error
	prompts []string
}

func (f *fakeGenerator) GenerateStructuredText(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	return f.answer, f.err
}

type fakeRepository struct {
	mu      sync.Mutex
	records map[string]*magazine.Record
	order   []string
	err     error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{records: map[string]*magazine.Record{}}
}

func (f *fakeRepository) Create(_ context.Context, record *magazine.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.records[record.ID] = record
	f.order = append(f.order, record.ID)
	return nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*magazine.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.records[id]
	if !ok {
		return nil, apperr.NotFound("Magazine")
	}
	return record, nil
}

func (f *fakeRepository) ListByOwner(_ context.Context, ownerID string, limit, offset int) ([]*magazine.Record, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var owned []*magazine.Record
	for i := len(f.order) - 1; i >= 0; i-- {
		if record := f.records[f.order[i]]; record.OwnerID == ownerID {
			owned = append(owned, record)
		}
	}

	total := len(owned)
	if offset >= total {
		return []*magazine.Record{}, total, nil
	}
	end := min(offset+limit, total)
	return owned[offset:end], total, nil
}

type fakeRehoster struct {
	mapping map[string]string
	seen    []string
}

func (f *fakeRehoster) Rehost(_ context.Context, urls []string) map[string]string {
	f.seen = append(f.seen, urls...)
	return f.mapping
}

// documentJSON renders a generated document the way a model would answer.
func documentJSON(chapters ...magazine.Section) string {
	var builder strings.Builder
	builder.WriteString("Sure! Here you go:\n```json\n")
	builder.WriteString(`{"cover":{"title":"Ocean Deep","content":"Dive in.","image_prompt":"blue whale"},`)
	builder.WriteString(`"editors_note":{"title":"Hello","content":"A note."},`)
	builder.WriteString(`"introduction":{"title":"Intro","content":"The sea is vast."},`)
	builder.WriteString(`"chapters":[`)
	for i, chapter := range chapters {
		if i > 0 {
			builder.WriteString(",")
		}
		fmt.Fprintf(&builder, `{"title":%q,"content":%q,"image_prompt":%q}`, chapter.Title, chapter.Content, chapter.ImagePrompt)
	}
	builder.WriteString(`],"summary":{"title":"Wrap-up","content":"We learned a lot."}}`)
	builder.WriteString("\n```\n")
	return builder.String()
}
