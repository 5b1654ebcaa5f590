// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package magazine

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/kiosk/internal/platform/apperr"
	"github.com/taibuivan/kiosk/internal/platform/validate"
	"github.com/taibuivan/kiosk/pkg/uuid"
)

// # Brief Constraints

const (
	DefaultPages = 8
	MaxPages     = 40

	maxThemeLength   = 200
	maxGenreLength   = 60
	maxKeywords      = 20
	maxKeywordLength = 40
	maxAge           = 120
)

// # Field Identifiers

const (
	FieldTheme    = "theme"
	FieldGenre    = "genre"
	FieldAge      = "age"
	FieldLanguage = "language"
	FieldKeywords = "keywords"
	FieldPages    = "pages"
)

// ImageRehoster copies page images onto API owned storage.
type ImageRehoster interface {
	Rehost(context context.Context, urls []string) map[string]string
}

// # Service Layer

// Service orchestrates generation and persistence of magazines.
type Service struct {
	assembler  *Assembler
	rehoster   ImageRehoster
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a [Service]. A nil rehoster keeps placeholder URLs as-is.
func NewService(assembler *Assembler, rehoster ImageRehoster, repository Repository, logger *slog.Logger) *Service {
	return &Service{
		assembler:  assembler,
		rehoster:   rehoster,
		repository: repository,
		logger:     logger,
	}
}

/*
Generate assembles, moderates and persists a magazine for an owner.

Description: The brief is normalised and validated, the layout pipeline
runs synchronously, images are optionally re-hosted, and the finished
record is stored. Moderation rejection aborts before anything is written.

Parameters:
  - context: context.Context
  - ownerID: string (Authenticated user)
  - brief: Brief

Returns:
  - *Record: The persisted record
  - error: VALIDATION_ERROR, CONTENT_REJECTED or STORAGE_ERROR
*/
func (service *Service) Generate(context context.Context, ownerID string, brief Brief) (*Record, error) {

	// 1. Normalise and validate the brief
	brief = NormalizeBrief(brief)
	if err := ValidateBrief(brief); err != nil {
		return nil, err
	}

	// 2. Layout pipeline
	assembly, err := service.assembler.Assemble(context, brief)
	if err != nil {
		return nil, err
	}

	// 3. Optional re-hosting; failures keep the original URL
	structure := assembly.Structure
	if service.rehoster != nil {
		structure.Pages = ReplaceImages(structure.Pages, service.rehoster.Rehost(context, PageImages(structure.Pages)))
	}

	// 4. Persistence
	record, err := NewRecord(uuid.New(), ownerID, brief, structure, assembly.Degraded)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if err := service.repository.Create(context, record); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "magazine_generated",
		slog.String("magazine_id", record.ID),
		slog.String("owner_id", ownerID),
		slog.Int("pages", structure.TotalPages),
		slog.Bool("degraded", assembly.Degraded),
	)

	return record, nil
}

/*
Get returns a record owned by the caller.

Returns:
  - *Record
  - error: apperr.NotFound, or apperr.Forbidden for another owner's magazine
*/
func (service *Service) Get(context context.Context, ownerID, id string) (*Record, error) {
	record, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}
	if record.OwnerID != ownerID {
		return nil, apperr.Forbidden("You do not have access to this magazine")
	}
	return record, nil
}

// List returns the caller's magazines, newest first.
func (service *Service) List(context context.Context, ownerID string, limit, offset int) ([]*Record, int, error) {
	return service.repository.ListByOwner(context, ownerID, limit, offset)
}

// # Brief Rules

// NormalizeBrief trims text fields and applies defaults.
func NormalizeBrief(brief Brief) Brief {
	brief.Theme = strings.TrimSpace(brief.Theme)
	brief.Genre = strings.TrimSpace(brief.Genre)
	brief.Language = strings.TrimSpace(brief.Language)
	if brief.Language == "" {
		brief.Language = defaultLanguage
	}
	if brief.Pages == 0 {
		brief.Pages = DefaultPages
	}

	keywords := make([]string, 0, len(brief.Keywords))
	for _, keyword := range brief.Keywords {
		if keyword = strings.TrimSpace(keyword); keyword != "" {
			keywords = append(keywords, keyword)
		}
	}
	brief.Keywords = keywords

	return brief
}

// ValidateBrief checks a normalised brief.
func ValidateBrief(brief Brief) error {
	validator := &validate.Validator{}

	validator.Required(FieldTheme, brief.Theme).MaxLen(FieldTheme, brief.Theme, maxThemeLength)
	validator.MaxLen(FieldGenre, brief.Genre, maxGenreLength)
	validator.Range(FieldAge, brief.Age, 0, maxAge)
	validator.Language(FieldLanguage, brief.Language)
	validator.Range(FieldPages, brief.Pages, MinPages, MaxPages)
	validator.MaxItems(FieldKeywords, len(brief.Keywords), maxKeywords)

	for _, keyword := range brief.Keywords {
		validator.MaxLen(FieldKeywords, keyword, maxKeywordLength)
	}

	return validator.Err()
}

// # Image Helpers

// PageImages lists the non-empty page images in slot order.
func PageImages(slots []PageSlot) []string {
	images := make([]string, 0, len(slots))
	for _, slot := range slots {
		if slot.Image != "" {
			images = append(images, slot.Image)
		}
	}
	return images
}

// ReplaceImages returns a copy of slots with images swapped per the mapping.
func ReplaceImages(slots []PageSlot, replacements map[string]string) []PageSlot {
	replaced := make([]PageSlot, len(slots))
	copy(replaced, slots)

	for i := range replaced {
		if hosted, ok := replacements[replaced[i].Image]; ok {
			replaced[i].Image = hosted
		}
	}
	return replaced
}
