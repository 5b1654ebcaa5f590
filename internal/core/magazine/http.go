// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package magazine

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/kiosk/internal/platform/apperr"
	"github.com/taibuivan/kiosk/internal/platform/constants"
	"github.com/taibuivan/kiosk/internal/platform/middleware"
	requestutil "github.com/taibuivan/kiosk/internal/platform/request"
	"github.com/taibuivan/kiosk/internal/platform/respond"
	"github.com/taibuivan/kiosk/internal/platform/validate"
	"github.com/taibuivan/kiosk/pkg/pagination"
)

// HTMLRenderer turns a structure into a standalone HTML document.
type HTMLRenderer func(structure Structure) ([]byte, error)

// # Handler Implementation

// Handler implements the HTTP layer for magazines.
type Handler struct {
	service         *Service
	render          HTMLRenderer
	generationGuard []func(http.Handler) http.Handler
}

// NewHandler constructs a magazine [Handler]. Guards wrap only the generation
// endpoint, e.g. the per-owner generation limiter.
func NewHandler(service *Service, render HTMLRenderer, generationGuard ...func(http.Handler) http.Handler) *Handler {
	return &Handler{
		service:         service,
		render:          render,
		generationGuard: generationGuard,
	}
}

// Routes returns a [chi.Router] for /api/v1/magazines.
//
// Every endpoint requires authentication; magazines are private to their owner.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	// ## Reads
	router.Group(func(read chi.Router) {
		read.Use(chimw.Timeout(constants.GlobalRequestTimeout))

		read.Get("/", handler.listMagazines)
		read.Get("/{id}", handler.getMagazine)
		read.Get("/{id}/export", handler.exportMagazine)
	})

	// ## Generation (one synchronous model call)
	router.Group(func(generate chi.Router) {
		generate.Use(chimw.Timeout(constants.GenerationRequestTimeout))
		generate.Use(handler.generationGuard...)

		generate.Post("/", handler.createMagazine)
	})

	return router
}

// # Response Payloads

// magazineResponse is the full record with its structure decoded.
type magazineResponse struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Introduction     string           `json:"introduction"`
	Conclusion       string           `json:"conclusion"`
	Images           []string         `json:"images"`
	Structure        Structure        `json:"structure"`
	Brief            Brief            `json:"brief"`
	ModerationStatus ModerationStatus `json:"moderation_status"`
	Degraded         bool             `json:"degraded"`
	CreatedAt        time.Time        `json:"created_at"`
}

// magazineSummary is the list view; it omits the page structure.
type magazineSummary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Introduction string    `json:"introduction"`
	Cover        string    `json:"cover,omitempty"`
	Pages        int       `json:"pages"`
	Degraded     bool      `json:"degraded"`
	CreatedAt    time.Time `json:"created_at"`
}

func toResponse(record *Record) (*magazineResponse, error) {
	structure, err := record.DecodeStructure()
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &magazineResponse{
		ID:               record.ID,
		Title:            record.Title,
		Introduction:     record.Introduction,
		Conclusion:       record.Conclusion,
		Images:           record.Images,
		Structure:        structure,
		Brief:            record.Brief,
		ModerationStatus: record.ModerationStatus,
		Degraded:         record.Degraded,
		CreatedAt:        record.CreatedAt,
	}, nil
}

func toSummary(record *Record) magazineSummary {
	summary := magazineSummary{
		ID:           record.ID,
		Title:        record.Title,
		Introduction: record.Introduction,
		Pages:        record.Brief.Pages,
		Degraded:     record.Degraded,
		CreatedAt:    record.CreatedAt,
	}
	if len(record.Images) > 0 {
		summary.Cover = record.Images[0]
	}
	return summary
}

// # Endpoints

/*
POST /api/v1/magazines.

Description: Generates a magazine from a brief and stores it. The call is
synchronous; a generator failure still yields a complete magazine with
retry messages and degraded set to true.

Request (Body):
  - Brief: JSON object (theme required; pages 5..40, default 8)

Response:
  - 201: magazineResponse
  - 400: ErrValidation: Invalid brief
  - 401: ErrUnauthorized: Missing or invalid token
  - 422: ErrContentRejected: Moderation blocked the result
  - 429: ErrRateLimited: Too many generations
*/
func (handler *Handler) createMagazine(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var brief Brief
	if err := requestutil.DecodeJSON(request, &brief); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.Generate(request.Context(), ownerID, brief)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	response, err := toResponse(record)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, response)
}

/*
GET /api/v1/magazines.

Request:
  - page: int
  - limit: int

Response:
  - 200: []magazineSummary: Paginated list of the caller's magazines
*/
func (handler *Handler) listMagazines(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	records, total, err := handler.service.List(request.Context(), ownerID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	summaries := make([]magazineSummary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, toSummary(record))
	}

	respond.Paginated(writer, summaries, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/magazines/{id}.

Response:
  - 200: magazineResponse
  - 400: ErrValidation: id is not a UUID
  - 403: ErrForbidden: Another owner's magazine
  - 404: NOT_FOUND
*/
func (handler *Handler) getMagazine(writer http.ResponseWriter, request *http.Request) {
	record, ok := handler.loadOwned(writer, request)
	if !ok {
		return
	}

	response, err := toResponse(record)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, response)
}

/*
GET /api/v1/magazines/{id}/export.

Response:
  - 200: text/html document with every page rendered
  - 403: ErrForbidden
  - 404: NOT_FOUND
*/
func (handler *Handler) exportMagazine(writer http.ResponseWriter, request *http.Request) {
	record, ok := handler.loadOwned(writer, request)
	if !ok {
		return
	}

	structure, err := record.DecodeStructure()
	if err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	document, err := handler.render(structure)
	if err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	respond.HTML(writer, document)
}

// loadOwned resolves {id} for the caller and writes the error response itself.
func (handler *Handler) loadOwned(writer http.ResponseWriter, request *http.Request) (*Record, bool) {
	ownerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return nil, false
	}

	id := requestutil.ID(request, "id")
	if err := new(validate.Validator).UUID("id", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return nil, false
	}

	record, err := handler.service.Get(request.Context(), ownerID, id)
	if err != nil {
		if ae := apperr.As(err); ae != nil && ae.HTTPStatus == http.StatusNotFound {
			respond.Error(writer, request, apperr.NotFound("Magazine"))
			return nil, false
		}
		respond.Error(writer, request, err)
		return nil, false
	}

	return record, true
}
