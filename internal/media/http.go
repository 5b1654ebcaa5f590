// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/kiosk/internal/platform/apperr"
	requestutil "github.com/taibuivan/kiosk/internal/platform/request"
	"github.com/taibuivan/kiosk/internal/platform/respond"
	"github.com/taibuivan/kiosk/internal/platform/validate"
)

// BlobReader loads stored blobs for serving.
type BlobReader interface {
	FindByID(context context.Context, id string) (*Blob, error)
}

// Handler serves re-hosted images.
type Handler struct {
	blobs BlobReader
}

// NewHandler constructs a media [Handler].
func NewHandler(blobs BlobReader) *Handler {
	return &Handler{blobs: blobs}
}

// Routes returns the router for /media.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{id}", handler.get)
	return router
}

/*
GET /media/{id}.

Response:
  - 200: image bytes
  - 400: ErrValidation: id is not a UUID
  - 404: NOT_FOUND
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := new(validate.Validator).UUID("id", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	blob, err := handler.blobs.FindByID(request.Context(), id)
	if err != nil {
		if ae := apperr.As(err); ae != nil && ae.HTTPStatus == http.StatusNotFound {
			respond.Error(writer, request, apperr.NotFound("Image"))
			return
		}
		respond.Error(writer, request, err)
		return
	}

	respond.Blob(writer, blob.MimeType, blob.Data)
}
