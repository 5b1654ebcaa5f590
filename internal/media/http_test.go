// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/kiosk/internal/media"
	"github.com/taibuivan/kiosk/internal/platform/apperr"
)

const blobID = "0190a6f2-7b1c-7c3e-9a51-2f1e4d6b8c90"

type fakeBlobReader struct{}

func (fakeBlobReader) FindByID(_ context.Context, id string) (*media.Blob, error) {
	if id != blobID {
		return nil, apperr.NotFound("Image")
	}
	return &media.Blob{ID: id, MimeType: "image/png", Data: []byte("png")}, nil
}

/*
TestHandler_Get covers serving, missing blobs and malformed ids.
*/
func TestHandler_Get(t *testing.T) {
	router := media.NewHandler(fakeBlobReader{}).Routes()

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantType   string
	}{
		{"found", "/" + blobID, http.StatusOK, "image/png"},
		{"missing", "/0190a6f2-7b1c-7c3e-9a51-000000000000", http.StatusNotFound, "application/json; charset=utf-8"},
		{"not_uuid", "/abc", http.StatusBadRequest, "application/json; charset=utf-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantType, recorder.Header().Get("Content-Type"))
		})
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/"+blobID, nil))
	assert.Equal(t, "png", recorder.Body.String())
	assert.Contains(t, recorder.Header().Get("Cache-Control"), "immutable")
}
