// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package media re-hosts page images on storage owned by the API.

Placeholder image URLs point at a third-party service. When re-hosting is
enabled, every distinct URL is downloaded once, stored as a content-addressed
blob and served back from /media/{id}. A failed download never fails the
magazine: the original URL is kept and the failure is logged.
*/
package media

import (
	"context"
	"fmt"
	"time"
)

// # Contracts

// ImageFetcher downloads image bytes.
type ImageFetcher interface {
	FetchBytes(context context.Context, url string) ([]byte, string, error)
}

// BlobStore persists image bytes and returns their public URL.
type BlobStore interface {
	StoreBlob(context context.Context, data []byte, contentType string) (string, error)
}

// Blob is one stored image.
type Blob struct {
	ID        string
	SHA256    string
	MimeType  string
	Data      []byte
	CreatedAt time.Time
}

// # Errors

// ImageUploadError reports a single image that could not be re-hosted.
type ImageUploadError struct {
	URL   string
	Cause error
}

func (e *ImageUploadError) Error() string {
	return fmt.Sprintf("media: rehost %s: %v", e.URL, e.Cause)
}

func (e *ImageUploadError) Unwrap() error { return e.Cause }
