// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultMaxImageBytes bounds a single download.
	DefaultMaxImageBytes = 10 << 20

	defaultFetchTimeout = 20 * time.Second
)

var (
	// ErrNotImage is returned when the response is not an image.
	ErrNotImage = errors.New("media: response is not an image")

	// ErrTooLarge is returned when the body exceeds the size cap.
	ErrTooLarge = errors.New("media: image exceeds size limit")
)

// HTTPFetcher downloads images over HTTP.
type HTTPFetcher struct {
	client   *http.Client
	maxBytes int64
}

// NewHTTPFetcher builds a fetcher; a nil client gets a default with a timeout.
func NewHTTPFetcher(client *http.Client, maxBytes int64) *HTTPFetcher {
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxImageBytes
	}
	return &HTTPFetcher{client: client, maxBytes: maxBytes}
}

/*
FetchBytes downloads url following redirects.

Returns:
  - []byte: Image bytes
  - string: Media type without parameters (e.g. image/jpeg)
  - error: Transport failures, non-2xx status, [ErrNotImage] or [ErrTooLarge]
*/
func (fetcher *HTTPFetcher) FetchBytes(context context.Context, url string) ([]byte, string, error) {
	request, err := http.NewRequestWithContext(context, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("media: build request: %w", err)
	}
	request.Header.Set("Accept", "image/*")

	response, err := fetcher.client.Do(request)
	if err != nil {
		return nil, "", fmt.Errorf("media: fetch: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, "", fmt.Errorf("media: fetch: unexpected status %d", response.StatusCode)
	}

	mediaType, _, err := mime.ParseMediaType(response.Header.Get("Content-Type"))
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return nil, "", ErrNotImage
	}

	// Read one byte past the cap to detect oversize bodies
	data, err := io.ReadAll(io.LimitReader(response.Body, fetcher.maxBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("media: read body: %w", err)
	}
	if int64(len(data)) > fetcher.maxBytes {
		return nil, "", ErrTooLarge
	}

	return data, mediaType, nil
}
