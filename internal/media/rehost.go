// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Rehoster copies remote images into a [BlobStore].
type Rehoster struct {
	fetcher     ImageFetcher
	store       BlobStore
	publicURL   string
	concurrency int
	logger      *slog.Logger
}

// NewRehoster wires the fetcher and store; concurrency bounds parallel downloads.
func NewRehoster(fetcher ImageFetcher, store BlobStore, publicURL string, concurrency int, logger *slog.Logger) *Rehoster {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Rehoster{
		fetcher:     fetcher,
		store:       store,
		publicURL:   strings.TrimRight(publicURL, "/"),
		concurrency: concurrency,
		logger:      logger,
	}
}

/*
Rehost downloads and stores every distinct URL.

Description: Each URL is handled at most once, with at most concurrency
downloads in flight. URLs that already live under the public media base are
skipped. A failure is logged as [ImageUploadError] and leaves that URL out
of the result so the caller keeps the original.

Parameters:
  - context: context.Context
  - urls: []string

Returns:
  - map[string]string: Original URL to re-hosted URL, successes only
*/
func (rehoster *Rehoster) Rehost(context context.Context, urls []string) map[string]string {
	var (
		mu       sync.Mutex
		replaced = make(map[string]string)
		seen     = make(map[string]struct{})
	)

	group, groupCtx := errgroup.WithContext(context)
	group.SetLimit(rehoster.concurrency)

	for _, url := range urls {
		if url == "" || rehoster.isHosted(url) {
			continue
		}
		if _, dup := seen[url]; dup {
			continue
		}
		seen[url] = struct{}{}

		group.Go(func() error {
			hosted, err := rehoster.rehostOne(groupCtx, url)
			if err != nil {
				var uploadErr *ImageUploadError
				if errors.As(err, &uploadErr) {
					rehoster.logger.WarnContext(groupCtx, "image_rehost_failed",
						slog.String("url", uploadErr.URL),
						slog.Any("error", uploadErr.Cause),
					)
				}
				// Never cancel the siblings
				return nil
			}

			mu.Lock()
			replaced[url] = hosted
			mu.Unlock()
			return nil
		})
	}

	_ = group.Wait()
	return replaced
}

func (rehoster *Rehoster) rehostOne(context context.Context, url string) (string, error) {
	data, contentType, err := rehoster.fetcher.FetchBytes(context, url)
	if err != nil {
		return "", &ImageUploadError{URL: url, Cause: err}
	}

	hosted, err := rehoster.store.StoreBlob(context, data, contentType)
	if err != nil {
		return "", &ImageUploadError{URL: url, Cause: err}
	}

	return hosted, nil
}

func (rehoster *Rehoster) isHosted(url string) bool {
	return rehoster.publicURL != "" && strings.HasPrefix(url, rehoster.publicURL+"/media/")
}
