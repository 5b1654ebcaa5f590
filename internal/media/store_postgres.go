// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/kiosk/internal/platform/database/schema"
	"github.com/taibuivan/kiosk/internal/platform/dberr"
	"github.com/taibuivan/kiosk/pkg/uuid"
)

// # PostgreSQL Blob Store

// BlobRepository stores images in PostgreSQL, deduplicated by SHA-256.
type BlobRepository struct {
	pool      *pgxpool.Pool
	publicURL string
}

// NewBlobRepository builds a blob store; publicURL is the API origin that serves /media.
func NewBlobRepository(pool *pgxpool.Pool, publicURL string) *BlobRepository {
	return &BlobRepository{pool: pool, publicURL: strings.TrimRight(publicURL, "/")}
}

/*
StoreBlob inserts the bytes unless an identical blob already exists.

Parameters:
  - context: context.Context
  - data: []byte
  - contentType: string

Returns:
  - string: Public URL of the stored (or existing) blob
  - error: apperr STORAGE_ERROR
*/
func (repository *BlobRepository) StoreBlob(context context.Context, data []byte, contentType string) (string, error) {
	digest := sha256.Sum256(data)

	// Upsert on the digest; the no-op update makes RETURNING yield the existing id
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s
		RETURNING %s
	`,
		schema.CoreMediaFile.Table,
		schema.CoreMediaFile.ID,
		schema.CoreMediaFile.SHA256,
		schema.CoreMediaFile.SizeBytes,
		schema.CoreMediaFile.MimeType,
		schema.CoreMediaFile.Data,
		schema.CoreMediaFile.SHA256,
		schema.CoreMediaFile.SHA256,
		schema.CoreMediaFile.SHA256,
		schema.CoreMediaFile.ID,
	)

	var id string
	err := repository.pool.QueryRow(context, query,
		uuid.New(),
		hex.EncodeToString(digest[:]),
		len(data),
		contentType,
		data,
	).Scan(&id)
	if err != nil {
		return "", dberr.Wrap(err, "Image", "store blob")
	}

	return PublicURL(repository.publicURL, id), nil
}

/*
FindByID loads a blob for serving.

Returns:
  - *Blob
  - error: apperr.NotFound on absent rows
*/
func (repository *BlobRepository) FindByID(context context.Context, id string) (*Blob, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.CoreMediaFile.ID,
		schema.CoreMediaFile.SHA256,
		schema.CoreMediaFile.MimeType,
		schema.CoreMediaFile.Data,
		schema.CoreMediaFile.CreatedAt,
		schema.CoreMediaFile.Table,
		schema.CoreMediaFile.ID,
	)

	var blob Blob
	err := repository.pool.QueryRow(context, query, id).Scan(
		&blob.ID,
		&blob.SHA256,
		&blob.MimeType,
		&blob.Data,
		&blob.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Image", "find blob")
	}

	return &blob, nil
}

// PublicURL is the address under which a blob is served.
func PublicURL(base, id string) string {
	return strings.TrimRight(base, "/") + "/media/" + id
}
