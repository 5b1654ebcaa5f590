// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr turns pgx errors into [apperr.AppError] values.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/kiosk/internal/platform/apperr"
)

// Wrap maps a missing row to NOT_FOUND for resource and anything else to
// STORAGE_ERROR. The SQLSTATE of a server error is kept in the cause for the
// logs; the client only sees the generic message.
func Wrap(err error, resource, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return apperr.Storage(fmt.Errorf("postgres: %s: sqlstate %s: %w", action, pgErr.Code, err))
	}

	return apperr.Storage(fmt.Errorf("postgres: %s: %w", action, err))
}
