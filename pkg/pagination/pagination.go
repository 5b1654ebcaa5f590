// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination parses page-based list queries and builds the "meta"
// block of list responses.
//
// # Overview
//
// A magazine library is browsed as a grid of covers, so the default page is
// small and oversized requests are clamped rather than rejected.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultLimit is one grid of magazine covers.
	DefaultLimit = 12
	// MaxLimit caps a single page; larger requests are clamped to it.
	MaxLimit = 50
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the SQL OFFSET value derived from [Page] and [Limit].
func (p Params) Offset() int {
	return (max(p.Page, 1) - 1) * p.Limit
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
}

// NewMeta derives the page count and next-page flag from the total.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
	}
}

// FromRequest parses the "page" and "limit" query parameters.
//
// # Clamping
//
// Missing or unparsable values use the defaults. A page below one becomes
// [DefaultPage]; a limit below one becomes [DefaultLimit] and one above
// [MaxLimit] becomes [MaxLimit].
func FromRequest(request *http.Request) Params {
	query := request.URL.Query()

	page := intOr(query.Get("page"), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	limit := intOr(query.Get("limit"), DefaultLimit)
	switch {
	case limit < 1:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	return Params{Page: page, Limit: limit}
}

func intOr(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
