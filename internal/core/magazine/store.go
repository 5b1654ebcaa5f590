// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package magazine

import "context"

// # Magazine Data Access

// Repository defines the persistence contract for magazine records.
type Repository interface {

	/*
		Create persists a new record.

		Parameters:
		  - context: context.Context
		  - record: *Record

		Returns:
		  - error: Storage failure
	*/
	Create(context context.Context, record *Record) error

	/*
		FindByID returns the record with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *Record: Hydrated record
		  - error: apperr.NotFound if missing
	*/
	FindByID(context context.Context, id string) (*Record, error)

	/*
		ListByOwner returns an owner's records, newest first.

		Parameters:
		  - context: context.Context
		  - ownerID: string
		  - limit: int
		  - offset: int

		Returns:
		  - []*Record: Records without the structure payload
		  - int: Total records owned
		  - error: Storage failure
	*/
	ListByOwner(context context.Context, ownerID string, limit, offset int) ([]*Record, int, error)
}
