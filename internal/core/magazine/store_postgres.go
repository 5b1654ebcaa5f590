// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package magazine

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/kiosk/internal/platform/database/schema"
	"github.com/taibuivan/kiosk/internal/platform/dberr"
)

// # PostgreSQL Repository

// recordRepository implements the [Repository] interface using pgx.
//
// The structure payload is stored as text exactly as serialised. The brief is
// stored as JSONB so it can be inspected with SQL.
type recordRepository struct {
	pool *pgxpool.Pool
}

// NewRecordRepository constructs a PostgreSQL backed magazine store.
func NewRecordRepository(pool *pgxpool.Pool) Repository {
	return &recordRepository{pool: pool}
}

/*
Create inserts a finished record.

Parameters:
  - context: context.Context
  - record: *Record

Returns:
  - error: apperr STORAGE_ERROR
*/
func (repository *recordRepository) Create(context context.Context, record *Record) error {

	// Argument order follows schema.CoreMagazine.Columns()
	columns := schema.CoreMagazine.Columns()
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		schema.CoreMagazine.Table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)

	_, err := repository.pool.Exec(context, query,
		record.ID,
		record.OwnerID,
		record.Title,
		record.Introduction,
		record.Conclusion,
		record.Images,
		record.Structure,
		record.Brief,
		string(record.ModerationStatus),
		record.Degraded,
		record.CreatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "Magazine", "create magazine")
	}

	return nil
}

/*
FindByID returns a full record including its structure.

Returns:
  - *Record
  - error: apperr.NotFound on absent rows
*/
func (repository *recordRepository) FindByID(context context.Context, id string) (*Record, error) {

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(schema.CoreMagazine.Columns(), ", "),
		schema.CoreMagazine.Table,
		schema.CoreMagazine.ID,
	)

	var record Record
	err := repository.pool.QueryRow(context, query, id).Scan(
		&record.ID,
		&record.OwnerID,
		&record.Title,
		&record.Introduction,
		&record.Conclusion,
		&record.Images,
		&record.Structure,
		&record.Brief,
		&record.ModerationStatus,
		&record.Degraded,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Magazine", "find magazine")
	}

	return &record, nil
}

/*
ListByOwner returns an owner's records, newest first.

Description: The structure column is skipped; list views only need the
summary fields. A window function yields the total in the same round-trip.
*/
func (repository *recordRepository) ListByOwner(context context.Context, ownerID string, limit, offset int) ([]*Record, int, error) {

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s,
			COUNT(*) OVER() AS total_count
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC
		LIMIT $2 OFFSET $3
	`,
		schema.CoreMagazine.ID,
		schema.CoreMagazine.OwnerID,
		schema.CoreMagazine.Title,
		schema.CoreMagazine.Introduction,
		schema.CoreMagazine.Conclusion,
		schema.CoreMagazine.Images,
		schema.CoreMagazine.Brief,
		schema.CoreMagazine.ModerationStatus,
		schema.CoreMagazine.Degraded,
		schema.CoreMagazine.CreatedAt,
		schema.CoreMagazine.Table,
		schema.CoreMagazine.OwnerID,
		schema.CoreMagazine.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, ownerID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Magazine", "list magazines")
	}
	defer rows.Close()

	records := []*Record{}
	totalCount := 0

	for rows.Next() {
		var record Record
		err := rows.Scan(
			&record.ID,
			&record.OwnerID,
			&record.Title,
			&record.Introduction,
			&record.Conclusion,
			&record.Images,
			&record.Brief,
			&record.ModerationStatus,
			&record.Degraded,
			&record.CreatedAt,
			&totalCount,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "Magazine", "scan magazine")
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "Magazine", "iterate magazines")
	}

	return records, totalCount, nil
}
