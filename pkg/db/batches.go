/*
 * Copyright 2025 Heliotrace Systems, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heliotrace/solarmesh/pkg/models"
)

const ingestionBatchColumns = `
	batch_id,
	source_type,
	source_id,
	started_at,
	completed_at,
	device_count,
	record_count,
	records_inserted,
	records_failed,
	status,
	processing_time_ms,
	error_detail`

const insertIngestionBatchSQL = `
INSERT INTO ingestion_batches (
	batch_id,
	source_type,
	source_id,
	started_at,
	status
) VALUES (
	$1,$2,$3,$4,$5
)`

const finalizeIngestionBatchSQL = `
UPDATE ingestion_batches SET
	completed_at = $2,
	device_count = $3,
	record_count = $4,
	records_inserted = $5,
	records_failed = $6,
	status = $7,
	processing_time_ms = $8,
	error_detail = $9
WHERE batch_id = $1`

// CreateIngestionBatch opens batch accounting for one ingest call. A missing
// batch id is filled in; the row starts in status processing.
func (db *DB) CreateIngestionBatch(ctx context.Context, batch *models.IngestionBatch) error {
	if batch == nil {
		return ErrIngestionBatchNil
	}

	if batch.BatchID == "" {
		batch.BatchID = uuid.New().String()
	}

	if batch.Status == "" {
		batch.Status = models.BatchStatusProcessing
	}

	batch.StartedAt = sanitizeTimestamp(batch.StartedAt)

	_, err := db.pool.Exec(ctx, insertIngestionBatchSQL,
		batch.BatchID,
		batch.SourceType,
		batch.SourceID,
		batch.StartedAt,
		string(batch.Status),
	)
	if err != nil {
		return fmt.Errorf("create ingestion batch %s: %w", batch.BatchID, err)
	}

	return nil
}

// FinalizeIngestionBatch records the outcome of a batch. Every ingest path,
// including failures, ends here exactly once.
func (db *DB) FinalizeIngestionBatch(ctx context.Context, batch *models.IngestionBatch) error {
	if batch == nil {
		return ErrIngestionBatchNil
	}

	tag, err := db.pool.Exec(ctx, finalizeIngestionBatchSQL,
		batch.BatchID,
		toNullableTime(batch.CompletedAt),
		batch.DeviceCount,
		batch.RecordCount,
		batch.RecordsInserted,
		batch.RecordsFailed,
		string(batch.Status),
		batch.ProcessingTimeMs,
		batch.ErrorDetail,
	)
	if err != nil {
		return fmt.Errorf("finalize ingestion batch %s: %w", batch.BatchID, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBatchNotFound
	}

	return nil
}

// GetIngestionBatch fetches one batch accounting row.
func (db *DB) GetIngestionBatch(ctx context.Context, batchID string) (*models.IngestionBatch, error) {
	row := db.pool.QueryRow(ctx, `SELECT`+ingestionBatchColumns+` FROM ingestion_batches WHERE batch_id = $1`, batchID)

	batch, err := scanIngestionBatch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBatchNotFound
		}

		return nil, fmt.Errorf("%w ingestion batch %s: %w", ErrFailedToQuery, batchID, err)
	}

	return batch, nil
}

// ListRecentIngestionBatches returns the newest batches first.
func (db *DB) ListRecentIngestionBatches(ctx context.Context, limit int) ([]*models.IngestionBatch, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := db.pool.Query(ctx, `SELECT`+ingestionBatchColumns+`
FROM ingestion_batches
ORDER BY started_at DESC
LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("%w recent ingestion batches: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	var batches []*models.IngestionBatch

	for rows.Next() {
		batch, err := scanIngestionBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("%w ingestion batch row: %w", ErrFailedToScan, err)
		}

		batches = append(batches, batch)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w recent ingestion batches: %w", ErrFailedToQuery, err)
	}

	return batches, nil
}

// DeleteIngestionBatchesOlderThan prunes batch accounting, returning how many
// rows went away.
func (db *DB) DeleteIngestionBatchesOlderThan(ctx context.Context, before time.Time) (int64, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM ingestion_batches WHERE started_at < $1`, before.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete ingestion batches older than %s: %w", before.UTC(), err)
	}

	return tag.RowsAffected(), nil
}

func scanIngestionBatch(row pgx.Row) (*models.IngestionBatch, error) {
	var batch models.IngestionBatch

	err := row.Scan(
		&batch.BatchID,
		&batch.SourceType,
		&batch.SourceID,
		&batch.StartedAt,
		&batch.CompletedAt,
		&batch.DeviceCount,
		&batch.RecordCount,
		&batch.RecordsInserted,
		&batch.RecordsFailed,
		&batch.Status,
		&batch.ProcessingTimeMs,
		&batch.ErrorDetail,
	)
	if err != nil {
		return nil, err
	}

	return &batch, nil
}
