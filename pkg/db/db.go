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

// Package db persists the telemetry plane in TimescaleDB: the device
// registry, the metric catalog, raw and rolled-up telemetry, the event
// journal, ingestion batch accounting, and the command queue.
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heliotrace/solarmesh/pkg/logger"
	"github.com/heliotrace/solarmesh/pkg/models"
)

// nowUTC allows tests to override the timestamp source.
//
//nolint:gochecknoglobals // test hooks need a package-level clock override.
var nowUTC = func() time.Time {
	return time.Now().UTC()
}

// DB implements Service on top of a pgx connection pool.
type DB struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

var _ Service = (*DB)(nil)

// New connects to TimescaleDB, applies any pending migrations, and returns
// the store backing every service in the telemetry plane.
func New(ctx context.Context, cfg *models.CNPGDatabase, log logger.Logger) (*DB, error) {
	pool, err := NewPool(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	database := &DB{pool: pool, logger: log}

	if err := database.Migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	return database, nil
}

// Close releases the underlying connection pool.
func (db *DB) Close() {
	db.pool.Close()
}

// send executes every queued command in the batch and surfaces the first
// failure. The deferred Close captures errors the per-command reads missed.
func (db *DB) send(ctx context.Context, batch *pgx.Batch, name string) (err error) {
	br := db.pool.SendBatch(ctx, batch)
	defer func() {
		if closeErr := br.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("timescale %s batch close: %w", name, closeErr)
		}
	}()

	for i := 0; i < batch.Len(); i++ {
		if _, err = br.Exec(); err != nil {
			return fmt.Errorf("timescale %s insert (command %d): %w", name, i, err)
		}
	}

	return nil
}

// PostgreSQL SQLSTATE codes for transient errors worth retrying.
const (
	sqlstateDeadlockDetected    = "40P01"
	sqlstateSerializationFailed = "40001"
)

const (
	retryInitialBackoff = 150 * time.Millisecond
	retryMaxBackoff     = 2 * time.Second
	retryMaxElapsed     = 10 * time.Second
)

// classifyPGError reports the SQLSTATE of err and whether a retry can help.
func classifyPGError(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlstateDeadlockDetected, sqlstateSerializationFailed:
			return pgErr.Code, true
		}

		return pgErr.Code, false
	}

	return "", false
}

// sendWithRetry retries transient batch failures (deadlocks, serialization
// conflicts) with exponential backoff before giving up.
func (db *DB) sendWithRetry(ctx context.Context, batch *pgx.Batch, name string) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = retryInitialBackoff
	bo.MaxInterval = retryMaxBackoff

	operation := func() (struct{}, error) {
		sendErr := db.send(ctx, batch, name)
		if sendErr == nil {
			return struct{}{}, nil
		}

		code, transient := classifyPGError(sendErr)
		if !transient {
			return struct{}{}, backoff.Permanent(sendErr)
		}

		db.logger.Warn().
			Err(sendErr).
			Str("sqlstate", code).
			Str("batch_name", name).
			Msg("transient database error, retrying")

		return struct{}{}, sendErr
	}

	if _, err := backoff.Retry(ctx, operation, backoff.WithBackOff(bo), backoff.WithMaxElapsedTime(retryMaxElapsed)); err != nil {
		return err
	}

	return nil
}

func sanitizeTimestamp(ts time.Time) time.Time {
	if ts.IsZero() {
		return nowUTC()
	}

	return ts.UTC()
}

func toNullableTime(ts *time.Time) interface{} {
	if ts == nil || ts.IsZero() {
		return nil
	}

	return ts.UTC()
}

// normalizeJSON turns a map into a JSONB argument, mapping empty to SQL NULL.
func normalizeJSON(m map[string]interface{}) (interface{}, error) {
	if len(m) == 0 {
		return nil, nil
	}

	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}

	return json.RawMessage(raw), nil
}

func normalizeStringMap(m map[string]string) (interface{}, error) {
	if len(m) == 0 {
		return nil, nil
	}

	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}

	return json.RawMessage(raw), nil
}

func decodeJSONMap(raw []byte) (map[string]interface{}, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}

	return m, nil
}

func decodeStringMap(raw []byte) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}

	return m, nil
}
