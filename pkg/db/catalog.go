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

	"github.com/jackc/pgx/v5"

	"github.com/heliotrace/solarmesh/pkg/models"
)

const metricDefinitionColumns = `
	name,
	display_name,
	unit,
	value_kind,
	device_kinds,
	min_value,
	max_value,
	aggregation,
	cumulative`

const upsertMetricDefinitionSQL = `
INSERT INTO metric_definitions (` + metricDefinitionColumns + `
) VALUES (
	$1,$2,$3,$4,$5,$6,$7,$8,$9
)
ON CONFLICT (name) DO UPDATE SET
	display_name = EXCLUDED.display_name,
	unit = EXCLUDED.unit,
	value_kind = EXCLUDED.value_kind,
	device_kinds = EXCLUDED.device_kinds,
	min_value = EXCLUDED.min_value,
	max_value = EXCLUDED.max_value,
	aggregation = EXCLUDED.aggregation,
	cumulative = EXCLUDED.cumulative`

// UpsertMetricDefinition inserts or rewrites one catalog entry keyed by name.
func (db *DB) UpsertMetricDefinition(ctx context.Context, def *models.MetricDefinition) error {
	if def == nil {
		return ErrMetricDefinitionNil
	}

	if err := def.Validate(); err != nil {
		return err
	}

	kinds := make([]string, 0, len(def.DeviceKinds))
	for _, k := range def.DeviceKinds {
		kinds = append(kinds, string(k))
	}

	_, err := db.pool.Exec(ctx, upsertMetricDefinitionSQL,
		def.Name,
		def.DisplayName,
		def.Unit,
		string(def.ValueKind),
		kinds,
		def.MinValue,
		def.MaxValue,
		string(def.Aggregation),
		def.Cumulative,
	)
	if err != nil {
		return fmt.Errorf("upsert metric definition %s: %w", def.Name, err)
	}

	return nil
}

// GetMetricDefinition fetches one catalog entry by name.
func (db *DB) GetMetricDefinition(ctx context.Context, name string) (*models.MetricDefinition, error) {
	row := db.pool.QueryRow(ctx, `SELECT`+metricDefinitionColumns+` FROM metric_definitions WHERE name = $1`, name)

	def, err := scanMetricDefinition(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMetricDefinitionNotFound
		}

		return nil, fmt.Errorf("%w metric definition %s: %w", ErrFailedToQuery, name, err)
	}

	return def, nil
}

// ListMetricDefinitions returns the full catalog ordered by name.
func (db *DB) ListMetricDefinitions(ctx context.Context) ([]*models.MetricDefinition, error) {
	rows, err := db.pool.Query(ctx, `SELECT`+metricDefinitionColumns+` FROM metric_definitions ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("%w metric definitions: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	var defs []*models.MetricDefinition

	for rows.Next() {
		def, err := scanMetricDefinition(rows)
		if err != nil {
			return nil, fmt.Errorf("%w metric definition row: %w", ErrFailedToScan, err)
		}

		defs = append(defs, def)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w metric definitions: %w", ErrFailedToQuery, err)
	}

	return defs, nil
}

func scanMetricDefinition(row pgx.Row) (*models.MetricDefinition, error) {
	var (
		def   models.MetricDefinition
		kinds []string
	)

	err := row.Scan(
		&def.Name,
		&def.DisplayName,
		&def.Unit,
		&def.ValueKind,
		&kinds,
		&def.MinValue,
		&def.MaxValue,
		&def.Aggregation,
		&def.Cumulative,
	)
	if err != nil {
		return nil, err
	}

	if len(kinds) > 0 {
		def.DeviceKinds = make([]models.DeviceKind, 0, len(kinds))
		for _, k := range kinds {
			def.DeviceKinds = append(def.DeviceKinds, models.DeviceKind(k))
		}
	}

	return &def, nil
}
