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

package catalog

//go:generate mockgen -destination=mock_catalog.go -package=catalog github.com/heliotrace/solarmesh/pkg/catalog Service

import (
	"context"

	"github.com/heliotrace/solarmesh/pkg/models"
)

// Service is the metric catalog: the authoritative set of metric
// definitions the ingest pipeline validates incoming samples against.
// Reads are served from an in-memory cache loaded on first use.
type Service interface {
	// Bootstrap reconciles the baseline metric set against the database,
	// inserting any definition that is missing. Existing rows are never
	// overwritten, so operator edits survive restarts.
	Bootstrap(ctx context.Context) error

	GetByName(ctx context.Context, name string) (*models.MetricDefinition, error)
	ListAll(ctx context.Context) ([]*models.MetricDefinition, error)
	ListForDeviceKind(ctx context.Context, kind models.DeviceKind) ([]*models.MetricDefinition, error)

	// Upsert persists a definition and updates the cache in the same call.
	Upsert(ctx context.Context, def *models.MetricDefinition) error
}
