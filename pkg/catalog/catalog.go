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

// Package catalog serves metric definitions to the ingest pipeline and the
// query surface. Definitions live in the metric_definitions table; the
// catalog keeps a read-through cache so per-sample validation never touches
// the database.
package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/heliotrace/solarmesh/pkg/db"
	"github.com/heliotrace/solarmesh/pkg/logger"
	"github.com/heliotrace/solarmesh/pkg/models"
)

// Catalog is the concrete Service backed by the relational store.
type Catalog struct {
	db     db.Service
	logger logger.Logger

	mu     sync.RWMutex
	byName map[string]*models.MetricDefinition
	loaded bool
}

// NewCatalog creates a catalog over the given store. The cache starts cold
// and fills on the first read.
func NewCatalog(database db.Service, log logger.Logger) *Catalog {
	return &Catalog{
		db:     database,
		logger: log,
		byName: make(map[string]*models.MetricDefinition),
	}
}

// Bootstrap inserts every baseline definition that is not already present.
// Rows that exist keep their stored values, so edits made through Upsert or
// directly in the database are never clobbered.
func (c *Catalog) Bootstrap(ctx context.Context) error {
	existing, err := c.db.ListMetricDefinitions(ctx)
	if err != nil {
		return fmt.Errorf("catalog bootstrap: list definitions: %w", err)
	}

	known := make(map[string]struct{}, len(existing))
	for _, def := range existing {
		known[def.Name] = struct{}{}
	}

	seeded := 0

	for _, def := range baselineDefinitions() {
		if _, ok := known[def.Name]; ok {
			continue
		}

		if err := c.db.UpsertMetricDefinition(ctx, def); err != nil {
			return fmt.Errorf("catalog bootstrap: seed %s: %w", def.Name, err)
		}

		seeded++
	}

	c.invalidate()

	c.logger.Info().
		Int("seeded", seeded).
		Int("total", len(existing)+seeded).
		Msg("Metric catalog bootstrapped")

	return nil
}

// GetByName returns the definition for a metric slug. A cache miss falls
// through to the database once; misses there return db.ErrMetricDefinitionNotFound.
func (c *Catalog) GetByName(ctx context.Context, name string) (*models.MetricDefinition, error) {
	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	def, ok := c.byName[name]
	c.mu.RUnlock()

	if ok {
		out := *def
		return &out, nil
	}

	def, err := c.db.GetMetricDefinition(ctx, name)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.byName[def.Name] = def
	c.mu.Unlock()

	out := *def

	return &out, nil
}

// ListAll returns every definition sorted by name.
func (c *Catalog) ListAll(ctx context.Context) ([]*models.MetricDefinition, error) {
	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.snapshotLocked(func(*models.MetricDefinition) bool { return true }), nil
}

// ListForDeviceKind returns the definitions that apply to the given device
// kind, sorted by name. Definitions with no kind restriction always match.
func (c *Catalog) ListForDeviceKind(ctx context.Context, kind models.DeviceKind) ([]*models.MetricDefinition, error) {
	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.snapshotLocked(func(def *models.MetricDefinition) bool { return def.AppliesTo(kind) }), nil
}

// Upsert validates and persists a definition, then writes the fresh value
// into the cache so readers never observe the pre-upsert row.
func (c *Catalog) Upsert(ctx context.Context, def *models.MetricDefinition) error {
	if def == nil {
		return db.ErrMetricDefinitionNil
	}

	if err := def.Validate(); err != nil {
		return err
	}

	if err := c.db.UpsertMetricDefinition(ctx, def); err != nil {
		return err
	}

	stored := *def

	c.mu.Lock()
	if c.loaded {
		c.byName[stored.Name] = &stored
	}
	c.mu.Unlock()

	c.logger.Debug().Str("metric", def.Name).Msg("Metric definition upserted")

	return nil
}

func (c *Catalog) ensureLoaded(ctx context.Context) error {
	c.mu.RLock()
	loaded := c.loaded
	c.mu.RUnlock()

	if loaded {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return nil
	}

	defs, err := c.db.ListMetricDefinitions(ctx)
	if err != nil {
		return fmt.Errorf("catalog load: %w", err)
	}

	c.byName = make(map[string]*models.MetricDefinition, len(defs))
	for _, def := range defs {
		c.byName[def.Name] = def
	}

	c.loaded = true

	return nil
}

func (c *Catalog) invalidate() {
	c.mu.Lock()
	c.byName = make(map[string]*models.MetricDefinition)
	c.loaded = false
	c.mu.Unlock()
}

// snapshotLocked copies matching definitions out of the cache. Callers must
// hold at least a read lock.
func (c *Catalog) snapshotLocked(match func(*models.MetricDefinition) bool) []*models.MetricDefinition {
	out := make([]*models.MetricDefinition, 0, len(c.byName))

	for _, def := range c.byName {
		if !match(def) {
			continue
		}

		cp := *def
		out = append(out, &cp)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

func floatPtr(v float64) *float64 { return &v }

// baselineDefinitions is the metric set every deployment starts with. It
// mirrors the catalog seed migration; Bootstrap fills whichever rows that
// seed did not reach.
func baselineDefinitions() []*models.MetricDefinition {
	inverterKinds := []models.DeviceKind{models.DeviceKindInverter, models.DeviceKindGateway}
	meterKinds := []models.DeviceKind{models.DeviceKindMeter, models.DeviceKindGateway}
	acKinds := []models.DeviceKind{models.DeviceKindInverter, models.DeviceKindMeter, models.DeviceKindGateway}
	batteryKinds := []models.DeviceKind{models.DeviceKindBattery, models.DeviceKindGateway}
	weatherKinds := []models.DeviceKind{models.DeviceKindWeatherStation, models.DeviceKindSensor}

	return []*models.MetricDefinition{
		{Name: "pv_power_w", DisplayName: "PV Power", Unit: "W", ValueKind: models.ValueKindFloat,
			DeviceKinds: inverterKinds, MinValue: floatPtr(0), MaxValue: floatPtr(2_000_000), Aggregation: models.AggregationAvg},
		{Name: "ac_power_w", DisplayName: "AC Power", Unit: "W", ValueKind: models.ValueKindFloat,
			DeviceKinds: inverterKinds, MinValue: floatPtr(-2_000_000), MaxValue: floatPtr(2_000_000), Aggregation: models.AggregationAvg},
		{Name: "dc_power_w", DisplayName: "DC Power", Unit: "W", ValueKind: models.ValueKindFloat,
			DeviceKinds: inverterKinds, MinValue: floatPtr(-2_000_000), MaxValue: floatPtr(2_000_000), Aggregation: models.AggregationAvg},
		{Name: "grid_power_w", DisplayName: "Grid Power", Unit: "W", ValueKind: models.ValueKindFloat,
			DeviceKinds: meterKinds, MinValue: floatPtr(-2_000_000), MaxValue: floatPtr(2_000_000), Aggregation: models.AggregationAvg},
		{Name: "load_power_w", DisplayName: "Load Power", Unit: "W", ValueKind: models.ValueKindFloat,
			DeviceKinds: meterKinds, MinValue: floatPtr(0), MaxValue: floatPtr(2_000_000), Aggregation: models.AggregationAvg},
		{Name: "voltage_v", DisplayName: "Voltage", Unit: "V", ValueKind: models.ValueKindFloat,
			MinValue: floatPtr(0), MaxValue: floatPtr(1000), Aggregation: models.AggregationAvg},
		{Name: "current_a", DisplayName: "Current", Unit: "A", ValueKind: models.ValueKindFloat,
			MinValue: floatPtr(-5000), MaxValue: floatPtr(5000), Aggregation: models.AggregationAvg},
		{Name: "frequency_hz", DisplayName: "Grid Frequency", Unit: "Hz", ValueKind: models.ValueKindFloat,
			DeviceKinds: acKinds, MinValue: floatPtr(40), MaxValue: floatPtr(70), Aggregation: models.AggregationAvg},
		{Name: "power_factor", DisplayName: "Power Factor", ValueKind: models.ValueKindFloat,
			DeviceKinds: acKinds, MinValue: floatPtr(-1), MaxValue: floatPtr(1), Aggregation: models.AggregationAvg},
		{Name: "today_energy_kwh", DisplayName: "Energy Today", Unit: "kWh", ValueKind: models.ValueKindFloat,
			DeviceKinds: acKinds, MinValue: floatPtr(0), MaxValue: floatPtr(100_000), Aggregation: models.AggregationLast, Cumulative: true},
		{Name: "total_energy_kwh", DisplayName: "Lifetime Energy", Unit: "kWh", ValueKind: models.ValueKindFloat,
			DeviceKinds: acKinds, MinValue: floatPtr(0), Aggregation: models.AggregationLast, Cumulative: true},
		{Name: "battery_soc", DisplayName: "Battery Charge", Unit: "%", ValueKind: models.ValueKindFloat,
			DeviceKinds: batteryKinds, MinValue: floatPtr(0), MaxValue: floatPtr(100), Aggregation: models.AggregationAvg},
		{Name: "battery_power_w", DisplayName: "Battery Power", Unit: "W", ValueKind: models.ValueKindFloat,
			DeviceKinds: batteryKinds, MinValue: floatPtr(-2_000_000), MaxValue: floatPtr(2_000_000), Aggregation: models.AggregationAvg},
		{Name: "battery_voltage_v", DisplayName: "Battery Voltage", Unit: "V", ValueKind: models.ValueKindFloat,
			DeviceKinds: batteryKinds, MinValue: floatPtr(0), MaxValue: floatPtr(1000), Aggregation: models.AggregationAvg},
		{Name: "battery_current_a", DisplayName: "Battery Current", Unit: "A", ValueKind: models.ValueKindFloat,
			DeviceKinds: batteryKinds, MinValue: floatPtr(-5000), MaxValue: floatPtr(5000), Aggregation: models.AggregationAvg},
		{Name: "battery_temp_c", DisplayName: "Battery Temperature", Unit: "C", ValueKind: models.ValueKindFloat,
			DeviceKinds: batteryKinds, MinValue: floatPtr(-40), MaxValue: floatPtr(100), Aggregation: models.AggregationAvg},
		{Name: "temperature_c", DisplayName: "Temperature", Unit: "C", ValueKind: models.ValueKindFloat,
			MinValue: floatPtr(-50), MaxValue: floatPtr(150), Aggregation: models.AggregationAvg},
		{Name: "irradiance_w_m2", DisplayName: "Irradiance", Unit: "W/m2", ValueKind: models.ValueKindFloat,
			DeviceKinds: weatherKinds, MinValue: floatPtr(0), MaxValue: floatPtr(2000), Aggregation: models.AggregationAvg},
	}
}
