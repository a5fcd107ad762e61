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

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/heliotrace/solarmesh/pkg/db"
	"github.com/heliotrace/solarmesh/pkg/logger"
	"github.com/heliotrace/solarmesh/pkg/models"
)

func newTestCatalog(t *testing.T) (*Catalog, *db.MockService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockDB := db.NewMockService(ctrl)

	return NewCatalog(mockDB, logger.NewTestLogger()), mockDB
}

func TestBootstrapSeedsOnlyMissingDefinitions(t *testing.T) {
	cat, mockDB := newTestCatalog(t)
	ctx := context.Background()

	existing := []*models.MetricDefinition{
		{Name: "pv_power_w", DisplayName: "PV Power (edited)"},
		{Name: "custom_inverter_metric", DisplayName: "Custom"},
	}

	mockDB.EXPECT().ListMetricDefinitions(gomock.Any()).Return(existing, nil)

	var seeded []string

	mockDB.EXPECT().
		UpsertMetricDefinition(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, def *models.MetricDefinition) error {
			seeded = append(seeded, def.Name)
			return nil
		}).
		Times(len(baselineDefinitions()) - 1)

	require.NoError(t, cat.Bootstrap(ctx))

	assert.NotContains(t, seeded, "pv_power_w", "existing rows must not be overwritten")
	assert.Contains(t, seeded, "battery_soc")
	assert.Contains(t, seeded, "irradiance_w_m2")
}

func TestBootstrapWithFullCatalogSeedsNothing(t *testing.T) {
	cat, mockDB := newTestCatalog(t)

	mockDB.EXPECT().ListMetricDefinitions(gomock.Any()).Return(baselineDefinitions(), nil)

	require.NoError(t, cat.Bootstrap(context.Background()))
}

func TestGetByNameServesFromCache(t *testing.T) {
	cat, mockDB := newTestCatalog(t)
	ctx := context.Background()

	defs := []*models.MetricDefinition{
		{Name: "pv_power_w", DisplayName: "PV Power", Unit: "W"},
	}

	mockDB.EXPECT().ListMetricDefinitions(gomock.Any()).Return(defs, nil).Times(1)

	first, err := cat.GetByName(ctx, "pv_power_w")
	require.NoError(t, err)
	assert.Equal(t, "PV Power", first.DisplayName)

	// Mutating the returned value must not leak into the cache.
	first.DisplayName = "scribbled"

	second, err := cat.GetByName(ctx, "pv_power_w")
	require.NoError(t, err)
	assert.Equal(t, "PV Power", second.DisplayName)
}

func TestGetByNameReadsThroughOnCacheMiss(t *testing.T) {
	cat, mockDB := newTestCatalog(t)
	ctx := context.Background()

	mockDB.EXPECT().ListMetricDefinitions(gomock.Any()).Return(nil, nil)
	mockDB.EXPECT().
		GetMetricDefinition(gomock.Any(), "string_inverter_mode").
		Return(&models.MetricDefinition{Name: "string_inverter_mode", ValueKind: models.ValueKindString}, nil).
		Times(1)

	first, err := cat.GetByName(ctx, "string_inverter_mode")
	require.NoError(t, err)
	assert.Equal(t, models.ValueKindString, first.ValueKind)

	// The read-through result is cached, so the second lookup stays local.
	second, err := cat.GetByName(ctx, "string_inverter_mode")
	require.NoError(t, err)
	assert.Equal(t, first.Name, second.Name)
}

func TestGetByNameUnknownMetric(t *testing.T) {
	cat, mockDB := newTestCatalog(t)

	mockDB.EXPECT().ListMetricDefinitions(gomock.Any()).Return(nil, nil)
	mockDB.EXPECT().
		GetMetricDefinition(gomock.Any(), "no_such_metric").
		Return(nil, db.ErrMetricDefinitionNotFound)

	_, err := cat.GetByName(context.Background(), "no_such_metric")
	require.ErrorIs(t, err, db.ErrMetricDefinitionNotFound)
}

func TestListForDeviceKindFiltersAndSorts(t *testing.T) {
	cat, mockDB := newTestCatalog(t)

	defs := []*models.MetricDefinition{
		{Name: "pv_power_w", DeviceKinds: []models.DeviceKind{models.DeviceKindInverter}},
		{Name: "battery_soc", DeviceKinds: []models.DeviceKind{models.DeviceKindBattery}},
		{Name: "temperature_c"},
	}

	mockDB.EXPECT().ListMetricDefinitions(gomock.Any()).Return(defs, nil)

	got, err := cat.ListForDeviceKind(context.Background(), models.DeviceKindInverter)
	require.NoError(t, err)

	names := make([]string, 0, len(got))
	for _, def := range got {
		names = append(names, def.Name)
	}

	assert.Equal(t, []string{"pv_power_w", "temperature_c"}, names)
}

func TestUpsertWritesThroughToCache(t *testing.T) {
	cat, mockDB := newTestCatalog(t)
	ctx := context.Background()

	mockDB.EXPECT().ListMetricDefinitions(gomock.Any()).Return(nil, nil)

	_, err := cat.ListAll(ctx)
	require.NoError(t, err)

	def := &models.MetricDefinition{Name: "inverter_fan_rpm", DisplayName: "Fan Speed", Unit: "rpm"}

	mockDB.EXPECT().UpsertMetricDefinition(gomock.Any(), def).Return(nil)

	require.NoError(t, cat.Upsert(ctx, def))

	// No GetMetricDefinition expectation: the lookup must hit the cache.
	got, err := cat.GetByName(ctx, "inverter_fan_rpm")
	require.NoError(t, err)
	assert.Equal(t, "Fan Speed", got.DisplayName)
	assert.Equal(t, models.ValueKindFloat, got.ValueKind, "Validate defaults apply before persisting")
}

func TestUpsertRejectsInvalidDefinitions(t *testing.T) {
	cat, _ := newTestCatalog(t)
	ctx := context.Background()

	require.ErrorIs(t, cat.Upsert(ctx, nil), db.ErrMetricDefinitionNil)

	err := cat.Upsert(ctx, &models.MetricDefinition{DisplayName: "nameless"})
	require.Error(t, err)

	low, high := 10.0, 1.0
	err = cat.Upsert(ctx, &models.MetricDefinition{Name: "swapped", MinValue: &low, MaxValue: &high})
	require.Error(t, err)
}

func TestBaselineDefinitionsAreValid(t *testing.T) {
	seen := make(map[string]struct{})

	for _, def := range baselineDefinitions() {
		require.NoError(t, def.Validate(), def.Name)

		_, dup := seen[def.Name]
		require.False(t, dup, "duplicate baseline metric %s", def.Name)
		seen[def.Name] = struct{}{}
	}
}
