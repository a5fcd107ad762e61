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

package models

import "errors"

var (
	errMetricNameRequired = errors.New("metric name is required")
	errMetricBoundsSwap   = errors.New("metric min bound exceeds max bound")
)

// MetricDefinition is one catalog entry. Name is a globally unique slug;
// bounds, when set, are inclusive and enforced at ingest.
type MetricDefinition struct {
	Name        string       `json:"name"`
	DisplayName string       `json:"display_name"`
	Unit        string       `json:"unit,omitempty"`
	ValueKind   ValueKind    `json:"value_kind"`
	DeviceKinds []DeviceKind `json:"device_kinds,omitempty"`
	MinValue    *float64     `json:"min_value,omitempty"`
	MaxValue    *float64     `json:"max_value,omitempty"`
	Aggregation Aggregation  `json:"aggregation"`
	Cumulative  bool         `json:"cumulative"`
}

// Validate checks catalog entry integrity and applies defaults.
func (m *MetricDefinition) Validate() error {
	if m.Name == "" {
		return errMetricNameRequired
	}

	if m.ValueKind == "" {
		m.ValueKind = ValueKindFloat
	}

	if m.Aggregation == "" {
		m.Aggregation = AggregationAvg
	}

	if m.MinValue != nil && m.MaxValue != nil && *m.MinValue > *m.MaxValue {
		return errMetricBoundsSwap
	}

	return nil
}

// AppliesTo reports whether the metric is defined for the given device kind.
// An empty kind set means the metric applies to every kind.
func (m *MetricDefinition) AppliesTo(kind DeviceKind) bool {
	if len(m.DeviceKinds) == 0 {
		return true
	}

	for _, k := range m.DeviceKinds {
		if k == kind {
			return true
		}
	}

	return false
}

// InBounds reports whether v falls inside the inclusive min/max range.
// Metrics without bounds accept every value.
func (m *MetricDefinition) InBounds(v float64) bool {
	if m.MinValue != nil && v < *m.MinValue {
		return false
	}

	if m.MaxValue != nil && v > *m.MaxValue {
		return false
	}

	return true
}
