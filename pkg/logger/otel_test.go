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

package logger

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	log "go.opentelemetry.io/otel/log"
)

func TestOTelWriterDisabled(t *testing.T) {
	_, err := NewOTELWriter(context.Background(), OTelConfig{Enabled: false})
	if !errors.Is(err, ErrOTelLoggingDisabled) {
		t.Errorf("Expected ErrOTelLoggingDisabled, got %v", err)
	}
}

func TestOTelWriterNoEndpoint(t *testing.T) {
	_, err := NewOTELWriter(context.Background(), OTelConfig{Enabled: true})
	if !errors.Is(err, ErrOTelEndpointRequired) {
		t.Errorf("Expected ErrOTelEndpointRequired, got %v", err)
	}
}

func TestMapZerologLevelToOTEL(t *testing.T) {
	tests := []struct {
		level    string
		expected log.Severity
	}{
		{"trace", log.SeverityTrace},
		{"debug", log.SeverityDebug},
		{"info", log.SeverityInfo},
		{"warn", log.SeverityWarn},
		{"warning", log.SeverityWarn},
		{"error", log.SeverityError},
		{"fatal", log.SeverityFatal},
		{"panic", log.SeverityFatal},
		{"unknown", log.SeverityInfo},
	}

	for _, tc := range tests {
		if got := mapZerologLevelToOTEL(tc.level); got != tc.expected {
			t.Errorf("mapZerologLevelToOTEL(%q) = %v, want %v", tc.level, got, tc.expected)
		}
	}
}

func TestTruncateString(t *testing.T) {
	short, truncated := truncateString("ok", 10)
	if short != "ok" || truncated {
		t.Errorf("Short value should pass through untouched, got %q (%v)", short, truncated)
	}

	long, truncated := truncateString(strings.Repeat("x", 100), 10)
	if !truncated {
		t.Error("Expected long value to be truncated")
	}

	if len(long) != 10 {
		t.Errorf("Expected truncated value of length 10, got %d", len(long))
	}

	if !strings.HasSuffix(long, "...") {
		t.Errorf("Truncated value should carry ellipsis suffix, got %q", long)
	}
}

func TestFormatAttributeValue(t *testing.T) {
	if v, _ := formatAttributeValue(nil); v != "null" {
		t.Errorf("nil should format as null, got %q", v)
	}

	if v, _ := formatAttributeValue(true); v != "true" {
		t.Errorf("bool should format as true, got %q", v)
	}

	if v, _ := formatAttributeValue(map[string]interface{}{"a": float64(1)}); v != `{"a":1}` {
		t.Errorf("map should format as JSON, got %q", v)
	}

	_, truncated := formatAttributeValue(strings.Repeat("y", maxAttributeValueLength+1))
	if !truncated {
		t.Error("Oversized string should report truncation")
	}
}

func TestMultiWriter(t *testing.T) {
	var a, b bytes.Buffer

	mw := NewMultiWriter(&a, &b)

	n, err := mw.Write([]byte("hello"))
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if n != 5 {
		t.Errorf("Expected 5 bytes written, got %d", n)
	}

	if a.String() != "hello" || b.String() != "hello" {
		t.Errorf("Both writers should receive the payload, got %q and %q", a.String(), b.String())
	}
}
