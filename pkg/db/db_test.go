package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func overrideNowUTC(t *testing.T, fixed time.Time) {
	t.Helper()

	original := nowUTC
	nowUTC = func() time.Time {
		return fixed
	}
	t.Cleanup(func() {
		nowUTC = original
	})
}

func TestSanitizeTimestamp(t *testing.T) {
	fixed := time.Date(2025, time.July, 4, 12, 0, 0, 0, time.UTC)
	overrideNowUTC(t, fixed)

	assert.Equal(t, fixed, sanitizeTimestamp(time.Time{}))

	loc := time.FixedZone("UTC+2", 2*60*60)
	local := time.Date(2025, time.July, 4, 14, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2025, time.July, 4, 12, 30, 0, 0, time.UTC), sanitizeTimestamp(local))
}

func TestToNullableTime(t *testing.T) {
	assert.Nil(t, toNullableTime(nil))

	zero := time.Time{}
	assert.Nil(t, toNullableTime(&zero))

	ts := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, ts, toNullableTime(&ts))
}

func TestNormalizeJSON(t *testing.T) {
	raw, err := normalizeJSON(nil)
	require.NoError(t, err)
	assert.Nil(t, raw)

	raw, err = normalizeJSON(map[string]interface{}{})
	require.NoError(t, err)
	assert.Nil(t, raw)

	raw, err = normalizeJSON(map[string]interface{}{"host": "10.0.0.5", "port": 502})
	require.NoError(t, err)

	msg, ok := raw.(json.RawMessage)
	require.True(t, ok)
	assert.JSONEq(t, `{"host":"10.0.0.5","port":502}`, string(msg))

	_, err = normalizeJSON(map[string]interface{}{"bad": func() {}})
	require.Error(t, err)
}

func TestNormalizeStringMap(t *testing.T) {
	raw, err := normalizeStringMap(nil)
	require.NoError(t, err)
	assert.Nil(t, raw)

	raw, err = normalizeStringMap(map[string]string{"phase": "A"})
	require.NoError(t, err)

	msg, ok := raw.(json.RawMessage)
	require.True(t, ok)
	assert.JSONEq(t, `{"phase":"A"}`, string(msg))
}

func TestDecodeJSONMap(t *testing.T) {
	m, err := decodeJSONMap([]byte(`{"host":"10.0.0.5"}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"host": "10.0.0.5"}, m)

	m, err = decodeJSONMap(nil)
	require.NoError(t, err)
	assert.Nil(t, m)

	_, err = decodeJSONMap([]byte(`invalid`))
	assert.Error(t, err)
}

func TestDecodeStringMap(t *testing.T) {
	m, err := decodeStringMap([]byte(`{"phase":"A"}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"phase": "A"}, m)

	m, err = decodeStringMap(nil)
	require.NoError(t, err)
	assert.Nil(t, m)

	_, err = decodeStringMap([]byte(`invalid`))
	assert.Error(t, err)
}

func TestClassifyPGError(t *testing.T) {
	code, transient := classifyPGError(nil)
	assert.Empty(t, code)
	assert.False(t, transient)

	deadlock := fmt.Errorf("exec: %w", &pgconn.PgError{Code: sqlstateDeadlockDetected})
	code, transient = classifyPGError(deadlock)
	assert.Equal(t, sqlstateDeadlockDetected, code)
	assert.True(t, transient)

	serialization := &pgconn.PgError{Code: sqlstateSerializationFailed}
	code, transient = classifyPGError(serialization)
	assert.Equal(t, sqlstateSerializationFailed, code)
	assert.True(t, transient)

	uniqueViolation := &pgconn.PgError{Code: "23505"}
	code, transient = classifyPGError(uniqueViolation)
	assert.Equal(t, "23505", code)
	assert.False(t, transient)

	code, transient = classifyPGError(errors.New("dial tcp: connection refused"))
	assert.Empty(t, code)
	assert.False(t, transient)
}
