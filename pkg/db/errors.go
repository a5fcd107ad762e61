package db

import "errors"

var (

	// Core database errors.

	ErrDatabaseError = errors.New("database error")
	ErrFailedToQuery = errors.New("failed to query")
	ErrFailedToScan  = errors.New("failed to scan")

	// Not-found sentinels.

	ErrDeviceNotFound           = errors.New("device not found")
	ErrMetricDefinitionNotFound = errors.New("metric definition not found")
	ErrCommandNotFound          = errors.New("command not found")
	ErrBatchNotFound            = errors.New("ingestion batch not found")
	ErrNoPendingCommands        = errors.New("no pending commands")

	// Validation errors.

	ErrDeviceNil            = errors.New("device is nil")
	ErrDeviceIDRequired     = errors.New("device id is required")
	ErrMetricDefinitionNil  = errors.New("metric definition is nil")
	ErrTelemetryPointNil    = errors.New("telemetry point is nil")
	ErrDeviceEventNil       = errors.New("device event is nil")
	ErrEventTypeRequired    = errors.New("event type is required")
	ErrCommandNil           = errors.New("command is nil")
	ErrIngestionBatchNil    = errors.New("ingestion batch is nil")
	ErrEventFilterNil       = errors.New("event filter is nil")
	ErrEventScopeRequired   = errors.New("device id or site id is required")
	ErrMigrationsUnordered  = errors.New("migration filenames must sort uniquely")
	ErrUnsupportedAggBucket = errors.New("unsupported aggregate bucket")
)
