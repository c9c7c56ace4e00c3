package logger

// Standard field names for structured logging. Use these constants instead
// of raw strings so log queries stay consistent.
const (
	FieldRunID     = "run_id"
	FieldComponent = "component"

	// Files and positions
	FieldFile     = "file"
	FieldLine     = "line"
	FieldVariable = "variable"
	FieldValue    = "value"

	// Counts and timing
	FieldCount      = "count"
	FieldRecords    = "records"
	FieldErrors     = "errors"
	FieldFields     = "fields"
	FieldWorkers    = "workers"
	FieldDurationMS = "duration_ms"

	FieldError  = "error"
	FieldFormat = "format"
)
