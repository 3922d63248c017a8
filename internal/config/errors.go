package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidVaultConfigs indicates a missing or ambiguous vault path.
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidLoggingConfigs indicates an unknown log level.
	ErrInvalidLoggingConfigs = errors.New("invalid logging configuration")
	// ErrInvalidUIConfigs indicates negative UI durations.
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
)
