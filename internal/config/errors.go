package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// out of range.
var (
	// ErrInvalidAdapterConfigs indicates a missing remote address or a
	// non-positive request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty database path or content dir.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidWorkerConfigs  = errors.New("invalid worker configuration")
	// ErrInvalidSyncConfigs indicates a non-positive per-folder cap or batch size.
	ErrInvalidSyncConfigs     = errors.New("invalid sync configuration")
	ErrInvalidServerConfigs   = errors.New("invalid server configuration")
	ErrInvalidDurationConfigs = errors.New("negative duration in configuration")

	// ErrInvalidNetAddress is returned by [NetAddress.Set].
	ErrInvalidNetAddress = errors.New("need address in a form `host:port`")
	ErrInvalidPort       = errors.New("port must be within 1..65535")
	ErrInvalidHost       = errors.New("host must be localhost or an IP address")
)
