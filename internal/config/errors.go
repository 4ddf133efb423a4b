package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid after the merge.
var (
	// ErrInvalidServerConfigs indicates invalid inbound transport
	// settings (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidStorageConfigs indicates invalid database settings
	// (unsupported driver or empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidAppConfigs indicates missing application-level settings
	// the server cannot run without (for example, the token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidClientConfigs indicates invalid client settings
	// (for example, an empty server URL).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
