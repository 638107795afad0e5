package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid transport settings
	// (for example, missing base URL or non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid account store settings
	// (for example, no resolvable accounts directory).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background job settings
	// (for example, a non-positive refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
