// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-steam-guard application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the account-file store: the writable
	// per-user accounts directory and the read-only bundled directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds network settings for the outbound mobile-confirmation
	// transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs (code refresh,
	// post-action re-list).
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Printed in the startup banner.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Account selects the account to display codes for, by account name.
	// When empty, the first loaded account is used.
	// Env: APP_ACCOUNT
	Account string `env:"ACCOUNT"`

	// CopyToClipboard copies every freshly rotated login code to the system
	// clipboard.
	// Env: APP_COPY_TO_CLIPBOARD
	CopyToClipboard bool `env:"COPY_TO_CLIPBOARD"`
}

// Storage groups the configuration for the account-file store.
type Storage struct {
	// Accounts holds the account directory settings.
	Accounts Accounts `envPrefix:"ACCOUNTS_"`
}

// Accounts holds the directory settings of the account-file store.
type Accounts struct {
	// Dir is the writable per-user directory scanned for account files.
	// Any extension is accepted; imported files are copied here.
	// Env: STORAGE_ACCOUNTS_DIR
	Dir string `env:"DIR"`

	// BundledDir is an optional read-only directory of accounts shipped
	// with the build. Only ".maFile" entries are considered. Accounts found
	// here overwrite same-named accounts loaded from Dir.
	// Env: STORAGE_ACCOUNTS_BUNDLED_DIR
	BundledDir string `env:"BUNDLED_DIR"`
}

// Adapter holds network settings for the outbound confirmation transport.
type Adapter struct {
	// BaseURL is the mobile-confirmation endpoint base
	// (e.g. "https://steamcommunity.com/mobileconf").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request (e.g. "15s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// CodeRefreshInterval defines how often the rotating login code is
	// regenerated (the original app refreshes once per second).
	// Env: WORKERS_CODE_REFRESH_INTERVAL
	CodeRefreshInterval time.Duration `env:"CODE_REFRESH_INTERVAL"`

	// RelistDelay is the pause between a successful confirmation action and
	// the reconciling re-list request.
	// Env: WORKERS_RELIST_DELAY
	RelistDelay time.Duration `env:"RELIST_DELAY"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
