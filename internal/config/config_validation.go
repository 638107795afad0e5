// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The raw merged config carries no invariants of its own; defaults and
// requirements are applied by the client view, so this is a no-op kept as
// the builder's final hook.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.Accounts.Dir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.CodeRefreshInterval <= 0 || cfg.Workers.RelistDelay <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
