// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store owns the lifecycle of stored Steam Guard credentials: a
// writable per-user directory of account files plus an optional read-only
// bundled set shipped with the build.
//
// File access is synchronous and unlocked: the store operates on a small
// local directory and is expected to be fast. Callers must not invoke
// LoadAll, Import, or Delete concurrently against the same backing store.
package store

import "github.com/MKhiriev/go-steam-guard/models"

// AccountRepository owns the set of known accounts.
type AccountRepository interface {
	// LoadAll rescans both directories and rebuilds the in-memory
	// collection: first every file in the writable directory (any
	// extension), then the bundled directory restricted to ".maFile".
	// Files that fail to decode are skipped. Later entries overwrite
	// earlier ones with the same account name, so a bundled account can
	// shadow a same-named imported one. Returns the resulting ordered
	// collection.
	LoadAll() ([]models.Account, error)

	// Import copies the file at sourcePath into the writable directory,
	// overwriting any existing file with the same name, re-runs LoadAll,
	// and returns the entry backed by the imported file. Returns
	// [ErrAccountNotFound] if the copied file did not decode into an
	// account.
	Import(sourcePath string) (models.Account, error)

	// Delete removes the account from the in-memory collection and, when
	// the account has a backing file, removes that file from the writable
	// directory. Bundled accounts have no backing file: they are only
	// removed from the in-memory view and reappear on the next LoadAll.
	Delete(account models.Account) error

	// Accounts returns a copy of the current in-memory collection without
	// touching the filesystem.
	Accounts() []models.Account
}
