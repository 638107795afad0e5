// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-steam-guard/internal/config"
	"github.com/MKhiriev/go-steam-guard/internal/logger"
	"github.com/MKhiriev/go-steam-guard/models"
)

// bundledExtension restricts the bundled directory scan; the writable
// directory accepts any extension.
const bundledExtension = ".maFile"

// accountRepository is the default implementation of [AccountRepository].
type accountRepository struct {
	// dir is the writable per-user directory scanned for account files and
	// targeted by Import/Delete.
	dir string

	// bundledDir is the optional read-only directory of accounts shipped
	// with the build. Empty means no bundled set.
	bundledDir string

	// accounts is the in-memory collection, rebuilt by LoadAll and trimmed
	// by Delete. Ordered by discovery order.
	accounts []models.Account

	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] over the configured
// account directories. The writable directory is created if it does not
// exist yet, so a first run starts with an empty collection instead of a
// scan error.
func NewAccountRepository(cfg config.Accounts, logger *logger.Logger) (AccountRepository, error) {
	logger.Debug().Str("dir", cfg.Dir).Str("bundled_dir", cfg.BundledDir).Msg("creating account repository")

	if err := os.MkdirAll(cfg.Dir, 0o700); err != nil {
		return nil, fmt.Errorf("create accounts directory: %w", err)
	}

	return &accountRepository{
		dir:        cfg.Dir,
		bundledDir: cfg.BundledDir,
		logger:     logger,
	}, nil
}

// LoadAll implements [AccountRepository].
func (r *accountRepository) LoadAll() ([]models.Account, error) {
	r.accounts = r.accounts[:0]

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingAccountsDir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		r.loadFile(filepath.Join(r.dir, entry.Name()), entry.Name(), false)
	}

	if r.bundledDir != "" {
		bundled, err := os.ReadDir(r.bundledDir)
		if err != nil {
			// A missing bundled set is not an error: the build simply
			// shipped without one.
			r.logger.Debug().Err(err).Msg("bundled accounts directory not readable")
		}
		for _, entry := range bundled {
			if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), bundledExtension) {
				continue
			}
			r.loadFile(filepath.Join(r.bundledDir, entry.Name()), "", true)
		}
	}

	return r.Accounts(), nil
}

// loadFile decodes one candidate file and upserts it into the in-memory
// collection. Decode failures are skipped so one corrupt file cannot abort
// the scan.
func (r *accountRepository) loadFile(path, sourceFilename string, bundled bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		r.logger.Debug().Err(err).Str("path", path).Msg("skipping unreadable account file")
		return
	}

	var account models.Account
	if err := json.Unmarshal(data, &account); err != nil {
		r.logger.Debug().Err(err).Str("path", path).Msg("skipping undecodable account file")
		return
	}
	account.SourceFilename = sourceFilename

	for i := range r.accounts {
		if r.accounts[i].AccountName == account.AccountName {
			r.accounts[i] = account
			return
		}
	}
	r.accounts = append(r.accounts, account)

	r.logger.Debug().
		Str("account", account.AccountName).
		Bool("bundled", bundled).
		Msg("loaded account")
}

// Import implements [AccountRepository].
func (r *accountRepository) Import(sourcePath string) (models.Account, error) {
	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrReadingSourceFile, err)
	}

	filename := filepath.Base(sourcePath)
	if err := os.WriteFile(filepath.Join(r.dir, filename), data, 0o600); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrWritingAccountFile, err)
	}

	if _, err := r.LoadAll(); err != nil {
		return models.Account{}, err
	}

	for _, account := range r.accounts {
		if account.SourceFilename == filename {
			r.logger.Info().Str("account", account.AccountName).Str("file", filename).Msg("imported account")
			return account, nil
		}
	}

	return models.Account{}, fmt.Errorf("%w: imported file %q did not decode", ErrAccountNotFound, filename)
}

// Delete implements [AccountRepository].
func (r *accountRepository) Delete(account models.Account) error {
	found := false
	for i := range r.accounts {
		if r.accounts[i].AccountName == account.AccountName {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %q", ErrAccountNotFound, account.AccountName)
	}

	// Bundled accounts have no backing file; they reappear on the next
	// LoadAll.
	if account.SourceFilename == "" {
		return nil
	}

	if err := os.Remove(filepath.Join(r.dir, account.SourceFilename)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: %w", ErrDeletingAccountFile, err)
	}

	r.logger.Info().Str("account", account.AccountName).Msg("deleted account")
	return nil
}

// Accounts implements [AccountRepository].
func (r *accountRepository) Accounts() []models.Account {
	out := make([]models.Account, len(r.accounts))
	copy(out, r.accounts)
	return out
}
