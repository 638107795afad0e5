// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-steam-guard/internal/config"
	"github.com/MKhiriev/go-steam-guard/internal/logger"
	"github.com/MKhiriev/go-steam-guard/internal/service"
	"github.com/MKhiriev/go-steam-guard/internal/store"
	"github.com/MKhiriev/go-steam-guard/internal/utils"
	"github.com/MKhiriev/go-steam-guard/models"
)

// ErrNoAccounts is returned by Run when the account directories contain no
// decodable account file.
var ErrNoAccounts = errors.New("no accounts found")

type App struct {
	repo      store.AccountRepository
	services  *service.ClientServices
	cfg       *config.ClientConfig
	deviceIDs *utils.DeviceIDGenerator
	logger    *logger.Logger
}

func NewApp(repo store.AccountRepository, services *service.ClientServices, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	if repo == nil || services == nil || cfg == nil {
		return nil, errors.New("client app: missing dependency")
	}

	return &App{
		repo:      repo,
		services:  services,
		cfg:       cfg,
		deviceIDs: utils.NewDeviceIDGenerator(),
		logger:    log,
	}, nil
}

// Run loads the accounts, selects the one to display, and keeps printing its
// rotating login code until the process is interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	accounts, err := a.repo.LoadAll()
	if err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}

	account, err := a.selectAccount(accounts)
	if err != nil {
		return err
	}

	// confirmation endpoints need a device id; the maFile may not carry one
	if account.DeviceID == "" {
		account.DeviceID = a.deviceIDs.Generate()
		a.logger.Info().
			Str("account", account.AccountName).
			Str("device_id", account.DeviceID).
			Msg("account file has no device_id, minted one for this session")
	}

	fmt.Printf("Account: %s\n", account.AccountName)
	a.logger.Info().
		Str("account", account.AccountName).
		Bool("copy", a.cfg.App.CopyToClipboard).
		Msg("starting code refresh")

	a.services.CodeRefreshJob.Start(ctx, account, a.cfg.Workers.CodeRefreshInterval, a.displayCode())
	defer a.services.CodeRefreshJob.Stop()

	<-ctx.Done()
	fmt.Println()

	return nil
}

// selectAccount resolves the configured account name against the loaded
// accounts, defaulting to the first one.
func (a *App) selectAccount(accounts []models.Account) (models.Account, error) {
	if len(accounts) == 0 {
		return models.Account{}, fmt.Errorf("%w: import a maFile into %s", ErrNoAccounts, a.cfg.Storage.Accounts.Dir)
	}

	if a.cfg.App.Account == "" {
		return accounts[0], nil
	}
	for _, account := range accounts {
		if account.AccountName == a.cfg.App.Account {
			return account, nil
		}
	}

	return models.Account{}, fmt.Errorf("select account %q: %w", a.cfg.App.Account, store.ErrAccountNotFound)
}

// displayCode builds the per-tick callback: rewrite the code line in place
// and, when enabled, push each fresh code to the clipboard once.
func (a *App) displayCode() func(models.CodeResult) {
	var mu sync.Mutex
	var lastCode string

	return func(result models.CodeResult) {
		mu.Lock()
		fresh := result.Code != lastCode
		lastCode = result.Code
		mu.Unlock()

		fmt.Printf("\r%s  %3d%% of window left ", result.Code, int(result.FractionRemaining*100))

		if fresh && a.cfg.App.CopyToClipboard {
			if err := clipboard.WriteAll(result.Code); err != nil {
				a.logger.Debug().Err(err).Msg("clipboard copy failed")
			}
		}
	}
}
