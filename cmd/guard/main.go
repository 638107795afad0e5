// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/go-steam-guard/internal/adapter"
	"github.com/MKhiriev/go-steam-guard/internal/client"
	"github.com/MKhiriev/go-steam-guard/internal/config"
	"github.com/MKhiriev/go-steam-guard/internal/logger"
	"github.com/MKhiriev/go-steam-guard/internal/service"
	"github.com/MKhiriev/go-steam-guard/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	_ = godotenv.Load(".env")

	log := logger.NewClientLogger("go-steam-guard")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	confAdapter := adapter.NewConfirmationHTTPAdapter(cfg.Adapter)

	repo, err := store.NewAccountRepository(cfg.Storage.Accounts, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create account repository")
	}

	services := service.NewClientServices(confAdapter, cfg.Workers, log)

	app, err := client.NewApp(repo, services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
