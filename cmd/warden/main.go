package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-warden/internal/adapter"
	"github.com/MKhiriev/go-warden/internal/client"
	"github.com/MKhiriev/go-warden/internal/config"
	"github.com/MKhiriev/go-warden/internal/crypto"
	"github.com/MKhiriev/go-warden/internal/exporter"
	"github.com/MKhiriev/go-warden/internal/logger"
	"github.com/MKhiriev/go-warden/internal/service"
	"github.com/MKhiriev/go-warden/internal/store"
	"github.com/MKhiriev/go-warden/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.New("go-warden", logger.DefaultLogPath())
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	keychain := crypto.NewKeyChainService()
	storages, err := store.NewStorages(cfg.Storage, keychain, cfg.App.DeviceSecret, nil, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	clock := service.NewSystemClock()
	services := service.NewServices(
		service.ExportDeps{
			Store:     storages.Vault,
			Policy:    adapter.NewPolicyService(serverAdapter, log),
			Flags:     adapter.NewFeatureFlagService(serverAdapter, log),
			Exporter:  exporter.NewSerializer(keychain),
			Clock:     clock,
			ExportDir: cfg.Storage.Files.ExportDir,
		},
		service.RoutingDeps{
			Auth:               storages.Accounts,
			State:              storages.State,
			Timeout:            storages.Timeout,
			Clock:              clock,
			IsExtensionContext: cfg.App.ExtensionContext,
		},
		log,
	)

	watcher := workers.NewTimeoutWatcher(storages.Accounts, storages.State, storages.Timeout, services.Router, clock, log)

	app, err := client.NewApp(cfg, services, watcher, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background(), flag.Args()); err != nil {
		log.Error().Err(err).Msg("client run error")
		os.Exit(1)
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
