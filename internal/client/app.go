package client

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-warden/internal/config"
	"github.com/MKhiriev/go-warden/internal/logger"
	"github.com/MKhiriev/go-warden/internal/service"
	"github.com/MKhiriev/go-warden/internal/workers"
	"github.com/MKhiriev/go-warden/models"
	"github.com/atotto/clipboard"
)

// App is the client application shell. It resolves the session route on
// start, keeps the timeout watcher running for the lifetime of a command,
// and dispatches the command surface to the service layer.
type App struct {
	cfg      *config.ClientConfig
	services *service.Services
	watcher  workers.TimeoutWatcher
	logger   *logger.Logger

	// out receives user-facing command output. Defaults to os.Stdout.
	out io.Writer
}

func NewApp(cfg *config.ClientConfig, services *service.Services, watcher workers.TimeoutWatcher, logger *logger.Logger) (*App, error) {
	if cfg == nil || services == nil {
		return nil, fmt.Errorf("client app needs config and services")
	}

	return &App{
		cfg:      cfg,
		services: services,
		watcher:  watcher,
		logger:   logger,
		out:      os.Stdout,
	}, nil
}

// Run implements [Client]. It routes the app-start event first, so every
// command begins from a fresh session decision, then dispatches args.
func (a *App) Run(ctx context.Context, args []string) error {
	ctx = a.logger.WithContext(ctx)

	route := a.services.Router.HandleAndRoute(ctx, models.AuthEvent{Kind: models.EventDidStart})
	a.logger.Info().Str("route", route.Kind.String()).Msg("resolved start route")

	if a.watcher != nil {
		a.watcher.Start(ctx, a.cfg.Workers.CheckInterval)
		defer a.watcher.Stop()
	}

	if len(args) == 0 {
		a.printRoute(route)
		return nil
	}

	switch args[0] {
	case "export":
		return a.runExport(ctx, route, args[1:])
	case "lock":
		return a.runLock(ctx)
	case "logout":
		return a.runLogout(ctx)
	case "switch":
		return a.runSwitch(ctx, args[1:])
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
}

// runExport serialises the vault into the configured export directory and
// puts the resulting path on the system clipboard.
func (a *App) runExport(ctx context.Context, route models.Route, args []string) error {
	flags := flag.NewFlagSet("export", flag.ContinueOnError)
	formatName := flags.String("format", "csv", "export format: csv, json or encrypted-json")
	password := flags.String("password", "", "file password for encrypted-json")
	includeArchived := flags.Bool("include-archived", false, "include archived items")
	noClipboard := flags.Bool("no-clipboard", false, "do not copy the file path to the clipboard")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if !vaultAvailable(route) {
		return fmt.Errorf("%w: routed to %s", ErrVaultUnavailable, route.Kind)
	}

	format, err := parseExportFormat(*formatName, *password)
	if err != nil {
		return err
	}

	contents, err := a.services.Export.ExportFileContents(ctx, format, *includeArchived)
	if err != nil {
		return fmt.Errorf("export vault: %w", err)
	}

	name := a.services.Export.GenerateExportFileName(a.cfg.App.ExportPrefix, format)
	path, err := a.services.Export.WriteToFile(name, contents)
	if err != nil {
		return fmt.Errorf("write export file: %w", err)
	}

	if !*noClipboard {
		if err := clipboard.WriteAll(path); err != nil {
			a.logger.Warn().Err(err).Msg("failed to copy export path to clipboard")
		}
	}

	fmt.Fprintln(a.out, path)
	return nil
}

func (a *App) runLock(ctx context.Context) error {
	route := a.services.Router.HandleAndRoute(ctx, models.AuthEvent{
		Kind:              models.EventLockVault,
		IsManuallyLocking: true,
	})

	// locked vaults must not leave plaintext exports behind
	a.services.Export.ClearTemporaryFiles()

	a.printRoute(route)
	return nil
}

func (a *App) runLogout(ctx context.Context) error {
	route := a.services.Router.HandleAndRoute(ctx, models.AuthEvent{
		Kind:          models.EventRequestLogout,
		UserInitiated: true,
	})

	a.services.Export.ClearTemporaryFiles()

	a.printRoute(route)
	return nil
}

func (a *App) runSwitch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("switch needs a user id")
	}

	route := a.services.Router.HandleAndRoute(ctx, models.AuthEvent{
		Kind:   models.EventSwitchAccount,
		UserID: args[0],
	})

	a.printRoute(route)
	return nil
}

func (a *App) printRoute(route models.Route) {
	switch route.Kind {
	case models.RouteLandingSoftLoggedOut:
		fmt.Fprintf(a.out, "%s (%s)\n", route.Kind, route.Email)
	default:
		fmt.Fprintln(a.out, route.Kind)
	}
}

// vaultAvailable reports whether routing left the vault usable for
// commands that read decrypted items.
func vaultAvailable(route models.Route) bool {
	switch route.Kind {
	case models.RouteComplete, models.RouteCompleteWithNeverUnlock, models.RouteCompleteWithRehydration:
		return true
	default:
		return false
	}
}

func parseExportFormat(name, password string) (models.ExportFormat, error) {
	switch name {
	case "csv":
		return models.CSVExport(), nil
	case "json":
		return models.JSONExport(), nil
	case "encrypted-json":
		if password == "" {
			return models.ExportFormat{}, ErrMissingExportPassword
		}
		return models.EncryptedJSONExport(password), nil
	default:
		return models.ExportFormat{}, fmt.Errorf("%w: %s", ErrUnknownExportFormat, name)
	}
}
