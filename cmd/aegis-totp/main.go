package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/aegis-totp/internal/app"
	"github.com/MKhiriev/aegis-totp/internal/client"
	"github.com/MKhiriev/aegis-totp/internal/config"
	"github.com/MKhiriev/aegis-totp/internal/logger"
	"github.com/MKhiriev/aegis-totp/internal/service"
	"github.com/MKhiriev/aegis-totp/internal/store"
	"github.com/MKhiriev/aegis-totp/internal/tui"
	"github.com/MKhiriev/aegis-totp/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.GetClientConfig(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprint(os.Stdout, config.Usage)
			return 0
		}
		fmt.Fprintf(os.Stderr, "aegis-totp: %v\n\n%s", err, config.Usage)
		return 2
	}

	log, err := logger.NewClientLogger("aegis-totp", cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "aegis-totp: %v\n", err)
		return 1
	}
	defer log.Close()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	storages := store.NewClientStorages(log)
	services := service.NewClientServices(storages, buildInfo, log)

	if cfg.ShowVersion {
		fmt.Fprintln(os.Stdout, services.AppInfoService.Version())
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ui := tui.New(services, tui.Options{
		VaultPath:           cfg.Vault.Path,
		RefreshInterval:     cfg.UI.RefreshInterval,
		ClipboardClearAfter: cfg.UI.ClipboardClearAfter,
		ClipboardEnabled:    cfg.UI.ClipboardEnabled,
	}, log)

	if err := client.NewApp(cfg, services, ui, log).Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "aegis-totp: %s\n", app.Humanize(err))
		return 1
	}
	return 0
}
