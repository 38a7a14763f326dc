package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vaclaims/ratings-api/internal/config"
	"github.com/vaclaims/ratings-api/internal/platform/ratefile"
	"github.com/vaclaims/ratings-api/internal/service"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	rates        *service.RateStore
	claimService service.ClaimService
}

// newApplication loads the rate tables and wires the claim service.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	tables := ratefile.Defaults()
	if cfg.Rates.File != "" {
		var err error
		tables, err = ratefile.LoadFile(cfg.Rates.File)
		if err != nil {
			return nil, fmt.Errorf("failed to load rate file: %w", err)
		}
	}
	logger.Info("rate tables loaded",
		"compensation_years", tables.Compensation.Years(),
		"smc_years", tables.SMC.Years(),
		"source", rateSource(cfg.Rates.File))

	if !tables.Compensation.HasYear(cfg.Rates.DefaultYear) {
		logger.Warn("default rate year has no compensation table",
			"default_year", cfg.Rates.DefaultYear,
			"latest_year", tables.Compensation.LatestYear(),
			"fallback_to_latest", cfg.Rates.FallbackToLatest)
	}

	var err error
	app.rates, err = service.NewRateStore(rateSet(tables))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize rate store: %w", err)
	}

	app.claimService, err = service.NewClaimService(
		app.rates,
		service.YearPolicy{
			DefaultYear:      cfg.Rates.DefaultYear,
			FallbackToLatest: cfg.Rates.FallbackToLatest,
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize claim service: %w", err)
	}

	return app, nil
}

// Run starts the HTTP server, and the rate file watcher when enabled, and
// blocks until ctx is cancelled or the server fails.
func (app *application) Run(ctx context.Context) error {
	if app.config.Rates.Watch {
		app.startRateWatcher(ctx)
	}

	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// startRateWatcher reloads the rate file in the background until ctx ends.
func (app *application) startRateWatcher(ctx context.Context) {
	path := app.config.Rates.File
	if path == "" {
		app.logger.Warn("rate file watching enabled without a rate file, ignoring")
		return
	}

	go func() {
		if err := ratefile.Watch(ctx, path, app.logger, app.reloadRates); err != nil {
			app.logger.Error("rate file watcher stopped", "error", err)
		}
	}()
}

// reloadRates swaps in freshly loaded tables.
func (app *application) reloadRates(tables *ratefile.Tables) {
	if err := app.rates.Replace(rateSet(tables)); err != nil {
		app.logger.Error("failed to apply reloaded rate tables", "error", err)
		return
	}
	if !tables.Compensation.HasYear(app.config.Rates.DefaultYear) {
		app.logger.Warn("default rate year has no compensation table after reload",
			"default_year", app.config.Rates.DefaultYear)
	}
}

func rateSet(tables *ratefile.Tables) service.RateSet {
	return service.RateSet{
		Compensation: tables.Compensation,
		SMC:          tables.SMC,
	}
}

func rateSource(file string) string {
	if file == "" {
		return "built-in"
	}
	return file
}
