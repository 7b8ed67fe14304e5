package main

//
//  @title           screenpulse API
//  @version         1.0
//  @description     Equity screening dashboard analytics and industry benchmarks.
//  @termsOfService  https://github.com/guttosm/screenpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/screenpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        dashboard
//  @tag.description Summary stats, industry and market-cap distributions
//
//  @tag.name        stocks
//  @tag.description Entry-zone and breakout watchlists
//
//  @tag.name        screenings
//  @tag.description Saved stock screenings
//
//  @tag.name        benchmarks
//  @tag.description Industry benchmark datasets
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/screenpulse/config"
	_ "github.com/guttosm/screenpulse/docs" // swagger docs
	"github.com/guttosm/screenpulse/internal/app"
	"github.com/guttosm/screenpulse/internal/domain/models"
	"github.com/guttosm/screenpulse/internal/logger"
	"github.com/guttosm/screenpulse/internal/report"
	"github.com/guttosm/screenpulse/internal/service"
	"github.com/guttosm/screenpulse/internal/source"
)

// startServer starts the HTTP server in a separate goroutine.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown waits for SIGINT or SIGTERM, drains the HTTP server and
// then runs cleanup (scheduler stop, DB close).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// reportOptions are the flags of report mode.
type reportOptions struct {
	paths  source.Paths
	format string
}

// runReport loads the watchlist (and optional benchmark) files, builds the
// dashboard and writes it to w. A benchmark payload with any shape
// mismatch fails the whole run.
func runReport(ctx context.Context, opts reportOptions, w io.Writer) error {
	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	bundle, err := source.Load(ctx, opts.paths)
	if err != nil {
		return fmt.Errorf("load report input: %w", err)
	}

	dashboard := service.BuildDashboard(bundle.Entry, bundle.Breakout, time.Now())

	var datasets []models.BenchmarkDataset
	if bundle.Benchmarks != nil {
		datasets, err = service.NewBenchmarkService(nil).Datasets(*bundle.Benchmarks)
		if err != nil {
			return fmt.Errorf("adapt benchmarks: %w", err)
		}
	}

	return report.Write(w, report.New(dashboard, datasets, bundle.Benchmarks), format)
}

// main is the entry point of the screenpulse application.
//
// Modes (selected via --mode flag):
//   - api:    Starts the REST API over the Postgres read model.
//   - report: Builds a one-off dashboard from JSON files and prints it.
//
// Flags:
//   - --mode:       "api" or "report". Default: "api".
//   - --port:       Port for the API server. Defaults to SERVER_PORT.
//   - --entry:      Entry-zone stocks JSON file (report mode).
//   - --breakout:   Breakout stocks JSON file (report mode).
//   - --benchmarks: Optional industry benchmark payload JSON file (report mode).
//   - --format:     "json" or "yaml" (report mode). Default: "json".
func main() {
	ctx := context.Background()

	config.LoadConfig()

	mode := flag.String("mode", "api", "Mode: api or report")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	entry := flag.String("entry", "", "Entry-zone stocks JSON file (report mode)")
	breakout := flag.String("breakout", "", "Breakout stocks JSON file (report mode)")
	benchmarks := flag.String("benchmarks", "", "Industry benchmark payload JSON file (report mode, optional)")
	format := flag.String("format", "json", "Report format: json or yaml")
	flag.Parse()

	if *mode == "report" {
		logger.InitWithWriter(os.Stderr)
	} else {
		logger.Init()
	}

	switch *mode {
	case "report":
		opts := reportOptions{
			paths:  source.Paths{Entry: *entry, Breakout: *breakout, Benchmarks: *benchmarks},
			format: *format,
		}
		if err := runReport(ctx, opts, os.Stdout); err != nil {
			logger.L().Fatal().Err(err).Msg("report failed")
		}

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
