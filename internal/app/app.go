package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/screenpulse/config"
	"github.com/guttosm/screenpulse/internal/api"
	"github.com/guttosm/screenpulse/internal/logger"
	"github.com/guttosm/screenpulse/internal/metrics"
	"github.com/guttosm/screenpulse/internal/service"
	"github.com/guttosm/screenpulse/internal/snapshot"
	"github.com/guttosm/screenpulse/internal/storage"
)

// InitializeApp sets up all application dependencies and returns a fully
// configured Gin router, a cleanup function for graceful shutdown, and any
// error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Builds the read-only screenings repository and the services on top.
//   - Starts the snapshot refresher when SNAPSHOT_CRON is set.
//   - Configures the Gin router, /metrics and health probes.
//
// The cleanup function stops the scheduler before closing the database.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	m := metrics.New()
	repo := storage.NewScreeningsRepository(db)
	dashboards := service.NewDashboardService(repo, m)
	benchmarks := service.NewBenchmarkService(m)

	var refresher *snapshot.Refresher
	if cfg.Snapshot.Cron != "" {
		refresher = snapshot.NewRefresher(dashboards, m, cfg.Snapshot.Timeout)
		if err := refresher.Schedule(cfg.Snapshot.Cron); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		refresher.Start()
		refresher.Prime()
	} else {
		logger.L().Info().Msg("snapshot refresher disabled")
	}

	handler := api.NewHandler(dashboards, benchmarks, snapshotSource(refresher))
	router := api.NewRouter(handler, api.RouterOptions{
		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
		RequestTimeout:     cfg.Server.RequestTimeout,
		Metrics:            m,
	})

	api.NewHealthHandler(db.PingContext).Register(router)

	cleanup := func() {
		if refresher != nil {
			refresher.Stop()
		}
		_ = db.Close()
	}

	return router, cleanup, nil
}

// snapshotSource avoids handing the handler a typed nil interface.
func snapshotSource(r *snapshot.Refresher) api.SnapshotSource {
	if r == nil {
		return nil
	}
	return r
}
