package snapshot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/guttosm/screenpulse/internal/domain/models"
	"github.com/guttosm/screenpulse/internal/logger"
	"github.com/guttosm/screenpulse/internal/metrics"
)

// Builder produces a fresh dashboard. service.DashboardService satisfies it.
type Builder interface {
	GetDashboard(ctx context.Context) (*models.Dashboard, error)
}

// Refresher rebuilds the dashboard on a cron schedule and keeps the
// latest successful result in memory.
//
// A failed refresh keeps the previous snapshot; a stale dashboard is
// preferred over none.
type Refresher struct {
	builder Builder
	metrics *metrics.Metrics
	timeout time.Duration
	cron    *cron.Cron
	log     zerolog.Logger

	mu     sync.RWMutex
	latest *models.Dashboard

	// background refreshes started by Prime; Stop cancels and awaits them.
	bgCtx    context.Context
	bgCancel context.CancelFunc
	bg       sync.WaitGroup
}

// NewRefresher creates a Refresher. timeout bounds each rebuild; m may be nil.
func NewRefresher(b Builder, m *metrics.Metrics, timeout time.Duration) *Refresher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Refresher{
		builder:  b,
		metrics:  m,
		timeout:  timeout,
		cron:     cron.New(),
		log:      logger.Component("snapshot"),
		bgCtx:    ctx,
		bgCancel: cancel,
	}
}

// Schedule registers the refresh job. expr accepts the standard five-field
// syntax and descriptors such as "@every 5m".
func (r *Refresher) Schedule(expr string) error {
	if _, err := r.cron.AddFunc(expr, func() { _ = r.Refresh(context.Background()) }); err != nil {
		return fmt.Errorf("register snapshot refresh %q: %w", expr, err)
	}
	return nil
}

// Start runs the scheduler in its own goroutine.
func (r *Refresher) Start() {
	r.cron.Start()
	r.log.Info().Int("jobs", len(r.cron.Entries())).Msg("snapshot scheduler started")
}

// Prime runs one refresh in the background so the snapshot is available
// before the first scheduled tick.
func (r *Refresher) Prime() {
	r.bg.Add(1)
	go func() {
		defer r.bg.Done()
		_ = r.Refresh(r.bgCtx)
	}()
}

// Stop halts the scheduler, cancels a pending Prime, and waits for every
// running refresh to finish.
func (r *Refresher) Stop() {
	r.bgCancel()
	<-r.cron.Stop().Done()
	r.bg.Wait()
	r.log.Info().Msg("snapshot scheduler stopped")
}

// Refresh rebuilds the dashboard once and stores it on success.
func (r *Refresher) Refresh(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	d, err := r.builder.GetDashboard(ctx)
	r.metrics.ObserveSnapshot(err)
	if err != nil {
		r.log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("snapshot refresh failed")
		return err
	}

	r.mu.Lock()
	r.latest = d
	r.mu.Unlock()

	r.log.Info().
		Int("total", d.Stats.TotalCount).
		Dur("elapsed", time.Since(start)).
		Msg("snapshot refreshed")
	return nil
}

// Latest returns the most recent snapshot, if any.
func (r *Refresher) Latest() (*models.Dashboard, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.latest, r.latest != nil
}
