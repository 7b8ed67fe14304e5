package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/screenpulse/internal/analytics"
	"github.com/guttosm/screenpulse/internal/domain/models"
	"github.com/guttosm/screenpulse/internal/logger"
	"github.com/guttosm/screenpulse/internal/metrics"
	"github.com/guttosm/screenpulse/internal/storage"
)

// DashboardService defines the dashboard use cases on top of the
// read-only screenings repository.
type DashboardService interface {
	GetDashboard(ctx context.Context) (*models.Dashboard, error)
	ListStocks(ctx context.Context, category models.Category) ([]models.StockRecord, error)
	ListScreenings(ctx context.Context) ([]models.Screening, error)
	GetScreening(ctx context.Context, id int64) (*models.Screening, error)
}

type dashboardService struct {
	repo    storage.ScreeningsRepository
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewDashboardService wires a DashboardService. m may be nil.
func NewDashboardService(repo storage.ScreeningsRepository, m *metrics.Metrics) DashboardService {
	return &dashboardService{repo: repo, metrics: m, now: time.Now}
}

// GetDashboard fetches the entry-zone and breakout lists concurrently and
// aggregates them once both are available. If either fetch fails the whole
// build fails; a dashboard is never computed from partial input.
func (s *dashboardService) GetDashboard(ctx context.Context) (*models.Dashboard, error) {
	var entry, breakout []models.StockRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entry, err = s.repo.ListStocks(gctx, models.CategoryEntryZone)
		if err != nil {
			return fmt.Errorf("fetch entry-zone stocks: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		breakout, err = s.repo.ListStocks(gctx, models.CategoryBreakout)
		if err != nil {
			return fmt.Errorf("fetch breakout stocks: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.L().Error().Err(err).Msg("dashboard fetch failed")
		s.metrics.ObserveDashboard(0, err)
		return nil, err
	}

	d := BuildDashboard(entry, breakout, s.now())
	s.metrics.ObserveDashboard(d.Stats.TotalCount, nil)
	logger.L().Debug().
		Int("entry", d.Stats.EntryCount).
		Int("breakout", d.Stats.BreakoutCount).
		Int("industries", len(d.Industries)).
		Msg("dashboard built")
	return &d, nil
}

func (s *dashboardService) ListStocks(ctx context.Context, category models.Category) ([]models.StockRecord, error) {
	return s.repo.ListStocks(ctx, category)
}

func (s *dashboardService) ListScreenings(ctx context.Context) ([]models.Screening, error) {
	return s.repo.ListScreenings(ctx)
}

func (s *dashboardService) GetScreening(ctx context.Context, id int64) (*models.Screening, error) {
	return s.repo.GetScreening(ctx, id)
}

// BuildDashboard composes the analytics for already-fetched lists.
// The aggregated population is the union of both lists, duplicates kept.
func BuildDashboard(entry, breakout []models.StockRecord, now time.Time) models.Dashboard {
	all := analytics.Union(entry, breakout)
	return models.Dashboard{
		Stats:       analytics.Aggregate(all, entry, breakout),
		Industries:  analytics.BuildIndustryDistribution(all),
		MarketCaps:  analytics.BuildMarketCapHistogram(all),
		GeneratedAt: now.UTC(),
	}
}
