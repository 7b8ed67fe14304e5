package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/screenpulse/internal/domain/models"
	"github.com/guttosm/screenpulse/internal/logger"
)

// ErrUpstreamFailure is returned when a stocks envelope reports success=false.
var ErrUpstreamFailure = errors.New("upstream reported failure")

// Paths lists the files to load. Benchmarks is optional.
type Paths struct {
	Entry      string
	Breakout   string
	Benchmarks string
}

// Bundle is everything loaded from disk for one report run.
type Bundle struct {
	Entry      []models.StockRecord
	Breakout   []models.StockRecord
	Benchmarks *models.BenchmarkPayload
}

// stocksEnvelope is the {success, stocks} shape served by the watchlist endpoints.
type stocksEnvelope struct {
	Success *bool                `json:"success"`
	Stocks  []models.StockRecord `json:"stocks"`
	Error   string               `json:"error"`
}

// Load reads all files concurrently. Any failure cancels the remaining
// reads and no partial bundle is returned.
func Load(ctx context.Context, p Paths) (*Bundle, error) {
	if p.Entry == "" || p.Breakout == "" {
		return nil, errors.New("entry and breakout files are required")
	}

	var b Bundle
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		recs, err := loadStocks(gctx, p.Entry)
		b.Entry = recs
		return err
	})
	g.Go(func() error {
		recs, err := loadStocks(gctx, p.Breakout)
		b.Breakout = recs
		return err
	})
	if p.Benchmarks != "" {
		g.Go(func() error {
			payload, err := loadBenchmarks(gctx, p.Benchmarks)
			b.Benchmarks = payload
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	lg := logger.Component("source")
	lg.Info().
		Int("entry", len(b.Entry)).
		Int("breakout", len(b.Breakout)).
		Bool("benchmarks", b.Benchmarks != nil).
		Dur("elapsed", time.Since(start)).
		Msg("source files loaded")
	return &b, nil
}

// loadStocks accepts either the {success, stocks} envelope or a bare array.
func loadStocks(ctx context.Context, path string) ([]models.StockRecord, error) {
	data, err := readFile(ctx, path)
	if err != nil {
		return nil, err
	}

	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		var recs []models.StockRecord
		if err := json.Unmarshal(trimmed, &recs); err != nil {
			return nil, fmt.Errorf("file %s: decode stocks: %w", path, err)
		}
		return nonNil(recs), nil
	}

	var env stocksEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("file %s: decode envelope: %w", path, err)
	}
	if env.Success != nil && !*env.Success {
		return nil, fmt.Errorf("file %s: %w: %s", path, ErrUpstreamFailure, env.Error)
	}
	return nonNil(env.Stocks), nil
}

func loadBenchmarks(ctx context.Context, path string) (*models.BenchmarkPayload, error) {
	data, err := readFile(ctx, path)
	if err != nil {
		return nil, err
	}
	var payload models.BenchmarkPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("file %s: decode benchmarks: %w", path, err)
	}
	return &payload, nil
}

func readFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("file %s: %w", path, err)
	}
	return data, nil
}

func nonNil(recs []models.StockRecord) []models.StockRecord {
	if recs == nil {
		return []models.StockRecord{}
	}
	return recs
}
