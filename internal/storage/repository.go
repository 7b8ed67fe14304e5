package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/guttosm/screenpulse/internal/domain/models"
)

// ScreeningsRepository defines the read-only contract over watchlists and
// saved screenings. Nothing in this service writes either of them.
type ScreeningsRepository interface {
	ListStocks(ctx context.Context, category models.Category) ([]models.StockRecord, error)
	ListScreenings(ctx context.Context) ([]models.Screening, error)
	GetScreening(ctx context.Context, id int64) (*models.Screening, error)
}

type screeningsRepository struct {
	db *sql.DB
}

func NewScreeningsRepository(db *sql.DB) ScreeningsRepository {
	return &screeningsRepository{db: db}
}

const listStocksQuery = `
		SELECT symbol, industry, market_cap, latest_volume, market_cap_formatted
		FROM watchlist_stocks
		WHERE watchlist_type = $1
		ORDER BY id`

// ListStocks returns every stock listed under a category, in insertion order.
// NULL columns map to the model's zero values.
func (r *screeningsRepository) ListStocks(ctx context.Context, category models.Category) ([]models.StockRecord, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("unknown category %q", category)
	}

	rows, err := r.db.QueryContext(ctx, listStocksQuery, string(category))
	if err != nil {
		return nil, fmt.Errorf("query %s stocks: %w", category, err)
	}
	defer func() { _ = rows.Close() }()

	stocks := make([]models.StockRecord, 0)
	for rows.Next() {
		var (
			symbol    string
			industry  sql.NullString
			marketCap sql.NullFloat64
			volume    sql.NullFloat64
			formatted sql.NullString
		)
		if err := rows.Scan(&symbol, &industry, &marketCap, &volume, &formatted); err != nil {
			return nil, fmt.Errorf("scan %s stock: %w", category, err)
		}
		stocks = append(stocks, models.StockRecord{
			Symbol:             symbol,
			Industry:           industry.String,
			MarketCap:          models.Number(marketCap.Float64),
			LatestVolume:       models.Number(volume.Float64),
			MarketCapFormatted: formatted.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s stocks: %w", category, err)
	}
	return stocks, nil
}

const screeningColumns = `id, name, criteria, results_data, created_at`

// ListScreenings returns all screenings, newest first.
func (r *screeningsRepository) ListScreenings(ctx context.Context) ([]models.Screening, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+screeningColumns+` FROM stock_screenings ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query screenings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]models.Screening, 0)
	for rows.Next() {
		s, err := scanScreening(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate screenings: %w", err)
	}
	return out, nil
}

// GetScreening returns one screening, or nil when it does not exist.
func (r *screeningsRepository) GetScreening(ctx context.Context, id int64) (*models.Screening, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+screeningColumns+` FROM stock_screenings WHERE id = $1`, id)
	s, err := scanScreening(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return s, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanScreening(sc scanner) (*models.Screening, error) {
	var (
		s        models.Screening
		criteria []byte
		results  []byte
	)
	if err := sc.Scan(&s.ID, &s.Name, &criteria, &results, &s.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan screening: %w", err)
	}
	if len(criteria) > 0 {
		if err := json.Unmarshal(criteria, &s.Criteria); err != nil {
			return nil, fmt.Errorf("screening %d: decode criteria: %w", s.ID, err)
		}
	}
	if len(results) > 0 {
		if err := json.Unmarshal(results, &s.ResultsData); err != nil {
			return nil, fmt.Errorf("screening %d: decode results: %w", s.ID, err)
		}
	}
	if s.ResultsData.Stocks == nil {
		s.ResultsData.Stocks = make([]models.StockRecord, 0)
	}
	return &s, nil
}
