package analytics

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/guttosm/screenpulse/internal/domain/models"
)

// bullishWeeklyGrowth is the weekly growth fraction (20%) above which an
// industry counts as bullish regardless of its SMA position.
const bullishWeeklyGrowth = 0.2

// benchmarkPrecision is the number of decimals kept for weights and
// normalized prices in the computed payload.
const benchmarkPrecision = 4

// ComputeBenchmarks builds an industry benchmark payload from parsed rows.
//
// Behavior:
//   - Normalized price of a row is its price_vs_sma_pct divided by the first
//     value seen for the same symbol (1 when that first value is 0).
//   - Weight of a row is its market cap over the industry's total market cap.
//     Industries whose total is 0 get no benchmark.
//   - The industry benchmark is the weighted sum of normalized prices.
//   - MRS of a symbol is benchmark / normalized - 1, nil when undefined.
//     When a symbol has several rows, the last one wins.
//   - An industry is bullish when any row trades above its SMA or grew more
//     than 20% over the week; otherwise it is bearish.
//   - Rows without an industry join no group: they get no benchmark, no
//     verdict and a nil MRS.
//
// Weights and normalized prices are rounded to 4 decimals. Industry lists
// are sorted by name.
func ComputeBenchmarks(rows []models.BenchmarkRow) models.BenchmarkPayload {
	out := models.BenchmarkPayload{
		IndustryBenchmarks: make(map[string]models.BenchmarkSeries),
		MRS:                make(map[string]*float64),
		BullishIndustries:  make([]string, 0),
		BearishIndustries:  make([]string, 0),
	}
	if len(rows) == 0 {
		return out
	}

	normalized := normalizeBySymbol(rows)

	groups := make(map[string][]int)
	for i, r := range rows {
		name := strings.TrimSpace(r.Industry)
		if name == "" {
			continue
		}
		groups[name] = append(groups[name], i)
	}
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	benchmarks := make(map[string]float64, len(names))
	for _, name := range names {
		idx := groups[name]

		bullish := false
		total := 0.0
		for _, i := range idx {
			total += sanitize(rows[i].MarketCap.Float64())
			if rows[i].PriceVsSMAPct.Float64() > 0 || rows[i].WeeklyGrowth.Float64() > bullishWeeklyGrowth {
				bullish = true
			}
		}
		if bullish {
			out.BullishIndustries = append(out.BullishIndustries, name)
		} else {
			out.BearishIndustries = append(out.BearishIndustries, name)
		}
		if total == 0 {
			continue
		}

		series := models.BenchmarkSeries{
			Symbols:          make([]string, 0, len(idx)),
			Weights:          make([]float64, 0, len(idx)),
			NormalizedPrices: make([]float64, 0, len(idx)),
		}
		bench := 0.0
		for _, i := range idx {
			w := sanitize(rows[i].MarketCap.Float64()) / total
			bench += w * normalized[i]
			series.Symbols = append(series.Symbols, rows[i].Symbol)
			series.Weights = append(series.Weights, round(w))
			series.NormalizedPrices = append(series.NormalizedPrices, round(normalized[i]))
		}
		series.Benchmark = &bench
		benchmarks[name] = bench
		out.IndustryBenchmarks[name] = series
	}

	for i, r := range rows {
		bench, ok := benchmarks[strings.TrimSpace(r.Industry)]
		if !ok || normalized[i] == 0 {
			out.MRS[r.Symbol] = nil
			continue
		}
		mrs := bench/normalized[i] - 1
		out.MRS[r.Symbol] = &mrs
	}
	return out
}

// normalizeBySymbol indexes every row's price_vs_sma_pct against the first
// row of the same symbol.
func normalizeBySymbol(rows []models.BenchmarkRow) []float64 {
	first := make(map[string]float64)
	out := make([]float64, len(rows))
	for i, r := range rows {
		base, seen := first[r.Symbol]
		if !seen {
			base = r.PriceVsSMAPct.Float64()
			first[r.Symbol] = base
		}
		if base == 0 {
			out[i] = 1
			continue
		}
		out[i] = r.PriceVsSMAPct.Float64() / base
	}
	return out
}

func round(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(benchmarkPrecision).Float64()
	return f
}
