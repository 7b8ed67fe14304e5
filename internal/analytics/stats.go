package analytics

import (
	"math"

	"github.com/guttosm/screenpulse/internal/domain/models"
)

// Aggregate reduces the screened lists into summary counters.
//
// all is the caller-formed union of entry and breakout; a symbol listed in
// both categories is counted twice. The three lengths are taken as given
// rather than derived from one another.
//
// Averages coerce missing, negative and non-finite values to 0 and are 0
// when all is empty.
func Aggregate(all, entry, breakout []models.StockRecord) models.SummaryStats {
	stats := models.SummaryStats{
		TotalCount:    len(all),
		EntryCount:    len(entry),
		BreakoutCount: len(breakout),
	}
	if len(all) == 0 {
		return stats
	}

	var capSum, volSum float64
	for _, s := range all {
		capSum += sanitize(s.MarketCap.Float64())
		volSum += sanitize(s.LatestVolume.Float64())
	}

	n := float64(len(all))
	stats.AverageMarketCap = capSum / n
	stats.AverageVolume = volSum / n
	return stats
}

// Union concatenates the category lists in order without deduplication.
func Union(lists ...[]models.StockRecord) []models.StockRecord {
	total := 0
	for _, l := range lists {
		total += len(l)
	}
	out := make([]models.StockRecord, 0, total)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// sanitize maps values that cannot be a market cap or a volume to 0.
func sanitize(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
