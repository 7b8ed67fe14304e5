package analytics

import (
	"sort"
	"strings"

	"github.com/guttosm/screenpulse/internal/domain/models"
)

// TopIndustries is the number of industries kept by BuildIndustryDistribution.
const TopIndustries = 10

// Market-cap bucket boundaries in USD. Buckets are half-open [lower, upper).
const (
	midCapFloor   = 2e9
	largeCapFloor = 10e9
	megaCapFloor  = 200e9
)

type bucketDef struct {
	key  string
	name string
}

// marketCapBuckets fixes both the labels and the output order.
var marketCapBuckets = [...]bucketDef{
	{key: "small", name: "Small (<$2B)"},
	{key: "mid", name: "Mid ($2B-$10B)"},
	{key: "large", name: "Large ($10B-$200B)"},
	{key: "mega", name: "Mega (>$200B)"},
}

// IndustryName returns the grouping key for a record's industry.
// Empty and whitespace-only industries share the UnknownIndustry group.
func IndustryName(industry string) string {
	if name := strings.TrimSpace(industry); name != "" {
		return name
	}
	return models.UnknownIndustry
}

// GroupIndustries counts records per industry over the whole list.
//
// The result is sorted by count descending. Ties keep the order in which
// each industry was first encountered, so identical input always yields
// identical output. Counts always sum to len(stocks).
func GroupIndustries(stocks []models.StockRecord) []models.IndustryCount {
	index := make(map[string]int)
	groups := make([]models.IndustryCount, 0)

	for _, s := range stocks {
		name := IndustryName(s.Industry)
		if i, ok := index[name]; ok {
			groups[i].Count++
			continue
		}
		index[name] = len(groups)
		groups = append(groups, models.IndustryCount{Name: name, Count: 1})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Count > groups[j].Count
	})
	return groups
}

// BuildIndustryDistribution returns the TopIndustries most frequent industries.
func BuildIndustryDistribution(stocks []models.StockRecord) []models.IndustryCount {
	groups := GroupIndustries(stocks)
	if len(groups) > TopIndustries {
		groups = groups[:TopIndustries]
	}
	return groups
}

// ClassifyMarketCap returns the bucket index for a market cap.
// Negative and non-finite values are treated as 0.
func ClassifyMarketCap(marketCap float64) int {
	v := sanitize(marketCap)
	switch {
	case v < midCapFloor:
		return 0
	case v < largeCapFloor:
		return 1
	case v < megaCapFloor:
		return 2
	default:
		return 3
	}
}

// BuildMarketCapHistogram counts records per market-cap bucket.
//
// All four buckets are always returned in fixed order, even when empty,
// so an all-zero histogram is distinguishable from a missing one.
func BuildMarketCapHistogram(stocks []models.StockRecord) []models.MarketCapBucket {
	out := make([]models.MarketCapBucket, len(marketCapBuckets))
	for i, b := range marketCapBuckets {
		out[i] = models.MarketCapBucket{Key: b.key, Name: b.name}
	}
	for _, s := range stocks {
		out[ClassifyMarketCap(s.MarketCap.Float64())].Count++
	}
	return out
}

// HistogramEmpty reports whether every bucket is zero.
func HistogramEmpty(buckets []models.MarketCapBucket) bool {
	for _, b := range buckets {
		if b.Count != 0 {
			return false
		}
	}
	return true
}
