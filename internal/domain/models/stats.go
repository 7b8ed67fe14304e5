package models

import "time"

// SummaryStats holds the scalar counters shown on the dashboard.
//
// AverageMarketCap and AverageVolume are 0 when TotalCount is 0.
type SummaryStats struct {
	TotalCount       int     `json:"total_count" example:"10"`
	EntryCount       int     `json:"entry_count" example:"5"`
	BreakoutCount    int     `json:"breakout_count" example:"5"`
	AverageMarketCap float64 `json:"average_market_cap" example:"1200000000000"`
	AverageVolume    float64 `json:"average_volume" example:"64000000"`
}

// IndustryCount is one entry of the industry frequency ranking.
type IndustryCount struct {
	Name  string `json:"name" example:"Technology"`
	Count int    `json:"count" example:"6"`
}

// MarketCapBucket is one fixed bucket of the market-cap histogram.
type MarketCapBucket struct {
	Key   string `json:"key" example:"mega"`
	Name  string `json:"name" example:"Mega (>$200B)"`
	Count int    `json:"value" example:"7"`
}

// Dashboard bundles everything a dashboard page renders for one pass
// over the entry-zone and breakout lists.
type Dashboard struct {
	Stats       SummaryStats      `json:"stats"`
	Industries  []IndustryCount   `json:"industries"`
	MarketCaps  []MarketCapBucket `json:"market_caps"`
	GeneratedAt time.Time         `json:"generated_at"`
}
