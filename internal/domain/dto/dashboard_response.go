package dto

import (
	"time"

	"github.com/guttosm/screenpulse/internal/analytics"
	"github.com/guttosm/screenpulse/internal/domain/models"
)

// DashboardResponse is returned by GET /api/v1/dashboard.
//
// The formatted fields are display strings derived from the averages and
// are never parsed back.
type DashboardResponse struct {
	Success                   bool                     `json:"success" example:"true"`
	Stats                     models.SummaryStats      `json:"stats"`
	AverageMarketCapFormatted string                   `json:"average_market_cap_formatted" example:"$1.20T"`
	AverageVolumeFormatted    string                   `json:"average_volume_formatted" example:"64.00M"`
	Industries                []models.IndustryCount   `json:"industries"`
	MarketCaps                []models.MarketCapBucket `json:"market_caps"`
	MarketCapsEmpty           bool                     `json:"market_caps_empty" example:"false"`
	GeneratedAt               time.Time                `json:"generated_at"`
}

// NewDashboardResponse maps a dashboard into its API representation.
func NewDashboardResponse(d models.Dashboard) DashboardResponse {
	return DashboardResponse{
		Success:                   true,
		Stats:                     d.Stats,
		AverageMarketCapFormatted: analytics.FormatCurrency(d.Stats.AverageMarketCap),
		AverageVolumeFormatted:    analytics.FormatNumber(d.Stats.AverageVolume),
		Industries:                d.Industries,
		MarketCaps:                d.MarketCaps,
		MarketCapsEmpty:           analytics.HistogramEmpty(d.MarketCaps),
		GeneratedAt:               d.GeneratedAt,
	}
}
