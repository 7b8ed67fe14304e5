package dto

import "github.com/guttosm/screenpulse/internal/domain/models"

// StocksResponse is returned by the entry-zone and breakout listings.
type StocksResponse struct {
	Success bool                 `json:"success" example:"true"`
	Stocks  []models.StockRecord `json:"stocks"`
}

// ScreeningSummary is one row of the screenings listing: the full
// screening plus its result count.
type ScreeningSummary struct {
	models.Screening
	ResultsCount int `json:"results_count" example:"12"`
}

// ScreeningsResponse is returned by GET /api/v1/stock-screenings.
type ScreeningsResponse struct {
	Success    bool               `json:"success" example:"true"`
	Screenings []ScreeningSummary `json:"screenings"`
}

// ScreeningResponse is returned by GET /api/v1/stock-screenings/{id}.
type ScreeningResponse struct {
	Success   bool             `json:"success" example:"true"`
	Screening models.Screening `json:"screening"`
}

// NewScreeningsResponse wraps screenings with their counts, keeping their order.
func NewScreeningsResponse(screenings []models.Screening) ScreeningsResponse {
	out := ScreeningsResponse{Success: true, Screenings: make([]ScreeningSummary, 0, len(screenings))}
	for _, s := range screenings {
		out.Screenings = append(out.Screenings, ScreeningSummary{
			Screening:    s,
			ResultsCount: s.ResultsCount(),
		})
	}
	return out
}
