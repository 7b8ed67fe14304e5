package models

import "time"

// Screening is a saved, named snapshot of a screening run.
// The analytics layer only reads it; screenings are never written here.
type Screening struct {
	ID          int64            `json:"id" example:"1"`
	Name        string           `json:"name" example:"High Growth Stocks"`
	Criteria    map[string]any   `json:"criteria_data"`
	ResultsData ScreeningResults `json:"results_data"`
	CreatedAt   time.Time        `json:"created_at"`
}

// ScreeningResults is the nested payload stored with a screening.
type ScreeningResults struct {
	Stocks []StockRecord `json:"stocks"`
}

// ResultsCount returns the number of stocks captured by the screening.
func (s Screening) ResultsCount() int {
	return len(s.ResultsData.Stocks)
}
