package models

import "encoding/json"

// UnknownIndustry is the group name used for records without an industry.
const UnknownIndustry = "Unknown"

// Category tags the screening bucket a record was listed under.
type Category string

const (
	// CategoryEntryZone marks stocks trading inside their entry zone.
	CategoryEntryZone Category = "entry"
	// CategoryBreakout marks stocks breaking out of a base.
	CategoryBreakout Category = "breakout"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c == CategoryEntryZone || c == CategoryBreakout
}

// StockRecord represents one screened security as delivered by the
// watchlist collaborator.
//
// Fields:
//   - Symbol: ticker, unique within a single list.
//   - Industry: optional; empty is grouped under UnknownIndustry.
//   - MarketCap: optional; missing or invalid decodes to 0.
//   - LatestVolume: optional; missing decodes to 0.
//   - MarketCapFormatted: display string, passed through untouched.
type StockRecord struct {
	Symbol             string `json:"symbol" example:"AAPL"`
	Industry           string `json:"industry,omitempty" example:"Technology"`
	MarketCap          Number `json:"market_cap" swaggertype:"number" example:"2500000000000"`
	LatestVolume       Number `json:"latest_volume" swaggertype:"number" example:"100000000"`
	MarketCapFormatted string `json:"total_market_cap_formatted,omitempty" example:"$2.5T"`
}

// UnmarshalJSON accepts both "total_market_cap_formatted" and the older
// "market_cap_formatted" key for the display string.
func (s *StockRecord) UnmarshalJSON(data []byte) error {
	type plain StockRecord
	var aux struct {
		plain
		LegacyFormatted string `json:"market_cap_formatted"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*s = StockRecord(aux.plain)
	if s.MarketCapFormatted == "" {
		s.MarketCapFormatted = aux.LegacyFormatted
	}
	return nil
}
