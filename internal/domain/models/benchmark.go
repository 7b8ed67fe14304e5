package models

// BenchmarkSeries is the per-industry block of a benchmark payload.
//
// Symbols, Weights and NormalizedPrices are positionally paired: index i
// of each slice describes the same symbol. Points, when present, carries
// the same data already paired and takes precedence over the slices.
type BenchmarkSeries struct {
	Benchmark        *float64         `json:"benchmark,omitempty" example:"1.02"`
	Symbols          []string         `json:"symbols"`
	Weights          []float64        `json:"weights"`
	NormalizedPrices []float64        `json:"normalized_prices"`
	Points           []BenchmarkPoint `json:"points,omitempty"`
}

// BenchmarkPoint is one symbol of an industry benchmark.
type BenchmarkPoint struct {
	Symbol          string  `json:"symbol" example:"AAPL"`
	Weight          float64 `json:"weight" example:"0.5"`
	NormalizedPrice float64 `json:"normalized_price" example:"1.02"`
}

// BenchmarkPayload is the industry-benchmark analysis output.
type BenchmarkPayload struct {
	IndustryBenchmarks map[string]BenchmarkSeries `json:"industry_benchmarks"`
	MRS                map[string]*float64        `json:"mrs,omitempty"`
	BullishIndustries  []string                   `json:"bullish_industries"`
	BearishIndustries  []string                   `json:"bearish_industries"`
}

// BenchmarkDataset is a validated, chart-ready industry benchmark.
//
// The three slices always have equal length. NormalizedPrices is the
// primary series keyed by Symbols; Weights is the secondary series.
type BenchmarkDataset struct {
	Industry         string    `json:"industry" example:"Technology"`
	Benchmark        *float64  `json:"benchmark,omitempty" example:"1.02"`
	Symbols          []string  `json:"symbols"`
	Weights          []float64 `json:"weights"`
	NormalizedPrices []float64 `json:"normalized_prices"`
}

// Len returns the number of paired entries.
func (d BenchmarkDataset) Len() int { return len(d.Symbols) }

// Points returns the dataset as a sequence of paired records.
func (d BenchmarkDataset) Points() []BenchmarkPoint {
	out := make([]BenchmarkPoint, len(d.Symbols))
	for i := range d.Symbols {
		out[i] = BenchmarkPoint{
			Symbol:          d.Symbols[i],
			Weight:          d.Weights[i],
			NormalizedPrice: d.NormalizedPrices[i],
		}
	}
	return out
}

// BenchmarkRow is one already-parsed row of an industry benchmark upload.
type BenchmarkRow struct {
	Symbol        string `json:"symbol" binding:"required" example:"AAPL"`
	Industry      string `json:"industry" example:"Technology"`
	MarketCap     Number `json:"market_cap" swaggertype:"number" example:"2500000000000"`
	PriceVsSMAPct Number `json:"price_vs_sma_pct" swaggertype:"number" example:"10"`
	WeeklyGrowth  Number `json:"weekly_growth" swaggertype:"number" example:"0.025"`
}
