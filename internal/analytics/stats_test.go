package analytics

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/guttosm/screenpulse/internal/domain/models"
)

func rec(symbol, industry string, marketCap, volume float64) models.StockRecord {
	return models.StockRecord{
		Symbol:       symbol,
		Industry:     industry,
		MarketCap:    models.Number(marketCap),
		LatestVolume: models.Number(volume),
	}
}

func TestAggregate_TableDriven(t *testing.T) {
	entry := []models.StockRecord{
		rec("AAPL", "Technology", 2.5e12, 100e6),
		rec("AMZN", "E-Commerce", 1.5e12, 60e6),
	}
	breakout := []models.StockRecord{
		rec("AAPL", "Technology", 2.5e12, 100e6),
		rec("SHOP", "E-Commerce", 90e9, 25e6),
	}

	cases := []struct {
		name     string
		all      []models.StockRecord
		entry    []models.StockRecord
		breakout []models.StockRecord
		want     models.SummaryStats
	}{
		{
			name: "empty input",
			want: models.SummaryStats{},
		},
		{
			name:     "union double counts shared symbols",
			all:      Union(entry, breakout),
			entry:    entry,
			breakout: breakout,
			want: models.SummaryStats{
				TotalCount:       4,
				EntryCount:       2,
				BreakoutCount:    2,
				AverageMarketCap: (2.5e12 + 1.5e12 + 2.5e12 + 90e9) / 4,
				AverageVolume:    (100e6 + 60e6 + 100e6 + 25e6) / 4,
			},
		},
		{
			name:  "counts are taken as given",
			all:   entry,
			entry: entry,
			want: models.SummaryStats{
				TotalCount:       2,
				EntryCount:       2,
				AverageMarketCap: 2e12,
				AverageVolume:    80e6,
			},
		},
		{
			name: "invalid values coerce to zero",
			all: []models.StockRecord{
				rec("X", "", -5, math.Inf(1)),
				rec("Y", "", 100, 10),
			},
			want: models.SummaryStats{TotalCount: 2, AverageMarketCap: 50, AverageVolume: 5},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Aggregate(tc.all, tc.entry, tc.breakout)
			if got != tc.want {
				t.Fatalf("want %+v got %+v", tc.want, got)
			}
		})
	}
}

func TestAggregate_MissingFieldsFromJSON(t *testing.T) {
	var stocks []models.StockRecord
	raw := `[{"symbol":"A","market_cap":"300"},{"symbol":"B","latest_volume":null},{"symbol":"C","market_cap":"oops","latest_volume":"9"}]`
	if err := json.Unmarshal([]byte(raw), &stocks); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := Aggregate(stocks, stocks, nil)
	if got.AverageMarketCap != 100 || got.AverageVolume != 3 {
		t.Fatalf("unexpected averages: %+v", got)
	}
}

func TestUnion(t *testing.T) {
	a := []models.StockRecord{rec("A", "", 0, 0)}
	b := []models.StockRecord{rec("A", "", 0, 0), rec("B", "", 0, 0)}
	out := Union(a, nil, b)
	if len(out) != 3 || out[0].Symbol != "A" || out[2].Symbol != "B" {
		t.Fatalf("unexpected union: %+v", out)
	}
	if u := Union(); len(u) != 0 || u == nil {
		t.Fatalf("empty union must be a non-nil empty slice")
	}
}
