package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/guttosm/screenpulse/internal/domain/models"
)

func sampleReport() Report {
	d := models.Dashboard{
		Stats: models.SummaryStats{TotalCount: 2, EntryCount: 1, BreakoutCount: 1, AverageMarketCap: 1.5e9, AverageVolume: 2500},
		Industries: []models.IndustryCount{
			{Name: "Technology", Count: 2},
		},
		MarketCaps: []models.MarketCapBucket{
			{Key: "small", Name: "Small (<$2B)", Count: 2},
			{Key: "mid", Name: "Mid ($2B-$10B)"},
			{Key: "large", Name: "Large ($10B-$200B)"},
			{Key: "mega", Name: "Mega (>$200B)"},
		},
		GeneratedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	ds := []models.BenchmarkDataset{{
		Industry: "Technology", Symbols: []string{"AAPL"}, Weights: []float64{1}, NormalizedPrices: []float64{1.02},
	}}
	payload := &models.BenchmarkPayload{BullishIndustries: []string{"Technology"}, BearishIndustries: []string{}}
	return New(d, ds, payload)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{" yml ", FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Fatalf("ParseFormat(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleReport(), FormatJSON); err != nil {
		t.Fatalf("write: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	dash, ok := got["dashboard"].(map[string]any)
	if !ok {
		t.Fatalf("missing dashboard: %v", got)
	}
	if dash["average_market_cap_formatted"] != "$1.50B" {
		t.Fatalf("unexpected formatted cap: %v", dash["average_market_cap_formatted"])
	}
	if dash["average_volume_formatted"] != "2.50K" {
		t.Fatalf("unexpected formatted volume: %v", dash["average_volume_formatted"])
	}
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleReport(), FormatYAML); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"dashboard:", "total_count: 2", "normalized_prices:", "bullish_industries:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("yaml output missing %q:\n%s", want, out)
		}
	}

	var back struct {
		Dashboard struct {
			Stats struct {
				TotalCount int `yaml:"total_count"`
			} `yaml:"stats"`
		} `yaml:"dashboard"`
		Benchmarks []struct {
			Industry string `yaml:"industry"`
		} `yaml:"benchmarks"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("yaml does not round-trip: %v", err)
	}
	if back.Dashboard.Stats.TotalCount != 2 || len(back.Benchmarks) != 1 || back.Benchmarks[0].Industry != "Technology" {
		t.Fatalf("unexpected decoded report: %+v", back)
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, sampleReport(), Format("csv")); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
