// Package report renders a dashboard and its benchmark datasets for the
// command-line report mode.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/guttosm/screenpulse/internal/domain/dto"
	"github.com/guttosm/screenpulse/internal/domain/models"
)

// Format selects the output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown report format %q (want json or yaml)", s)
	}
}

// Report is the document written by report mode.
type Report struct {
	Dashboard         dto.DashboardResponse     `json:"dashboard"`
	Benchmarks        []models.BenchmarkDataset `json:"benchmarks,omitempty"`
	BullishIndustries []string                  `json:"bullish_industries,omitempty"`
	BearishIndustries []string                  `json:"bearish_industries,omitempty"`
}

// New assembles a report. payload may be nil when no benchmarks were loaded.
func New(d models.Dashboard, datasets []models.BenchmarkDataset, payload *models.BenchmarkPayload) Report {
	r := Report{
		Dashboard:  dto.NewDashboardResponse(d),
		Benchmarks: datasets,
	}
	if payload != nil {
		r.BullishIndustries = payload.BullishIndustries
		r.BearishIndustries = payload.BearishIndustries
	}
	return r
}

// Write encodes r to w.
//
// YAML output is produced from the JSON encoding so both formats share
// the same snake_case keys and field order.
func Write(w io.Writer, r Report, f Format) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	switch f {
	case FormatJSON:
		_, err = w.Write(append(data, '\n'))
		return err
	case FormatYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return fmt.Errorf("convert report to yaml: %w", err)
		}
		clearStyle(&node)
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&node); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown report format %q", f)
	}
}

// clearStyle drops the flow and quoting styles inherited from JSON so the
// output reads as block YAML.
func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}
