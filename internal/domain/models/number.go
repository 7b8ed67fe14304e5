package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a float64 that decodes leniently from upstream JSON.
//
// Accepted inputs:
//   - JSON numbers (2500000000000).
//   - Numeric strings, optionally decorated ("2500000000000", "+2.5%", "1,200").
//   - null, empty strings and anything unparseable decode to 0.
//
// Decoding never fails, so a single malformed cell cannot poison a whole list.
type Number float64

// Float64 returns the value as a plain float64.
func (n Number) Float64() float64 { return float64(n) }

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = 0
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		*n = Number(ParseNumber(s))
		return nil
	}

	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	*n = Number(v)
	return nil
}

// ParseNumber converts a loosely formatted numeric string into a float64.
// Percent signs, a leading plus sign and thousands separators are stripped.
// Anything that still fails to parse yields 0.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimPrefix(s, "+")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
