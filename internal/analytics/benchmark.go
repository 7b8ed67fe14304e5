package analytics

import (
	"errors"
	"fmt"
	"sort"

	"github.com/guttosm/screenpulse/internal/domain/models"
)

// ErrDatasetShape is matched by every *DatasetShapeError.
var ErrDatasetShape = errors.New("benchmark dataset shape mismatch")

// DatasetShapeError reports benchmark arrays of unequal length.
// Mismatched arrays are rejected, never truncated or padded.
type DatasetShapeError struct {
	Industry         string
	Symbols          int
	Weights          int
	NormalizedPrices int
}

func (e *DatasetShapeError) Error() string {
	return fmt.Sprintf("industry %q: symbols=%d weights=%d normalized_prices=%d: %v",
		e.Industry, e.Symbols, e.Weights, e.NormalizedPrices, ErrDatasetShape)
}

// Unwrap lets errors.Is(err, ErrDatasetShape) succeed.
func (e *DatasetShapeError) Unwrap() error { return ErrDatasetShape }

// Adapt validates one industry series and returns a chart-ready dataset.
//
// When series.Points is set it is used as-is, since paired records cannot
// be misaligned. Otherwise the three legacy arrays must have equal length;
// absent arrays count as empty. A mismatch yields a *DatasetShapeError.
//
// The returned slices never alias the input and are never nil.
func Adapt(industry string, series models.BenchmarkSeries) (models.BenchmarkDataset, error) {
	ds := models.BenchmarkDataset{Industry: industry, Benchmark: series.Benchmark}

	if len(series.Points) > 0 {
		n := len(series.Points)
		ds.Symbols = make([]string, n)
		ds.Weights = make([]float64, n)
		ds.NormalizedPrices = make([]float64, n)
		for i, p := range series.Points {
			ds.Symbols[i] = p.Symbol
			ds.Weights[i] = p.Weight
			ds.NormalizedPrices[i] = p.NormalizedPrice
		}
		return ds, nil
	}

	ns, nw, np := len(series.Symbols), len(series.Weights), len(series.NormalizedPrices)
	if ns != nw || ns != np {
		return models.BenchmarkDataset{}, &DatasetShapeError{
			Industry:         industry,
			Symbols:          ns,
			Weights:          nw,
			NormalizedPrices: np,
		}
	}

	ds.Symbols = append(make([]string, 0, ns), series.Symbols...)
	ds.Weights = append(make([]float64, 0, ns), series.Weights...)
	ds.NormalizedPrices = append(make([]float64, 0, ns), series.NormalizedPrices...)
	return ds, nil
}

// AdaptAll adapts every industry of a payload, ordered by industry name.
//
// Industries that fail validation are left out of the returned slice and
// their errors are joined into the returned error, so callers can either
// reject the payload outright or render the valid part.
func AdaptAll(payload models.BenchmarkPayload) ([]models.BenchmarkDataset, error) {
	names := make([]string, 0, len(payload.IndustryBenchmarks))
	for name := range payload.IndustryBenchmarks {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]models.BenchmarkDataset, 0, len(names))
	var errs []error
	for _, name := range names {
		ds, err := Adapt(name, payload.IndustryBenchmarks[name])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, ds)
	}
	return out, errors.Join(errs...)
}
