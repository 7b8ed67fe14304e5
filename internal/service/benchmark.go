package service

import (
	"errors"

	"github.com/guttosm/screenpulse/internal/analytics"
	"github.com/guttosm/screenpulse/internal/domain/models"
	"github.com/guttosm/screenpulse/internal/logger"
	"github.com/guttosm/screenpulse/internal/metrics"
)

// BenchmarkService adapts and computes industry benchmarks.
type BenchmarkService interface {
	// Datasets validates every industry of payload. Any shape mismatch
	// rejects the whole payload with an error matching analytics.ErrDatasetShape.
	Datasets(payload models.BenchmarkPayload) ([]models.BenchmarkDataset, error)
	// Compute derives a benchmark payload from parsed rows.
	Compute(rows []models.BenchmarkRow) models.BenchmarkPayload
}

type benchmarkService struct {
	metrics *metrics.Metrics
}

// NewBenchmarkService wires a BenchmarkService. m may be nil.
func NewBenchmarkService(m *metrics.Metrics) BenchmarkService {
	return &benchmarkService{metrics: m}
}

func (s *benchmarkService) Datasets(payload models.BenchmarkPayload) ([]models.BenchmarkDataset, error) {
	datasets, err := analytics.AdaptAll(payload)
	if err != nil {
		rejected := countShapeErrors(err)
		s.metrics.ObserveShapeRejections(rejected)
		logger.L().Warn().Err(err).Int("rejected", rejected).Msg("benchmark payload rejected")
		return nil, err
	}
	return datasets, nil
}

func (s *benchmarkService) Compute(rows []models.BenchmarkRow) models.BenchmarkPayload {
	out := analytics.ComputeBenchmarks(rows)
	logger.L().Debug().
		Int("rows", len(rows)).
		Int("industries", len(out.IndustryBenchmarks)).
		Msg("benchmarks computed")
	return out
}

// countShapeErrors counts the shape errors inside a (possibly joined) error.
func countShapeErrors(err error) int {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		n := 0
		for _, e := range joined.Unwrap() {
			n += countShapeErrors(e)
		}
		return n
	}
	if errors.Is(err, analytics.ErrDatasetShape) {
		return 1
	}
	return 0
}
