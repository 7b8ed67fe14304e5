package dto

import "github.com/guttosm/screenpulse/internal/domain/models"

// BenchmarkComputeRequest is the body of POST /api/v1/benchmarks/compute.
type BenchmarkComputeRequest struct {
	Rows []models.BenchmarkRow `json:"rows" binding:"required,min=1,dive"`
}

// BenchmarkDatasetView is a dataset together with its paired points.
type BenchmarkDatasetView struct {
	models.BenchmarkDataset
	Points []models.BenchmarkPoint `json:"points"`
}

// BenchmarkDatasetsResponse is returned by POST /api/v1/benchmarks/datasets.
type BenchmarkDatasetsResponse struct {
	Success           bool                   `json:"success" example:"true"`
	Datasets          []BenchmarkDatasetView `json:"datasets"`
	BullishIndustries []string               `json:"bullish_industries"`
	BearishIndustries []string               `json:"bearish_industries"`
}

// NewBenchmarkDatasetsResponse attaches the paired points to each dataset.
func NewBenchmarkDatasetsResponse(datasets []models.BenchmarkDataset, bullish, bearish []string) BenchmarkDatasetsResponse {
	out := BenchmarkDatasetsResponse{
		Success:           true,
		Datasets:          make([]BenchmarkDatasetView, 0, len(datasets)),
		BullishIndustries: bullish,
		BearishIndustries: bearish,
	}
	for _, d := range datasets {
		out.Datasets = append(out.Datasets, BenchmarkDatasetView{BenchmarkDataset: d, Points: d.Points()})
	}
	return out
}

// BenchmarkComputeResponse is returned by POST /api/v1/benchmarks/compute.
type BenchmarkComputeResponse struct {
	Success bool `json:"success" example:"true"`
	models.BenchmarkPayload
}
