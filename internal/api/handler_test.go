package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/screenpulse/internal/analytics"
	"github.com/guttosm/screenpulse/internal/domain/dto"
	"github.com/guttosm/screenpulse/internal/domain/models"
	"github.com/guttosm/screenpulse/internal/service"
)

type mockDashboardService struct {
	dashboard  *models.Dashboard
	stocks     map[models.Category][]models.StockRecord
	screenings []models.Screening
	screening  *models.Screening
	err        error
	gotID      int64
}

func (m *mockDashboardService) GetDashboard(_ context.Context) (*models.Dashboard, error) {
	return m.dashboard, m.err
}

func (m *mockDashboardService) ListStocks(_ context.Context, c models.Category) ([]models.StockRecord, error) {
	return m.stocks[c], m.err
}

func (m *mockDashboardService) ListScreenings(_ context.Context) ([]models.Screening, error) {
	return m.screenings, m.err
}

func (m *mockDashboardService) GetScreening(_ context.Context, id int64) (*models.Screening, error) {
	m.gotID = id
	return m.screening, m.err
}

var _ service.DashboardService = (*mockDashboardService)(nil)

type stubSnapshots struct{ d *models.Dashboard }

func (s stubSnapshots) Latest() (*models.Dashboard, bool) { return s.d, s.d != nil }

func setupRouterWithMock(d service.DashboardService, snaps SnapshotSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(d, service.NewBenchmarkService(nil), snaps)
	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.GET("/dashboard", h.GetDashboard)
	v1.GET("/dashboard/snapshot", h.GetSnapshot)
	v1.GET("/entry-zone-stocks", h.ListEntryZoneStocks)
	v1.GET("/breakout-stocks", h.ListBreakoutStocks)
	v1.GET("/stock-screenings", h.ListScreenings)
	v1.GET("/stock-screenings/:id", h.GetScreening)
	v1.POST("/benchmarks/datasets", h.PostBenchmarkDatasets)
	v1.POST("/benchmarks/compute", h.PostBenchmarkCompute)
	return r
}

func sampleDashboard() *models.Dashboard {
	return &models.Dashboard{
		Stats:      models.SummaryStats{TotalCount: 2, EntryCount: 1, BreakoutCount: 1, AverageMarketCap: 1.25e12, AverageVolume: 5e7},
		Industries: []models.IndustryCount{{Name: "Technology", Count: 2}},
		MarketCaps: []models.MarketCapBucket{
			{Key: "small", Name: "Small (<$2B)"},
			{Key: "mid", Name: "Mid ($2B-$10B)"},
			{Key: "large", Name: "Large ($10B-$200B)"},
			{Key: "mega", Name: "Mega (>$200B)", Count: 2},
		},
		GeneratedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestGetDashboard(t *testing.T) {
	cases := []struct {
		name   string
		svc    *mockDashboardService
		path   string
		snaps  SnapshotSource
		status int
		assert func(t *testing.T, body []byte)
	}{
		{
			name:   "success",
			svc:    &mockDashboardService{dashboard: sampleDashboard()},
			path:   "/api/v1/dashboard",
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out dto.DashboardResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if !out.Success || out.Stats.TotalCount != 2 || out.AverageMarketCapFormatted != "$1.25T" || out.AverageVolumeFormatted != "50.00M" {
					t.Fatalf("unexpected body: %+v", out)
				}
				if len(out.MarketCaps) != 4 || out.MarketCapsEmpty {
					t.Fatalf("unexpected histogram: %+v", out.MarketCaps)
				}
			},
		},
		{
			name:   "upstream failure is 500 without partial data",
			svc:    &mockDashboardService{err: errors.New("db down")},
			path:   "/api/v1/dashboard",
			status: http.StatusInternalServerError,
			assert: func(t *testing.T, body []byte) {
				var out map[string]any
				_ = json.Unmarshal(body, &out)
				if _, ok := out["stats"]; ok {
					t.Fatalf("partial dashboard leaked: %s", body)
				}
			},
		},
		{
			name:   "snapshot disabled",
			svc:    &mockDashboardService{},
			path:   "/api/v1/dashboard/snapshot",
			status: http.StatusNotFound,
		},
		{
			name:   "snapshot not ready",
			svc:    &mockDashboardService{},
			snaps:  stubSnapshots{},
			path:   "/api/v1/dashboard/snapshot",
			status: http.StatusNotFound,
		},
		{
			name:   "snapshot ready",
			svc:    &mockDashboardService{},
			snaps:  stubSnapshots{d: sampleDashboard()},
			path:   "/api/v1/dashboard/snapshot",
			status: http.StatusOK,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc, tc.snaps)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d body=%s", tc.status, w.Code, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}

func TestListStocks(t *testing.T) {
	svc := &mockDashboardService{stocks: map[models.Category][]models.StockRecord{
		models.CategoryEntryZone: {{Symbol: "AAPL", Industry: "Technology", MarketCap: 2.5e12}},
	}}
	r := setupRouterWithMock(svc, nil)

	cases := []struct {
		path string
		want int
	}{
		{"/api/v1/entry-zone-stocks", 1},
		{"/api/v1/breakout-stocks", 0},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s status=%d", tc.path, w.Code)
		}
		var out struct {
			Success bool              `json:"success"`
			Stocks  []json.RawMessage `json:"stocks"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if !out.Success || out.Stocks == nil || len(out.Stocks) != tc.want {
			t.Fatalf("%s unexpected body: %s", tc.path, w.Body.String())
		}
	}

	failing := setupRouterWithMock(&mockDashboardService{err: errors.New("timeout")}, nil)
	w := httptest.NewRecorder()
	failing.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/breakout-stocks", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestScreenings(t *testing.T) {
	created := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	found := &models.Screening{ID: 7, Name: "High Growth", CreatedAt: created,
		ResultsData: models.ScreeningResults{Stocks: []models.StockRecord{{Symbol: "A"}, {Symbol: "B"}}}}

	cases := []struct {
		name   string
		svc    *mockDashboardService
		path   string
		status int
		assert func(t *testing.T, body []byte)
	}{
		{
			name:   "list with results count",
			svc:    &mockDashboardService{screenings: []models.Screening{*found}},
			path:   "/api/v1/stock-screenings",
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out dto.ScreeningsResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if len(out.Screenings) != 1 || out.Screenings[0].ResultsCount != 2 || !out.Screenings[0].CreatedAt.Equal(created) {
					t.Fatalf("unexpected body: %+v", out)
				}

				var raw struct {
					Screenings []struct {
						ID          int64           `json:"id"`
						Criteria    json.RawMessage `json:"criteria_data"`
						ResultsData *struct {
							Stocks []map[string]any `json:"stocks"`
						} `json:"results_data"`
					} `json:"screenings"`
				}
				if err := json.Unmarshal(body, &raw); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				item := raw.Screenings[0]
				if item.ID != 7 || item.ResultsData == nil || len(item.ResultsData.Stocks) != 2 {
					t.Fatalf("list item must carry results_data.stocks: %s", body)
				}
				if item.Criteria == nil {
					t.Fatalf("list item must carry criteria_data: %s", body)
				}
			},
		},
		{name: "list failure", svc: &mockDashboardService{err: errors.New("down")}, path: "/api/v1/stock-screenings", status: http.StatusInternalServerError},
		{name: "invalid id", svc: &mockDashboardService{}, path: "/api/v1/stock-screenings/abc", status: http.StatusBadRequest},
		{name: "non-positive id", svc: &mockDashboardService{}, path: "/api/v1/stock-screenings/0", status: http.StatusBadRequest},
		{
			name:   "not found",
			svc:    &mockDashboardService{},
			path:   "/api/v1/stock-screenings/99",
			status: http.StatusNotFound,
			assert: func(t *testing.T, body []byte) {
				var out dto.ErrorResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Success || out.Message != "Screening not found" || out.ErrorDetails != "Screening not found" {
					t.Fatalf("unexpected body: %+v", out)
				}
			},
		},
		{name: "lookup failure", svc: &mockDashboardService{err: errors.New("down")}, path: "/api/v1/stock-screenings/7", status: http.StatusInternalServerError},
		{
			name:   "found",
			svc:    &mockDashboardService{screening: found},
			path:   "/api/v1/stock-screenings/7",
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out dto.ScreeningResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if !out.Success || out.Screening.ID != 7 || out.Screening.Name != "High Growth" {
					t.Fatalf("unexpected body: %+v", out)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d body=%s", tc.status, w.Code, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}

func TestPostBenchmarkDatasets(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		status int
		assert func(t *testing.T, body []byte)
	}{
		{
			name: "valid legacy arrays",
			body: `{"industry_benchmarks":{"Technology":{"benchmark":1.02,"symbols":["AAPL","MSFT"],"weights":[0.6,0.4],"normalized_prices":[1.01,1.03]}},
				"bullish_industries":["Technology"]}`,
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out dto.BenchmarkDatasetsResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if len(out.Datasets) != 1 || out.Datasets[0].Len() != 2 || out.Datasets[0].Industry != "Technology" {
					t.Fatalf("unexpected datasets: %+v", out.Datasets)
				}
				pts := out.Datasets[0].Points
				if len(pts) != 2 || pts[1].Symbol != "MSFT" || pts[1].Weight != 0.4 || pts[1].NormalizedPrice != 1.03 {
					t.Fatalf("unexpected points: %+v", pts)
				}
				if out.BearishIndustries == nil || len(out.BullishIndustries) != 1 {
					t.Fatalf("unexpected industries: %+v", out)
				}
			},
		},
		{
			name:   "shape mismatch is 422",
			body:   `{"industry_benchmarks":{"Technology":{"symbols":["AAPL","MSFT"],"weights":[0.6],"normalized_prices":[1.01,1.03]}}}`,
			status: http.StatusUnprocessableEntity,
			assert: func(t *testing.T, body []byte) {
				var out dto.ErrorResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if !bytes.Contains([]byte(out.ErrorDetails), []byte(analytics.ErrDatasetShape.Error())) {
					t.Fatalf("unexpected error details: %q", out.ErrorDetails)
				}
			},
		},
		{name: "malformed json", body: `{"industry_benchmarks":`, status: http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(&mockDashboardService{}, nil)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/benchmarks/datasets", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d body=%s", tc.status, w.Code, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}

func TestPostBenchmarkCompute(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		status int
		assert func(t *testing.T, body []byte)
	}{
		{
			name: "computes payload",
			body: `{"rows":[
				{"symbol":"AAPL","industry":"Technology","market_cap":"3000","price_vs_sma_pct":10,"weekly_growth":0.01},
				{"symbol":"MSFT","industry":"Technology","market_cap":1000,"price_vs_sma_pct":-5,"weekly_growth":0}
			]}`,
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out dto.BenchmarkComputeResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				tech, ok := out.IndustryBenchmarks["Technology"]
				if !out.Success || !ok || len(tech.Symbols) != 2 {
					t.Fatalf("unexpected payload: %+v", out)
				}
				if len(out.BullishIndustries) != 1 || out.BullishIndustries[0] != "Technology" {
					t.Fatalf("unexpected bullish: %+v", out.BullishIndustries)
				}
			},
		},
		{name: "empty rows", body: `{"rows":[]}`, status: http.StatusBadRequest},
		{name: "missing symbol", body: `{"rows":[{"industry":"Technology"}]}`, status: http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(&mockDashboardService{}, nil)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/benchmarks/compute", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d body=%s", tc.status, w.Code, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}
