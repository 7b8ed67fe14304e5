package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/screenpulse/internal/analytics"
	"github.com/guttosm/screenpulse/internal/domain/dto"
	"github.com/guttosm/screenpulse/internal/domain/models"
	"github.com/guttosm/screenpulse/internal/middleware"
	"github.com/guttosm/screenpulse/internal/service"
)

// errScreeningNotFound is reported in the error field of a 404 screening lookup.
var errScreeningNotFound = errors.New("Screening not found")

// SnapshotSource exposes the latest precomputed dashboard.
type SnapshotSource interface {
	Latest() (*models.Dashboard, bool)
}

// Handler serves the dashboard, watchlist, screening and benchmark endpoints.
//
// Responsibilities:
//   - Validate path parameters and request bodies
//   - Delegate to the dashboard and benchmark services
//   - Map results and failures to response DTOs and status codes
type Handler struct {
	dashboard  service.DashboardService
	benchmarks service.BenchmarkService
	snapshots  SnapshotSource
}

// NewHandler constructs a Handler. snapshots may be nil when the
// refresher is disabled.
func NewHandler(dashboard service.DashboardService, benchmarks service.BenchmarkService, snapshots SnapshotSource) *Handler {
	return &Handler{dashboard: dashboard, benchmarks: benchmarks, snapshots: snapshots}
}

// GetDashboard godoc
// @Summary      Dashboard analytics
// @Description  Summary counters, top-10 industries and market-cap histogram over the entry-zone and breakout lists
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse  "Success"
// @Failure      500  {object}  dto.ErrorResponse      "Upstream failure"
// @Router       /api/v1/dashboard [get]
func (h *Handler) GetDashboard(c *gin.Context) {
	d, err := h.dashboard.GetDashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to build dashboard", err))
		return
	}
	c.JSON(http.StatusOK, dto.NewDashboardResponse(*d))
}

// GetSnapshot godoc
// @Summary      Latest dashboard snapshot
// @Description  Dashboard precomputed by the scheduled refresher
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse  "Success"
// @Failure      404  {object}  dto.ErrorResponse      "No snapshot yet"
// @Router       /api/v1/dashboard/snapshot [get]
func (h *Handler) GetSnapshot(c *gin.Context) {
	if h.snapshots == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("snapshots are disabled", nil))
		return
	}
	d, ok := h.snapshots.Latest()
	if !ok {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no snapshot available yet", nil))
		return
	}
	c.JSON(http.StatusOK, dto.NewDashboardResponse(*d))
}

// ListEntryZoneStocks godoc
// @Summary      Entry-zone watchlist
// @Tags         stocks
// @Produce      json
// @Success      200  {object}  dto.StocksResponse  "Success"
// @Failure      500  {object}  dto.ErrorResponse   "Internal Error"
// @Router       /api/v1/entry-zone-stocks [get]
func (h *Handler) ListEntryZoneStocks(c *gin.Context) {
	h.listStocks(c, models.CategoryEntryZone)
}

// ListBreakoutStocks godoc
// @Summary      Breakout watchlist
// @Tags         stocks
// @Produce      json
// @Success      200  {object}  dto.StocksResponse  "Success"
// @Failure      500  {object}  dto.ErrorResponse   "Internal Error"
// @Router       /api/v1/breakout-stocks [get]
func (h *Handler) ListBreakoutStocks(c *gin.Context) {
	h.listStocks(c, models.CategoryBreakout)
}

func (h *Handler) listStocks(c *gin.Context, category models.Category) {
	stocks, err := h.dashboard.ListStocks(c.Request.Context(), category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch "+string(category)+" stocks", err))
		return
	}
	if stocks == nil {
		stocks = []models.StockRecord{}
	}
	c.JSON(http.StatusOK, dto.StocksResponse{Success: true, Stocks: stocks})
}

// ListScreenings godoc
// @Summary      Saved screenings
// @Description  Saved screenings, newest first, with their result counts
// @Tags         screenings
// @Produce      json
// @Success      200  {object}  dto.ScreeningsResponse  "Success"
// @Failure      500  {object}  dto.ErrorResponse       "Internal Error"
// @Router       /api/v1/stock-screenings [get]
func (h *Handler) ListScreenings(c *gin.Context) {
	screenings, err := h.dashboard.ListScreenings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch screenings", err))
		return
	}
	c.JSON(http.StatusOK, dto.NewScreeningsResponse(screenings))
}

// GetScreening godoc
// @Summary      Saved screening by id
// @Tags         screenings
// @Produce      json
// @Param        id   path      int  true  "Screening id" example(1)
// @Success      200  {object}  dto.ScreeningResponse  "Success"
// @Failure      400  {object}  dto.ErrorResponse      "Bad Request"
// @Failure      404  {object}  dto.ErrorResponse      "Not Found"
// @Failure      500  {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/v1/stock-screenings/{id} [get]
func (h *Handler) GetScreening(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("id must be a positive integer", err))
		return
	}

	s, err := h.dashboard.GetScreening(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch screening", err))
		return
	}
	if s == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Screening not found", errScreeningNotFound))
		return
	}
	c.JSON(http.StatusOK, dto.ScreeningResponse{Success: true, Screening: *s})
}

// PostBenchmarkDatasets godoc
// @Summary      Adapt benchmark payload
// @Description  Validates every industry series and returns chart-ready datasets. Any length mismatch rejects the whole payload.
// @Tags         benchmarks
// @Accept       json
// @Produce      json
// @Param        payload  body      models.BenchmarkPayload        true  "Industry benchmark payload"
// @Success      200      {object}  dto.BenchmarkDatasetsResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse              "Bad Request"
// @Failure      422      {object}  dto.ErrorResponse              "Dataset shape mismatch"
// @Router       /api/v1/benchmarks/datasets [post]
func (h *Handler) PostBenchmarkDatasets(c *gin.Context) {
	var payload models.BenchmarkPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid benchmark payload", err))
		return
	}

	datasets, err := h.benchmarks.Datasets(payload)
	if err != nil {
		if errors.Is(err, analytics.ErrDatasetShape) {
			middleware.AbortWithError(c, http.StatusUnprocessableEntity, "benchmark dataset shape mismatch", err)
			return
		}
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to adapt benchmarks", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBenchmarkDatasetsResponse(datasets,
		orEmpty(payload.BullishIndustries), orEmpty(payload.BearishIndustries)))
}

// PostBenchmarkCompute godoc
// @Summary      Compute industry benchmarks
// @Description  Derives weights, normalized prices, benchmarks and MRS from parsed rows
// @Tags         benchmarks
// @Accept       json
// @Produce      json
// @Param        request  body      dto.BenchmarkComputeRequest   true  "Parsed benchmark rows"
// @Success      200      {object}  dto.BenchmarkComputeResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse             "Bad Request"
// @Router       /api/v1/benchmarks/compute [post]
func (h *Handler) PostBenchmarkCompute(c *gin.Context) {
	var req dto.BenchmarkComputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid benchmark rows", err))
		return
	}
	c.JSON(http.StatusOK, dto.BenchmarkComputeResponse{
		Success:          true,
		BenchmarkPayload: h.benchmarks.Compute(req.Rows),
	})
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
