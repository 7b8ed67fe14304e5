package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/screenpulse/internal/metrics"
	"github.com/guttosm/screenpulse/internal/middleware"
)

// RouterOptions tunes the global middlewares.
type RouterOptions struct {
	RateLimitPerMinute int
	RequestTimeout     time.Duration
	Metrics            *metrics.Metrics
}

// NewRouter creates a Gin engine with every middleware and route configured.
//
// Health and readiness endpoints (/healthz, /readyz) are registered by
// app.InitializeApp since they depend on the database handle.
func NewRouter(handler *Handler, opts RouterOptions) *gin.Engine {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}

	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Metrics(opts.Metrics),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(opts.RateLimitPerMinute, time.Minute),
	)

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), opts.RequestTimeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Ops ──────────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1")
	{
		v1.GET("/dashboard", handler.GetDashboard)
		v1.GET("/dashboard/snapshot", handler.GetSnapshot)
		v1.GET("/entry-zone-stocks", handler.ListEntryZoneStocks)
		v1.GET("/breakout-stocks", handler.ListBreakoutStocks)
		v1.GET("/stock-screenings", handler.ListScreenings)
		v1.GET("/stock-screenings/:id", handler.GetScreening)
		v1.POST("/benchmarks/datasets", handler.PostBenchmarkDatasets)
		v1.POST("/benchmarks/compute", handler.PostBenchmarkCompute)
	}

	return router
}
