package status

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/keshavk21/Think41/api"
	"github.com/keshavk21/Think41/catalog"
	"github.com/keshavk21/Think41/config"
)

func init() {
	api.RegisterModule(RegisterStatusRoutes)
}

var startedAt = time.Now()

// RegisterStatusRoutes sets up viewer and backend status endpoints.
func RegisterStatusRoutes(apiGroup *echo.Group, client *catalog.Client) {
	g := apiGroup.Group("/status")

	// GET /api/status - viewer process status, no backend round trip
	g.GET("", func(c echo.Context) error {
		cfg := config.AppConfig
		return c.JSON(http.StatusOK, echo.Map{
			"app":            cfg.AppName,
			"env":            cfg.Env,
			"uptime_seconds": int64(time.Since(startedAt).Seconds()),
			"backend":        client.BaseURL(),
			"page_size":      cfg.PageSize,
			"redis":          config.RedisClient != nil,
		})
	})

	// GET /api/status/backend - backend health probe with latency
	g.GET("/backend", func(c echo.Context) error {
		start := time.Now()
		h, err := client.Health(c.Request().Context())
		latency := time.Since(start).Milliseconds()
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(latency, 10))

		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{
				"status":     "ERROR",
				"error":      catalog.UserMessage(err),
				"latency_ms": latency,
			})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"status":     h.Status,
			"database":   h.Database,
			"latency_ms": latency,
		})
	})

	// GET /api/status/summary - catalog shape at a glance. Parallel fetch using errgroup.
	g.GET("/summary", func(c echo.Context) error {
		start := time.Now()

		var (
			departments []catalog.Department
			page        catalog.ProductPage
			health      catalog.Health
		)

		eg, ctx := errgroup.WithContext(c.Request().Context())
		eg.Go(func() error {
			var err error
			departments, err = client.Departments(ctx)
			return err
		})
		eg.Go(func() error {
			var err error
			page, err = client.Products(ctx, 1, 1)
			return err
		})
		eg.Go(func() error {
			var err error
			health, err = client.Health(ctx)
			return err
		})
		err := eg.Wait()

		duration := time.Since(start).Milliseconds()
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))

		if err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{
				"error":               catalog.UserMessage(err),
				"request_duration_ms": duration,
			})
		}

		return c.JSON(http.StatusOK, echo.Map{
			"departments":         len(departments),
			"total_products":      page.Pagination.TotalProducts,
			"backend_status":      health.Status,
			"request_duration_ms": duration,
		})
	})
}
