//go:build !cli
// +build !cli

package main

import (
	"context"
	"math/rand"
	"strconv"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"github.com/keshavk21/Think41/api"
	graphqlApi "github.com/keshavk21/Think41/api/graphql"
	_ "github.com/keshavk21/Think41/api/status"
	"github.com/keshavk21/Think41/catalog"
	"github.com/keshavk21/Think41/config"
	"github.com/keshavk21/Think41/core/auth"
	"github.com/keshavk21/Think41/html"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()

	// Initialize Redis
	config.InitRedis()
	redisStatus := "Redis not configured, fragment caching stays in process."
	if config.RedisClient != nil {
		if err := config.RedisClient.Ping(config.RedisCtx()).Err(); err == nil {
			redisStatus = "Redis connection successful."
		} else {
			config.RedisClient = nil // Disable Redis if not reachable
			redisStatus = "Redis configured but not reachable, shared caching disabled."
		}
	}
	log.Info().Msg(redisStatus)

	cfg := config.AppConfig
	client := catalog.NewClient(catalog.Config{
		BaseURL:   cfg.APIBaseURL,
		Timeout:   cfg.HTTPTimeout,
		UserAgent: cfg.AppName,
		Debug:     cfg.Debug,
	})

	// The viewer starts regardless of backend state; pages surface errors
	// until it recovers.
	probeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if h, err := client.Health(probeCtx); err != nil {
		log.Warn().Err(err).Str("backend", client.BaseURL()).Msg("Backend not reachable at startup")
	} else {
		log.Info().Str("status", h.Status).Str("database", h.Database).Msg("Backend reachable")
	}
	cancel()

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			c.Response().Before(func() {
				duration := time.Since(start).Milliseconds()
				c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			})
			return next(c)
		}
	})

	html.RegisterViewerHTMLRoutes(e, client)
	graphqlApi.RegisterGraphQLRoutes(e, client)

	apiGroup := e.Group("/api", auth.Middleware())
	api.ApplyModules(apiGroup, client)
	api.ApplyRoutes(e, client)

	// ASCII banner on start (random font each run)
	fonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "univers", "doom", "larry3d", "puffy", "rectangles", "bigchief", "cosmic"}
	figure.NewFigure("Catalog Viewer", fonts[rand.Intn(len(fonts))], true).Print()

	log.Info().Str("port", cfg.Port).Str("backend", client.BaseURL()).Msg("Server running")
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
