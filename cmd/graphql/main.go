// Standalone GraphQL server — run with: go run ./cmd/graphql
package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/keshavk21/Think41/api"
	graphqlApi "github.com/keshavk21/Think41/api/graphql"
	"github.com/keshavk21/Think41/catalog"
	"github.com/keshavk21/Think41/config"
)

func main() {
	_ = godotenv.Load()
	config.LoadAppConfig()

	cfg := config.AppConfig
	client := catalog.NewClient(catalog.Config{
		BaseURL:   cfg.APIBaseURL,
		Timeout:   cfg.HTTPTimeout,
		UserAgent: cfg.AppName + "-graphql",
		Debug:     cfg.Debug,
	})

	e := echo.New()
	graphqlApi.RegisterGraphQLRoutes(e, client)
	api.ApplyRoutes(e, client)

	// ASCII banner on start (random font each run)
	gqlFonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "univers", "doom", "larry3d", "puffy", "rectangles", "bigchief", "cosmic"}
	fig := figure.NewFigure("Catalog GQL ->", gqlFonts[rand.Intn(len(gqlFonts))], true)
	fig.Print()
	fmt.Println("Standalone GraphQL server")

	port := cfg.Port
	if port == "" {
		port = "8080"
	}
	log.Printf("GraphQL at http://localhost:%s/graphql  Playground at http://localhost:%s/playground", port, port)
	e.Logger.Fatal(e.Start(":" + port))
}
