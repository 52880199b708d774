package auth

import (
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/keshavk21/Think41/config"
)

// Middleware returns the /api auth middleware based on the AUTH_TYPE env var.
// The viewer serves public catalog data, so an unset AUTH_TYPE leaves the
// group open; "key" and "basic" guard it for private deployments.
func Middleware() echo.MiddlewareFunc {
	skipper := buildSkipper()
	switch os.Getenv("AUTH_TYPE") {
	case "key":
		return keyAuth(skipper)
	case "basic":
		return basicAuth(skipper)
	default:
		return passthrough
	}
}

func passthrough(next echo.HandlerFunc) echo.HandlerFunc {
	return next
}

func buildSkipper() middleware.Skipper {
	skipPaths := config.GetAuthSkipperPaths()
	return func(c echo.Context) bool {
		path := c.Path()
		for _, skip := range skipPaths {
			if path == skip {
				return true
			}
		}
		return false
	}
}

func basicAuth(skipper middleware.Skipper) echo.MiddlewareFunc {
	return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Validator: func(username, password string, c echo.Context) (bool, error) {
			return username == os.Getenv("API_USER") && password == os.Getenv("API_PASS"), nil
		},
		Skipper: skipper,
	})
}

func keyAuth(skipper middleware.Skipper) echo.MiddlewareFunc {
	apiKey := os.Getenv("API_KEY")
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Validator: func(key string, c echo.Context) (bool, error) {
			return key == apiKey, nil
		},
		Skipper: skipper,
	})
}
