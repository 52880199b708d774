package html

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/keshavk21/Think41/catalog"
	"github.com/keshavk21/Think41/config"
	parts "github.com/keshavk21/Think41/html/parts"
	"github.com/keshavk21/Think41/view"
)

const siteName = "Catalog Viewer"

// RegisterViewerHTMLRoutes registers the catalog pages. The URL query string
// is the sole source of view state: every handler re-derives its view by
// parsing the request URL, the same contract the browser client followed.
func RegisterViewerHTMLRoutes(e *echo.Echo, client *catalog.Client) {
	r := NewRenderer()
	e.Renderer = &Template{Templates: r.Templates()}

	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/departments")
	})
	e.GET("/departments", departmentsHandler(client, r))
	e.GET("/products", productsHandler(client, r))
	e.GET("/products/:id", productDetailHandler(client, r))
	e.GET("/health", healthHandler(client))
}

// departmentsHandler serves both the overview and the detail flavor of
// /departments, selected by the department query parameter.
func departmentsHandler(client *catalog.Client, r *Renderer) echo.HandlerFunc {
	return func(c echo.Context) error {
		state := view.ParseURL(c.Request().URL.RequestURI())

		if state.Kind != view.KindDepartmentDetail {
			departments, err := client.Departments(c.Request().Context())
			if err != nil {
				return renderError(c, client, r, err)
			}
			fragment, err := r.DepartmentList(departments)
			if err != nil {
				return renderError(c, client, r, err)
			}
			return renderPage(c, client, r, http.StatusOK, "Departments", fragment)
		}

		// The detail page needs the department record and its product
		// listing; both must succeed or the whole page is the error page.
		var (
			department catalog.Department
			listing    catalog.DepartmentProducts
		)
		eg, ctx := errgroup.WithContext(c.Request().Context())
		eg.Go(func() error {
			var err error
			department, err = client.Department(ctx, state.DepartmentID)
			return err
		})
		eg.Go(func() error {
			var err error
			listing, err = client.DepartmentProducts(ctx, state.DepartmentID)
			return err
		})
		if err := eg.Wait(); err != nil {
			return renderError(c, client, r, err)
		}
		fragment, err := r.DepartmentDetail(department, listing.Products)
		if err != nil {
			return renderError(c, client, r, err)
		}
		return renderPage(c, client, r, http.StatusOK, department.Name, fragment)
	}
}

func productsHandler(client *catalog.Client, r *Renderer) echo.HandlerFunc {
	return func(c echo.Context) error {
		state := view.ParseURL(c.Request().URL.RequestURI())
		page := config.ClampPage(state.Page)

		pp, err := client.Products(c.Request().Context(), page, config.AppConfig.PageSize)
		if err != nil {
			return renderError(c, client, r, err)
		}
		fragment, err := r.ProductList(pp)
		if err != nil {
			return renderError(c, client, r, err)
		}
		title := "Products"
		if page > 1 {
			title = fmt.Sprintf("Products, page %d", page)
		}
		return renderPage(c, client, r, http.StatusOK, title, fragment)
	}
}

func productDetailHandler(client *catalog.Client, r *Renderer) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id < 1 {
			fragment := r.ErrorBanner("Invalid product ID. Product ID must be a positive integer.")
			return renderPage(c, client, r, http.StatusBadRequest, "Error", fragment)
		}
		p, err := client.Product(c.Request().Context(), id)
		if err != nil {
			return renderError(c, client, r, err)
		}
		fragment, err := r.ProductDetail(p)
		if err != nil {
			return renderError(c, client, r, err)
		}
		return renderPage(c, client, r, http.StatusOK, p.Name, fragment)
	}
}

// healthHandler proxies backend liveness, mirroring the backend's own
// health payload shape in both directions.
func healthHandler(client *catalog.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		h, err := client.Health(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status":   "ERROR",
				"database": "disconnected",
				"error":    catalog.UserMessage(err),
			})
		}
		return c.JSON(http.StatusOK, h)
	}
}

// renderPage wraps a rendered fragment in the page shell with the sidebar
// and inline critical CSS.
func renderPage(c echo.Context, client *catalog.Client, r *Renderer, status int, title, fragment string) error {
	criticalCSS, err := parts.GetCriticalCSSCached()
	if err != nil {
		criticalCSS = ""
	}
	nav := DepartmentNavCached(c.Request().Context(), client, r)
	return c.Render(status, "page.html", map[string]interface{}{
		"Title":       title + " - " + siteName,
		"CriticalCSS": template.CSS(criticalCSS),
		"NavHTML":     template.HTML(nav),
		"Content":     template.HTML(fragment),
	})
}

// renderError serves the error page for a failed upstream fetch. Nothing
// partial renders: the content area is the banner alone.
func renderError(c echo.Context, client *catalog.Client, r *Renderer, err error) error {
	fragment := r.ErrorBanner(catalog.UserMessage(err))
	return renderPage(c, client, r, upstreamStatus(err), "Error", fragment)
}

// upstreamStatus maps a catalog failure to the page status: not-found passes
// through, everything else reads as a gateway problem.
func upstreamStatus(err error) int {
	var ae *catalog.APIError
	if errors.As(err, &ae) {
		if ae.Kind == catalog.KindHTTPStatus && ae.Status == http.StatusNotFound {
			return http.StatusNotFound
		}
	}
	return http.StatusBadGateway
}
