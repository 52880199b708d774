package view

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/keshavk21/Think41/catalog"
)

// CatalogAPI is the slice of the catalog client the controller needs. Tests
// substitute an in-memory fake.
type CatalogAPI interface {
	Departments(ctx context.Context) ([]catalog.Department, error)
	Department(ctx context.Context, id int) (catalog.Department, error)
	DepartmentProducts(ctx context.Context, id int) (catalog.DepartmentProducts, error)
	Products(ctx context.Context, page, limit int) (catalog.ProductPage, error)
}

// Renderer maps one view's data to markup. Implementations must be pure:
// same payload, same markup.
type Renderer interface {
	DepartmentList(departments []catalog.Department) (string, error)
	DepartmentDetail(department catalog.Department, products []catalog.Product) (string, error)
	ProductList(page catalog.ProductPage) (string, error)
}

// Screen is the render target. Each call replaces the entire surface, so a
// view is always whole: a loading indicator, an error banner, or content.
type Screen interface {
	ShowLoading()
	ShowError(message string)
	ShowContent(markup string)
}

// Config holds controller tunables.
type Config struct {
	// PageSize is the product listing page size. Zero means DefaultPageSize.
	PageSize int
}

// DefaultPageSize matches the backend's default product page.
const DefaultPageSize = 12

// Controller owns the navigation state and drives fetch + render on every
// transition, including transitions triggered by history back/forward. It
// runs for the lifetime of the session; there is no terminal state.
//
// Concurrent navigations are resolved by a generation counter: every
// navigation bumps it, and a fetch result is applied only if no newer
// navigation started in the meantime. Superseded fetches finish harmlessly
// and their results are discarded, so the user always ends up seeing the
// view of the last navigation (last-applied-state wins).
type Controller struct {
	api      CatalogAPI
	renderer Renderer
	screen   Screen
	history  History
	pageSize int

	mu    sync.Mutex
	gen   uint64
	state State
}

// NewController wires a controller to its collaborators.
func NewController(api CatalogAPI, renderer Renderer, screen Screen, history History, cfg Config) *Controller {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	return &Controller{
		api:      api,
		renderer: renderer,
		screen:   screen,
		history:  history,
		pageSize: cfg.PageSize,
	}
}

// Start registers the pop-state handler and enters the state encoded in
// rawURL. Neither the initial entry nor pop-state navigation pushes a
// history entry; both re-derive the state by re-parsing the URL.
func (c *Controller) Start(ctx context.Context, rawURL string) {
	c.history.OnPopState(func(u string) {
		c.navigate(ctx, ParseURL(u), false)
	})
	c.navigate(ctx, ParseURL(rawURL), false)
}

// ShowDepartments navigates to the department overview.
func (c *Controller) ShowDepartments(ctx context.Context) {
	c.navigate(ctx, DepartmentList(), true)
}

// OpenDepartment navigates to one department's detail view.
func (c *Controller) OpenDepartment(ctx context.Context, id int) {
	c.navigate(ctx, DepartmentDetail(id), true)
}

// OpenProducts navigates to one page of the product listing.
func (c *Controller) OpenProducts(ctx context.Context, page int) {
	c.navigate(ctx, ProductList(page), true)
}

// State returns the navigation state of the last settled navigation. After
// a failed fetch it still reflects the target: the URL moved, only the
// content did not.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// navigate runs one render cycle: bump the generation, push the history
// entry for user-originated transitions, show the loading indicator, fetch
// everything the target view needs, and apply the outcome unless a newer
// navigation has started since.
func (c *Controller) navigate(ctx context.Context, target State, push bool) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	if push {
		c.history.Push(target, target.URL())
	}
	c.screen.ShowLoading()
	c.mu.Unlock()

	markup, err := c.fetchAndRender(ctx, target)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		log.Debug().
			Str("url", target.URL()).
			Uint64("generation", gen).
			Msg("[VIEW] discarding superseded navigation result")
		return
	}
	c.state = target
	if err != nil {
		c.screen.ShowError(catalog.UserMessage(err))
		return
	}
	c.screen.ShowContent(markup)
}

// fetchAndRender loads the data the target view needs and renders it. A
// view renders all-or-nothing: when it needs several resources, one failure
// fails the whole cycle and nothing partial reaches the screen.
func (c *Controller) fetchAndRender(ctx context.Context, target State) (string, error) {
	switch target.Kind {
	case KindDepartmentDetail:
		// The department record and its product listing are independent
		// resources; fetch them concurrently and join before rendering.
		var (
			department catalog.Department
			listing    catalog.DepartmentProducts
		)
		eg, egCtx := errgroup.WithContext(ctx)
		eg.Go(func() error {
			var err error
			department, err = c.api.Department(egCtx, target.DepartmentID)
			return err
		})
		eg.Go(func() error {
			var err error
			listing, err = c.api.DepartmentProducts(egCtx, target.DepartmentID)
			return err
		})
		if err := eg.Wait(); err != nil {
			return "", err
		}
		return c.renderer.DepartmentDetail(department, listing.Products)

	case KindProductList:
		page, err := c.api.Products(ctx, target.Page, c.pageSize)
		if err != nil {
			return "", err
		}
		return c.renderer.ProductList(page)

	default:
		departments, err := c.api.Departments(ctx)
		if err != nil {
			return "", err
		}
		return c.renderer.DepartmentList(departments)
	}
}
