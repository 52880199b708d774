package html

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/keshavk21/Think41/catalog"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template adapts the parsed template set to echo's Renderer interface.
type Template struct {
	Templates *template.Template
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.Templates.ExecuteTemplate(w, name, data)
}

// TemplateFuncs returns the helpers the viewer templates use: pagination
// arithmetic plus render-time defaults for optional catalog fields.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		"until": func(count int) []int {
			s := make([]int, count)
			for i := 0; i < count; i++ {
				s[i] = i
			}
			return s
		},
		// Absent prices decode to zero and render as $0.00, never blank.
		"usd": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
		"fallback": func(s string) string {
			if s == "" {
				return "N/A"
			}
			return s
		},
	}
}

// NewTemplates parses the embedded viewer templates.
func NewTemplates() *template.Template {
	return template.Must(template.New("viewer").Funcs(TemplateFuncs()).ParseFS(templateFS, "templates/*.html"))
}

// Renderer renders catalog payloads into HTML fragments. It satisfies the
// view package's Renderer interface; the viewer routes wrap its fragments in
// the page shell.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates into a ready Renderer.
func NewRenderer() *Renderer {
	return &Renderer{templates: NewTemplates()}
}

// Templates exposes the parsed set for the echo renderer.
func (r *Renderer) Templates() *template.Template {
	return r.templates
}

// DepartmentList renders the department overview fragment.
func (r *Renderer) DepartmentList(departments []catalog.Department) (string, error) {
	return r.execute("department_list.html", map[string]interface{}{
		"Departments": departments,
	})
}

// DepartmentDetail renders one department with its product listing.
func (r *Renderer) DepartmentDetail(department catalog.Department, products []catalog.Product) (string, error) {
	return r.execute("department_detail.html", map[string]interface{}{
		"Department": department,
		"Products":   products,
	})
}

// ProductList renders one page of the full product listing with its
// pagination controls.
func (r *Renderer) ProductList(page catalog.ProductPage) (string, error) {
	return r.execute("product_list.html", map[string]interface{}{
		"Products": page.Products,
		"Paging":   buildPageControls(page.Pagination),
	})
}

// ProductDetail renders the standalone product page fragment.
func (r *Renderer) ProductDetail(p catalog.Product) (string, error) {
	return r.execute("product_detail.html", map[string]interface{}{
		"Product": p,
	})
}

// DepartmentNav renders the sidebar fragment.
func (r *Renderer) DepartmentNav(departments []catalog.Department) (string, error) {
	return r.execute("nav.html", map[string]interface{}{
		"Departments": departments,
	})
}

// ErrorBanner renders the error fragment. A template failure degrades to the
// bare escaped message so one error never swallows another.
func (r *Renderer) ErrorBanner(message string) string {
	out, err := r.execute("error.html", map[string]interface{}{
		"Message": message,
	})
	if err != nil {
		return "<p class=\"error\">" + template.HTMLEscapeString(message) + "</p>"
	}
	return out
}

func (r *Renderer) execute(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

// maxPageLinks bounds the direct page links rendered in the pagination bar;
// deep catalogs get a window around the current page instead of thousands
// of anchors.
const maxPageLinks = 7

// pageControls is the pagination payload for product_list.html, derived
// from the server-side pagination block.
type pageControls struct {
	Page          int
	TotalPages    int
	TotalProducts int
	HasPrev       bool
	HasNext       bool
	PrevPage      int
	NextPage      int
	PageNumbers   []int
}

func buildPageControls(p catalog.Pagination) pageControls {
	prev := p.CurrentPage - 1
	if prev < 1 {
		prev = 1
	}
	next := p.CurrentPage + 1
	if next > p.TotalPages {
		next = p.TotalPages
	}

	first := p.CurrentPage - maxPageLinks/2
	if first < 1 {
		first = 1
	}
	last := first + maxPageLinks - 1
	if last > p.TotalPages {
		last = p.TotalPages
		first = last - maxPageLinks + 1
		if first < 1 {
			first = 1
		}
	}
	numbers := make([]int, 0, maxPageLinks)
	for i := first; i <= last; i++ {
		numbers = append(numbers, i)
	}

	return pageControls{
		Page:          p.CurrentPage,
		TotalPages:    p.TotalPages,
		TotalProducts: p.TotalProducts,
		HasPrev:       p.HasPrevPage,
		HasNext:       p.HasNextPage,
		PrevPage:      prev,
		NextPage:      next,
		PageNumbers:   numbers,
	}
}
