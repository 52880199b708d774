package view

import (
	"net/url"
	"strconv"
	"strings"
)

// Kind selects which catalog view is active.
type Kind int

const (
	// KindDepartmentList is the department overview.
	KindDepartmentList Kind = iota
	// KindDepartmentDetail is one department with its product listing.
	KindDepartmentDetail
	// KindProductList is the paginated full product listing.
	KindProductList
)

func (k Kind) String() string {
	switch k {
	case KindDepartmentDetail:
		return "department_detail"
	case KindProductList:
		return "product_list"
	}
	return "department_list"
}

// State is the navigation state of the viewer, kept in sync with the URL
// query string. States compare with ==; the constructors zero the fields a
// kind does not use.
type State struct {
	Kind         Kind
	DepartmentID int // KindDepartmentDetail only
	Page         int // KindProductList only, >= 1
}

// DepartmentList is the department overview state.
func DepartmentList() State {
	return State{Kind: KindDepartmentList}
}

// DepartmentDetail is the detail state for one department.
func DepartmentDetail(id int) State {
	return State{Kind: KindDepartmentDetail, DepartmentID: id}
}

// ProductList is the paginated product listing state. Pages below 1 clamp
// to 1.
func ProductList(page int) State {
	if page < 1 {
		page = 1
	}
	return State{Kind: KindProductList, Page: page}
}

// ParseURL derives the navigation state from a URL. The path picks the
// flavor (/products for the paginated listing, anything else for
// departments); the query string carries the rest. Parsing is tolerant and
// never fails: a missing, non-numeric, or out-of-range parameter falls back
// to the list view or page 1. The URL is the sole source of truth, so a
// bad URL must still land somewhere renderable.
func ParseURL(raw string) State {
	u, err := url.Parse(raw)
	if err != nil {
		return DepartmentList()
	}
	q := u.Query()

	if strings.HasPrefix(u.Path, "/products") {
		page := 1
		if v := q.Get("page"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 1 {
				page = n
			}
		}
		return ProductList(page)
	}

	if v := q.Get("department"); v != "" {
		if id, err := strconv.Atoi(v); err == nil && id > 0 {
			return DepartmentDetail(id)
		}
	}
	return DepartmentList()
}

// URL returns the canonical URL for the state. List states and page 1 omit
// their query parameter, so ParseURL(s.URL()) == s for every valid state.
func (s State) URL() string {
	switch s.Kind {
	case KindDepartmentDetail:
		return "/departments?department=" + strconv.Itoa(s.DepartmentID)
	case KindProductList:
		if s.Page > 1 {
			return "/products?page=" + strconv.Itoa(s.Page)
		}
		return "/products"
	}
	return "/departments"
}
