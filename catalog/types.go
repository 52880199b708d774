package catalog

// Department is a catalog department. product_count is derived server-side.
type Department struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	ProductCount int    `json:"product_count"`
}

// Product is a catalog item. Every field except ID and Name is optional on
// the backend; absent values decode to zero values.
type Product struct {
	ID                   int     `json:"id"`
	Name                 string  `json:"name"`
	Brand                string  `json:"brand"`
	Category             string  `json:"category"`
	Department           string  `json:"department"`
	SKU                  string  `json:"sku"`
	Cost                 float64 `json:"cost"`
	RetailPrice          float64 `json:"retail_price"`
	DistributionCenterID int     `json:"distribution_center_id"`
}

// Pagination is the server-derived paging block for product listings.
type Pagination struct {
	CurrentPage   int  `json:"current_page"`
	TotalPages    int  `json:"total_pages"`
	TotalProducts int  `json:"total_products"`
	HasNextPage   bool `json:"has_next_page"`
	HasPrevPage   bool `json:"has_prev_page"`
	Limit         int  `json:"limit"`
	Offset        int  `json:"offset"`
}

// ProductPage is one page of the full product listing.
type ProductPage struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

// DepartmentProducts is the product listing of a single department.
type DepartmentProducts struct {
	Department string    `json:"department"`
	Products   []Product `json:"products"`
}

// Health reports backend liveness.
type Health struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}
