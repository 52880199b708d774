package models

// Product mirrors the backend catalog item. Optional backend fields are
// pointers so absent values surface as GraphQL nulls instead of zero values.
type Product struct {
	ID                   int32    `json:"id"`
	Name                 string   `json:"name"`
	Brand                *string  `json:"brand,omitempty"`
	Category             *string  `json:"category,omitempty"`
	Department           *string  `json:"department,omitempty"`
	SKU                  *string  `json:"sku,omitempty"`
	Cost                 *float64 `json:"cost,omitempty"`
	RetailPrice          float64  `json:"retail_price"`
	DistributionCenterID *int32   `json:"distribution_center_id,omitempty"`
}

type Pagination struct {
	CurrentPage   int32 `json:"current_page"`
	TotalPages    int32 `json:"total_pages"`
	TotalProducts int32 `json:"total_products"`
	HasNextPage   bool  `json:"has_next_page"`
	HasPrevPage   bool  `json:"has_prev_page"`
	Limit         int32 `json:"limit"`
}

type ProductPage struct {
	Products   []*Product  `json:"products"`
	Pagination *Pagination `json:"pagination"`
}
