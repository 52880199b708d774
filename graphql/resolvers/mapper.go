package resolvers

import (
	"github.com/keshavk21/Think41/catalog"
	gqlmodels "github.com/keshavk21/Think41/graphql/models"
)

// The backend omits optional product fields and the client decodes them to
// zero values; the mappers turn those back into nils so GraphQL reports null.

func toDepartment(d catalog.Department) *gqlmodels.Department {
	return &gqlmodels.Department{
		ID:           int32(d.ID),
		Name:         d.Name,
		ProductCount: int32(d.ProductCount),
	}
}

func toDepartmentProducts(dp catalog.DepartmentProducts) *gqlmodels.DepartmentProducts {
	return &gqlmodels.DepartmentProducts{
		Department: dp.Department,
		Products:   toProducts(dp.Products),
	}
}

func toProducts(products []catalog.Product) []*gqlmodels.Product {
	out := make([]*gqlmodels.Product, len(products))
	for i, p := range products {
		out[i] = toProduct(p)
	}
	return out
}

func toProduct(p catalog.Product) *gqlmodels.Product {
	return &gqlmodels.Product{
		ID:                   int32(p.ID),
		Name:                 p.Name,
		Brand:                optionalString(p.Brand),
		Category:             optionalString(p.Category),
		Department:           optionalString(p.Department),
		SKU:                  optionalString(p.SKU),
		Cost:                 optionalFloat(p.Cost),
		RetailPrice:          p.RetailPrice,
		DistributionCenterID: optionalInt(p.DistributionCenterID),
	}
}

func toProductPage(p catalog.ProductPage) *gqlmodels.ProductPage {
	return &gqlmodels.ProductPage{
		Products: toProducts(p.Products),
		Pagination: &gqlmodels.Pagination{
			CurrentPage:   int32(p.Pagination.CurrentPage),
			TotalPages:    int32(p.Pagination.TotalPages),
			TotalProducts: int32(p.Pagination.TotalProducts),
			HasNextPage:   p.Pagination.HasNextPage,
			HasPrevPage:   p.Pagination.HasPrevPage,
			Limit:         int32(p.Pagination.Limit),
		},
	}
}

func toHealth(h catalog.Health) *gqlmodels.Health {
	return &gqlmodels.Health{
		Status:    h.Status,
		Database:  h.Database,
		Timestamp: optionalString(h.Timestamp),
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalFloat(f float64) *float64 {
	if f == 0 {
		return nil
	}
	return &f
}

func optionalInt(n int) *int32 {
	if n == 0 {
		return nil
	}
	v := int32(n)
	return &v
}
