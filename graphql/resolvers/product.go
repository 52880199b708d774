package resolvers

import (
	"context"

	"github.com/keshavk21/Think41/catalog"
	"github.com/keshavk21/Think41/graphql"
	gqlmodels "github.com/keshavk21/Think41/graphql/models"
)

func (r *QueryResolver) Products(ctx context.Context, args graphql.ProductsArgs) (*gqlmodels.ProductPage, error) {
	page := int(args.Page)
	if page <= 0 {
		page = 1
	}
	limit := int(args.Limit)
	if limit <= 0 {
		limit = 12
	}

	p, err := r.api.Products(ctx, page, limit)
	if err != nil {
		if catalog.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toProductPage(p), nil
}

func (r *QueryResolver) Product(ctx context.Context, args graphql.ProductArgs) (*gqlmodels.Product, error) {
	p, err := r.api.Product(ctx, int(args.ID))
	if err != nil {
		if catalog.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toProduct(p), nil
}
