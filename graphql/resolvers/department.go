package resolvers

import (
	"context"

	"github.com/keshavk21/Think41/catalog"
	"github.com/keshavk21/Think41/graphql"
	gqlmodels "github.com/keshavk21/Think41/graphql/models"
)

func (r *QueryResolver) Departments(ctx context.Context) ([]*gqlmodels.Department, error) {
	departments, err := r.api.Departments(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*gqlmodels.Department, len(departments))
	for i, d := range departments {
		out[i] = toDepartment(d)
	}
	return out, nil
}

// Department returns null for unknown IDs; only transport and server
// failures surface as GraphQL errors.
func (r *QueryResolver) Department(ctx context.Context, args graphql.DepartmentArgs) (*gqlmodels.Department, error) {
	d, err := r.api.Department(ctx, int(args.ID))
	if err != nil {
		if catalog.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toDepartment(d), nil
}

func (r *QueryResolver) DepartmentProducts(ctx context.Context, args graphql.DepartmentArgs) (*gqlmodels.DepartmentProducts, error) {
	dp, err := r.api.DepartmentProducts(ctx, int(args.ID))
	if err != nil {
		if catalog.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toDepartmentProducts(dp), nil
}
