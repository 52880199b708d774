package graphql

import (
	"context"

	gqlmodels "github.com/keshavk21/Think41/graphql/models"
)

// Argument structs for Query fields. graphql-go matches them to the schema
// arguments case-insensitively with underscores stripped.

type DepartmentArgs struct {
	ID int32
}

type ProductsArgs struct {
	Page  int32
	Limit int32
}

type ProductArgs struct {
	ID int32
}

// ExtensionArgs for _extension(name, args). Args is a JSON object string.
type ExtensionArgs struct {
	Name string
	Args *string
}

// QueryResolver is the contract for Query resolvers (implemented by the
// resolvers package, mocked in tests).
type QueryResolver interface {
	Departments(ctx context.Context) ([]*gqlmodels.Department, error)
	Department(ctx context.Context, args DepartmentArgs) (*gqlmodels.Department, error)
	DepartmentProducts(ctx context.Context, args DepartmentArgs) (*gqlmodels.DepartmentProducts, error)
	Products(ctx context.Context, args ProductsArgs) (*gqlmodels.ProductPage, error)
	Product(ctx context.Context, args ProductArgs) (*gqlmodels.Product, error)
	Health(ctx context.Context) (*gqlmodels.Health, error)
	Extension(ctx context.Context, args ExtensionArgs) (*string, error)
}
