package resolvers

import (
	"context"
	"encoding/json"

	"github.com/keshavk21/Think41/catalog"
	"github.com/keshavk21/Think41/graphql"
	gqlregistry "github.com/keshavk21/Think41/graphql/registry"
)

func init() {
	gqlregistry.RegisterQueryResolverFactory(func(api interface{}) interface{} {
		return NewQueryResolver(api.(Catalog))
	})
}

// Catalog is the backend surface the resolvers read from. *catalog.Client
// satisfies it; tests substitute fakes.
type Catalog interface {
	Departments(ctx context.Context) ([]catalog.Department, error)
	Department(ctx context.Context, id int) (catalog.Department, error)
	DepartmentProducts(ctx context.Context, id int) (catalog.DepartmentProducts, error)
	Products(ctx context.Context, page, limit int) (catalog.ProductPage, error)
	Product(ctx context.Context, id int) (catalog.Product, error)
	Health(ctx context.Context) (catalog.Health, error)
}

var _ Catalog = (*catalog.Client)(nil)

// QueryResolver is the single resolver for all Query fields.
// Methods live in department.go, product.go, health.go.
// New Query fields: use RegisterSchemaExtension + add a method on QueryResolver,
// or use _extension for fully dynamic resolvers.
type QueryResolver struct {
	api Catalog
}

var _ graphql.QueryResolver = (*QueryResolver)(nil)

func NewQueryResolver(api Catalog) *QueryResolver {
	return &QueryResolver{api: api}
}

// Extension dispatches to registered custom resolvers.
func (r *QueryResolver) Extension(ctx context.Context, args graphql.ExtensionArgs) (*string, error) {
	m := make(map[string]interface{})
	if args.Args != nil && *args.Args != "" {
		_ = json.Unmarshal([]byte(*args.Args), &m)
	}
	out, err := gqlregistry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}
