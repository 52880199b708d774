package graphqlserver

import (
	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"github.com/keshavk21/Think41/graphql"
	"github.com/keshavk21/Think41/graphql/registry"
	"github.com/keshavk21/Think41/graphql/resolvers"
)

// RootResolver is the root for graphql-go. The Query resolver comes from the
// registry so custom packages can swap the factory before the first request.
type RootResolver struct {
	Catalog resolvers.Catalog
}

// Query returns the query resolver.
func (r *RootResolver) Query() *resolvers.QueryResolver {
	return registry.GetQueryResolver(r.Catalog).(*resolvers.QueryResolver)
}

// NewSchema parses the schema and returns a graphql-go Schema.
func NewSchema(api resolvers.Catalog) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), &RootResolver{Catalog: api}, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
