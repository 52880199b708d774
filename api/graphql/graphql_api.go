package graphql

import (
	"net/http"

	"github.com/graph-gophers/graphql-go"
	"github.com/labstack/echo/v4"

	"github.com/keshavk21/Think41/catalog"
	_ "github.com/keshavk21/Think41/custom"
	"github.com/keshavk21/Think41/graphqlserver"
)

// GraphQLRequest is the standard GraphQL request body
type GraphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName,omitempty"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
}

// GraphQLResponse is the standard GraphQL response
type GraphQLResponse struct {
	Data   interface{}    `json:"data,omitempty"`
	Errors []GraphQLError `json:"errors,omitempty"`
}

type GraphQLError struct {
	Message string `json:"message"`
}

func RegisterGraphQLRoutes(e *echo.Echo, client *catalog.Client) {
	schema, err := graphqlserver.NewSchema(client)
	if err != nil {
		panic("graphql schema: " + err.Error())
	}
	registerRoutes(e, schema)
}

// RegisterGraphQLRoutesWithSchema registers /graphql with a custom schema (for tests with mocks).
func RegisterGraphQLRoutesWithSchema(e *echo.Echo, schema *graphql.Schema) {
	registerRoutes(e, schema)
}

func registerRoutes(e *echo.Echo, schema *graphql.Schema) {
	h := graphqlserver.Handler(schema)
	e.POST("/graphql", echo.WrapHandler(h))
	e.GET("/graphql", echo.WrapHandler(h))
	e.GET("/playground", echo.WrapHandler(playgroundHandler()))
}

func playgroundHandler() http.Handler {
	html := `<!DOCTYPE html>
<html>
<head>
	<title>GraphQL Playground</title>
	<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/graphql-playground-react/build/static/css/index.css"/>
</head>
<body>
	<div id="root"/>
	<script src="https://cdn.jsdelivr.net/npm/graphql-playground-react/build/static/js/middleware.js"></script>
	<script>window.addEventListener('load', function() {
		GraphQLPlayground.init({ endpoint: '/graphql' });
	})</script>
</body>
</html>`
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(html))
	})
}
