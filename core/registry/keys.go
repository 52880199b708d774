package registry

// Core keys for GlobalRegistry and per-request storage.
const (
	// Per-request key (set on the echo context by the duration middleware)
	KeyRequestStart = "request_start"

	// Extension registries (cmd, cron, api, graphql) — stored in GlobalRegistry
	KeyRegistryCmd     = "registry:cmd"
	KeyRegistryCron    = "registry:cron"
	KeyRegistryAPI     = "registry:api"
	KeyRegistryRoutes  = "registry:routes"
	KeyRegistryGraphQL = "registry:graphql"
)
