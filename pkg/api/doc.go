// Package api wires the recipe gateway together: configuration, the
// TheMealDB client, the recipe service and handlers, and the HTTP server
// from pkg/server.
//
// # Endpoints
//
//	GET /                      service directory
//	GET /search/{ingredient}   recipes using an ingredient
//	GET /find?ingredient=      same search via query parameter
//	GET /details/{mealId}      full recipe by id
//	GET /status                running flag and uptime
//	GET /health, /ready        probes
//	GET /metrics               Prometheus metrics
//
// # Usage
//
//	if err := api.Serve(); err != nil {
//	    log.Fatal(err)
//	}
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/recipe-gateway/pkg/api.version=1.0.0'"
package api
