// Package cli implements the recipegw command-line interface.
//
// # Commands
//
// serve - Run the HTTP gateway:
//
//	recipegw serve [--config gateway.yaml] [--port 8080] [--mealdb-url URL]
//
// search - List recipes that use an ingredient:
//
//	recipegw search --ingredient chicken [--format yaml]
//
// details - Show a full recipe by id:
//
//	recipegw details --id 52772 [--output meal.json]
//
// # Global Flags
//
//	--log-level    Logging verbosity: debug, info, warn, error (default: info)
//	--debug        Same as --log-level=debug
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// search and details accept --format json (default), yaml, toml or table
// and --output to write to a file instead of stdout.
//
// # Environment Variables
//
//	LOG_LEVEL                 Logging verbosity
//	PORT                      Listen port for serve
//	SHUTDOWN_TIMEOUT_SECONDS  Graceful shutdown budget for serve
//	MEALDB_BASE_URL           Upstream API base URL
//	MEALDB_TIMEOUT            Upstream per-request timeout (Go duration)
//
// Flags override environment variables, which override the config file.
//
// # Exit Codes
//
//	0  Success
//	1  Any error, including a recipe that was not found
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/recipe-gateway/pkg/cli.version=1.0.0'"
package cli
