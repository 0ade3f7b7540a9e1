// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server implements the HTTP front of the recipe gateway: routing,
// the middleware chain, error envelopes, probes and graceful shutdown.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("recipegwd"),
//	    server.WithVersion(version),
//	    server.WithRoutes(routes...),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Each Route names a ServeMux pattern (Go 1.22 syntax, e.g. "/search/{ingredient}"),
// the methods it accepts and the usage string advertised in the service directory.
//
// # Endpoints
//
// GET / - Service directory: {"message": "...", "routes": {"GET /find": "..."}}
//
// GET /status - {"running": true, "timestamp": "...", "uptime": 12.5}
//
// GET /health - Liveness probe, always 200
//
// GET /ready - Readiness probe, 503 until the server is listening
//
// GET /metrics - Prometheus metrics
//
// Any other path returns 404 with the list of available routes:
//
//	{"error": "Endpoint not found", "available": ["GET /", "GET /find?ingredient=value", ...]}
//
// # Middleware
//
// API routes run behind metrics, API version negotiation
// (Accept: application/vnd.recipegw.v1+json), request ID
// (X-Request-Id, generated when absent or not a UUID), panic recovery
// and request logging.
//
// # Error Handling
//
// Errors are written as:
//
//	{
//	  "error": "Could not retrieve recipe details",
//	  "code": "UPSTREAM_ERROR",
//	  "details": "request failed with status 503",
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-01-02T12:00:00Z",
//	  "retryable": true
//	}
//
// The status is derived from the code: INVALID_REQUEST 400, NOT_FOUND 404,
// METHOD_NOT_ALLOWED 405, UPSTREAM_ERROR and INTERNAL 500.
//
// # Configuration
//
// PORT and SHUTDOWN_TIMEOUT_SECONDS override the listen port and the
// graceful shutdown window.
package server
