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

package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// RecipeHandlerTimeout bounds the whole search or lookup request,
	// including the upstream call and response encoding.
	RecipeHandlerTimeout = 15 * time.Second
)

// Server timeouts.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Upstream timeouts for calls to the recipe database.
const (
	// UpstreamRequestTimeout is the total time budget for one upstream call.
	UpstreamRequestTimeout = 10 * time.Second

	// UpstreamConnectTimeout is the timeout for establishing connections.
	UpstreamConnectTimeout = 5 * time.Second

	// UpstreamTLSHandshakeTimeout is the timeout for TLS handshake.
	UpstreamTLSHandshakeTimeout = 5 * time.Second

	// UpstreamResponseHeaderTimeout is the timeout for reading response headers.
	UpstreamResponseHeaderTimeout = 8 * time.Second

	// UpstreamIdleConnTimeout is the timeout for idle connections in the pool.
	UpstreamIdleConnTimeout = 90 * time.Second

	// UpstreamKeepAlive is the keep-alive duration for connections.
	UpstreamKeepAlive = 30 * time.Second

	// UpstreamExpectContinueTimeout is the timeout for Expect: 100-continue.
	UpstreamExpectContinueTimeout = 1 * time.Second
)

// Upstream payload limits.
const (
	// UpstreamMaxBodyBytes caps how much of an upstream response is read.
	UpstreamMaxBodyBytes int64 = 8 << 20
)
