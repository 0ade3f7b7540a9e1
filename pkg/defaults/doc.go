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

// Package defaults provides centralized configuration constants for the gateway.
//
// Centralizing these values keeps the server, the upstream client and the CLI
// consistent with each other.
//
// # Timeout Categories
//
//   - Handler timeouts: For HTTP request processing
//   - Server timeouts: For HTTP server configuration
//   - Upstream timeouts: For calls to the recipe database
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.UpstreamRequestTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
//   - Upstream calls: 10s, always shorter than the handler timeout
//   - HTTP handlers: 15s, shorter than the server write timeout
//   - Server shutdown: 30s for graceful shutdown
package defaults
