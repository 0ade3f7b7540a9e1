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

// Package config loads the gateway configuration.
//
// Values are resolved in order: built-in defaults, an optional file, then
// environment variables (PORT, SHUTDOWN_TIMEOUT_SECONDS, MEALDB_BASE_URL,
// MEALDB_TIMEOUT, LOG_LEVEL). The file format follows the extension:
// .yaml/.yml, .toml or .json.
//
//	cfg, err := config.Load("gateway.toml")
//	if err != nil {
//	    return err
//	}
//	s := server.New(server.WithConfig(cfg.ToServer()))
package config
