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

// Package serializer provides encoding and decoding of gateway data in multiple formats.
//
// # Overview
//
// The package turns response envelopes into HTTP bodies (RespondJSON) and CLI
// output (Writer), and loads configuration files (Reader, FromFile).
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable representation, used for every HTTP response
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable; suitable for configuration files
//   - gopkg.in/yaml.v3 package
//
// TOML:
//   - Configuration-file friendly
//   - github.com/BurntSushi/toml package
//
// Table:
//   - Flattened FIELD/VALUE listing for terminals
//   - Write-only (no deserialization support)
//
// # Usage - Encoding
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, "")
//	defer w.Close()
//	if err := w.Serialize(ctx, result); err != nil {
//	    return err
//	}
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, result)
//
// RespondJSON buffers the encoding before writing headers, so an encoding
// failure still produces a well-formed 500 rather than a truncated body.
//
// # Usage - Decoding
//
//	cfg, err := serializer.FromFile[config.Config]("gateway.yaml")
package serializer
