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

package mealdb

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/NVIDIA/recipe-gateway/pkg/defaults"
)

const (
	// DefaultBaseURL is the public TheMealDB v1 API with the free test key.
	DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

	// DefaultUserAgent identifies the gateway to the upstream service.
	DefaultUserAgent = "recipe-gateway/1.0"

	// EnvBaseURL overrides the upstream base URL.
	EnvBaseURL = "MEALDB_BASE_URL"

	// EnvTimeout overrides the per-call timeout (Go duration, e.g. "5s").
	EnvTimeout = "MEALDB_TIMEOUT"
)

// Config describes how to reach the upstream recipe database.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// NewConfig returns the default configuration with environment overrides applied.
func NewConfig() *Config {
	cfg := &Config{
		BaseURL:   DefaultBaseURL,
		Timeout:   defaults.UpstreamRequestTimeout,
		UserAgent: DefaultUserAgent,
	}

	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}

	if v := os.Getenv(EnvTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// Validate checks that the configuration can produce a working client.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("mealdb config is nil")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid mealdb base url %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid mealdb base url %q: scheme must be http or https", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid mealdb base url %q: missing host", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid mealdb timeout %s: must be positive", c.Timeout)
	}
	return nil
}
