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

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/NVIDIA/recipe-gateway/pkg/defaults"
	"github.com/NVIDIA/recipe-gateway/pkg/logging"
	"github.com/NVIDIA/recipe-gateway/pkg/mealdb"
	"github.com/NVIDIA/recipe-gateway/pkg/serializer"
	"github.com/NVIDIA/recipe-gateway/pkg/server"
)

// Environment variables that override file values.
const (
	EnvPort            = "PORT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT_SECONDS"
)

// Duration is a time.Duration that reads and writes as a Go duration
// string ("10s") in JSON, YAML and TOML.
type Duration struct {
	time.Duration
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
}

// ServerConfig holds the listener settings.
type ServerConfig struct {
	Address         string   `json:"address" yaml:"address" toml:"address"`
	Port            int      `json:"port" yaml:"port" toml:"port"`
	ShutdownTimeout Duration `json:"shutdownTimeout" yaml:"shutdownTimeout" toml:"shutdownTimeout"`
}

// UpstreamConfig holds the recipe database settings.
type UpstreamConfig struct {
	BaseURL   string   `json:"baseURL" yaml:"baseURL" toml:"baseURL"`
	Timeout   Duration `json:"timeout" yaml:"timeout" toml:"timeout"`
	UserAgent string   `json:"userAgent" yaml:"userAgent" toml:"userAgent"`
}

// Config is the gateway configuration file.
//
// Example (YAML):
//
//	server:
//	  port: 8080
//	  shutdownTimeout: 30s
//	upstream:
//	  baseURL: https://www.themealdb.com/api/json/v1/1
//	  timeout: 10s
//	logLevel: info
type Config struct {
	Server   ServerConfig   `json:"server" yaml:"server" toml:"server"`
	Upstream UpstreamConfig `json:"upstream" yaml:"upstream" toml:"upstream"`
	LogLevel string         `json:"logLevel" yaml:"logLevel" toml:"logLevel"`
}

// Default returns the built-in configuration without environment overrides.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ShutdownTimeout: Duration{defaults.ServerShutdownTimeout},
		},
		Upstream: UpstreamConfig{
			BaseURL:   mealdb.DefaultBaseURL,
			Timeout:   Duration{defaults.UpstreamRequestTimeout},
			UserAgent: mealdb.DefaultUserAgent,
		},
		LogLevel: "info",
	}
}

// Load builds the configuration from defaults, then the file at path
// (format chosen by extension; skipped when path is empty), then the
// environment. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile decodes path over the current values so unset keys keep their defaults.
func (c *Config) loadFile(path string) error {
	format := serializer.FormatFromPath(path)

	r, err := serializer.NewFileReader(format, path)
	if err != nil {
		return fmt.Errorf("failed to open config %q: %w", path, err)
	}
	defer func() {
		if closeErr := r.Close(); closeErr != nil {
			slog.Warn("failed to close config file", "path", path, "error", closeErr)
		}
	}()

	if err := r.Deserialize(c); err != nil {
		return fmt.Errorf("failed to parse config %q: %w", path, err)
	}

	slog.Debug("loaded config file", "path", path, "format", string(format))
	return nil
}

// ApplyEnv overrides values with any set environment variables.
// Malformed values are ignored.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}

	if v := os.Getenv(EnvShutdownTimeout); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			c.Server.ShutdownTimeout = Duration{time.Duration(seconds) * time.Second}
		}
	}

	if v := os.Getenv(mealdb.EnvBaseURL); v != "" {
		c.Upstream.BaseURL = v
	}

	if v := os.Getenv(mealdb.EnvTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.Upstream.Timeout = Duration{d}
		}
	}

	if v := os.Getenv(logging.EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// Validate checks the configuration for values the gateway cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d: must be between 0 and 65535", c.Server.Port)
	}
	if c.Server.ShutdownTimeout.Duration <= 0 {
		return fmt.Errorf("invalid shutdown timeout %s: must be positive", c.Server.ShutdownTimeout)
	}
	return c.ToUpstream().Validate()
}

// ToUpstream converts the upstream section into a client configuration.
func (c *Config) ToUpstream() *mealdb.Config {
	return &mealdb.Config{
		BaseURL:   c.Upstream.BaseURL,
		Timeout:   c.Upstream.Timeout.Duration,
		UserAgent: c.Upstream.UserAgent,
	}
}

// ToServer converts the server section into a server configuration,
// keeping the server defaults for everything the file does not cover.
func (c *Config) ToServer() *server.Config {
	cfg := server.NewConfig()
	cfg.Address = c.Server.Address
	cfg.Port = c.Server.Port
	cfg.ShutdownTimeout = c.Server.ShutdownTimeout.Duration
	return cfg
}
