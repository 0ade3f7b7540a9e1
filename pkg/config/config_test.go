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
	"encoding/json"
	"testing"
	"time"

	"github.com/NVIDIA/recipe-gateway/pkg/mealdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable ApplyEnv reads.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvPort, EnvShutdownTimeout, mealdb.EnvBaseURL, mealdb.EnvTimeout, "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout.Duration)
	assert.Equal(t, mealdb.DefaultBaseURL, cfg.Upstream.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout.Duration)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Files(t *testing.T) {
	tests := []struct {
		path         string
		wantPort     int
		wantTimeout  time.Duration
		wantBaseURL  string
		wantLogLevel string
	}{
		{"testdata/gateway.yaml", 9090, 2 * time.Second, "http://localhost:9000/api/json/v1/1", "debug"},
		{"testdata/gateway.toml", 9191, 3 * time.Second, "http://localhost:9001/api/json/v1/1", "warn"},
		{"testdata/gateway.json", 9292, 4 * time.Second, mealdb.DefaultBaseURL, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			clearEnv(t)

			cfg, err := Load(tt.path)
			require.NoError(t, err)

			assert.Equal(t, tt.wantPort, cfg.Server.Port)
			assert.Equal(t, tt.wantTimeout, cfg.Upstream.Timeout.Duration)
			assert.Equal(t, tt.wantBaseURL, cfg.Upstream.BaseURL)
			assert.Equal(t, tt.wantLogLevel, cfg.LogLevel)
			assert.Equal(t, mealdb.DefaultUserAgent, cfg.Upstream.UserAgent, "unset keys keep defaults")
		})
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPort, "7070")
	t.Setenv(EnvShutdownTimeout, "12")
	t.Setenv(mealdb.EnvBaseURL, "http://upstream.test/api")
	t.Setenv(mealdb.EnvTimeout, "750ms")
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := Load("testdata/gateway.yaml")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 12*time.Second, cfg.Server.ShutdownTimeout.Duration)
	assert.Equal(t, "http://upstream.test/api", cfg.Upstream.BaseURL)
	assert.Equal(t, 750*time.Millisecond, cfg.Upstream.Timeout.Duration)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1", cfg.Server.Address)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load("testdata/missing.yaml")
	assert.Error(t, err)

	_, err = Load("testdata/invalid.yaml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"zero shutdown", func(c *Config) { c.Server.ShutdownTimeout = Duration{} }, true},
		{"bad base url", func(c *Config) { c.Upstream.BaseURL = "not a url" }, true},
		{"zero upstream timeout", func(c *Config) { c.Upstream.Timeout = Duration{} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDuration_JSON(t *testing.T) {
	b, err := json.Marshal(Duration{90 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))

	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"250ms"`), &d))
	assert.Equal(t, 250*time.Millisecond, d.Duration)

	assert.Error(t, json.Unmarshal([]byte(`"later"`), &d))
}

func TestConversions(t *testing.T) {
	clearEnv(t)
	cfg := Default()
	cfg.Server.Address = "0.0.0.0"
	cfg.Server.Port = 9999

	sc := cfg.ToServer()
	assert.Equal(t, "0.0.0.0", sc.Address)
	assert.Equal(t, 9999, sc.Port)
	assert.Equal(t, cfg.Server.ShutdownTimeout.Duration, sc.ShutdownTimeout)
	assert.NotZero(t, sc.ReadTimeout)

	uc := cfg.ToUpstream()
	assert.Equal(t, cfg.Upstream.BaseURL, uc.BaseURL)
	assert.Equal(t, cfg.Upstream.Timeout.Duration, uc.Timeout)
}
