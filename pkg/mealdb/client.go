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
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/NVIDIA/recipe-gateway/pkg/defaults"
	gwerrors "github.com/NVIDIA/recipe-gateway/pkg/errors"
)

// Upstream endpoints.
const (
	EndpointFilter = "filter.php"
	EndpointLookup = "lookup.php"
)

var (
	DefaultMaxIdleConns        = 100
	DefaultMaxIdleConnsPerHost = 10
)

// Option configures a Client.
type Option func(*Client)

// WithConfig applies base URL, timeout and user agent from cfg.
func WithConfig(cfg *Config) Option {
	return func(c *Client) {
		if cfg == nil {
			return
		}
		c.cfg = *cfg
	}
}

// WithBaseURL sets the upstream base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.cfg.BaseURL = baseURL
	}
}

// WithTimeout bounds every upstream call.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.cfg.Timeout = timeout
	}
}

// WithUserAgent sets the User-Agent sent upstream.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.cfg.UserAgent = userAgent
	}
}

// WithHTTPClient replaces the pooled HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// Client calls the recipe database. It is safe for concurrent use; the only
// state shared between calls is the connection pool.
type Client struct {
	cfg        Config
	baseURL    *url.URL
	httpClient *http.Client
}

// NewClient creates a client from the environment defaults and the given options.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{cfg: *NewConfig()}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.UserAgent == "" {
		c.cfg.UserAgent = DefaultUserAgent
	}
	if err := c.cfg.Validate(); err != nil {
		return nil, gwerrors.Wrap(gwerrors.ErrCodeInternal, "invalid upstream configuration", err)
	}

	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return nil, gwerrors.Wrap(gwerrors.ErrCodeInternal, "invalid upstream base url", err)
	}
	c.baseURL = u

	if c.httpClient == nil {
		// no cookie jar: nothing leaks between requests
		c.httpClient = &http.Client{Transport: newDefaultTransport()}
	}

	return c, nil
}

func newDefaultTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,

		// Connection pooling
		MaxIdleConns:        DefaultMaxIdleConns,
		MaxIdleConnsPerHost: DefaultMaxIdleConnsPerHost,

		// Timeouts
		DialContext: (&net.Dialer{
			Timeout:   defaults.UpstreamConnectTimeout,
			KeepAlive: defaults.UpstreamKeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   defaults.UpstreamTLSHandshakeTimeout,
		ResponseHeaderTimeout: defaults.UpstreamResponseHeaderTimeout,
		ExpectContinueTimeout: defaults.UpstreamExpectContinueTimeout,

		// Connection reuse
		IdleConnTimeout:   defaults.UpstreamIdleConnTimeout,
		ForceAttemptHTTP2: true,

		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}
}

// Config returns a copy of the effective configuration.
func (c *Client) Config() Config {
	return c.cfg
}

// FilterByIngredient lists the meals that use ingredient.
func (c *Client) FilterByIngredient(ctx context.Context, ingredient string) (*Response, error) {
	return c.get(ctx, EndpointFilter, ingredient)
}

// LookupByID fetches the full record of one meal.
func (c *Client) LookupByID(ctx context.Context, id string) (*Response, error) {
	return c.get(ctx, EndpointLookup, id)
}

// endpointURL builds <base>/<endpoint>?i=<value>; value is percent-encoded here and only here.
func (c *Client) endpointURL(endpoint, value string) string {
	u := c.baseURL.JoinPath(endpoint)
	u.RawQuery = url.Values{"i": []string{value}}.Encode()
	return u.String()
}

func (c *Client) get(ctx context.Context, endpoint, value string) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	start := time.Now()
	defer func() {
		upstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	errCtx := map[string]any{"endpoint": endpoint}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpointURL(endpoint, value), nil)
	if err != nil {
		upstreamRequestsTotal.WithLabelValues(endpoint, outcomeTransportError).Inc()
		return nil, gwerrors.WrapWithContext(gwerrors.ErrCodeUpstream, "failed to build upstream request", err, errCtx)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		upstreamRequestsTotal.WithLabelValues(endpoint, transportOutcome(err)).Inc()
		slog.Debug("upstream request failed", "endpoint", endpoint, "error", err)
		return nil, gwerrors.WrapWithContext(gwerrors.ErrCodeUpstream, "upstream request failed", err, errCtx)
	}
	defer func() {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, defaults.UpstreamMaxBodyBytes))
		if cerr := resp.Body.Close(); cerr != nil {
			slog.Warn("failed to close upstream response body", "endpoint", endpoint, "error", cerr)
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		upstreamRequestsTotal.WithLabelValues(endpoint, outcomeHTTPError).Inc()
		errCtx["status"] = resp.StatusCode
		return nil, gwerrors.WrapWithContext(gwerrors.ErrCodeUpstream, "upstream returned an error status",
			fmt.Errorf("request failed with status %d", resp.StatusCode), errCtx)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, defaults.UpstreamMaxBodyBytes))
	if err != nil {
		upstreamRequestsTotal.WithLabelValues(endpoint, transportOutcome(err)).Inc()
		return nil, gwerrors.WrapWithContext(gwerrors.ErrCodeUpstream, "failed to read upstream response", err, errCtx)
	}

	out, err := decodeResponse(body)
	if err != nil {
		upstreamRequestsTotal.WithLabelValues(endpoint, outcomeDecodeError).Inc()
		return nil, gwerrors.WrapWithContext(gwerrors.ErrCodeUpstream, "failed to decode upstream response",
			fmt.Errorf("invalid json response body: %w", err), errCtx)
	}

	upstreamRequestsTotal.WithLabelValues(endpoint, outcomeOK).Inc()
	return out, nil
}

// decodeResponse accepts any well-formed JSON document. Only an object can
// carry meals; arrays, strings, numbers and null decode to an empty Response.
func decodeResponse(body []byte) (*Response, error) {
	if !json.Valid(body) {
		return nil, errors.New("body is not valid json")
	}

	out := &Response{}
	trimmed := bytes.TrimSpace(body)
	if trimmed[0] != '{' {
		return out, nil
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return nil, err
	}
	return out, nil
}

func transportOutcome(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return outcomeTimeout
	case errors.Is(err, context.Canceled):
		return outcomeCanceled
	default:
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			return outcomeTimeout
		}
		return outcomeTransportError
	}
}
