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

package server

import (
	"log/slog"
	"net/http"

	gwerrors "github.com/NVIDIA/recipe-gateway/pkg/errors"
	"github.com/NVIDIA/recipe-gateway/pkg/serializer"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	defaultDescription = "Recipe API Server"
	statusUsage        = "GET /status"
	rootUsage          = "GET /"
)

// setupRoutes configures all HTTP routes and middleware
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	// System endpoints (no middleware)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/status", s.withMiddleware(allowMethods([]string{http.MethodGet}, s.handleStatus)))

	for _, rt := range s.config.Routes {
		if rt.Pattern == "" || rt.Handler == nil {
			slog.Warn("skipping incomplete route", "pattern", rt.Pattern)
			continue
		}
		mux.HandleFunc(rt.Pattern, s.withMiddleware(allowMethods(rt.methods(), rt.Handler)))
	}

	mux.HandleFunc("/{$}", s.withMiddleware(allowMethods([]string{http.MethodGet}, s.handleDirectory)))
	mux.HandleFunc("/", s.withMiddleware(s.handleNotFound))

	return mux
}

// DirectoryResponse lists the advertised routes.
type DirectoryResponse struct {
	Message string            `json:"message" yaml:"message"`
	Name    string            `json:"name" yaml:"name"`
	Version string            `json:"version" yaml:"version"`
	Routes  map[string]string `json:"routes" yaml:"routes"`
}

// NotFoundResponse is returned for paths that match no route.
type NotFoundResponse struct {
	ErrorResponse
	Available []string `json:"available"`
}

func (s *Server) handleDirectory(w http.ResponseWriter, _ *http.Request) {
	message := s.config.Description
	if message == "" {
		message = defaultDescription
	}

	routes := make(map[string]string, len(s.config.Routes)+1)
	for _, rt := range s.config.Routes {
		if rt.Usage != "" {
			routes[rt.Usage] = rt.Description
		}
	}
	routes[statusUsage] = "Server status and uptime"

	serializer.RespondJSON(w, http.StatusOK, DirectoryResponse{
		Message: message,
		Name:    s.config.Name,
		Version: s.config.Version,
		Routes:  routes,
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	slog.Debug("no route matched",
		"path", r.URL.Path,
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)

	resp := NotFoundResponse{
		ErrorResponse: NewErrorResponse(r, gwerrors.ErrCodeNotFound, "Endpoint not found"),
		Available:     s.availableRoutes(),
	}
	resp.Context = map[string]any{"path": r.URL.Path}

	serializer.RespondJSON(w, http.StatusNotFound, resp)
}

// availableRoutes lists every advertised route in registration order.
func (s *Server) availableRoutes() []string {
	available := []string{rootUsage}
	for _, rt := range s.config.Routes {
		if rt.Usage != "" {
			available = append(available, rt.Usage)
		}
	}
	return append(available, statusUsage)
}
