package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/NVIDIA/recipe-gateway/pkg/config"
	"github.com/NVIDIA/recipe-gateway/pkg/logging"
	"github.com/NVIDIA/recipe-gateway/pkg/mealdb"
	"github.com/NVIDIA/recipe-gateway/pkg/recipe"
	"github.com/NVIDIA/recipe-gateway/pkg/server"
)

const (
	name           = "recipegwd"
	versionDefault = "dev"
	description    = "Recipe API Server"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/recipe-gateway/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server with configuration from the environment and
// blocks until shutdown.
func Serve() error {
	return ServeWithConfig(context.Background(), nil)
}

// ServeWithConfig starts the API server with cfg and blocks until ctx is
// cancelled or a termination signal arrives. A nil cfg is loaded from the
// environment.
func ServeWithConfig(ctx context.Context, cfg *config.Config) error {
	if cfg == nil {
		var err error
		if cfg, err = config.Load(""); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.LogLevel)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"upstream", cfg.Upstream.BaseURL,
		"upstreamTimeout", cfg.Upstream.Timeout.String(),
	)

	s, err := NewServer(cfg)
	if err != nil {
		return err
	}

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// NewServer wires the recipe routes, service and upstream client into a
// server without starting it.
func NewServer(cfg *config.Config) (*server.Server, error) {
	client, err := mealdb.NewClient(mealdb.WithConfig(cfg.ToUpstream()))
	if err != nil {
		return nil, fmt.Errorf("failed to create upstream client: %w", err)
	}

	h := recipe.NewHandler(recipe.NewService(client))

	return server.New(
		server.WithConfig(cfg.ToServer()),
		server.WithName(name),
		server.WithVersion(version),
		server.WithDescription(description),
		server.WithRoutes(h.Routes()...),
	), nil
}
