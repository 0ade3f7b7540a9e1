/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/recipe-gateway/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the recipe gateway HTTP server",
		Description: `Start the HTTP gateway. Settings are resolved from built-in defaults,
then the config file, then environment variables (PORT, SHUTDOWN_TIMEOUT_SECONDS,
MEALDB_BASE_URL, MEALDB_TIMEOUT, LOG_LEVEL), then command-line flags.`,
		Flags: append([]cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "address",
				Usage: "address to listen on (default: all interfaces)",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "port to listen on",
			},
		}, upstreamFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if cmd.IsSet("address") {
				cfg.Server.Address = cmd.String("address")
			}
			if cmd.IsSet("port") {
				cfg.Server.Port = cmd.Int("port")
			}
			if cmd.IsSet("log-level") || cmd.IsSet("debug") {
				cfg.LogLevel = logLevel(cmd)
			}

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			return api.ServeWithConfig(ctx, cfg)
		},
	}
}
