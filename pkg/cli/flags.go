/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/recipe-gateway/pkg/config"
	"github.com/NVIDIA/recipe-gateway/pkg/serializer"
)

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatJSON),
		Usage:   fmt.Sprintf("output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "gateway config file (.yaml, .toml or .json)",
	}
}

// upstreamFlags override the TheMealDB settings from the config file and environment.
func upstreamFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "mealdb-url",
			Usage: "TheMealDB API base URL",
		},
		&cli.DurationFlag{
			Name:  "mealdb-timeout",
			Usage: "timeout for each upstream request (e.g. 5s)",
		},
	}
}

// parseOutputFormat reads --format and rejects unknown values.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", outFormat)
	}
	return outFormat, nil
}

// loadConfig builds the gateway configuration from --config and the
// environment, then applies any upstream flags set on the command line.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.IsSet("mealdb-url") {
		cfg.Upstream.BaseURL = cmd.String("mealdb-url")
	}
	if cmd.IsSet("mealdb-timeout") {
		cfg.Upstream.Timeout = config.Duration{Duration: cmd.Duration("mealdb-timeout")}
	}

	return cfg, nil
}
