/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/recipe-gateway/pkg/mealdb"
	"github.com/NVIDIA/recipe-gateway/pkg/recipe"
	"github.com/NVIDIA/recipe-gateway/pkg/serializer"
)

func searchCmd() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "List recipes that use an ingredient",
		Description: `Query the upstream recipe database for meals containing the ingredient and
print the same {meals,total,searchTerm} envelope the gateway returns.`,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "ingredient",
				Aliases: []string{"i"},
				Usage:   "ingredient to search for (e.g. chicken)",
			},
			configFlag(),
			outputFlag(),
			formatFlag(),
		}, upstreamFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			ingredient, err := recipe.FindIngredientParam.Validate(cmd.String("ingredient"), cmd.IsSet("ingredient"))
			if err != nil {
				return fmt.Errorf("--ingredient: %w", err)
			}

			svc, err := newService(cmd)
			if err != nil {
				return err
			}

			result, err := svc.Search(ctx, recipe.SearchQuery{Ingredient: ingredient})
			if err != nil {
				return fmt.Errorf("failed to search recipes: %w", err)
			}

			return writeOutput(ctx, cmd, outFormat, result)
		},
	}
}

func detailsCmd() *cli.Command {
	return &cli.Command{
		Name:  "details",
		Usage: "Show full recipe details by id",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "id",
				Usage: "recipe id (e.g. 52772)",
			},
			configFlag(),
			outputFlag(),
			formatFlag(),
		}, upstreamFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			id, err := recipe.DetailsMealIDParam.Validate(cmd.String("id"), cmd.IsSet("id"))
			if err != nil {
				return fmt.Errorf("--id: %w", err)
			}

			svc, err := newService(cmd)
			if err != nil {
				return err
			}

			result, err := svc.Lookup(ctx, recipe.LookupQuery{MealID: id})
			if err != nil {
				return fmt.Errorf("failed to get recipe %q: %w", id, err)
			}

			return writeOutput(ctx, cmd, outFormat, result)
		},
	}
}

// newService builds a recipe service backed by a TheMealDB client
// configured from the command.
func newService(cmd *cli.Command) (*recipe.Service, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	client, err := mealdb.NewClient(mealdb.WithConfig(cfg.ToUpstream()))
	if err != nil {
		return nil, fmt.Errorf("failed to create upstream client: %w", err)
	}

	return recipe.NewService(client), nil
}

func writeOutput(ctx context.Context, cmd *cli.Command, format serializer.Format, data any) error {
	var ser serializer.Serializer = serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer func() {
		if closer, ok := ser.(serializer.Closer); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}
	}()

	return ser.Serialize(ctx, data)
}
