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

package recipe

import (
	"context"
	stderrors "errors"
	"log/slog"

	gwerrors "github.com/NVIDIA/recipe-gateway/pkg/errors"
	"github.com/NVIDIA/recipe-gateway/pkg/mealdb"
)

const notFoundMessage = "Recipe not found"

// Upstream is the recipe database the service delegates to.
type Upstream interface {
	FilterByIngredient(ctx context.Context, ingredient string) (*mealdb.Response, error)
	LookupByID(ctx context.Context, id string) (*mealdb.Response, error)
}

// Service turns validated queries into envelopes. It holds no per-request
// state and is safe for concurrent use.
type Service struct {
	upstream Upstream
}

// NewService creates a Service backed by upstream.
func NewService(upstream Upstream) *Service {
	return &Service{upstream: upstream}
}

// Search lists the meals that use q.Ingredient. No results is a success
// with an empty list.
func (s *Service) Search(ctx context.Context, q SearchQuery) (*SearchResult, error) {
	resp, err := s.upstream.FilterByIngredient(ctx, q.Ingredient)
	if err != nil {
		recipeRequestsTotal.WithLabelValues(operationSearch, outcomeUpstreamError).Inc()
		return nil, asUpstreamError(err)
	}

	result := NewSearchResult(q.Ingredient, resp.MealList())

	outcome := outcomeFound
	if result.Total == 0 {
		outcome = outcomeEmpty
	}
	recipeRequestsTotal.WithLabelValues(operationSearch, outcome).Inc()
	recipeResultSize.Observe(float64(result.Total))

	slog.Debug("search completed", "ingredient", q.Ingredient, "total", result.Total)
	return result, nil
}

// Lookup fetches the recipe with q.MealID. No results is a NOT_FOUND error
// carrying the id. Only the first record is returned when upstream sends more.
func (s *Service) Lookup(ctx context.Context, q LookupQuery) (*DetailResult, error) {
	resp, err := s.upstream.LookupByID(ctx, q.MealID)
	if err != nil {
		recipeRequestsTotal.WithLabelValues(operationLookup, outcomeUpstreamError).Inc()
		return nil, asUpstreamError(err)
	}

	meals := resp.MealList()
	if len(meals) == 0 {
		recipeRequestsTotal.WithLabelValues(operationLookup, outcomeNotFound).Inc()
		return nil, gwerrors.NewWithContext(gwerrors.ErrCodeNotFound, notFoundMessage,
			map[string]any{"id": q.MealID})
	}

	if len(meals) > 1 {
		slog.Debug("lookup returned more than one meal", "id", q.MealID, "count", len(meals))
	}
	recipeRequestsTotal.WithLabelValues(operationLookup, outcomeFound).Inc()

	return &DetailResult{Meal: meals[0]}, nil
}

// asUpstreamError keeps upstream failures in the UPSTREAM_ERROR family even
// when an Upstream implementation returns a plain error.
func asUpstreamError(err error) error {
	var se *gwerrors.StructuredError
	if stderrors.As(err, &se) && se.Code == gwerrors.ErrCodeUpstream {
		return err
	}
	return gwerrors.Wrap(gwerrors.ErrCodeUpstream, "upstream request failed", err)
}
