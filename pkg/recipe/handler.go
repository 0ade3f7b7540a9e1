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
	"log/slog"
	"net/http"
	"time"

	"github.com/NVIDIA/recipe-gateway/pkg/defaults"
	gwerrors "github.com/NVIDIA/recipe-gateway/pkg/errors"
	"github.com/NVIDIA/recipe-gateway/pkg/serializer"
	"github.com/NVIDIA/recipe-gateway/pkg/server"
)

// Failure messages per route.
const (
	FindFailedMessage    = "Recipe search unsuccessful"
	SearchFailedMessage  = "Unable to fetch recipes"
	DetailsFailedMessage = "Could not retrieve recipe details"
)

// Handler serves the recipe routes.
type Handler struct {
	service *Service
	timeout time.Duration
}

// NewHandler creates a Handler around service.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
		timeout: defaults.RecipeHandlerTimeout,
	}
}

// Routes returns the recipe routes in the order they are advertised.
//
// Unadvertised variants cover a trailing slash and a missing path segment,
// so "/search", "/search/" and "/search/chicken/" are served by the same
// handler instead of being redirected or falling through to the 404 directory.
// A missing segment answers with the missing-parameter error.
func (h *Handler) Routes() []server.Route {
	return []server.Route{
		{
			Pattern:     "/search/{ingredient}",
			Usage:       "GET /search/:ingredient",
			Description: "Find recipes by ingredient",
			Handler:     h.HandleSearch,
		},
		{Pattern: "/search/{ingredient}/{$}", Handler: h.HandleSearch},
		{Pattern: "/search/{$}", Handler: h.HandleSearch},
		{Pattern: "/search", Handler: h.HandleSearch},
		{
			Pattern:     "/find",
			Usage:       "GET /find?ingredient=value",
			Description: "Search with query parameter",
			Handler:     h.HandleFind,
		},
		{Pattern: "/find/{$}", Handler: h.HandleFind},
		{
			Pattern:     "/details/{mealId}",
			Usage:       "GET /details/:mealId",
			Description: "Get full recipe details by id",
			Handler:     h.HandleDetails,
		},
		{Pattern: "/details/{mealId}/{$}", Handler: h.HandleDetails},
		{Pattern: "/details/{$}", Handler: h.HandleDetails},
		{Pattern: "/details", Handler: h.HandleDetails},
	}
}

// HandleFind handles GET /find?ingredient=.
func (h *Handler) HandleFind(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, FindIngredientParam, FindFailedMessage)
}

// HandleSearch handles GET /search/{ingredient}.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, SearchIngredientParam, SearchFailedMessage)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request, p Param, failedMessage string) {
	q, err := ParseSearchQuery(r, p)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "", nil)
		return
	}

	// Add request-scoped timeout
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.service.Search(ctx, *q)
	if err != nil {
		slog.Error("recipe search failed",
			"requestID", server.RequestIDFromContext(r.Context()),
			"ingredient", q.Ingredient,
			"error", err,
		)
		serializer.RespondJSON(w, server.HTTPStatusFromCode(gwerrors.CodeOf(err)), SearchErrorResponse{
			ErrorResponse: server.ErrorResponseFromErr(r, err, failedMessage, nil),
			Meals:         []Meal{},
		})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, result)
}

// HandleDetails handles GET /details/{mealId}.
func (h *Handler) HandleDetails(w http.ResponseWriter, r *http.Request) {
	q, err := ParseLookupQuery(r, DetailsMealIDParam)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "", nil)
		return
	}

	// Add request-scoped timeout
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.service.Lookup(ctx, *q)
	switch {
	case err == nil:
		serializer.RespondJSON(w, http.StatusOK, result)
	case gwerrors.IsCode(err, gwerrors.ErrCodeNotFound):
		serializer.RespondJSON(w, http.StatusNotFound, NotFoundResponse{
			ErrorResponse: server.NewErrorResponse(r, gwerrors.ErrCodeNotFound, notFoundMessage),
			ID:            q.MealID,
		})
	default:
		slog.Error("recipe lookup failed",
			"requestID", server.RequestIDFromContext(r.Context()),
			"mealId", q.MealID,
			"error", err,
		)
		server.WriteErrorFromErr(w, r, err, DetailsFailedMessage, nil)
	}
}
