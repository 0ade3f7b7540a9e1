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
	"encoding/json"

	"github.com/NVIDIA/recipe-gateway/pkg/server"
)

// Meal is one upstream recipe record, passed through untouched.
type Meal = json.RawMessage

// SearchQuery is a validated search-by-ingredient request.
type SearchQuery struct {
	Ingredient string `json:"ingredient" yaml:"ingredient"`
}

// LookupQuery is a validated lookup-by-id request. The id is not required
// to be numeric.
type LookupQuery struct {
	MealID string `json:"mealId" yaml:"mealId"`
}

// SearchResult is the success envelope for ingredient searches.
// Total always equals len(Meals) and Meals is never nil.
type SearchResult struct {
	Meals      []Meal `json:"meals" yaml:"meals"`
	Total      int    `json:"total" yaml:"total"`
	SearchTerm string `json:"searchTerm" yaml:"searchTerm"`
}

// NewSearchResult builds a SearchResult for term, normalizing no results
// to an empty list.
func NewSearchResult(term string, meals []Meal) *SearchResult {
	if meals == nil {
		meals = []Meal{}
	}
	return &SearchResult{
		Meals:      meals,
		Total:      len(meals),
		SearchTerm: term,
	}
}

// DetailResult is the success envelope for lookups.
type DetailResult struct {
	Meal Meal `json:"meal" yaml:"meal"`
}

// SearchErrorResponse is returned when a search cannot be served; it keeps
// an empty meals list so clients can render it like an empty result.
type SearchErrorResponse struct {
	server.ErrorResponse
	Meals []Meal `json:"meals"`
}

// NotFoundResponse is returned when a lookup id matches no recipe.
type NotFoundResponse struct {
	server.ErrorResponse
	ID string `json:"id"`
}
