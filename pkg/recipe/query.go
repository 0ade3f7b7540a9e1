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
	"net/http"

	gwerrors "github.com/NVIDIA/recipe-gateway/pkg/errors"
)

// Source is where a request parameter is read from.
type Source string

const (
	SourcePath  Source = "path"
	SourceQuery Source = "query"
)

// Param declares one logical request parameter: where it lives and what to
// tell the client when it is missing.
type Param struct {
	// Name is the logical field reported back to clients.
	Name string
	// Source is the only place the value is read from.
	Source Source
	// Key is the path wildcard or query key.
	Key string
	// Message is the error returned when the value is missing.
	Message string
}

var (
	// FindIngredientParam is read from GET /find?ingredient=.
	FindIngredientParam = Param{
		Name:    "ingredient",
		Source:  SourceQuery,
		Key:     "ingredient",
		Message: "Ingredient query parameter required",
	}

	// SearchIngredientParam is read from GET /search/{ingredient}.
	SearchIngredientParam = Param{
		Name:    "ingredient",
		Source:  SourcePath,
		Key:     "ingredient",
		Message: "Missing ingredient parameter",
	}

	// DetailsMealIDParam is read from GET /details/{mealId}.
	DetailsMealIDParam = Param{
		Name:    "mealId",
		Source:  SourcePath,
		Key:     "mealId",
		Message: "Recipe ID required",
	}
)

// Extract reads the parameter from r and validates it.
func (p Param) Extract(r *http.Request) (string, error) {
	var value string
	var present bool

	switch p.Source {
	case SourcePath:
		value = r.PathValue(p.Key)
		present = value != ""
	case SourceQuery:
		q := r.URL.Query()
		present = q.Has(p.Key)
		value = q.Get(p.Key)
	default:
		return "", gwerrors.NewWithContext(gwerrors.ErrCodeInternal, "unsupported parameter source",
			map[string]any{"parameter": p.Name, "source": string(p.Source)})
	}

	return p.Validate(value, present)
}

// Validate accepts any value that is present and non-empty, whitespace
// included. Accepted values are returned byte-for-byte: no trimming, no case
// folding.
func (p Param) Validate(value string, present bool) (string, error) {
	if !present || value == "" {
		ctx := map[string]any{
			"parameter": p.Name,
			"source":    string(p.Source),
		}
		if present {
			ctx["value"] = value
		}
		return "", gwerrors.NewWithContext(gwerrors.ErrCodeInvalidRequest, p.Message, ctx)
	}
	return value, nil
}

// ParseSearchQuery builds a SearchQuery from r using p.
func ParseSearchQuery(r *http.Request, p Param) (*SearchQuery, error) {
	v, err := p.Extract(r)
	if err != nil {
		return nil, err
	}
	return &SearchQuery{Ingredient: v}, nil
}

// ParseLookupQuery builds a LookupQuery from r using p.
func ParseLookupQuery(r *http.Request, p Param) (*LookupQuery, error) {
	v, err := p.Extract(r)
	if err != nil {
		return nil, err
	}
	return &LookupQuery{MealID: v}, nil
}
