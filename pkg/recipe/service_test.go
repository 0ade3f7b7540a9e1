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
	"encoding/json"
	"errors"
	"testing"

	gwerrors "github.com/NVIDIA/recipe-gateway/pkg/errors"
	"github.com/NVIDIA/recipe-gateway/pkg/mealdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUpstream answers every call with the same payload or error.
type fakeUpstream struct {
	body    string
	err     error
	gotCall string
	gotArg  string
}

func (f *fakeUpstream) respond() (*mealdb.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	var resp mealdb.Response
	if err := json.Unmarshal([]byte(f.body), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (f *fakeUpstream) FilterByIngredient(_ context.Context, ingredient string) (*mealdb.Response, error) {
	f.gotCall, f.gotArg = "filter", ingredient
	return f.respond()
}

func (f *fakeUpstream) LookupByID(_ context.Context, id string) (*mealdb.Response, error) {
	f.gotCall, f.gotArg = "lookup", id
	return f.respond()
}

func TestService_Search(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantTotal int
	}{
		{"two meals", `{"meals":[{"id":1},{"id":2}]}`, 2},
		{"null meals", `{"meals":null}`, 0},
		{"absent meals", `{}`, 0},
		{"empty meals", `{"meals":[]}`, 0},
		{"non-array meals", `{"meals":"none"}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up := &fakeUpstream{body: tt.body}
			svc := NewService(up)

			res, err := svc.Search(context.Background(), SearchQuery{Ingredient: "chicken"})
			require.NoError(t, err)

			assert.Equal(t, "filter", up.gotCall)
			assert.Equal(t, "chicken", up.gotArg)
			assert.Equal(t, "chicken", res.SearchTerm)
			assert.Equal(t, tt.wantTotal, res.Total)
			assert.Len(t, res.Meals, res.Total)
			assert.NotNil(t, res.Meals)
		})
	}
}

func TestService_SearchEmptySerializesAsArray(t *testing.T) {
	svc := NewService(&fakeUpstream{body: `{"meals":null}`})

	res, err := svc.Search(context.Background(), SearchQuery{Ingredient: "unobtainium"})
	require.NoError(t, err)

	b, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"meals":[],"total":0,"searchTerm":"unobtainium"}`, string(b))
}

func TestService_Lookup(t *testing.T) {
	t.Run("found returns first meal", func(t *testing.T) {
		up := &fakeUpstream{body: `{"meals":[{"idMeal":"52772"},{"idMeal":"other"}]}`}
		res, err := NewService(up).Lookup(context.Background(), LookupQuery{MealID: "52772"})
		require.NoError(t, err)

		assert.Equal(t, "lookup", up.gotCall)
		assert.JSONEq(t, `{"idMeal":"52772"}`, string(res.Meal))
	})

	for _, body := range []string{`{"meals":null}`, `{}`, `{"meals":[]}`, `{"meals":false}`} {
		t.Run("not found "+body, func(t *testing.T) {
			_, err := NewService(&fakeUpstream{body: body}).Lookup(context.Background(), LookupQuery{MealID: "99999"})
			require.Error(t, err)

			var se *gwerrors.StructuredError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, gwerrors.ErrCodeNotFound, se.Code)
			assert.Equal(t, "Recipe not found", se.Message)
			assert.Equal(t, "99999", se.Context["id"])
		})
	}

	t.Run("non-numeric id forwarded unchanged", func(t *testing.T) {
		up := &fakeUpstream{body: `{"meals":null}`}
		_, err := NewService(up).Lookup(context.Background(), LookupQuery{MealID: "abc"})
		require.Error(t, err)
		assert.Equal(t, "abc", up.gotArg)
	})
}

func TestService_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"structured upstream error", gwerrors.Wrap(gwerrors.ErrCodeUpstream, "upstream request failed", errors.New("connection refused"))},
		{"plain error", errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeUpstream{err: tt.err})

			_, err := svc.Search(context.Background(), SearchQuery{Ingredient: "chicken"})
			require.Error(t, err)
			assert.True(t, gwerrors.IsCode(err, gwerrors.ErrCodeUpstream))
			assert.Contains(t, err.Error(), "connection refused")

			_, err = svc.Lookup(context.Background(), LookupQuery{MealID: "1"})
			require.Error(t, err)
			assert.True(t, gwerrors.IsCode(err, gwerrors.ErrCodeUpstream))
		})
	}
}

func TestNewSearchResult(t *testing.T) {
	res := NewSearchResult("x", nil)
	assert.NotNil(t, res.Meals)
	assert.Equal(t, 0, res.Total)

	res = NewSearchResult("x", []Meal{Meal(`{}`)})
	assert.Equal(t, 1, res.Total)
}
