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

// Package recipe implements the recipe search and lookup operations of the
// gateway.
//
// A request flows through two stages:
//
//  1. Normalization: a Param declares which logical field a route expects
//     (ingredient or mealId), where it is read from (path or query) and the
//     message returned when it is missing. Absent, empty or blank values are
//     rejected with INVALID_REQUEST; accepted values pass through unchanged.
//  2. Proxy and mapping: the Service issues one upstream call and maps the
//     outcome to exactly one envelope.
//
// Envelopes:
//
//	search success   200 {"meals": [...], "total": 2, "searchTerm": "chicken"}
//	lookup success   200 {"meal": {...}}
//	missing param    400 {"error": "Recipe ID required", "context": {"parameter": "mealId", "source": "path"}}
//	unknown id       404 {"error": "Recipe not found", "id": "99999"}
//	upstream failure 500 {"error": "Unable to fetch recipes", "details": "request failed with status 503", "meals": []}
//
// A search with no results is a success with an empty list; a lookup with
// no results is a 404.
package recipe
