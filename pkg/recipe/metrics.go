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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation outcomes.
const (
	outcomeFound         = "found"
	outcomeEmpty         = "empty"
	outcomeNotFound      = "not_found"
	outcomeUpstreamError = "upstream_error"
)

const (
	operationSearch = "search"
	operationLookup = "lookup"
)

var (
	recipeRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipegw_recipe_requests_total",
			Help: "Total number of recipe operations by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	recipeResultSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recipegw_recipe_search_results",
			Help:    "Number of meals returned by ingredient searches",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
	)
)
