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

package mealdb

import (
	"bytes"
	"encoding/json"
)

// Response is the envelope TheMealDB wraps every list in. The records are
// kept raw; their shape belongs to the upstream service.
type Response struct {
	Meals json.RawMessage `json:"meals"`
}

// MealList returns the meal records, or nil when meals is absent, null,
// empty or not an array.
func (r *Response) MealList() []json.RawMessage {
	if r == nil {
		return nil
	}
	raw := bytes.TrimSpace(r.Meals)
	if len(raw) == 0 || raw[0] != '[' {
		return nil
	}

	var meals []json.RawMessage
	if err := json.Unmarshal(raw, &meals); err != nil {
		return nil
	}
	if len(meals) == 0 {
		return nil
	}
	return meals
}
