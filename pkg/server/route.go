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

package server

import (
	"net/http"
	"slices"
	"strings"

	gwerrors "github.com/NVIDIA/recipe-gateway/pkg/errors"
)

// Route is an API endpoint served behind the middleware chain.
type Route struct {
	// Pattern is the ServeMux pattern without a method, e.g. "/search/{ingredient}".
	Pattern string

	// Usage is how the route is advertised in the service directory,
	// e.g. "GET /search/:ingredient". Routes without usage are not advertised.
	Usage string

	// Description is shown next to Usage in the service directory.
	Description string

	// Methods lists the accepted HTTP methods; GET when empty.
	Methods []string

	// Handler serves matching requests.
	Handler http.HandlerFunc
}

func (rt Route) methods() []string {
	if len(rt.Methods) == 0 {
		return []string{http.MethodGet}
	}
	return rt.Methods
}

// allowMethods rejects requests whose method the route does not accept.
// HEAD is served wherever GET is.
func allowMethods(methods []string, next http.HandlerFunc) http.HandlerFunc {
	allow := strings.Join(methods, ", ")
	return func(w http.ResponseWriter, r *http.Request) {
		method := r.Method
		if method == http.MethodHead {
			method = http.MethodGet
		}
		if !slices.Contains(methods, method) {
			w.Header().Set("Allow", allow)
			WriteError(w, r, http.StatusMethodNotAllowed, gwerrors.ErrCodeMethodNotAllowed,
				"Method not allowed", false, map[string]any{
					"method": r.Method,
					"allow":  methods,
				})
			return
		}
		next.ServeHTTP(w, r)
	}
}
