// Package mealdb is a small client for the TheMealDB JSON API.
//
// Only the two endpoints the gateway needs are covered:
//
//	filter.php?i=<ingredient>  meals that use an ingredient
//	lookup.php?i=<id>          the full record of one meal
//
// Every call issues exactly one GET, bounded by the configured timeout and by
// the caller's context. Records are returned as raw JSON; callers decide what
// an absent, null or empty "meals" value means for them. A well-formed JSON
// body that is not an object carries no meals and is not an error.
//
// All failures are *errors.StructuredError with code UPSTREAM_ERROR. The
// cause carries the diagnostic text: the transport error, "request failed
// with status <code>" for non-2xx answers, or the error for a body that is
// not JSON.
//
// Configuration comes from NewConfig (MEALDB_BASE_URL, MEALDB_TIMEOUT) and
// can be overridden with options:
//
//	c, err := mealdb.NewClient(
//	    mealdb.WithBaseURL("http://localhost:9000/api/json/v1/1"),
//	    mealdb.WithTimeout(5*time.Second),
//	)
package mealdb
