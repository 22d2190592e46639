// File: rcparams/schema.go
package rcparams

import (
	"maps"
	"slices"
)

// paramSpec ties a parameter's built-in default to its validator. Every
// registry key has exactly one spec and every default passes its own
// validator.
type paramSpec struct {
	Default  any
	Validate Validator
}

// defaultParams is the schema: the closed set of valid rc parameters.
// Keys are never added or removed at runtime.
var defaultParams = map[string]paramSpec{
	"data.http_protocol": {"https", makeChoice([]string{"https", "http"}, false)},
	"data.index_origin":  {0, makeIntChoice(0, 1)},
	"data.sample_dims":   {[]string{"chain", "draw"}, validateDims},
	"data.save_warmup":   {false, validateBoolean},

	"plot.backend":      {"auto", validateBackend},
	"plot.density_kind": {"kde", makeChoice([]string{"kde", "hist"}, false)},
	"plot.max_subplots": {40, orNone(validatePositiveInt)},

	"stats.module":  {"base", validateStatsModule},
	"stats.ci_kind": {"eti", makeChoice([]string{"eti", "hdi"}, false)},
	"stats.ci_prob": {0.94, validateProbability},

	"stats.ic_pointwise":      {true, validateBoolean},
	"stats.ic_scale":          {"log", makeChoice([]string{"log", "negative_log", "deviance"}, false)},
	"stats.ic_compare_method": {"stacking", makeChoice([]string{"stacking", "bb-pseudo-bma", "pseudo-bma"}, false)},
	"stats.point_estimate":    {"mean", makeChoice([]string{"mean", "median", "mode"}, true)},
}

// Keys returns every valid rc parameter name in lexicographic order.
func Keys() []string {
	return slices.Sorted(maps.Keys(defaultParams))
}
