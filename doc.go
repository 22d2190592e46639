// Package rcparams provides the validated configuration registry for the
// arviz statistics and visualization stack: a fixed-schema, ordered
// key-value store seeded from built-in defaults and optionally overridden
// by an "arvizrc" file discovered on a platform-dependent search path.
//
// Features:
//   - Closed schema: the valid keys, their defaults and their validators
//     are fixed at build time; writes to unknown keys fail
//   - Every stored value has passed its key's validator, so readers never
//     see raw or uncoerced input
//   - Keys can never be deleted; once initialized the registry covers the
//     full schema for the life of the process
//   - arvizrc file discovery (working directory, ARVIZ_DATA, XDG config
//     dirs) with line-based, TOML and YAML file variants
//   - Scoped overrides that restore the previous state when released
//   - Typed struct snapshots via mapstructure
//
// Quick Start:
//
//	prob, err := rcparams.Params.Float64("stats.ci_prob")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := rcparams.Params.Set("plot.backend", "bokeh"); err != nil {
//	    log.Fatal(err)
//	}
//
// Temporary overrides:
//
//	restore, err := rcparams.Override(map[string]any{"plot.max_subplots": nil}, "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer restore()
//
// File format (arvizrc):
//
//	# comment
//	stats.ci_prob: 0.9
//	data.sample_dims: chain, draw
//
// Concurrency:
// The registry is ordinary mutable shared state with no locking. It is
// meant for single-threaded, startup-then-read use; concurrent mutation
// from multiple goroutines requires external synchronization.
package rcparams
