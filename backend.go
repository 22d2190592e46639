// File: rcparams/backend.go
package rcparams

import (
	"fmt"
	"slices"
)

// backendNames are the plot.backend values accepted by the schema.
var backendNames = []string{"auto", "bokeh", "matplotlib", "none", "plotly"}

// autoPriority is the probe order used to resolve "auto".
var autoPriority = []string{"matplotlib", "plotly", "bokeh"}

// registeredBackends holds the plotting backends announced via
// RegisterBackend. Go cannot probe for installed libraries the way a
// dynamic runtime can, so backend packages register themselves instead,
// the same way database/sql drivers do.
var registeredBackends = map[string]bool{}

// RegisterBackend announces that a plotting backend is available so that
// plot.backend "auto" can resolve to it. It is intended to be called from
// a backend package's init function. Unknown names are rejected.
func RegisterBackend(name string) error {
	if !slices.Contains(autoPriority, name) {
		return fmt.Errorf("%w: %q is not a known plotting backend (%v)", ErrInvalidChoice, name, autoPriority)
	}
	registeredBackends[name] = true
	return nil
}

// unregisterBackends clears the registration table. Test hook.
func unregisterBackends() {
	registeredBackends = map[string]bool{}
}

// resolveAutoBackend picks the first registered backend in priority
// order, or "none" when no backend is available.
func resolveAutoBackend() string {
	for _, name := range autoPriority {
		if registeredBackends[name] {
			logger.Info("resolved auto backend", "backend", name)
			return name
		}
	}
	logger.Info("no compatible plotting backend registered, using none as default backend")
	return "none"
}

// validateBackend validates plot.backend values, resolving "auto" to the
// first available registered backend. This is the one validator whose
// result depends on process state rather than on its input alone.
func validateBackend(value any) (any, error) {
	choice := makeChoice(backendNames, false)
	cval, err := choice(value)
	if err != nil {
		return nil, err
	}
	if cval != "auto" {
		return cval, nil
	}
	return resolveAutoBackend(), nil
}
