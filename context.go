// File: rcparams/context.go
package rcparams

import "fmt"

// Override temporarily modifies the registry and returns a restore
// function that puts every key back to the value it held on entry.
// Callers are expected to defer the restore immediately:
//
//	restore, err := params.Override(map[string]any{"plot.max_subplots": nil}, "")
//	if err != nil {
//	    return err
//	}
//	defer restore()
//
// When fname is non-empty that file is read and merged first; the rc
// mapping is merged on top, so explicit overrides win over file-sourced
// ones. Overrides nest: each restore reinstates the state as of its own
// Override call, so deferred restores unwind innermost first.
//
// If applying the overrides fails, the snapshot is reinstated before the
// error is returned, so a failed Override never leaks partial state.
func (p *RcParams) Override(rc map[string]any, fname string) (func(), error) {
	orig := p.Copy()
	restore := func() {
		// Snapshot values are already canonical, so they go straight back
		// into storage. Restoration cannot fail.
		for key, value := range orig {
			p.storage[key] = value
		}
	}

	if fname != "" {
		fileParams, err := ReadFile(fname)
		if err != nil {
			restore()
			return nil, fmt.Errorf("override from file: %w", err)
		}
		if err := p.Update(fileParams.Copy()); err != nil {
			restore()
			return nil, fmt.Errorf("override from file: %w", err)
		}
	}

	if rc != nil {
		if err := p.Update(rc); err != nil {
			restore()
			return nil, err
		}
	}

	return restore, nil
}

// Override applies a scoped override to the shared Params registry. See
// RcParams.Override.
func Override(rc map[string]any, fname string) (func(), error) {
	return Params.Override(rc, fname)
}
