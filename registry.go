// File: rcparams/registry.go
package rcparams

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
)

// RcParams is the validated rc parameter registry. It behaves like an
// ordered mapping whose key set is fixed by the schema: writes are
// validated, iteration is lexicographic, and entries can never be
// removed. The zero value is not usable; call New or NewWithDefaults.
type RcParams struct {
	storage map[string]any
}

// New creates an empty registry. Values must be added through Set or
// Update, so everything stored is canonical.
func New() *RcParams {
	return &RcParams{
		storage: make(map[string]any, len(defaultParams)),
	}
}

// NewWithDefaults creates a registry holding every schema default. The
// defaults go through the same validation path as any other write; a
// failure there is a schema bug and panics.
func NewWithDefaults() *RcParams {
	p := New()
	for _, key := range Keys() {
		if err := p.Set(key, defaultParams[key].Default); err != nil {
			panic(fmt.Sprintf("rcparams: default for %s does not validate: %v", key, err))
		}
	}
	return p
}

// Get returns the canonical value stored for key. The second return
// value reports whether the key has been set.
func (p *RcParams) Get(key string) (any, bool) {
	val, ok := p.storage[key]
	return val, ok
}

// Set validates value with key's schema validator and stores the
// canonical result, overwriting any prior value. Keys outside the schema
// fail with ErrUnknownKey; validation failures are returned with the key
// name attached.
func (p *RcParams) Set(key string, value any) error {
	spec, ok := defaultParams[key]
	if !ok {
		return fmt.Errorf("%q is %w (see rcparams.Keys() for a list of valid parameters)", key, ErrUnknownKey)
	}
	cval, err := spec.Validate(value)
	if err != nil {
		return fmt.Errorf("key %s: %w", key, err)
	}
	p.storage[key] = cval
	return nil
}

// Update applies Set for every pair in values. Pairs are applied in
// lexicographic key order so failures are deterministic; the first
// failure aborts the update.
func (p *RcParams) Update(values map[string]any) error {
	for _, key := range slices.Sorted(maps.Keys(values)) {
		if err := p.Set(key, values[key]); err != nil {
			return err
		}
	}
	return nil
}

// Delete always fails: rc parameter keys cannot be removed.
func (p *RcParams) Delete(key string) error {
	return ErrNotSupported
}

// Clear always fails: rc parameter keys cannot be removed.
func (p *RcParams) Clear() error {
	return ErrNotSupported
}

// Pop always fails. Use Get to read values instead.
func (p *RcParams) Pop(key string) (any, error) {
	return nil, ErrNotSupported
}

// PopItem always fails. Use Get to read values instead.
func (p *RcParams) PopItem() (string, any, error) {
	return "", nil, ErrNotSupported
}

// SetDefault always fails: defaults are fixed in the schema and applied
// on construction. Use an arvizrc file to change startup values.
func (p *RcParams) SetDefault(key string, value any) error {
	return ErrNotSupported
}

// Has reports whether key has been set.
func (p *RcParams) Has(key string) bool {
	_, ok := p.storage[key]
	return ok
}

// Len returns the number of entries set.
func (p *RcParams) Len() int {
	return len(p.storage)
}

// SortedKeys returns the keys currently set, in lexicographic order.
func (p *RcParams) SortedKeys() []string {
	return slices.Sorted(maps.Keys(p.storage))
}

// FindAll returns a new registry holding only the entries whose key
// contains a match for pattern. Changes to the result are not propagated
// back to p.
func (p *RcParams) FindAll(pattern string) (*RcParams, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	sub := New()
	for _, key := range p.SortedKeys() {
		if re.MatchString(key) {
			if err := sub.Set(key, p.storage[key]); err != nil {
				return nil, err
			}
		}
	}
	return sub, nil
}

// Copy returns a plain snapshot of the current key/value pairs.
func (p *RcParams) Copy() map[string]any {
	snapshot := make(map[string]any, len(p.storage))
	maps.Copy(snapshot, p.storage)
	return snapshot
}

// Render returns the entries as sorted "key: value" lines.
func (p *RcParams) Render() string {
	var b strings.Builder
	for i, key := range p.SortedKeys() {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-22s: %v", key, p.storage[key])
	}
	return b.String()
}
