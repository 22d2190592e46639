// File: rcparams/builder.go
package rcparams

import "fmt"

// Builder provides a fluent interface for constructing a registry with a
// specific file and override set, bypassing the shared Params instance.
type Builder struct {
	file        string
	overrides   map[string]any
	ignoreFiles bool
}

// NewBuilder creates a registry builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithFile sets an explicit configuration file, skipping discovery.
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithOverrides sets values applied on top of defaults and file values.
func (b *Builder) WithOverrides(values map[string]any) *Builder {
	if b.overrides == nil {
		b.overrides = make(map[string]any, len(values))
	}
	for key, value := range values {
		b.overrides[key] = value
	}
	return b
}

// IgnoreFiles disables configuration file discovery; only defaults and
// explicit overrides apply.
func (b *Builder) IgnoreFiles() *Builder {
	b.ignoreFiles = true
	return b
}

// Build constructs the registry: schema defaults, then the configured
// (or discovered) file, then explicit overrides.
func (b *Builder) Build() (*RcParams, error) {
	var params *RcParams

	if b.file != "" {
		params = NewWithDefaults()
		fileParams, err := ReadFile(b.file)
		if err != nil {
			return nil, err
		}
		if err := params.Update(fileParams.Copy()); err != nil {
			return nil, err
		}
	} else {
		var err error
		params, err = Load(b.ignoreFiles)
		if err != nil {
			return nil, err
		}
	}

	if b.overrides != nil {
		if err := params.Update(b.overrides); err != nil {
			return nil, err
		}
	}

	return params, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *RcParams {
	params, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("rcparams build failed: %v", err))
	}
	return params
}
