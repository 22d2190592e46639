// File: rcparams/decode.go
package rcparams

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// DataConfig is the typed view of the data.* parameters.
type DataConfig struct {
	HTTPProtocol string   `rc:"http_protocol"`
	IndexOrigin  int      `rc:"index_origin"`
	SampleDims   []string `rc:"sample_dims"`
	SaveWarmup   bool     `rc:"save_warmup"`
}

// PlotConfig is the typed view of the plot.* parameters.
type PlotConfig struct {
	Backend     string `rc:"backend"`
	DensityKind string `rc:"density_kind"`
	// MaxSubplots is nil when plot.max_subplots is none (unlimited).
	MaxSubplots *int `rc:"max_subplots"`
}

// StatsConfig is the typed view of the stats.* parameters.
type StatsConfig struct {
	// Module is the module name, or a StatsModule implementation when one
	// was set directly.
	Module          any     `rc:"module"`
	CIKind          string  `rc:"ci_kind"`
	CIProb          float64 `rc:"ci_prob"`
	ICPointwise     bool    `rc:"ic_pointwise"`
	ICScale         string  `rc:"ic_scale"`
	ICCompareMethod string  `rc:"ic_compare_method"`
	// PointEstimate is nil when stats.point_estimate is none.
	PointEstimate *string `rc:"point_estimate"`
}

// Config is the typed snapshot of a full registry.
type Config struct {
	Data  DataConfig  `rc:"data"`
	Plot  PlotConfig  `rc:"plot"`
	Stats StatsConfig `rc:"stats"`
}

// Scan decodes the current registry state into target, which must be a
// non-nil pointer to a struct or map. Dot-notation keys become nested
// fields matched through the "rc" struct tag; Config is the ready-made
// target for a full snapshot.
func (p *RcParams) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be a non-nil pointer, got %T", target)
	}

	nested := make(map[string]any)
	for key, value := range p.storage {
		setNestedValue(nested, key, value)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "rc",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(nested); err != nil {
		return fmt.Errorf("failed to scan rc params into %T: %w", target, err)
	}
	return nil
}
