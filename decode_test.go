// File: rcparams/decode_test.go
package rcparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	t.Run("FullSnapshot", func(t *testing.T) {
		p := NewWithDefaults()

		var cfg Config
		require.NoError(t, p.Scan(&cfg))

		assert.Equal(t, "https", cfg.Data.HTTPProtocol)
		assert.Equal(t, 0, cfg.Data.IndexOrigin)
		assert.Equal(t, []string{"chain", "draw"}, cfg.Data.SampleDims)
		assert.False(t, cfg.Data.SaveWarmup)

		backend, _ := p.String("plot.backend")
		assert.Equal(t, backend, cfg.Plot.Backend)
		assert.Equal(t, "kde", cfg.Plot.DensityKind)
		require.NotNil(t, cfg.Plot.MaxSubplots)
		assert.Equal(t, 40, *cfg.Plot.MaxSubplots)

		assert.Equal(t, "base", cfg.Stats.Module)
		assert.Equal(t, "eti", cfg.Stats.CIKind)
		assert.Equal(t, 0.94, cfg.Stats.CIProb)
		assert.True(t, cfg.Stats.ICPointwise)
		assert.Equal(t, "log", cfg.Stats.ICScale)
		assert.Equal(t, "stacking", cfg.Stats.ICCompareMethod)
		require.NotNil(t, cfg.Stats.PointEstimate)
		assert.Equal(t, "mean", *cfg.Stats.PointEstimate)
	})

	t.Run("NoneValuesDecodeToNilPointers", func(t *testing.T) {
		p := NewWithDefaults()
		require.NoError(t, p.Set("plot.max_subplots", nil))
		require.NoError(t, p.Set("stats.point_estimate", "none"))

		var cfg Config
		require.NoError(t, p.Scan(&cfg))
		assert.Nil(t, cfg.Plot.MaxSubplots)
		assert.Nil(t, cfg.Stats.PointEstimate)
	})

	t.Run("SectionStruct", func(t *testing.T) {
		p := NewWithDefaults()
		require.NoError(t, p.Set("stats.ci_prob", 0.5))

		var cfg Config
		require.NoError(t, p.Scan(&cfg))
		assert.Equal(t, 0.5, cfg.Stats.CIProb)
	})

	t.Run("MapTarget", func(t *testing.T) {
		p := NewWithDefaults()

		out := make(map[string]any)
		require.NoError(t, p.Scan(&out))
		data, ok := out["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "https", data["http_protocol"])
	})

	t.Run("NonPointerTarget", func(t *testing.T) {
		p := NewWithDefaults()
		var cfg Config
		assert.Error(t, p.Scan(cfg))
	})

	t.Run("NilPointerTarget", func(t *testing.T) {
		p := NewWithDefaults()
		var cfg *Config
		assert.Error(t, p.Scan(cfg))
	})
}
