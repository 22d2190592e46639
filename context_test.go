// File: rcparams/context_test.go
package rcparams

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverride(t *testing.T) {
	t.Run("AppliesAndRestores", func(t *testing.T) {
		p := NewWithDefaults()

		restore, err := p.Override(map[string]any{"plot.max_subplots": nil}, "")
		require.NoError(t, err)

		val, ok := p.Get("plot.max_subplots")
		require.True(t, ok)
		assert.Nil(t, val)

		restore()
		max, err := p.Int("plot.max_subplots")
		require.NoError(t, err)
		assert.Equal(t, 40, max)
	})

	t.Run("RestoresAfterPanic", func(t *testing.T) {
		p := NewWithDefaults()

		func() {
			defer func() { _ = recover() }()
			restore, err := p.Override(map[string]any{"stats.ci_prob": 0.5}, "")
			require.NoError(t, err)
			defer restore()
			panic("guarded block failure")
		}()

		prob, _ := p.Float64("stats.ci_prob")
		assert.Equal(t, 0.94, prob, "restore must run even when the guarded block panics")
	})

	t.Run("Nesting", func(t *testing.T) {
		p := NewWithDefaults()

		outerRestore, err := p.Override(map[string]any{"stats.ci_prob": 0.5}, "")
		require.NoError(t, err)
		innerRestore, err := p.Override(map[string]any{"stats.ci_prob": 0.7}, "")
		require.NoError(t, err)

		prob, _ := p.Float64("stats.ci_prob")
		assert.Equal(t, 0.7, prob)

		innerRestore()
		prob, _ = p.Float64("stats.ci_prob")
		assert.Equal(t, 0.5, prob, "inner restore reinstates the outer override")

		outerRestore()
		prob, _ = p.Float64("stats.ci_prob")
		assert.Equal(t, 0.94, prob)
	})

	t.Run("ExplicitOverridesWinOverFile", func(t *testing.T) {
		p := NewWithDefaults()
		path := filepath.Join(t.TempDir(), "arvizrc")
		require.NoError(t, os.WriteFile(path,
			[]byte("stats.ci_prob: 0.5\nstats.ci_kind: hdi\n"), 0644))

		restore, err := p.Override(map[string]any{"stats.ci_prob": 0.9}, path)
		require.NoError(t, err)
		defer restore()

		prob, _ := p.Float64("stats.ci_prob")
		assert.Equal(t, 0.9, prob, "rc mapping takes precedence over the file")
		kind, _ := p.String("stats.ci_kind")
		assert.Equal(t, "hdi", kind, "file values apply where not overridden")
	})

	t.Run("FailedApplyRestoresSnapshot", func(t *testing.T) {
		p := NewWithDefaults()
		before := p.Copy()

		_, err := p.Override(map[string]any{
			"stats.ci_kind": "hdi",
			"stats.ci_prob": 7,
		}, "")
		require.ErrorIs(t, err, ErrOutOfRange)
		assert.Equal(t, before, p.Copy(), "failed override must not leak partial state")
	})

	t.Run("MissingFileFails", func(t *testing.T) {
		p := NewWithDefaults()
		before := p.Copy()

		_, err := p.Override(nil, filepath.Join(t.TempDir(), "arvizrc"))
		require.Error(t, err)
		assert.Equal(t, before, p.Copy())
	})

	t.Run("SharedRegistry", func(t *testing.T) {
		before := Params.Copy()

		restore, err := Override(map[string]any{"plot.density_kind": "hist"}, "")
		require.NoError(t, err)

		kind, _ := Params.String("plot.density_kind")
		assert.Equal(t, "hist", kind)

		restore()
		assert.Equal(t, before, Params.Copy())
	})
}
