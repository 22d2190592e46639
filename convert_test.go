// File: rcparams/convert_test.go
package rcparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsString(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    string
		wantErr bool
	}{
		{"String", "kde", "kde", false},
		{"Bytes", []byte("hdi"), "hdi", false},
		{"Bool", true, "true", false},
		{"Int", 40, "40", false},
		{"Float64", 0.94, "0.94", false},
		{"Float32", float32(0.1), "0.1", false},
		{"Nil", nil, "", true},
		{"Slice", []int{1}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := asString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrConversion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAsInt(t *testing.T) {
	got, err := asInt("12")
	require.NoError(t, err)
	assert.Equal(t, 12, got)

	got, err = asInt(3.9)
	require.NoError(t, err)
	assert.Equal(t, 3, got, "floats truncate")

	_, err = asInt("4.5")
	assert.ErrorIs(t, err, ErrConversion)
}

func TestAsFloat(t *testing.T) {
	got, err := asFloat(float32(0.5))
	require.NoError(t, err)
	assert.Equal(t, 0.5, got)

	got, err = asFloat("0.94")
	require.NoError(t, err)
	assert.Equal(t, 0.94, got)

	_, err = asFloat("high")
	assert.ErrorIs(t, err, ErrConversion)
}
