package rf

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abs(c complex128) float64 { return cmplx.Abs(c) }

func TestApproximate_MatchedLoad(t *testing.T) {
	s, err := Approximate(complex(50, 0), DefaultReferenceImpedance)
	require.NoError(t, err)

	assert.Equal(t, complex128(0), s.S11)
	assert.Equal(t, 1.0, s.S21)
	assert.Equal(t, 1.0, s.S12)
	assert.Equal(t, complex128(0), s.S22)
}

func TestApproximate_ConservesPower(t *testing.T) {
	for _, z := range []complex128{10, complex(30, 20), 100, complex(75, -60), complex(2, 300)} {
		s, err := Approximate(z, DefaultReferenceImpedance)
		require.NoError(t, err)

		assert.InDelta(t, 1.0, abs(s.S11)*abs(s.S11)+s.S21*s.S21, 1e-12, "z=%v", z)
		assert.Equal(t, s.S21, s.S12)
		assert.Equal(t, complex128(0), s.S22)
	}
}

func TestApproximate_LosslessLoadHasNoTransmission(t *testing.T) {
	s, err := Approximate(complex(0, 50), DefaultReferenceImpedance)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, s.S21, 1e-6)
	assert.False(t, math.IsNaN(s.S21))
}

func TestApproximate_RejectsNegativeResistance(t *testing.T) {
	tests := []struct {
		name    string
		z       complex128
		wantErr error
	}{
		{name: "negative resistance", z: complex(-10, 0), wantErr: ErrUnphysicalReflection},
		{name: "negative resistance with reactance", z: complex(-1, 30), wantErr: ErrUnphysicalReflection},
		{name: "negated reference", z: complex(-50, 0), wantErr: ErrInvalidLoad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Approximate(tt.z, DefaultReferenceImpedance)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
