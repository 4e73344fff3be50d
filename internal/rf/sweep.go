package rf

import (
	"fmt"
	"math"
	"math/cmplx"
)

// DefaultSweepPoints is the number of samples in a reflection sweep.
const DefaultSweepPoints = 101

// Sweep band edges relative to the nominal frequency.
const (
	sweepLow  = 0.8
	sweepHigh = 1.2
)

// SweepSample is one point of a reflection sweep.
type SweepSample struct {
	FrequencyHz    float64
	GammaMagnitude float64
}

// Sweep samples |Γ| across [0.8·f0, 1.2·f0] at points evenly spaced
// frequencies, both edges included, in ascending order.
//
// The load is treated as frequency independent: every sample carries the same
// |Γ| and only the frequency label changes.
func Sweep(z complex128, z0, nominalHz float64, points int) ([]SweepSample, error) {
	if !(nominalHz > 0) || math.IsInf(nominalHz, 0) {
		return nil, fmt.Errorf("%w: %g Hz", ErrInvalidFrequency, nominalHz)
	}
	if points < 2 {
		return nil, fmt.Errorf("%w: sweep needs at least 2 points, got %d", ErrInvalidPoints, points)
	}

	g, err := ReflectionCoefficient(z, z0)
	if err != nil {
		return nil, err
	}
	mag := cmplx.Abs(g)

	lo := sweepLow * nominalHz
	hi := sweepHigh * nominalHz
	step := (hi - lo) / float64(points-1)

	samples := make([]SweepSample, points)
	for i := range samples {
		f := lo + step*float64(i)
		if i == points-1 {
			f = hi
		}
		samples[i] = SweepSample{FrequencyHz: f, GammaMagnitude: mag}
	}
	return samples, nil
}
