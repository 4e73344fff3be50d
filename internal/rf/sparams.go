package rf

import (
	"fmt"
	"math"
	"math/cmplx"
)

// ScatteringSet is a two-port S-parameter set built from a one-port reflection
// under a lossless, reciprocal, passive assumption.
type ScatteringSet struct {
	S11 complex128
	S21 float64
	S12 float64
	S22 complex128
}

// Approximate returns S11 = Γ, S22 = 0 and S21 = S12 = sqrt(1 − |Γ|²).
// A reflection larger than unity has no real transmission and is rejected.
func Approximate(z complex128, z0 float64) (ScatteringSet, error) {
	g, err := ReflectionCoefficient(z, z0)
	if err != nil {
		return ScatteringSet{}, err
	}

	mag := cmplx.Abs(g)
	residual := 1 - mag*mag
	if residual < 0 {
		if !Passive(g) {
			return ScatteringSet{}, fmt.Errorf("%w: |Γ| = %g exceeds 1", ErrUnphysicalReflection, mag)
		}
		// rounding on a lossless load
		residual = 0
	}

	t := math.Sqrt(residual)
	return ScatteringSet{
		S11: g,
		S21: t,
		S12: t,
		S22: 0,
	}, nil
}
