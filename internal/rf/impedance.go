// Package rf implements the impedance-matching math: reflection coefficients,
// L-section synthesis, reflection sweeps, approximate S-parameters and the
// Smith-chart path from a load toward the reference impedance.
//
// Everything here is a pure function of its arguments.
package rf

import (
	"fmt"
	"math"
	"math/cmplx"
)

// DefaultReferenceImpedance is the characteristic impedance used when none is configured.
const DefaultReferenceImpedance = 50.0

// zeroGuard is the smallest denominator magnitude treated as non-zero.
const zeroGuard = 1e-12

// Load is a one-port load. Negative resistance is outside the physical domain
// and is only accepted so that it can be rejected downstream.
type Load struct {
	Resistance float64
	Reactance  float64
}

// Impedance returns the load as R + jX.
func (l Load) Impedance() complex128 {
	return complex(l.Resistance, l.Reactance)
}

// Reflection holds the reflection coefficient of a load and the figures derived from it.
type Reflection struct {
	Gamma     complex128
	Magnitude float64
	PhaseDeg  float64
	// VSWR is +Inf for a total reflection.
	VSWR float64
	// ReturnLossDB is +Inf for a perfect match.
	ReturnLossDB float64
	Passive      bool
}

// ReflectionCoefficient computes Γ = (z − z0)/(z + z0).
func ReflectionCoefficient(z complex128, z0 float64) (complex128, error) {
	g, err := divide(z-complex(z0, 0), z+complex(z0, 0))
	if err != nil {
		return 0, fmt.Errorf("%w: z + z0 vanishes for z = %v", ErrInvalidLoad, z)
	}
	return g, nil
}

// Passive reports whether |Γ| ≤ 1, the bound every load with non-negative
// resistance satisfies.
func Passive(gamma complex128) bool {
	return cmplx.Abs(gamma) <= 1+zeroGuard
}

// Analyze derives magnitude, phase, VSWR and return loss for a load.
func Analyze(z complex128, z0 float64) (Reflection, error) {
	g, err := ReflectionCoefficient(z, z0)
	if err != nil {
		return Reflection{}, err
	}

	mag := cmplx.Abs(g)
	r := Reflection{
		Gamma:        g,
		Magnitude:    mag,
		PhaseDeg:     cmplx.Phase(g) * 180 / math.Pi,
		VSWR:         math.Inf(1),
		ReturnLossDB: math.Inf(1),
		Passive:      Passive(g),
	}
	if mag < 1 {
		r.VSWR = (1 + mag) / (1 - mag)
	}
	if mag > 0 {
		r.ReturnLossDB = -20 * math.Log10(mag)
	}
	return r, nil
}

// ImpedanceFromGamma maps a point of the Γ plane back to an impedance,
// z = z0(1 + Γ)/(1 − Γ).
func ImpedanceFromGamma(gamma complex128, z0 float64) (complex128, error) {
	z, err := divide(1+gamma, 1-gamma)
	if err != nil {
		return 0, fmt.Errorf("%w: Γ = 1 maps to an open circuit", ErrInvalidReflection)
	}
	return complex(z0, 0) * z, nil
}

// divide refuses denominators whose magnitude is effectively zero instead of
// returning Inf or NaN.
func divide(num, den complex128) (complex128, error) {
	if cmplx.Abs(den) < zeroGuard {
		return 0, errZeroDivisor
	}
	return num / den, nil
}
