package rf

import "fmt"

// DefaultPathSteps is the number of interpolation steps in a Γ path.
const DefaultPathSteps = 10

// Path traces Γ from the load toward the reference impedance. The impedance,
// not Γ, is interpolated linearly: Z_i = Z + (Z0 − Z)·i/steps. The result has
// steps+1 points, starting at the load's Γ and ending at 0.
//
// A sample whose Z_i + Z0 vanishes fails the whole path.
func Path(z complex128, z0 float64, steps int) ([]complex128, error) {
	if steps < 1 {
		return nil, fmt.Errorf("%w: path needs at least 1 step, got %d", ErrInvalidPoints, steps)
	}

	ref := complex(z0, 0)
	points := make([]complex128, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := complex(float64(i)/float64(steps), 0)
		zi := z + (ref-z)*t

		g, err := divide(zi-ref, zi+ref)
		if err != nil {
			return nil, fmt.Errorf("%w: step %d of %d reaches z = %v", ErrDegenerateInterpolation, i, steps, zi)
		}
		points = append(points, g)
	}
	return points, nil
}
