package rf

import (
	"fmt"
	"math"
)

// Topology names the L-section chosen for a load.
type Topology string

const (
	TopologySeriesLShuntC Topology = "L-match (R < Z0)"
	TopologySeriesCShuntL Topology = "L-match (R > Z0)"
	TopologyNone          Topology = "No match needed"
)

// Network is the result of L-match synthesis. It is one of
// SeriesInductorShuntCapacitor, SeriesCapacitorShuntInductor or NoMatchNeeded.
type Network interface {
	Topology() Topology
	network()
}

// Section holds the design quantities shared by both reactive topologies.
type Section struct {
	Q float64
	// SeriesReactance and ShuntReactance are magnitudes in ohms.
	SeriesReactance float64
	ShuntReactance  float64
}

// SeriesInductorShuntCapacitor steps a low resistance up to Z0.
type SeriesInductorShuntCapacitor struct {
	Section
	InductanceH  float64
	CapacitanceF float64
}

// SeriesCapacitorShuntInductor steps a high resistance down to Z0.
type SeriesCapacitorShuntInductor struct {
	Section
	CapacitanceF float64
	InductanceH  float64
}

// NoMatchNeeded is returned when the load resistance already equals Z0.
type NoMatchNeeded struct{}

func (SeriesInductorShuntCapacitor) Topology() Topology { return TopologySeriesLShuntC }
func (SeriesCapacitorShuntInductor) Topology() Topology { return TopologySeriesCShuntL }
func (NoMatchNeeded) Topology() Topology                { return TopologyNone }

func (SeriesInductorShuntCapacitor) network() {}
func (SeriesCapacitorShuntInductor) network() {}
func (NoMatchNeeded) network()                {}

// Synthesize sizes an L-section matching a load of resistance r to z0 at frequencyHz.
//
// The load reactance x is accepted but not used: components are sized for a
// purely resistive mismatch. Absorbing or resonating out x is left to the caller.
func Synthesize(r, x, frequencyHz, z0 float64) (Network, error) {
	if !(frequencyHz > 0) || math.IsInf(frequencyHz, 0) {
		return nil, fmt.Errorf("%w: %g Hz", ErrInvalidFrequency, frequencyHz)
	}
	if !(r > 0) || math.IsInf(r, 0) {
		return nil, fmt.Errorf("%w: resistance must be positive, got %g ohms", ErrInvalidLoad, r)
	}

	omega := 2 * math.Pi * frequencyHz

	switch {
	case r < z0:
		q := math.Sqrt(z0/r - 1)
		xs := q * z0
		xp := r * q
		return SeriesInductorShuntCapacitor{
			Section:      Section{Q: q, SeriesReactance: xs, ShuntReactance: xp},
			InductanceH:  xs / omega,
			CapacitanceF: 1 / (omega * xp),
		}, nil
	case r > z0:
		q := math.Sqrt(r/z0 - 1)
		xs := z0 * q
		xp := r / q
		return SeriesCapacitorShuntInductor{
			Section:      Section{Q: q, SeriesReactance: xs, ShuntReactance: xp},
			CapacitanceF: 1 / (omega * xs),
			InductanceH:  xp / omega,
		}, nil
	default:
		return NoMatchNeeded{}, nil
	}
}

// Nanohenries converts henries to nH rounded for display.
func Nanohenries(h float64) float64 { return Round(h*1e9, 2) }

// Picofarads converts farads to pF rounded for display.
func Picofarads(f float64) float64 { return Round(f*1e12, 2) }

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
