package rf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wifiHz = 2.4e9

func TestSynthesize_Topology(t *testing.T) {
	tests := []struct {
		name string
		r, x float64
		want Topology
	}{
		{name: "low resistance steps up", r: 30, x: 0, want: TopologySeriesLShuntC},
		{name: "high resistance steps down", r: 75, x: 0, want: TopologySeriesCShuntL},
		{name: "matched resistance", r: 50, x: 0, want: TopologyNone},
		{name: "matched resistance ignores reactance", r: 50, x: -120, want: TopologyNone},
		{name: "reactance does not change topology", r: 30, x: 400, want: TopologySeriesLShuntC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Synthesize(tt.r, tt.x, wifiHz, DefaultReferenceImpedance)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n.Topology())
		})
	}
}

func TestSynthesize_StepUp(t *testing.T) {
	n, err := Synthesize(30, 0, wifiHz, DefaultReferenceImpedance)
	require.NoError(t, err)

	net, ok := n.(SeriesInductorShuntCapacitor)
	require.True(t, ok, "got %T", n)

	q := math.Sqrt(50.0/30 - 1)
	omega := 2 * math.Pi * wifiHz
	assert.InDelta(t, 0.8165, net.Q, 1e-4)
	assert.InDelta(t, q*50, net.SeriesReactance, 1e-12)
	assert.InDelta(t, 30*q, net.ShuntReactance, 1e-12)
	assert.InDelta(t, q*50/omega, net.InductanceH, 1e-21)
	assert.InDelta(t, 1/(omega*30*q), net.CapacitanceF, 1e-24)

	assert.Equal(t, 2.71, Nanohenries(net.InductanceH))
	assert.Equal(t, 2.71, Picofarads(net.CapacitanceF))
}

func TestSynthesize_StepDown(t *testing.T) {
	n, err := Synthesize(75, 10, wifiHz, DefaultReferenceImpedance)
	require.NoError(t, err)

	net, ok := n.(SeriesCapacitorShuntInductor)
	require.True(t, ok, "got %T", n)

	q := math.Sqrt(75.0/50 - 1)
	omega := 2 * math.Pi * wifiHz
	assert.InDelta(t, q, net.Q, 1e-12)
	assert.InDelta(t, 50*q, net.SeriesReactance, 1e-12)
	assert.InDelta(t, 75/q, net.ShuntReactance, 1e-12)
	assert.InDelta(t, 1/(omega*50*q), net.CapacitanceF, 1e-24)
	assert.InDelta(t, 75/q/omega, net.InductanceH, 1e-21)
}

func TestSynthesize_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		r, f    float64
		wantErr error
	}{
		{name: "zero resistance", r: 0, f: wifiHz, wantErr: ErrInvalidLoad},
		{name: "negative resistance", r: -5, f: wifiHz, wantErr: ErrInvalidLoad},
		{name: "NaN resistance", r: math.NaN(), f: wifiHz, wantErr: ErrInvalidLoad},
		{name: "zero frequency", r: 30, f: 0, wantErr: ErrInvalidFrequency},
		{name: "negative frequency", r: 75, f: -1e9, wantErr: ErrInvalidFrequency},
		{name: "zero frequency on matched load", r: 50, f: 0, wantErr: ErrInvalidFrequency},
		{name: "infinite frequency", r: 30, f: math.Inf(1), wantErr: ErrInvalidFrequency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Synthesize(tt.r, 0, tt.f, DefaultReferenceImpedance)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, n)
		})
	}
}

// Feeding the displayed nH/pF values back through Xs = ωL and Xp = 1/(ωC)
// must land on the Q-derived reactances within display rounding.
func TestSynthesize_DisplayedComponentsRoundTrip(t *testing.T) {
	freqs := []float64{0.9e9, wifiHz, 5.8e9}
	loads := []float64{5, 12.5, 30, 45, 60, 75, 150, 300}

	for _, f := range freqs {
		omega := 2 * math.Pi * f
		for _, r := range loads {
			n, err := Synthesize(r, 0, f, DefaultReferenceImpedance)
			require.NoError(t, err)

			var lNH, cPF float64
			var sec Section
			var seriesIsL bool
			switch net := n.(type) {
			case SeriesInductorShuntCapacitor:
				lNH, cPF, sec, seriesIsL = Nanohenries(net.InductanceH), Picofarads(net.CapacitanceF), net.Section, true
			case SeriesCapacitorShuntInductor:
				lNH, cPF, sec = Nanohenries(net.InductanceH), Picofarads(net.CapacitanceF), net.Section
			default:
				t.Fatalf("unexpected network %T for R=%g", n, r)
			}

			xl := omega * lNH * 1e-9
			xc := 1 / (omega * cPF * 1e-12)
			// worst-case reactance error from rounding to 0.005 nH / pF
			lTol := omega * 0.005e-9 * 1.01
			cTol := xc * 0.005 / (cPF - 0.005) * 1.01

			if seriesIsL {
				assert.InDelta(t, sec.SeriesReactance, xl, lTol, "f=%g R=%g series", f, r)
				assert.InDelta(t, sec.ShuntReactance, xc, cTol, "f=%g R=%g shunt", f, r)
			} else {
				assert.InDelta(t, sec.ShuntReactance, xl, lTol, "f=%g R=%g shunt", f, r)
				assert.InDelta(t, sec.SeriesReactance, xc, cTol, "f=%g R=%g series", f, r)
			}
		}
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 2.71, Round(2.70725, 2))
	assert.Equal(t, 0.3333, Round(1.0/3, 4))
	assert.Equal(t, 2.4, Round(2.4000000000000004, 3))
}
