package analysis

import (
	"errors"
	"math/cmplx"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/RMahshie/rfmatch/internal/classifier"
	"github.com/RMahshie/rfmatch/internal/export"
	"github.com/RMahshie/rfmatch/internal/metrics"
	"github.com/RMahshie/rfmatch/internal/rf"
)

// GHz converts the transport frequency unit to hertz.
const GHz = 1e9

// MatchResult bundles the L-section design with the Γ path toward Z0.
type MatchResult struct {
	Network   rf.Network
	GammaPath []complex128
}

// Service answers the analysis operations for a fixed reference impedance.
type Service interface {
	Match(load rf.Load, frequencyGHz float64) (*MatchResult, error)
	Sweep(load rf.Load, frequencyGHz float64) ([]rf.SweepSample, error)
	SweepWorkbook(load rf.Load, frequencyGHz float64) ([]byte, error)
	SParams(load rf.Load) (rf.ScatteringSet, error)
	Reflection(load rf.Load) (rf.Reflection, error)
	Impedance(gamma complex128) (complex128, error)
	Predict(load rf.Load, frequencyGHz float64) (string, error)
	ReferenceImpedance() float64
}

type service struct {
	z0         float64
	classifier classifier.Classifier
	metrics    *metrics.Metrics
}

// NewService creates the analysis service. m may be nil.
func NewService(z0 float64, c classifier.Classifier, m *metrics.Metrics) Service {
	return &service{
		z0:         z0,
		classifier: c,
		metrics:    m,
	}
}

func (s *service) ReferenceImpedance() float64 { return s.z0 }

func (s *service) Match(load rf.Load, frequencyGHz float64) (*MatchResult, error) {
	var result *MatchResult
	err := s.run("match", func() error {
		network, err := rf.Synthesize(load.Resistance, load.Reactance, frequencyGHz*GHz, s.z0)
		if err != nil {
			return err
		}
		path, err := rf.Path(load.Impedance(), s.z0, rf.DefaultPathSteps)
		if err != nil {
			return err
		}
		s.metrics.ObserveGamma(cmplx.Abs(path[0]))
		result = &MatchResult{Network: network, GammaPath: path}
		return nil
	})
	return result, err
}

func (s *service) Sweep(load rf.Load, frequencyGHz float64) ([]rf.SweepSample, error) {
	var samples []rf.SweepSample
	err := s.run("sweep", func() error {
		var err error
		samples, err = rf.Sweep(load.Impedance(), s.z0, frequencyGHz*GHz, rf.DefaultSweepPoints)
		return err
	})
	return samples, err
}

func (s *service) SweepWorkbook(load rf.Load, frequencyGHz float64) ([]byte, error) {
	var data []byte
	err := s.run("sweep_export", func() error {
		samples, err := rf.Sweep(load.Impedance(), s.z0, frequencyGHz*GHz, rf.DefaultSweepPoints)
		if err != nil {
			return err
		}
		data, err = export.SweepWorkbook(load, s.z0, frequencyGHz*GHz, samples)
		return err
	})
	return data, err
}

func (s *service) SParams(load rf.Load) (rf.ScatteringSet, error) {
	var set rf.ScatteringSet
	err := s.run("sparams", func() error {
		var err error
		set, err = rf.Approximate(load.Impedance(), s.z0)
		return err
	})
	return set, err
}

func (s *service) Reflection(load rf.Load) (rf.Reflection, error) {
	var r rf.Reflection
	err := s.run("reflection", func() error {
		var err error
		r, err = rf.Analyze(load.Impedance(), s.z0)
		if err != nil {
			return err
		}
		s.metrics.ObserveGamma(r.Magnitude)
		if !r.Passive {
			log.Warn().
				Float64("resistance", load.Resistance).
				Float64("reactance", load.Reactance).
				Float64("gamma_mag", r.Magnitude).
				Msg("Load reflects more power than it receives")
		}
		return nil
	})
	return r, err
}

func (s *service) Impedance(gamma complex128) (complex128, error) {
	var z complex128
	err := s.run("impedance", func() error {
		var err error
		z, err = rf.ImpedanceFromGamma(gamma, s.z0)
		return err
	})
	return z, err
}

func (s *service) Predict(load rf.Load, frequencyGHz float64) (string, error) {
	var label string
	err := s.run("predict", func() error {
		var err error
		label, err = s.classifier.Predict([]float64{load.Resistance, load.Reactance, frequencyGHz * GHz})
		if err != nil {
			return err
		}
		s.metrics.IncrementPrediction(label)
		return nil
	})
	return label, err
}

// run times fn and records its outcome.
func (s *service) run(operation string, fn func() error) error {
	start := time.Now()
	err := fn()
	s.metrics.ObserveOperation(operation, outcome(err), time.Since(start))
	return err
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case IsRejection(err):
		return "rejected"
	default:
		return "error"
	}
}

// IsRejection reports whether err is a validation failure of the caller's input
// rather than a fault of the service.
func IsRejection(err error) bool {
	for _, target := range []error{
		rf.ErrInvalidLoad,
		rf.ErrInvalidFrequency,
		rf.ErrUnphysicalReflection,
		rf.ErrDegenerateInterpolation,
		rf.ErrInvalidPoints,
		rf.ErrInvalidReflection,
		classifier.ErrInvalidFeatures,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
