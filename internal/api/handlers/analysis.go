package handlers

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/rfmatch/internal/analysis"
	"github.com/RMahshie/rfmatch/internal/export"
	"github.com/RMahshie/rfmatch/internal/rf"
	"github.com/RMahshie/rfmatch/pkg/models"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// AnalysisHandler handles impedance-analysis HTTP requests
type AnalysisHandler struct {
	svc analysis.Service
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(svc analysis.Service) *AnalysisHandler {
	return &AnalysisHandler{svc: svc}
}

// Health reports service status
func (h *AnalysisHandler) Health(ctx context.Context, input *struct{}) (*models.HealthResponse, error) {
	resp := &models.HealthResponse{}
	resp.Body.Status = "healthy"
	resp.Body.Version = Version
	resp.Body.ReferenceImpedance = h.svc.ReferenceImpedance()
	resp.Body.Time = time.Now()
	return resp, nil
}

// Match designs an L-section for the load and traces its Γ path toward Z0
func (h *AnalysisHandler) Match(ctx context.Context, req *models.AnalysisRequest) (*models.MatchResponse, error) {
	load := loadOf(req)
	log.Info().Float64("frequency", req.Body.Frequency).Float64("z_real", load.Resistance).Float64("z_imag", load.Reactance).Msg("Match request received")

	res, err := h.svc.Match(load, req.Body.Frequency)
	if err != nil {
		return nil, toHTTPError("match", err)
	}

	path := make([][2]float64, len(res.GammaPath))
	for i, g := range res.GammaPath {
		path[i] = [2]float64{real(g), imag(g)}
	}

	return &models.MatchResponse{
		Body: models.MatchResponseBody{
			MatchingType: "l-match",
			GammaPath:    path,
			Components:   componentsOf(res.Network),
		},
	}, nil
}

// Sweep returns |Γ| across the band around the operating frequency
func (h *AnalysisHandler) Sweep(ctx context.Context, req *models.AnalysisRequest) (*models.SweepResponse, error) {
	samples, err := h.svc.Sweep(loadOf(req), req.Body.Frequency)
	if err != nil {
		return nil, toHTTPError("sweep", err)
	}

	resp := &models.SweepResponse{}
	resp.Body.Sweep = make([]models.SweepPoint, len(samples))
	for i, s := range samples {
		resp.Body.Sweep[i] = models.SweepPoint{
			Frequency: rf.Round(s.FrequencyHz/analysis.GHz, 3),
			GammaMag:  rf.Round(s.GammaMagnitude, 4),
		}
	}
	return resp, nil
}

// ExportSweep returns the sweep as an .xlsx workbook
func (h *AnalysisHandler) ExportSweep(ctx context.Context, req *models.AnalysisRequest) (*models.SweepExportResponse, error) {
	data, err := h.svc.SweepWorkbook(loadOf(req), req.Body.Frequency)
	if err != nil {
		return nil, toHTTPError("sweep_export", err)
	}

	return &models.SweepExportResponse{
		ContentType:        export.ContentType,
		ContentDisposition: fmt.Sprintf(`attachment; filename="sweep_%gGHz.xlsx"`, req.Body.Frequency),
		Body:               data,
	}, nil
}

// SParams returns the approximate two-port S-parameters of the load
func (h *AnalysisHandler) SParams(ctx context.Context, req *models.AnalysisRequest) (*models.SParamsResponse, error) {
	set, err := h.svc.SParams(loadOf(req))
	if err != nil {
		return nil, toHTTPError("sparams", err)
	}

	return &models.SParamsResponse{
		Body: models.SParamsResponseBody{
			S11: roundPair(set.S11, 4),
			S21: rf.Round(set.S21, 4),
			S12: rf.Round(set.S12, 4),
			S22: roundPair(set.S22, 4),
		},
	}, nil
}

// Reflection returns Γ and the figures derived from it
func (h *AnalysisHandler) Reflection(ctx context.Context, req *models.AnalysisRequest) (*models.ReflectionResponse, error) {
	r, err := h.svc.Reflection(loadOf(req))
	if err != nil {
		return nil, toHTTPError("reflection", err)
	}

	return &models.ReflectionResponse{
		Body: models.ReflectionResponseBody{
			Gamma:        roundPair(r.Gamma, 4),
			Magnitude:    rf.Round(r.Magnitude, 4),
			PhaseDeg:     rf.Round(r.PhaseDeg, 2),
			VSWR:         finite(r.VSWR, 4),
			ReturnLossDB: finite(r.ReturnLossDB, 2),
			Passive:      r.Passive,
		},
	}, nil
}

// Impedance maps a Smith chart point back to an impedance
func (h *AnalysisHandler) Impedance(ctx context.Context, req *models.ImpedanceRequest) (*models.ImpedanceResponse, error) {
	z, err := h.svc.Impedance(complex(req.Body.GammaReal, req.Body.GammaImag))
	if err != nil {
		return nil, toHTTPError("impedance", err)
	}

	resp := &models.ImpedanceResponse{}
	resp.Body.ZReal = rf.Round(real(z), 4)
	resp.Body.ZImag = rf.Round(imag(z), 4)
	return resp, nil
}

// Predict asks the classifier for a recommended topology
func (h *AnalysisHandler) Predict(ctx context.Context, req *models.AnalysisRequest) (*models.PredictResponse, error) {
	label, err := h.svc.Predict(loadOf(req), req.Body.Frequency)
	if err != nil {
		return nil, toHTTPError("predict", err)
	}

	resp := &models.PredictResponse{}
	resp.Body.RecommendedMatchType = label
	return resp, nil
}

func loadOf(req *models.AnalysisRequest) rf.Load {
	return rf.Load{Resistance: req.Body.ZReal, Reactance: req.Body.ZImag}
}

func componentsOf(n rf.Network) models.Components {
	c := models.Components{Type: string(n.Topology())}
	switch net := n.(type) {
	case rf.SeriesInductorShuntCapacitor:
		c.SeriesInductorNH = ptr(rf.Nanohenries(net.InductanceH))
		c.ShuntCapacitorPF = ptr(rf.Picofarads(net.CapacitanceF))
	case rf.SeriesCapacitorShuntInductor:
		c.SeriesCapacitorPF = ptr(rf.Picofarads(net.CapacitanceF))
		c.ShuntInductorNH = ptr(rf.Nanohenries(net.InductanceH))
	}
	return c
}

// toHTTPError turns rejected input into a 422 and anything else into a 500
func toHTTPError(operation string, err error) error {
	if analysis.IsRejection(err) {
		log.Warn().Err(err).Str("operation", operation).Msg("Request rejected")
		return huma.Error422UnprocessableEntity(message(err), err)
	}
	log.Error().Err(err).Str("operation", operation).Msg("Analysis failed")
	return huma.Error500InternalServerError("Analysis failed. Please try again.", err)
}

func message(err error) string {
	switch {
	case errors.Is(err, rf.ErrInvalidFrequency):
		return "Frequency must be a positive number of GHz."
	case errors.Is(err, rf.ErrInvalidLoad):
		return "Load resistance must be positive and the load must not cancel the reference impedance."
	case errors.Is(err, rf.ErrUnphysicalReflection):
		return "Load reflects more power than it receives; S-parameters need a passive load."
	case errors.Is(err, rf.ErrDegenerateInterpolation):
		return "The path from this load to the reference impedance passes through an undefined point."
	case errors.Is(err, rf.ErrInvalidReflection):
		return "Reflection coefficient 1 corresponds to an open circuit."
	default:
		return "Invalid input."
	}
}

func roundPair(c complex128, places int) [2]float64 {
	return [2]float64{rf.Round(real(c), places), rf.Round(imag(c), places)}
}

func finite(v float64, places int) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return ptr(rf.Round(v, places))
}

func ptr(v float64) *float64 { return &v }
