package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/RMahshie/rfmatch/internal/analysis"
	"github.com/RMahshie/rfmatch/internal/api/handlers"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(api huma.API, svc analysis.Service) {
	// Initialize handlers
	h := handlers.NewAnalysisHandler(svc)

	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns the health status of the service",
	}, h.Health)

	// Register analysis routes
	huma.Register(api, huma.Operation{
		OperationID: "match",
		Method:      http.MethodPost,
		Path:        "/match",
		Summary:     "Design an L-match",
		Description: "Synthesizes an L-section matching the load to the reference impedance and traces the reflection coefficient path",
		Tags:        []string{"Matching"},
	}, h.Match)

	huma.Register(api, huma.Operation{
		OperationID: "sweep",
		Method:      http.MethodPost,
		Path:        "/sweep",
		Summary:     "Reflection sweep",
		Description: "Returns 101 samples of the reflection magnitude from 0.8 to 1.2 times the operating frequency",
		Tags:        []string{"Analysis"},
	}, h.Sweep)

	huma.Register(api, huma.Operation{
		OperationID: "exportSweep",
		Method:      http.MethodPost,
		Path:        "/sweep/export",
		Summary:     "Export reflection sweep",
		Description: "Returns the reflection sweep as an Excel workbook",
		Tags:        []string{"Analysis"},
	}, h.ExportSweep)

	huma.Register(api, huma.Operation{
		OperationID: "sparams",
		Method:      http.MethodPost,
		Path:        "/sparams",
		Summary:     "Approximate S-parameters",
		Description: "Returns a two-port S-parameter set assuming a lossless reciprocal network",
		Tags:        []string{"Analysis"},
	}, h.SParams)

	huma.Register(api, huma.Operation{
		OperationID: "reflection",
		Method:      http.MethodPost,
		Path:        "/reflection",
		Summary:     "Reflection coefficient",
		Description: "Returns the reflection coefficient, VSWR and return loss of the load",
		Tags:        []string{"Analysis"},
	}, h.Reflection)

	huma.Register(api, huma.Operation{
		OperationID: "impedance",
		Method:      http.MethodPost,
		Path:        "/impedance",
		Summary:     "Impedance from reflection coefficient",
		Description: "Maps a Smith chart point back to the load impedance",
		Tags:        []string{"Analysis"},
	}, h.Impedance)

	huma.Register(api, huma.Operation{
		OperationID: "predict",
		Method:      http.MethodPost,
		Path:        "/predict",
		Summary:     "Recommend a match topology",
		Description: "Asks the trained classifier which matching topology suits the load",
		Tags:        []string{"Matching"},
	}, h.Predict)
}
