package models

// LoadInput describes a load at an operating frequency
type LoadInput struct {
	Frequency float64 `json:"frequency" exclusiveMinimum:"0" example:"2.4" doc:"Operating frequency in GHz"`
	ZReal     float64 `json:"z_real" example:"30" doc:"Load resistance in ohms"`
	ZImag     float64 `json:"z_imag" example:"15" doc:"Load reactance in ohms"`
}

// AnalysisRequest is the request body shared by the analysis operations
type AnalysisRequest struct {
	Body LoadInput
}

// Components describes the synthesized L-section in display units
type Components struct {
	Type              string   `json:"type" enum:"L-match (R < Z0),L-match (R > Z0),No match needed" doc:"Matching topology"`
	SeriesInductorNH  *float64 `json:"series_inductor_nH,omitempty" doc:"Series inductor in nanohenries"`
	ShuntCapacitorPF  *float64 `json:"shunt_capacitor_pF,omitempty" doc:"Shunt capacitor in picofarads"`
	SeriesCapacitorPF *float64 `json:"series_capacitor_pF,omitempty" doc:"Series capacitor in picofarads"`
	ShuntInductorNH   *float64 `json:"shunt_inductor_nH,omitempty" doc:"Shunt inductor in nanohenries"`
}

// MatchResponseBody is the body of the match response
type MatchResponseBody struct {
	MatchingType string       `json:"matching_type" example:"l-match" doc:"Matching network family"`
	GammaPath    [][2]float64 `json:"gamma_path" doc:"Reflection coefficients [re, im] from the load toward Z0"`
	Components   Components   `json:"components" doc:"Matching network components"`
}

// MatchResponse represents an L-match design for a load
type MatchResponse struct {
	Body MatchResponseBody
}

// SweepResponse represents the reflection magnitude across the band around the operating frequency
type SweepResponse struct {
	Body struct {
		Sweep []SweepPoint `json:"sweep" doc:"Reflection sweep from 0.8 to 1.2 times the operating frequency"`
	}
}

// SweepExportResponse carries the sweep as a spreadsheet
type SweepExportResponse struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// SParamsResponseBody is the body of the S-parameter response
type SParamsResponseBody struct {
	S11 [2]float64 `json:"S11" doc:"Input reflection [re, im]"`
	S21 float64    `json:"S21" doc:"Forward transmission magnitude"`
	S12 float64    `json:"S12" doc:"Reverse transmission magnitude"`
	S22 [2]float64 `json:"S22" doc:"Output reflection [re, im]"`
}

// SParamsResponse represents an approximate two-port S-parameter set
type SParamsResponse struct {
	Body SParamsResponseBody
}

// ReflectionResponseBody is the body of the reflection response
type ReflectionResponseBody struct {
	Gamma        [2]float64 `json:"gamma" doc:"Reflection coefficient [re, im]"`
	Magnitude    float64    `json:"magnitude" doc:"Reflection coefficient magnitude"`
	PhaseDeg     float64    `json:"phase_deg" doc:"Reflection coefficient angle in degrees"`
	VSWR         *float64   `json:"vswr,omitempty" doc:"Voltage standing wave ratio, omitted for total reflection"`
	ReturnLossDB *float64   `json:"return_loss_db,omitempty" doc:"Return loss in dB, omitted for a perfect match"`
	Passive      bool       `json:"passive" doc:"False when the magnitude exceeds 1"`
}

// ReflectionResponse represents the reflection figures of a load
type ReflectionResponse struct {
	Body ReflectionResponseBody
}

// ImpedanceRequest represents a point on the Smith chart
type ImpedanceRequest struct {
	Body struct {
		GammaReal float64 `json:"gamma_real" example:"0.2" doc:"Real part of the reflection coefficient"`
		GammaImag float64 `json:"gamma_imag" example:"0.4" doc:"Imaginary part of the reflection coefficient"`
	}
}

// ImpedanceResponse represents the impedance at a Smith chart point
type ImpedanceResponse struct {
	Body struct {
		ZReal float64 `json:"z_real" doc:"Resistance in ohms"`
		ZImag float64 `json:"z_imag" doc:"Reactance in ohms"`
	}
}

// PredictResponse represents the classifier's recommended topology
type PredictResponse struct {
	Body struct {
		RecommendedMatchType string `json:"recommended_match_type" example:"L-match" doc:"Recommended matching topology"`
	}
}
