package models

// SweepPoint represents a single reflection sweep sample
type SweepPoint struct {
	Frequency float64 `json:"frequency" doc:"Frequency in GHz"`
	GammaMag  float64 `json:"gamma_mag" minimum:"0" doc:"Reflection coefficient magnitude"`
}
