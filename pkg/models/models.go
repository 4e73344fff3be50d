package models

import (
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status             string    `json:"status" example:"healthy" doc:"Service health status"`
		Version            string    `json:"version" example:"1.0.0" doc:"API version"`
		ReferenceImpedance float64   `json:"reference_impedance" example:"50" doc:"Reference impedance Z0 in ohms"`
		Time               time.Time `json:"time" doc:"Current server time"`
	}
}
