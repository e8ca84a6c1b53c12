package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-bmi/bmi"
	"github.com/danielhkuo/quickly-bmi/form"
)

// Request types

// Height and weight are raw text, exactly as typed into the form
type CalculateRequest struct {
	Height string `json:"height"`
	Weight string `json:"weight"`
	Units  string `json:"units,omitempty"`
}

// Response types

// BMI is nil when the result is not finite (zero height)
type CalculateResponse struct {
	ID              string    `json:"id"`
	BMI             *float64  `json:"bmi"`
	Display         string    `json:"display"`
	Finite          bool      `json:"finite"`
	Units           string    `json:"units"`
	HeightMeters    float64   `json:"height_m"`
	WeightKilograms float64   `json:"weight_kg"`
	CalculatedAt    time.Time `json:"calculated_at"`
}

// NewCalculateResponse builds the response for a result computed at the
// given time, under a fresh ID
func NewCalculateResponse(result bmi.Result, at time.Time) CalculateResponse {
	resp := CalculateResponse{
		ID:              uuid.NewString(),
		Display:         form.FormatValue(result),
		Finite:          result.Finite(),
		Units:           result.Units.String(),
		HeightMeters:    result.HeightMeters,
		WeightKilograms: result.WeightKilograms,
		CalculatedAt:    at.UTC(),
	}
	if resp.Finite {
		v := result.Value
		resp.BMI = &v
	}
	return resp
}

type UnitModeInfo struct {
	Mode       string `json:"mode"`
	HeightUnit string `json:"height_unit"`
	WeightUnit string `json:"weight_unit"`
	Default    bool   `json:"default"`
}

type UnitModesResponse struct {
	Units []UnitModeInfo `json:"units"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
