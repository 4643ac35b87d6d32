package pulmonology

import (
	"github.com/medcalc/medcalc/internal/registry"
)

// Curb65Request is the typed body of the dedicated CURB-65 endpoint.
type Curb65Request struct {
	Confusion       bool    `json:"confusion"`
	Urea            float64 `json:"urea"`
	RespiratoryRate float64 `json:"respiratory_rate"`
	SystolicBP      float64 `json:"systolic_bp"`
	DiastolicBP     float64 `json:"diastolic_bp"`
	Age             float64 `json:"age"`
}

func (r Curb65Request) params() registry.Params {
	return registry.Params{
		"confusion":        r.Confusion,
		"urea":             r.Urea,
		"respiratory_rate": r.RespiratoryRate,
		"systolic_bp":      r.SystolicBP,
		"diastolic_bp":     r.DiastolicBP,
		"age":              r.Age,
	}
}

// AAO2GradientRequest is the typed body of the dedicated A-a gradient
// endpoint. AtmosphericPressure is optional; sea level is assumed when
// omitted.
type AAO2GradientRequest struct {
	Age                 float64  `json:"age"`
	FiO2                float64  `json:"fio2"`
	PaCO2               float64  `json:"paco2"`
	PaO2                float64  `json:"pao2"`
	AtmosphericPressure *float64 `json:"atmospheric_pressure,omitempty"`
}

func (r AAO2GradientRequest) params() registry.Params {
	p := registry.Params{
		"age":   r.Age,
		"fio2":  r.FiO2,
		"paco2": r.PaCO2,
		"pao2":  r.PaO2,
	}
	if r.AtmosphericPressure != nil {
		p["atmospheric_pressure"] = *r.AtmosphericPressure
	}
	return p
}
