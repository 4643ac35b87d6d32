package neurology

import (
	"github.com/medcalc/medcalc/internal/registry"
)

// Abcd2Request is the typed body of the dedicated ABCD2 endpoint.
type Abcd2Request struct {
	Age              float64 `json:"age"`
	SystolicBP       float64 `json:"systolic_bp"`
	DiastolicBP      float64 `json:"diastolic_bp"`
	ClinicalFeatures string  `json:"clinical_features"`
	Duration         string  `json:"duration"`
	Diabetes         bool    `json:"diabetes"`
}

func (r Abcd2Request) params() registry.Params {
	return registry.Params{
		"age":               r.Age,
		"systolic_bp":       r.SystolicBP,
		"diastolic_bp":      r.DiastolicBP,
		"clinical_features": r.ClinicalFeatures,
		"duration":          r.Duration,
		"diabetes":          r.Diabetes,
	}
}

// CerebralPerfusionPressureRequest is the typed body of the dedicated CPP
// endpoint.
type CerebralPerfusionPressureRequest struct {
	MeanArterialPressure float64 `json:"mean_arterial_pressure"`
	IntracranialPressure float64 `json:"intracranial_pressure"`
}

func (r CerebralPerfusionPressureRequest) params() registry.Params {
	return registry.Params{
		"mean_arterial_pressure": r.MeanArterialPressure,
		"intracranial_pressure":  r.IntracranialPressure,
	}
}
