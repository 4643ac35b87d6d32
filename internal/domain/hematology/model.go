package hematology

import (
	"github.com/medcalc/medcalc/internal/registry"
)

// ANCRequest is the typed body of the dedicated ANC endpoint. BandPercent is
// optional.
type ANCRequest struct {
	WBC               float64  `json:"wbc"`
	NeutrophilPercent float64  `json:"neutrophil_percent"`
	BandPercent       *float64 `json:"band_percent,omitempty"`
}

func (r ANCRequest) params() registry.Params {
	p := registry.Params{
		"wbc":                r.WBC,
		"neutrophil_percent": r.NeutrophilPercent,
	}
	if r.BandPercent != nil {
		p["band_percent"] = *r.BandPercent
	}
	return p
}

// ALCRequest is the typed body of the dedicated ALC endpoint.
type ALCRequest struct {
	WBC               float64 `json:"wbc"`
	LymphocytePercent float64 `json:"lymphocyte_percent"`
}

func (r ALCRequest) params() registry.Params {
	return registry.Params{
		"wbc":                r.WBC,
		"lymphocyte_percent": r.LymphocytePercent,
	}
}

// MABLRequest is the typed body of the dedicated maximum allowable blood loss
// endpoint.
type MABLRequest struct {
	PatientGroup      string  `json:"patient_group"`
	Weight            float64 `json:"weight"`
	InitialHematocrit float64 `json:"initial_hematocrit"`
	FinalHematocrit   float64 `json:"final_hematocrit"`
}

func (r MABLRequest) params() registry.Params {
	return registry.Params{
		"patient_group":      r.PatientGroup,
		"weight":             r.Weight,
		"initial_hematocrit": r.InitialHematocrit,
		"final_hematocrit":   r.FinalHematocrit,
	}
}
