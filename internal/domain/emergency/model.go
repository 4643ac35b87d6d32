package emergency

import (
	"github.com/medcalc/medcalc/internal/registry"
)

// RoxIndexRequest is the typed body of the dedicated ROX index endpoint.
type RoxIndexRequest struct {
	SpO2            float64 `json:"spo2"`
	FiO2            float64 `json:"fio2"`
	RespiratoryRate float64 `json:"respiratory_rate"`
}

func (r RoxIndexRequest) params() registry.Params {
	return registry.Params{
		"spo2":             r.SpO2,
		"fio2":             r.FiO2,
		"respiratory_rate": r.RespiratoryRate,
	}
}

// RuleOfNinesRequest is the typed body of the dedicated rule of nines
// endpoint. Every region defaults to not involved.
type RuleOfNinesRequest struct {
	Head           bool `json:"head"`
	AnteriorTrunk  bool `json:"anterior_trunk"`
	PosteriorTrunk bool `json:"posterior_trunk"`
	LeftArm        bool `json:"left_arm"`
	RightArm       bool `json:"right_arm"`
	LeftLeg        bool `json:"left_leg"`
	RightLeg       bool `json:"right_leg"`
	Genitalia      bool `json:"genitalia"`
}

func (r RuleOfNinesRequest) params() registry.Params {
	return registry.Params{
		"head":            r.Head,
		"anterior_trunk":  r.AnteriorTrunk,
		"posterior_trunk": r.PosteriorTrunk,
		"left_arm":        r.LeftArm,
		"right_arm":       r.RightArm,
		"left_leg":        r.LeftLeg,
		"right_leg":       r.RightLeg,
		"genitalia":       r.Genitalia,
	}
}
