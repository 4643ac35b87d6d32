// Package emergency implements emergency medicine calculators.
package emergency

import (
	"fmt"
	"math"

	"github.com/medcalc/medcalc/internal/registry"
)

const ScoreRoxIndex = "rox_index"

// RoxIndex predicts high-flow nasal cannula failure in acute hypoxemic
// respiratory failure (Roca et al.).
type RoxIndex struct{}

func (RoxIndex) Meta() registry.Metadata {
	return registry.Metadata{
		ID:          ScoreRoxIndex,
		Title:       "ROX Index",
		Category:    "emergency",
		Description: "Predicts high-flow nasal cannula failure from SpO2/FiO2 ratio and respiratory rate",
	}
}

func (RoxIndex) Invoke(p registry.Params) (registry.Result, error) {
	spo2, err := p.FloatInRange("spo2", 50, 100)
	if err != nil {
		return nil, err
	}
	fio2, err := p.FloatInRange("fio2", 0.21, 1.0)
	if err != nil {
		return nil, err
	}
	respiratoryRate, err := p.FloatInRange("respiratory_rate", 4, 80)
	if err != nil {
		return nil, err
	}

	rox := (spo2 / fio2) / respiratoryRate
	rox = math.Round(rox*100) / 100

	stage, stageDesc := roxStage(rox)

	return registry.Result{
		"result":            rox,
		"unit":              "",
		"interpretation":    roxInterpretation(rox, stage),
		"stage":             stage,
		"stage_description": stageDesc,
	}, nil
}

func roxStage(rox float64) (string, string) {
	switch {
	case rox >= 4.88:
		return "Low Risk", "High-flow therapy is likely to succeed"
	case rox >= 3.85:
		return "Indeterminate", "Reassess within 1-2 hours"
	default:
		return "High Risk", "High risk of high-flow therapy failure"
	}
}

func roxInterpretation(rox float64, stage string) string {
	base := fmt.Sprintf("ROX index of %.2f.", rox)
	switch stage {
	case "Low Risk":
		return base + " Values at or above 4.88 predict high-flow nasal cannula success; continue current therapy with routine monitoring."
	case "Indeterminate":
		return base + " Indeterminate range; repeat the measurement in 1-2 hours and escalate if the index falls."
	default:
		return base + " Values below 3.85 predict high-flow failure; prepare for early intubation rather than delayed rescue."
	}
}
