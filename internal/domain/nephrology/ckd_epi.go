// Package nephrology implements renal function calculators.
package nephrology

import (
	"fmt"
	"math"

	"github.com/medcalc/medcalc/internal/registry"
)

const ScoreCKDEpi2021 = "ckd_epi_2021"

// CKDEpi2021 estimates glomerular filtration rate with the race-free CKD-EPI
// 2021 creatinine equation (Inker et al., NEJM 2021).
type CKDEpi2021 struct{}

func (CKDEpi2021) Meta() registry.Metadata {
	return registry.Metadata{
		ID:          ScoreCKDEpi2021,
		Title:       "CKD-EPI 2021 eGFR",
		Category:    "nephrology",
		Description: "Estimates glomerular filtration rate from serum creatinine, age and sex using the race-free CKD-EPI 2021 equation",
	}
}

func (CKDEpi2021) Invoke(p registry.Params) (registry.Result, error) {
	sex, err := p.Enum("sex", "male", "female")
	if err != nil {
		return nil, err
	}
	age, err := p.FloatInRange("age", 18, 120)
	if err != nil {
		return nil, err
	}
	creatinine, err := p.FloatInRange("serum_creatinine", 0.1, 20)
	if err != nil {
		return nil, err
	}

	// Sex-specific constants of the 2021 equation.
	kappa, alpha := 0.9, -0.302
	sexFactor := 1.0
	if sex == "female" {
		kappa, alpha = 0.7, -0.241
		sexFactor = 1.012
	}

	ratio := creatinine / kappa
	egfr := 142 *
		math.Pow(math.Min(ratio, 1), alpha) *
		math.Pow(math.Max(ratio, 1), -1.200) *
		math.Pow(0.9938, age) *
		sexFactor
	egfr = math.Round(egfr*10) / 10

	stage, stageDesc := gfrStage(egfr)

	return registry.Result{
		"result":            egfr,
		"unit":              "mL/min/1.73 m2",
		"interpretation":    gfrInterpretation(egfr, stage),
		"stage":             stage,
		"stage_description": stageDesc,
	}, nil
}

func gfrStage(egfr float64) (string, string) {
	switch {
	case egfr >= 90:
		return "G1", "Normal or high GFR"
	case egfr >= 60:
		return "G2", "Mildly decreased GFR"
	case egfr >= 45:
		return "G3a", "Mildly to moderately decreased GFR"
	case egfr >= 30:
		return "G3b", "Moderately to severely decreased GFR"
	case egfr >= 15:
		return "G4", "Severely decreased GFR"
	default:
		return "G5", "Kidney failure"
	}
}

func gfrInterpretation(egfr float64, stage string) string {
	base := fmt.Sprintf("Estimated GFR of %.1f mL/min/1.73 m2 corresponds to KDIGO stage %s.", egfr, stage)
	switch stage {
	case "G1", "G2":
		return base + " In the absence of other markers of kidney damage this does not meet criteria for chronic kidney disease."
	case "G3a", "G3b":
		return base + " Evaluate and manage per KDIGO CKD guidelines; review medication dosing for renal function."
	case "G4":
		return base + " Nephrology referral is indicated; prepare for renal replacement therapy planning."
	default:
		return base + " Kidney failure; renal replacement therapy or transplant evaluation is indicated."
	}
}
