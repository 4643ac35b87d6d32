// Package pulmonology implements respiratory calculators.
package pulmonology

import (
	"fmt"

	"github.com/medcalc/medcalc/internal/registry"
)

const ScoreCurb65 = "curb_65"

// Curb65 estimates mortality risk in community-acquired pneumonia and guides
// the treatment setting.
type Curb65 struct{}

func (Curb65) Meta() registry.Metadata {
	return registry.Metadata{
		ID:          ScoreCurb65,
		Title:       "CURB-65 Score",
		Category:    "pulmonology",
		Description: "Severity and disposition assessment for community-acquired pneumonia",
	}
}

func (Curb65) Invoke(p registry.Params) (registry.Result, error) {
	confusion, err := p.Bool("confusion")
	if err != nil {
		return nil, err
	}
	urea, err := p.FloatInRange("urea", 0, 100)
	if err != nil {
		return nil, err
	}
	respiratoryRate, err := p.FloatInRange("respiratory_rate", 4, 80)
	if err != nil {
		return nil, err
	}
	systolicBP, err := p.FloatInRange("systolic_bp", 30, 300)
	if err != nil {
		return nil, err
	}
	diastolicBP, err := p.FloatInRange("diastolic_bp", 10, 200)
	if err != nil {
		return nil, err
	}
	age, err := p.IntInRange("age", 18, 120)
	if err != nil {
		return nil, err
	}
	if diastolicBP >= systolicBP {
		return nil, registry.Invalidf("diastolic_bp", "must be lower than systolic_bp")
	}

	score := 0
	if confusion {
		score++
	}
	if urea > 7 { // mmol/L
		score++
	}
	if respiratoryRate >= 30 {
		score++
	}
	if systolicBP < 90 || diastolicBP <= 60 {
		score++
	}
	if age >= 65 {
		score++
	}

	stage, stageDesc, interp := curb65Interpretation(score)

	return registry.Result{
		"result":            score,
		"unit":              "points",
		"interpretation":    interp,
		"stage":             stage,
		"stage_description": stageDesc,
	}, nil
}

func curb65Interpretation(score int) (string, string, string) {
	base := fmt.Sprintf("CURB-65 score of %d.", score)
	switch {
	case score <= 1:
		return "Low", "30-day mortality below 3%",
			base + " Low severity; outpatient treatment is usually appropriate."
	case score == 2:
		return "Moderate", "30-day mortality around 9%",
			base + " Moderate severity; consider short inpatient stay or supervised outpatient treatment."
	default:
		return "High", "30-day mortality above 15%",
			base + " Severe pneumonia; hospitalize and assess for ICU admission, particularly with a score of 4 or 5."
	}
}
