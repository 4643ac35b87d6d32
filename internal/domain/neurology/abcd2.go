// Package neurology implements neurological assessment calculators.
package neurology

import (
	"fmt"

	"github.com/medcalc/medcalc/internal/registry"
)

const ScoreAbcd2 = "abcd2"

// Abcd2 estimates early stroke risk after a transient ischemic attack.
type Abcd2 struct{}

func (Abcd2) Meta() registry.Metadata {
	return registry.Metadata{
		ID:          ScoreAbcd2,
		Title:       "ABCD2 Score",
		Category:    "neurology",
		Description: "Two-day stroke risk stratification after transient ischemic attack",
	}
}

func (Abcd2) Invoke(p registry.Params) (registry.Result, error) {
	age, err := p.IntInRange("age", 18, 120)
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
	clinicalFeatures, err := p.Enum("clinical_features",
		"unilateral_weakness", "speech_disturbance", "other")
	if err != nil {
		return nil, err
	}
	duration, err := p.Enum("duration", "under_10min", "10_to_59min", "60min_or_more")
	if err != nil {
		return nil, err
	}
	diabetes, err := p.Bool("diabetes")
	if err != nil {
		return nil, err
	}

	score := 0
	if age >= 60 {
		score++
	}
	if systolicBP >= 140 || diastolicBP >= 90 {
		score++
	}
	switch clinicalFeatures {
	case "unilateral_weakness":
		score += 2
	case "speech_disturbance":
		score++
	}
	switch duration {
	case "60min_or_more":
		score += 2
	case "10_to_59min":
		score++
	}
	if diabetes {
		score++
	}

	stage, stageDesc, interp := abcd2Interpretation(score)

	return registry.Result{
		"result":            score,
		"unit":              "points",
		"interpretation":    interp,
		"stage":             stage,
		"stage_description": stageDesc,
	}, nil
}

func abcd2Interpretation(score int) (string, string, string) {
	base := fmt.Sprintf("ABCD2 score of %d.", score)
	switch {
	case score <= 3:
		return "Low", "Two-day stroke risk around 1%",
			base + " Low early stroke risk; expedited outpatient evaluation is reasonable."
	case score <= 5:
		return "Moderate", "Two-day stroke risk around 4%",
			base + " Moderate early stroke risk; observation with urgent workup is recommended."
	default:
		return "High", "Two-day stroke risk around 8%",
			base + " High early stroke risk; admit for monitoring and immediate evaluation."
	}
}
