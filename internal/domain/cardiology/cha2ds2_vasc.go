package cardiology

import (
	"fmt"

	"github.com/medcalc/medcalc/internal/registry"
)

const ScoreCha2ds2Vasc = "cha2ds2_vasc"

// Cha2ds2Vasc estimates annual stroke risk in non-valvular atrial
// fibrillation.
type Cha2ds2Vasc struct{}

func (Cha2ds2Vasc) Meta() registry.Metadata {
	return registry.Metadata{
		ID:          ScoreCha2ds2Vasc,
		Title:       "CHA2DS2-VASc Score",
		Category:    "cardiology",
		Description: "Stroke risk stratification for patients with non-valvular atrial fibrillation",
	}
}

func (Cha2ds2Vasc) Invoke(p registry.Params) (registry.Result, error) {
	age, err := p.IntInRange("age", 18, 120)
	if err != nil {
		return nil, err
	}
	sex, err := p.Enum("sex", "male", "female")
	if err != nil {
		return nil, err
	}

	flags := make(map[string]bool)
	for _, name := range []string{
		"congestive_heart_failure",
		"hypertension",
		"stroke_tia_thromboembolism",
		"vascular_disease",
		"diabetes",
	} {
		v, err := p.Bool(name)
		if err != nil {
			return nil, err
		}
		flags[name] = v
	}

	score := 0
	switch {
	case age >= 75:
		score += 2
	case age >= 65:
		score++
	}
	if sex == "female" {
		score++
	}
	if flags["congestive_heart_failure"] {
		score++
	}
	if flags["hypertension"] {
		score++
	}
	if flags["stroke_tia_thromboembolism"] {
		score += 2
	}
	if flags["vascular_disease"] {
		score++
	}
	if flags["diabetes"] {
		score++
	}

	stage, stageDesc, interp := cha2ds2VascInterpretation(score, sex)

	return registry.Result{
		"result":            score,
		"unit":              "points",
		"interpretation":    interp,
		"stage":             stage,
		"stage_description": stageDesc,
	}, nil
}

func cha2ds2VascInterpretation(score int, sex string) (string, string, string) {
	// A single point from female sex alone does not raise risk.
	threshold := 1
	if sex == "female" {
		threshold = 2
	}

	base := fmt.Sprintf("CHA2DS2-VASc score of %d.", score)
	switch {
	case score < threshold:
		return "Low", "Low annual stroke risk",
			base + " Low stroke risk; anticoagulation is generally not recommended."
	case score == threshold:
		return "Moderate", "Intermediate annual stroke risk",
			base + " Intermediate stroke risk; oral anticoagulation may be considered after shared decision-making."
	default:
		return "High", "High annual stroke risk",
			base + " High stroke risk; oral anticoagulation is recommended unless contraindicated."
	}
}
