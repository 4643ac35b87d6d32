// Package geriatrics implements comorbidity and frailty calculators.
package geriatrics

import (
	"fmt"
	"math"

	"github.com/medcalc/medcalc/internal/registry"
)

const ScoreCharlson = "charlson_comorbidity_index"

// Comorbidity weights of the original Charlson index.
var charlsonWeights = []struct {
	param  string
	points int
}{
	{"myocardial_infarction", 1},
	{"congestive_heart_failure", 1},
	{"peripheral_vascular_disease", 1},
	{"cerebrovascular_disease", 1},
	{"dementia", 1},
	{"copd", 1},
	{"connective_tissue_disease", 1},
	{"peptic_ulcer_disease", 1},
	{"mild_liver_disease", 1},
	{"diabetes_uncomplicated", 1},
	{"hemiplegia", 2},
	{"moderate_severe_ckd", 2},
	{"diabetes_end_organ_damage", 2},
	{"localized_solid_tumor", 2},
	{"leukemia", 2},
	{"lymphoma", 2},
	{"moderate_severe_liver_disease", 3},
	{"metastatic_solid_tumor", 6},
	{"aids", 6},
}

// Charlson predicts ten-year survival from age and weighted comorbidities.
type Charlson struct{}

func (Charlson) Meta() registry.Metadata {
	return registry.Metadata{
		ID:          ScoreCharlson,
		Title:       "Charlson Comorbidity Index",
		Category:    "geriatrics",
		Description: "Ten-year survival estimate from age and nineteen weighted comorbid conditions",
	}
}

func (Charlson) Invoke(p registry.Params) (registry.Result, error) {
	age, err := p.IntInRange("age", 18, 120)
	if err != nil {
		return nil, err
	}

	diabetesSimple := false
	diabetesComplicated := false
	mildLiver := false
	severeLiver := false
	localizedTumor := false
	metastaticTumor := false

	score := 0
	for _, w := range charlsonWeights {
		present, err := p.Bool(w.param)
		if err != nil {
			return nil, err
		}
		if !present {
			continue
		}
		switch w.param {
		case "diabetes_uncomplicated":
			diabetesSimple = true
		case "diabetes_end_organ_damage":
			diabetesComplicated = true
		case "mild_liver_disease":
			mildLiver = true
		case "moderate_severe_liver_disease":
			severeLiver = true
		case "localized_solid_tumor":
			localizedTumor = true
		case "metastatic_solid_tumor":
			metastaticTumor = true
		}
		score += w.points
	}

	// Hierarchical conditions are mutually exclusive: the severe form
	// already subsumes the mild one.
	if diabetesSimple && diabetesComplicated {
		return nil, registry.Invalidf("diabetes_uncomplicated",
			"mutually exclusive with diabetes_end_organ_damage; report the more severe form only")
	}
	if mildLiver && severeLiver {
		return nil, registry.Invalidf("mild_liver_disease",
			"mutually exclusive with moderate_severe_liver_disease; report the more severe form only")
	}
	if localizedTumor && metastaticTumor {
		return nil, registry.Invalidf("localized_solid_tumor",
			"mutually exclusive with metastatic_solid_tumor; report the more severe form only")
	}

	// One point per decade from age 50, capped at four.
	switch {
	case age >= 80:
		score += 4
	case age >= 70:
		score += 3
	case age >= 60:
		score += 2
	case age >= 50:
		score++
	}

	survival := tenYearSurvival(score)

	return registry.Result{
		"result":            score,
		"unit":              "points",
		"interpretation":    charlsonInterpretation(score, survival),
		"stage":             charlsonStage(score),
		"stage_description": fmt.Sprintf("Estimated ten-year survival of %.1f%%", survival),
		"ten_year_survival": survival,
	}, nil
}

// tenYearSurvival applies the original 0.983^(e^(0.9 x CCI)) relation,
// expressed as a percentage.
func tenYearSurvival(score int) float64 {
	s := math.Pow(0.983, math.Exp(0.9*float64(score))) * 100
	return math.Round(s*10) / 10
}

func charlsonStage(score int) string {
	switch {
	case score <= 2:
		return "Mild"
	case score <= 4:
		return "Moderate"
	default:
		return "Severe"
	}
}

func charlsonInterpretation(score int, survival float64) string {
	return fmt.Sprintf(
		"Charlson Comorbidity Index of %d with an estimated ten-year survival of %.1f%%. Higher comorbidity burden should inform goals-of-care discussions and the expected benefit of screening or aggressive interventions.",
		score, survival)
}
