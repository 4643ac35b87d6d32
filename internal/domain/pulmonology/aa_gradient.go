package pulmonology

import (
	"fmt"
	"math"

	"github.com/medcalc/medcalc/internal/registry"
)

const ScoreAAO2Gradient = "a_a_o2_gradient"

// Water vapor pressure at body temperature, mmHg.
const waterVaporPressure = 47.0

// AAO2Gradient computes the alveolar-arterial oxygen gradient from an
// arterial blood gas to separate hypoventilation from diffusion, V/Q mismatch
// and shunt.
type AAO2Gradient struct{}

func (AAO2Gradient) Meta() registry.Metadata {
	return registry.Metadata{
		ID:          ScoreAAO2Gradient,
		Title:       "A-a Oxygen Gradient",
		Category:    "pulmonology",
		Description: "Alveolar-arterial oxygen gradient from FiO2, PaCO2 and PaO2, compared against the age-expected value",
	}
}

func (AAO2Gradient) Invoke(p registry.Params) (registry.Result, error) {
	age, err := p.FloatInRange("age", 1, 120)
	if err != nil {
		return nil, err
	}
	fio2, err := p.FloatInRange("fio2", 0.21, 1.0)
	if err != nil {
		return nil, err
	}
	paco2, err := p.FloatInRange("paco2", 5, 150)
	if err != nil {
		return nil, err
	}
	pao2, err := p.FloatInRange("pao2", 10, 700)
	if err != nil {
		return nil, err
	}
	atmosphericPressure := 760.0
	if _, ok := p["atmospheric_pressure"]; ok {
		atmosphericPressure, err = p.FloatInRange("atmospheric_pressure", 400, 800)
		if err != nil {
			return nil, err
		}
	}

	// Alveolar gas equation with respiratory quotient 0.8.
	alveolarO2 := fio2*(atmosphericPressure-waterVaporPressure) - paco2/0.8
	gradient := alveolarO2 - pao2
	if gradient < 0 {
		return nil, registry.Invalidf("pao2", "exceeds the calculated alveolar oxygen tension; check FiO2 and blood gas values")
	}
	gradient = math.Round(gradient*10) / 10

	expected := math.Round((age/4+4)*10) / 10

	stage, stageDesc := aaGradientStage(gradient, expected)

	return registry.Result{
		"result":            gradient,
		"unit":              "mmHg",
		"interpretation":    aaGradientInterpretation(gradient, expected, stage),
		"stage":             stage,
		"stage_description": stageDesc,
		"expected_gradient": expected,
	}, nil
}

func aaGradientStage(gradient, expected float64) (string, string) {
	if gradient <= expected {
		return "Normal", "Gradient within the age-expected range"
	}
	return "Elevated", "Gradient above the age-expected range"
}

func aaGradientInterpretation(gradient, expected float64, stage string) string {
	base := fmt.Sprintf("A-a gradient of %.1f mmHg against an age-expected value of %.1f mmHg.", gradient, expected)
	if stage == "Normal" {
		return base + " Hypoxemia, if present, is explained by hypoventilation or low inspired oxygen."
	}
	return base + " Elevated gradient suggests V/Q mismatch, diffusion limitation or shunt."
}
