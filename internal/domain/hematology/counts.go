// Package hematology implements blood count and transfusion calculators.
package hematology

import (
	"fmt"
	"math"

	"github.com/medcalc/medcalc/internal/registry"
)

const (
	ScoreANC = "anc"
	ScoreALC = "alc"
)

// ANC derives the absolute neutrophil count from the white blood cell count
// and differential.
type ANC struct{}

func (ANC) Meta() registry.Metadata {
	return registry.Metadata{
		ID:          ScoreANC,
		Title:       "Absolute Neutrophil Count",
		Category:    "hematology",
		Description: "Absolute neutrophil count from WBC and differential, with neutropenia grading",
	}
}

func (ANC) Invoke(p registry.Params) (registry.Result, error) {
	wbc, err := p.FloatInRange("wbc", 0.1, 200)
	if err != nil {
		return nil, err
	}
	neutrophils, err := p.FloatInRange("neutrophil_percent", 0, 100)
	if err != nil {
		return nil, err
	}
	bands := 0.0
	if _, ok := p["band_percent"]; ok {
		bands, err = p.FloatInRange("band_percent", 0, 100)
		if err != nil {
			return nil, err
		}
	}
	if neutrophils+bands > 100 {
		return nil, registry.Invalidf("band_percent",
			"neutrophil_percent and band_percent must not exceed 100 combined")
	}

	// WBC is reported in 10^3 cells/uL.
	anc := math.Round(wbc * 1000 * (neutrophils + bands) / 100)

	stage, stageDesc := ancStage(anc)

	return registry.Result{
		"result":            anc,
		"unit":              "cells/mm3",
		"interpretation":    ancInterpretation(anc, stage),
		"stage":             stage,
		"stage_description": stageDesc,
	}, nil
}

func ancStage(anc float64) (string, string) {
	switch {
	case anc >= 1500:
		return "Normal", "No neutropenia"
	case anc >= 1000:
		return "Mild", "Mild neutropenia"
	case anc >= 500:
		return "Moderate", "Moderate neutropenia"
	default:
		return "Severe", "Severe neutropenia"
	}
}

func ancInterpretation(anc float64, stage string) string {
	base := fmt.Sprintf("Absolute neutrophil count of %.0f cells/mm3.", anc)
	switch stage {
	case "Normal":
		return base + " Normal infection risk."
	case "Mild":
		return base + " Minimally increased infection risk."
	case "Moderate":
		return base + " Moderately increased infection risk; fever warrants prompt evaluation."
	default:
		return base + " High infection risk; fever is a medical emergency (febrile neutropenia)."
	}
}

// ALC derives the absolute lymphocyte count from the white blood cell count
// and differential.
type ALC struct{}

func (ALC) Meta() registry.Metadata {
	return registry.Metadata{
		ID:          ScoreALC,
		Title:       "Absolute Lymphocyte Count",
		Category:    "hematology",
		Description: "Absolute lymphocyte count from WBC and differential, used as a CD4 surrogate in resource-limited settings",
	}
}

func (ALC) Invoke(p registry.Params) (registry.Result, error) {
	wbc, err := p.FloatInRange("wbc", 0.1, 200)
	if err != nil {
		return nil, err
	}
	lymphocytes, err := p.FloatInRange("lymphocyte_percent", 0, 100)
	if err != nil {
		return nil, err
	}

	alc := math.Round(wbc * 1000 * lymphocytes / 100)

	stage, stageDesc := alcStage(alc)

	return registry.Result{
		"result":            alc,
		"unit":              "cells/mm3",
		"interpretation":    alcInterpretation(alc, stage),
		"stage":             stage,
		"stage_description": stageDesc,
	}, nil
}

func alcStage(alc float64) (string, string) {
	switch {
	case alc >= 2000:
		return "Normal", "CD4 count likely above 200 cells/mm3"
	case alc >= 1000:
		return "Indeterminate", "CD4 count cannot be predicted from ALC alone"
	default:
		return "Low", "CD4 count likely below 200 cells/mm3"
	}
}

func alcInterpretation(alc float64, stage string) string {
	base := fmt.Sprintf("Absolute lymphocyte count of %.0f cells/mm3.", alc)
	switch stage {
	case "Normal":
		return base + " Opportunistic infection risk is low when used as a CD4 surrogate."
	case "Indeterminate":
		return base + " Obtain a CD4 count; ALC in this range does not discriminate."
	default:
		return base + " Suggests severe immunosuppression; treat as high risk pending CD4 confirmation."
	}
}
