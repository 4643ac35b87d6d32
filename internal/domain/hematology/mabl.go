package hematology

import (
	"fmt"
	"math"

	"github.com/medcalc/medcalc/internal/registry"
)

const ScoreMABL = "maximum_allowable_blood_loss"

// Estimated blood volume per kilogram by patient group, mL/kg.
var bloodVolumePerKg = map[string]float64{
	"adult_male":       75,
	"adult_female":     65,
	"child":            70,
	"infant":           80,
	"neonate":          85,
	"premature_infant": 96,
}

// MABL estimates the blood loss a patient can tolerate before transfusion is
// indicated, from estimated blood volume and the hematocrit margin.
type MABL struct{}

func (MABL) Meta() registry.Metadata {
	return registry.Metadata{
		ID:          ScoreMABL,
		Title:       "Maximum Allowable Blood Loss",
		Category:    "hematology",
		Description: "Intraoperative blood loss tolerable before transfusion, from weight, patient group and hematocrit margin",
	}
}

func (MABL) Invoke(p registry.Params) (registry.Result, error) {
	group, err := p.Enum("patient_group",
		"adult_male", "adult_female", "child", "infant", "neonate", "premature_infant")
	if err != nil {
		return nil, err
	}
	weight, err := p.FloatInRange("weight", 0.3, 300)
	if err != nil {
		return nil, err
	}
	initialHct, err := p.FloatInRange("initial_hematocrit", 10, 70)
	if err != nil {
		return nil, err
	}
	finalHct, err := p.FloatInRange("final_hematocrit", 10, 70)
	if err != nil {
		return nil, err
	}
	if finalHct >= initialHct {
		return nil, registry.Invalidf("final_hematocrit",
			"must be lower than initial_hematocrit")
	}

	ebv := bloodVolumePerKg[group] * weight
	mabl := math.Round(ebv * (initialHct - finalHct) / initialHct)

	return registry.Result{
		"result":         mabl,
		"unit":           "mL",
		"interpretation": fmt.Sprintf("Estimated blood volume of %.0f mL; approximately %.0f mL of blood loss is tolerable before the hematocrit falls below %.0f%%. Reassess with measured losses and hemodynamics; the linear estimate loses accuracy beyond moderate losses.", ebv, mabl, finalHct),
		"estimated_blood_volume": ebv,
	}, nil
}
