package neurology

import (
	"fmt"

	"github.com/medcalc/medcalc/internal/registry"
)

const ScoreCerebralPerfusionPressure = "cerebral_perfusion_pressure"

// CerebralPerfusionPressure computes the net pressure gradient driving
// cerebral blood flow in neurocritical care.
type CerebralPerfusionPressure struct{}

func (CerebralPerfusionPressure) Meta() registry.Metadata {
	return registry.Metadata{
		ID:          ScoreCerebralPerfusionPressure,
		Title:       "Cerebral Perfusion Pressure",
		Category:    "neurology",
		Description: "Cerebral perfusion pressure from mean arterial pressure and intracranial pressure",
	}
}

func (CerebralPerfusionPressure) Invoke(p registry.Params) (registry.Result, error) {
	meanArterialPressure, err := p.FloatInRange("mean_arterial_pressure", 20, 250)
	if err != nil {
		return nil, err
	}
	intracranialPressure, err := p.FloatInRange("intracranial_pressure", 0, 100)
	if err != nil {
		return nil, err
	}
	if intracranialPressure >= meanArterialPressure {
		return nil, registry.Invalidf("intracranial_pressure",
			"must be lower than mean_arterial_pressure")
	}

	cpp := meanArterialPressure - intracranialPressure
	stage, stageDesc := cppStage(cpp)

	return registry.Result{
		"result":            cpp,
		"unit":              "mmHg",
		"interpretation":    cppInterpretation(cpp, stage),
		"stage":             stage,
		"stage_description": stageDesc,
	}, nil
}

func cppStage(cpp float64) (string, string) {
	switch {
	case cpp < 60:
		return "Low", "Below the cerebral ischemia threshold"
	case cpp <= 100:
		return "Adequate", "Within the target perfusion range"
	default:
		return "High", "Above the usual autoregulation range"
	}
}

func cppInterpretation(cpp float64, stage string) string {
	base := fmt.Sprintf("Cerebral perfusion pressure of %.0f mmHg.", cpp)
	switch stage {
	case "Low":
		return base + " Risk of cerebral ischemia; raise mean arterial pressure or lower intracranial pressure per neurocritical care targets."
	case "Adequate":
		return base + " Within the generally accepted 60-100 mmHg target range."
	default:
		return base + " Elevated perfusion pressure; consider hyperemia and breakthrough edema risk."
	}
}
