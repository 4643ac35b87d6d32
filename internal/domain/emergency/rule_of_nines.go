package emergency

import (
	"fmt"

	"github.com/medcalc/medcalc/internal/registry"
)

const ScoreRuleOfNines = "rule_of_nines"

// Adult body surface area share per region, percent.
var bodyRegions = []struct {
	param   string
	percent float64
}{
	{"head", 9},
	{"anterior_trunk", 18},
	{"posterior_trunk", 18},
	{"left_arm", 9},
	{"right_arm", 9},
	{"left_leg", 18},
	{"right_leg", 18},
	{"genitalia", 1},
}

// RuleOfNines estimates the total body surface area burned in adults.
type RuleOfNines struct{}

func (RuleOfNines) Meta() registry.Metadata {
	return registry.Metadata{
		ID:          ScoreRuleOfNines,
		Title:       "Rule of Nines",
		Category:    "emergency",
		Description: "Total body surface area burned in adults from involved body regions",
	}
}

func (RuleOfNines) Invoke(p registry.Params) (registry.Result, error) {
	tbsa := 0.0
	var involved []string
	for _, region := range bodyRegions {
		burned, err := p.Bool(region.param)
		if err != nil {
			return nil, err
		}
		if burned {
			tbsa += region.percent
			involved = append(involved, region.param)
		}
	}
	if involved == nil {
		involved = []string{}
	}

	stage, stageDesc := burnStage(tbsa)

	return registry.Result{
		"result":            tbsa,
		"unit":              "% TBSA",
		"interpretation":    burnInterpretation(tbsa, stage),
		"stage":             stage,
		"stage_description": stageDesc,
		"involved_regions":  involved,
	}, nil
}

func burnStage(tbsa float64) (string, string) {
	switch {
	case tbsa < 10:
		return "Minor", "Less than 10% TBSA involved"
	case tbsa < 20:
		return "Moderate", "10-19% TBSA involved"
	default:
		return "Major", "20% TBSA or more involved"
	}
}

func burnInterpretation(tbsa float64, stage string) string {
	base := fmt.Sprintf("Approximately %.0f%% of total body surface area burned.", tbsa)
	switch stage {
	case "Minor":
		return base + " Outpatient management is usually possible for partial-thickness burns in this range."
	case "Moderate":
		return base + " Inpatient burn care is recommended; begin fluid resuscitation calculations."
	default:
		return base + " Major burn; initiate formal fluid resuscitation (e.g. Parkland formula) and transfer to a burn center."
	}
}
