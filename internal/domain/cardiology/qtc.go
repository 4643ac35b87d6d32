// Package cardiology implements cardiovascular risk and ECG calculators.
package cardiology

import (
	"fmt"
	"math"

	"github.com/medcalc/medcalc/internal/registry"
)

const ScoreCorrectedQT = "corrected_qt_interval"

// CorrectedQTInterval corrects the measured QT interval for heart rate using
// one of five validated formulas (Bazett, Fridericia, Framingham, Hodges,
// Rautaharju).
type CorrectedQTInterval struct{}

func (CorrectedQTInterval) Meta() registry.Metadata {
	return registry.Metadata{
		ID:          ScoreCorrectedQT,
		Title:       "Corrected QT Interval (QTc)",
		Category:    "cardiology",
		Description: "Corrects the QT interval for heart rate extremes using the Bazett, Fridericia, Framingham, Hodges or Rautaharju formula",
	}
}

func (CorrectedQTInterval) Invoke(p registry.Params) (registry.Result, error) {
	qt, err := p.FloatInRange("qt_interval", 200, 800)
	if err != nil {
		return nil, err
	}
	hr, err := p.FloatInRange("heart_rate", 20, 300)
	if err != nil {
		return nil, err
	}
	formula, err := p.Enum("formula", "bazett", "fridericia", "framingham", "hodges", "rautaharju")
	if err != nil {
		return nil, err
	}

	rr := 60 / hr // seconds

	var qtc float64
	var equation string
	switch formula {
	case "bazett":
		qtc = qt / math.Sqrt(rr)
		equation = "QTc = QT / sqrt(RR)"
	case "fridericia":
		qtc = qt / math.Cbrt(rr)
		equation = "QTc = QT / RR^(1/3)"
	case "framingham":
		qtc = qt + 154*(1-rr)
		equation = "QTc = QT + 154 x (1 - RR)"
	case "hodges":
		qtc = qt + 1.75*(hr-60)
		equation = "QTc = QT + 1.75 x (HR - 60)"
	case "rautaharju":
		qtc = qt * (120 + hr) / 180
		equation = "QTc = QT x (120 + HR) / 180"
	}
	qtc = math.Round(qtc*10) / 10

	stage, stageDesc := qtcStage(qtc)

	return registry.Result{
		"result":            qtc,
		"unit":              "ms",
		"interpretation":    qtcInterpretation(qtc, stage, formula),
		"stage":             stage,
		"stage_description": stageDesc,
		"calculation_details": map[string]any{
			"formula_used":     formula,
			"formula_equation": equation,
			"rr_interval":      math.Round(rr*1000) / 1000,
		},
	}, nil
}

func qtcStage(qtc float64) (string, string) {
	switch {
	case qtc < 360:
		return "Short QT", "QTc below the normal range"
	case qtc <= 440:
		return "Normal", "Normal cardiac repolarization duration"
	case qtc < 480:
		return "Borderline", "Borderline QTc prolongation"
	case qtc < 500:
		return "Prolonged", "Prolonged QTc, diagnostic threshold for Long QT Syndrome"
	default:
		return "Severely Prolonged", "Severely prolonged QTc with high torsades de pointes risk"
	}
}

func qtcInterpretation(qtc float64, stage, formula string) string {
	base := fmt.Sprintf("QTc of %.1f ms (%s formula).", qtc, formula)
	switch stage {
	case "Short QT":
		return base + " Shortened repolarization; consider Short QT Syndrome if persistent and unexplained."
	case "Normal":
		return base + " Normal repolarization; no QT-specific monitoring required."
	case "Borderline":
		return base + " Review QT-prolonging medications and electrolytes; repeat ECG is reasonable."
	case "Prolonged":
		return base + " Meets the diagnostic threshold for Long QT Syndrome; cardiology evaluation is indicated."
	default:
		return base + " High risk of torsades de pointes; discontinue QT-prolonging drugs, correct electrolytes and obtain urgent cardiology review."
	}
}
