package cardiology

import (
	"math"
	"testing"

	"github.com/medcalc/medcalc/internal/registry"
)

func TestCorrectedQT_Formulas(t *testing.T) {
	cases := []struct {
		name    string
		formula string
		qt      float64
		hr      float64
		want    float64
		stage   string
	}{
		{"bazett at 60 bpm is identity", "bazett", 400, 60, 400.0, "Normal"},
		{"bazett tachycardia", "bazett", 350, 120, 495.0, "Prolonged"},
		{"fridericia tachycardia", "fridericia", 400, 120, 504.0, "Severely Prolonged"},
		{"framingham", "framingham", 400, 75, 430.8, "Normal"},
		{"hodges", "hodges", 400, 100, 470.0, "Borderline"},
		{"rautaharju at 60 bpm is identity", "rautaharju", 400, 60, 400.0, "Normal"},
		{"short qt", "bazett", 320, 60, 320.0, "Short QT"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := CorrectedQTInterval{}.Invoke(registry.Params{
				"qt_interval": tc.qt,
				"heart_rate":  tc.hr,
				"formula":     tc.formula,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := res["result"].(float64)
			if math.Abs(got-tc.want) > 0.11 {
				t.Errorf("expected QTc ~%v, got %v", tc.want, got)
			}
			if res["stage"] != tc.stage {
				t.Errorf("expected stage %q, got %v", tc.stage, res["stage"])
			}
		})
	}
}

func TestCorrectedQT_RejectsUnknownFormula(t *testing.T) {
	_, err := CorrectedQTInterval{}.Invoke(registry.Params{
		"qt_interval": 400.0,
		"heart_rate":  60.0,
		"formula":     "einthoven",
	})
	if err == nil {
		t.Fatal("expected error for unknown formula")
	}
}

func TestCorrectedQT_RejectsOutOfRangeHeartRate(t *testing.T) {
	_, err := CorrectedQTInterval{}.Invoke(registry.Params{
		"qt_interval": 400.0,
		"heart_rate":  10.0,
		"formula":     "bazett",
	})
	if err == nil {
		t.Fatal("expected error for heart rate below 20 bpm")
	}
}
