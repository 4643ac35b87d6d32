package hematology

import (
	"testing"

	"github.com/medcalc/medcalc/internal/registry"
)

func TestANC_WithBands(t *testing.T) {
	res, err := ANC{}.Invoke(registry.Params{
		"wbc":                6.0,
		"neutrophil_percent": 55.0,
		"band_percent":       5.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res["result"] != 3600.0 {
		t.Errorf("expected ANC 3600, got %v", res["result"])
	}
	if res["stage"] != "Normal" {
		t.Errorf("expected Normal, got %v", res["stage"])
	}
}

func TestANC_NeutropeniaGrades(t *testing.T) {
	cases := []struct {
		wbc     float64
		neut    float64
		stage   string
	}{
		{2.0, 60.0, "Mild"},     // 1200
		{1.5, 50.0, "Moderate"}, // 750
		{0.8, 30.0, "Severe"},   // 240
	}
	for _, tc := range cases {
		res, err := ANC{}.Invoke(registry.Params{
			"wbc": tc.wbc, "neutrophil_percent": tc.neut,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res["stage"] != tc.stage {
			t.Errorf("wbc %v neut %v: expected %s, got %v (ANC %v)",
				tc.wbc, tc.neut, tc.stage, res["stage"], res["result"])
		}
	}
}

func TestANC_RejectsDifferentialOver100(t *testing.T) {
	_, err := ANC{}.Invoke(registry.Params{
		"wbc": 6.0, "neutrophil_percent": 80.0, "band_percent": 30.0,
	})
	if err == nil {
		t.Fatal("expected error for differential exceeding 100%")
	}
}

func TestALC_Stages(t *testing.T) {
	cases := []struct {
		wbc   float64
		lymph float64
		want  float64
		stage string
	}{
		{8.0, 30.0, 2400, "Normal"},
		{5.0, 25.0, 1250, "Indeterminate"},
		{3.0, 20.0, 600, "Low"},
	}
	for _, tc := range cases {
		res, err := ALC{}.Invoke(registry.Params{
			"wbc": tc.wbc, "lymphocyte_percent": tc.lymph,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res["result"] != tc.want {
			t.Errorf("expected ALC %v, got %v", tc.want, res["result"])
		}
		if res["stage"] != tc.stage {
			t.Errorf("expected stage %s, got %v", tc.stage, res["stage"])
		}
	}
}

func TestMABL(t *testing.T) {
	res, err := MABL{}.Invoke(registry.Params{
		"patient_group":      "adult_male",
		"weight":             70.0,
		"initial_hematocrit": 42.0,
		"final_hematocrit":   30.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// EBV 5250 mL x (42-30)/42 = 1500 mL
	if res["result"] != 1500.0 {
		t.Errorf("expected MABL 1500 mL, got %v", res["result"])
	}
	if res["estimated_blood_volume"] != 5250.0 {
		t.Errorf("expected EBV 5250 mL, got %v", res["estimated_blood_volume"])
	}
}

func TestMABL_RejectsFinalAboveInitial(t *testing.T) {
	_, err := MABL{}.Invoke(registry.Params{
		"patient_group":      "adult_female",
		"weight":             60.0,
		"initial_hematocrit": 30.0,
		"final_hematocrit":   35.0,
	})
	if err == nil {
		t.Fatal("expected error when final hematocrit is not below initial")
	}
}
