package neurology

import (
	"testing"

	"github.com/medcalc/medcalc/internal/registry"
)

func TestAbcd2_Scoring(t *testing.T) {
	cases := []struct {
		name   string
		params registry.Params
		want   int
		stage  string
	}{
		{
			name: "minimal risk",
			params: registry.Params{
				"age": 45.0, "systolic_bp": 120.0, "diastolic_bp": 75.0,
				"clinical_features": "other", "duration": "under_10min",
			},
			want:  0,
			stage: "Low",
		},
		{
			name: "moderate risk",
			params: registry.Params{
				"age": 65.0, "systolic_bp": 150.0, "diastolic_bp": 95.0,
				"clinical_features": "speech_disturbance", "duration": "10_to_59min",
			},
			want:  4,
			stage: "Moderate",
		},
		{
			name: "maximum score",
			params: registry.Params{
				"age": 70.0, "systolic_bp": 160.0, "diastolic_bp": 95.0,
				"clinical_features": "unilateral_weakness", "duration": "60min_or_more",
				"diabetes": true,
			},
			want:  7,
			stage: "High",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Abcd2{}.Invoke(tc.params)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res["result"] != tc.want {
				t.Errorf("expected score %d, got %v", tc.want, res["result"])
			}
			if res["stage"] != tc.stage {
				t.Errorf("expected stage %q, got %v", tc.stage, res["stage"])
			}
		})
	}
}

func TestAbcd2_RejectsUnknownDuration(t *testing.T) {
	_, err := Abcd2{}.Invoke(registry.Params{
		"age": 45.0, "systolic_bp": 120.0, "diastolic_bp": 75.0,
		"clinical_features": "other", "duration": "all_day",
	})
	if err == nil {
		t.Fatal("expected error for unknown duration")
	}
}

func TestCerebralPerfusionPressure(t *testing.T) {
	res, err := CerebralPerfusionPressure{}.Invoke(registry.Params{
		"mean_arterial_pressure": 90.0,
		"intracranial_pressure":  15.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res["result"] != 75.0 {
		t.Errorf("expected CPP 75, got %v", res["result"])
	}
	if res["stage"] != "Adequate" {
		t.Errorf("expected Adequate, got %v", res["stage"])
	}
}

func TestCerebralPerfusionPressure_LowStage(t *testing.T) {
	res, err := CerebralPerfusionPressure{}.Invoke(registry.Params{
		"mean_arterial_pressure": 70.0,
		"intracranial_pressure":  25.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res["stage"] != "Low" {
		t.Errorf("expected Low, got %v", res["stage"])
	}
}

func TestCerebralPerfusionPressure_RejectsICPAboveMAP(t *testing.T) {
	_, err := CerebralPerfusionPressure{}.Invoke(registry.Params{
		"mean_arterial_pressure": 60.0,
		"intracranial_pressure":  80.0,
	})
	if err == nil {
		t.Fatal("expected error when ICP exceeds MAP")
	}
}
