package nephrology

import (
	"errors"
	"math"
	"testing"

	"github.com/medcalc/medcalc/internal/registry"
)

func TestCKDEpi2021_Male(t *testing.T) {
	res, err := CKDEpi2021{}.Invoke(registry.Params{
		"sex":              "male",
		"age":              40.0,
		"serum_creatinine": 1.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := res["result"].(float64)
	if math.Abs(got-97.6) > 0.1 {
		t.Errorf("expected eGFR ~97.6, got %v", got)
	}
	if res["stage"] != "G1" {
		t.Errorf("expected stage G1, got %v", res["stage"])
	}
	if res["unit"] != "mL/min/1.73 m2" {
		t.Errorf("unexpected unit %v", res["unit"])
	}
}

func TestCKDEpi2021_Female(t *testing.T) {
	res, err := CKDEpi2021{}.Invoke(registry.Params{
		"sex":              "female",
		"age":              60.0,
		"serum_creatinine": 0.8,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := res["result"].(float64)
	if math.Abs(got-84.3) > 0.1 {
		t.Errorf("expected eGFR ~84.3, got %v", got)
	}
	if res["stage"] != "G2" {
		t.Errorf("expected stage G2, got %v", res["stage"])
	}
}

func TestCKDEpi2021_KidneyFailureStage(t *testing.T) {
	res, err := CKDEpi2021{}.Invoke(registry.Params{
		"sex":              "male",
		"age":              70.0,
		"serum_creatinine": 6.5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res["stage"] != "G5" {
		t.Errorf("expected stage G5, got %v (eGFR %v)", res["stage"], res["result"])
	}
}

func TestCKDEpi2021_RejectsOutOfRangeInputs(t *testing.T) {
	cases := []registry.Params{
		{"sex": "male", "age": 10.0, "serum_creatinine": 1.0},
		{"sex": "male", "age": 40.0, "serum_creatinine": 25.0},
		{"sex": "unknown", "age": 40.0, "serum_creatinine": 1.0},
		{"age": 40.0, "serum_creatinine": 1.0},
	}
	for _, p := range cases {
		_, err := CKDEpi2021{}.Invoke(p)
		if err == nil {
			t.Errorf("expected error for params %v", p)
			continue
		}
		var perr *registry.ParameterError
		if !errors.As(err, &perr) {
			t.Errorf("expected ParameterError, got %T for params %v", err, p)
		}
	}
}
