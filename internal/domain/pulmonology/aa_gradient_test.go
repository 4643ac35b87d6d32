package pulmonology

import (
	"math"
	"testing"

	"github.com/medcalc/medcalc/internal/registry"
)

func TestAAO2Gradient_RoomAirNormal(t *testing.T) {
	res, err := AAO2Gradient{}.Invoke(registry.Params{
		"age": 40.0, "fio2": 0.21, "paco2": 40.0, "pao2": 90.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := res["result"].(float64)
	if math.Abs(got-9.7) > 0.1 {
		t.Errorf("expected gradient ~9.7 mmHg, got %v", got)
	}
	if res["stage"] != "Normal" {
		t.Errorf("expected Normal, got %v", res["stage"])
	}
	if res["expected_gradient"].(float64) != 14.0 {
		t.Errorf("expected age-expected gradient 14.0, got %v", res["expected_gradient"])
	}
}

func TestAAO2Gradient_Elevated(t *testing.T) {
	res, err := AAO2Gradient{}.Invoke(registry.Params{
		"age": 40.0, "fio2": 0.21, "paco2": 40.0, "pao2": 60.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res["stage"] != "Elevated" {
		t.Errorf("expected Elevated, got %v (gradient %v)", res["stage"], res["result"])
	}
}

func TestAAO2Gradient_AltitudeAdjustment(t *testing.T) {
	res, err := AAO2Gradient{}.Invoke(registry.Params{
		"age": 40.0, "fio2": 0.21, "paco2": 40.0, "pao2": 55.0,
		"atmospheric_pressure": 630.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 0.21 x (630 - 47) - 40/0.8 - 55 = 17.4
	got := res["result"].(float64)
	if math.Abs(got-17.4) > 0.1 {
		t.Errorf("expected gradient ~17.4 mmHg, got %v", got)
	}
}

func TestAAO2Gradient_RejectsImpossiblePaO2(t *testing.T) {
	_, err := AAO2Gradient{}.Invoke(registry.Params{
		"age": 40.0, "fio2": 0.21, "paco2": 40.0, "pao2": 300.0,
	})
	if err == nil {
		t.Fatal("expected error for PaO2 above alveolar oxygen tension on room air")
	}
}
