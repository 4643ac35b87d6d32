package openapi

import (
	"testing"

	"github.com/medcalc/medcalc/internal/registry"
)

type stubCalc struct {
	meta registry.Metadata
}

func (s stubCalc) Meta() registry.Metadata                         { return s.meta }
func (s stubCalc) Invoke(registry.Params) (registry.Result, error) { return registry.Result{}, nil }

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r := registry.New()
	calcs := []registry.Metadata{
		{ID: "curb_65", Title: "CURB-65", Category: "pulmonology", Description: "Pneumonia severity"},
		{ID: "abcd2", Title: "ABCD2", Category: "neurology", Description: "Stroke risk after TIA"},
	}
	for _, m := range calcs {
		if err := r.Register(stubCalc{meta: m}); err != nil {
			t.Fatalf("register %s: %v", m.ID, err)
		}
	}
	r.Freeze()
	return r
}

func TestGenerateSpec_TopLevel(t *testing.T) {
	g := NewGenerator(testRegistry(t), "1.0.0", "http://localhost:8000")
	spec := g.GenerateSpec()

	if spec["openapi"] != "3.0.3" {
		t.Errorf("expected openapi 3.0.3, got %v", spec["openapi"])
	}
	info, ok := spec["info"].(map[string]interface{})
	if !ok {
		t.Fatal("expected info object")
	}
	if info["version"] != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %v", info["version"])
	}
}

func TestGenerateSpec_CatalogAndGenericPaths(t *testing.T) {
	g := NewGenerator(testRegistry(t), "1.0.0", "http://localhost:8000")
	spec := g.GenerateSpec()
	paths := spec["paths"].(map[string]interface{})

	for _, p := range []string{
		"/api/v1/scores",
		"/api/v1/scores/{score_id}",
		"/api/v1/scores/{score_id}/validate",
		"/api/v1/categories",
		"/api/v1/{score_id}/calculate",
	} {
		if _, ok := paths[p]; !ok {
			t.Errorf("expected path %s in spec", p)
		}
	}
}

func TestGenerateSpec_PerScorePaths(t *testing.T) {
	g := NewGenerator(testRegistry(t), "1.0.0", "http://localhost:8000")
	spec := g.GenerateSpec()
	paths := spec["paths"].(map[string]interface{})

	entry, ok := paths["/api/v1/curb_65"].(map[string]interface{})
	if !ok {
		t.Fatal("expected dedicated path for curb_65")
	}
	post, ok := entry["post"].(map[string]interface{})
	if !ok {
		t.Fatal("expected post operation for curb_65")
	}
	if post["operationId"] != "calculate_curb_65" {
		t.Errorf("unexpected operationId: %v", post["operationId"])
	}
	tags := post["tags"].([]string)
	if len(tags) != 1 || tags[0] != "pulmonology" {
		t.Errorf("expected pulmonology tag, got %v", tags)
	}

	if _, ok := paths["/api/v1/abcd2"]; !ok {
		t.Error("expected dedicated path for abcd2")
	}
}

func TestGenerateSpec_ComponentSchemas(t *testing.T) {
	g := NewGenerator(testRegistry(t), "1.0.0", "http://localhost:8000")
	spec := g.GenerateSpec()
	components := spec["components"].(map[string]interface{})
	schemas := components["schemas"].(map[string]interface{})

	for _, name := range []string{"ScoreMetadata", "ScoreList", "CalculationResult", "ErrorResponse"} {
		if _, ok := schemas[name]; !ok {
			t.Errorf("expected schema %s", name)
		}
	}
}
