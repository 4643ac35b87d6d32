// Package openapi generates the OpenAPI 3.0 document for the score API from
// the calculator registry, so that the published surface always matches what
// is actually registered.
package openapi

import (
	"github.com/medcalc/medcalc/internal/registry"
)

// Generator builds an OpenAPI 3.0 spec from the registry catalog.
type Generator struct {
	registry *registry.Registry
	version  string
	baseURL  string
}

// NewGenerator creates a new OpenAPI spec generator.
func NewGenerator(reg *registry.Registry, version, baseURL string) *Generator {
	return &Generator{registry: reg, version: version, baseURL: baseURL}
}

// GenerateSpec produces the OpenAPI 3.0 spec as a map.
func (g *Generator) GenerateSpec() map[string]interface{} {
	paths := map[string]interface{}{
		"/api/v1/scores": map[string]interface{}{
			"get": map[string]interface{}{
				"summary":     "List available scores",
				"operationId": "listScores",
				"tags":        []string{"catalog"},
				"parameters": []map[string]interface{}{
					{"name": "category", "in": "query", "schema": map[string]string{"type": "string"}, "description": "Filter by medical specialty"},
					{"name": "search", "in": "query", "schema": map[string]string{"type": "string"}, "description": "Free-text search over id, title, and description"},
				},
				"responses": map[string]interface{}{
					"200": g.buildResponse("Score catalog", "#/components/schemas/ScoreList"),
				},
			},
		},
		"/api/v1/scores/{score_id}": map[string]interface{}{
			"get": map[string]interface{}{
				"summary":     "Read score metadata",
				"operationId": "getScoreMetadata",
				"tags":        []string{"catalog"},
				"parameters":  scoreIDPathParam(),
				"responses": map[string]interface{}{
					"200": g.buildResponse("Score metadata", "#/components/schemas/ScoreMetadata"),
					"422": g.buildResponse("Unknown score", "#/components/schemas/ErrorResponse"),
				},
			},
		},
		"/api/v1/scores/{score_id}/validate": map[string]interface{}{
			"get": map[string]interface{}{
				"summary":     "Check score availability",
				"operationId": "validateScore",
				"tags":        []string{"catalog"},
				"parameters":  scoreIDPathParam(),
				"responses": map[string]interface{}{
					"200": g.buildResponse("Availability", "#/components/schemas/ScoreAvailability"),
				},
			},
		},
		"/api/v1/categories": map[string]interface{}{
			"get": map[string]interface{}{
				"summary":     "List medical specialties",
				"operationId": "listCategories",
				"tags":        []string{"catalog"},
				"responses": map[string]interface{}{
					"200": g.buildResponse("Categories", "#/components/schemas/CategoryList"),
				},
			},
		},
		"/api/v1/{score_id}/calculate": map[string]interface{}{
			"post": map[string]interface{}{
				"summary":     "Calculate any registered score",
				"operationId": "calculateScore",
				"tags":        []string{"calculate"},
				"parameters":  scoreIDPathParam(),
				"requestBody": g.buildRequestBody("Score parameters as a JSON object"),
				"responses": map[string]interface{}{
					"200": g.buildResponse("Calculation result", "#/components/schemas/CalculationResult"),
					"422": g.buildResponse("Unknown score or invalid parameters", "#/components/schemas/ErrorResponse"),
					"500": g.buildResponse("Computation failure", "#/components/schemas/ErrorResponse"),
				},
			},
		},
	}

	// One dedicated endpoint per registered score.
	for _, meta := range g.registry.All() {
		paths["/api/v1/"+meta.ID] = map[string]interface{}{
			"post": map[string]interface{}{
				"summary":     "Calculate " + meta.Title,
				"description": meta.Description,
				"operationId": "calculate_" + meta.ID,
				"tags":        []string{meta.Category},
				"requestBody": g.buildRequestBody("Parameters for " + meta.Title),
				"responses": map[string]interface{}{
					"200": g.buildResponse("Calculation result", "#/components/schemas/CalculationResult"),
					"422": g.buildResponse("Invalid parameters", "#/components/schemas/ErrorResponse"),
					"500": g.buildResponse("Computation failure", "#/components/schemas/ErrorResponse"),
				},
			},
		}
	}

	return map[string]interface{}{
		"openapi": "3.0.3",
		"info": map[string]interface{}{
			"title":       "Medical Score Calculation API",
			"version":     g.version,
			"description": "Registry and dispatch service for clinical score calculators",
		},
		"servers": []map[string]string{
			{"url": g.baseURL},
		},
		"paths":      paths,
		"components": map[string]interface{}{"schemas": buildComponentSchemas()},
	}
}

func scoreIDPathParam() []map[string]interface{} {
	return []map[string]interface{}{
		{"name": "score_id", "in": "path", "required": true, "schema": map[string]string{"type": "string"}},
	}
}

// buildRequestBody creates the OpenAPI requestBody for calculation operations.
func (g *Generator) buildRequestBody(description string) map[string]interface{} {
	return map[string]interface{}{
		"required":    true,
		"description": description,
		"content": map[string]interface{}{
			"application/json": map[string]interface{}{
				"schema": map[string]interface{}{
					"type":                 "object",
					"additionalProperties": true,
				},
			},
		},
	}
}

// buildResponse creates an OpenAPI response with a content schema reference.
func (g *Generator) buildResponse(description, schemaRef string) map[string]interface{} {
	return map[string]interface{}{
		"description": description,
		"content": map[string]interface{}{
			"application/json": map[string]interface{}{
				"schema": map[string]interface{}{
					"$ref": schemaRef,
				},
			},
		},
	}
}

func buildComponentSchemas() map[string]interface{} {
	return map[string]interface{}{
		"ScoreMetadata": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"id":          map[string]interface{}{"type": "string"},
				"title":       map[string]interface{}{"type": "string"},
				"category":    map[string]interface{}{"type": "string"},
				"description": map[string]interface{}{"type": "string"},
			},
			"required": []string{"id", "title", "category"},
		},
		"ScoreList": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"scores": map[string]interface{}{
					"type":  "array",
					"items": map[string]interface{}{"$ref": "#/components/schemas/ScoreMetadata"},
				},
				"total": map[string]interface{}{"type": "integer", "minimum": 0},
			},
		},
		"ScoreAvailability": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"score_id":  map[string]interface{}{"type": "string"},
				"available": map[string]interface{}{"type": "boolean"},
			},
		},
		"CategoryList": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"categories": map[string]interface{}{
					"type":  "array",
					"items": map[string]interface{}{"type": "string"},
				},
				"total": map[string]interface{}{"type": "integer", "minimum": 0},
			},
		},
		"CalculationResult": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"result":            map[string]interface{}{"description": "The computed value"},
				"unit":              map[string]interface{}{"type": "string"},
				"interpretation":    map[string]interface{}{"type": "string"},
				"stage":             map[string]interface{}{"type": "string"},
				"stage_description": map[string]interface{}{"type": "string"},
			},
			"additionalProperties": true,
		},
		"ErrorResponse": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"error": map[string]interface{}{
					"type": "string",
					"enum": []string{"UnknownScore", "InvalidParameters", "ComputationFailure"},
				},
				"message": map[string]interface{}{"type": "string"},
				"details": map[string]interface{}{"type": "object", "additionalProperties": true},
			},
			"required": []string{"error", "message"},
		},
	}
}
