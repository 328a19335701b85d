package studymaterial

import "github.com/abhisek/sahayak/internal/llm"

// StudyMaterialSchema defines the JSON schema for study material generation.
var StudyMaterialSchema = &llm.Schema{
	Name:        "study-material",
	Description: "Textbook-style study material with sections, key concepts and practice problems",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type": "string",
			},
			"grade_level": map[string]any{
				"type":        "string",
				"description": "Target grade level",
			},
			"subject": map[string]any{
				"type": "string",
			},
			"overview": map[string]any{
				"type":        "string",
				"description": "Short overview of the material",
			},
			"learning_objectives": map[string]any{
				"type":        "string",
				"description": "What students will learn",
			},
			"sections": map[string]any{
				"type":        "array",
				"description": "Ordered content sections",
				"minItems":    1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"section_title": map[string]any{
							"type": "string",
						},
						"content": map[string]any{
							"type": "string",
						},
					},
					"required":             []any{"section_title", "content"},
					"additionalProperties": false,
				},
			},
			"key_concepts": map[string]any{
				"type":        "string",
				"description": "Summary of the key concepts",
			},
			"practice_problems": map[string]any{
				"type":        "string",
				"description": "Practice problems with answers",
			},
		},
		"required": []any{
			"title", "grade_level", "subject", "overview",
			"learning_objectives", "sections", "key_concepts", "practice_problems",
		},
		"additionalProperties": false,
	},
}
