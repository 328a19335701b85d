package lessonplan

import "github.com/abhisek/sahayak/internal/llm"

// LessonPlanSchema defines the JSON schema for lesson plan generation.
var LessonPlanSchema = &llm.Schema{
	Name:        "lesson-plan",
	Description: "A multi-lesson teaching outline with durations and content per lesson",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Title of the lesson plan",
			},
			"grade_level": map[string]any{
				"type":        "string",
				"description": "Target grade level, inferred when not specified",
			},
			"total_duration": map[string]any{
				"type":        "string",
				"description": "Total duration across all lessons",
			},
			"learning_goals": map[string]any{
				"type":        "string",
				"description": "Overall learning goals",
			},
			"overview": map[string]any{
				"type":        "string",
				"description": "Short overview of the plan",
			},
			"lessons": map[string]any{
				"type":        "array",
				"description": "Ordered lessons, typically 5-8",
				"minItems":    1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"lesson_number": map[string]any{
							"type":        "integer",
							"description": "1-based lesson position",
						},
						"title": map[string]any{
							"type": "string",
						},
						"duration": map[string]any{
							"type":        "string",
							"description": "e.g. \"60 minutes\"",
						},
						"content": map[string]any{
							"type":        "string",
							"description": "Activities and content for the lesson",
						},
						"key_learning_points": map[string]any{
							"type":        "string",
							"description": "What students should take away",
						},
					},
					"required":             []any{"lesson_number", "title", "duration", "content", "key_learning_points"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "grade_level", "total_duration", "learning_goals", "overview", "lessons"},
		"additionalProperties": false,
	},
}
