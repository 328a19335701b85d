package worksheet

import "github.com/abhisek/sahayak/internal/llm"

// WorksheetSchema defines the JSON schema for worksheet generation.
// Item counts (6-8 blanks, 4-6 short answers) are prompt-instructed
// only; the schema requires at least one of each so an off-count
// response still renders instead of erroring.
var WorksheetSchema = &llm.Schema{
	Name:        "worksheet",
	Description: "A worksheet with fill-in-the-blank and short answer questions derived from a textbook page",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Worksheet title derived from the page content",
			},
			"grade_level": map[string]any{
				"type":        "integer",
				"description": "Target grade level, 1-12",
			},
			"subject": map[string]any{
				"type":        "string",
				"description": "Subject area the page covers",
			},
			"fill_in_blanks": map[string]any{
				"type":        "array",
				"description": "6-8 fill-in-the-blank questions",
				"minItems":    1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_text": map[string]any{
							"type":        "string",
							"description": "Question text with ______ blanks",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The correct answer for the blank",
						},
					},
					"required":             []any{"question_text", "answer"},
					"additionalProperties": false,
				},
			},
			"short_answers": map[string]any{
				"type":        "array",
				"description": "4-6 short answer questions",
				"minItems":    1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question text",
						},
						"expected_answer": map[string]any{
							"type":        "string",
							"description": "Sample answer for teacher reference",
						},
					},
					"required":             []any{"question", "expected_answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "grade_level", "subject", "fill_in_blanks", "short_answers"},
		"additionalProperties": false,
	},
}
