package gateway

import "github.com/abhisek/studium/internal/llm"

func stringArray(desc string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": desc,
	}
}

// SubjectProfileSchema defines the JSON schema for subject domain analysis.
var SubjectProfileSchema = &llm.Schema{
	Name:        "subject-profile",
	Description: "Analysis of an academic subject's domain, learning style, and content strategy",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"subject_domain": map[string]any{
				"type": "string",
				"enum": []any{
					"economics", "computer_science", "mathematics", "history",
					"literature", "psychology", "engineering", "medicine",
					"law", "business", "physics", "chemistry", "biology", "other",
				},
			},
			"learning_style": map[string]any{
				"type": "string",
				"enum": []any{"theoretical", "practical", "mixed"},
			},
			"complexity_level": map[string]any{
				"type": "string",
				"enum": []any{"undergraduate", "masters", "phd", "professional"},
			},
			"key_characteristics":    stringArray("What defines how this subject is learned"),
			"content_types":          stringArray("Kinds of content this subject uses"),
			"career_applications":    stringArray("Industry applications and job roles"),
			"visualization_types":    stringArray("Visualization kinds that suit this subject"),
			"assessment_methods":     stringArray("How understanding is typically tested"),
			"real_world_connections": stringArray("How concepts apply in practice"),
			"difficulty_factors":     stringArray("What makes this subject hard"),
			"recommended_examples":   stringArray("Example types that work best"),
		},
		"required": []any{
			"subject_domain", "learning_style", "complexity_level",
			"key_characteristics", "content_types", "career_applications",
			"visualization_types", "assessment_methods",
			"real_world_connections", "difficulty_factors",
		},
		"additionalProperties": false,
	},
}

// QuizSchema defines the JSON schema for quiz generation.
var QuizSchema = &llm.Schema{
	Name:        "practice-quiz",
	Description: "A multiple choice practice quiz with per-question concept tags",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Quiz title",
			},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"beginner", "intermediate", "advanced"},
			},
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"options": map[string]any{
							"type":     "array",
							"items":    map[string]any{"type": "string"},
							"minItems": 4,
							"maxItems": 4,
						},
						"correct_answer_index": map[string]any{
							"type":    "integer",
							"minimum": 0,
							"maximum": 3,
						},
						"explanation":    map[string]any{"type": "string"},
						"question_type":  map[string]any{"type": "string"},
						"concept_tested": map[string]any{"type": "string"},
					},
					"required": []any{
						"question", "options", "correct_answer_index",
						"explanation", "question_type", "concept_tested",
					},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "difficulty", "questions"},
		"additionalProperties": false,
	},
}

// VisualizationSchema defines the JSON schema for visualization generation.
var VisualizationSchema = &llm.Schema{
	Name:        "interactive-visualization",
	Description: "A renderable chart configuration with an interpretation guide",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"visualization_type": map[string]any{
				"type": "string",
				"enum": []any{"chart", "diagram", "flowchart", "timeline", "network"},
			},
			"library": map[string]any{"type": "string"},
			"config": map[string]any{
				"type":        "object",
				"description": "Complete renderer configuration",
			},
			"description":          map[string]any{"type": "string"},
			"interpretation_guide": map[string]any{"type": "string"},
		},
		"required": []any{
			"title", "visualization_type", "library", "config",
			"description", "interpretation_guide",
		},
		"additionalProperties": false,
	},
}
