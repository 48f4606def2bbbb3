package interview

import "github.com/abhisek/vivadesk/internal/llm"

// OpeningQuestionSchema is the structured response contract for the
// interview's opening question.
var OpeningQuestionSchema = &llm.Schema{
	Name:        "opening-question",
	Description: "The opening question of a project presentation interview",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question to ask the student",
			},
			"question_type": map[string]any{
				"type":        "string",
				"description": "Category of the question, e.g. introduction",
			},
			"focus_areas": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Topics the question is meant to surface",
			},
		},
		"required":             []any{"question", "question_type", "focus_areas"},
		"additionalProperties": false,
	},
}

// FollowupQuestionSchema is the structured response contract for follow-up
// questions, which additionally carry the model's reasoning.
var FollowupQuestionSchema = &llm.Schema{
	Name:        "followup-question",
	Description: "A context-aware follow-up question in a project interview",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The specific, targeted question to ask next",
			},
			"question_type": map[string]any{
				"type":        "string",
				"enum":        []any{"technical", "conceptual", "implementation", "design"},
				"description": "Category of the question",
			},
			"focus_areas": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Specific topics the question targets",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "Why this question is being asked now",
			},
		},
		"required":             []any{"question", "question_type", "focus_areas", "reasoning"},
		"additionalProperties": false,
	},
}

// CodeQuestionSchema is the structured response contract for code-review
// questions about a visible snippet.
var CodeQuestionSchema = &llm.Schema{
	Name:        "code-question",
	Description: "A targeted technical question about a visible code snippet",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question to ask about the code",
			},
			"question_type": map[string]any{
				"type":        "string",
				"description": "Always code_review",
			},
			"focus_areas": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Specific aspects of the code to focus on",
			},
		},
		"required":             []any{"question", "question_type", "focus_areas"},
		"additionalProperties": false,
	},
}
