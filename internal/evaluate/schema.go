package evaluate

import "github.com/abhisek/vivadesk/internal/llm"

// criterionSchema is the shape shared by all four criterion assessments.
var criterionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"score": map[string]any{
			"type":        "number",
			"minimum":     0,
			"maximum":     100,
			"description": "Criterion score from 0 to 100",
		},
		"feedback": map[string]any{
			"type":        "string",
			"description": "Specific feedback for this criterion",
		},
		"strengths": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Observed strengths; empty when none stood out",
		},
		"weaknesses": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Observed weaknesses; empty when none stood out",
		},
	},
	"required":             []any{"score", "feedback", "strengths", "weaknesses"},
	"additionalProperties": false,
}

// EvaluationSchema is the structured response contract for full-interview
// evaluation.
var EvaluationSchema = &llm.Schema{
	Name:        "interview-evaluation",
	Description: "Comprehensive evaluation of a project presentation interview",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"overall_score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     100,
				"description": "Overall weighted score from 0 to 100",
			},
			"criteria_scores": map[string]any{
				"type": "object",
				"properties": map[string]any{
					CriterionTechnicalDepth:              criterionSchema,
					CriterionClarity:                     criterionSchema,
					CriterionOriginality:                 criterionSchema,
					CriterionImplementationUnderstanding: criterionSchema,
				},
				"required": []any{
					CriterionTechnicalDepth,
					CriterionClarity,
					CriterionOriginality,
					CriterionImplementationUnderstanding,
				},
				"additionalProperties": false,
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "2-3 sentence overall assessment",
			},
			"detailed_feedback": map[string]any{
				"type":        "string",
				"description": "Paragraph of detailed feedback",
			},
			"recommendations": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Concrete recommendations for the student",
			},
			"notable_moments": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Standout moments, positive or needing improvement",
			},
		},
		"required": []any{
			"overall_score", "criteria_scores", "summary",
			"detailed_feedback", "recommendations", "notable_moments",
		},
		"additionalProperties": false,
	},
}

// ResponseReviewSchema is the structured response contract for single-answer
// micro-assessments.
var ResponseReviewSchema = &llm.Schema{
	Name:        "response-review",
	Description: "Quick assessment of a single interview answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"quality_score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     10,
				"description": "Answer quality from 0 to 10",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "What the student did well",
			},
			"gaps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "What could be improved",
			},
			"technical_accuracy": map[string]any{
				"type": "string",
				"enum": []any{"accurate", "partially accurate", "inaccurate"},
			},
			"clarity_rating": map[string]any{
				"type": "string",
				"enum": []any{"clear", "somewhat clear", "unclear"},
			},
		},
		"required": []any{
			"quality_score", "strengths", "gaps",
			"technical_accuracy", "clarity_rating",
		},
		"additionalProperties": false,
	},
}
