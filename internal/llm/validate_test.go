package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func followupSchema() *Schema {
	return &Schema{
		Name:        "followup-question",
		Description: "The interviewer's next question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question":      map[string]any{"type": "string"},
				"question_type": map[string]any{"type": "string", "enum": []any{"followup", "screen_based", "deep_dive"}},
				"focus_areas": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"question", "question_type"},
		},
	}
}

func TestValidateResponse_ValidQuestion(t *testing.T) {
	raw := json.RawMessage(`{"question":"Why did you pick SQLite?","question_type":"deep_dive","focus_areas":["storage"]}`)
	if err := validateResponse(followupSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"question":"Can you walk me through the handler?","question_type":"screen_based"}`)
	if err := validateResponse(followupSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"question":"What does it do?"}`)
	err := validateResponse(followupSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing question_type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"question":42,"question_type":"followup"}`)
	err := validateResponse(followupSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"question":"Anything else?","question_type":"closing"}`)
	err := validateResponse(followupSchema(), raw)
	if err == nil {
		t.Fatal("expected error for unknown question_type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`Sure! Here is the question you asked for:`)
	err := validateResponse(followupSchema(), raw)
	if err == nil {
		t.Fatal("expected error for non-JSON output")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	err := validateResponse(followupSchema(), json.RawMessage(``))
	if err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_EvaluationShape(t *testing.T) {
	schema := &Schema{
		Name:        "evaluation-result",
		Description: "Scored interview evaluation",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"criteria": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"technical_depth": map[string]any{"type": "number"},
					},
					"required": []any{"technical_depth"},
				},
				"strengths": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"criteria", "strengths"},
		},
	}

	valid := json.RawMessage(`{"criteria":{"technical_depth":82},"strengths":["clear explanations"]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"criteria":{"technical_depth":82},"strengths":[1,2]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
