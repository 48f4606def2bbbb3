package llm

import (
	"context"
	"encoding/json"
)

// Provider is what the interview flow talks to: the question generator and
// the evaluator both hand it a prompt plus a JSON Schema and get validated
// JSON back. Implementations exist for OpenAI, Anthropic, Gemini and
// OpenRouter; decorators add retries and event logging around any of them.
type Provider interface {
	// Generate sends a prompt to the model and returns its response.
	// When the request's Schema is set the provider uses its native
	// structured-output mechanism and Content is the validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System sets the interviewer's role and constraints.
	System string

	// Messages is the conversation history. Interview prompts carry the
	// transcript inline in a single user message, so this usually has
	// length one.
	Messages []Message

	// Schema is the JSON Schema the response must conform to, nil for
	// free-form text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Question generation
	// runs warm (0.7-0.8) to vary phrasing; evaluation runs cool (0.3).
	Temperature float64
}

// Message is a single turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema: tool name for Anthropic, schema name
	// for OpenAI. Kebab-case, e.g. "followup-question", "evaluation".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output: validated JSON when the request
	// carried a Schema, otherwise the raw text.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request, which may be
	// more specific than the configured alias.
	Model string

	// StopReason is normalized across providers to "end", "max_tokens"
	// or "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
