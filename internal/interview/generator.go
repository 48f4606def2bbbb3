package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/vivadesk/internal/llm"
)

// Fallback questions served when the LLM call fails. The interview always
// has something to ask next.
const (
	fallbackInitialQuestion  = "Could you please tell me about your project?"
	fallbackFollowupQuestion = "Can you explain more about that?"
	fallbackCodeQuestion     = "Can you walk me through this code?"
)

// QuestionTypeFallback marks a question that came from the deterministic
// fallback path rather than the model.
const QuestionTypeFallback = "fallback"

const generatorMaxTokens = 1024

// Question is one generated interview question.
type Question struct {
	Text       string
	Type       string
	FocusAreas []string
	Reasoning  string
}

// Generator produces interview questions from a session's dialogue history
// and accumulated context. It keeps no state of its own.
//
// Every generation failure is converted into a deterministic fallback
// Question plus the causing error; callers always receive a usable question
// and decide what the error means for them.
type Generator struct {
	provider llm.Provider
	timeout  time.Duration
}

// NewGenerator creates a Generator using the given provider. Every external
// call is bounded by timeout.
func NewGenerator(provider llm.Provider, timeout time.Duration) *Generator {
	return &Generator{provider: provider, timeout: timeout}
}

// questionOutput is the raw LLM response before mapping.
type questionOutput struct {
	Question     string   `json:"question"`
	QuestionType string   `json:"question_type"`
	FocusAreas   []string `json:"focus_areas"`
	Reasoning    string   `json:"reasoning"`
}

// Initial generates the opening question and appends it to the session's
// dialogue history. On failure the fallback question is appended and
// returned together with the error.
func (g *Generator) Initial(ctx context.Context, s *Session) (Question, error) {
	ctx = llm.WithPurpose(ctx, "question-initial")

	q, err := g.generate(ctx, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: initialPrompt}},
		Schema:      OpeningQuestionSchema,
		MaxTokens:   generatorMaxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		q = Question{Text: fallbackInitialQuestion, Type: QuestionTypeFallback}
	}

	// Fallback questions are real exchanges: they get asked either way.
	s.appendExchange(KindQuestion, q.Text)

	return q, err
}

// Followup generates the next question from the trailing history window, the
// student's latest response and the current screen text. The response and
// the new question are appended to the full history regardless of the
// bounded window used for prompting, and regardless of generation failure.
func (g *Generator) Followup(ctx context.Context, s *Session, studentResponse, screenContext string) (Question, error) {
	ctx = llm.WithPurpose(ctx, "question-followup")

	// Summarize before appending so the window reflects the history as it
	// stood when the student answered.
	summary := summarizeHistory(s.History)

	q, err := g.generate(ctx, llm.Request{
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: buildFollowupPrompt(summary, studentResponse, screenContext),
		}},
		Schema:      FollowupQuestionSchema,
		MaxTokens:   generatorMaxTokens,
		Temperature: 0.8,
	})
	if err != nil {
		q = Question{Text: fallbackFollowupQuestion, Type: QuestionTypeFallback}
	}

	s.appendExchange(KindStudentResponse, studentResponse)
	s.appendExchange(KindQuestion, q.Text)

	return q, err
}

// CodeReview generates a question about a visible code snippet. It does not
// touch the dialogue history; the caller decides whether to ask it.
func (g *Generator) CodeReview(ctx context.Context, codeSnippet, studentResponse string) (Question, error) {
	ctx = llm.WithPurpose(ctx, "question-code")

	q, err := g.generate(ctx, llm.Request{
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: buildCodePrompt(codeSnippet, studentResponse),
		}},
		Schema:      CodeQuestionSchema,
		MaxTokens:   generatorMaxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return Question{Text: fallbackCodeQuestion, Type: QuestionTypeFallback}, err
	}

	q.Type = "code_review"
	return q, nil
}

// generate issues one bounded LLM request and maps the structured response.
func (g *Generator) generate(ctx context.Context, req llm.Request) (Question, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return Question{}, fmt.Errorf("generate question: %w", err)
	}

	var out questionOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Question{}, fmt.Errorf("parse question response: %w", err)
	}
	if out.Question == "" {
		return Question{}, fmt.Errorf("parse question response: empty question")
	}

	qt := out.QuestionType
	if qt == "" {
		qt = "general"
	}

	return Question{
		Text:       out.Question,
		Type:       qt,
		FocusAreas: out.FocusAreas,
		Reasoning:  out.Reasoning,
	}, nil
}
