// Package evaluate scores a finished interview into a weighted
// multi-criterion evaluation and renders the final report.
package evaluate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/vivadesk/internal/interview"
	"github.com/abhisek/vivadesk/internal/llm"
)

// The four fixed evaluation criteria and their weights. The weights shape
// the scoring prompt; the model is trusted to return a self-consistent
// overall score, which is not recomputed locally.
const (
	CriterionTechnicalDepth              = "technical_depth"
	CriterionClarity                     = "clarity"
	CriterionOriginality                 = "originality"
	CriterionImplementationUnderstanding = "implementation_understanding"
)

// CriteriaOrder is the canonical criterion ordering used in prompts and in
// the rendered report.
var CriteriaOrder = []string{
	CriterionTechnicalDepth,
	CriterionClarity,
	CriterionOriginality,
	CriterionImplementationUnderstanding,
}

// CriterionWeights are the fixed scoring weights, summing to 1.
var CriterionWeights = map[string]float64{
	CriterionTechnicalDepth:              0.30,
	CriterionClarity:                     0.25,
	CriterionOriginality:                 0.20,
	CriterionImplementationUnderstanding: 0.25,
}

// CriterionScore is the per-criterion assessment.
type CriterionScore struct {
	Score      float64  `json:"score"`
	Feedback   string   `json:"feedback"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
}

// Evaluation is the complete assessment of one interview.
type Evaluation struct {
	OverallScore     float64                   `json:"overall_score"`
	CriteriaScores   map[string]CriterionScore `json:"criteria_scores"`
	Summary          string                    `json:"summary"`
	DetailedFeedback string                    `json:"detailed_feedback"`
	Recommendations  []string                  `json:"recommendations"`
	NotableMoments   []string                  `json:"notable_moments"`

	// Derived locally, not by the model.
	Grade           string    `json:"grade"`
	Timestamp       time.Time `json:"timestamp"`
	InterviewLength int       `json:"interview_length"`
}

// ResponseReview is a real-time micro-assessment of a single answer.
type ResponseReview struct {
	QualityScore      float64  `json:"quality_score"`
	Strengths         []string `json:"strengths"`
	Gaps              []string `json:"gaps"`
	TechnicalAccuracy string   `json:"technical_accuracy"`
	ClarityRating     string   `json:"clarity_rating"`
}

// Evaluator scores interviews via the LLM provider.
type Evaluator struct {
	provider llm.Provider
	timeout  time.Duration
	now      func() time.Time
}

// NewEvaluator creates an Evaluator. Every external call is bounded by
// timeout.
func NewEvaluator(provider llm.Provider, timeout time.Duration) *Evaluator {
	return &Evaluator{provider: provider, timeout: timeout, now: time.Now}
}

// Evaluate scores the full dialogue history against the fixed criteria.
// On failure it returns a zeroed fallback Evaluation together with the
// error; callers always receive something renderable.
func (e *Evaluator) Evaluate(ctx context.Context, history []interview.Exchange, pctx interview.Context) (Evaluation, error) {
	ctx = llm.WithPurpose(ctx, "evaluation")
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	prompt := buildEvaluationPrompt(history, pctx)

	resp, err := e.provider.Generate(ctx, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:      EvaluationSchema,
		MaxTokens:   4096,
		Temperature: 0.3,
	})
	if err != nil {
		return e.fallbackEvaluation(), fmt.Errorf("evaluate interview: %w", err)
	}

	var ev Evaluation
	if err := json.Unmarshal(resp.Content, &ev); err != nil {
		return e.fallbackEvaluation(), fmt.Errorf("parse evaluation response: %w", err)
	}

	ev.Timestamp = e.now()
	ev.InterviewLength = len(history)
	ev.Grade = LetterGrade(ev.OverallScore)

	return ev, nil
}

// ReviewResponse assesses one question/answer pair in isolation. It reads
// no session state and is safe to call at any point of the interview.
func (e *Evaluator) ReviewResponse(ctx context.Context, question, response, screenContext string) (ResponseReview, error) {
	ctx = llm.WithPurpose(ctx, "response-review")
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: buildReviewPrompt(question, response, screenContext),
		}},
		Schema:      ResponseReviewSchema,
		MaxTokens:   1024,
		Temperature: 0.3,
	})
	if err != nil {
		return ResponseReview{}, fmt.Errorf("review response: %w", err)
	}

	var review ResponseReview
	if err := json.Unmarshal(resp.Content, &review); err != nil {
		return ResponseReview{}, fmt.Errorf("parse review response: %w", err)
	}
	return review, nil
}

// LetterGrade converts a numeric score to a letter grade.
func LetterGrade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

func (e *Evaluator) fallbackEvaluation() Evaluation {
	return Evaluation{
		OverallScore:     0,
		CriteriaScores:   map[string]CriterionScore{},
		Summary:          "Evaluation could not be completed due to an error.",
		DetailedFeedback: "Please try again.",
		Recommendations:  []string{},
		NotableMoments:   []string{},
		Grade:            "N/A",
		Timestamp:        e.now(),
		InterviewLength:  0,
	}
}

// buildEvaluationPrompt renders the full, untruncated transcript plus the
// context counts into the scoring prompt.
func buildEvaluationPrompt(history []interview.Exchange, pctx interview.Context) string {
	var b strings.Builder

	b.WriteString("You are an expert technical evaluator assessing a student's project presentation and interview.\n\n")
	b.WriteString(`EVALUATION CRITERIA:
1. Technical Depth (30%): Understanding of technical concepts, architecture, algorithms
2. Clarity of Explanation (25%): Ability to communicate ideas clearly and logically
3. Originality (20%): Innovation, creativity, unique approaches
4. Implementation Understanding (25%): Deep knowledge of how code works, design decisions`)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "INTERVIEW TRANSCRIPT:\n%s\n\n", formatTranscript(history))
	b.WriteString("PROJECT CONTEXT:\n")
	fmt.Fprintf(&b, "- Screen content analyzed: %d captures\n", len(pctx.ScreenTexts))
	fmt.Fprintf(&b, "- Speech segments: %d segments\n\n", len(pctx.SpeechTranscripts))
	b.WriteString("Provide a comprehensive evaluation. Score each criterion 0-100 and give an overall score consistent with the criterion weights. Be specific, constructive, and fair in your evaluation.")

	return b.String()
}

func buildReviewPrompt(question, response, screenContext string) string {
	var b strings.Builder

	b.WriteString("Evaluate this single response from a student during a technical interview.\n\n")
	fmt.Fprintf(&b, "QUESTION: %s\n\n", question)
	fmt.Fprintf(&b, "STUDENT RESPONSE: %s\n\n", response)
	fmt.Fprintf(&b, "SCREEN CONTEXT: %s\n\n", screenContext)
	b.WriteString("Provide a quick assessment: a quality score from 0 to 10, what they did well, what could be improved, and ratings for technical accuracy and clarity.")

	return b.String()
}

// formatTranscript numbers every exchange and inlines its full content.
// Unlike the generator's sliding window, nothing is truncated here.
func formatTranscript(history []interview.Exchange) string {
	lines := make([]string, 0, len(history))
	for i, ex := range history {
		lines = append(lines, fmt.Sprintf("[%d] %s:\n%s\n", i+1, strings.ToUpper(string(ex.Kind)), ex.Content))
	}
	return strings.Join(lines, "\n")
}
