package evaluate

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/vivadesk/internal/interview"
	"github.com/abhisek/vivadesk/internal/llm"
)

const evaluationJSON = `{
	"overall_score": 84.5,
	"criteria_scores": {
		"technical_depth": {"score": 88, "feedback": "Solid grasp of the stack.", "strengths": ["knows the internals"], "weaknesses": []},
		"clarity": {"score": 80, "feedback": "Mostly clear.", "strengths": [], "weaknesses": ["rushed at times"]},
		"originality": {"score": 78, "feedback": "Conventional approach.", "strengths": [], "weaknesses": []},
		"implementation_understanding": {"score": 90, "feedback": "Explained every design choice.", "strengths": ["traced the data flow"], "weaknesses": []}
	},
	"summary": "A confident presentation.",
	"detailed_feedback": "The student handled follow-ups well.",
	"recommendations": ["Practice pacing", "Prepare a demo"],
	"notable_moments": ["Explained the sync algorithm unprompted"]
}`

func newTestEvaluator(responses ...llm.MockResponse) (*Evaluator, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	e := NewEvaluator(mock, 5*time.Second)
	e.now = func() time.Time { return time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC) }
	return e, mock
}

func exchanges(n int) []interview.Exchange {
	out := make([]interview.Exchange, n)
	for i := range out {
		kind := interview.KindQuestion
		if i%2 == 1 {
			kind = interview.KindStudentResponse
		}
		out[i] = interview.Exchange{Kind: kind, Content: "entry"}
	}
	return out
}

func TestEvaluate_Success(t *testing.T) {
	e, _ := newTestEvaluator(llm.MockResponse{Content: json.RawMessage(evaluationJSON)})

	ev, err := e.Evaluate(context.Background(), exchanges(19), interview.Context{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.OverallScore != 84.5 {
		t.Fatalf("unexpected overall score: %v", ev.OverallScore)
	}
	if ev.Grade != "B" {
		t.Fatalf("expected grade B, got %q", ev.Grade)
	}
	if ev.InterviewLength != 19 {
		t.Fatalf("expected interview length 19, got %d", ev.InterviewLength)
	}
	if len(ev.CriteriaScores) != 4 {
		t.Fatalf("expected 4 criteria, got %d", len(ev.CriteriaScores))
	}
	if ev.Timestamp.IsZero() {
		t.Fatal("timestamp not stamped")
	}
}

func TestEvaluate_PromptIncludesFullTranscriptAndContextCounts(t *testing.T) {
	e, mock := newTestEvaluator(llm.MockResponse{Content: json.RawMessage(evaluationJSON)})

	history := []interview.Exchange{
		{Kind: interview.KindQuestion, Content: "What does it do?"},
		{Kind: interview.KindStudentResponse, Content: "It syncs notes across devices."},
	}
	pctx := interview.Context{
		ScreenTexts:       []string{"a", "b", "c"},
		SpeechTranscripts: []string{"x"},
	}

	if _, err := e.Evaluate(context.Background(), history, pctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := mock.LastCall().Messages[0].Content
	if !strings.Contains(prompt, "[1] QUESTION:\nWhat does it do?") {
		t.Fatalf("numbered transcript missing:\n%s", prompt)
	}
	if !strings.Contains(prompt, "[2] STUDENT_RESPONSE:\nIt syncs notes across devices.") {
		t.Fatalf("response entry missing:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Screen content analyzed: 3 captures") {
		t.Fatal("screen capture count missing from prompt")
	}
	if !strings.Contains(prompt, "Speech segments: 1 segments") {
		t.Fatal("speech segment count missing from prompt")
	}
}

func TestEvaluate_Fallback(t *testing.T) {
	e, _ := newTestEvaluator(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})

	ev, err := e.Evaluate(context.Background(), exchanges(5), interview.Context{})
	if err == nil {
		t.Fatal("expected error")
	}
	if ev.Grade != "N/A" {
		t.Fatalf("expected grade N/A, got %q", ev.Grade)
	}
	if ev.OverallScore != 0 || len(ev.CriteriaScores) != 0 {
		t.Fatalf("expected zeroed evaluation, got %+v", ev)
	}
	if ev.Summary == "" {
		t.Fatal("fallback must carry an explanatory summary")
	}
}

func TestLetterGrade_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, "A"},
		{90, "A"},
		{89.999, "B"},
		{80, "B"},
		{79.999, "C"},
		{70, "C"},
		{60, "D"},
		{59.999, "F"},
		{0, "F"},
	}
	for _, tt := range tests {
		if got := LetterGrade(tt.score); got != tt.want {
			t.Fatalf("LetterGrade(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestReviewResponse(t *testing.T) {
	e, _ := newTestEvaluator(llm.MockResponse{Content: json.RawMessage(
		`{"quality_score": 7.5, "strengths": ["concrete example"], "gaps": ["no edge cases"], "technical_accuracy": "accurate", "clarity_rating": "clear"}`,
	)})

	review, err := e.ReviewResponse(context.Background(), "How does sync work?", "It diffs timestamps.", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if review.QualityScore != 7.5 {
		t.Fatalf("unexpected quality score: %v", review.QualityScore)
	}
	if review.TechnicalAccuracy != "accurate" || review.ClarityRating != "clear" {
		t.Fatalf("unexpected ratings: %+v", review)
	}
}

func TestReviewResponse_Error(t *testing.T) {
	e, _ := newTestEvaluator()
	if _, err := e.ReviewResponse(context.Background(), "q", "a", ""); err == nil {
		t.Fatal("expected error")
	}
}
