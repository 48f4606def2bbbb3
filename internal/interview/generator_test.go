package interview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/vivadesk/internal/llm"
)

func newTestGenerator(responses ...llm.MockResponse) (*Generator, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	return NewGenerator(mock, 5*time.Second), mock
}

func questionJSON(q string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(fmt.Sprintf(
		`{"question":%q,"question_type":"technical","focus_areas":["architecture"],"reasoning":"dig into the design"}`, q))}
}

func TestGenerator_Initial(t *testing.T) {
	gen, mock := newTestGenerator(llm.MockResponse{
		Content: json.RawMessage(`{"question":"Tell me what your project does.","question_type":"introduction","focus_areas":["overview","motivation"]}`),
	})
	s := &Session{ID: "s1"}

	q, err := gen.Initial(context.Background(), s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Text != "Tell me what your project does." {
		t.Fatalf("unexpected question: %q", q.Text)
	}
	if q.Type != "introduction" {
		t.Fatalf("unexpected type: %q", q.Type)
	}
	if len(q.FocusAreas) != 2 {
		t.Fatalf("unexpected focus areas: %v", q.FocusAreas)
	}
	if len(s.History) != 1 || s.History[0].Kind != KindQuestion {
		t.Fatalf("initial call must append exactly one question, got %+v", s.History)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
}

func TestGenerator_InitialFallback(t *testing.T) {
	gen, _ := newTestGenerator(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	s := &Session{ID: "s1"}

	q, err := gen.Initial(context.Background(), s)
	if err == nil {
		t.Fatal("expected error")
	}
	if q.Text != "Could you please tell me about your project?" {
		t.Fatalf("unexpected fallback: %q", q.Text)
	}
	if q.Type != QuestionTypeFallback {
		t.Fatalf("unexpected type: %q", q.Type)
	}
	if len(q.FocusAreas) != 0 {
		t.Fatalf("fallback must have no focus areas, got %v", q.FocusAreas)
	}
	// Fallback questions still count as real exchanges.
	if len(s.History) != 1 || s.History[0].Content != q.Text {
		t.Fatalf("fallback question not appended: %+v", s.History)
	}
}

func TestGenerator_FollowupAppendsBoth(t *testing.T) {
	gen, _ := newTestGenerator(questionJSON("How does the sync work?"))
	s := &Session{ID: "s1"}
	s.appendExchange(KindQuestion, "What does it do?")

	q, err := gen.Followup(context.Background(), s, "It's a todo app", "screen shows main.go")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Text != "How does the sync work?" {
		t.Fatalf("unexpected question: %q", q.Text)
	}
	if q.Reasoning == "" {
		t.Fatal("expected reasoning to be carried through")
	}

	if len(s.History) != 3 {
		t.Fatalf("expected 3 history entries, got %d", len(s.History))
	}
	if s.History[1].Kind != KindStudentResponse || s.History[1].Content != "It's a todo app" {
		t.Fatalf("student response not appended before question: %+v", s.History)
	}
	if s.History[2].Kind != KindQuestion {
		t.Fatalf("question not appended last: %+v", s.History)
	}
}

func TestGenerator_FollowupFallbackStillAppends(t *testing.T) {
	gen, _ := newTestGenerator(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	s := &Session{ID: "s1"}
	s.appendExchange(KindQuestion, "q1")

	q, err := gen.Followup(context.Background(), s, "a1", "")
	if err == nil {
		t.Fatal("expected error")
	}
	if q.Text != "Can you explain more about that?" {
		t.Fatalf("unexpected fallback: %q", q.Text)
	}
	if len(s.History) != 3 {
		t.Fatalf("fallback followup must still append response and question, got %d entries", len(s.History))
	}
}

func TestGenerator_FollowupWindowCapsAtSix(t *testing.T) {
	gen, mock := newTestGenerator(questionJSON("next?"))
	s := &Session{ID: "s1"}
	for i := 1; i <= 20; i++ {
		kind := KindQuestion
		if i%2 == 0 {
			kind = KindStudentResponse
		}
		s.appendExchange(kind, fmt.Sprintf("entry-%02d", i))
	}

	if _, err := gen.Followup(context.Background(), s, "latest answer", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := mock.LastCall().Messages[0].Content
	for i := 15; i <= 20; i++ {
		if !strings.Contains(prompt, fmt.Sprintf("entry-%02d", i)) {
			t.Fatalf("prompt missing recent entry-%02d", i)
		}
	}
	for i := 1; i <= 14; i++ {
		if strings.Contains(prompt, fmt.Sprintf("entry-%02d", i)) {
			t.Fatalf("prompt leaked old entry-%02d beyond the window", i)
		}
	}
}

func TestGenerator_FollowupWindowFormatsKinds(t *testing.T) {
	gen, mock := newTestGenerator(questionJSON("next?"))
	s := &Session{ID: "s1"}
	s.appendExchange(KindQuestion, "What does it do?")
	s.appendExchange(KindStudentResponse, "It syncs notes")

	if _, err := gen.Followup(context.Background(), s, "more detail", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := mock.LastCall().Messages[0].Content
	if !strings.Contains(prompt, "QUESTION: What does it do?") {
		t.Fatalf("question line missing or misformatted:\n%s", prompt)
	}
	if !strings.Contains(prompt, "STUDENT_RESPONSE: It syncs notes") {
		t.Fatalf("response line missing or misformatted:\n%s", prompt)
	}
	if !strings.Contains(prompt, "LATEST STUDENT RESPONSE:\nmore detail") {
		t.Fatalf("latest response missing:\n%s", prompt)
	}
}

func TestGenerator_CodeReview(t *testing.T) {
	gen, _ := newTestGenerator(llm.MockResponse{
		Content: json.RawMessage(`{"question":"Why a mutex here?","question_type":"code_review","focus_areas":["concurrency"]}`),
	})
	s := &Session{ID: "s1"}
	s.appendExchange(KindQuestion, "q1")

	q, err := gen.CodeReview(context.Background(), "mu.Lock()", "it guards the map")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Type != "code_review" {
		t.Fatalf("unexpected type: %q", q.Type)
	}
	// Code questions are advisory and never touch the history.
	if len(s.History) != 1 {
		t.Fatalf("code review must not append to history, got %d entries", len(s.History))
	}
}

func TestGenerator_CodeReviewFallback(t *testing.T) {
	gen, _ := newTestGenerator()

	q, err := gen.CodeReview(context.Background(), "x := 1", "")
	if err == nil {
		t.Fatal("expected error")
	}
	if q.Text != "Can you walk me through this code?" {
		t.Fatalf("unexpected fallback: %q", q.Text)
	}
}

func TestGenerator_MalformedResponseFallsBack(t *testing.T) {
	gen, _ := newTestGenerator(llm.MockResponse{
		Content: json.RawMessage(`{"unexpected":"shape"}`),
	})
	s := &Session{ID: "s1"}

	q, err := gen.Initial(context.Background(), s)
	if err == nil {
		t.Fatal("expected error for malformed response")
	}
	if q.Type != QuestionTypeFallback || q.Text == "" {
		t.Fatalf("expected usable fallback, got %+v", q)
	}
}
