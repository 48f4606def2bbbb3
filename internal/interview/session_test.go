package interview

import "testing"

func TestContext_AppendIgnoresBlank(t *testing.T) {
	var c Context

	c.AppendScreenText("func main() {}")
	c.AppendScreenText("")
	c.AppendScreenText("   ")
	c.AppendSpeechTranscript("it parses the config first")
	c.AppendSpeechTranscript("\t\n")

	if len(c.ScreenTexts) != 1 {
		t.Fatalf("expected 1 screen text, got %d", len(c.ScreenTexts))
	}
	if len(c.SpeechTranscripts) != 1 {
		t.Fatalf("expected 1 transcript, got %d", len(c.SpeechTranscripts))
	}
}

func TestContext_PreservesOrder(t *testing.T) {
	var c Context
	c.AppendScreenText("first")
	c.AppendScreenText("second")
	c.AppendScreenText("first")

	want := []string{"first", "second", "first"}
	for i, w := range want {
		if c.ScreenTexts[i] != w {
			t.Fatalf("screen text %d: expected %q, got %q", i, w, c.ScreenTexts[i])
		}
	}
}

func TestSession_RecordResponse(t *testing.T) {
	s := &Session{ID: "s1", QuestionCount: 3}
	s.RecordResponse("it's a todo app", "screen text")

	if len(s.Responses) != 1 {
		t.Fatalf("expected 1 response, got %d", len(s.Responses))
	}
	r := s.Responses[0]
	if r.QuestionNumber != 3 {
		t.Fatalf("expected question number 3, got %d", r.QuestionNumber)
	}
	if r.Text != "it's a todo app" || r.ScreenContext != "screen text" {
		t.Fatalf("unexpected response: %+v", r)
	}
}

func TestSession_Reset(t *testing.T) {
	s := &Session{ID: "s1", StudentName: "Dana", QuestionCount: 4}
	s.appendExchange(KindQuestion, "q1")
	s.RecordResponse("a1", "")
	s.Context.AppendScreenText("text")

	s.Reset()

	if s.QuestionCount != 0 || len(s.History) != 0 || len(s.Responses) != 0 {
		t.Fatalf("reset left state behind: %+v", s)
	}
	if len(s.Context.ScreenTexts) != 0 {
		t.Fatal("reset left context behind")
	}
	if s.StudentName != "Dana" {
		t.Fatal("reset must keep display metadata")
	}
}
