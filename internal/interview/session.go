// Package interview holds the session and dialogue state machine: per-session
// context accumulation, the ordered question/response history, question
// generation and the termination policy.
package interview

import (
	"strings"
	"sync"
	"time"
)

// ExchangeKind tags an entry in the dialogue history.
type ExchangeKind string

const (
	KindQuestion        ExchangeKind = "question"
	KindStudentResponse ExchangeKind = "student_response"
)

// Exchange is one entry in a session's dialogue history.
type Exchange struct {
	Kind    ExchangeKind `json:"type"`
	Content string       `json:"content"`
}

// Context accumulates OCR text and speech transcripts for one session.
// Both sequences are append-only and never reordered or deduplicated.
type Context struct {
	ScreenTexts       []string
	SpeechTranscripts []string
}

// AppendScreenText appends OCR output to the context. Blank input is ignored.
func (c *Context) AppendScreenText(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	c.ScreenTexts = append(c.ScreenTexts, text)
}

// AppendSpeechTranscript appends a transcript to the context. Blank input is
// ignored.
func (c *Context) AppendSpeechTranscript(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	c.SpeechTranscripts = append(c.SpeechTranscripts, text)
}

// Response records one submitted student response.
type Response struct {
	Text           string
	ScreenContext  string
	QuestionNumber int
}

// Session is one interview instance. All state lives in memory for the
// lifetime of the process; there is no persistence across restarts.
//
// The embedded mutex serializes request handling per session: handlers hold
// it across the full read-modify-write of a request so concurrent requests
// against the same id cannot interleave history or context appends.
type Session struct {
	mu sync.Mutex

	ID          string
	StudentName string
	ProjectName string
	StartedAt   time.Time

	QuestionCount int
	Responses     []Response
	Context       Context
	History       []Exchange
}

// Lock acquires the per-session mutex.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the per-session mutex.
func (s *Session) Unlock() { s.mu.Unlock() }

func (s *Session) appendExchange(kind ExchangeKind, content string) {
	s.History = append(s.History, Exchange{Kind: kind, Content: content})
}

// RecordResponse stores a submitted response, attributed to the question it
// answers.
func (s *Session) RecordResponse(text, screenContext string) {
	s.Responses = append(s.Responses, Response{
		Text:           text,
		ScreenContext:  screenContext,
		QuestionNumber: s.QuestionCount,
	})
}

// Reset clears the dialogue history and accumulated context while keeping
// the session registered.
func (s *Session) Reset() {
	s.QuestionCount = 0
	s.Responses = nil
	s.Context = Context{}
	s.History = nil
}
