// Package server exposes the interview orchestrator over HTTP and
// WebSocket.
package server

import (
	"net/http"

	"github.com/abhisek/vivadesk/internal/evaluate"
	"github.com/abhisek/vivadesk/internal/interview"
	"github.com/abhisek/vivadesk/internal/speech"
	"github.com/abhisek/vivadesk/internal/vision"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Server wires the interview registry and the capability engines behind
// the HTTP surface.
type Server struct {
	registry    *interview.Registry
	generator   *interview.Generator
	evaluator   *evaluate.Evaluator
	vision      vision.Engine
	transcriber speech.Transcriber

	maxQuestions   int
	allowedOrigins []string
}

// Options carries the Server dependencies.
type Options struct {
	Registry    *interview.Registry
	Generator   *interview.Generator
	Evaluator   *evaluate.Evaluator
	Vision      vision.Engine
	Transcriber speech.Transcriber

	MaxQuestions   int
	AllowedOrigins []string
}

// New creates a Server.
func New(opts Options) *Server {
	if opts.MaxQuestions <= 0 {
		opts.MaxQuestions = 10
	}
	return &Server{
		registry:       opts.Registry,
		generator:      opts.Generator,
		evaluator:      opts.Evaluator,
		vision:         opts.Vision,
		transcriber:    opts.Transcriber,
		maxQuestions:   opts.MaxQuestions,
		allowedOrigins: opts.AllowedOrigins,
	}
}

// Handler builds the full route table with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleHealth)
	mux.HandleFunc("POST /api/interview/start", s.handleStart)
	mux.HandleFunc("POST /api/screen/analyze", s.handleAnalyzeScreen)
	mux.HandleFunc("POST /api/audio/transcribe", s.handleTranscribeAudio)
	mux.HandleFunc("POST /api/interview/respond", s.handleRespond)
	mux.HandleFunc("POST /api/interview/evaluate/{session_id}", s.handleEvaluate)
	mux.HandleFunc("GET /api/interview/status/{session_id}", s.handleStatus)
	mux.HandleFunc("DELETE /api/interview/end/{session_id}", s.handleEnd)
	mux.HandleFunc("GET /ws/interview/{session_id}", s.handleWebSocket)

	return chain(mux,
		withCORS(s.allowedOrigins),
		withLogging,
		withRequestID,
	)
}
