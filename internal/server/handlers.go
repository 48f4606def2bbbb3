package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/abhisek/vivadesk/internal/evaluate"
	"github.com/abhisek/vivadesk/internal/interview"
	"github.com/abhisek/vivadesk/internal/media"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "running",
		Service: "AI Interviewer API",
		Version: Version,
	})
}

// handleStart registers a session and asks the opening question. Starting
// with an id that is already registered restarts that interview.
func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.SessionID) == "" {
		badRequest(w, "session_id is required")
		return
	}

	sess := s.registry.Create(req.SessionID, req.StudentName, req.ProjectName)

	sess.Lock()
	defer sess.Unlock()

	q, err := s.generator.Initial(r.Context(), sess)
	if err != nil {
		// The opening question is the interview; without it there is
		// nothing to run. The session stays registered for a retry.
		requestLogger(r.Context()).Error("initial question failed", "session_id", sess.ID, "error", err)
		internalError(w, "failed to generate question")
		return
	}

	sess.QuestionCount = 1

	writeJSON(w, http.StatusOK, startResponse{
		Success:      true,
		SessionID:    sess.ID,
		Question:     q.Text,
		QuestionType: q.Type,
		Message:      "Interview started successfully",
	})
}

// handleAnalyzeScreen runs OCR and element detection over a capture. The
// session id is advisory: analysis succeeds for unknown sessions, context
// accumulation happens only for known ones.
func (s *Server) handleAnalyzeScreen(w http.ResponseWriter, r *http.Request) {
	var req screenAnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	image, hint, err := media.DecodeBase64(req.ImageBase64)
	if err != nil {
		badRequest(w, "invalid base64 image")
		return
	}
	mime := media.PickMIME(hint, image)

	ocr, err := s.vision.ExtractText(r.Context(), image, mime)
	if err != nil {
		requestLogger(r.Context()).Error("screen analysis failed", "session_id", req.SessionID, "error", err)
		internalError(w, "screen analysis failed")
		return
	}

	elements, err := s.vision.DetectElements(r.Context(), image, mime)
	if err != nil {
		requestLogger(r.Context()).Error("element detection failed", "session_id", req.SessionID, "error", err)
		internalError(w, "screen analysis failed")
		return
	}

	if sess, err := s.registry.Get(req.SessionID); err == nil {
		sess.Lock()
		sess.Context.AppendScreenText(ocr.Text)
		sess.Unlock()
	}

	writeJSON(w, http.StatusOK, screenAnalyzeResponse{
		Success:    true,
		SessionID:  req.SessionID,
		OCR:        ocr,
		UIElements: elements,
		Timestamp:  req.Timestamp,
	})
}

// handleTranscribeAudio converts an audio clip to text, accumulating the
// transcript when the session exists.
func (s *Server) handleTranscribeAudio(w http.ResponseWriter, r *http.Request) {
	var req transcribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	audio, _, err := media.DecodeBase64(req.AudioBase64)
	if err != nil {
		badRequest(w, "invalid base64 audio")
		return
	}

	transcript, err := s.transcriber.Transcribe(r.Context(), audio, req.Format)
	if err != nil {
		requestLogger(r.Context()).Error("transcription failed", "session_id", req.SessionID, "error", err)
		internalError(w, "transcription failed")
		return
	}

	if sess, err := s.registry.Get(req.SessionID); err == nil {
		sess.Lock()
		sess.Context.AppendSpeechTranscript(transcript.Text)
		sess.Unlock()
	}

	writeJSON(w, http.StatusOK, transcribeResponse{
		Success:       true,
		SessionID:     req.SessionID,
		Transcription: transcript,
	})
}

// handleRespond records the student's answer and serves the next question.
// Generation failure is not fatal here: the fallback question is served
// with success=false and the interview keeps moving.
func (s *Server) handleRespond(w http.ResponseWriter, r *http.Request) {
	var req respondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	sess, err := s.registry.Get(req.SessionID)
	if err != nil {
		notFound(w, "Session not found")
		return
	}

	sess.Lock()
	defer sess.Unlock()

	sess.RecordResponse(req.ResponseText, req.ScreenContext)

	q, genErr := s.generator.Followup(r.Context(), sess, req.ResponseText, req.ScreenContext)
	if genErr != nil {
		requestLogger(r.Context()).Warn("followup question failed, serving fallback",
			"session_id", sess.ID, "error", genErr)
	}

	sess.QuestionCount++

	writeJSON(w, http.StatusOK, respondResponse{
		Success:        genErr == nil,
		Question:       q.Text,
		QuestionType:   q.Type,
		QuestionNumber: sess.QuestionCount,
		ShouldEnd:      interview.ShouldEnd(sess.QuestionCount, s.maxQuestions),
		FocusAreas:     q.FocusAreas,
	})
}

// handleEvaluate scores the interview so far. The session stays registered
// afterwards; evaluation does not end it.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("session_id")

	sess, err := s.registry.Get(id)
	if err != nil {
		notFound(w, "Session not found")
		return
	}

	sess.Lock()
	history := make([]interview.Exchange, len(sess.History))
	copy(history, sess.History)
	pctx := sess.Context
	sess.Unlock()

	ev, evalErr := s.evaluator.Evaluate(r.Context(), history, pctx)
	if evalErr != nil {
		requestLogger(r.Context()).Error("evaluation failed", "session_id", id, "error", evalErr)
	}

	writeJSON(w, http.StatusOK, evaluateResponse{
		Success:    evalErr == nil,
		SessionID:  id,
		Evaluation: ev,
		Report:     evaluate.RenderReport(ev),
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("session_id")

	sess, err := s.registry.Get(id)
	if err != nil {
		notFound(w, "Session not found")
		return
	}

	sess.Lock()
	resp := statusResponse{
		Success:       true,
		SessionID:     sess.ID,
		StudentName:   sess.StudentName,
		ProjectName:   sess.ProjectName,
		QuestionCount: sess.QuestionCount,
		ResponseCount: len(sess.Responses),
	}
	sess.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleEnd(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("session_id")

	if err := s.registry.Remove(id); err != nil {
		if errors.Is(err, interview.ErrSessionNotFound) {
			notFound(w, "Session not found")
			return
		}
		internalError(w, "failed to end session")
		return
	}

	writeJSON(w, http.StatusOK, endResponse{
		Success: true,
		Message: "Interview session ended",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

func notFound(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusNotFound, map[string]string{"error": msg})
}

func internalError(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": msg})
}
