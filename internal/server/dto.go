package server

import (
	"github.com/abhisek/vivadesk/internal/evaluate"
	"github.com/abhisek/vivadesk/internal/speech"
	"github.com/abhisek/vivadesk/internal/vision"
)

type startRequest struct {
	SessionID   string `json:"session_id"`
	StudentName string `json:"student_name,omitempty"`
	ProjectName string `json:"project_name,omitempty"`
}

type startResponse struct {
	Success      bool   `json:"success"`
	SessionID    string `json:"session_id"`
	Question     string `json:"question"`
	QuestionType string `json:"question_type"`
	Message      string `json:"message"`
}

type screenAnalyzeRequest struct {
	SessionID   string  `json:"session_id"`
	ImageBase64 string  `json:"image_base64"`
	Timestamp   float64 `json:"timestamp,omitempty"`
}

type screenAnalyzeResponse struct {
	Success    bool                 `json:"success"`
	SessionID  string               `json:"session_id"`
	OCR        vision.OCRResult     `json:"ocr"`
	UIElements vision.ElementResult `json:"ui_elements"`
	Timestamp  float64              `json:"timestamp"`
}

type transcribeRequest struct {
	SessionID   string `json:"session_id"`
	AudioBase64 string `json:"audio_base64"`
	Format      string `json:"format,omitempty"`
}

type transcribeResponse struct {
	Success       bool              `json:"success"`
	SessionID     string            `json:"session_id"`
	Transcription speech.Transcript `json:"transcription"`
}

type respondRequest struct {
	SessionID     string `json:"session_id"`
	ResponseText  string `json:"response_text"`
	ScreenContext string `json:"screen_context,omitempty"`
}

type respondResponse struct {
	Success        bool     `json:"success"`
	Question       string   `json:"question"`
	QuestionType   string   `json:"question_type"`
	QuestionNumber int      `json:"question_number"`
	ShouldEnd      bool     `json:"should_end"`
	FocusAreas     []string `json:"focus_areas"`
}

type evaluateResponse struct {
	Success    bool                `json:"success"`
	SessionID  string              `json:"session_id"`
	Evaluation evaluate.Evaluation `json:"evaluation"`
	Report     string              `json:"report"`
}

type statusResponse struct {
	Success       bool   `json:"success"`
	SessionID     string `json:"session_id"`
	StudentName   string `json:"student_name"`
	ProjectName   string `json:"project_name"`
	QuestionCount int    `json:"question_count"`
	ResponseCount int    `json:"response_count"`
}

type endResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}
