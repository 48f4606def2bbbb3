// Package speech converts recorded audio into text via the OpenAI Whisper
// API.
package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Transcript is the result of one transcription.
type Transcript struct {
	Text            string  `json:"text"`
	Language        string  `json:"language"`
	DurationSeconds float64 `json:"duration"`
}

// Transcriber converts audio bytes to text. Format is the container name
// ("webm", "mp3", "wav"); it defaults to webm when empty.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, format string) (Transcript, error)
}

// WhisperTranscriber implements Transcriber on whisper-1.
type WhisperTranscriber struct {
	client  *openai.Client
	timeout time.Duration
}

// NewWhisperTranscriber creates a Whisper-backed transcriber. Every call
// is bounded by timeout.
func NewWhisperTranscriber(apiKey string, timeout time.Duration) (*WhisperTranscriber, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	return &WhisperTranscriber{
		client:  openai.NewClient(apiKey),
		timeout: timeout,
	}, nil
}

func (t *WhisperTranscriber) Transcribe(ctx context.Context, audio []byte, format string) (Transcript, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		Reader:   bytes.NewReader(audio),
		FilePath: clipName(format),
		Format:   openai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return Transcript{}, fmt.Errorf("transcribe audio: %w", err)
	}

	return Transcript{
		Text:            resp.Text,
		Language:        resp.Language,
		DurationSeconds: resp.Duration,
	}, nil
}

// clipName builds the upload filename Whisper uses to sniff the container
// format. Browser MediaRecorder captures are webm unless the client says
// otherwise.
func clipName(format string) string {
	if format == "" {
		format = "webm"
	}
	return "clip." + format
}

// Disabled is a Transcriber used when no speech credentials are configured.
// Every call fails with a configuration error.
type Disabled struct{}

func (Disabled) Transcribe(context.Context, []byte, string) (Transcript, error) {
	return Transcript{}, errors.New("transcriber not configured: set VIVA_OPENAI_API_KEY")
}
