package vision

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"google.golang.org/genai"
)

const (
	ocrPrompt = `Perform OCR on this screen capture. Extract ALL visible text.

Return:
- "text": the full recognized text, top to bottom, preserving line breaks
- "text_blocks": every distinct piece of text with its pixel position and a
  recognition confidence from 0 to 100

Report the text exactly as it appears. Do not summarize or interpret it.`

	elementsPrompt = `Detect the user-interface elements visible in this screen capture:
buttons, input fields, menus, panels, code editors, terminal windows.

Return every element with its pixel bounding box and a short type label.
Use "unknown" when the element type is unclear.`
)

// GeminiEngine implements Engine on the Gemini vision models.
type GeminiEngine struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiEngine creates a vision engine. Every call is bounded by timeout.
func NewGeminiEngine(ctx context.Context, apiKey, model string, timeout time.Duration) (*GeminiEngine, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiEngine{client: client, model: model, timeout: timeout}, nil
}

// ExtractText runs OCR over the capture. The raw model output is filtered
// locally: low-confidence blocks are dropped from the block list but their
// text stays part of the full extraction.
func (e *GeminiEngine) ExtractText(ctx context.Context, image []byte, mimeType string) (OCRResult, error) {
	var raw struct {
		Text   string      `json:"text"`
		Blocks []TextBlock `json:"text_blocks"`
	}
	if err := e.generate(ctx, ocrPrompt, image, mimeType, ocrSchema, &raw); err != nil {
		return OCRResult{}, fmt.Errorf("extract text: %w", err)
	}

	return OCRResult{
		Text:              raw.Text,
		TextBlocks:        filterBlocks(raw.Blocks),
		AverageConfidence: averageConfidence(raw.Blocks),
	}, nil
}

// DetectElements finds user-interface regions on the capture, dropping
// dimensions too small to be real widgets.
func (e *GeminiEngine) DetectElements(ctx context.Context, image []byte, mimeType string) (ElementResult, error) {
	var raw struct {
		Elements []Element `json:"elements"`
	}
	if err := e.generate(ctx, elementsPrompt, image, mimeType, elementsSchema, &raw); err != nil {
		return ElementResult{}, fmt.Errorf("detect elements: %w", err)
	}

	elements := filterElements(raw.Elements)
	return ElementResult{Elements: elements, Count: len(elements)}, nil
}

func (e *GeminiEngine) generate(ctx context.Context, prompt string, image []byte, mimeType string, schema *genai.Schema, out any) error {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	if mimeType == "" {
		mimeType = "image/png"
	}

	contents := []*genai.Content{{
		Role: "user",
		Parts: []*genai.Part{
			{Text: prompt},
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: image}},
		},
	}}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}

	result, err := e.client.Models.GenerateContent(ctx, e.model, contents, config)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(result.Text()), out); err != nil {
		return fmt.Errorf("parse model output: %w", err)
	}
	return nil
}

var boundsSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"x":      {Type: genai.TypeInteger},
		"y":      {Type: genai.TypeInteger},
		"width":  {Type: genai.TypeInteger},
		"height": {Type: genai.TypeInteger},
	},
	Required: []string{"x", "y", "width", "height"},
}

var ocrSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"text": {Type: genai.TypeString},
		"text_blocks": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"text":       {Type: genai.TypeString},
					"confidence": {Type: genai.TypeNumber},
					"position":   boundsSchema,
				},
				Required: []string{"text", "confidence", "position"},
			},
		},
	},
	Required: []string{"text", "text_blocks"},
}

var elementsSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"elements": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"type":     {Type: genai.TypeString},
					"position": boundsSchema,
				},
				Required: []string{"type", "position"},
			},
		},
	},
	Required: []string{"elements"},
}
