// Package vision extracts text and user-interface structure from screen
// captures using a vision-capable model.
package vision

import (
	"context"
	"errors"
	"strings"
)

// Bounds locates a detected region on the capture, in pixels.
type Bounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// TextBlock is a single piece of recognized text with its location and a
// 0-100 recognition confidence.
type TextBlock struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Position   Bounds  `json:"position"`
}

// OCRResult is the outcome of text extraction over one capture. Text holds
// the full recognized text; TextBlocks only the confident detections.
type OCRResult struct {
	Text              string      `json:"text"`
	TextBlocks        []TextBlock `json:"text_blocks"`
	AverageConfidence float64     `json:"confidence"`
}

// Element is a detected user-interface region. Type is "unknown" when the
// detector cannot classify it further.
type Element struct {
	Type     string `json:"type"`
	Position Bounds `json:"position"`
}

// ElementResult lists the user-interface regions found on one capture.
type ElementResult struct {
	Elements []Element `json:"elements"`
	Count    int       `json:"count"`
}

// Engine performs recognition over raw image bytes.
type Engine interface {
	ExtractText(ctx context.Context, image []byte, mimeType string) (OCRResult, error)
	DetectElements(ctx context.Context, image []byte, mimeType string) (ElementResult, error)
}

const (
	// Blocks at or below this confidence stay in the full text but are
	// dropped from the block list.
	minBlockConfidence = 30

	// Regions smaller than this are treated as noise, not elements.
	minElementWidth  = 50
	minElementHeight = 20
)

// filterBlocks keeps non-blank blocks whose confidence clears the floor.
func filterBlocks(blocks []TextBlock) []TextBlock {
	out := make([]TextBlock, 0, len(blocks))
	for _, b := range blocks {
		text := strings.TrimSpace(b.Text)
		if text == "" || b.Confidence <= minBlockConfidence {
			continue
		}
		b.Text = text
		out = append(out, b)
	}
	return out
}

// averageConfidence averages over positive-confidence blocks only, so
// sentinel zero entries do not drag the mean down.
func averageConfidence(blocks []TextBlock) float64 {
	var sum float64
	var n int
	for _, b := range blocks {
		if b.Confidence > 0 {
			sum += b.Confidence
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// filterElements drops regions too small to be interactive widgets and
// normalizes missing types to "unknown".
func filterElements(elements []Element) []Element {
	out := make([]Element, 0, len(elements))
	for _, e := range elements {
		if e.Position.Width <= minElementWidth || e.Position.Height <= minElementHeight {
			continue
		}
		if e.Type == "" {
			e.Type = "unknown"
		}
		out = append(out, e)
	}
	return out
}

// Disabled is an Engine used when no vision credentials are configured.
// Every call fails with a configuration error.
type Disabled struct{}

func (Disabled) ExtractText(context.Context, []byte, string) (OCRResult, error) {
	return OCRResult{}, errors.New("vision engine not configured: set VIVA_GEMINI_API_KEY")
}

func (Disabled) DetectElements(context.Context, []byte, string) (ElementResult, error) {
	return ElementResult{}, errors.New("vision engine not configured: set VIVA_GEMINI_API_KEY")
}
