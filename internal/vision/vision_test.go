package vision

import "testing"

func TestFilterBlocks(t *testing.T) {
	blocks := []TextBlock{
		{Text: "keep me", Confidence: 95, Position: Bounds{X: 10, Y: 10, Width: 100, Height: 20}},
		{Text: "too faint", Confidence: 30},
		{Text: "barely clears", Confidence: 31},
		{Text: "   ", Confidence: 99},
		{Text: "  padded  ", Confidence: 80},
		{Text: "noise", Confidence: -1},
	}

	got := filterBlocks(blocks)
	if len(got) != 3 {
		t.Fatalf("expected 3 blocks, got %d: %+v", len(got), got)
	}
	if got[0].Text != "keep me" || got[1].Text != "barely clears" {
		t.Fatalf("unexpected blocks: %+v", got)
	}
	if got[2].Text != "padded" {
		t.Fatalf("whitespace not trimmed: %q", got[2].Text)
	}
}

func TestAverageConfidence(t *testing.T) {
	blocks := []TextBlock{
		{Confidence: 90},
		{Confidence: 60},
		{Confidence: 0},
		{Confidence: -1},
	}
	if avg := averageConfidence(blocks); avg != 75 {
		t.Fatalf("expected 75, got %v", avg)
	}
	if avg := averageConfidence(nil); avg != 0 {
		t.Fatalf("expected 0 for no blocks, got %v", avg)
	}
	if avg := averageConfidence([]TextBlock{{Confidence: -5}}); avg != 0 {
		t.Fatalf("expected 0 when nothing positive, got %v", avg)
	}
}

func TestFilterElements(t *testing.T) {
	elements := []Element{
		{Type: "button", Position: Bounds{Width: 120, Height: 40}},
		{Position: Bounds{Width: 51, Height: 21}},
		{Type: "icon", Position: Bounds{Width: 50, Height: 40}},
		{Type: "divider", Position: Bounds{Width: 400, Height: 20}},
	}

	got := filterElements(elements)
	if len(got) != 2 {
		t.Fatalf("expected 2 elements, got %d: %+v", len(got), got)
	}
	if got[0].Type != "button" {
		t.Fatalf("unexpected first element: %+v", got[0])
	}
	if got[1].Type != "unknown" {
		t.Fatalf("missing type must default to unknown, got %q", got[1].Type)
	}
}
