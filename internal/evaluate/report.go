package evaluate

import (
	"fmt"
	"strconv"
	"strings"
)

var (
	boxTop    = "╔" + strings.Repeat("═", 66) + "╗"
	boxBottom = "╚" + strings.Repeat("═", 66) + "╝"
	separator = strings.Repeat("━", 64)
)

// RenderReport formats an Evaluation into the human-readable final report.
// It is a pure function: the same Evaluation always renders to identical
// text, and nothing is written anywhere; callers choose the destination.
func RenderReport(ev Evaluation) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(boxTop + "\n")
	b.WriteString("║           AI INTERVIEWER - EVALUATION REPORT                     ║\n")
	b.WriteString(boxBottom + "\n\n")

	fmt.Fprintf(&b, "📊 OVERALL SCORE: %s/100 (Grade: %s)\n", formatScore(ev.OverallScore), ev.Grade)
	fmt.Fprintf(&b, "📅 Date: %s\n", ev.Timestamp.Format("2006-01-02"))
	fmt.Fprintf(&b, "🎯 Interview Length: %d exchanges\n\n", ev.InterviewLength)

	b.WriteString(separator + "\n")
	b.WriteString("📈 DETAILED SCORES\n")
	b.WriteString(separator + "\n\n")

	for _, name := range CriteriaOrder {
		cs, ok := ev.CriteriaScores[name]
		if !ok {
			continue
		}
		writeCriterion(&b, name, cs)
	}

	b.WriteString("\n" + separator + "\n")
	b.WriteString("💭 SUMMARY\n")
	b.WriteString(separator + "\n\n")
	b.WriteString(orDefault(ev.Summary, "No summary available") + "\n\n")

	b.WriteString(separator + "\n")
	b.WriteString("📝 DETAILED FEEDBACK\n")
	b.WriteString(separator + "\n\n")
	b.WriteString(orDefault(ev.DetailedFeedback, "No detailed feedback available") + "\n\n")

	b.WriteString(separator + "\n")
	b.WriteString("🎯 RECOMMENDATIONS\n")
	b.WriteString(separator + "\n")
	for i, rec := range ev.Recommendations {
		fmt.Fprintf(&b, "\n%d. %s", i+1, rec)
	}

	if len(ev.NotableMoments) > 0 {
		b.WriteString("\n\n" + separator + "\n")
		b.WriteString("⭐ NOTABLE MOMENTS\n")
		b.WriteString(separator + "\n")
		for _, moment := range ev.NotableMoments {
			fmt.Fprintf(&b, "\n• %s", moment)
		}
	}

	b.WriteString("\n\n" + boxBottom + "\n")

	return b.String()
}

func writeCriterion(b *strings.Builder, name string, cs CriterionScore) {
	fmt.Fprintf(b, "\n🔹 %s: %s/100\n", titleCase(name), formatScore(cs.Score))
	fmt.Fprintf(b, "   %s\n", orDefault(cs.Feedback, "No feedback"))

	if len(cs.Strengths) > 0 {
		fmt.Fprintf(b, "   ✅ Strengths: %s\n", strings.Join(cs.Strengths, ", "))
	}
	if len(cs.Weaknesses) > 0 {
		fmt.Fprintf(b, "   ⚠️  Areas for Improvement: %s\n", strings.Join(cs.Weaknesses, ", "))
	}
}

// formatScore renders a score without trailing zeros: 85 not 85.00.
func formatScore(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// titleCase turns "technical_depth" into "Technical Depth".
func titleCase(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
