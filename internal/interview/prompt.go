package interview

import (
	"fmt"
	"strings"
)

// historyWindow is the number of trailing dialogue entries included in a
// follow-up prompt. Older entries are excluded to bound prompt size; the
// full history is still kept for evaluation.
const historyWindow = 6

const initialPrompt = `You are an expert technical interviewer evaluating a student's project presentation.

Generate an opening question that encourages the student to introduce their project.
The question should be friendly but professional, and should prompt them to explain:
- What the project does
- What problem it solves
- Why they built it`

// buildFollowupPrompt composes the follow-up generation prompt from the
// bounded history summary, the latest response and the current screen text.
func buildFollowupPrompt(summary, studentResponse, screenContext string) string {
	var b strings.Builder

	b.WriteString("You are an expert technical interviewer. Based on the conversation so far and the visual content, generate the next question.\n\n")
	fmt.Fprintf(&b, "CONVERSATION HISTORY:\n%s\n\n", summary)
	fmt.Fprintf(&b, "LATEST STUDENT RESPONSE:\n%s\n\n", studentResponse)
	fmt.Fprintf(&b, "CURRENT SCREEN CONTENT:\n%s\n\n", screenContext)
	b.WriteString(`Generate a follow-up question that:
1. Probes deeper into technical details mentioned by the student
2. References specific elements visible on screen (code, diagrams, UI)
3. Tests their understanding of implementation details
4. Is specific and targeted (not generic)`)

	return b.String()
}

// buildCodePrompt composes the code-review question prompt.
func buildCodePrompt(codeSnippet, studentResponse string) string {
	var b strings.Builder

	b.WriteString("You are reviewing code with a student. Based on this code snippet and their explanation, ask a targeted technical question.\n\n")
	fmt.Fprintf(&b, "CODE VISIBLE:\n%s\n\n", codeSnippet)
	fmt.Fprintf(&b, "STUDENT'S EXPLANATION:\n%s\n\n", studentResponse)
	b.WriteString(`Ask a specific question about:
- The implementation approach
- Why they chose specific methods/functions
- Potential edge cases or improvements
- How it integrates with other parts`)

	return b.String()
}

// summarizeHistory renders the trailing window of the dialogue history as
// "TYPE: content" lines for the follow-up prompt.
func summarizeHistory(history []Exchange) string {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	lines := make([]string, 0, len(history))
	for _, ex := range history {
		lines = append(lines, fmt.Sprintf("%s: %s", strings.ToUpper(string(ex.Kind)), ex.Content))
	}
	return strings.Join(lines, "\n")
}
