package interview

// ShouldEnd reports whether the interview has reached its question limit.
// The decision is advisory: callers relay it to the client, which decides
// when to actually end the session.
func ShouldEnd(questionCount, maxQuestions int) bool {
	return questionCount >= maxQuestions
}
