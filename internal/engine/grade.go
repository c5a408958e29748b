package engine

import (
	"strconv"
	"strings"

	"github.com/tutorflow/engine/internal/content"
)

// CheckAnswer compares the learner's input against a question's canonical
// answer. Returns true if the answer is correct.
//
// Normalization rules:
//   - Whitespace is trimmed; comparison is case-insensitive
//   - Multiple choice: matches the choice text or its 1-based index
//   - True/false: accepts true/false, t/f, yes/no
//   - Short answer: normalized text equality, with numeric equivalence
//     when both sides parse as numbers ("3.50" matches "3.5")
func CheckAnswer(q content.Question, learnerAnswer string) bool {
	learnerAnswer = strings.TrimSpace(learnerAnswer)
	if learnerAnswer == "" {
		return false
	}

	switch q.QuestionType {
	case content.TypeMultipleChoice:
		return checkMultipleChoice(q, learnerAnswer)
	case content.TypeTrueFalse:
		return checkTrueFalse(q, learnerAnswer)
	default:
		return checkShortAnswer(q, learnerAnswer)
	}
}

func checkMultipleChoice(q content.Question, answer string) bool {
	// Try matching by 1-based index first.
	if idx, err := strconv.Atoi(answer); err == nil && idx >= 1 && idx <= len(q.Choices) {
		return strings.EqualFold(
			strings.TrimSpace(q.Choices[idx-1]),
			strings.TrimSpace(q.Answer),
		)
	}
	return strings.EqualFold(answer, strings.TrimSpace(q.Answer))
}

func checkTrueFalse(q content.Question, answer string) bool {
	want, ok := parseBool(q.Answer)
	if !ok {
		return strings.EqualFold(answer, strings.TrimSpace(q.Answer))
	}
	got, ok := parseBool(answer)
	return ok && got == want
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "yes", "y":
		return true, true
	case "false", "f", "no", "n":
		return false, true
	}
	return false, false
}

func checkShortAnswer(q content.Question, answer string) bool {
	want := strings.TrimSpace(q.Answer)

	// Numeric equivalence when both sides parse.
	if lf, err := strconv.ParseFloat(answer, 64); err == nil {
		if wf, err := strconv.ParseFloat(want, 64); err == nil {
			return lf == wf
		}
	}

	return normalizeText(answer) == normalizeText(want)
}

// normalizeText lowercases and collapses whitespace for lenient matching.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
