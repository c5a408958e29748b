package engine

import (
	"testing"

	"github.com/tutorflow/engine/internal/content"
)

func TestCheckAnswer_MultipleChoice(t *testing.T) {
	q := content.Question{
		QuestionType: content.TypeMultipleChoice,
		Prompt:       "What is 2+2?",
		Choices:      []string{"3", "4", "5"},
		Answer:       "4",
	}

	tests := []struct {
		input string
		want  bool
	}{
		{"4", true},
		{" 4 ", true},
		{"2", true}, // 1-based index of the correct choice
		{"1", false},
		{"3", false}, // matches choice "5" by index, not the answer
		{"5", false},
		{"", false},
	}

	for _, tc := range tests {
		got := CheckAnswer(q, tc.input)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_TrueFalse(t *testing.T) {
	q := content.Question{
		QuestionType: content.TypeTrueFalse,
		Prompt:       "The sky is blue.",
		Answer:       "true",
	}

	tests := []struct {
		input string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"t", true},
		{"yes", true},
		{"y", true},
		{"false", false},
		{"no", false},
		{"maybe", false},
		{"", false},
	}

	for _, tc := range tests {
		got := CheckAnswer(q, tc.input)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_ShortAnswerText(t *testing.T) {
	q := content.Question{
		QuestionType: content.TypeShortAnswer,
		Prompt:       "Name the largest planet.",
		Answer:       "Jupiter",
	}

	tests := []struct {
		input string
		want  bool
	}{
		{"Jupiter", true},
		{"jupiter", true},
		{"  JUPITER  ", true},
		{"Saturn", false},
		{"", false},
	}

	for _, tc := range tests {
		got := CheckAnswer(q, tc.input)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_ShortAnswerNumeric(t *testing.T) {
	q := content.Question{
		QuestionType: content.TypeShortAnswer,
		Prompt:       "What is half of 7?",
		Answer:       "3.5",
	}

	tests := []struct {
		input string
		want  bool
	}{
		{"3.5", true},
		{"3.50", true},
		{" 3.500 ", true},
		{"3.6", false},
		{"seven halves", false},
	}

	for _, tc := range tests {
		got := CheckAnswer(q, tc.input)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_WhitespaceCollapse(t *testing.T) {
	q := content.Question{
		QuestionType: content.TypeShortAnswer,
		Answer:       "water  cycle",
	}
	if !CheckAnswer(q, "Water Cycle") {
		t.Error("expected inner whitespace to collapse before comparison")
	}
}
