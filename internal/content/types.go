package content

// QuestionType classifies how a question is rendered and graded.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "mc"
	TypeTrueFalse      QuestionType = "tf"
	TypeShortAnswer    QuestionType = "sa"
)

// SourceType records which bank a question came from. Provenance only;
// grading and blending key off QuestionType.
type SourceType string

const (
	SourceTrueFalse   SourceType = "true-false"
	SourceMultChoice  SourceType = "multiple-choice"
	SourceFillInBlank SourceType = "fill-in-blank"
	SourceShortAnswer SourceType = "short-answer"
	SourceWordProblem SourceType = "word-problem"
	SourceLegacy      SourceType = "legacy"
)

// Question is the uniform shape every phase consumes. Bank items are
// normalized into this on load so downstream grading never branches on
// which bank a question came from.
type Question struct {
	SourceType   SourceType   `json:"sourceType"`
	QuestionType QuestionType `json:"questionType"`

	// Prompt is the question text shown to the learner.
	Prompt string `json:"question"`

	// Choices is populated for multiple-choice questions only.
	Choices []string `json:"choices,omitempty"`

	// Answer is the canonical correct answer. For true/false it is
	// "true" or "false"; for multiple choice the text of the correct option.
	Answer string `json:"answer"`
}

// VocabTerm is a single vocabulary entry taught during the definitions stage.
type VocabTerm struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Example    string `json:"example,omitempty"`
}

// LessonContent is the read-only input for a session: vocabulary, the
// categorized question banks, word problems, and optional pre-built
// worksheet/test arrays kept as a legacy fallback.
type LessonContent struct {
	ID            string      `json:"id,omitempty"`
	Title         string      `json:"title"`
	Subject       string      `json:"subject"`
	Difficulty    string      `json:"difficulty,omitempty"`
	TeachingNotes string      `json:"teachingNotes,omitempty"`
	Vocabulary    []VocabTerm `json:"vocabulary,omitempty"`

	TrueFalse      []Question `json:"trueFalse,omitempty"`
	MultipleChoice []Question `json:"multipleChoice,omitempty"`
	FillInBlank    []Question `json:"fillInBlank,omitempty"`
	ShortAnswer    []Question `json:"shortAnswer,omitempty"`
	WordProblems   []Question `json:"wordProblems,omitempty"`

	// LegacyWorksheet and LegacyTest are pre-built flat arrays found in
	// older content files. Used only when every bank is empty.
	LegacyWorksheet []Question `json:"worksheet,omitempty"`
	LegacyTest      []Question `json:"test,omitempty"`
}

// Banks returns the categorized (non-word-problem) questions, each tagged
// with its source and question type.
func (lc *LessonContent) Banks() []Question {
	var out []Question
	out = append(out, tagAll(lc.TrueFalse, SourceTrueFalse, TypeTrueFalse)...)
	out = append(out, tagAll(lc.MultipleChoice, SourceMultChoice, TypeMultipleChoice)...)
	out = append(out, tagAll(lc.FillInBlank, SourceFillInBlank, TypeShortAnswer)...)
	out = append(out, tagAll(lc.ShortAnswer, SourceShortAnswer, TypeShortAnswer)...)
	return out
}

// TaggedWordProblems returns the word-problem pool. Word problems grade as
// short-answer for mixing purposes.
func (lc *LessonContent) TaggedWordProblems() []Question {
	return tagAll(lc.WordProblems, SourceWordProblem, TypeShortAnswer)
}

// BanksEmpty reports whether every categorized bank and the word-problem
// pool are empty.
func (lc *LessonContent) BanksEmpty() bool {
	return len(lc.TrueFalse) == 0 &&
		len(lc.MultipleChoice) == 0 &&
		len(lc.FillInBlank) == 0 &&
		len(lc.ShortAnswer) == 0 &&
		len(lc.WordProblems) == 0
}

// tagAll fills SourceType and QuestionType on every question, preserving
// values the bank already set.
func tagAll(qs []Question, src SourceType, qt QuestionType) []Question {
	out := make([]Question, len(qs))
	for i, q := range qs {
		if q.SourceType == "" {
			q.SourceType = src
		}
		if q.QuestionType == "" {
			q.QuestionType = qt
		}
		out[i] = q
	}
	return out
}
