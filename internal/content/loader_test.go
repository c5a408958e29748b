package content

import "testing"

const sampleLesson = `{
	"title": "Intro to Fractions",
	"subject": "math",
	"difficulty": "grade-4",
	"vocabulary": [
		{"term": "numerator", "definition": "the top number"}
	],
	"trueFalse": [
		{"question": "1/2 is bigger than 1/3", "answer": "true"}
	],
	"multipleChoice": [
		{"question": "What is 1/2 of 8?", "choices": ["2", "4", "6"], "answer": "4"}
	],
	"shortAnswer": [
		{"question": "Write one half as a fraction", "answer": "1/2"}
	],
	"wordProblems": [
		{"question": "Ana ate 2 of 8 slices. What fraction is left?", "answer": "6/8"}
	]
}`

func TestParse_TagsBankQuestions(t *testing.T) {
	lc, err := Parse([]byte(sampleLesson))
	if err != nil {
		t.Fatal(err)
	}

	if lc.Title != "Intro to Fractions" || lc.Subject != "math" {
		t.Errorf("header = %q / %q", lc.Title, lc.Subject)
	}

	banks := lc.Banks()
	if len(banks) != 3 {
		t.Fatalf("banks = %d questions, want 3", len(banks))
	}

	byPrompt := make(map[string]Question)
	for _, q := range banks {
		byPrompt[q.Prompt] = q
	}

	if q := byPrompt["1/2 is bigger than 1/3"]; q.QuestionType != TypeTrueFalse || q.SourceType != SourceTrueFalse {
		t.Errorf("true/false tagging = %s/%s", q.QuestionType, q.SourceType)
	}
	if q := byPrompt["What is 1/2 of 8?"]; q.QuestionType != TypeMultipleChoice || q.SourceType != SourceMultChoice {
		t.Errorf("multiple-choice tagging = %s/%s", q.QuestionType, q.SourceType)
	}
	if q := byPrompt["Write one half as a fraction"]; q.QuestionType != TypeShortAnswer || q.SourceType != SourceShortAnswer {
		t.Errorf("short-answer tagging = %s/%s", q.QuestionType, q.SourceType)
	}

	wps := lc.TaggedWordProblems()
	if len(wps) != 1 || wps[0].QuestionType != TypeShortAnswer || wps[0].SourceType != SourceWordProblem {
		t.Errorf("word problems = %+v", wps)
	}
}

func TestParse_FillInBlankGradesAsShortAnswer(t *testing.T) {
	lc, err := Parse([]byte(`{
		"title": "T", "subject": "s",
		"fillInBlank": [{"question": "The ___ is on top", "answer": "numerator"}]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	banks := lc.Banks()
	if len(banks) != 1 || banks[0].QuestionType != TypeShortAnswer || banks[0].SourceType != SourceFillInBlank {
		t.Errorf("fill-in-blank tagging = %+v", banks)
	}
}

func TestParse_LegacyTyping(t *testing.T) {
	lc, err := Parse([]byte(`{
		"title": "T", "subject": "s",
		"worksheet": [
			{"question": "pick one", "choices": ["a", "b"], "answer": "a"},
			{"question": "yes or no", "answer": "true"},
			{"question": "free text", "answer": "anything"}
		]
	}`))
	if err != nil {
		t.Fatal(err)
	}

	want := []QuestionType{TypeMultipleChoice, TypeTrueFalse, TypeShortAnswer}
	for i, q := range lc.LegacyWorksheet {
		if q.QuestionType != want[i] {
			t.Errorf("legacy[%d] type = %s, want %s", i, q.QuestionType, want[i])
		}
		if q.SourceType != SourceLegacy {
			t.Errorf("legacy[%d] source = %s, want legacy", i, q.SourceType)
		}
	}
}

func TestParse_RejectsMissingTitle(t *testing.T) {
	if _, err := Parse([]byte(`{"subject": "math"}`)); err == nil {
		t.Error("expected validation error for missing title")
	}
}

func TestParse_RejectsInvalidJSON(t *testing.T) {
	if _, err := Parse([]byte(`{not json`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestBanksEmpty(t *testing.T) {
	lc := &LessonContent{Title: "T", Subject: "s"}
	if !lc.BanksEmpty() {
		t.Error("expected empty banks")
	}
	lc.WordProblems = []Question{{Prompt: "p", Answer: "a"}}
	if lc.BanksEmpty() {
		t.Error("word problems should count as bank content")
	}
}
