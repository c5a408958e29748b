package assessment

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/tutorflow/engine/internal/content"
)

func bankQuestions(n int, qt content.QuestionType, prefix string) []content.Question {
	out := make([]content.Question, n)
	for i := range out {
		out[i] = content.Question{
			QuestionType: qt,
			Prompt:       fmt.Sprintf("%s question %d", prefix, i),
			Answer:       "x",
		}
	}
	return out
}

func countByType(qs []content.Question) map[content.QuestionType]int {
	out := make(map[content.QuestionType]int)
	for _, q := range qs {
		out[q.QuestionType]++
	}
	return out
}

func TestGenerate_ExactTargetSize(t *testing.T) {
	lc := &content.LessonContent{
		MultipleChoice: bankQuestions(10, content.TypeMultipleChoice, "mc"),
		TrueFalse:      bankQuestions(10, content.TypeTrueFalse, "tf"),
		ShortAnswer:    bankQuestions(10, content.TypeShortAnswer, "sa"),
	}

	got := Generate(lc, 10, Options{})
	if len(got) != 10 {
		t.Fatalf("len = %d, want 10", len(got))
	}
}

func TestGenerate_TypeMix(t *testing.T) {
	lc := &content.LessonContent{
		MultipleChoice: bankQuestions(20, content.TypeMultipleChoice, "mc"),
		TrueFalse:      bankQuestions(20, content.TypeTrueFalse, "tf"),
		ShortAnswer:    bankQuestions(20, content.TypeShortAnswer, "sa"),
	}

	got := Generate(lc, 10, Options{})
	byType := countByType(got)

	if byType[content.TypeShortAnswer] != 2 {
		t.Errorf("secondary count = %d, want 2 (20%% of 10)", byType[content.TypeShortAnswer])
	}
	if byType[content.TypeMultipleChoice]+byType[content.TypeTrueFalse] != 8 {
		t.Errorf("primary count = %d, want 8", byType[content.TypeMultipleChoice]+byType[content.TypeTrueFalse])
	}
}

func TestGenerate_ScarceSecondaryCapped(t *testing.T) {
	// 10 mc + 10 tf + only 2 sa: the blend takes exactly the 2 available
	// secondary questions and fills the rest with primary.
	lc := &content.LessonContent{
		MultipleChoice: bankQuestions(10, content.TypeMultipleChoice, "mc"),
		TrueFalse:      bankQuestions(10, content.TypeTrueFalse, "tf"),
		ShortAnswer:    bankQuestions(2, content.TypeShortAnswer, "sa"),
	}

	got := Generate(lc, 10, Options{})
	if len(got) != 10 {
		t.Fatalf("len = %d, want 10", len(got))
	}
	byType := countByType(got)
	if byType[content.TypeShortAnswer] != 2 {
		t.Errorf("secondary count = %d, want 2", byType[content.TypeShortAnswer])
	}
}

func TestGenerate_PrimaryShortfallSpillsToSecondary(t *testing.T) {
	lc := &content.LessonContent{
		MultipleChoice: bankQuestions(3, content.TypeMultipleChoice, "mc"),
		ShortAnswer:    bankQuestions(20, content.TypeShortAnswer, "sa"),
	}

	got := Generate(lc, 10, Options{})
	if len(got) != 10 {
		t.Fatalf("len = %d, want 10: a short primary pool must spill, not shrink", len(got))
	}
	byType := countByType(got)
	if byType[content.TypeMultipleChoice] != 3 {
		t.Errorf("mc count = %d, want all 3 available", byType[content.TypeMultipleChoice])
	}
	if byType[content.TypeShortAnswer] != 7 {
		t.Errorf("sa count = %d, want 7", byType[content.TypeShortAnswer])
	}
}

func TestGenerate_ShortPoolYieldsSmallerArray(t *testing.T) {
	lc := &content.LessonContent{
		MultipleChoice: bankQuestions(4, content.TypeMultipleChoice, "mc"),
	}

	got := Generate(lc, 10, Options{})
	if len(got) != 4 {
		t.Errorf("len = %d, want 4", len(got))
	}
}

func TestGenerate_DedupAcrossBanks(t *testing.T) {
	dup := content.Question{QuestionType: content.TypeShortAnswer, Prompt: "What is  a Fraction?", Answer: "x"}
	lc := &content.LessonContent{
		ShortAnswer: []content.Question{
			dup,
			{QuestionType: content.TypeShortAnswer, Prompt: "what is a fraction?", Answer: "x"},
			{QuestionType: content.TypeShortAnswer, Prompt: "unique", Answer: "x"},
		},
	}

	got := Generate(lc, 10, Options{})
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 after dedup", len(got))
	}
	seen := make(map[string]bool)
	for _, q := range got {
		key := NormalizePrompt(q.Prompt)
		if seen[key] {
			t.Fatalf("duplicate prompt survived: %q", q.Prompt)
		}
		seen[key] = true
	}
}

func TestGenerate_SeedTakesPrecedence(t *testing.T) {
	seed := []content.Question{
		{QuestionType: content.TypeShortAnswer, SourceType: content.SourceWordProblem, Prompt: "wp 1", Answer: "x"},
		{QuestionType: content.TypeShortAnswer, SourceType: content.SourceWordProblem, Prompt: "wp 2", Answer: "x"},
	}
	lc := &content.LessonContent{
		MultipleChoice: bankQuestions(20, content.TypeMultipleChoice, "mc"),
	}

	got := Generate(lc, 10, Options{Seed: seed})
	wp := 0
	for _, q := range got {
		if q.SourceType == content.SourceWordProblem {
			wp++
		}
	}
	if wp != 2 {
		t.Errorf("word problems selected = %d, want both seeds", wp)
	}
}

func TestGenerate_SelectionVariesAcrossCalls(t *testing.T) {
	lc := &content.LessonContent{
		MultipleChoice: bankQuestions(30, content.TypeMultipleChoice, "mc"),
	}

	sets := make(map[string]bool)
	for range 10 {
		got := Generate(lc, 10, Options{})
		if len(got) != 10 {
			t.Fatalf("len = %d, want 10", len(got))
		}
		keys := make([]string, len(got))
		for i, q := range got {
			keys[i] = NormalizePrompt(q.Prompt)
		}
		sort.Strings(keys)
		sets[strings.Join(keys, "|")] = true
	}
	if len(sets) < 2 {
		t.Error("10 generations over a 30-question pool selected the identical set every time")
	}
}

func TestGenerate_DrawsAcrossPrimaryBanks(t *testing.T) {
	// Both primary banks feed the 8 primary slots; neither bank may be
	// systematically shadowed by the other.
	lc := &content.LessonContent{
		TrueFalse:      bankQuestions(10, content.TypeTrueFalse, "tf"),
		MultipleChoice: bankQuestions(10, content.TypeMultipleChoice, "mc"),
	}

	total := make(map[content.QuestionType]int)
	for range 5 {
		for qt, n := range countByType(Generate(lc, 10, Options{})) {
			total[qt] += n
		}
	}
	if total[content.TypeMultipleChoice] == 0 {
		t.Error("mc never selected across 5 generations")
	}
	if total[content.TypeTrueFalse] == 0 {
		t.Error("tf never selected across 5 generations")
	}
}

func TestGenerate_WordProblemsOnlyPool(t *testing.T) {
	// A lesson whose only bank is word problems still yields questions,
	// not the legacy fallback.
	lc := &content.LessonContent{
		WordProblems: bankQuestions(3, "", "wp"),
	}

	got := Generate(lc, 5, Options{})
	if len(got) != 3 {
		t.Fatalf("len = %d, want all 3 word problems", len(got))
	}
	for _, q := range got {
		if q.SourceType != content.SourceWordProblem {
			t.Errorf("unexpected source %q for %q", q.SourceType, q.Prompt)
		}
	}
}

func TestGenerate_LegacyFallback(t *testing.T) {
	lc := &content.LessonContent{
		LegacyWorksheet: bankQuestions(3, content.TypeShortAnswer, "legacy-w"),
		LegacyTest:      bankQuestions(3, content.TypeShortAnswer, "legacy-t"),
	}

	got := Generate(lc, 5, Options{})
	if len(got) != 5 {
		t.Errorf("len = %d, want 5 from legacy arrays", len(got))
	}
}

func TestGenerate_EmptyContent(t *testing.T) {
	if got := Generate(&content.LessonContent{}, 10, Options{}); got != nil {
		t.Errorf("expected nil for empty content, got %d questions", len(got))
	}
	if got := Generate(nil, 10, Options{}); got != nil {
		t.Errorf("expected nil for nil content, got %d questions", len(got))
	}
}

func TestGeneratePair_WordProblemShare(t *testing.T) {
	lc := &content.LessonContent{
		MultipleChoice: bankQuestions(20, content.TypeMultipleChoice, "mc"),
		TrueFalse:      bankQuestions(20, content.TypeTrueFalse, "tf"),
		ShortAnswer:    bankQuestions(20, content.TypeShortAnswer, "sa"),
		WordProblems:   bankQuestions(20, "", "wp"),
	}

	pair := GeneratePair(lc, 10, 10, true)

	for name, qs := range map[string][]content.Question{"worksheet": pair.Worksheet, "test": pair.Test} {
		if len(qs) != 10 {
			t.Fatalf("%s len = %d, want 10", name, len(qs))
		}
		wp := 0
		for _, q := range qs {
			if q.SourceType == content.SourceWordProblem {
				wp++
			}
		}
		if wp != 3 {
			t.Errorf("%s word problems = %d, want 3 (30%% of 10)", name, wp)
		}
	}
}

func TestGeneratePair_WordProblemsNeverRepeatAcrossArrays(t *testing.T) {
	lc := &content.LessonContent{
		MultipleChoice: bankQuestions(20, content.TypeMultipleChoice, "mc"),
		WordProblems:   bankQuestions(4, "", "wp"),
	}

	pair := GeneratePair(lc, 10, 10, true)

	seen := make(map[string]bool)
	for _, qs := range [][]content.Question{pair.Worksheet, pair.Test} {
		for _, q := range qs {
			if q.SourceType != content.SourceWordProblem {
				continue
			}
			key := NormalizePrompt(q.Prompt)
			if seen[key] {
				t.Fatalf("word problem reused across arrays: %q", q.Prompt)
			}
			seen[key] = true
		}
	}
}

func TestGeneratePair_NonNumericSkipsWordProblems(t *testing.T) {
	lc := &content.LessonContent{
		MultipleChoice: bankQuestions(20, content.TypeMultipleChoice, "mc"),
		WordProblems:   bankQuestions(10, "", "wp"),
	}

	pair := GeneratePair(lc, 10, 10, false)
	for _, q := range append(pair.Worksheet, pair.Test...) {
		if q.SourceType == content.SourceWordProblem {
			t.Fatalf("word problem selected for non-numeric lesson: %q", q.Prompt)
		}
	}
}

func TestRoundShare(t *testing.T) {
	tests := []struct {
		total int
		share float64
		want  int
	}{
		{10, 0.2, 2},
		{10, 0.3, 3},
		{5, 0.2, 1},
		{7, 0.3, 2},
		{0, 0.3, 0},
	}
	for _, tc := range tests {
		if got := roundShare(tc.total, tc.share); got != tc.want {
			t.Errorf("roundShare(%d, %v) = %d, want %d", tc.total, tc.share, got, tc.want)
		}
	}
}
