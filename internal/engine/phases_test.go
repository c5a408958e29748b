package engine

import (
	"testing"

	"github.com/tutorflow/engine/internal/content"
)

func sa(prompt, answer string) content.Question {
	return content.Question{QuestionType: content.TypeShortAnswer, Prompt: prompt, Answer: answer}
}

// stateAtWorksheet positions a session at the worksheet entrance with a
// small generated worksheet and test.
func stateAtWorksheet(t *testing.T) *State {
	t.Helper()
	s := NewState("l", "k")
	s.Worksheet = []content.Question{sa("w1", "1"), sa("w2", "2"), sa("w3", "3")}
	s.Test = []content.Question{sa("t1", "1"), sa("t2", "2")}
	s.Phase = PhaseWorksheet
	s.SubPhase = SubWorksheetAwaitingBegin
	return s
}

func TestBeginPhase_OutsideEntrance(t *testing.T) {
	s := NewState("l", "k")
	if err := BeginPhase(s); err == nil {
		t.Error("expected error beginning outside an entrance")
	}
}

func TestBeginPhase_UnlocksFirstQuestion(t *testing.T) {
	s := stateAtWorksheet(t)

	if s.CurrentQuestion() != nil {
		t.Error("no question should be active before begin")
	}
	if err := BeginPhase(s); err != nil {
		t.Fatal(err)
	}
	if s.SubPhase != SubWorksheetActive {
		t.Errorf("sub-phase = %q, want worksheet active", s.SubPhase)
	}
	q := s.CurrentQuestion()
	if q == nil || q.Prompt != "w1" {
		t.Fatalf("current question = %+v, want w1", q)
	}
}

func TestBeginPhase_SkipsEmptyPhase(t *testing.T) {
	// A lesson too thin to fill every array must still reach the end:
	// beginning a phase with no questions lands on the next entrance.
	s := NewState("l", "k")
	s.Phase = PhaseComprehension
	s.SubPhase = SubComprehensionStart

	if err := BeginPhase(s); err != nil {
		t.Fatal(err)
	}
	if s.Phase != PhaseExercise || s.SubPhase != SubExerciseAwaitingBegin {
		t.Fatalf("position = %s/%q, want exercise entrance", s.Phase, s.SubPhase)
	}

	for _, want := range []Phase{PhaseWorksheet, PhaseTest, PhaseCongrats} {
		if err := BeginPhase(s); err != nil {
			t.Fatalf("begin toward %s: %v", want, err)
		}
		if s.Phase != want {
			t.Fatalf("phase = %s, want %s", s.Phase, want)
		}
	}
	if s.TestFinalPercent != 0 {
		t.Errorf("final percent = %d, want 0 for a skipped test", s.TestFinalPercent)
	}
}

func TestBeginPhase_EmptyExerciseOnly(t *testing.T) {
	s := NewState("l", "k")
	s.Worksheet = []content.Question{sa("w1", "1")}
	s.Phase = PhaseExercise
	s.SubPhase = SubExerciseAwaitingBegin

	if err := BeginPhase(s); err != nil {
		t.Fatal(err)
	}
	if s.Phase != PhaseWorksheet || s.SubPhase != SubWorksheetAwaitingBegin {
		t.Fatalf("position = %s/%q, want worksheet entrance", s.Phase, s.SubPhase)
	}

	if err := BeginPhase(s); err != nil {
		t.Fatal(err)
	}
	if s.SubPhase != SubWorksheetActive {
		t.Errorf("sub-phase = %q, want worksheet active", s.SubPhase)
	}
}

func TestSubmitAnswer_AdvancesCursorAndPhase(t *testing.T) {
	s := stateAtWorksheet(t)
	if err := BeginPhase(s); err != nil {
		t.Fatal(err)
	}

	answers := []string{"1", "wrong", "3"}
	wantCorrect := []bool{true, false, true}

	for i, a := range answers {
		res, err := SubmitAnswer(s, a)
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if res.Correct != wantCorrect[i] {
			t.Errorf("submit %d: correct = %v, want %v", i, res.Correct, wantCorrect[i])
		}
		if i < len(answers)-1 && res.PhaseDone {
			t.Errorf("submit %d: phase done too early", i)
		}
	}

	if s.Phase != PhaseTest {
		t.Errorf("phase = %s, want test after worksheet exhausted", s.Phase)
	}
	if s.SubPhase != SubTestAwaitingBegin {
		t.Errorf("sub-phase = %q, want test entrance", s.SubPhase)
	}
}

func TestSubmitAnswer_NoActiveQuestion(t *testing.T) {
	s := stateAtWorksheet(t)
	if _, err := SubmitAnswer(s, "1"); err == nil {
		t.Error("expected error submitting before begin")
	}
}

func TestTestPhase_RecordsAnswersAndScores(t *testing.T) {
	s := stateAtWorksheet(t)
	s.Phase = PhaseTest
	s.SubPhase = SubTestAwaitingBegin
	if err := BeginPhase(s); err != nil {
		t.Fatal(err)
	}

	if _, err := SubmitAnswer(s, "1"); err != nil {
		t.Fatal(err)
	}
	res, err := SubmitAnswer(s, "nope")
	if err != nil {
		t.Fatal(err)
	}
	if !res.PhaseDone {
		t.Error("expected phase done on last test question")
	}

	if len(s.TestAnswers) != 2 || s.TestAnswers[0] != "1" || s.TestAnswers[1] != "nope" {
		t.Errorf("test answers = %v", s.TestAnswers)
	}
	if len(s.TestCorrectness) != 2 || !s.TestCorrectness[0] || s.TestCorrectness[1] {
		t.Errorf("test correctness = %v", s.TestCorrectness)
	}
	if s.TestFinalPercent != 50 {
		t.Errorf("final percent = %d, want 50", s.TestFinalPercent)
	}
	if s.Phase != PhaseCongrats {
		t.Errorf("phase = %s, want congrats", s.Phase)
	}
}

func TestScoreTest_Rounding(t *testing.T) {
	tests := []struct {
		correctness []bool
		want        int
	}{
		{[]bool{true, true, true}, 100},
		{[]bool{false, false}, 0},
		{[]bool{true, false, false}, 33},
		{[]bool{true, true, false}, 67},
		{nil, 0},
	}

	for _, tc := range tests {
		s := NewState("l", "k")
		s.TestCorrectness = tc.correctness
		scoreTest(s)
		if s.TestFinalPercent != tc.want {
			t.Errorf("scoreTest(%v) = %d, want %d", tc.correctness, s.TestFinalPercent, tc.want)
		}
	}
}

func TestComplete(t *testing.T) {
	s := NewState("l", "k")
	if err := Complete(s); err == nil {
		t.Error("expected error completing outside congrats")
	}

	s.Phase = PhaseCongrats
	if err := Complete(s); err != nil {
		t.Fatal(err)
	}
	if s.Phase != PhaseComplete {
		t.Errorf("phase = %s, want complete", s.Phase)
	}
}
