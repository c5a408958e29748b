package engine

import (
	"testing"

	"github.com/tutorflow/engine/internal/content"
)

func TestDeriveResume_TeachingStageWins(t *testing.T) {
	s := NewState("l", "k")
	StartTeaching(s)

	r := DeriveResume(s)
	if r.Kind != ResumeTeachingStage {
		t.Fatalf("kind = %q, want teaching-stage", r.Kind)
	}
	if r.Phase != "teaching" || r.Stage != "definitions" {
		t.Errorf("resume = %+v", r)
	}

	// Also wins while parked at a gate mid-teaching.
	EnterGate(s)
	r = DeriveResume(s)
	if r.Kind != ResumeTeachingStage || r.Stage != "definitions" {
		t.Errorf("at gate: resume = %+v", r)
	}
}

func TestDeriveResume_PhaseEntrance(t *testing.T) {
	s := NewState("l", "k")
	s.Phase = PhaseExercise
	s.SubPhase = SubExerciseAwaitingBegin
	s.Exercise = []content.Question{sa("e1", "1")}

	r := DeriveResume(s)
	if r.Kind != ResumePhaseEntrance {
		t.Fatalf("kind = %q, want phase-entrance", r.Kind)
	}
	if r.Phase != "exercise" || r.Index != 0 {
		t.Errorf("resume = %+v", r)
	}
}

func TestDeriveResume_QuestionIndexIsOneBased(t *testing.T) {
	s := NewState("l", "k")
	s.Phase = PhaseWorksheet
	s.SubPhase = SubWorksheetActive
	s.Worksheet = []content.Question{sa("w1", "1"), sa("w2", "2"), sa("w3", "3"), sa("w4", "4")}
	s.WorksheetIndex = 3

	r := DeriveResume(s)
	if r.Kind != ResumeQuestion {
		t.Fatalf("kind = %q, want question", r.Kind)
	}
	if r.Index != 3 {
		t.Errorf("index = %d, want 3", r.Index)
	}

	// A just-begun phase with cursor 0 still points at question 1.
	s.WorksheetIndex = 0
	r = DeriveResume(s)
	if r.Kind != ResumeQuestion || r.Index != 1 {
		t.Errorf("cursor 0: resume = %+v", r)
	}
}

func TestDeriveResume_QuestionWithoutPoolLoaded(t *testing.T) {
	// Derived pools are not persisted, so a rehydrated state can sit on
	// an active question before any array is populated. The pointer must
	// still come from the cursor.
	s := NewState("l", "k")
	s.Phase = PhaseExercise
	s.SubPhase = SubExerciseActive
	s.ExIndex = 3

	r := DeriveResume(s)
	if r.Kind != ResumeQuestion {
		t.Fatalf("kind = %q, want question", r.Kind)
	}
	if r.Phase != "exercise" || r.Index != 3 {
		t.Errorf("resume = %+v", r)
	}
}

func TestDeriveResume_FallbackForUnknownPhase(t *testing.T) {
	s := NewState("l", "k")
	s.Phase = Phase(99)
	s.SubPhase = SubNone

	r := DeriveResume(s)
	if r.Kind != ResumePhaseEntrance {
		t.Fatalf("kind = %q, want phase-entrance fallback", r.Kind)
	}
	if r.Phase != "discussion" {
		t.Errorf("phase = %q, want discussion", r.Phase)
	}
}

func TestDeriveResume_Deterministic(t *testing.T) {
	s := NewState("l", "k")
	s.Phase = PhaseComprehension
	s.SubPhase = SubComprehensionActive
	s.Comprehension = []content.Question{sa("c1", "1"), sa("c2", "2")}
	s.CompIndex = 1
	s.Ticker = 7

	first := DeriveResume(s)
	for range 5 {
		if got := DeriveResume(s); got != first {
			t.Fatalf("resume drifted: %+v vs %+v", got, first)
		}
	}
	if first.Ticker != 7 {
		t.Errorf("ticker = %d, want 7", first.Ticker)
	}
}
