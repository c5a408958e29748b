package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tutorflow/engine/internal/content"
	"github.com/tutorflow/engine/internal/speech"
	"github.com/tutorflow/engine/internal/tutor"
)

func testLesson() *content.LessonContent {
	return &content.LessonContent{
		Title:   "Fractions",
		Subject: "math",
		Vocabulary: []content.VocabTerm{
			{Term: "numerator", Definition: "the top number", Example: "in 3/4 it is 3"},
			{Term: "denominator", Definition: "the bottom number"},
		},
	}
}

func TestStartTeaching(t *testing.T) {
	s := NewState("l", "k")
	StartTeaching(s)

	if s.TeachingStage != StageDefinitions {
		t.Errorf("stage = %s, want definitions", s.TeachingStage)
	}
	if s.SubPhase != SubTeachingActive {
		t.Errorf("sub-phase = %q, want teaching active", s.SubPhase)
	}
	if s.CanSend {
		t.Error("free-text input should be locked while narration runs")
	}
}

func TestHandleGate_OutsideGate(t *testing.T) {
	s := NewState("l", "k")
	StartTeaching(s)

	if _, err := HandleGate(s, GateNo); err == nil {
		t.Error("expected error for gate input outside a gate")
	}
}

func TestHandleGate_YesRepeatsStage(t *testing.T) {
	s := NewState("l", "k")
	StartTeaching(s)
	EnterGate(s)

	repeat, err := HandleGate(s, GateYes)
	if err != nil {
		t.Fatal(err)
	}
	if !repeat {
		t.Error("yes should repeat the stage")
	}
	if s.TeachingStage != StageDefinitions {
		t.Errorf("stage = %s, want definitions", s.TeachingStage)
	}
	if s.StageRepeats[StageDefinitions] != 1 {
		t.Errorf("repeats = %d, want 1", s.StageRepeats[StageDefinitions])
	}
	if s.SubPhase != SubTeachingActive {
		t.Errorf("sub-phase = %q, want teaching active", s.SubPhase)
	}
}

func TestHandleGate_NoAdvancesStageThenPhase(t *testing.T) {
	s := NewState("l", "k")
	StartTeaching(s)
	EnterGate(s)

	if _, err := HandleGate(s, GateNo); err != nil {
		t.Fatal(err)
	}
	if s.TeachingStage != StageExamples {
		t.Errorf("stage = %s, want examples", s.TeachingStage)
	}

	EnterGate(s)
	if _, err := HandleGate(s, GateNo); err != nil {
		t.Fatal(err)
	}
	if s.Phase != PhaseComprehension {
		t.Errorf("phase = %s, want comprehension", s.Phase)
	}
	if s.SubPhase != SubComprehensionStart {
		t.Errorf("sub-phase = %q, want comprehension start", s.SubPhase)
	}
}

func TestUseOneShot_OncePerGate(t *testing.T) {
	s := NewState("l", "k")
	StartTeaching(s)

	if UseOneShot(s, OneShotJoke) {
		t.Error("one-shot spent outside a gate")
	}

	EnterGate(s)
	if !UseOneShot(s, OneShotJoke) {
		t.Fatal("first joke at a gate should be allowed")
	}
	if UseOneShot(s, OneShotJoke) {
		t.Error("second joke at the same gate should be refused")
	}
	if !UseOneShot(s, OneShotRiddle) {
		t.Error("other one-shots should still be available")
	}

	// The next gate starts with a fresh allowance.
	if _, err := HandleGate(s, GateYes); err != nil {
		t.Fatal(err)
	}
	EnterGate(s)
	if !UseOneShot(s, OneShotJoke) {
		t.Error("a new gate should reset the one-shots")
	}
}

func TestUnlockQA_SurvivesGateReentry(t *testing.T) {
	s := NewState("l", "k")
	StartTeaching(s)

	if err := UnlockQA(s); err == nil {
		t.Error("expected error unlocking QA outside a gate")
	}

	EnterGate(s)
	if err := UnlockQA(s); err != nil {
		t.Fatal(err)
	}
	if !s.Gate.QAAnswersUnlocked {
		t.Fatal("QA should be unlocked")
	}

	if _, err := HandleGate(s, GateYes); err != nil {
		t.Fatal(err)
	}
	EnterGate(s)
	if !s.Gate.QAAnswersUnlocked {
		t.Error("QA unlock should survive entering the next gate")
	}
}

func TestTeachingLoop_NeverMovesBackward(t *testing.T) {
	s := NewState("l", "k")
	StartTeaching(s)

	// Repeats at both stages, then advance. Stage order only ever goes
	// definitions -> examples -> out.
	steps := []GateChoice{GateYes, GateYes, GateNo, GateYes, GateNo}
	wantStages := []TeachingStage{StageDefinitions, StageDefinitions, StageExamples, StageExamples, StageIdle}

	for i, choice := range steps {
		EnterGate(s)
		if _, err := HandleGate(s, choice); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if s.TeachingStage != wantStages[i] {
			t.Fatalf("step %d: stage = %s, want %s", i, s.TeachingStage, wantStages[i])
		}
	}

	if s.Phase != PhaseComprehension {
		t.Errorf("phase = %s, want comprehension", s.Phase)
	}
}

func TestRunStage_NarratesAndEntersGate(t *testing.T) {
	s := NewState("l", "k")
	StartTeaching(s)

	mock := tutor.NewMockProvider(tutor.MockResponse{Text: "A numerator is the top number."})
	c := &TeachingController{
		Tutor:  mock,
		Speech: speech.SyntheticSynthesizer{},
		Log:    zerolog.Nop(),
	}

	if err := c.RunStage(context.Background(), s, testLesson()); err != nil {
		t.Fatal(err)
	}

	if s.SubPhase != SubAwaitingGate {
		t.Errorf("sub-phase = %q, want awaiting gate", s.SubPhase)
	}
	if s.CanSend {
		t.Error("CanSend should be false at a gate")
	}
	if len(s.Captions) != 1 || s.Captions[0] != "A numerator is the top number." {
		t.Errorf("captions = %v", s.Captions)
	}
	if s.CaptionIndex != 1 {
		t.Errorf("caption index = %d, want 1", s.CaptionIndex)
	}
	if mock.CallCount() != 1 {
		t.Errorf("tutor calls = %d, want 1", mock.CallCount())
	}
}

func TestRunStage_TutorFailureUsesFallback(t *testing.T) {
	s := NewState("l", "k")
	StartTeaching(s)

	mock := tutor.NewMockProvider(tutor.MockResponse{Err: errors.New("provider down")})
	c := &TeachingController{Tutor: mock, Log: zerolog.Nop()}

	if err := c.RunStage(context.Background(), s, testLesson()); err != nil {
		t.Fatal(err)
	}

	if s.SubPhase != SubAwaitingGate {
		t.Errorf("sub-phase = %q, want awaiting gate", s.SubPhase)
	}
	if len(s.Captions) != 1 || s.Captions[0] == "" {
		t.Errorf("expected fallback narration caption, got %v", s.Captions)
	}
}

func TestRunStage_CancelLandsOnGate(t *testing.T) {
	s := NewState("l", "k")
	StartTeaching(s)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &TeachingController{
		Tutor: tutor.NewMockProvider(tutor.MockResponse{Err: context.Canceled}),
		Log:   zerolog.Nop(),
	}

	if err := c.RunStage(ctx, s, testLesson()); err != nil {
		t.Fatal(err)
	}
	if s.SubPhase != SubAwaitingGate {
		t.Errorf("sub-phase = %q, want awaiting gate after skip", s.SubPhase)
	}
}

func TestRunStage_OutsideTeaching(t *testing.T) {
	s := NewState("l", "k")
	s.Phase = PhaseWorksheet
	s.SubPhase = SubWorksheetActive

	c := &TeachingController{Log: zerolog.Nop()}
	if err := c.RunStage(context.Background(), s, testLesson()); err == nil {
		t.Error("expected error outside the teaching phase")
	}
}
