package snapshot

import (
	"testing"

	"github.com/tutorflow/engine/internal/content"
	"github.com/tutorflow/engine/internal/engine"
)

func worksheetState() *engine.State {
	s := engine.NewState("learner-1", "fractions-intro")
	s.Phase = engine.PhaseWorksheet
	s.SubPhase = engine.SubWorksheetActive
	s.Worksheet = []content.Question{
		{QuestionType: content.TypeShortAnswer, Prompt: "w1", Answer: "1"},
		{QuestionType: content.TypeShortAnswer, Prompt: "w2", Answer: "2"},
	}
	s.Test = []content.Question{
		{QuestionType: content.TypeShortAnswer, Prompt: "t1", Answer: "1"},
	}
	s.WorksheetIndex = 1
	s.StageRepeats[engine.StageDefinitions] = 2
	s.Gate.QAAnswersUnlocked = true
	s.Captions = []string{"hello"}
	s.CaptionIndex = 1
	s.Ticker = 9
	return s
}

func TestFromState_Apply_RoundTrip(t *testing.T) {
	src := worksheetState()
	p := FromState(src)

	dst := engine.NewState(src.LearnerID, src.LessonKey)
	p.Apply(dst)

	if dst.Phase != src.Phase || dst.SubPhase != src.SubPhase || dst.TeachingStage != src.TeachingStage {
		t.Errorf("position = %s/%q/%s, want %s/%q/%s",
			dst.Phase, dst.SubPhase, dst.TeachingStage, src.Phase, src.SubPhase, src.TeachingStage)
	}
	if dst.WorksheetIndex != 1 {
		t.Errorf("worksheet index = %d, want 1", dst.WorksheetIndex)
	}
	if len(dst.Worksheet) != 2 || dst.Worksheet[0].Prompt != "w1" {
		t.Errorf("worksheet = %+v", dst.Worksheet)
	}
	if len(dst.Test) != 1 {
		t.Errorf("test = %+v", dst.Test)
	}
	if dst.StageRepeats[engine.StageDefinitions] != 2 {
		t.Errorf("stage repeats = %v", dst.StageRepeats)
	}
	if !dst.Gate.QAAnswersUnlocked {
		t.Error("gate flags lost")
	}
	if len(dst.Captions) != 1 || dst.CaptionIndex != 1 {
		t.Errorf("captions = %v (index %d)", dst.Captions, dst.CaptionIndex)
	}
	if dst.Ticker != 9 {
		t.Errorf("ticker = %d, want 9", dst.Ticker)
	}
}

func TestFromState_ResumePointer(t *testing.T) {
	p := FromState(worksheetState())

	if p.Resume.Kind != engine.ResumeQuestion {
		t.Fatalf("resume kind = %q, want question", p.Resume.Kind)
	}
	if p.Resume.Phase != "worksheet" || p.Resume.Index != 1 {
		t.Errorf("resume = %+v", p.Resume)
	}
}

func TestApply_ResumesMidExercise(t *testing.T) {
	// A learner who left during exercise question 4 reopens the lesson:
	// the restored state picks up at the same question, not the start.
	src := engine.NewState("learner-1", "fractions-intro")
	src.Phase = engine.PhaseExercise
	src.SubPhase = engine.SubExerciseActive
	src.ExIndex = 3

	p := FromState(src)
	if p.Resume.Kind != engine.ResumeQuestion || p.Resume.Index != 3 {
		t.Fatalf("resume = %+v, want question index 3", p.Resume)
	}

	dst := engine.NewState(src.LearnerID, src.LessonKey)
	p.Apply(dst)

	if dst.Phase != engine.PhaseExercise || dst.SubPhase != engine.SubExerciseActive {
		t.Errorf("position = %s/%q", dst.Phase, dst.SubPhase)
	}
	if dst.ExIndex != 3 {
		t.Errorf("exercise index = %d, want 3", dst.ExIndex)
	}
}

func TestApply_UnknownEnumsFallBack(t *testing.T) {
	p := &Payload{
		Phase:         "discussion",
		SubPhase:      "future-thing",
		TeachingStage: "bogus",
	}

	s := engine.NewState("l", "k")
	p.Apply(s)

	if s.Phase != engine.PhaseTeaching {
		t.Errorf("phase = %s, want teaching fallback", s.Phase)
	}
	if s.SubPhase != engine.SubTeachingActive {
		t.Errorf("sub-phase = %q, want initial value kept", s.SubPhase)
	}
	if s.TeachingStage != engine.StageIdle {
		t.Errorf("stage = %s, want idle", s.TeachingStage)
	}
}

func TestSignature_TracksMeaningfulChanges(t *testing.T) {
	s := worksheetState()
	base := Signature(s)

	if Signature(s) != base {
		t.Fatal("signature not stable for unchanged state")
	}

	s.WorksheetIndex++
	if Signature(s) == base {
		t.Error("cursor change should change the signature")
	}

	s.WorksheetIndex--
	s.Gate.JokeUsed = true
	if Signature(s) == base {
		t.Error("gate flag change should change the signature")
	}
}
