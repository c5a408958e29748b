package engine

import "testing"

func TestNewState_StartsAtTeaching(t *testing.T) {
	s := NewState("learner-1", "fractions-intro")

	if s.SessionID == "" {
		t.Error("expected a session ID")
	}
	if s.Phase != PhaseTeaching {
		t.Errorf("phase = %s, want teaching", s.Phase)
	}
	if s.TeachingStage != StageIdle {
		t.Errorf("stage = %s, want idle", s.TeachingStage)
	}
	if s.TestFinalPercent != -1 {
		t.Errorf("TestFinalPercent = %d, want -1", s.TestFinalPercent)
	}
}

func TestAdvancePhase_FollowsSuccessorTable(t *testing.T) {
	order := []Phase{
		PhaseTeaching, PhaseComprehension, PhaseExercise,
		PhaseWorksheet, PhaseTest, PhaseCongrats, PhaseComplete,
	}

	s := NewState("l", "k")
	for i := 1; i < len(order); i++ {
		if err := s.AdvancePhase(); err != nil {
			t.Fatalf("advance from %s: %v", order[i-1], err)
		}
		if s.Phase != order[i] {
			t.Fatalf("after advance %d: phase = %s, want %s", i, s.Phase, order[i])
		}
	}

	if err := s.AdvancePhase(); err == nil {
		t.Error("expected error advancing past complete")
	}
}

func TestAdvancePhase_SetsEntranceSubPhase(t *testing.T) {
	tests := []struct {
		from Phase
		want SubPhase
	}{
		{PhaseTeaching, SubComprehensionStart},
		{PhaseComprehension, SubExerciseAwaitingBegin},
		{PhaseExercise, SubWorksheetAwaitingBegin},
		{PhaseWorksheet, SubTestAwaitingBegin},
		{PhaseTest, SubNone},
	}

	for _, tc := range tests {
		s := NewState("l", "k")
		s.Phase = tc.from
		if err := s.AdvancePhase(); err != nil {
			t.Fatalf("advance from %s: %v", tc.from, err)
		}
		if s.SubPhase != tc.want {
			t.Errorf("advance from %s: sub-phase = %q, want %q", tc.from, s.SubPhase, tc.want)
		}
		if !s.CanSend {
			t.Errorf("advance from %s: CanSend should be true at a phase entrance", tc.from)
		}
	}
}

func TestAdvancePhase_BumpsTicker(t *testing.T) {
	s := NewState("l", "k")
	before := s.Ticker
	if err := s.AdvancePhase(); err != nil {
		t.Fatal(err)
	}
	if s.Ticker != before+1 {
		t.Errorf("ticker = %d, want %d", s.Ticker, before+1)
	}
}

func TestPhaseRoundTrip(t *testing.T) {
	for p := PhaseTeaching; p <= PhaseComplete; p++ {
		got, err := ParsePhase(p.String())
		if err != nil {
			t.Fatalf("ParsePhase(%q): %v", p.String(), err)
		}
		if got != p {
			t.Errorf("ParsePhase(%q) = %v, want %v", p.String(), got, p)
		}
	}

	if _, err := ParsePhase("bogus"); err == nil {
		t.Error("expected error for unknown phase name")
	}
}

func TestGateFlags_ResetOneShots(t *testing.T) {
	g := GateFlags{
		QAAnswersUnlocked: true,
		JokeUsed:          true,
		RiddleUsed:        true,
		PoemUsed:          true,
		StoryUsed:         true,
	}
	g.ResetOneShots()

	if !g.QAAnswersUnlocked {
		t.Error("QAAnswersUnlocked should survive a gate reset")
	}
	if g.JokeUsed || g.RiddleUsed || g.PoemUsed || g.StoryUsed {
		t.Error("one-shot flags should clear on gate entry")
	}
}
