package engine

// ResumeKind classifies a resume pointer.
type ResumeKind string

const (
	ResumeTeachingStage ResumeKind = "teaching-stage"
	ResumePhaseEntrance ResumeKind = "phase-entrance"
	ResumeQuestion      ResumeKind = "question"
)

// Resume is the compact pointer sufficient to reopen a session where the
// learner left off. Always derivable from State without I/O.
type Resume struct {
	Kind   ResumeKind `json:"kind"`
	Phase  string     `json:"phase"`
	Stage  string     `json:"stage,omitempty"`
	Index  int        `json:"index,omitempty"` // 1-based question index
	Ticker int        `json:"ticker,omitempty"`
}

// DeriveResume computes the resume pointer for a state. Pure: the same
// state always yields the same pointer. The innermost currently-true
// condition wins, in priority order:
//
//  1. inside a teaching stage → teaching-stage
//  2. un-begun phase entrance with no question unlocked → phase-entrance
//  3. a question is or was active → question (1-based index)
//  4. anything else → phase-entrance fallback
//
// Rule 4 also absorbs unknown phase/sub-phase combinations; derivation
// never fails.
func DeriveResume(s *State) Resume {
	if s.Phase == PhaseTeaching && s.TeachingStage != StageIdle {
		return Resume{
			Kind:  ResumeTeachingStage,
			Phase: PhaseTeaching.String(),
			Stage: s.TeachingStage.String(),
		}
	}

	if s.SubPhase.entrance() && s.cursorValue() == 0 {
		return Resume{
			Kind:   ResumePhaseEntrance,
			Phase:  s.Phase.String(),
			Ticker: s.Ticker,
		}
	}

	// Derivable from phase, sub-phase, and cursor alone: the question
	// arrays may not be loaded yet when a pointer is needed.
	if s.active() || s.cursorValue() > 0 {
		idx := s.cursorValue()
		if idx < 1 {
			idx = 1
		}
		return Resume{
			Kind:   ResumeQuestion,
			Phase:  s.Phase.String(),
			Index:  idx,
			Ticker: s.Ticker,
		}
	}

	phase := s.Phase.String()
	if phase == "unknown" {
		phase = "discussion"
	}
	return Resume{
		Kind:   ResumePhaseEntrance,
		Phase:  phase,
		Ticker: s.Ticker,
	}
}

// cursorValue returns the current phase's cursor, or 0 when the phase has
// no cursor.
func (s *State) cursorValue() int {
	if c := s.cursor(); c != nil {
		return *c
	}
	return 0
}
