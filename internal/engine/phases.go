package engine

import (
	"fmt"

	"github.com/tutorflow/engine/internal/content"
)

// entranceToActive maps each phase's awaiting-begin sub-phase to its
// active sub-phase.
var entranceToActive = map[SubPhase]SubPhase{
	SubComprehensionStart:     SubComprehensionActive,
	SubExerciseAwaitingBegin:  SubExerciseActive,
	SubWorksheetAwaitingBegin: SubWorksheetActive,
	SubTestAwaitingBegin:      SubTestActive,
}

// BeginPhase moves a phase from its awaiting-begin sub-phase to active,
// unlocking its first question. A phase with an empty question array is
// skipped: the session lands on the next phase's entrance instead.
func BeginPhase(s *State) error {
	active, ok := entranceToActive[s.SubPhase]
	if !ok {
		return fmt.Errorf("begin requested outside an entrance (sub-phase %q)", s.SubPhase)
	}

	// A phase with no questions has nothing to iterate; advance past it
	// instead of activating a phase the learner could never leave.
	if len(s.questions()) == 0 {
		if s.Phase == PhaseTest {
			scoreTest(s)
		}
		return s.AdvancePhase()
	}

	s.SubPhase = active
	s.CanSend = true
	s.Ticker++

	if s.Phase == PhaseTest && len(s.TestAnswers) == 0 {
		s.TestAnswers = make([]string, 0, len(s.Test))
		s.TestCorrectness = make([]bool, 0, len(s.Test))
	}
	return nil
}

// questions returns the array the current phase iterates over.
func (s *State) questions() []content.Question {
	switch s.Phase {
	case PhaseComprehension:
		return s.Comprehension
	case PhaseExercise:
		return s.Exercise
	case PhaseWorksheet:
		return s.Worksheet
	case PhaseTest:
		return s.Test
	}
	return nil
}

// cursor returns a pointer to the current phase's index cursor.
func (s *State) cursor() *int {
	switch s.Phase {
	case PhaseComprehension:
		return &s.CompIndex
	case PhaseExercise:
		return &s.ExIndex
	case PhaseWorksheet:
		return &s.WorksheetIndex
	case PhaseTest:
		return &s.TestIndex
	}
	return nil
}

// CurrentQuestion returns the active question for the current phase, or
// nil when the phase has no active question.
func (s *State) CurrentQuestion() *content.Question {
	qs := s.questions()
	cur := s.cursor()
	if qs == nil || cur == nil || !s.active() {
		return nil
	}
	if *cur < 0 || *cur >= len(qs) {
		return nil
	}
	return &qs[*cur]
}

func (s *State) active() bool {
	switch s.SubPhase {
	case SubComprehensionActive, SubExerciseActive, SubWorksheetActive, SubTestActive:
		return true
	}
	return false
}

// AnswerResult reports the outcome of a submitted answer.
type AnswerResult struct {
	Correct   bool
	PhaseDone bool
}

// SubmitAnswer grades the learner's answer against the active question,
// advances the phase cursor, and on the phase's last question records the
// phase exit before any later phase state is touched. Test answers and
// correctness are accumulated for scoring.
func SubmitAnswer(s *State, answer string) (*AnswerResult, error) {
	q := s.CurrentQuestion()
	if q == nil {
		return nil, fmt.Errorf("no active question (phase %s, sub-phase %q)", s.Phase, s.SubPhase)
	}

	correct := CheckAnswer(*q, answer)

	if s.Phase == PhaseTest {
		s.TestAnswers = append(s.TestAnswers, answer)
		s.TestCorrectness = append(s.TestCorrectness, correct)
	}

	cur := s.cursor()
	*cur++
	s.Ticker++

	res := &AnswerResult{Correct: correct}
	if *cur >= len(s.questions()) {
		res.PhaseDone = true
		if s.Phase == PhaseTest {
			scoreTest(s)
		}
		if err := s.AdvancePhase(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// scoreTest folds the correctness array into the final percent.
func scoreTest(s *State) {
	if len(s.TestCorrectness) == 0 {
		s.TestFinalPercent = 0
		return
	}
	correct := 0
	for _, ok := range s.TestCorrectness {
		if ok {
			correct++
		}
	}
	s.TestFinalPercent = (correct*100 + len(s.TestCorrectness)/2) / len(s.TestCorrectness)
}

// Complete moves the session from congrats to complete. The caller is
// expected to delete the snapshot afterwards so a revisit starts fresh.
func Complete(s *State) error {
	if s.Phase != PhaseCongrats {
		return fmt.Errorf("complete requested from phase %s", s.Phase)
	}
	return s.AdvancePhase()
}
